package resolve

import (
	"github.com/Measter/simple-ident-res/ast"
	"github.com/Measter/simple-ident-res/common"
	"github.com/Measter/simple-ident-res/report"
)

// ResolvePath resolves a dotted identifier to a concrete item, starting from
// the given item.  The first segment is resolved via the visible-symbol
// lookup seeded at the starting item; each remaining segment traverses down
// into the children of the item resolved so far, which must be a module.
//
// Resolution is pure: given fully built scopes, the same starting item and
// path always produce the same result.
func (r *Resolver) ResolvePath(start common.ItemID, ident *ast.Ident) (common.ItemID, error) {
	current, err := r.visibleSymbol(start, ident.Parts[0], ident.Span)
	if err != nil {
		return 0, err
	}

	for _, segment := range ident.Parts[1:] {
		item := r.db.Item(current)
		if item.Kind != common.ItemKindModule {
			return 0, report.Raise(
				report.KindInvalidPathSegment, ident.Span,
				"cannot resolve `%s` inside %s `%s`: only modules may be traversed into",
				segment, common.ReprItemKind(item.Kind), item.Name,
			)
		}

		child, ok := r.db.Scope(current).Child(segment)
		if !ok {
			return 0, report.Raise(
				report.KindSymbolNotFound, ident.Span,
				"no symbol `%s` in module `%s`", segment, item.Name,
			)
		}

		current = child
	}

	return current, nil
}

// visibleSymbol determines which item a bare name refers to from a given
// starting item.  Sources are tried in strict priority order:
//
//  1. The starting item itself, if the name matches its own declared name:
//     an item can always refer to itself, even when an import or an outer
//     binding shares its name.
//  2. The starting item's own scope.
//  3. For functions only, the enclosing module's scope.  Modules deliberately
//     do not fall back to their parent: a module sees only what it declared
//     or imported itself, so names never leak between sibling modules.
//     Functions cannot declare imports apart from their enclosing module in
//     this grammar, so they inherit its bindings.  Nested functions do not
//     exist, so the parent of a function is always a module.
//  4. The root module's scope: the flat global namespace of top-level
//     declarations.
func (r *Resolver) visibleSymbol(start common.ItemID, name string, span *report.TextSpan) (common.ItemID, error) {
	item := r.db.Item(start)
	if name == item.Name {
		return start, nil
	}

	if child, ok := r.db.Scope(start).Child(name); ok {
		return child, nil
	}

	if item.Kind != common.ItemKindModule {
		if child, ok := r.db.Scope(item.Parent).Child(name); ok {
			return child, nil
		}
	}

	if child, ok := r.db.Scope(r.db.Root()).Child(name); ok {
		return child, nil
	}

	return 0, report.Raise(report.KindSymbolNotFound, span, "undefined symbol: `%s`", name)
}
