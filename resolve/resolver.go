package resolve

import (
	"github.com/Measter/simple-ident-res/ast"
	"github.com/Measter/simple-ident-res/common"
	"github.com/Measter/simple-ident-res/itemdb"
)

// Resolver is responsible for turning every free-form dotted identifier in an
// item database into a concrete item ID: the imports recorded in each scope
// and the call targets in each function body.  It runs after the item tree is
// fully built and is the only component that mutates the database afterwards
// (scope bindings and resolved bodies only: it never creates, deletes, or
// reparents items).
type Resolver struct {
	// db is the item database being resolved.
	db *itemdb.Database
}

// NewResolver creates a new resolver over the given database.
func NewResolver(db *itemdb.Database) *Resolver {
	return &Resolver{db: db}
}

// Resolve runs the main resolution algorithm: exactly two phases, in order,
// over a stable snapshot of all current item IDs.  All failures within a
// phase are collected and returned together rather than aborting on the
// first.
func (r *Resolver) Resolve() []error {
	ids := r.db.ItemIDs()

	errs := r.resolveImports(ids)
	if len(errs) > 0 {
		// Body resolution may depend on aliases a failed import should have
		// bound: running it anyway would bury the real errors in cascades.
		return errs
	}

	return r.resolveBodies(ids)
}

// resolveImports materializes every scope's pending imports as bindings in
// that same scope: the import's final path segment becomes an alias for the
// item the whole path names, shadowing any existing binding of that name.
//
// Imports are processed in declaration order within one scope; order across
// items does not affect the result.  An import resolves against declaration
// scopes only, never against an alias bound by another pending import in the
// same pass, which is why one flat pass suffices and no fixed point is
// needed.
func (r *Resolver) resolveImports(ids []common.ItemID) []error {
	var errs []error

	for _, id := range ids {
		scope := r.db.Scope(id)

		for _, imp := range scope.PendingImports() {
			target, err := r.ResolvePath(id, imp)
			if err != nil {
				errs = append(errs, err)
				continue
			}

			scope.Bind(imp.Last(), target)
		}

		scope.ClearPendingImports()
	}

	return errs
}

// resolveBodies resolves every call in every function's unresolved body and
// stores the resolved bodies.  It requires import resolution to have already
// run: a call may reference a name introduced only via `using`.  Each
// function's body resolves independently of every other function's.
func (r *Resolver) resolveBodies(ids []common.ItemID) []error {
	var errs []error

	for _, id := range ids {
		if r.db.Item(id).Kind != common.ItemKindFunction {
			continue
		}

		unresolved := r.db.UnresolvedBody(id)

		body := make([]ast.ResolvedNode, 0, len(unresolved))
		failed := false
		for _, node := range unresolved {
			switch node := node.(type) {
			case *ast.UnresolvedCall:
				target, err := r.ResolvePath(id, node.Ident)
				if err != nil {
					errs = append(errs, err)
					failed = true
					continue
				}

				body = append(body, &ast.ResolvedCall{Target: target})
			}
		}

		// A function with any unresolved call gets no partial body.
		if !failed {
			if err := r.db.SetResolvedBody(id, body); err != nil {
				errs = append(errs, err)
			}
		}
	}

	return errs
}
