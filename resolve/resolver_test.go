package resolve

import (
	"bufio"
	"strings"
	"testing"

	"github.com/go-test/deep"

	"github.com/Measter/simple-ident-res/ast"
	"github.com/Measter/simple-ident-res/common"
	"github.com/Measter/simple-ident-res/itemdb"
	"github.com/Measter/simple-ident-res/report"
	"github.com/Measter/simple-ident-res/syntax"
)

// buildDB lexes and parses a source string into a fresh database.
func buildDB(t *testing.T, src string) *itemdb.Database {
	t.Helper()

	toks, err := syntax.NewLexer(bufio.NewReader(strings.NewReader(src))).Tokenize()
	if err != nil {
		t.Fatalf("lexing failed: %v", err)
	}

	db := itemdb.New()
	if err := syntax.NewParser(db, toks).Parse(); err != nil {
		t.Fatalf("parsing failed: %v", err)
	}

	return db
}

// mustResolve runs the resolver and fails the test on any resolution error.
func mustResolve(t *testing.T, db *itemdb.Database) *Resolver {
	t.Helper()

	r := NewResolver(db)
	if errs := r.Resolve(); len(errs) != 0 {
		t.Fatalf("resolution failed: %v", errs)
	}

	return r
}

// findItem locates a declared item by name and kind, failing if the name is
// not unique across the database.
func findItem(t *testing.T, db *itemdb.Database, name string, kind int) common.ItemID {
	t.Helper()

	found := common.ItemID(-1)
	for _, id := range db.ItemIDs() {
		item := db.Item(id)
		if item.Name == name && item.Kind == kind {
			if found != -1 {
				t.Fatalf("item name `%s` is ambiguous", name)
			}

			found = id
		}
	}

	if found == -1 {
		t.Fatalf("no item named `%s`", name)
	}

	return found
}

// callTargets extracts the call targets of a function's resolved body.
func callTargets(t *testing.T, db *itemdb.Database, id common.ItemID) []common.ItemID {
	t.Helper()

	body, ok := db.ResolvedBody(id)
	if !ok {
		t.Fatalf("item %d has no resolved body", id)
	}

	targets := make([]common.ItemID, len(body))
	for i, node := range body {
		targets[i] = node.(*ast.ResolvedCall).Target
	}

	return targets
}

// errKind asserts that an error is a compile error of the given kind.
func errKind(t *testing.T, err error, kind int) {
	t.Helper()

	cerr, ok := err.(*report.CompileError)
	if !ok {
		t.Fatalf("expected a *report.CompileError, got %T: %v", err, err)
	}

	if cerr.Kind != kind {
		t.Errorf("expected error kind %d, got %d (%s)", kind, cerr.Kind, cerr.Message)
	}
}

// -----------------------------------------------------------------------------

const nestedModuleSrc = `
module A1 {
    module A2 {
        function a_func() { }
    }
    function top_func() {
        A2.a_func();
    }
}
module B1 {
    using A1.A2;
    function b_func() {
        A2.a_func();
    }
}
`

func TestResolveNestedModules(t *testing.T) {
	db := buildDB(t, nestedModuleSrc)
	mustResolve(t, db)

	aFunc := findItem(t, db, "a_func", common.ItemKindFunction)

	// top_func finds A2 through its enclosing module A1's scope; b_func finds
	// A2 through the alias its module's `using A1.A2` bound.  Both must land
	// on the same item.
	topTargets := callTargets(t, db, findItem(t, db, "top_func", common.ItemKindFunction))
	if diff := deep.Equal(topTargets, []common.ItemID{aFunc}); diff != nil {
		t.Errorf("top_func: %v", diff)
	}

	bTargets := callTargets(t, db, findItem(t, db, "b_func", common.ItemKindFunction))
	if diff := deep.Equal(bTargets, topTargets); diff != nil {
		t.Errorf("b_func: %v", diff)
	}
}

func TestImportAliasMatchesDirectResolution(t *testing.T) {
	db := buildDB(t, nestedModuleSrc)
	r := mustResolve(t, db)

	b1 := findItem(t, db, "B1", common.ItemKindModule)
	a2 := findItem(t, db, "A2", common.ItemKindModule)

	// After phase 1, B1's scope has `A2` bound to the same item that
	// resolving `A1.A2` at B1 independently produces.
	alias, ok := db.Scope(b1).Child("A2")
	if !ok {
		t.Fatal("expected B1's scope to contain an `A2` alias")
	}

	if alias != a2 {
		t.Errorf("alias points at item %d, want %d", alias, a2)
	}

	direct, err := r.ResolvePath(b1, &ast.Ident{Parts: []string{"A1", "A2"}})
	if err != nil {
		t.Fatalf("direct resolution failed: %v", err)
	}

	if direct != alias {
		t.Errorf("direct resolution gives %d, alias gives %d", direct, alias)
	}
}

func TestImportsConsumedByResolution(t *testing.T) {
	db := buildDB(t, nestedModuleSrc)
	mustResolve(t, db)

	for _, id := range db.ItemIDs() {
		if n := len(db.Scope(id).PendingImports()); n != 0 {
			t.Errorf("item %d still has %d pending imports", id, n)
		}
	}
}

func TestEveryFunctionGetsResolvedBody(t *testing.T) {
	db := buildDB(t, nestedModuleSrc)
	mustResolve(t, db)

	for _, id := range db.ItemIDs() {
		_, ok := db.ResolvedBody(id)
		if isFunc := db.Item(id).Kind == common.ItemKindFunction; ok != isFunc {
			t.Errorf("item %d: resolved body present = %v, function = %v", id, ok, isFunc)
		}
	}

	// a_func's body is empty but still resolved.
	body, _ := db.ResolvedBody(findItem(t, db, "a_func", common.ItemKindFunction))
	if len(body) != 0 {
		t.Errorf("expected an empty resolved body, got %d nodes", len(body))
	}
}

func TestSelfReference(t *testing.T) {
	db := buildDB(t, `
module M1 {
    function rec() {
        rec();
    }
}
`)
	mustResolve(t, db)

	rec := findItem(t, db, "rec", common.ItemKindFunction)
	targets := callTargets(t, db, rec)
	if diff := deep.Equal(targets, []common.ItemID{rec}); diff != nil {
		t.Errorf("self call: %v", diff)
	}
}

func TestSelfReferenceBeatsImportAlias(t *testing.T) {
	// M1 imports Lib.nn, shadowing its declared function's binding in M1's
	// scope.  The function's own name must still win when it refers to
	// itself.
	db := buildDB(t, `
module Lib {
    function nn() { }
}
module M1 {
    function nn() {
        nn();
    }
    using Lib.nn;
}
`)
	mustResolve(t, db)

	m1 := findItem(t, db, "M1", common.ItemKindModule)
	lib := findItem(t, db, "Lib", common.ItemKindModule)

	libNN, _ := db.Scope(lib).Child("nn")
	m1NN, _ := db.Scope(m1).Child("nn")

	// The alias rebinds `nn` inside M1's scope.
	if m1NN != libNN {
		t.Fatalf("expected M1's `nn` binding to be the imported one")
	}

	// But the declared function still resolves its own name to itself.
	var declared common.ItemID = -1
	for _, id := range db.ItemIDs() {
		item := db.Item(id)
		if item.Name == "nn" && item.Parent == m1 {
			declared = id
		}
	}

	targets := callTargets(t, db, declared)
	if diff := deep.Equal(targets, []common.ItemID{declared}); diff != nil {
		t.Errorf("self call: %v", diff)
	}
}

func TestShadowOrderPrefersEnclosingModuleOverRoot(t *testing.T) {
	// `Target` exists both as a top-level module and as a function in ff's
	// enclosing module.  The enclosing module's binding must win.
	db := buildDB(t, `
module Target {
}
module M1 {
    function Target() { }
    function ff() {
        Target();
    }
}
`)
	mustResolve(t, db)

	m1 := findItem(t, db, "M1", common.ItemKindModule)

	var inner common.ItemID = -1
	for _, id := range db.ItemIDs() {
		item := db.Item(id)
		if item.Name == "Target" && item.Parent == m1 {
			inner = id
		}
	}

	ff := findItem(t, db, "ff", common.ItemKindFunction)
	targets := callTargets(t, db, ff)
	if diff := deep.Equal(targets, []common.ItemID{inner}); diff != nil {
		t.Errorf("shadowed call: %v", diff)
	}
}

func TestRootFallback(t *testing.T) {
	// qq is only visible via the root scope from inside M2.
	db := buildDB(t, `
module Util {
    function qq() { }
}
module M2 {
    function ff() {
        Util.qq();
    }
}
`)
	mustResolve(t, db)

	qq := findItem(t, db, "qq", common.ItemKindFunction)
	ff := findItem(t, db, "ff", common.ItemKindFunction)

	targets := callTargets(t, db, ff)
	if diff := deep.Equal(targets, []common.ItemID{qq}); diff != nil {
		t.Errorf("root fallback call: %v", diff)
	}
}

func TestModulesDoNotInheritSiblingImports(t *testing.T) {
	// B1 imports A1.A2; C1 never does.  The alias must not leak into C1.
	errs := NewResolver(buildDB(t, nestedModuleSrc+`
module C1 {
    function cc() {
        A2.a_func();
    }
}
`)).Resolve()

	if len(errs) != 1 {
		t.Fatalf("expected exactly 1 error, got %d: %v", len(errs), errs)
	}

	errKind(t, errs[0], report.KindSymbolNotFound)
}

func TestTraversalIntoFunctionFails(t *testing.T) {
	errs := NewResolver(buildDB(t, `
module M1 {
    function ff() { }
    function gg() {
        ff.anything();
    }
}
`)).Resolve()

	if len(errs) != 1 {
		t.Fatalf("expected exactly 1 error, got %d: %v", len(errs), errs)
	}

	errKind(t, errs[0], report.KindInvalidPathSegment)
}

func TestUnknownSymbolFails(t *testing.T) {
	errs := NewResolver(buildDB(t, `
module M1 {
    function ff() {
        nowhere();
    }
}
`)).Resolve()

	if len(errs) != 1 {
		t.Fatalf("expected exactly 1 error, got %d: %v", len(errs), errs)
	}

	errKind(t, errs[0], report.KindSymbolNotFound)
}

func TestUnknownImportFails(t *testing.T) {
	errs := NewResolver(buildDB(t, `
module M1 {
    using nowhere.at_all;
}
`)).Resolve()

	if len(errs) != 1 {
		t.Fatalf("expected exactly 1 error, got %d: %v", len(errs), errs)
	}

	errKind(t, errs[0], report.KindSymbolNotFound)
}

func TestBodyErrorsAreAggregated(t *testing.T) {
	errs := NewResolver(buildDB(t, `
module M1 {
    function ff() {
        missing_one();
    }
    function gg() {
        missing_two();
    }
}
`)).Resolve()

	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %d: %v", len(errs), errs)
	}
}

func TestResolutionIsDeterministic(t *testing.T) {
	db := buildDB(t, nestedModuleSrc)
	r := mustResolve(t, db)

	b1 := findItem(t, db, "B1", common.ItemKindModule)
	ident := &ast.Ident{Parts: []string{"A1", "A2", "a_func"}}

	first, err := r.ResolvePath(b1, ident)
	if err != nil {
		t.Fatalf("resolution failed: %v", err)
	}

	second, err := r.ResolvePath(b1, ident)
	if err != nil {
		t.Fatalf("resolution failed: %v", err)
	}

	if first != second {
		t.Errorf("same path resolved to %d and %d", first, second)
	}
}

func TestSiblingBodyOrderIndependence(t *testing.T) {
	// The same program with the sibling functions declared in both orders
	// resolves both calls to the same named items.
	forward := buildDB(t, `
module M1 {
    function ff() { gg(); }
    function gg() { ff(); }
}
`)
	backward := buildDB(t, `
module M1 {
    function gg() { ff(); }
    function ff() { gg(); }
}
`)

	mustResolve(t, forward)
	mustResolve(t, backward)

	for _, caller := range []string{"ff", "gg"} {
		fwdTargets := callTargets(t, forward, findItem(t, forward, caller, common.ItemKindFunction))
		bwdTargets := callTargets(t, backward, findItem(t, backward, caller, common.ItemKindFunction))

		if len(fwdTargets) != 1 || len(bwdTargets) != 1 {
			t.Fatalf("%s: expected single calls", caller)
		}

		fwdName := forward.Item(fwdTargets[0]).Name
		bwdName := backward.Item(bwdTargets[0]).Name
		if fwdName != bwdName {
			t.Errorf("%s: resolved to %s and %s", caller, fwdName, bwdName)
		}
	}
}
