package itemdb

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Measter/simple-ident-res/ast"
	"github.com/Measter/simple-ident-res/common"
	"github.com/Measter/simple-ident-res/report"
)

func TestNewDatabaseHasRoot(t *testing.T) {
	db := New()

	require.Equal(t, common.RootItemID, db.Root())

	root := db.Item(db.Root())
	assert.Equal(t, common.ItemKindModule, root.Kind)
	assert.Equal(t, db.Root(), root.Parent, "the root is its own parent")
}

func TestNewItemAssignsDenseIDs(t *testing.T) {
	db := New()

	m1, err := db.NewItem("m1", common.ItemKindModule, db.Root())
	require.NoError(t, err)
	f1, err := db.NewItem("f1", common.ItemKindFunction, m1)
	require.NoError(t, err)
	f2, err := db.NewItem("f2", common.ItemKindFunction, m1)
	require.NoError(t, err)

	assert.Equal(t, common.ItemID(1), m1)
	assert.Equal(t, common.ItemID(2), f1)
	assert.Equal(t, common.ItemID(3), f2)

	assert.Equal(t, m1, db.Item(f1).Parent)
	assert.Equal(t, db.Root(), db.Item(m1).Parent)
}

func TestNewItemBindsNameInParentScope(t *testing.T) {
	db := New()

	m1, err := db.NewItem("m1", common.ItemKindModule, db.Root())
	require.NoError(t, err)
	f1, err := db.NewItem("f1", common.ItemKindFunction, m1)
	require.NoError(t, err)

	got, ok := db.Scope(db.Root()).Child("m1")
	require.True(t, ok)
	assert.Equal(t, m1, got)

	got, ok = db.Scope(m1).Child("f1")
	require.True(t, ok)
	assert.Equal(t, f1, got)

	_, ok = db.Scope(db.Root()).Child("f1")
	assert.False(t, ok, "f1 must only be bound in its own parent's scope")
}

func TestNewItemRejectsDuplicateNames(t *testing.T) {
	db := New()

	_, err := db.NewItem("mm", common.ItemKindModule, db.Root())
	require.NoError(t, err)

	_, err = db.NewItem("mm", common.ItemKindFunction, db.Root())
	require.Error(t, err)

	cerr := &report.CompileError{}
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, report.KindDuplicateDeclaration, cerr.Kind)

	// Same name under a different parent is fine.
	m2, err := db.NewItem("m2", common.ItemKindModule, db.Root())
	require.NoError(t, err)
	_, err = db.NewItem("mm", common.ItemKindFunction, m2)
	assert.NoError(t, err)
}

func TestBodiesRequireFunctions(t *testing.T) {
	db := New()

	m1, err := db.NewItem("m1", common.ItemKindModule, db.Root())
	require.NoError(t, err)
	f1, err := db.NewItem("f1", common.ItemKindFunction, m1)
	require.NoError(t, err)

	require.NoError(t, db.SetUnresolvedBody(f1, nil))

	err = db.SetUnresolvedBody(m1, nil)
	require.Error(t, err)

	cerr := &report.CompileError{}
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, report.KindInvalidItemKind, cerr.Kind)

	err = db.SetResolvedBody(m1, nil)
	require.Error(t, err)
}

func TestResolvedBodyOnlyPresentOnceSet(t *testing.T) {
	db := New()

	m1, _ := db.NewItem("m1", common.ItemKindModule, db.Root())
	f1, _ := db.NewItem("f1", common.ItemKindFunction, m1)

	_, ok := db.ResolvedBody(f1)
	assert.False(t, ok)

	require.NoError(t, db.SetResolvedBody(f1, []ast.ResolvedNode{}))

	body, ok := db.ResolvedBody(f1)
	assert.True(t, ok)
	assert.Empty(t, body)
}

func TestAddImportPreservesOrder(t *testing.T) {
	db := New()

	m1, _ := db.NewItem("m1", common.ItemKindModule, db.Root())

	db.AddImport(m1, &ast.Ident{Parts: []string{"aa", "bb"}})
	db.AddImport(m1, &ast.Ident{Parts: []string{"cc"}})

	imports := db.Scope(m1).PendingImports()
	require.Len(t, imports, 2)
	assert.Equal(t, "aa.bb", imports[0].String())
	assert.Equal(t, "cc", imports[1].String())

	db.Scope(m1).ClearPendingImports()
	assert.Empty(t, db.Scope(m1).PendingImports())
}

func TestDumpsAreDeterministic(t *testing.T) {
	db := New()

	m1, _ := db.NewItem("m1", common.ItemKindModule, db.Root())
	f1, _ := db.NewItem("f1", common.ItemKindFunction, m1)
	f2, _ := db.NewItem("f2", common.ItemKindFunction, m1)

	_ = db.SetUnresolvedBody(f1, nil)
	_ = db.SetUnresolvedBody(f2, nil)
	_ = db.SetResolvedBody(f1, []ast.ResolvedNode{&ast.ResolvedCall{Target: f2}})

	var first, second bytes.Buffer
	db.DumpHeaders(&first)
	db.DumpUnresolvedBodies(&first)
	db.DumpResolvedBodies(&first)

	db.DumpHeaders(&second)
	db.DumpUnresolvedBodies(&second)
	db.DumpResolvedBodies(&second)

	assert.Equal(t, first.String(), second.String())
	assert.Contains(t, first.String(), " == Headers ==")
}
