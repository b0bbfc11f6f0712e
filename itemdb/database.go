package itemdb

import (
	"github.com/Measter/simple-ident-res/ast"
	"github.com/Measter/simple-ident-res/common"
	"github.com/Measter/simple-ident-res/report"
)

// rootName is the name of the implicit root module.  It cannot be spelled as
// an identifier, so user code can never collide with or refer to it by name.
const rootName = "<ROOT>"

// Database is the single owner of all declared items and their scopes.  Items
// and scopes live in parallel append-only arrays indexed by item ID: the
// arena-and-handle shape lets parents and children reference each other by ID
// without shared mutable pointers.
//
// Items are created exclusively while the item tree is being built, in
// declaration order.  Resolution afterwards mutates only scope bindings and
// the resolved-body table; once resolution has run the database is read-only.
type Database struct {
	// items is the arena of item headers indexed by ID.
	items []*Item

	// scopes is the parallel arena of scopes indexed by ID.
	scopes []*Scope

	// root is the ID of the implicit root module.
	root common.ItemID

	// unresolvedBodies maps a function's ID to its body before resolution.
	unresolvedBodies map[common.ItemID][]ast.UnresolvedNode

	// resolvedBodies maps a function's ID to its body after resolution.
	resolvedBodies map[common.ItemID][]ast.ResolvedNode
}

// New creates a new item database containing only the implicit root module.
func New() *Database {
	db := &Database{
		unresolvedBodies: make(map[common.ItemID][]ast.UnresolvedNode),
		resolvedBodies:   make(map[common.ItemID][]ast.ResolvedNode),
	}

	// The root establishes ID 0 and is its own parent.
	rootID, err := db.NewItem(rootName, common.ItemKindModule, 0)
	if err != nil {
		// The arena is empty: the root cannot collide with anything.
		report.ReportICE("failed to create root module: %s", err)
	}

	db.root = rootID
	return db
}

// NewItem allocates the next item ID, stores the item, creates its empty
// scope, and binds the item's name in the parent's scope.  Declaring two
// children of one scope with the same name is an error of kind
// DuplicateDeclaration; the caller owns attaching a source span to it.
func (db *Database) NewItem(name string, kind int, parent common.ItemID) (common.ItemID, error) {
	id := common.ItemID(len(db.items))

	if id != common.RootItemID {
		if _, ok := db.scopes[parent].Child(name); ok {
			return 0, report.Raise(
				report.KindDuplicateDeclaration, nil,
				"`%s` declared multiple times in %s `%s`",
				name, common.ReprItemKind(db.items[parent].Kind), db.items[parent].Name,
			)
		}
	}

	db.items = append(db.items, &Item{
		Kind:   kind,
		Name:   name,
		Parent: parent,
		ID:     id,
	})
	db.scopes = append(db.scopes, newScope())
	db.scopes[parent].Bind(name, id)

	return id, nil
}

// Root returns the ID of the implicit root module.
func (db *Database) Root() common.ItemID {
	return db.root
}

// Item returns the header of the item with the given ID.  An out-of-range ID
// is a bug in the caller and panics via the index.
func (db *Database) Item(id common.ItemID) *Item {
	return db.items[id]
}

// Scope returns the scope owned by the item with the given ID.
func (db *Database) Scope(id common.ItemID) *Scope {
	return db.scopes[id]
}

// ItemIDs returns a snapshot of all current item IDs in declaration order.
func (db *Database) ItemIDs() []common.ItemID {
	ids := make([]common.ItemID, len(db.items))
	for i := range db.items {
		ids[i] = common.ItemID(i)
	}

	return ids
}

// -----------------------------------------------------------------------------

// AddImport appends an unresolved import to the scope of the given item.
// Both module and function scopes may hold imports.
func (db *Database) AddImport(id common.ItemID, ident *ast.Ident) {
	scope := db.scopes[id]
	scope.pendingImports = append(scope.pendingImports, ident)
}

// SetUnresolvedBody attaches the unresolved body of a function.  Only
// functions may own bodies: any other item kind is an error of kind
// InvalidItemKind.
func (db *Database) SetUnresolvedBody(id common.ItemID, body []ast.UnresolvedNode) error {
	if err := db.assertFunction(id); err != nil {
		return err
	}

	db.unresolvedBodies[id] = body
	return nil
}

// UnresolvedBody returns the unresolved body of the given function.  An empty
// body is valid.
func (db *Database) UnresolvedBody(id common.ItemID) []ast.UnresolvedNode {
	return db.unresolvedBodies[id]
}

// SetResolvedBody stores the resolved body of a function.
func (db *Database) SetResolvedBody(id common.ItemID, body []ast.ResolvedNode) error {
	if err := db.assertFunction(id); err != nil {
		return err
	}

	db.resolvedBodies[id] = body
	return nil
}

// ResolvedBody returns the resolved body of the given function and whether one
// has been stored.  Bodies are only ever stored once body resolution has run.
func (db *Database) ResolvedBody(id common.ItemID) ([]ast.ResolvedNode, bool) {
	body, ok := db.resolvedBodies[id]
	return body, ok
}

// assertFunction raises an InvalidItemKind error if the item is not a
// function.
func (db *Database) assertFunction(id common.ItemID) error {
	if item := db.items[id]; item.Kind != common.ItemKindFunction {
		return report.Raise(
			report.KindInvalidItemKind, nil,
			"%s `%s` cannot own a body", common.ReprItemKind(item.Kind), item.Name,
		)
	}

	return nil
}
