package itemdb

import (
	"github.com/Measter/simple-ident-res/ast"
	"github.com/Measter/simple-ident-res/common"
)

// Item is the header of one declared entity: a module or a function.  Items
// are immutable once created.
type Item struct {
	// The item's kind.  This must be one of the enumerated item kinds.
	Kind int

	// The declaration-site spelling of the item's name.  Names are not
	// required to be globally unique: only unique within their parent scope.
	Name string

	// The ID of the lexically enclosing module.  The root module is recorded
	// as its own parent and is never looked up as one.
	Parent common.ItemID

	// The item's own ID.
	ID common.ItemID
}

// Scope holds the name bindings visible as direct children of one item, plus
// the item's pending imports.  Every item owns exactly one scope, created in
// the same operation that creates the item: an item and its scope always share
// an ID.
type Scope struct {
	// The unresolved dotted identifiers of `using` declarations targeting this
	// scope, in declaration order.  Consumed and cleared by import resolution.
	pendingImports []*ast.Ident

	// The bindings from declared or aliased name to item ID.
	children map[string]common.ItemID
}

func newScope() *Scope {
	return &Scope{children: make(map[string]common.ItemID)}
}

// Child looks up a binding of the given name in the scope.
func (s *Scope) Child(name string) (common.ItemID, bool) {
	id, ok := s.children[name]
	return id, ok
}

// Bind binds a name to an item in the scope, overwriting any existing binding
// of that name.  Declarations guard against collisions before binding; import
// aliases deliberately shadow.
func (s *Scope) Bind(name string, id common.ItemID) {
	s.children[name] = id
}

// PendingImports returns the scope's unresolved imports in declaration order.
func (s *Scope) PendingImports() []*ast.Ident {
	return s.pendingImports
}

// ClearPendingImports empties the scope's pending import list.  Called once
// the imports have been materialized as bindings.
func (s *Scope) ClearPendingImports() {
	s.pendingImports = nil
}
