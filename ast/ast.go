package ast

import (
	"strings"

	"github.com/Measter/simple-ident-res/common"
	"github.com/Measter/simple-ident-res/report"
)

// Ident is a dotted identifier as written in source: a non-empty ordered
// sequence of name segments, eg. `A2.a_func` => ["A2", "a_func"].
type Ident struct {
	// The name segments of the identifier in source order.
	Parts []string

	// The span over which the whole identifier occurs.
	Span *report.TextSpan
}

// Last returns the final segment of the identifier.
func (id *Ident) Last() string {
	return id.Parts[len(id.Parts)-1]
}

func (id *Ident) String() string {
	return strings.Join(id.Parts, ".")
}

// -----------------------------------------------------------------------------

// UnresolvedNode is a statement of a function body before identifier
// resolution has run.  Calls are currently the only statement form, but the
// interface leaves room for the grammar to grow.
type UnresolvedNode interface {
	// The text span of the node.
	Span() *report.TextSpan

	unresolvedNode()
}

// UnresolvedCall is a call statement whose callee is still a free-form dotted
// identifier.
type UnresolvedCall struct {
	Ident *Ident
}

func (uc *UnresolvedCall) Span() *report.TextSpan {
	return uc.Ident.Span
}

func (*UnresolvedCall) unresolvedNode() {}

// -----------------------------------------------------------------------------

// ResolvedNode is a statement of a function body after identifier resolution:
// the same shape as its unresolved counterpart with dotted identifiers
// replaced by concrete item IDs.
type ResolvedNode interface {
	resolvedNode()
}

// ResolvedCall is a call statement whose callee is a concrete item.
type ResolvedCall struct {
	Target common.ItemID
}

func (*ResolvedCall) resolvedNode() {}
