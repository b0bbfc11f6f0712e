package common

// ItemID is an opaque, densely-assigned identifier for a declared item.  IDs
// are handed out in declaration order starting at 0 and are stable for the
// lifetime of the process; ID 0 always denotes the implicit root module.
// Ordering between IDs reflects creation order and nothing more.
type ItemID int

// RootItemID is the ID of the implicit root module.
const RootItemID ItemID = 0

// Enumeration of item kinds.
const (
	ItemKindFunction = iota
	ItemKindModule
)

// ReprItemKind returns the display label for an item kind.
func ReprItemKind(kind int) string {
	switch kind {
	case ItemKindFunction:
		return "function"
	case ItemKindModule:
		return "module"
	default:
		return "<unknown>"
	}
}
