package itemdb

import (
	"fmt"
	"io"

	"github.com/kr/pretty"

	"github.com/Measter/simple-ident-res/common"
)

// The dump functions write human-readable views of the database for
// diagnostic purposes.  Output order is deterministic: items appear in
// declaration order, ie. by ascending ID.

// DumpHeaders writes every item header to w.
func (db *Database) DumpHeaders(w io.Writer) {
	fmt.Fprintln(w, " == Headers ==")
	fmt.Fprintf(w, "%# v\n\n", pretty.Formatter(db.items))
}

// DumpUnresolvedBodies writes the unresolved body of every function to w.
func (db *Database) DumpUnresolvedBodies(w io.Writer) {
	fmt.Fprintln(w, " == Unresolved Bodies ==")

	for _, id := range db.functionIDs() {
		fmt.Fprintf(w, "%d %s: %# v\n", id, db.items[id].Name, pretty.Formatter(db.unresolvedBodies[id]))
	}

	fmt.Fprintln(w)
}

// DumpResolvedBodies writes the resolved body of every function to w.
// Functions whose bodies have not been resolved are skipped.
func (db *Database) DumpResolvedBodies(w io.Writer) {
	fmt.Fprintln(w, " == Resolved Bodies ==")

	for _, id := range db.functionIDs() {
		if body, ok := db.resolvedBodies[id]; ok {
			fmt.Fprintf(w, "%d %s: %# v\n", id, db.items[id].Name, pretty.Formatter(body))
		}
	}

	fmt.Fprintln(w)
}

// functionIDs returns the IDs of all function items in declaration order.
func (db *Database) functionIDs() []common.ItemID {
	var ids []common.ItemID
	for _, item := range db.items {
		if item.Kind == common.ItemKindFunction {
			ids = append(ids, item.ID)
		}
	}

	return ids
}
