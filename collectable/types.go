package collectable

import "errors"

// Color is the tri-color mark of a Node during a collection cycle.
type Color int32

const (
	// Unknown is the initial color of a freshly allocated node, before
	// it is enrolled into the collector's live set. It is the zero
	// value of Color, so a bare Node (or one built by Allocate, before
	// transferNewToObjects runs) is Unknown without any explicit
	// initialization, matching garbage_collector.h's color{ unknown }.
	Unknown Color = iota
	// White means not proven reachable this cycle. A node still White
	// at the end of sweep is unreachable and is freed.
	White
	// Gray means discovered but not yet scanned: it is on the mark
	// work stack, its children not yet visited.
	Gray
	// Black means discovered and fully scanned.
	Black
)

// String renders c for logging and test failure messages.
func (c Color) String() string {
	switch c {
	case Unknown:
		return "unknown"
	case White:
		return "white"
	case Gray:
		return "gray"
	case Black:
		return "black"
	default:
		return "invalid"
	}
}

// ErrNilChild is returned by Insert when the given child is nil. Erase
// ignores a nil child and returns nothing.
var ErrNilChild = errors.New("collectable: child is nil")
