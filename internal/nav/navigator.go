// Package nav implements sequential previous/next traversal over the
// ordered project catalog.
package nav

// Navigator is a position within a collection of Count items. Moving past
// either end is a no-op; the matching control is shown as inactive.
type Navigator struct {
	Index int
	Count int
}

// New returns a Navigator at index within count items. index is clamped
// into range.
func New(index, count int) Navigator {
	if count < 0 {
		count = 0
	}
	if index >= count {
		index = count - 1
	}
	if index < 0 {
		index = 0
	}
	return Navigator{Index: index, Count: count}
}

// CanPrevious reports whether a previous item exists.
func (n Navigator) CanPrevious() bool { return n.Index > 0 }

// CanNext reports whether a next item exists.
func (n Navigator) CanNext() bool { return n.Index < n.Count-1 }

// Previous returns the index one step back, or the current index and false
// at the first item.
func (n Navigator) Previous() (int, bool) {
	if !n.CanPrevious() {
		return n.Index, false
	}
	return n.Index - 1, true
}

// Next returns the index one step forward, or the current index and false
// at the last item.
func (n Navigator) Next() (int, bool) {
	if !n.CanNext() {
		return n.Index, false
	}
	return n.Index + 1, true
}
