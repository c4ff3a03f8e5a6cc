package arena

import (
	"errors"
	"math"
)

// ErrArenaFull is returned when the handle space is exhausted.
var ErrArenaFull = errors.New("arena: handle space exhausted")

// Handle addresses an item in an Arena.
type Handle uint32

// Nil is the null handle. It never addresses an item.
const Nil Handle = 0

// IsNil reports whether h is the null handle.
func (h Handle) IsNil() bool { return h == Nil }

// Stats tracks arena usage.
type Stats struct {
	Live     int // items allocated since the last Reset
	Capacity int // items the backing slice can hold without growing
	Resets   int // number of Reset calls
}

// Arena stores items of type T.
type Arena[T any] struct {
	items  []T
	resets int
}

// New creates an arena with room for capacity items.
func New[T any](capacity int) *Arena[T] {
	if capacity < 0 {
		capacity = 0
	}
	a := &Arena[T]{
		items: make([]T, 1, capacity+1),
	}
	return a
}

// Alloc appends a zero item and returns its handle and a pointer to it.
func (a *Arena[T]) Alloc() (Handle, *T, error) {
	if a.items == nil {
		// Reserve slot 0 as null
		a.items = make([]T, 1)
	}
	n := len(a.items)
	if uint64(n) > math.MaxUint32 {
		return Nil, nil, ErrArenaFull
	}
	var zero T
	a.items = append(a.items, zero)
	return Handle(n), &a.items[n], nil
}

// Get returns the item addressed by h, or nil if h is Nil or out of range.
func (a *Arena[T]) Get(h Handle) *T {
	if h == Nil || int(h) >= len(a.items) {
		return nil
	}
	return &a.items[h]
}

// Len returns the number of live items.
func (a *Arena[T]) Len() int {
	if len(a.items) == 0 {
		return 0
	}
	return len(a.items) - 1
}

// Reset drops every item while keeping the backing storage.
func (a *Arena[T]) Reset() {
	if a.items == nil {
		return
	}
	clear(a.items)
	a.items = a.items[:1]
	a.resets++
}

// Free releases the backing storage.
func (a *Arena[T]) Free() {
	a.items = nil
}

// Stats returns a snapshot of arena usage.
func (a *Arena[T]) Stats() Stats {
	c := cap(a.items) - 1
	if c < 0 {
		c = 0
	}
	return Stats{
		Live:     a.Len(),
		Capacity: c,
		Resets:   a.resets,
	}
}
