// Package minheap defines the Entry type and sentinel errors for the
// indexed binary min-heap.
package minheap

import "errors"

// NotInHeap is the back-pointer value of an entry that is not resident in
// any heap: fresh from NewEntry, or already removed by ExtractMin.
const NotInHeap = -1

// Sentinel errors returned by heap operations.
var (
	// ErrBadCapacity indicates a negative capacity was passed to New.
	ErrBadCapacity = errors.New("minheap: capacity must be non-negative")

	// ErrNilEntry indicates a nil *Entry where a live entry is required.
	ErrNilEntry = errors.New("minheap: entry is nil")

	// ErrHeapFull indicates an Insert on a heap whose fixed backing array
	// is already fully occupied.
	ErrHeapFull = errors.New("minheap: heap is full")

	// ErrHeapEmpty indicates PeekMin or ExtractMin on an empty heap.
	ErrHeapEmpty = errors.New("minheap: heap is empty")

	// ErrNotInHeap indicates DecreaseKey on an entry that is not resident
	// in this heap (never inserted, or already extracted).
	ErrNotInHeap = errors.New("minheap: entry not in heap")

	// ErrValueIncrease indicates DecreaseKey was asked to raise an entry's
	// value; only lowering (or keeping) the value is permitted.
	ErrValueIncrease = errors.New("minheap: new value exceeds current value")

	// ErrIndexOutOfRange indicates a structural query with an index outside
	// the live slot range [0, Size()).
	ErrIndexOutOfRange = errors.New("minheap: index out of range")
)

// Entry is a heap element: an external identity (Key, typically a vertex
// id) with a mutable priority value and a back-pointer to its current heap
// slot. While the entry is resident in a heap the back-pointer always
// equals its true array slot; outside a heap it is NotInHeap.
type Entry struct {
	// Key identifies the entry to the caller; the heap never interprets it
	// beyond tie-breaking equal values.
	Key int

	value float64 // current priority; mutated only via DecreaseKey
	index int     // current slot in the owning heap, or NotInHeap
}

// NewEntry returns an entry with the given key and priority value, not yet
// resident in any heap.
func NewEntry(key int, value float64) *Entry {
	return &Entry{Key: key, value: value, index: NotInHeap}
}

// Value reports the entry's current priority.
func (e *Entry) Value() float64 { return e.value }

// Index reports the entry's current heap slot, or NotInHeap.
func (e *Entry) Index() int { return e.index }

// InHeap reports whether the entry is currently resident in a heap.
func (e *Entry) InHeap() bool { return e.index != NotInHeap }

// less is the heap ordering: by value ascending, ties broken by key so the
// comparator is total and stable.
func (e *Entry) less(other *Entry) bool {
	if e.value != other.value {
		return e.value < other.value
	}

	return e.Key < other.Key
}
