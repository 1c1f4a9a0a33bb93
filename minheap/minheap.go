package minheap

import "fmt"

// Heap is an array-backed indexed binary min-heap over *Entry with a fixed
// capacity chosen at construction. Slots [0, n) of the backing array are
// live; for every non-root live slot i the parent at (i-1)/2 holds an entry
// that is ≤ the entry at i.
type Heap struct {
	entries []*Entry // backing array; len(entries) is the fixed capacity
	n       int      // number of live entries, occupying slots [0, n)
}

// New returns an empty heap able to hold at most capacity entries.
// Returns ErrBadCapacity if capacity is negative.
func New(capacity int) (*Heap, error) {
	if capacity < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadCapacity, capacity)
	}

	return &Heap{entries: make([]*Entry, capacity)}, nil
}

// NewFromEntries builds a heap from a collection of distinct entries by
// repeated insertion, O(n log n). The heap's capacity equals len(entries).
// Returns ErrNilEntry if any element is nil.
func NewFromEntries(entries []*Entry) (*Heap, error) {
	h := &Heap{entries: make([]*Entry, len(entries))}
	for i, e := range entries {
		if err := h.Insert(e); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
	}

	return h, nil
}

// Size reports the number of live entries. O(1).
func (h *Heap) Size() int { return h.n }

// Capacity reports the fixed size of the backing array. O(1).
func (h *Heap) Capacity() int { return len(h.entries) }

// Insert places e at the first free slot and sifts it up until the heap
// property holds. O(log n). Returns ErrNilEntry or ErrHeapFull.
func (h *Heap) Insert(e *Entry) error {
	// 1) Validate the argument and remaining capacity.
	if e == nil {
		return ErrNilEntry
	}
	if h.n == len(h.entries) {
		return fmt.Errorf("%w: capacity %d", ErrHeapFull, len(h.entries))
	}

	// 2) Occupy the next free slot and restore the invariant upward.
	h.entries[h.n] = e
	e.index = h.n
	h.n++
	h.siftUp(e)

	return nil
}

// PeekMin returns the minimum entry without removing it. O(1).
// Returns ErrHeapEmpty on an empty heap.
func (h *Heap) PeekMin() (*Entry, error) {
	if h.n == 0 {
		return nil, ErrHeapEmpty
	}

	return h.entries[0], nil
}

// ExtractMin removes and returns the minimum entry, marking it NotInHeap.
// O(log n). Returns ErrHeapEmpty on an empty heap.
func (h *Heap) ExtractMin() (*Entry, error) {
	if h.n == 0 {
		return nil, ErrHeapEmpty
	}

	// 1) Detach the root; it is no longer resident anywhere.
	min := h.entries[0]
	min.index = NotInHeap
	h.n--

	// 2) Move the last live entry into the root slot (unless the heap just
	//    became empty) and sift it down to restore the invariant.
	if h.n == 0 {
		h.entries[0] = nil
	} else {
		h.entries[0] = h.entries[h.n]
		h.entries[0].index = 0
		h.entries[h.n] = nil
		h.siftDown(0)
	}

	return min, nil
}

// DecreaseKey lowers e's priority to newValue and sifts it up from its
// current slot. O(log n). newValue must be ≤ the current value; raising a
// priority through this call is a contract violation (ErrValueIncrease).
// Returns ErrNotInHeap if e is not resident in this heap.
func (h *Heap) DecreaseKey(e *Entry, newValue float64) error {
	if e == nil {
		return ErrNilEntry
	}
	if e.index < 0 || e.index >= h.n || h.entries[e.index] != e {
		return ErrNotInHeap
	}
	if newValue > e.value {
		return fmt.Errorf("%w: key=%d current=%g new=%g",
			ErrValueIncrease, e.Key, e.value, newValue)
	}

	e.value = newValue
	h.siftUp(e)

	return nil
}

// Parent returns the slot of i's parent, or -1 for the root. O(1).
// Returns ErrIndexOutOfRange unless 0 ≤ i < Size().
func (h *Heap) Parent(i int) (int, error) {
	if i < 0 || i >= h.n {
		return 0, fmt.Errorf("%w: %d (size %d)", ErrIndexOutOfRange, i, h.n)
	}
	if i == 0 {
		return -1, nil
	}

	return (i - 1) / 2, nil
}

// LeftChild returns the slot of i's left child, or -1 if i has none. O(1).
// Returns ErrIndexOutOfRange unless 0 ≤ i < Size().
func (h *Heap) LeftChild(i int) (int, error) {
	if i < 0 || i >= h.n {
		return 0, fmt.Errorf("%w: %d (size %d)", ErrIndexOutOfRange, i, h.n)
	}
	if left := 2*i + 1; left < h.n {
		return left, nil
	}

	return -1, nil
}

// RightChild returns the slot of i's right child, or -1 if i has none. O(1).
// Returns ErrIndexOutOfRange unless 0 ≤ i < Size().
func (h *Heap) RightChild(i int) (int, error) {
	if i < 0 || i >= h.n {
		return 0, fmt.Errorf("%w: %d (size %d)", ErrIndexOutOfRange, i, h.n)
	}
	if right := 2*i + 2; right < h.n {
		return right, nil
	}

	return -1, nil
}

// IsLeaf reports whether the subtree rooted at slot i is a leaf. O(1).
// Returns ErrIndexOutOfRange unless 0 ≤ i < Size().
func (h *Heap) IsLeaf(i int) (bool, error) {
	if i < 0 || i >= h.n {
		return false, fmt.Errorf("%w: %d (size %d)", ErrIndexOutOfRange, i, h.n)
	}

	return 2*i+1 >= h.n, nil
}

// siftUp bubbles e toward the root while it is strictly smaller than its
// parent, swapping entries and keeping both back-pointers in sync.
func (h *Heap) siftUp(e *Entry) {
	for e.index > 0 {
		parent := (e.index - 1) / 2
		if !e.less(h.entries[parent]) {
			break
		}
		h.swap(e.index, parent)
	}
}

// siftDown pushes the entry at slot i toward the leaves: at each step it
// picks the smaller of the two children and swaps if that child is smaller
// than the current entry, stopping at a leaf or when neither child is
// smaller. Iterative on purpose; recursion depth is a liability on large
// heaps and the loop is the same computation.
func (h *Heap) siftDown(i int) {
	for {
		left := 2*i + 1
		if left >= h.n { // leaf
			return
		}

		// Pick the smaller child; the right child may not exist.
		smallest := left
		if right := left + 1; right < h.n && h.entries[right].less(h.entries[left]) {
			smallest = right
		}
		if !h.entries[smallest].less(h.entries[i]) {
			return
		}

		h.swap(i, smallest)
		i = smallest
	}
}

// swap exchanges the entries at slots i and j and repairs their back-pointers.
func (h *Heap) swap(i, j int) {
	h.entries[i], h.entries[j] = h.entries[j], h.entries[i]
	h.entries[i].index = i
	h.entries[j].index = j
}

// Verify checks the heap's two structural invariants and returns a
// descriptive error on the first violation. Intended for tests, which call
// it after every mutation; it is O(n) and never mutates the heap.
func (h *Heap) Verify() error {
	// 1) Index property: each live entry's back-pointer matches its slot.
	for i := 0; i < h.n; i++ {
		if h.entries[i] == nil {
			return fmt.Errorf("minheap: live slot %d is nil", i)
		}
		if h.entries[i].index != i {
			return fmt.Errorf("minheap: entry key=%d at slot %d has index %d",
				h.entries[i].Key, i, h.entries[i].index)
		}
	}

	// 2) Min-heap property at every non-root slot.
	for i := 1; i < h.n; i++ {
		parent := (i - 1) / 2
		if h.entries[i].less(h.entries[parent]) {
			return fmt.Errorf("minheap: heap property violated at slot %d: parent value=%g > value=%g",
				i, h.entries[parent].value, h.entries[i].value)
		}
	}

	return nil
}
