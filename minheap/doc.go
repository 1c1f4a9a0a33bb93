// Package minheap provides an indexed binary min-heap with O(log n)
// decrease-key, the priority queue underneath the search package's
// shortest-path algorithms.
//
// What makes it "indexed":
//
//   - Every Entry carries a back-pointer (its current slot in the heap
//     array), kept in sync on every swap. Locating an arbitrary entry for
//     DecreaseKey is therefore O(1) instead of an O(n) scan, and the
//     sift-up that follows is O(log n).
//   - An entry that is not resident in any heap has index NotInHeap (-1).
//
// Core operations:
//
//   - New(capacity):         empty heap with a fixed backing array.
//   - NewFromEntries(es):    bulk construction by repeated insert, O(n log n).
//   - Insert(e):             O(log n) sift-up; fails when full.
//   - PeekMin() / ExtractMin(): O(1) / O(log n); fail on an empty heap.
//   - DecreaseKey(e, v):     O(log n); v must be ≤ the entry's current
//     value — raising a priority through this call is a contract
//     violation and is rejected.
//   - Parent/LeftChild/RightChild/IsLeaf(i): O(1) index arithmetic,
//     validated against the live range [0, Size()).
//
// Invariants (checked by Verify, which tests call after every mutation):
//
//  1. Min-heap property: for every non-root slot i,
//     value(parent(i)) ≤ value(i), with parent(i) = (i-1)/2.
//  2. Index property: for every live slot i, the entry stored at i has
//     back-pointer i.
//
// Entries order by value; ties break by key, so the comparator is stable.
//
// Error handling (sentinel errors):
//
//   - ErrBadCapacity      negative capacity passed to New.
//   - ErrNilEntry         nil *Entry passed to Insert/NewFromEntries/DecreaseKey.
//   - ErrHeapFull         Insert on a heap at capacity.
//   - ErrHeapEmpty        PeekMin/ExtractMin on an empty heap.
//   - ErrNotInHeap        DecreaseKey on an entry not resident in this heap.
//   - ErrValueIncrease    DecreaseKey with newValue > current value.
//   - ErrIndexOutOfRange  structural query outside [0, Size()).
//
// The heap is not safe for concurrent use; within one search exactly one
// goroutine owns it.
package minheap
