// Package list contains the implementation of a type-safe, intrusive,
// doubly-linked list.
//
// The standard library provides an implementation of a non-intrusive
// doubly-linked list in the container/list package. Non-intrusive means that
// the list tracks values via an intermediary object, which carries a reference
// to the actual values. This double indirection level often impacts usability
// of the code, and requires programs to maintain more (often circular)
// references, which are error prone and make the code harder to read.
// The indirections also increase the number of objects allocated on the heap,
// and the chances of CPU cache misses by requiring more pointer lookups to
// access the data.
//
// The linked list implementation in this package adopts a different approach
// to enable programs to use lists without the hassle of managing an
// indirection layer. Values inserted in the list must be struct types which
// contain a field of type Node, that the list uses to link the values
// together without requiring an extra object. The list never allocates: every
// operation rewires the Node fields of values owned by the caller, and every
// operation other than Len and the whole-list algorithms runs in constant
// time.
//
// Lists are organized as a circular chain of nodes closed by a sentinel node
// owned by the List value itself. A node that is not part of any chain points
// at itself, which makes membership observable from the node alone and lets
// removal work without knowing which list a value belongs to.
//
// To use the list, a program must first declare the type of values it will
// push in:
//
//	type Object struct {
//		Data string
//		_    list.Node
//	}
//
// Lists can be constructed by simple declaration since their zero-value
// represents an empty list, then the program can start inserting values:
//
//	var l list.List[Object]
//	l.PushBack(&Object{Data: "A"})
//	l.PushBack(&Object{Data: "B"})
//	l.PushBack(&Object{Data: "C"})
//
//	for x := l.Front(); x != nil; x = l.Next(x) {
//		...
//	}
//
// The package offers no synchronization; programs sharing a list across
// goroutines must arrange their own locking, every operation mutates link
// state through multiple plain writes.
package list

import "fmt"

// List values are containers of objects which support insertion and removal
// at the front and back of the list, constant-time removal and splicing at
// any position, and in-place merge, unique and sort.
//
// The values inserted in the list must be passed as pointers to struct values
// of types that contain a Node field.
//
// The zero-value is a valid, empty list. A List must not be copied or moved
// in memory after first use: member nodes link back to the sentinel node
// stored inside the List value. To transfer contents between lists use Take,
// Swap or the splice operations.
type List[E any] struct {
	root Node
}

func (l *List[E]) lazyInit() { l.root.lazyInit() }

// Empty reports whether the list contains no elements.
func (l *List[E]) Empty() bool { return !l.root.inList() }

// Len returns the number of elements in the list.
//
// NOTE: This is an O(n) operation. The list caches no element count so that
// whole-range splices stay constant-time.
func (l *List[E]) Len() int {
	n := 0
	for node := l.root.next; node != nil && node != &l.root; node = node.next {
		n++
	}
	return n
}

// Front returns the element at the front of the list, or nil if the list is
// empty.
func (l *List[E]) Front() *E {
	if !l.root.inList() {
		return nil
	}
	return elemOf[E](l.root.next)
}

// Back returns the element at the back of the list, or nil if the list is
// empty.
func (l *List[E]) Back() *E {
	if !l.root.inList() {
		return nil
	}
	return elemOf[E](l.root.prev)
}

// Next returns the element right after elem in the list, or nil if elem is
// the last element.
//
// Next can be used to iterate forward through the list:
//
//	for elem := l.Front(); elem != nil; elem = l.Next(elem) {
//		...
//	}
func (l *List[E]) Next(elem *E) *E {
	if n := nodeOf(elem).next; n != nil && n != &l.root {
		return elemOf[E](n)
	}
	return nil
}

// Prev returns the element right before elem in the list, or nil if elem is
// the first element.
//
// Prev can be used to iterate backward through the list:
//
//	for elem := l.Back(); elem != nil; elem = l.Prev(elem) {
//		...
//	}
func (l *List[E]) Prev(elem *E) *E {
	if p := nodeOf(elem).prev; p != nil && p != &l.root {
		return elemOf[E](p)
	}
	return nil
}

// PushFront inserts elem at the front of the list.
//
// The method panics if elem is already part of a list.
func (l *List[E]) PushFront(elem *E) {
	l.lazyInit()
	n := nodeOf(elem)
	n.lazyInit()
	if n.inList() {
		panic(fmt.Errorf("%T: element is already in a list and cannot be inserted again", elem))
	}
	l.root.insertAfter(n)
}

// PushBack inserts elem at the back of the list.
//
// The method panics if elem is already part of a list.
func (l *List[E]) PushBack(elem *E) {
	l.lazyInit()
	n := nodeOf(elem)
	n.lazyInit()
	if n.inList() {
		panic(fmt.Errorf("%T: element is already in a list and cannot be inserted again", elem))
	}
	l.root.insertBefore(n)
}

// PushFrontList moves the contents of other to the front of the list, leaving
// other empty. The operation runs in constant time.
func (l *List[E]) PushFrontList(other *List[E]) {
	l.SpliceList(l.Begin(), other)
}

// PushBackList moves the contents of other to the back of the list, leaving
// other empty. The operation runs in constant time.
func (l *List[E]) PushBackList(other *List[E]) {
	l.SpliceList(l.End(), other)
}

// RemoveFront removes the element at the front of the list and returns it, or
// returns nil if the list was empty. The removed element is detached and can
// immediately be inserted in this or another list.
func (l *List[E]) RemoveFront() *E {
	if !l.root.inList() {
		return nil
	}
	n := l.root.next
	n.unlink()
	return elemOf[E](n)
}

// RemoveBack removes the element at the back of the list and returns it, or
// returns nil if the list was empty.
func (l *List[E]) RemoveBack() *E {
	if !l.root.inList() {
		return nil
	}
	n := l.root.prev
	n.unlink()
	return elemOf[E](n)
}

// MoveToFront moves elem to the front of the list.
//
// The operation is idempotent, it does nothing if elem is already at the
// front of the list. If elem is not part of any list, it is simply inserted
// at the front.
func (l *List[E]) MoveToFront(elem *E) {
	l.lazyInit()
	n := nodeOf(elem)
	n.lazyInit()
	if l.root.next == n {
		return
	}
	n.unlink()
	l.root.insertAfter(n)
}

// MoveToBack moves elem to the back of the list.
//
// The operation is idempotent, it does nothing if elem is already at the back
// of the list. If elem is not part of any list, it is simply inserted at the
// back.
func (l *List[E]) MoveToBack(elem *E) {
	l.lazyInit()
	n := nodeOf(elem)
	n.lazyInit()
	if l.root.prev == n {
		return
	}
	n.unlink()
	l.root.insertBefore(n)
}

// Insert links the given elements immediately before pos, preserving their
// order, and returns an iterator on the first element inserted, or pos when
// no elements were given.
//
// The method panics if one of the elements is already part of a list.
func (l *List[E]) Insert(pos Iterator[E], elems ...*E) Iterator[E] {
	first := pos
	for i, elem := range elems {
		n := nodeOf(elem)
		n.lazyInit()
		if n.inList() {
			panic(fmt.Errorf("%T: element is already in a list and cannot be inserted again", elem))
		}
		pos.node.insertBefore(n)
		if i == 0 {
			first = Iterator[E]{list: l, node: n}
		}
	}
	return first
}

// InsertAfter links elem immediately after pos and returns an iterator on it.
//
// The method panics if elem is already part of a list.
func (l *List[E]) InsertAfter(pos Iterator[E], elem *E) Iterator[E] {
	n := nodeOf(elem)
	n.lazyInit()
	if n.inList() {
		panic(fmt.Errorf("%T: element is already in a list and cannot be inserted again", elem))
	}
	pos.node.insertAfter(n)
	return Iterator[E]{list: l, node: n}
}

// Erase unlinks the element at pos and returns an iterator on its successor.
// The unlinked element is detached and immediately reusable.
func (l *List[E]) Erase(pos Iterator[E]) Iterator[E] {
	next := pos.node.next
	pos.node.unlink()
	return Iterator[E]{list: l, node: next}
}

// EraseRange unlinks every element in the half-open range [first, last) and
// returns last. The cost is linear in the length of the range; each unlinked
// element is detached and immediately reusable.
func (l *List[E]) EraseRange(first, last Iterator[E]) Iterator[E] {
	for node := first.node; node != last.node; {
		next := node.next
		node.unlink()
		node = next
	}
	return last
}

// Clear unlinks every element and resets the list to empty. Each element is
// left detached. The operation runs in linear time.
func (l *List[E]) Clear() {
	for node := l.root.next; node != nil && node != &l.root; {
		next := node.next
		node.next = node
		node.prev = node
		node = next
	}
	l.root.next = &l.root
	l.root.prev = &l.root
}

// Swap exchanges the contents of the two lists in constant time. Member
// elements keep their nodes untouched in identity, they simply change owner.
func (l *List[E]) Swap(other *List[E]) {
	if l == other {
		return
	}
	l.lazyInit()
	other.lazyInit()
	var tmp Node
	tmp.moveFrom(&l.root)
	l.root.moveFrom(&other.root)
	other.root.moveFrom(&tmp)
}

// Take moves the entire contents of other into l in constant time, leaving
// other empty.
//
// Like a container move assignment, Take does not unlink elements previously
// stored in l: they remain linked to each other but are no longer reachable
// from any list. Call Clear first to detach them individually.
func (l *List[E]) Take(other *List[E]) {
	if l == other {
		return
	}
	other.lazyInit()
	if l.root.inList() {
		l.root.next.prev = l.root.prev
		l.root.prev.next = l.root.next
	}
	l.root.moveFrom(&other.root)
}

// Splice removes elem from whatever list it is currently in, this one or any
// other, and links it immediately before pos. The operation runs in constant
// time.
func (l *List[E]) Splice(pos Iterator[E], elem *E) {
	n := nodeOf(elem)
	n.unlink()
	pos.node.insertBefore(n)
}

// SpliceList moves the entire contents of other before pos, leaving other
// empty. The operation runs in constant time.
func (l *List[E]) SpliceList(pos Iterator[E], other *List[E]) {
	l.SpliceRange(pos, other.Begin(), other.End())
}

// SpliceRange moves the elements of the half-open range [first, last) before
// pos, preserving their relative order. The range may live in this list or in
// another one; either way the cost is constant regardless of the range
// length, only the four boundary links are rewired.
//
// pos must not be inside [first, last). Splicing a range before its own first
// element, or before last, is a no-op.
func (l *List[E]) SpliceRange(pos, first, last Iterator[E]) {
	if first.node == last.node || pos.node == first.node || pos.node == last.node {
		return
	}
	beforePos := pos.node.prev
	beforeFirst := first.node.prev
	beforeLast := last.node.prev

	beforePos.next = first.node
	beforeFirst.next = last.node
	beforeLast.next = pos.node

	pos.node.prev = beforeLast
	first.node.prev = beforePos
	last.node.prev = beforeFirst
}

// Merge moves every element of other into l, assuming both lists are already
// sorted against less. The merge is stable: when elements compare equal,
// the run already in l stays ahead of the run coming from other. The
// operation runs in linear time and leaves other empty.
func (l *List[E]) Merge(other *List[E], less func(a, b *E) bool) {
	if l == other {
		return
	}
	it := l.Begin()
	ot := other.Begin()

	for ot != other.End() {
		if it == l.End() {
			l.SpliceRange(l.End(), ot, other.End())
			return
		}
		if less(ot.Value(), it.Value()) {
			moved := ot
			ot = ot.Next()
			l.Splice(it, moved.Value())
		} else {
			it = it.Next()
		}
	}
}

// Unique removes consecutive elements that compare equal against eq, keeping
// the first element of each run. On a sorted list this leaves every value
// once. The operation runs in linear time; removed elements are detached.
func (l *List[E]) Unique(eq func(a, b *E) bool) {
	it := l.Begin()
	if it == l.End() {
		return
	}
	for next := it.Next(); next != l.End(); next = it.Next() {
		if eq(it.Value(), next.Value()) {
			Remove(next.Value())
		} else {
			it = next
		}
	}
}

// Sort orders the list in place against less using an insertion sort.
//
// The sort is stable, elements that compare equal keep their relative order.
// It runs in O(n²) worst case but O(n) on nearly-sorted input, and performs
// no allocation, which is why it is preferred here over a merge sort that
// would need extra bookkeeping to partition an intrusive chain.
func (l *List[E]) Sort(less func(a, b *E) bool) {
	var next Iterator[E]
	for i := l.Begin(); i != l.End(); i = next {
		// Cache the successor because i may move.
		next = i.Next()
		j := i
		for j != l.Begin() && less(i.Value(), j.Prev().Value()) {
			j = j.Prev()
		}
		if i != j {
			l.Splice(j, i.Value())
		}
	}
}

// Range calls f for each element of the list in order, stopping early if f
// returns false. It is safe for f to detach the element it was called with.
func (l *List[E]) Range(f func(*E) bool) {
	for node := l.root.next; node != nil && node != &l.root; {
		next := node.next
		if !f(elemOf[E](node)) {
			return
		}
		node = next
	}
}
