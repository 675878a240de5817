package list

// Iterator is a bidirectional iterator over the elements of a List. The
// position right past the last element (and right before the first one, the
// chain being circular) is the end position returned by List.End.
//
// Iterators are small values meant to be copied freely. Two iterators over
// the same list compare equal with == when they designate the same position,
// which is how iteration loops detect their ends:
//
//	for it := l.Begin(); it != l.End(); it = it.Next() {
//		elem := it.Value()
//		...
//	}
//
// An iterator stays valid as long as the element it is on remains in a list;
// erasing the element an iterator is on invalidates it (Erase returns the
// iterator to continue with).
type Iterator[E any] struct {
	list *List[E]
	node *Node
}

// Begin returns an iterator on the first element of the list. On an empty
// list Begin equals End.
func (l *List[E]) Begin() Iterator[E] {
	l.lazyInit()
	return Iterator[E]{list: l, node: l.root.next}
}

// End returns the iterator on the past-the-end position.
func (l *List[E]) End() Iterator[E] {
	l.lazyInit()
	return Iterator[E]{list: l, node: &l.root}
}

// RBegin returns an iterator on the last element of the list, for backward
// walks:
//
//	for it := l.RBegin(); it != l.REnd(); it = it.Prev() {
//		...
//	}
//
// On an empty list RBegin equals REnd.
func (l *List[E]) RBegin() Iterator[E] {
	l.lazyInit()
	return Iterator[E]{list: l, node: l.root.prev}
}

// REnd returns the iterator on the position before the first element, which
// is the same sentinel position as End.
func (l *List[E]) REnd() Iterator[E] {
	return l.End()
}

// Value returns the element the iterator is on.
//
// The method panics when called on the end position: the sentinel node backs
// no element, translating it would produce a pointer to nothing.
func (it Iterator[E]) Value() *E {
	if it.node == &it.list.root {
		panic("list: Value called on the end iterator")
	}
	return elemOf[E](it.node)
}

// Next returns an iterator on the following position. Advancing from the
// last element reaches the end position; advancing from the end position
// wraps to the first element.
func (it Iterator[E]) Next() Iterator[E] {
	return Iterator[E]{list: it.list, node: it.node.next}
}

// Prev returns an iterator on the preceding position. Stepping back from the
// first element reaches the end position.
func (it Iterator[E]) Prev() Iterator[E] {
	return Iterator[E]{list: it.list, node: it.node.prev}
}

// AtEnd reports whether the iterator is on the end position.
func (it Iterator[E]) AtEnd() bool {
	return it.node == &it.list.root
}
