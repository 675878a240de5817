package list

// Node values must be embedded as a struct field in the values inserted in a
// list.
//
// Typically, an unnamed field would be used to embed the Node value:
//
//	type Person struct {
//		FirstName string
//		LastName  string
//		// Declaring this field allows values of the Person type to be
//		// inserted in linked lists.
//		_ list.Node
//	}
//
// Note that the Node field does not have to be at a specific position in the
// struct, and may also be part of an embedded struct field. If multiple
// fields of type Node are declared in the struct, the first one is always
// used and the other ones are ignored, so a given element type has a single
// list membership at a time.
//
// The zero value of a Node is a detached node; once touched by a list
// operation a detached node points at itself through both links. A Node must
// never be copied while it is in a list: the copy and the original would both
// claim the same list slot, and relinking either of them corrupts the chain.
// To relocate a value that may be linked, use Move.
type Node struct{ next, prev *Node }

// lazyInit normalizes the zero value to the canonical detached form, a
// self-loop of length one.
func (n *Node) lazyInit() {
	if n.next == nil {
		n.next = n
		n.prev = n
	}
}

// inList reports whether n is linked into a chain. The zero value and the
// self-linked form are both detached.
func (n *Node) inList() bool { return n.next != nil && n.next != n }

// unlink splices n out of whatever chain it is in and resets it to the
// detached form. Unlinking a detached node is a no-op, the self-loop makes
// the neighbor updates write back the values already in place.
func (n *Node) unlink() {
	if n.next != nil {
		n.next.prev = n.prev
		n.prev.next = n.next
	}
	n.next = n
	n.prev = n
}

// insertBefore links m immediately before n in the chain n belongs to.
// m must be detached.
func (n *Node) insertBefore(m *Node) {
	n.prev.next = m
	m.prev = n.prev
	m.next = n
	n.prev = m
}

// insertAfter links m immediately after n in the chain n belongs to.
// m must be detached.
func (n *Node) insertAfter(m *Node) {
	n.next.prev = m
	m.next = n.next
	m.prev = n
	n.next = m
}

// moveFrom transfers the chain position of src to n: the neighbors of src
// are repointed at n and src is left detached. When src is detached, n
// becomes detached too. Any previous links held by n are overwritten, the
// caller is responsible for unlinking n first if it could be in a chain.
func (n *Node) moveFrom(src *Node) {
	if src.inList() {
		n.next = src.next
		n.prev = src.prev
		src.next.prev = n
		src.prev.next = n
		src.next = src
		src.prev = src
	} else {
		n.next = n
		n.prev = n
	}
}

// InList reports whether elem is currently a member of a list.
func InList[E any](elem *E) bool {
	return nodeOf(elem).inList()
}

// Remove detaches elem from whatever list it is currently in and returns it,
// so that removal chains into a following insertion:
//
//	l.Insert(pos, list.Remove(elem))
//
// Removing an element that is not in a list is a no-op. The detached element
// can immediately be inserted again, in the same list or another one.
func Remove[E any](elem *E) *E {
	nodeOf(elem).unlink()
	return elem
}

// InsertBefore links elem immediately before mark, in the list mark belongs
// to. Neither element needs to be reached through a container handle, which
// makes this useful when no iterator is at hand.
//
// elem must not already be in a list; linking it anyway silently corrupts
// both chains.
func InsertBefore[E any](mark, elem *E) {
	m := nodeOf(mark)
	m.lazyInit()
	e := nodeOf(elem)
	e.lazyInit()
	m.insertBefore(e)
}

// InsertAfter links elem immediately after mark, in the list mark belongs
// to.
//
// elem must not already be in a list; linking it anyway silently corrupts
// both chains.
func InsertAfter[E any](mark, elem *E) {
	m := nodeOf(mark)
	m.lazyInit()
	e := nodeOf(elem)
	e.lazyInit()
	m.insertAfter(e)
}

// Move transfers the list membership of src to dst: if src was in a list,
// dst takes over its position and src is left detached; if src was
// detached, dst ends up detached as well. This is the escape hatch for
// relocating linked values, for example when they live in a slice whose
// backing array is about to be reallocated.
//
// dst must not be in a list of its own when the transfer happens.
func Move[E any](dst, src *E) {
	nodeOf(dst).moveFrom(nodeOf(src))
}
