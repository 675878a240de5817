package list

import "testing"

func TestInListLifecycle(t *testing.T) {
	a := new(List[Int])
	b := new(List[Int])
	e := &Int{Value: 1}

	if InList(e) {
		t.Error("fresh element reports being in a list")
	}

	a.PushBack(e)
	if !InList(e) {
		t.Error("inserted element does not report being in a list")
	}

	Remove(e)
	if InList(e) {
		t.Error("removed element still reports being in a list")
	}

	// A detached element is immediately reusable, in another list too.
	b.PushBack(e)
	if !InList(e) || b.Front() != e {
		t.Error("element could not be reinserted in another list after removal")
	}
}

func TestRemoveDetachedIsNoop(t *testing.T) {
	e := &Int{Value: 1}

	Remove(e)
	Remove(e)

	if InList(e) {
		t.Error("repeated removal left the element linked")
	}

	l := new(List[Int])
	l.PushBack(e)
	assertList(t, l, 1)
}

func TestInsertBeforeAfter(t *testing.T) {
	list := new(List[Int])
	mark := &Int{Value: 2}
	list.PushBack(mark)

	// Relative insertion does not need the container handle.
	InsertBefore(mark, &Int{Value: 1})
	InsertAfter(mark, &Int{Value: 3})

	assertList(t, list, 1, 2, 3)
}

func TestMoveTransfersPosition(t *testing.T) {
	list := new(List[Int])

	src := &Int{Value: 1}
	list.PushBack(&Int{Value: 0})
	list.PushBack(src)
	list.PushBack(&Int{Value: 2})

	// Relocate the middle element to new storage.
	dst := &Int{Value: 1}
	Move(dst, src)

	if InList(src) {
		t.Error("move source still reports being in a list")
	}
	if !InList(dst) {
		t.Error("move destination does not report being in a list")
	}
	if list.Next(list.Front()) != dst {
		t.Error("move destination did not take over the source position")
	}
	assertList(t, list, 0, 1, 2)
}

func TestMoveFromDetached(t *testing.T) {
	src := &Int{Value: 1}
	dst := &Int{Value: 1}

	Move(dst, src)

	if InList(dst) {
		t.Error("moving from a detached element left the destination linked")
	}
}

func TestOffsetOfEmbeddedNode(t *testing.T) {
	// The node sits behind other fields and inside an embedded struct.
	type Inner struct {
		Name string
		_    Node
	}
	type outer struct {
		Tag int
		Inner
	}

	l := new(List[outer])
	l.PushBack(&outer{Tag: 1})
	l.PushBack(&outer{Tag: 2})

	if n := l.Len(); n != 2 {
		t.Errorf("list length mismatch, expected 2 but found %d", n)
	}
	if front := l.Front(); front.Tag != 1 {
		t.Errorf("front mismatch, expected tag 1 but found %d", front.Tag)
	}
	if next := l.Next(l.Front()); next.Tag != 2 {
		t.Errorf("second element mismatch, expected tag 2 but found %d", next.Tag)
	}
}

func TestTypeWithoutNodePanics(t *testing.T) {
	type plain struct{ Value int }

	defer func() {
		if recover() == nil {
			t.Error("inserting a type without a list.Node field did not panic")
		}
	}()

	l := new(List[plain])
	l.PushBack(&plain{Value: 1})
}
