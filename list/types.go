package list

import (
	"fmt"
	"reflect"
	"sync"
	"unsafe"
)

var (
	nodeType = reflect.TypeOf(Node{})

	// Offsets are resolved once per element type and shared by every list
	// and package-level helper instantiated on that type.
	offsets sync.Map // reflect.Type => uintptr
)

// offsetOf returns the byte offset of the Node field within E.
//
// The program panics if E carries no usable Node field; this is a
// definition-time mistake of the element type, not a recoverable condition.
func offsetOf[E any]() uintptr {
	rt := reflect.TypeOf((*E)(nil)).Elem()
	if off, ok := offsets.Load(rt); ok {
		return off.(uintptr)
	}
	off, ok := findNode(rt)
	if !ok {
		panic(fmt.Errorf("%s: type contains no exported list.Node field and therefore cannot be used as element in an intrusive list", rt))
	}
	actual, _ := offsets.LoadOrStore(rt, off)
	return actual.(uintptr)
}

func findNode(rt reflect.Type) (uintptr, bool) {
	if rt.Kind() != reflect.Struct {
		return 0, false
	}
	n := rt.NumField()

	for i := 0; i < n; i++ {
		f := rt.Field(i)

		if f.PkgPath != "" && f.Name != "_" { // unexported
			continue
		}

		if f.Type == nodeType {
			return f.Offset, true
		}

		if f.Anonymous && f.Type.Kind() == reflect.Struct {
			if off, ok := findNode(f.Type); ok {
				return f.Offset + off, true
			}
		}
	}

	return 0, false
}

// nodeOf returns the Node embedded in elem.
//
// The offset returned by reflect is a guaranteed property of the struct
// layout, and unsafe.Add keeps the arithmetic within the same allocation,
// so both translations below stay inside the rules of the unsafe package.
func nodeOf[E any](elem *E) *Node {
	return (*Node)(unsafe.Add(unsafe.Pointer(elem), offsetOf[E]()))
}

// elemOf returns the element owning the given embedded node.
func elemOf[E any](node *Node) *E {
	return (*E)(unsafe.Add(unsafe.Pointer(node), -int(offsetOf[E]())))
}
