package internal

import (
	"fmt"
	"iter"
	"reflect"
)

type TypeOfWork int

const (
	IndeterminateComponent TypeOfWork = iota // not yet known to be functional or class
	FunctionalComponent
	ClassComponent
	HostContainer // root of a host tree
	HostComponent
	CoroutineComponent
	CoroutineHandlerPhase
	YieldComponent
)

func (t TypeOfWork) String() string {
	switch t {
	case IndeterminateComponent:
		return "indeterminate"
	case FunctionalComponent:
		return "functional"
	case ClassComponent:
		return "class"
	case HostContainer:
		return "host-container"
	case HostComponent:
		return "host"
	case CoroutineComponent:
		return "coroutine"
	case CoroutineHandlerPhase:
		return "coroutine-handler"
	case YieldComponent:
		return "yield"
	default:
		return "unknown"
	}
}

// ClassComponentType marks component types whose instances live in the
// fiber's StateNode. Fibers of such types are tagged ClassComponent; this
// package only checks for the method, the reconciler calls it to build the
// instance on mount.
type ClassComponentType interface {
	NewInstance(props any) any
}

// Fiber is a unit of work in the render tree.
// Only the reconciler owns the shape of a fiber; this package reads Tag,
// Type, StateNode and Return, and keeps the child/sibling links in order.
type Fiber struct {
	Tag  TypeOfWork
	Key  Key
	Type any

	// the instance for class components, the *FiberRoot for host containers
	StateNode any

	// parent link, used for upward traversal only
	Return *Fiber

	Child   *Fiber
	Sibling *Fiber

	PendingProps  any
	MemoizedProps any
}

func CreateHostContainerFiber() *Fiber {
	return &Fiber{Tag: HostContainer}
}

func CreateFiberFromElementType(typ any, key Key) *Fiber {
	f := &Fiber{
		Tag:  IndeterminateComponent,
		Key:  key,
		Type: typ,
	}

	switch typ.(type) {
	case ClassComponentType:
		f.Tag = ClassComponent
	case string:
		f.Tag = HostComponent
	}

	return f
}

// AppendChild links child as the last child of f.
func (f *Fiber) AppendChild(child *Fiber) {
	child.Return = f
	child.Sibling = nil

	if f.Child == nil {
		f.Child = child
		return
	}

	last := f.Child
	for last.Sibling != nil {
		last = last.Sibling
	}
	last.Sibling = child
}

func (f *Fiber) Children() iter.Seq[*Fiber] {
	return func(yield func(*Fiber) bool) {
		child := f.Child

		for child != nil {
			if !yield(child) {
				return
			}

			child = child.Sibling
		}
	}
}

// Ancestors walks the Return chain, starting at the parent of f.
func (f *Fiber) Ancestors() iter.Seq[*Fiber] {
	return func(yield func(*Fiber) bool) {
		if f == nil {
			return
		}

		for node := f.Return; node != nil; node = node.Return {
			if !yield(node) {
				return
			}
		}
	}
}

func (f *Fiber) String() string {
	if f == nil {
		return "<nil>"
	}
	if f.Key.IsSet() {
		return fmt.Sprintf("%s(%v key=%q)", f.Tag, f.Type, f.Key.value)
	}
	return fmt.Sprintf("%s(%v)", f.Tag, f.Type)
}

// Key is an element key. The zero value is "no key", which is distinct from
// every string including "".
type Key struct {
	value string
	set   bool
}

var NoKey = Key{}

// KeyOf coerces v to a key. nil, typed nil pointers and NoKey give NoKey.
func KeyOf(v any) Key {
	switch k := v.(type) {
	case nil:
		return NoKey
	case Key:
		return k
	case string:
		return Key{value: k, set: true}
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		if rv.IsNil() {
			return NoKey
		}
	}

	return Key{value: fmt.Sprint(v), set: true}
}

func (k Key) Value() (string, bool) { return k.value, k.set }

func (k Key) IsSet() bool { return k.set }

func (k Key) String() string {
	if !k.set {
		return "<no key>"
	}
	return k.value
}

// SameType reports whether a and b are the same component type.
// Funcs match by code pointer: a declared function is always itself, but
// closures built from the same literal are indistinguishable. Other values
// that cannot be compared (maps, slices) never match.
func SameType(a, b any) (same bool) {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if ta.Kind() == reflect.Func {
		return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
	}
	if !ta.Comparable() {
		return false
	}

	// comparable structs can still hold uncomparable interface fields
	defer func() {
		if recover() != nil {
			same = false
		}
	}()

	return a == b
}
