package internal

import "reflect"

// ElementTag identifies coroutine and yield values. The numbers are fixed so
// every copy of this package loaded in a process agrees on them.
type ElementTag uint32

const (
	CoroutineTag ElementTag = 0xeac8
	YieldTag     ElementTag = 0xeac9
)

// CoroutineHandler renders a coroutine once all of its children yielded.
type CoroutineHandler func(props any, yields []ReifiedYield) any

// Tagged is the shape shared by coroutine and yield values across copies of
// this package. The method returns a plain uint32 so foreign copies match.
type Tagged interface {
	ElementTag() uint32
}

type Coroutine struct {
	key      Key
	children any
	handler  CoroutineHandler
	props    any

	snapshot propsSnapshot
}

func CreateCoroutine(children any, handler CoroutineHandler, props any, key any) *Coroutine {
	return &Coroutine{
		key:      KeyOf(key),
		children: children,
		handler:  handler,
		props:    props,
		snapshot: snapshotProps(props),
	}
}

func (c *Coroutine) ElementTag() uint32 { return uint32(CoroutineTag) }

func (c *Coroutine) Key() Key { return c.key }

func (c *Coroutine) Children() any { return c.children }

func (c *Coroutine) Handler() CoroutineHandler { return c.handler }

func (c *Coroutine) Props() any {
	c.snapshot.verify("coroutine", c.props)
	return c.props
}

type Yield struct {
	key          Key
	props        any
	continuation any

	snapshot propsSnapshot
}

func CreateYield(props any, continuation any, key any) *Yield {
	return &Yield{
		key:          KeyOf(key),
		props:        props,
		continuation: continuation,
		snapshot:     snapshotProps(props),
	}
}

func (y *Yield) ElementTag() uint32 { return uint32(YieldTag) }

func (y *Yield) Key() Key { return y.key }

// Continuation is the component type rendering resumes with.
func (y *Yield) Continuation() any { return y.continuation }

func (y *Yield) Props() any {
	y.snapshot.verify("yield", y.props)
	return y.props
}

// IsCoroutine reports whether v is a coroutine value. It never panics.
func IsCoroutine(v any) bool {
	return hasTag(v, CoroutineTag)
}

// IsYield reports whether v is a yield value. It never panics.
func IsYield(v any) bool {
	return hasTag(v, YieldTag)
}

func hasTag(v any, tag ElementTag) (ok bool) {
	switch t := v.(type) {
	case *Coroutine:
		return t != nil && tag == CoroutineTag
	case *Yield:
		return t != nil && tag == YieldTag
	case Tagged:
		rv := reflect.ValueOf(v)
		switch rv.Kind() {
		case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
			if rv.IsNil() {
				return false
			}
		}

		defer func() {
			if recover() != nil {
				ok = false
			}
		}()

		return t.ElementTag() == uint32(tag)
	default:
		return false
	}
}
