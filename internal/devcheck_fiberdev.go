//go:build fiberdev

package internal

import (
	"fmt"
	"reflect"

	"github.com/google/go-cmp/cmp"
)

// propsSnapshot keeps a deep copy of the props a value was built with, so a
// later read can tell whether someone mutated them in place.
type propsSnapshot struct {
	props any
}

func snapshotProps(props any) propsSnapshot {
	if props == nil {
		return propsSnapshot{}
	}

	c := cloneValue(reflect.ValueOf(props), make(map[cloneKey]reflect.Value))
	return propsSnapshot{props: c.Interface()}
}

var snapshotOptions = cmp.Options{
	cmp.Exporter(func(reflect.Type) bool { return true }),
	cmp.FilterPath(func(p cmp.Path) bool {
		t := p.Last().Type()
		return t != nil && t.Kind() == reflect.Func
	}, cmp.Ignore()),
}

func (s propsSnapshot) verify(kind string, props any) {
	if s.props == nil && props == nil {
		return
	}

	if diff := cmp.Diff(s.props, props, snapshotOptions); diff != "" {
		panic(fmt.Sprintf("%s props were mutated after construction (-created +now):\n%s", kind, diff))
	}
}

// cloneKey identifies an already cloned pointer. The type is part of the
// key because a struct and its first field share an address.
type cloneKey struct {
	ptr uintptr
	typ reflect.Type
}

func cloneValue(v reflect.Value, seen map[cloneKey]reflect.Value) reflect.Value {
	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			return v
		}
		key := cloneKey{ptr: v.Pointer(), typ: v.Type()}
		if c, ok := seen[key]; ok {
			return c
		}
		c := reflect.New(v.Type().Elem())
		seen[key] = c
		c.Elem().Set(cloneValue(v.Elem(), seen))
		return c

	case reflect.Interface:
		if v.IsNil() {
			return v
		}
		c := reflect.New(v.Type()).Elem()
		c.Set(cloneValue(v.Elem(), seen))
		return c

	case reflect.Map:
		if v.IsNil() {
			return v
		}
		c := reflect.MakeMapWithSize(v.Type(), v.Len())
		iter := v.MapRange()
		for iter.Next() {
			c.SetMapIndex(iter.Key(), cloneValue(iter.Value(), seen))
		}
		return c

	case reflect.Slice:
		if v.IsNil() {
			return v
		}
		c := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		for i := range v.Len() {
			c.Index(i).Set(cloneValue(v.Index(i), seen))
		}
		return c

	case reflect.Array:
		c := reflect.New(v.Type()).Elem()
		for i := range v.Len() {
			c.Index(i).Set(cloneValue(v.Index(i), seen))
		}
		return c

	case reflect.Struct:
		c := reflect.New(v.Type()).Elem()
		c.Set(v)
		for i := range v.NumField() {
			if c.Field(i).CanSet() {
				c.Field(i).Set(cloneValue(v.Field(i), seen))
			}
		}
		return c

	default:
		return v
	}
}
