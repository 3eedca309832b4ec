package intercept

import (
	"fmt"
	"reflect"
)

// Target is an object with named, independently mutable members. The
// interceptor only ever reads and rewrites one member at a time; it never owns
// the target.
//
// A Target is identified by its interface value, so its dynamic type must be
// comparable. Pointer types always are.
type Target interface {
	// Member returns the current value of the named member, or nil if there
	// is none.
	Member(name string) any

	// SetMember replaces the value of the named member.
	SetMember(name string, v any) error
}

// Object is a Target backed by a map of member names to values. It's the
// closest Go equivalent of a dynamic object whose methods can be swapped out.
type Object struct {
	members map[string]any
}

// NewObject returns an Object holding a copy of members.
func NewObject(members map[string]any) *Object {
	o := &Object{members: make(map[string]any, len(members))}
	for name, v := range members {
		o.members[name] = v
	}
	return o
}

// Member returns the value of the named member, or nil if it isn't set.
func (o *Object) Member(name string) any {
	return o.members[name]
}

// SetMember sets the named member. It never fails.
func (o *Object) SetMember(name string, v any) error {
	o.members[name] = v
	return nil
}

// Call invokes the current value of the named member with the object as the
// receiver. It panics if the member is not callable, the same as calling a nil
// function would.
func (o *Object) Call(name string, args ...any) any {
	fn := o.members[name]
	if !isCallable(fn) {
		panic(fmt.Sprintf("intercept: member %q is not a function", name))
	}
	return invoke(fn, o, args)
}

// structTarget exposes the exported func fields of a struct as members. It's
// used by value and only holds the struct pointer, so every structTarget for
// the same struct compares equal.
type structTarget struct {
	ptr any
}

// Struct returns a Target for the exported func-typed fields of the struct ptr
// points to. An error is returned if ptr is not a non-nil pointer to a struct.
//
// Values assigned through the Target must have exactly the field's type, so a
// wrapper installed on a struct field must share the field's signature.
func Struct(ptr any) (Target, error) {
	pv := reflect.ValueOf(ptr)
	if pv.Kind() != reflect.Pointer || pv.IsNil() {
		return nil, fmt.Errorf("not a struct pointer, kind: %v", pv.Kind())
	}
	if pv.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("not a struct pointer, points to kind: %v", pv.Elem().Kind())
	}
	return structTarget{ptr: ptr}, nil
}

func (s structTarget) field(name string) (reflect.Value, bool) {
	v := reflect.ValueOf(s.ptr).Elem()
	sf, ok := v.Type().FieldByName(name)
	if !ok || !sf.IsExported() || sf.Type.Kind() != reflect.Func {
		return reflect.Value{}, false
	}
	// Fails if the field is promoted through a nil embedded pointer.
	f, err := v.FieldByIndexErr(sf.Index)
	if err != nil {
		return reflect.Value{}, false
	}
	return f, true
}

func (s structTarget) Member(name string) any {
	f, ok := s.field(name)
	if !ok || f.IsNil() {
		return nil
	}
	return f.Interface()
}

func (s structTarget) SetMember(name string, v any) error {
	f, ok := s.field(name)
	if !ok {
		return fmt.Errorf("no exported func field %q", name)
	}
	if v == nil {
		f.Set(reflect.Zero(f.Type()))
		return nil
	}

	nv := reflect.ValueOf(v)
	if nv.Kind() != reflect.Func {
		return fmt.Errorf("not a function, kind: %v", nv.Kind())
	}
	if nv.Type() != f.Type() {
		if !funcsAreEqual(f.Type(), nv.Type()) {
			if err := diffFuncs(f.Type(), nv.Type()).Error(); err != nil {
				return fmt.Errorf("function signatures do not match: %w", err)
			}
			return fmt.Errorf("function signatures do not match: variadic %v != %v", f.Type().IsVariadic(), nv.Type().IsVariadic())
		}
		// Same shape, different named type.
		nv = nv.Convert(f.Type())
	}
	f.Set(nv)
	return nil
}

// isEmpty reports whether v holds nothing worth wrapping.
func isEmpty(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Func, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

func isCallable(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Func && !rv.IsNil()
}

// isComparable reports whether t can be used as a map key. The value is
// checked, not just the type, since an interface field may hold a slice.
func isComparable(t Target) bool {
	return reflect.ValueOf(t).Comparable()
}
