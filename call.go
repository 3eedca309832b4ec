package intercept

import (
	"reflect"
)

// Func is the calling convention for wrappers that need the receiver. Any
// other function is called with the arguments alone.
type Func func(recv any, args []any) any

// invoke calls fn with recv and args and shapes the outputs into a single
// value: nil for none, the value itself for one, and a []any for more.
func invoke(fn any, recv any, args []any) any {
	switch f := fn.(type) {
	case Func:
		return f(recv, args)
	case func(any, []any) any:
		return f(recv, args)
	}

	fv := reflect.ValueOf(fn)
	ft := fv.Type()

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		in[i] = argValue(ft, i, arg)
	}

	out := fv.Call(in)
	switch len(out) {
	case 0:
		return nil
	case 1:
		return out[0].Interface()
	}

	results := make([]any, len(out))
	for i, o := range out {
		results[i] = o.Interface()
	}
	return results
}

// argValue converts the i'th argument for a call to a function of type ft.
// Untyped nils become the zero value of the parameter.
func argValue(ft reflect.Type, i int, arg any) reflect.Value {
	var pt reflect.Type
	switch {
	case ft.IsVariadic() && i >= ft.NumIn()-1:
		pt = ft.In(ft.NumIn() - 1).Elem()
	case i < ft.NumIn():
		pt = ft.In(i)
	}

	if arg == nil {
		if pt == nil {
			// Too many arguments. Let Call report it.
			return reflect.ValueOf(&arg).Elem()
		}
		return reflect.Zero(pt)
	}

	return reflect.ValueOf(arg)
}
