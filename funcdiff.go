package intercept

import (
	"fmt"
	"reflect"

	"github.com/hashicorp/go-multierror"
)

func funcsAreEqual(at, bt reflect.Type) bool {
	if at.NumIn() != bt.NumIn() || at.NumOut() != bt.NumOut() {
		return false
	}
	if at.IsVariadic() != bt.IsVariadic() {
		return false
	}

	for i := 0; i < at.NumIn(); i++ {
		if at.In(i) != bt.In(i) {
			return false
		}
	}

	for i := 0; i < at.NumOut(); i++ {
		if at.Out(i) != bt.Out(i) {
			return false
		}
	}

	return true
}

type funcDifferences struct {
	In  []*argDifference
	Out []*argDifference
}

// Error returns one error per differing argument or output, or nil if the
// signatures match.
func (d *funcDifferences) Error() error {
	var result *multierror.Error
	for i, arg := range d.In {
		if arg != nil {
			result = multierror.Append(result, fmt.Errorf("argument %d: %v != %v", i, arg.A, arg.B))
		}
	}
	for i, out := range d.Out {
		if out != nil {
			result = multierror.Append(result, fmt.Errorf("output %d: %v != %v", i, out.A, out.B))
		}
	}
	return result.ErrorOrNil()
}

// argDifference holds the two types found at one position. A nil type means
// the function has no argument (or output) there.
type argDifference struct {
	A reflect.Type
	B reflect.Type
}

func diffFuncs(at, bt reflect.Type) *funcDifferences {
	return &funcDifferences{
		In:  diffTypes(at.NumIn(), at.In, bt.NumIn(), bt.In),
		Out: diffTypes(at.NumOut(), at.Out, bt.NumOut(), bt.Out),
	}
}

func diffTypes(an int, a func(int) reflect.Type, bn int, b func(int) reflect.Type) []*argDifference {
	diffs := make([]*argDifference, max(an, bn))
	for i := range diffs {
		var ta, tb reflect.Type
		if i < an {
			ta = a(i)
		}
		if i < bn {
			tb = b(i)
		}
		if ta != tb {
			diffs[i] = &argDifference{A: ta, B: tb}
		}
	}
	return diffs
}
