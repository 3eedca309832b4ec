package intercept

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFuncsAreEqual(t *testing.T) {
	type named func(int) string

	tests := map[string]struct {
		a, b  any
		equal bool
	}{
		"identical":         {func(int) string { return "" }, func(int) string { return "" }, true},
		"named":             {named(nil), func(int) string { return "" }, true},
		"more inputs":       {func(int) {}, func(int, int) {}, false},
		"more outputs":      {func() int { return 0 }, func() (int, error) { return 0, nil }, false},
		"input types":       {func(int) {}, func(string) {}, false},
		"output types":      {func() int { return 0 }, func() string { return "" }, false},
		"variadic":          {func([]int) {}, func(...int) {}, false},
		"no args no return": {func() {}, func() {}, true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			at := reflect.TypeOf(tc.a)
			bt := reflect.TypeOf(tc.b)
			assert.Equal(t, tc.equal, funcsAreEqual(at, bt))
			assert.Equal(t, tc.equal, funcsAreEqual(bt, at))
		})
	}
}

func TestDiffFuncs(t *testing.T) {
	intT := reflect.TypeOf(0)
	stringT := reflect.TypeOf("")
	errorT := reflect.TypeOf((*error)(nil)).Elem()

	t.Run("matching", func(t *testing.T) {
		fn := reflect.TypeOf(func(int) string { return "" })
		assert.NoError(t, diffFuncs(fn, fn).Error())
	})

	t.Run("inputs", func(t *testing.T) {
		d := diffFuncs(
			reflect.TypeOf(func(int, string) {}),
			reflect.TypeOf(func(string, string, int) {}),
		)
		assert.Equal(t, []*argDifference{
			{A: intT, B: stringT},
			nil,
			{A: nil, B: intT},
		}, d.In)
		assert.Empty(t, d.Out)
	})

	t.Run("outputs", func(t *testing.T) {
		d := diffFuncs(
			reflect.TypeOf(func() (int, error) { return 0, nil }),
			reflect.TypeOf(func() int { return 0 }),
		)
		assert.Empty(t, d.In)
		assert.Equal(t, []*argDifference{nil, {A: errorT, B: nil}}, d.Out)

		err := d.Error()
		assert.ErrorContains(t, err, "output 1: error != <nil>")
	})
}
