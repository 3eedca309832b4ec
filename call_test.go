package intercept

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvoke(t *testing.T) {
	t.Run("no outputs", func(t *testing.T) {
		var called bool
		assert.Nil(t, invoke(func() { called = true }, nil, nil))
		assert.True(t, called)
	})

	t.Run("one output", func(t *testing.T) {
		assert.Equal(t, 3, invoke(func(a, b int) int { return a + b }, nil, []any{1, 2}))
	})

	t.Run("multiple outputs", func(t *testing.T) {
		out := invoke(func(s string) (string, int, error) {
			return s, len(s), nil
		}, nil, []any{"abc"})
		assert.Equal(t, []any{"abc", 3, nil}, out)
	})

	t.Run("nil arguments", func(t *testing.T) {
		out := invoke(func(p *int, err error, m map[string]int) bool {
			return p == nil && err == nil && m == nil
		}, nil, []any{nil, nil, nil})
		assert.Equal(t, true, out)
	})

	t.Run("interface arguments", func(t *testing.T) {
		out := invoke(func(v fmt.Stringer, err error) string {
			return v.String() + ": " + err.Error()
		}, nil, []any{stringer("a"), errors.New("b")})
		assert.Equal(t, "a: b", out)
	})

	t.Run("variadic", func(t *testing.T) {
		sum := func(prefix string, n ...int) string {
			total := 0
			for _, v := range n {
				total += v
			}
			return fmt.Sprintf("%s%d", prefix, total)
		}
		assert.Equal(t, "sum=6", invoke(sum, nil, []any{"sum=", 1, 2, 3}))
		assert.Equal(t, "sum=0", invoke(sum, nil, []any{"sum="}))
		assert.Equal(t, "sum=0", invoke(sum, nil, []any{"sum=", nil}))
	})

	t.Run("receiver", func(t *testing.T) {
		recv := &struct{ n int }{n: 5}
		out := invoke(Func(func(r any, args []any) any {
			return r.(*struct{ n int }).n + args[0].(int)
		}), recv, []any{1})
		assert.Equal(t, 6, out)
	})

	t.Run("unnamed receiver func", func(t *testing.T) {
		out := invoke(func(r any, args []any) any {
			return fmt.Sprintf("%v %d", r, len(args))
		}, "recv", []any{1, 2})
		assert.Equal(t, "recv 2", out)
	})

	t.Run("method value", func(t *testing.T) {
		out := invoke(stringer("bound").String, "ignored", nil)
		assert.Equal(t, "bound", out)
	})

	t.Run("wrong argument count", func(t *testing.T) {
		assert.Panics(t, func() {
			invoke(func(a int) int { return a }, nil, nil)
		})
		assert.Panics(t, func() {
			invoke(func(a int) int { return a }, nil, []any{1, nil})
		})
	})

	t.Run("wrong argument type", func(t *testing.T) {
		assert.Panics(t, func() {
			invoke(func(a int) int { return a }, nil, []any{"1"})
		})
	})
}

type stringer string

func (s stringer) String() string {
	return string(s)
}
