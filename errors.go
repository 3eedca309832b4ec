package intercept

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the root of every error Wrap returns. Use errors.Is to
// test for it, or for one of the more specific errors below.
var ErrInvalidArgument = errors.New("intercept: invalid argument")

var (
	ErrNilTarget          = fmt.Errorf("%w: target is nil", ErrInvalidArgument)
	ErrEmptyName          = fmt.Errorf("%w: member name is empty", ErrInvalidArgument)
	ErrNilWrapper         = fmt.Errorf("%w: wrapper is nil", ErrInvalidArgument)
	ErrIncomparableTarget = fmt.Errorf("%w: target type is not comparable", ErrInvalidArgument)
	ErrEmptyValue         = fmt.Errorf("%w: cannot wrap an empty value", ErrInvalidArgument)
	ErrNotCallable        = fmt.Errorf("%w: wrapper is not a function", ErrInvalidArgument)
)
