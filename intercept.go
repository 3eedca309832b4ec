package intercept

import (
	"fmt"
	"sync"

	"github.com/go-logr/logr"
	"github.com/hashicorp/go-multierror"
)

// Unwrap removes the wrapper it was returned for. Calling it more than once
// has no further effect.
type Unwrap func()

// Continuation calls the function below a wrapper in the stack. It returns
// false if the member is no longer wrapped at all.
type Continuation func(recv any, args ...any) (result any, ok bool)

// Interceptor keeps track of the wrappers installed on any number of targets.
// The zero value is not usable, call New.
//
// Target methods are called with the Interceptor locked, so they must not call
// back into it. Wrappers and originals are always called unlocked and may
// install or remove wrappers themselves.
type Interceptor struct {
	mu      sync.Mutex
	targets sideTable
	log     logr.Logger
}

// Option configures an Interceptor.
type Option func(*Interceptor)

// WithLogger sets the logger. Installs and removals are logged at V(1).
func WithLogger(log logr.Logger) Option {
	return func(i *Interceptor) {
		i.log = log
	}
}

// New returns an Interceptor with no wrapped targets.
func New(opts ...Option) *Interceptor {
	i := &Interceptor{
		targets: sideTable{},
		log:     logr.Discard(),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Wrap installs fn as the new value of the named member and returns a function
// that removes it again. fn is always what the member is set to, whatever
// wrappers are already installed; use Next to reach them.
//
// Every error returned by Wrap matches ErrInvalidArgument and nothing is
// changed when one is returned.
func (i *Interceptor) Wrap(t Target, name string, fn any) (Unwrap, error) {
	if t == nil {
		return nil, ErrNilTarget
	}
	if name == "" {
		return nil, ErrEmptyName
	}
	if fn == nil {
		return nil, ErrNilWrapper
	}
	if !isComparable(t) {
		return nil, ErrIncomparableTarget
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	current := t.Member(name)
	if isEmpty(current) {
		return nil, fmt.Errorf("%w: member %q", ErrEmptyValue, name)
	}
	if !isCallable(fn) {
		return nil, fmt.Errorf("%w: got %T", ErrNotCallable, fn)
	}

	if err := t.SetMember(name, fn); err != nil {
		return nil, fmt.Errorf("%w: member %q: %w", ErrInvalidArgument, name, err)
	}

	rec := i.targets.lookupOrCreate(t, name, current)
	pos := rec.install(fn)
	i.log.V(1).Info("wrapped", "member", name, "target", fmt.Sprintf("%T", t), "position", pos)

	return func() {
		i.unwrap(t, name, rec, pos)
	}, nil
}

// Unwrap removes the wrapper at pos, where 1 is the first wrapper installed on
// the member. If it was the newest wrapper still installed, the member is set
// to the newest one that remains. Once every wrapper is removed the member is
// restored to its original value. Invalid arguments and already removed
// wrappers are ignored.
func (i *Interceptor) Unwrap(t Target, name string, pos int) {
	i.unwrap(t, name, nil, pos)
}

// unwrap removes the wrapper at pos. If want is not nil the wrapper is only
// removed from that record, so a handle can't remove a wrapper installed after
// the member was restored.
func (i *Interceptor) unwrap(t Target, name string, want *memberRecord, pos int) {
	if t == nil || name == "" || !isComparable(t) {
		return
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	if isEmpty(t.Member(name)) {
		return
	}

	rec := i.targets.lookup(t, name)
	if rec == nil || (want != nil && rec != want) {
		return
	}

	newest := rec.newest()
	if !rec.remove(pos) {
		return
	}
	i.log.V(1).Info("unwrapped", "member", name, "target", fmt.Sprintf("%T", t), "position", pos)

	if rec.depth() > 0 {
		if pos == newest {
			// Don't leave a removed wrapper as the visible value.
			if err := t.SetMember(name, rec.top(len(rec.slots))); err != nil {
				i.log.Error(err, "unable to replace removed wrapper", "member", name, "target", fmt.Sprintf("%T", t))
			}
		}
		return
	}

	i.targets.drop(t, name)
	if err := t.SetMember(name, rec.original); err != nil {
		i.log.Error(err, "unable to restore original", "member", name, "target", fmt.Sprintf("%T", t))
		return
	}
	i.log.V(1).Info("restored", "member", name, "target", fmt.Sprintf("%T", t))
}

// Next returns a Continuation that calls whatever is below the wrappers
// installed so far: the newest of them that's still installed when the
// Continuation is called, or the original value. Wrappers installed after Next
// returns are never called by it.
//
// Next is normally called just before Wrap so the wrapper can continue the
// chain. It returns nil if the member is empty.
func (i *Interceptor) Next(t Target, name string) Continuation {
	if t == nil || name == "" || !isComparable(t) {
		return nil
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	if isEmpty(t.Member(name)) {
		return nil
	}

	var n int
	if rec := i.targets.lookup(t, name); rec != nil {
		n = len(rec.slots)
	}

	return func(recv any, args ...any) (any, bool) {
		i.mu.Lock()
		rec := i.targets.lookup(t, name)
		if rec == nil {
			i.mu.Unlock()
			return nil, false
		}
		fn := rec.top(n)
		i.mu.Unlock()

		return invoke(fn, recv, args), true
	}
}

// Around installs the wrapper returned by build, passing it a Continuation to
// whatever the member currently resolves to. It's shorthand for calling Next
// followed by Wrap.
func (i *Interceptor) Around(t Target, name string, build func(next Continuation) any) (Unwrap, error) {
	if build == nil {
		return nil, ErrNilWrapper
	}
	next := i.Next(t, name)
	if next == nil {
		return nil, unwrappable(t, name)
	}
	return i.Wrap(t, name, build(next))
}

// unwrappable returns the reason Next refused to return a Continuation.
func unwrappable(t Target, name string) error {
	switch {
	case t == nil:
		return ErrNilTarget
	case name == "":
		return ErrEmptyName
	case !isComparable(t):
		return ErrIncomparableTarget
	}
	return fmt.Errorf("%w: member %q", ErrEmptyValue, name)
}

// Wrapped reports whether the member has any wrappers installed.
func (i *Interceptor) Wrapped(t Target, name string) bool {
	return i.Depth(t, name) > 0
}

// Depth returns the number of wrappers installed on the member.
func (i *Interceptor) Depth(t Target, name string) int {
	if t == nil || !isComparable(t) {
		return 0
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	rec := i.targets.lookup(t, name)
	if rec == nil {
		return 0
	}
	return rec.depth()
}

// Reset removes every wrapper from every member of t, restoring the original
// values. All members are attempted even if some fail to restore.
func (i *Interceptor) Reset(t Target) error {
	if t == nil || !isComparable(t) {
		return nil
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	reg, ok := i.targets[t]
	if !ok {
		return nil
	}
	delete(i.targets, t)

	var result *multierror.Error
	for name, rec := range reg {
		if err := t.SetMember(name, rec.original); err != nil {
			result = multierror.Append(result, fmt.Errorf("member %q: %w", name, err))
			continue
		}
		i.log.V(1).Info("restored", "member", name, "target", fmt.Sprintf("%T", t))
	}
	return result.ErrorOrNil()
}
