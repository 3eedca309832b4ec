package intercept

// Original returns the value the member held before any wrappers were
// installed. If the member isn't wrapped its current value is returned. The
// second result is false if the member is empty.
func (i *Interceptor) Original(t Target, name string) (any, bool) {
	if t == nil || name == "" || !isComparable(t) {
		return nil, false
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	if rec := i.targets.lookup(t, name); rec != nil {
		return rec.original, true
	}

	v := t.Member(name)
	if isEmpty(v) {
		return nil, false
	}
	return v, true
}

var defaultInterceptor = New()

// Wrap installs fn on the named member using the default Interceptor. See
// Interceptor.Wrap.
func Wrap(t Target, name string, fn any) (Unwrap, error) {
	return defaultInterceptor.Wrap(t, name, fn)
}

// Remove removes the wrapper at pos using the default Interceptor. See
// Interceptor.Unwrap.
func Remove(t Target, name string, pos int) {
	defaultInterceptor.Unwrap(t, name, pos)
}

// Next returns a Continuation from the default Interceptor. See
// Interceptor.Next.
func Next(t Target, name string) Continuation {
	return defaultInterceptor.Next(t, name)
}

// Around installs a wrapper built around a Continuation using the default
// Interceptor.
func Around(t Target, name string, build func(next Continuation) any) (Unwrap, error) {
	return defaultInterceptor.Around(t, name, build)
}

// Original returns the unwrapped value of a member from the default
// Interceptor.
func Original(t Target, name string) (any, bool) {
	return defaultInterceptor.Original(t, name)
}

// Restore removes all of the default Interceptor's wrappers from t.
func Restore(t Target) error {
	return defaultInterceptor.Reset(t)
}
