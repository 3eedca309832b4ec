// Intercept calls to the members of an object
//
// Any number of callers can wrap the same member. Each call to Wrap pushes a
// wrapper onto that member's stack and returns a function that removes exactly
// that wrapper, whatever order wrappers are removed in. When the last one goes
// the member gets its original value back.
//
// A wrapper continues the chain with a Continuation obtained from Next before
// it was installed:
//
//	next := intercept.Next(obj, "Get")
//	unwrap, err := intercept.Wrap(obj, "Get", func(key string) any {
//		v, _ := next(nil, key)
//		return v
//	})
//
// A Continuation only sees the wrappers that existed when it was created, so a
// wrapper never accidentally calls one installed after it.
//
// Limitations:
//   - Arguments and results are untyped; mismatches panic at call time
//   - Targets are identified by comparison, so they must be comparable types
//   - Target methods must not call back into the Interceptor
package intercept
