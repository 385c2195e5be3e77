// Package debounce provides trailing-edge call coalescing for form field
// revalidation.
//
// A Debouncer collapses a burst of calls into a single call carrying the
// work submitted last, fired once the burst has been quiet for the
// configured delay. A zero delay disables coalescing entirely and turns
// Call into a synchronous pass-through, which is how commit-style events
// (change, blur) are handled.
//
// # Usage
//
//	d := debounce.New(300 * time.Millisecond)
//	d.Call(func() { revalidate("email", "a") })
//	d.Call(func() { revalidate("email", "ab") })   // supersedes the first
//	// 300ms later only revalidate("email", "ab") runs
//
// Func wraps a typed callback directly:
//
//	onKeyup := debounce.Func(debounce.DelayFor("keyup"), revalidateField)
//	onKeyup(event) // coalesced
//
// Group keeps one independent debouncer slot per key, used for per-field
// coalescing across a whole form:
//
//	g := debounce.NewGroup()
//	g.Call("email", debounce.DelayFor("keyup"), validateEmail)
//	g.Call("age", debounce.DelayFor("input"), validateAge) // independent
//
// The delay policy (DelayFor, IsInteractionEvent) is a pure lookup over the
// closed set of supported interaction events; it holds no state.
//
// Each Debouncer owns exactly one optional pending timer. A new Call stops
// the previous timer before scheduling its own, so at most one fire happens
// per delay window. There is no explicit cancellation API beyond Stop;
// superseding is the normal cancellation path.
package debounce
