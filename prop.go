package wirework

// Prop is a configuration value that is either a static value or a
// zero-argument producer, resolved once at the point of use. Templates,
// template helpers, and triggers are all Props, so a view can declare them
// up front or compute them lazily:
//
//	Template: wirework.Static(todoTemplate)
//	Triggers: wirework.Computed(func() wirework.TriggerMap {
//	    return buildTriggers()
//	})
//
// Producers are plain closures - the owning view is whatever the closure
// captured. The zero Prop is unset and resolves to nothing.
type Prop[T any] struct {
	value    T
	producer func() T
	static   bool
}

// Static wraps a fixed value.
func Static[T any](v T) Prop[T] {
	return Prop[T]{value: v, static: true}
}

// Computed wraps a producer invoked on each Resolve.
func Computed[T any](fn func() T) Prop[T] {
	return Prop[T]{producer: fn}
}

// Resolve returns the configured value, invoking the producer if the prop
// is computed. The second return is false when the prop is unset.
func (p Prop[T]) Resolve() (T, bool) {
	if p.static {
		return p.value, true
	}
	if p.producer != nil {
		return p.producer(), true
	}
	var zero T
	return zero, false
}

// IsZero returns true if the prop is unset.
func (p Prop[T]) IsZero() bool {
	return !p.static && p.producer == nil
}
