package theme

// Opt is an optional style value. The zero value is unset, which lets a
// style distinguish "explicitly transparent" from "not configured".
type Opt[T any] struct {
	value T
	set   bool
}

// Some returns an Opt holding v.
func Some[T any](v T) Opt[T] {
	return Opt[T]{value: v, set: true}
}

// Get returns the value and whether it is set.
func (o Opt[T]) Get() (T, bool) {
	return o.value, o.set
}

// IsSet reports whether the value is set.
func (o Opt[T]) IsSet() bool {
	return o.set
}

// Or returns the value, or def when unset.
func (o Opt[T]) Or(def T) T {
	if o.set {
		return o.value
	}
	return def
}

// Merge returns o when set, fallback otherwise.
func (o Opt[T]) Merge(fallback Opt[T]) Opt[T] {
	if o.set {
		return o
	}
	return fallback
}
