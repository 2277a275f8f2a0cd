package domain

// Option holds a value together with an explicit presence flag.
// The zero value is absent.
type Option[T any] struct {
	value T
	set   bool
}

// Some returns a present Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, set: true}
}

// None returns an absent Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSet reports whether the option holds a value.
func (o Option[T]) IsSet() bool {
	return o.set
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.set
}

// OrElse returns the value if present and def otherwise.
func (o Option[T]) OrElse(def T) T {
	if o.set {
		return o.value
	}
	return def
}

// Source identifies which configuration source supplied a resolved value.
type Source uint8

const (
	// SourceDefault means neither source was present and the default applied.
	SourceDefault Source = iota
	// SourceCurrent means the non-deprecated source supplied the value.
	SourceCurrent
	// SourceDeprecated means only the deprecated source was present.
	SourceDeprecated
)

// String implements fmt.Stringer.
func (s Source) String() string {
	switch s {
	case SourceCurrent:
		return "current"
	case SourceDeprecated:
		return "deprecated"
	default:
		return "default"
	}
}

// Sourced pairs a current configuration source with its deprecated predecessor.
type Sourced[T any] struct {
	Current    Option[T]
	Deprecated Option[T]
}

// Resolve picks the current value, falling back to the deprecated one and
// finally to def. It also reports which source won.
func (s Sourced[T]) Resolve(def T) (T, Source) {
	if v, ok := s.Current.Get(); ok {
		return v, SourceCurrent
	}
	if v, ok := s.Deprecated.Get(); ok {
		return v, SourceDeprecated
	}
	return def, SourceDefault
}

// IsSet reports whether either source is present.
func (s Sourced[T]) IsSet() bool {
	return s.Current.IsSet() || s.Deprecated.IsSet()
}
