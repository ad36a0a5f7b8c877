package util

// Option is a generic functional option applicable to a value of type T.
type Option[T any] interface {
	ApplyTo(*T)
}

// FunctionalOption adapts a plain function to the Option interface.
type FunctionalOption[T any] func(*T)

// ApplyTo applies the option to the given value.
func (f FunctionalOption[T]) ApplyTo(t *T) {
	f(t)
}
