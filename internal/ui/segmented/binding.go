package segmented

// Binding is a two-way connection to state owned by the caller. The control
// writes selection changes through Set and re-reads through Get on every
// update, so external writes by the caller are reflected without any extra
// notification surface.
type Binding[T any] struct {
	get func() T
	set func(T)
}

// NewBinding builds a binding from an explicit getter/setter pair.
func NewBinding[T any](get func() T, set func(T)) Binding[T] {
	return Binding[T]{get: get, set: set}
}

// Bind returns a binding backed by the pointed-to value.
func Bind[T any](p *T) Binding[T] {
	return Binding[T]{
		get: func() T { return *p },
		set: func(v T) { *p = v },
	}
}

// Discard returns a binding that drops writes and reads the zero value.
// Used as the default secondary-selection binding when the caller does not
// supply one.
func Discard[T any]() Binding[T] {
	return Binding[T]{}
}

// Get reads the bound value. A zero binding reads the zero value.
func (b Binding[T]) Get() T {
	if b.get == nil {
		var zero T
		return zero
	}
	return b.get()
}

// Set writes the bound value. A zero binding drops the write.
func (b Binding[T]) Set(v T) {
	if b.set != nil {
		b.set(v)
	}
}
