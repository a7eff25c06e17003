/*
Package maybe implements an option type.

A Maybe is either Just a value or Nothing. Different from the interface-based
option types often seen in Go, the zero value of Maybe is a valid Nothing, so
structs may embed Maybe fields without initializing them. Style attribute
layers (e.g., the tablet override of a responsive value) use this to
distinguish "explicitly set" from "absent".

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package maybe

// Maybe is an optional value of type T.
type Maybe[T any] struct {
	value T
	just  bool
}

// Just wraps x into a present value.
func Just[T any](x T) Maybe[T] {
	return Maybe[T]{value: x, just: true}
}

// Nothing returns an absent value. It is equal to the zero value of Maybe[T].
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// Of creates a Maybe from a comma-ok pair:
//
//     v, ok := bag["paddingTop"]
//     m := maybe.Of(v, ok)
//
func Of[T any](x T, ok bool) Maybe[T] {
	if !ok {
		return Nothing[T]()
	}
	return Just(x)
}

// Lookup returns Just the value for key in m, or Nothing.
func Lookup[K comparable, V any](m map[K]V, key K) Maybe[V] {
	v, ok := m[key]
	return Of(v, ok)
}

// IsJust is true if a value is present.
func (m Maybe[T]) IsJust() bool {
	return m.just
}

// IsNothing is true if no value is present.
func (m Maybe[T]) IsNothing() bool {
	return !m.just
}

// Get returns the value together with a presence flag.
func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.just
}

// WithDefault returns the value if present, def otherwise.
func (m Maybe[T]) WithDefault(def T) T {
	if m.just {
		return m.value
	}
	return def
}

// Or returns m if it holds a value, otherwise alt.
func (m Maybe[T]) Or(alt Maybe[T]) Maybe[T] {
	if m.just {
		return m
	}
	return alt
}

// Map applies f to a present value.
func (m Maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.just {
		return Just(f(m.value))
	}
	return m
}

// AndThen chains a computation which may itself produce Nothing.
func AndThen[T, S any](x Maybe[T], f func(T) Maybe[S]) Maybe[S] {
	if v, ok := x.Get(); ok {
		return f(v)
	}
	return Nothing[S]()
}

// FirstOf returns the first present value of a list of options, or Nothing.
func FirstOf[T any](ms ...Maybe[T]) Maybe[T] {
	for _, m := range ms {
		if m.just {
			return m
		}
	}
	return Nothing[T]()
}

// --- Matching --------------------------------------------------------------

// Match returns a matcher for use in switch statements:
//
//     var v int
//     switch m := x.Match(); m {
//     case m.Just(&v):
//         …
//     case m.Nothing():
//         …
//     }
//
func (m Maybe[T]) Match() *Matcher[T] {
	return &Matcher[T]{m: m}
}

// Matcher is a helper type for pattern matching on Maybe values.
type Matcher[T any] struct {
	m Maybe[T]
}

// Just matches a present value and copies it to v.
func (mm *Matcher[T]) Just(v *T) *Matcher[T] {
	if mm.m.just {
		if v != nil {
			*v = mm.m.value
		}
		return mm
	}
	return nil
}

// Nothing matches an absent value.
func (mm *Matcher[T]) Nothing() *Matcher[T] {
	if !mm.m.just {
		return mm
	}
	return nil
}
