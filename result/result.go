package result

/*
A Result is the outcome of a computation that may fail. Within this module
it is used by strict parsers, which must report malformed input to callers
that want to leave such input untouched, while the lenient parsers of the
same packages degrade silently.
*/

// Result holds either a value of type T or an error.
type Result[T any] struct {
	value T
	err   error
}

// Ok wraps a successful value.
func Ok[T any](x T) Result[T] {
	return Result[T]{value: x}
}

// Err wraps a failure. A nil error is a programming mistake and will be
// replaced by ErrUnknown.
func Err[T any](err error) Result[T] {
	if err == nil {
		err = ErrUnknown
	}
	return Result[T]{err: err}
}

// IsOk is true for successful results.
func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// Unpack returns the value and error in Go's customary form.
func (r Result[T]) Unpack() (T, error) {
	return r.value, r.err
}

// Error returns the error of a failed result, nil otherwise.
func (r Result[T]) Error() error {
	return r.err
}

// WithDefault returns the value for a successful result, def otherwise.
func (r Result[T]) WithDefault(def T) T {
	if r.err == nil {
		return r.value
	}
	return def
}

// Map transforms the value of a successful result.
func Map[T, S any](r Result[T], f func(T) S) Result[S] {
	if r.err != nil {
		return Err[S](r.err)
	}
	return Ok(f(r.value))
}

// --- Matching --------------------------------------------------------------

// Match returns a matcher for use in switch statements.
func (r Result[T]) Match() *Matcher[T] {
	return &Matcher[T]{r: r}
}

// Matcher is a helper type for pattern matching on results.
type Matcher[T any] struct {
	r Result[T]
}

// Ok matches a successful result and copies its value to v.
func (rm *Matcher[T]) Ok(v *T) *Matcher[T] {
	if rm.r.err == nil {
		if v != nil {
			*v = rm.r.value
		}
		return rm
	}
	return nil
}

// Err matches a failed result and copies its error to err.
func (rm *Matcher[T]) Err(err *error) *Matcher[T] {
	if rm.r.err != nil {
		if err != nil {
			*err = rm.r.err
		}
		return rm
	}
	return nil
}

type resultError string

func (e resultError) Error() string {
	return string(e)
}

// ErrUnknown is used for failed results created without an error.
const ErrUnknown = resultError("result: unknown error")
