package status

import "fmt"

// Result holds either a value of type T or the Status describing why the
// value could not be produced. A Result built by Of is successful; one built
// by Fail is not. The zero value is a successful Result holding T's zero
// value, which mirrors the zero Status being OK.
type Result[T any] struct {
	value T
	st    Status
}

// Of wraps a value into a successful result.
func Of[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Fail wraps a failed status into a result. Passing an OK status is a
// programming error and panics: a result cannot be simultaneously
// successful and value-less.
func Fail[T any](st Status) Result[T] {
	if st.IsOK() {
		panic("status: Fail called with an OK status")
	}
	return Result[T]{st: st}
}

// Ok reports whether the result holds a value.
func (r Result[T]) Ok() bool {
	return r.st.IsOK()
}

// Status returns the status carried by the result; OK for successful results.
func (r Result[T]) Status() Status {
	return r.st
}

// Value returns the held value. Calling Value on a failed result is a
// programming error and panics; use Ok or Unwrap first when failure is
// possible.
func (r Result[T]) Value() T {
	if !r.Ok() {
		panic(fmt.Sprintf("status: Value called on failed result: %s", r.st))
	}
	return r.value
}

// ValueOr returns the held value, or def when the result is failed.
func (r Result[T]) ValueOr(def T) T {
	if !r.Ok() {
		return def
	}
	return r.value
}

// Unwrap splits the result into Go's conventional (value, error) pair.
func (r Result[T]) Unwrap() (T, error) {
	return r.value, r.st.Err()
}

// String renders the result for logs and test failures.
func (r Result[T]) String() string {
	if r.Ok() {
		return fmt.Sprintf("Result(%v)", r.value)
	}
	return fmt.Sprintf("Result(%s)", r.st)
}
