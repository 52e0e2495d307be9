// Package status defines the Status and Result types carried through the
// futurekit packages.
//
// A Status is either OK or a failure with a code from a closed set
// (CodeInvalid, CodeCancelled, CodeIOError, …) and a message. Result[T]
// pairs a Status with a value of type T, so asynchronous operations can hand
// a single object to callbacks and combinators.
//
// The consuming packages never interpret failure codes beyond "ok vs.
// not-ok"; the code is payload for the caller. Err and FromError bridge to
// and from Go's error interface for code that lives outside the Result
// world:
//
//	st := status.Invalid("offset %d out of range", off)
//	if errors.Is(st.Err(), status.Invalid("").Err()) {
//	    // matched by code
//	}
package status
