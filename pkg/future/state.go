package future

// State is the lifecycle phase of a future. The transition is one-way and
// exactly-once: Pending moves to Success or Failure and never changes again.
type State int32

const (
	// Pending means the result has not been produced yet.
	Pending State = iota
	// Success means the future finished with a successful result.
	Success
	// Failure means the future finished with a failed result.
	Failure
)

// Finished reports whether the state is terminal.
func (s State) Finished() bool {
	return s != Pending
}

// String returns the state name.
func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Success:
		return "success"
	case Failure:
		return "failure"
	default:
		return "unknown"
	}
}
