package api

// TriState is the result of a decision query that might not yet be
// answerable. Expected incompleteness (cancellation before confluence, an
// enumeration that has not closed) is reported as Unknown, never as an error.
type TriState uint8

const (
	True TriState = iota
	False
	Unknown
)

func (t TriState) String() string {
	switch t {
	case True:
		return "true"
	case False:
		return "false"
	default:
		return "unknown"
	}
}

// FromBool converts a definite boolean answer into a TriState.
func FromBool(b bool) TriState {
	if b {
		return True
	}
	return False
}
