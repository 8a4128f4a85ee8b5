package intake

// ValidationError reports a client-side shape or content violation.
// These are resolved before any network call is made.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// ParseError reports a syntactically malformed raw payload blob. It is
// deliberately distinct from ValidationError: the input never made it
// far enough to be validated.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return "Invalid format" }

func (e *ParseError) Unwrap() error { return e.Err }
