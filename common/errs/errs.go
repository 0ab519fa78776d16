package errs

// ErrorKind identifies a kind of internal error.
// fully support for errors.Is and errors.As.
type ErrorKind string

const (
	// NotFound is returned when a requested item is not found.
	NotFound           = ErrorKind("not found")
	InvalidArgument    = ErrorKind("invalid argument")
	Unsupported        = ErrorKind("unsupported")
	InternalError      = ErrorKind("internal error")
	Timeout            = ErrorKind("timeout")
	ConflictSetting    = ErrorKind("conflict setting")
	SomethingWentWrong = ErrorKind("something went wrong")

	// RangeTooLarge is returned when a node rejects a log query because the block range exceeds its limit.
	RangeTooLarge = ErrorKind("block range too large")

	// Transient marks network failures that the caller may retry with backoff.
	Transient = ErrorKind("transient network failure")

	// MalformedEvent is returned when a log can't be decoded into a marketplace event.
	MalformedEvent = ErrorKind("malformed event")

	// Conflict is returned when a compare-and-swap write finds a different stored version.
	Conflict = ErrorKind("conflict")

	// NotInitialized is returned when state is read before any fetch has completed.
	// It must not be confused with an empty result.
	NotInitialized = ErrorKind("not yet initialized")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}
