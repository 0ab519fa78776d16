package requestcontext

var _ error = (*rejectError)(nil)

// rejectError ends the request with status and message instead of a 500.
type rejectError struct {
	status  int
	message string
}

func newRejectError(status int, message string) *rejectError {
	return &rejectError{status: status, message: message}
}

func (r *rejectError) Error() string {
	return r.message
}
