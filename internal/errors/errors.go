package errors

// ErrorWithStatusCode is an error that already knows which HTTP status the
// handler should answer with. Anything else surfaces as a 500.
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}
