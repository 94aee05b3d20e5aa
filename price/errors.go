package price

import "errors"

var (
	ErrTitleNotFound = errors.New("title tag not found")
	ErrDateNotFound  = errors.New("date not found in title")
)

// FetchError is returned when the upstream page could not be requested,
// read or decoded. Its message is the message of the underlying error.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return e.Err.Error()
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
