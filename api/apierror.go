package api

import (
	"net/http"

	"fuelprice/price"

	"github.com/pkg/errors"
)

const (
	MsgTitleNotFound = "Could not fetch the title from the webpage. The title tag might be missing or malformed."
	MsgDateNotFound  = "Could not extract date from the title. The date format might be incorrect."
	MsgFetchFailed   = "Error fetching the page: "
)

// APIException is the error payload. Code is the HTTP status it is sent
// with and is never part of the body.
type APIException struct {
	Code int    `json:"-"`
	Msg  string `json:"error"`
}

func (e *APIException) Error() string {
	return e.Msg
}

func NewAPIException(code int, msg string) *APIException {
	return &APIException{
		Code: code,
		Msg:  msg,
	}
}

// FromError maps a price lookup error onto its payload. Every lookup
// failure is reported with status 200.
func FromError(err error) *APIException {
	var fe *price.FetchError
	if errors.As(err, &fe) {
		return NewAPIException(http.StatusOK, MsgFetchFailed+fe.Error())
	}

	switch errors.Cause(err) {
	case price.ErrTitleNotFound:
		return NewAPIException(http.StatusOK, MsgTitleNotFound)
	case price.ErrDateNotFound:
		return NewAPIException(http.StatusOK, MsgDateNotFound)
	default:
		return NewAPIException(http.StatusOK, MsgFetchFailed+err.Error())
	}
}
