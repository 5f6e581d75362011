package client

import (
	"errors"

	"ev-campus-client/internal/pkg/errs"
)

// Failure classes of the request pipeline. Every error returned by Send
// matches exactly one of these with errors.Is.
var (
	// ErrTransport: the request never produced an HTTP response.
	ErrTransport = errs.New("transport failure")
	// ErrRejected: the server answered with a 4xx/5xx status.
	ErrRejected = errs.New("request rejected")
	// ErrMalformed: the success response body could not be decoded.
	ErrMalformed = errs.New("malformed response")
)

// RejectedError carries the status and the server-supplied human message,
// when the response body had one.
type RejectedError struct {
	StatusCode    int
	ServerMessage string
}

func (e *RejectedError) Error() string {
	if e.ServerMessage != "" {
		return "rejected: " + e.ServerMessage
	}
	return "rejected without message"
}

// RejectedMessage returns the server-supplied message of a rejected call,
// or fallback when the error is not a rejection or carried no message.
func RejectedMessage(err error, fallback string) string {
	var rejected *RejectedError
	if errors.As(err, &rejected) && rejected.ServerMessage != "" {
		return rejected.ServerMessage
	}
	return fallback
}
