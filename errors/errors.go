package errors

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	STAGE_AUTHENTICATE   = "authenticate"
	STAGE_BEFORE_REQUEST = "before-request"
	STAGE_REQUEST        = "request"
	STAGE_AFTER_REQUEST  = "after-request"

	TYPE_UNKNOWN         = "unknown"
	TYPE_JSON_PARSE      = "json"
	TYPE_REQUEST_PREP    = "request-prep"
	TYPE_IO              = "io"
	TYPE_HTTP_STATUS     = "not-ok-http-status"
	TYPE_INVALID_DATA    = "invalid-data"
	TYPE_BAD_CREDENTIALS = "bad-credentials"
)

// ErrNoToken is returned when the token value or its expiry is requested
// before any token was issued. It signals a call-ordering bug in the caller.
var ErrNoToken = errors.New("bboracle: no token has been issued")

// ApiError describes a failure talking to the BestBuy API,
// either while exchanging credentials or while sending a request.
type ApiError struct {
	Stage          string
	Type           string
	SourceErr      error
	Body           []byte
	HttpStatusCode int
}

var _ error = &ApiError{}

func (e *ApiError) Error() string {
	var err string
	if e.SourceErr != nil {
		err = e.SourceErr.Error()
	} else {
		err = string(e.Body)
	}
	return fmt.Sprintf(
		"http request to BestBuy failed during '%s' stage with error type '%s', httpStatus: '%d'; original err: %v",
		e.Stage, e.Type, e.HttpStatusCode, err,
	)
}

func (e *ApiError) Unwrap() error {
	return e.SourceErr
}

// Is method is required by errors.Is() to properly distinguish between
// different types -vs- same pointer to the same type.
// Without it, errors.Is(err, &ApiError{}) returns false for any
// *ApiError that is not the exact same pointer.
func (e *ApiError) Is(other error) bool {
	var err *ApiError
	return errors.As(other, &err) && err != nil
}

// IsAuthError reports whether err came from the credential exchange.
func IsAuthError(err error) bool {
	var apiErr *ApiError
	return errors.As(err, &apiErr) && apiErr.Stage == STAGE_AUTHENTICATE
}

// IsTransportError reports whether err came from sending an API request.
func IsTransportError(err error) bool {
	var apiErr *ApiError
	if !errors.As(err, &apiErr) {
		return false
	}
	switch apiErr.Stage {
	case STAGE_BEFORE_REQUEST, STAGE_REQUEST, STAGE_AFTER_REQUEST:
		return true
	}
	return false
}

// IsUnauthorized reports whether the server rejected the bearer token.
func IsUnauthorized(err error) bool {
	var apiErr *ApiError
	return errors.As(err, &apiErr) && apiErr.HttpStatusCode == http.StatusUnauthorized
}
