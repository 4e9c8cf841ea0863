package retry

import (
	"errors"
	"net/http"

	bberrors "github.com/pietro-andreoli/bboracle/errors"
)

// Classify decides whether an error returned by the client is worth
// another attempt. Network failures, 429 and 5xx responses are; bad
// credentials, malformed requests and missing tokens are not.
func Classify(err error) ExitStrategy {
	if err == nil {
		return StopNow
	}

	var apiErr *bberrors.ApiError
	if !errors.As(err, &apiErr) {
		return StopNow
	}

	switch apiErr.Type {
	case bberrors.TYPE_IO:
		return Continue
	case bberrors.TYPE_HTTP_STATUS:
		if apiErr.HttpStatusCode == http.StatusTooManyRequests ||
			apiErr.HttpStatusCode >= http.StatusInternalServerError {
			return Continue
		}
	}
	return StopNow
}
