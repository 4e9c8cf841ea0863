package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/pietro-andreoli/bboracle/errors"
	"github.com/pietro-andreoli/bboracle/logger"
	"github.com/pietro-andreoli/bboracle/types"
)

// Transport performs the network I/O for one prepared Request.
type Transport interface {
	Send(ctx context.Context, req *Request) (types.ResponseBody, error)
}

// HTTPTransport sends Requests as JSON over an *http.Client.
type HTTPTransport struct {
	httpClient *http.Client
	logger     logger.Logger
	requestId  func() string
}

var _ Transport = &HTTPTransport{}

func NewHTTPTransport(httpClient *http.Client, logger logger.Logger) *HTTPTransport {
	return &HTTPTransport{
		httpClient: httpClient,
		logger:     logger,
		requestId:  uuid.NewString,
	}
}

func (t *HTTPTransport) Send(ctx context.Context, req *Request) (types.ResponseBody, error) {
	body, err := t.send(ctx, req)
	if err != nil {
		return toNilErr[types.ResponseBody](nil, err)
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return types.ResponseBody("{}"), nil
	}
	var raw json.RawMessage
	if jsonErr := json.Unmarshal(body, &raw); jsonErr != nil {
		return nil, &errors.ApiError{
			Stage:          errors.STAGE_AFTER_REQUEST,
			Type:           errors.TYPE_JSON_PARSE,
			SourceErr:      jsonErr,
			Body:           body,
			HttpStatusCode: http.StatusOK,
		}
	}
	return types.ResponseBody(raw), nil
}

func (t *HTTPTransport) send(ctx context.Context, r *Request) ([]byte, *errors.ApiError) {
	if apiErr := r.validate(); apiErr != nil {
		return nil, apiErr
	}
	endpoint := r.URL()

	var err error
	var req *http.Request

	if r.Body != nil {
		data, jsonErr := json.Marshal(r.Body)
		if jsonErr != nil {
			return nil, &errors.ApiError{
				Stage:     errors.STAGE_BEFORE_REQUEST,
				Type:      errors.TYPE_JSON_PARSE,
				SourceErr: jsonErr,
			}
		}
		req, err = http.NewRequestWithContext(
			ctx, r.Method, endpoint, bytes.NewBuffer(data),
		)
	} else {
		req, err = http.NewRequestWithContext(
			ctx, r.Method, endpoint, nil,
		)
	}

	if err != nil {
		return nil, &errors.ApiError{
			Stage:     errors.STAGE_BEFORE_REQUEST,
			Type:      errors.TYPE_REQUEST_PREP,
			SourceErr: err,
		}
	}

	for key, values := range r.Header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	if r.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	requestId := t.requestId()
	req.Header.Set("X-Request-Id", requestId)

	t.logger.Debugf("api.HTTPTransport: %s %s request_id=%s", r.Method, endpoint, requestId)

	res, err := t.httpClient.Do(req)
	if err != nil {
		return nil, &errors.ApiError{
			Stage:     errors.STAGE_REQUEST,
			Type:      errors.TYPE_IO,
			SourceErr: err,
		}
	}
	defer func() { _ = res.Body.Close() }()

	body, err := io.ReadAll(res.Body)
	if res.StatusCode != http.StatusOK {
		t.logger.Warnf(
			"api.HTTPTransport: %s %s returned %d request_id=%s",
			r.Method, endpoint, res.StatusCode, requestId,
		)
		return body, &errors.ApiError{
			Stage:          errors.STAGE_AFTER_REQUEST,
			Type:           errors.TYPE_HTTP_STATUS,
			Body:           body,
			HttpStatusCode: res.StatusCode,
			SourceErr:      err,
		}
	}
	if err != nil {
		return body, &errors.ApiError{
			Stage:          errors.STAGE_AFTER_REQUEST,
			Type:           errors.TYPE_IO,
			Body:           body,
			HttpStatusCode: res.StatusCode,
			SourceErr:      err,
		}
	}

	return body, nil
}

// toNilErr converts a *errors.ApiError type to be a true nil interface.
// Internally, a Go interface has a Type and Value.
// An interface value is nil only if the V and T are both unset.
// See: https://go.dev/doc/faq#nil_error
func toNilErr[T any](r T, e *errors.ApiError) (T, error) {
	if e != nil {
		return r, e
	}
	return r, nil
}
