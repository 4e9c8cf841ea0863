package api

import (
	stderrors "errors"
	"net/http"

	"github.com/pietro-andreoli/bboracle/errors"
)

var (
	pathUsage = []string{"lookup", "usage"}

	errNoTarget = stderrors.New("request has no target URL")
)

// Request describes one call to the API. The Authorization header is
// added by the client right before the request is dispatched.
type Request struct {
	Method string
	Target *URLBuilder
	Header http.Header
	Body   any
}

func NewRequest(method string, target *URLBuilder, body any) *Request {
	return &Request{
		Method: method,
		Target: target,
		Header: http.Header{},
		Body:   body,
	}
}

// URL is empty when the request has no target.
func (r *Request) URL() string {
	if r == nil || r.Target == nil {
		return ""
	}
	return r.Target.URL()
}

// Validate reports a request that cannot be sent.
func (r *Request) Validate() error {
	if err := r.validate(); err != nil {
		return err
	}
	return nil
}

func (r *Request) validate() *errors.ApiError {
	if r == nil || r.Target == nil {
		return &errors.ApiError{
			Stage:     errors.STAGE_BEFORE_REQUEST,
			Type:      errors.TYPE_REQUEST_PREP,
			SourceErr: errNoTarget,
		}
	}
	return nil
}

// WithBearer returns a copy of r carrying "Authorization: Bearer <token>".
// r itself is not modified.
func (r *Request) WithBearer(token string) *Request {
	out := *r
	out.Header = r.Header.Clone()
	if out.Header == nil {
		out.Header = http.Header{}
	}
	out.Header.Set("Authorization", "Bearer "+token)
	return &out
}

// NewUsageRequest builds the request for the usage statistics endpoint.
// See: https://documenter.getpostman.com/view/7012197/SVYwLGXM?version=latest#537ec7a5-55a8-44a0-ae05-c76f252066c5
func NewUsageRequest(base string) *Request {
	return NewRequest(
		http.MethodGet,
		NewURLBuilderWithBase(base, pathUsage...),
		nil,
	)
}
