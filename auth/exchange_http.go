package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/pietro-andreoli/bboracle/errors"
)

const DefaultAuthURL = "https://api.bestbuy.com/authenticate"

type authRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type authResponse struct {
	JWT string `json:"jwt"`
}

// HTTPExchanger posts the username and password as JSON to the
// authentication endpoint and reads back {"jwt": "..."}.
type HTTPExchanger struct {
	url        string
	httpClient *http.Client
}

var _ Exchanger = &HTTPExchanger{}

func NewHTTPExchanger(authURL string, httpClient *http.Client) *HTTPExchanger {
	if authURL == "" {
		authURL = DefaultAuthURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HTTPExchanger{
		url:        authURL,
		httpClient: httpClient,
	}
}

func (e *HTTPExchanger) Exchange(ctx context.Context, creds Credentials) (string, error) {
	data, err := json.Marshal(authRequest(creds))
	if err != nil {
		return "", authErr(errors.TYPE_JSON_PARSE, err, nil, 0)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.url, bytes.NewBuffer(data))
	if err != nil {
		return "", authErr(errors.TYPE_REQUEST_PREP, err, nil, 0)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	res, err := e.httpClient.Do(req)
	if err != nil {
		return "", authErr(errors.TYPE_IO, err, nil, 0)
	}
	defer func() { _ = res.Body.Close() }()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", authErr(errors.TYPE_IO, err, body, res.StatusCode)
	}

	switch {
	case res.StatusCode == http.StatusUnauthorized || res.StatusCode == http.StatusForbidden:
		return "", authErr(errors.TYPE_BAD_CREDENTIALS, nil, body, res.StatusCode)
	case res.StatusCode != http.StatusOK:
		return "", authErr(errors.TYPE_HTTP_STATUS, nil, body, res.StatusCode)
	}

	var out authResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", authErr(errors.TYPE_JSON_PARSE, err, body, res.StatusCode)
	}
	if out.JWT == "" {
		return "", authErr(
			errors.TYPE_INVALID_DATA, fmt.Errorf("response has no jwt"), body, res.StatusCode,
		)
	}
	return out.JWT, nil
}

func authErr(typ string, err error, body []byte, status int) *errors.ApiError {
	return &errors.ApiError{
		Stage:          errors.STAGE_AUTHENTICATE,
		Type:           typ,
		SourceErr:      err,
		Body:           body,
		HttpStatusCode: status,
	}
}
