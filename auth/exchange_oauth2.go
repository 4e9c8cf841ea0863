package auth

import (
	"context"
	"errors"
	"net/http"

	"golang.org/x/oauth2"

	bberrors "github.com/pietro-andreoli/bboracle/errors"
)

// OAuth2Exchanger uses the resource owner password grant for deployments
// where the token endpoint is a standard OAuth2 server.
type OAuth2Exchanger struct {
	config     *oauth2.Config
	httpClient *http.Client
}

var _ Exchanger = &OAuth2Exchanger{}

func NewOAuth2Exchanger(
	clientID string,
	clientSecret string,
	tokenURL string,
	scopes []string,
	httpClient *http.Client,
) *OAuth2Exchanger {
	return &OAuth2Exchanger{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			Endpoint: oauth2.Endpoint{
				TokenURL: tokenURL,
			},
			Scopes: scopes,
		},
		httpClient: httpClient,
	}
}

func (e *OAuth2Exchanger) Exchange(ctx context.Context, creds Credentials) (string, error) {
	if e.httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, e.httpClient)
	}

	tok, err := e.config.PasswordCredentialsToken(ctx, creds.Username, creds.Password)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) && retrieveErr.Response != nil {
			typ := bberrors.TYPE_HTTP_STATUS
			switch retrieveErr.Response.StatusCode {
			case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden:
				typ = bberrors.TYPE_BAD_CREDENTIALS
			}
			return "", authErr(typ, err, retrieveErr.Body, retrieveErr.Response.StatusCode)
		}
		return "", authErr(bberrors.TYPE_IO, err, nil, 0)
	}
	return tok.AccessToken, nil
}
