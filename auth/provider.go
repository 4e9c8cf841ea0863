package auth

import (
	"context"
	"errors"
	"sync"

	bberrors "github.com/pietro-andreoli/bboracle/errors"
)

type Credentials struct {
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
}

func (c Credentials) Loaded() bool {
	return c.Username != "" && c.Password != ""
}

// CredentialSource loads the username and password from wherever they are stored.
type CredentialSource interface {
	Credentials(ctx context.Context) (Credentials, error)
}

// Exchanger trades a username and password for a bearer token at the
// vendor's authentication endpoint.
type Exchanger interface {
	Exchange(ctx context.Context, creds Credentials) (string, error)
}

// CredentialProvider is what Lifecycle.Refresh needs: credentials and a way
// to exchange them.
type CredentialProvider interface {
	CredentialSource
	Exchanger
}

// Provider joins a CredentialSource and an Exchanger. Credentials are read
// from the source once and kept until the exchange rejects them.
type Provider struct {
	source    CredentialSource
	exchanger Exchanger

	mu    sync.Mutex
	creds Credentials
}

var _ CredentialProvider = &Provider{}

func NewProvider(source CredentialSource, exchanger Exchanger) *Provider {
	return &Provider{
		source:    source,
		exchanger: exchanger,
	}
}

func (p *Provider) Credentials(ctx context.Context) (Credentials, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.creds.Loaded() {
		return p.creds, nil
	}
	creds, err := p.source.Credentials(ctx)
	if err != nil {
		return Credentials{}, err
	}
	p.creds = creds
	return creds, nil
}

func (p *Provider) Exchange(ctx context.Context, creds Credentials) (string, error) {
	token, err := p.exchanger.Exchange(ctx, creds)
	if err != nil {
		var apiErr *bberrors.ApiError
		if errors.As(err, &apiErr) && apiErr.Type == bberrors.TYPE_BAD_CREDENTIALS {
			p.forget()
		}
		return "", err
	}
	return token, nil
}

func (p *Provider) forget() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.creds = Credentials{}
}

// StaticSource serves fixed credentials.
type StaticSource Credentials

var _ CredentialSource = StaticSource{}

func (s StaticSource) Credentials(_ context.Context) (Credentials, error) {
	return Credentials(s), nil
}
