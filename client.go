package bboracle

import (
	"context"
	"net/http"
	"sync"

	"github.com/pietro-andreoli/bboracle/api"
	"github.com/pietro-andreoli/bboracle/auth"
	"github.com/pietro-andreoli/bboracle/logger"
	"github.com/pietro-andreoli/bboracle/rate"
	"github.com/pietro-andreoli/bboracle/types"
)

// Client coordinates every call to the BestBuy API: it keeps requests at
// least the configured interval apart and makes sure a valid bearer token
// is attached, refreshing it when missing or expired.
//
// Errors from the credential exchange and from the transport are returned
// unchanged; the client never retries. Wrap calls with retry.Retry if needed.
//
// A Client is safe for concurrent use. Throttling, the token check and the
// dispatch timestamp are one critical section; the network call is not.
type Client struct {
	provider  auth.CredentialProvider
	lifecycle *auth.Lifecycle
	limiter   rate.Limiter
	transport api.Transport
	baseURL   string
	logger    logger.Logger

	mu sync.Mutex
}

func NewClient(provider auth.CredentialProvider, opts ...ConfigOption) *Client {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	transport := cfg.apiTransport
	if transport == nil {
		httpClient := &http.Client{}
		httpClient.Transport = cfg.transport
		httpClient.Timeout = cfg.timeout
		transport = api.NewHTTPTransport(httpClient, cfg.logger)
	}

	limiter := cfg.limiter
	if limiter == nil {
		limiter = rate.NewIntervalLimiter(
			cfg.minInterval,
			rate.WithClock(cfg.now),
			rate.WithSleeper(cfg.sleep),
			rate.WithLogger(cfg.logger),
		)
	}

	return &Client{
		provider: provider,
		lifecycle: auth.NewLifecycle(
			auth.WithLifetime(cfg.tokenLifetime),
			auth.WithEarlyExpireOffset(cfg.earlyExpireOffset),
			auth.WithClock(cfg.now),
			auth.WithLogger(cfg.logger),
		),
		limiter:   limiter,
		transport: transport,
		baseURL:   cfg.baseURL,
		logger:    cfg.logger,
	}
}

// IsAuthenticated reports whether a token is present and not expired.
func (c *Client) IsAuthenticated() bool {
	return c.lifecycle.IsPresent() && !c.lifecycle.IsExpired()
}

// Authenticate runs the pre-flight gate on its own: it throttles and then
// refreshes the token if the client is not authenticated.
func (c *Client) Authenticate(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.ensureAuthenticated(ctx)
}

func (c *Client) ensureAuthenticated(ctx context.Context) error {
	c.limiter.Limit()
	if c.IsAuthenticated() {
		return nil
	}
	c.logger.Debugf("bboracle.Client: token is %s, refreshing", c.lifecycle.State())
	return c.lifecycle.Refresh(ctx, c.provider)
}

// Dispatch sends req with the current bearer token and returns the parsed body.
func (c *Client) Dispatch(ctx context.Context, req *api.Request) (types.ResponseBody, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	authed, err := c.prepare(ctx, req)
	if err != nil {
		return nil, err
	}

	res, err := c.transport.Send(ctx, authed)
	if err != nil {
		c.logger.Errorf("bboracle.Client: %s %s failed: %v", authed.Method, authed.URL(), err)
		return nil, err
	}
	return res, nil
}

func (c *Client) prepare(ctx context.Context, req *api.Request) (*api.Request, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ensureAuthenticated(ctx); err != nil {
		return nil, err
	}
	token, err := c.lifecycle.TokenValue()
	if err != nil {
		return nil, err
	}
	c.limiter.Mark()
	return req.WithBearer(token), nil
}

// Usage fetches the account's usage statistics.
func (c *Client) Usage(ctx context.Context) (types.ResponseBody, error) {
	return c.Dispatch(ctx, api.NewUsageRequest(c.baseURL))
}

// URL returns a builder for the given path on the configured API base.
func (c *Client) URL(segments ...string) *api.URLBuilder {
	return api.NewURLBuilderWithBase(c.baseURL, segments...)
}

// Lifecycle exposes the token state, e.g. for reporting expiry.
func (c *Client) Lifecycle() *auth.Lifecycle {
	return c.lifecycle
}
