package bboracle

import (
	"net/http"
	"time"

	"github.com/pietro-andreoli/bboracle/api"
	"github.com/pietro-andreoli/bboracle/auth"
	"github.com/pietro-andreoli/bboracle/logger"
	"github.com/pietro-andreoli/bboracle/rate"
)

type config struct {
	// transport specifies the HTTP transport mechanism
	// for making requests.
	// It's useful for mocking or if customers
	// want to add extra logging, headers, etc.
	// default: http.DefaultTransport
	transport http.RoundTripper

	// timeout sets the maximum duration for HTTP requests
	// before they are cancelled
	// default: 10 seconds
	timeout time.Duration

	// logger provides logging functionality for all internal
	// client operations
	// default: logger.Noop
	logger logger.Logger

	// limiter spaces out outgoing requests.
	// default: rate.IntervalLimiter with minInterval
	limiter rate.Limiter

	// minInterval is the minimum time between two dispatches
	// when no custom limiter is set
	// default: 1 second
	minInterval time.Duration

	// tokenLifetime is how long an issued token is accepted
	// default: 1 hour
	tokenLifetime time.Duration

	// earlyExpireOffset is added to the token expiry;
	// negative values refresh before the server rejects the token
	// default: -120 seconds
	earlyExpireOffset time.Duration

	// now and sleep replace time.Now and time.Sleep
	now   func() time.Time
	sleep func(d time.Duration)

	// apiTransport replaces the HTTP transport entirely;
	// transport and timeout are ignored when set
	// default: api.HTTPTransport
	apiTransport api.Transport

	// baseURL is the scheme and domain of the API
	// default: https://api.bestbuy.com
	baseURL string
}

func defaultConfig() *config {
	return &config{
		transport:         http.DefaultTransport,
		timeout:           10 * time.Second,
		logger:            logger.Noop{},
		minInterval:       rate.DefaultMinInterval,
		tokenLifetime:     auth.DefaultLifetime,
		earlyExpireOffset: auth.DefaultEarlyExpireOffset,
		now:               time.Now,
		sleep:             time.Sleep,
		baseURL:           api.DefaultBaseURL,
	}
}

type ConfigOption func(c *config)

func WithTransport(transport http.RoundTripper) ConfigOption {
	return func(c *config) {
		c.transport = transport
	}
}

func WithTimeout(timeout time.Duration) ConfigOption {
	return func(c *config) {
		c.timeout = timeout
	}
}

func WithLogger(logger logger.Logger) ConfigOption {
	return func(c *config) {
		c.logger = logger
	}
}

func WithRateLimiter(limiter rate.Limiter) ConfigOption {
	return func(c *config) {
		c.limiter = limiter
	}
}

func WithMinInterval(d time.Duration) ConfigOption {
	return func(c *config) {
		c.minInterval = d
	}
}

func WithTokenLifetime(d time.Duration) ConfigOption {
	return func(c *config) {
		c.tokenLifetime = d
	}
}

func WithEarlyExpireOffset(d time.Duration) ConfigOption {
	return func(c *config) {
		c.earlyExpireOffset = d
	}
}

func WithClock(now func() time.Time) ConfigOption {
	return func(c *config) {
		c.now = now
	}
}

func WithSleeper(sleep func(d time.Duration)) ConfigOption {
	return func(c *config) {
		c.sleep = sleep
	}
}

func WithAPITransport(transport api.Transport) ConfigOption {
	return func(c *config) {
		c.apiTransport = transport
	}
}

func WithBaseURL(baseURL string) ConfigOption {
	return func(c *config) {
		c.baseURL = baseURL
	}
}
