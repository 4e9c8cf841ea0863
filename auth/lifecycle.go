package auth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/pietro-andreoli/bboracle/errors"
	"github.com/pietro-andreoli/bboracle/logger"
)

const (
	// DefaultLifetime is how long the API accepts a token.
	DefaultLifetime = 1 * time.Hour

	// DefaultEarlyExpireOffset makes a token count as expired two minutes
	// before the server would reject it.
	DefaultEarlyExpireOffset = -120 * time.Second
)

type lifecycleConfig struct {
	lifetime          time.Duration
	earlyExpireOffset time.Duration
	now               func() time.Time
	logger            logger.Logger
}

type LifecycleOption func(c *lifecycleConfig)

func WithLifetime(d time.Duration) LifecycleOption {
	return func(c *lifecycleConfig) {
		c.lifetime = d
	}
}

// WithEarlyExpireOffset sets the offset added to the nominal expiry.
// Negative values expire the token early.
func WithEarlyExpireOffset(d time.Duration) LifecycleOption {
	return func(c *lifecycleConfig) {
		c.earlyExpireOffset = d
	}
}

func WithClock(now func() time.Time) LifecycleOption {
	return func(c *lifecycleConfig) {
		c.now = now
	}
}

func WithLogger(log logger.Logger) LifecycleOption {
	return func(c *lifecycleConfig) {
		c.logger = log
	}
}

// Lifecycle owns the current bearer token and decides when it has to be
// refreshed. A new Lifecycle holds no token.
type Lifecycle struct {
	config lifecycleConfig

	mu      sync.RWMutex
	current *Token
}

func NewLifecycle(opts ...LifecycleOption) *Lifecycle {
	config := lifecycleConfig{
		lifetime:          DefaultLifetime,
		earlyExpireOffset: DefaultEarlyExpireOffset,
		now:               time.Now,
		logger:            &logger.Noop{},
	}
	for _, opt := range opts {
		opt(&config)
	}
	return &Lifecycle{config: config}
}

// IsPresent reports whether a token with a non-empty value has been issued.
func (l *Lifecycle) IsPresent() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.isPresent()
}

func (l *Lifecycle) isPresent() bool {
	return l.current != nil && len(l.current.value) > 0
}

// ExpiryTime returns issuedAt + lifetime + earlyExpireOffset.
// It fails with errors.ErrNoToken when no token was issued.
func (l *Lifecycle) ExpiryTime() (time.Time, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.expiryTime()
}

func (l *Lifecycle) expiryTime() (time.Time, error) {
	if !l.isPresent() {
		return time.Time{}, errors.ErrNoToken
	}
	return l.current.issuedAt.Add(l.config.lifetime + l.config.earlyExpireOffset), nil
}

// IsExpired is true when there is no token or now is strictly after ExpiryTime.
func (l *Lifecycle) IsExpired() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	expiry, err := l.expiryTime()
	if err != nil {
		return true
	}
	return l.config.now().After(expiry)
}

func (l *Lifecycle) State() State {
	if !l.IsPresent() {
		return StateNoToken
	}
	if l.IsExpired() {
		return StateExpired
	}
	return StateValid
}

// TokenValue returns the current token string or errors.ErrNoToken.
func (l *Lifecycle) TokenValue() (string, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if !l.isPresent() {
		return "", errors.ErrNoToken
	}
	return l.current.value, nil
}

// Token returns the current token, or nil before the first refresh.
func (l *Lifecycle) Token() *Token {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.current
}

// Refresh exchanges the provider's credentials for a new token and installs
// it stamped with the current time. Errors from the provider are returned
// as is and leave the current token untouched. There is no retry.
func (l *Lifecycle) Refresh(ctx context.Context, provider CredentialProvider) error {
	creds, err := provider.Credentials(ctx)
	if err != nil {
		l.config.logger.Errorf("auth.Lifecycle: failed to load credentials: %v", err)
		return err
	}

	value, err := provider.Exchange(ctx, creds)
	if err != nil {
		l.config.logger.Errorf("auth.Lifecycle: credential exchange failed for %s: %v", creds.Username, err)
		return err
	}
	if value == "" {
		return &errors.ApiError{
			Stage:     errors.STAGE_AUTHENTICATE,
			Type:      errors.TYPE_INVALID_DATA,
			SourceErr: fmt.Errorf("credential exchange returned an empty token"),
		}
	}

	token := NewToken(value, l.config.now())

	l.mu.Lock()
	l.current = token
	l.mu.Unlock()

	expiry := token.issuedAt.Add(l.config.lifetime + l.config.earlyExpireOffset)
	l.config.logger.Infof("auth.Lifecycle: token refreshed, expires at %s", expiry.Format(time.RFC3339))
	if claims, err := ParseClaims(value); err == nil && !claims.ExpiresAt.IsZero() {
		l.config.logger.Debugf(
			"auth.Lifecycle: token subject=%q, server expiry %s",
			claims.Subject, claims.ExpiresAt.Format(time.RFC3339),
		)
	}
	return nil
}
