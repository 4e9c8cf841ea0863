package auth

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pietro-andreoli/bboracle/errors"
)

var t0 = time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

type fakeProvider struct {
	creds    Credentials
	credsErr error
	tokens   []string
	err      error
	calls    int
}

func (p *fakeProvider) Credentials(_ context.Context) (Credentials, error) {
	return p.creds, p.credsErr
}

func (p *fakeProvider) Exchange(_ context.Context, _ Credentials) (string, error) {
	p.calls++
	if p.err != nil {
		return "", p.err
	}
	if len(p.tokens) == 0 {
		return fmt.Sprintf("token-%d", p.calls), nil
	}
	return p.tokens[p.calls-1], nil
}

func makeLifecycle(c *fakeClock) *Lifecycle {
	return NewLifecycle(WithClock(c.Now))
}

func Test_Lifecycle_no_token(t *testing.T) {
	l := makeLifecycle(&fakeClock{now: t0})

	assert.False(t, l.IsPresent())
	assert.True(t, l.IsExpired())
	assert.Equal(t, StateNoToken, l.State())
	assert.Nil(t, l.Token())

	_, err := l.ExpiryTime()
	assert.ErrorIs(t, err, errors.ErrNoToken)

	_, err = l.TokenValue()
	assert.ErrorIs(t, err, errors.ErrNoToken)
}

func Test_Lifecycle_refresh(t *testing.T) {
	c := &fakeClock{now: t0}
	l := makeLifecycle(c)
	p := &fakeProvider{creds: Credentials{Username: "u", Password: "p"}}

	require.NoError(t, l.Refresh(context.Background(), p))

	assert.True(t, l.IsPresent())
	assert.False(t, l.IsExpired())
	assert.Equal(t, StateValid, l.State())

	value, err := l.TokenValue()
	require.NoError(t, err)
	assert.Equal(t, "token-1", value)
	assert.Equal(t, t0, l.Token().IssuedAt())

	expiry, err := l.ExpiryTime()
	require.NoError(t, err)
	assert.Equal(t, t0.Add(58*time.Minute), expiry)
}

func Test_Lifecycle_expiry_boundary(t *testing.T) {
	testCases := []struct {
		name    string
		elapsed time.Duration
		expired bool
	}{
		{name: "just issued", elapsed: 0},
		{name: "57 minutes", elapsed: 57 * time.Minute},
		{name: "one ns before expiry", elapsed: 58*time.Minute - time.Nanosecond},
		{name: "exactly at expiry", elapsed: 58 * time.Minute},
		{name: "one ns after expiry", elapsed: 58*time.Minute + time.Nanosecond, expired: true},
		{name: "59 minutes", elapsed: 59 * time.Minute, expired: true},
		{name: "nominal lifetime", elapsed: time.Hour, expired: true},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			c := &fakeClock{now: t0}
			l := makeLifecycle(c)
			require.NoError(t, l.Refresh(context.Background(), &fakeProvider{}))

			c.now = t0.Add(tt.elapsed)
			assert.Equal(t, tt.expired, l.IsExpired())
			if tt.expired {
				assert.Equal(t, StateExpired, l.State())
			}
		})
	}
}

func Test_Lifecycle_custom_lifetime(t *testing.T) {
	c := &fakeClock{now: t0}
	l := NewLifecycle(
		WithClock(c.Now),
		WithLifetime(10*time.Minute),
		WithEarlyExpireOffset(-30*time.Second),
	)
	require.NoError(t, l.Refresh(context.Background(), &fakeProvider{}))

	expiry, err := l.ExpiryTime()
	require.NoError(t, err)
	assert.Equal(t, t0.Add(9*time.Minute+30*time.Second), expiry)
}

func Test_Lifecycle_refresh_replaces_token(t *testing.T) {
	c := &fakeClock{now: t0}
	l := makeLifecycle(c)
	p := &fakeProvider{}

	require.NoError(t, l.Refresh(context.Background(), p))
	first := l.Token()

	c.now = t0.Add(59 * time.Minute)
	require.NoError(t, l.Refresh(context.Background(), p))
	second := l.Token()

	assert.NotSame(t, first, second)
	assert.Equal(t, "token-1", first.Value())
	assert.Equal(t, t0, first.IssuedAt())
	assert.Equal(t, "token-2", second.Value())
	assert.Equal(t, t0.Add(59*time.Minute), second.IssuedAt())
	assert.False(t, l.IsExpired())
}

func Test_Lifecycle_refresh_failure_keeps_state(t *testing.T) {
	exchangeErr := &errors.ApiError{Stage: errors.STAGE_AUTHENTICATE, Type: errors.TYPE_BAD_CREDENTIALS}
	credsErr := fmt.Errorf("credentials file missing")

	testCases := []struct {
		name     string
		seed     bool
		provider *fakeProvider
		err      error
	}{
		{name: "no token, exchange fails", provider: &fakeProvider{err: exchangeErr}, err: exchangeErr},
		{name: "no token, credentials fail", provider: &fakeProvider{credsErr: credsErr}, err: credsErr},
		{name: "valid token, exchange fails", seed: true, provider: &fakeProvider{err: exchangeErr}, err: exchangeErr},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			c := &fakeClock{now: t0}
			l := makeLifecycle(c)
			if tt.seed {
				require.NoError(t, l.Refresh(context.Background(), &fakeProvider{tokens: []string{"seed"}}))
			}
			before := l.Token()
			present, expired := l.IsPresent(), l.IsExpired()

			err := l.Refresh(context.Background(), tt.provider)
			assert.Same(t, tt.err, err)

			assert.Same(t, before, l.Token())
			assert.Equal(t, present, l.IsPresent())
			assert.Equal(t, expired, l.IsExpired())
		})
	}
}

func Test_Lifecycle_refresh_empty_token(t *testing.T) {
	l := makeLifecycle(&fakeClock{now: t0})

	err := l.Refresh(context.Background(), &fakeProvider{tokens: []string{""}})
	assert.True(t, errors.IsAuthError(err))
	assert.False(t, l.IsPresent())
}

func Test_State_String(t *testing.T) {
	assert.Equal(t, "no-token", StateNoToken.String())
	assert.Equal(t, "valid", StateValid.String())
	assert.Equal(t, "expired", StateExpired.String())
	assert.Equal(t, "unknown", State(42).String())
}
