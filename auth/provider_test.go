package auth

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pietro-andreoli/bboracle/errors"
)

type countingSource struct {
	creds Credentials
	err   error
	calls int
}

func (s *countingSource) Credentials(_ context.Context) (Credentials, error) {
	s.calls++
	return s.creds, s.err
}

type stubExchanger struct {
	token string
	err   error
}

func (e stubExchanger) Exchange(_ context.Context, _ Credentials) (string, error) {
	return e.token, e.err
}

func Test_Provider_caches_credentials(t *testing.T) {
	src := &countingSource{creds: Credentials{Username: "user", Password: "pass"}}
	p := NewProvider(src, stubExchanger{token: "jwt"})

	for i := 0; i < 3; i++ {
		creds, err := p.Credentials(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "user", creds.Username)
	}
	assert.Equal(t, 1, src.calls)
}

func Test_Provider_source_error(t *testing.T) {
	srcErr := fmt.Errorf("no credentials")
	src := &countingSource{err: srcErr}
	p := NewProvider(src, stubExchanger{})

	_, err := p.Credentials(context.Background())
	assert.Same(t, srcErr, err)

	_, _ = p.Credentials(context.Background())
	assert.Equal(t, 2, src.calls)
}

func Test_Provider_forgets_rejected_credentials(t *testing.T) {
	src := &countingSource{creds: Credentials{Username: "user", Password: "old"}}
	rejected := &errors.ApiError{Stage: errors.STAGE_AUTHENTICATE, Type: errors.TYPE_BAD_CREDENTIALS}
	p := NewProvider(src, stubExchanger{err: rejected})

	creds, err := p.Credentials(context.Background())
	require.NoError(t, err)

	_, err = p.Exchange(context.Background(), creds)
	assert.Same(t, rejected, err)

	_, err = p.Credentials(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, src.calls)
}

func Test_Provider_keeps_credentials_on_io_error(t *testing.T) {
	src := &countingSource{creds: Credentials{Username: "user", Password: "pass"}}
	ioErr := &errors.ApiError{Stage: errors.STAGE_AUTHENTICATE, Type: errors.TYPE_IO}
	p := NewProvider(src, stubExchanger{err: ioErr})

	creds, _ := p.Credentials(context.Background())
	_, err := p.Exchange(context.Background(), creds)
	assert.Same(t, ioErr, err)

	_, _ = p.Credentials(context.Background())
	assert.Equal(t, 1, src.calls)
}

func Test_StaticSource(t *testing.T) {
	creds, err := StaticSource{Username: "a", Password: "b"}.Credentials(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Credentials{Username: "a", Password: "b"}, creds)
	assert.True(t, creds.Loaded())
	assert.False(t, Credentials{Username: "a"}.Loaded())
}
