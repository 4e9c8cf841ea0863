package auth

import "time"

// Token is one issued bearer token. It is never modified after creation;
// a refresh replaces the whole Token.
type Token struct {
	value    string
	issuedAt time.Time
}

func NewToken(value string, issuedAt time.Time) *Token {
	return &Token{
		value:    value,
		issuedAt: issuedAt,
	}
}

func (t *Token) Value() string {
	return t.value
}

func (t *Token) IssuedAt() time.Time {
	return t.issuedAt
}

// State of the token lifecycle. Valid -> Expired happens by the passage
// of time alone and is computed on demand.
type State int

const (
	StateNoToken State = iota
	StateValid
	StateExpired
)

func (s State) String() string {
	switch s {
	case StateNoToken:
		return "no-token"
	case StateValid:
		return "valid"
	case StateExpired:
		return "expired"
	}
	return "unknown"
}
