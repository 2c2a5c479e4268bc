package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "this-is-a-very-long-secret-key-for-testing"

func newTestService(t *testing.T) *Service {
	t.Helper()
	s, err := NewService(Config{Secret: testSecret, TTL: time.Hour})
	require.NoError(t, err)
	return s
}

func TestNewService_RejectsBadConfig(t *testing.T) {
	_, err := NewService(Config{Secret: "", TTL: time.Hour})
	assert.ErrorIs(t, err, ErrWeakSecret)

	_, err = NewService(Config{Secret: "short", TTL: time.Hour})
	assert.ErrorIs(t, err, ErrWeakSecret)

	_, err = NewService(Config{Secret: testSecret})
	assert.ErrorIs(t, err, ErrInvalidTTL)
}

func TestService_IssueAndParse(t *testing.T) {
	s := newTestService(t)

	tok, err := s.Issue("emp-42", "alice", "admin")
	require.NoError(t, err)

	claims, err := s.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, "emp-42", claims.UserID)
	assert.Equal(t, "emp-42", claims.Subject)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, DefaultIssuer, claims.Issuer)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestService_Expired(t *testing.T) {
	s := newTestService(t)
	s.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	tok, err := s.Issue("1", "bob", "staff")
	require.NoError(t, err)

	s.now = time.Now
	claims, err := s.Parse(tok)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestService_InvalidTokens(t *testing.T) {
	s := newTestService(t)

	_, err := s.Parse("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	other, err := NewService(Config{Secret: testSecret + "-other", TTL: time.Hour})
	require.NoError(t, err)
	tok, err := other.Issue("1", "eve", "admin")
	require.NoError(t, err)
	_, err = s.Parse(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)

	foreign, err := NewService(Config{Secret: testSecret, TTL: time.Hour, Issuer: "another-hotel"})
	require.NoError(t, err)
	tok, err = foreign.Issue("1", "eve", "admin")
	require.NoError(t, err)
	_, err = s.Parse(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: "1", Role: "admin"})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = s.Parse(unsigned)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestClaims_HasRole(t *testing.T) {
	c := &Claims{Role: "staff"}
	assert.True(t, c.HasRole("admin", "staff"))
	assert.False(t, c.HasRole("admin"))
	assert.False(t, c.HasRole())
}
