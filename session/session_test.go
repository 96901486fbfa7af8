package session

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, claims *Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestMemoryRoundtrip(t *testing.T) {
	mem := &Memory{}

	got, err := mem.Get()
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, mem.Set(&Session{AuthToken: "tok", UserID: 4, UserName: "Asha"}))
	got, err = mem.Get()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "tok", got.AuthToken)
	assert.Equal(t, uint(4), got.UserID)

	// Get hands out a copy, not the stored session.
	got.AuthToken = "mutated"
	again, err := mem.Get()
	require.NoError(t, err)
	assert.Equal(t, "tok", again.AuthToken)

	require.NoError(t, mem.Clear())
	got, err = mem.Get()
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStoreRoundtrip(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)

	got, err := store.Get()
	require.NoError(t, err)
	assert.Nil(t, got, "empty store returns nil without error")

	require.NoError(t, store.Set(&Session{
		AuthToken: "tok-1",
		Role:      "CUSTOMER",
		UserID:    9,
		UserName:  "Asha",
		UserEmail: "asha@example.com",
	}))

	got, err = store.Get()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "tok-1", got.AuthToken)
	assert.Equal(t, "CUSTOMER", got.Role)

	// A second login replaces the row instead of accumulating.
	require.NoError(t, store.Set(&Session{AuthToken: "tok-2", UserID: 9}))
	got, err = store.Get()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "tok-2", got.AuthToken)

	require.NoError(t, store.Clear())
	got, err = store.Get()
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestParseClaims(t *testing.T) {
	token := signToken(t, &Claims{
		UserID: 12,
		Role:   "CUSTOMER",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "asha@example.com",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	claims, err := ParseClaims(token)
	require.NoError(t, err)
	assert.Equal(t, uint(12), claims.UserID)
	assert.Equal(t, "CUSTOMER", claims.Role)
	assert.Equal(t, "asha@example.com", claims.Subject)
}

func TestParseClaimsRejectsGarbage(t *testing.T) {
	_, err := ParseClaims("not-a-jwt")
	assert.Error(t, err)
}

func TestExpired(t *testing.T) {
	var nilSess *Session
	assert.True(t, nilSess.Expired())
	assert.True(t, (&Session{}).Expired())

	// An opaque token is for the backend to judge, not a local expiry.
	assert.False(t, (&Session{AuthToken: "garbage"}).Expired())

	live := signToken(t, &Claims{RegisteredClaims: jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}})
	assert.False(t, (&Session{AuthToken: live}).Expired())

	stale := signToken(t, &Claims{RegisteredClaims: jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	}})
	assert.True(t, (&Session{AuthToken: stale}).Expired())

	// No exp claim means the backend decides when it stops honouring it.
	open := signToken(t, &Claims{UserID: 1})
	assert.False(t, (&Session{AuthToken: open}).Expired())
}
