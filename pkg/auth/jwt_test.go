package auth

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salesdeskhq/salesdesk/pkg/cache"
)

const testSecret = "test-secret"

func TestGenerateAndValidateJWT(t *testing.T) {
	token, err := GenerateJWT(42, "rep@example.com", "rep", testSecret, 24)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateJWT(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, "rep@example.com", claims.Email)
	assert.Equal(t, "rep", claims.Role)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestValidateJWT_WrongSecret(t *testing.T) {
	token, err := GenerateJWT(42, "rep@example.com", "rep", testSecret, 24)
	require.NoError(t, err)

	_, err = ValidateJWT(token, "another-secret")
	assert.Error(t, err)
}

func TestValidateJWT_Garbage(t *testing.T) {
	_, err := ValidateJWT("not.a.jwt", testSecret)
	assert.Error(t, err)
}

func TestValidateJWT_Expired(t *testing.T) {
	token, err := GenerateJWT(42, "rep@example.com", "rep", testSecret, -1)
	require.NoError(t, err)

	_, err = ValidateJWT(token, testSecret)
	assert.Error(t, err)
}

func newTestBlacklist(t *testing.T) *TokenBlacklist {
	mr := miniredis.RunT(t)
	cacheClient, err := cache.NewClient("redis://" + mr.Addr())
	require.NoError(t, err)
	return NewTokenBlacklist(cacheClient)
}

func TestValidateJWTWithBlacklist(t *testing.T) {
	ctx := context.Background()
	blacklist := newTestBlacklist(t)

	token, err := GenerateJWT(42, "rep@example.com", "rep", testSecret, 24)
	require.NoError(t, err)

	claims, err := ValidateJWTWithBlacklist(ctx, token, testSecret, blacklist)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)

	require.NoError(t, blacklist.Add(ctx, token, time.Hour))

	_, err = ValidateJWTWithBlacklist(ctx, token, testSecret, blacklist)
	assert.Error(t, err)
}

func TestTokenBlacklist(t *testing.T) {
	ctx := context.Background()
	blacklist := newTestBlacklist(t)

	revoked, err := blacklist.IsBlacklisted(ctx, "some-token")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, blacklist.Add(ctx, "some-token", time.Hour))

	revoked, err = blacklist.IsBlacklisted(ctx, "some-token")
	require.NoError(t, err)
	assert.True(t, revoked)

	// A different token stays valid.
	revoked, err = blacklist.IsBlacklisted(ctx, "other-token")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-password")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-password", hash)

	assert.True(t, CheckPassword(hash, "s3cret-password"))
	assert.False(t, CheckPassword(hash, "wrong-password"))
}
