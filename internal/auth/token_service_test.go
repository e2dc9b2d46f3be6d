package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenServiceRoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret")

	token, err := svc.GenerateAccessToken(42, "john@example.com")
	assert.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "john@example.com", claims.Email)
	assert.Equal(t, PurposeAccess, claims.Purpose)
}

func TestTokenServiceRejectsWrongSecret(t *testing.T) {
	token, err := NewTokenService("secret-a").GenerateAccessToken(1, "a@example.com")
	assert.NoError(t, err)

	_, err = NewTokenService("secret-b").ValidateToken(token)
	assert.Error(t, err)
}

func TestTokenServicePurposes(t *testing.T) {
	svc := NewTokenService("test-secret")

	access, err := svc.GenerateAccessToken(1, "a@example.com")
	assert.NoError(t, err)
	confirm, err := svc.GenerateConfirmToken(1, "a@example.com")
	assert.NoError(t, err)

	_, err = svc.ValidateTokenForPurpose(access, PurposeAccess)
	assert.NoError(t, err)
	_, err = svc.ValidateTokenForPurpose(access, PurposeConfirm)
	assert.Error(t, err)
	_, err = svc.ValidateTokenForPurpose(confirm, PurposeConfirm)
	assert.NoError(t, err)
}

func TestRefreshTokenCarriesID(t *testing.T) {
	svc := NewTokenService("test-secret")

	tokenID, token, err := svc.GenerateRefreshToken(1, "a@example.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, tokenID)

	extracted, err := svc.ExtractTokenID(token)
	assert.NoError(t, err)
	assert.Equal(t, tokenID, extracted)
}

func TestAccessTokenHasNoID(t *testing.T) {
	svc := NewTokenService("test-secret")

	token, err := svc.GenerateAccessToken(1, "a@example.com")
	assert.NoError(t, err)

	_, err = svc.ExtractTokenID(token)
	assert.Error(t, err)
}
