package payments

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nails/driver-invoice-worldpay/internal/config"
	"github.com/nails/driver-invoice-worldpay/internal/domain/entities"
)

func TestChallengeSigner_ChallengeJWT(t *testing.T) {
	s, err := NewChallengeSigner(config.ThreeDS{Issuer: "iss-1", OrgUnitID: "org-1", MACKey: "mac-secret"})
	require.NoError(t, err)

	token, err := s.ChallengeJWT(entities.ChallengeDetails{
		ACSURL: "https://acs.example.com", Payload: "cGF5bG9hZA==", TransactionID: "3ds-tx",
	}, "https://shop.example.com/return")
	require.NoError(t, err)

	var claims challengeClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(tok *jwt.Token) (interface{}, error) {
		return []byte("mac-secret"), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	assert.Equal(t, "iss-1", claims.Issuer)
	assert.NotEmpty(t, claims.ID)
	assert.Equal(t, "org-1", claims.OrgUnitID)
	assert.Equal(t, "https://shop.example.com/return", claims.ReturnURL)
	assert.True(t, claims.ObjectifyPayload)
	assert.Equal(t, "https://acs.example.com", claims.Payload.ACSUrl)
	assert.Equal(t, "cGF5bG9hZA==", claims.Payload.Payload)
	assert.Equal(t, "3ds-tx", claims.Payload.TransactionID)
	assert.WithinDuration(t, time.Now().Add(challengeTokenTTL), claims.ExpiresAt.Time, time.Minute)

	_, err = jwt.ParseWithClaims(token, &challengeClaims{}, func(tok *jwt.Token) (interface{}, error) {
		return []byte("wrong"), nil
	})
	assert.Error(t, err)
}

func TestChallengeSigner_DDCJWT(t *testing.T) {
	s, err := NewChallengeSigner(config.ThreeDS{Issuer: "iss-1", OrgUnitID: "org-1", MACKey: "mac-secret"})
	require.NoError(t, err)

	token, err := s.DDCJWT()
	require.NoError(t, err)

	var claims ddcClaims
	_, err = jwt.ParseWithClaims(token, &claims, func(tok *jwt.Token) (interface{}, error) {
		return []byte("mac-secret"), nil
	})
	require.NoError(t, err)
	assert.Equal(t, "org-1", claims.OrgUnitID)
	assert.Equal(t, "iss-1", claims.Issuer)
}

func TestNewChallengeSigner_MissingKey(t *testing.T) {
	_, err := NewChallengeSigner(config.ThreeDS{Issuer: "iss"})
	assert.ErrorIs(t, err, ErrMissingMACKey)
}
