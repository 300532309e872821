package security

import (
	"crypto/rand"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef-cookie"

func TestCookieCipher_RoundTrip(t *testing.T) {
	c, err := NewCookieCipher(testSecret)
	require.NoError(t, err)

	random := make([]byte, 512)
	_, err = rand.Read(random)
	require.NoError(t, err)

	for _, plain := range [][]byte{
		{},
		[]byte("machine=0a1b2c3d"),
		{0x00, 0xff, 0x10},
		random,
	} {
		token, err := c.Encrypt(plain)
		require.NoError(t, err)
		assert.NotContains(t, token, "machine=")

		got, err := c.Decrypt(token)
		require.NoError(t, err)
		assert.Equal(t, plain, got)
	}
}

func TestCookieCipher_FreshNonce(t *testing.T) {
	c, err := NewCookieCipher(testSecret)
	require.NoError(t, err)

	a, err := c.Encrypt([]byte("machine=1"))
	require.NoError(t, err)
	b, err := c.Encrypt([]byte("machine=1"))
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestCookieCipher_Rejects(t *testing.T) {
	c, err := NewCookieCipher(testSecret)
	require.NoError(t, err)
	other, err := NewCookieCipher("another-secret-of-length")
	require.NoError(t, err)

	token, err := c.Encrypt([]byte("machine=1"))
	require.NoError(t, err)

	_, err = other.Decrypt(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	raw, err := base64.RawURLEncoding.DecodeString(token)
	require.NoError(t, err)
	raw[nonceSize+3] ^= 0x01
	_, err = c.Decrypt(base64.RawURLEncoding.EncodeToString(raw))
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = c.Decrypt("not base64 !!")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = c.Decrypt("c2hvcnQ")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewCookieCipher_WeakKey(t *testing.T) {
	_, err := NewCookieCipher("short")
	assert.ErrorIs(t, err, ErrWeakCookieKey)
}
