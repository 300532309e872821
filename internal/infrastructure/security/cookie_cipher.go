// Package security protects values that have to leave the service and come
// back, such as the machine cookie carried through the 3DS redirect.
package security

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/nacl/secretbox"

	"github.com/nails/driver-invoice-worldpay/internal/usecase/interfaces"
)

const (
	nonceSize     = 24
	minSecretSize = 16
	keyInfo       = "worldpay machine cookie v1"
)

var (
	ErrWeakCookieKey = errors.New("cookie key must be at least 16 bytes")
	ErrInvalidToken  = errors.New("invalid encrypted token")
)

// CookieCipher seals values with XSalsa20-Poly1305 under a key derived from
// the configured secret. Tokens are URL-safe base64 of nonce||box.
type CookieCipher struct {
	key [32]byte
}

var _ interfaces.ICookieCipher = (*CookieCipher)(nil)

func NewCookieCipher(secret string) (*CookieCipher, error) {
	if len(secret) < minSecretSize {
		return nil, ErrWeakCookieKey
	}
	c := &CookieCipher{}
	kdf := hkdf.New(sha256.New, []byte(secret), nil, []byte(keyInfo))
	if _, err := io.ReadFull(kdf, c.key[:]); err != nil {
		return nil, fmt.Errorf("derive cookie key: %w", err)
	}
	return c, nil
}

func (c *CookieCipher) Encrypt(plain []byte) (string, error) {
	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}
	sealed := secretbox.Seal(nonce[:], plain, &nonce, &c.key)
	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

func (c *CookieCipher) Decrypt(token string) ([]byte, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if len(raw) < nonceSize+secretbox.Overhead {
		return nil, ErrInvalidToken
	}
	var nonce [nonceSize]byte
	copy(nonce[:], raw[:nonceSize])
	plain, ok := secretbox.Open(nil, raw[nonceSize:], &nonce, &c.key)
	if !ok {
		return nil, ErrInvalidToken
	}
	if plain == nil {
		plain = []byte{}
	}
	return plain, nil
}
