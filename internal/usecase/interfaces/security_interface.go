package interfaces

import "github.com/nails/driver-invoice-worldpay/internal/domain/entities"

// ICookieCipher turns the machine cookie into an opaque string that can ride
// through a third-party redirect as form data.
type ICookieCipher interface {
	Encrypt(plain []byte) (string, error)
	Decrypt(token string) ([]byte, error)
}

// IChallengeSigner issues the signed tokens posted to the 3DS provider.
type IChallengeSigner interface {
	ChallengeJWT(details entities.ChallengeDetails, returnURL string) (string, error)
	DDCJWT() (string, error)
}
