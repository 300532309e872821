package payments

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/nails/driver-invoice-worldpay/internal/config"
	"github.com/nails/driver-invoice-worldpay/internal/domain/entities"
	"github.com/nails/driver-invoice-worldpay/internal/usecase/interfaces"
)

const challengeTokenTTL = 2 * time.Hour

var ErrMissingMACKey = errors.New("missing 3DS MAC key")

type challengePayload struct {
	ACSUrl        string `json:"ACSUrl"`
	Payload       string `json:"Payload"`
	TransactionID string `json:"TransactionId"`
}

type challengeClaims struct {
	jwt.RegisteredClaims
	OrgUnitID        string           `json:"OrgUnitId"`
	ReturnURL        string           `json:"ReturnUrl"`
	Payload          challengePayload `json:"Payload"`
	ObjectifyPayload bool             `json:"ObjectifyPayload"`
}

type ddcClaims struct {
	jwt.RegisteredClaims
	OrgUnitID string `json:"OrgUnitId"`
}

// ChallengeSigner issues HS256 tokens for the 3DS step-up and device data
// collection endpoints.
type ChallengeSigner struct {
	issuer    string
	orgUnitID string
	macKey    []byte
	now       func() time.Time
}

var _ interfaces.IChallengeSigner = (*ChallengeSigner)(nil)

func NewChallengeSigner(threeDS config.ThreeDS) (*ChallengeSigner, error) {
	if threeDS.MACKey == "" {
		return nil, ErrMissingMACKey
	}
	return &ChallengeSigner{
		issuer:    threeDS.Issuer,
		orgUnitID: threeDS.OrgUnitID,
		macKey:    []byte(threeDS.MACKey),
		now:       time.Now,
	}, nil
}

func (s *ChallengeSigner) ChallengeJWT(details entities.ChallengeDetails, returnURL string) (string, error) {
	now := s.now()
	claims := challengeClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(challengeTokenTTL)),
		},
		OrgUnitID: s.orgUnitID,
		ReturnURL: returnURL,
		Payload: challengePayload{
			ACSUrl:        details.ACSURL,
			Payload:       details.Payload,
			TransactionID: details.TransactionID,
		},
		ObjectifyPayload: true,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.macKey)
}

func (s *ChallengeSigner) DDCJWT() (string, error) {
	claims := ddcClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:       uuid.NewString(),
			Issuer:   s.issuer,
			IssuedAt: jwt.NewNumericDate(s.now()),
		},
		OrgUnitID: s.orgUnitID,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.macKey)
}
