package response

import (
	"time"

	"github.com/nails/driver-invoice-worldpay/internal/domain/entities"
)

type TokenResponse struct {
	ID     string    `json:"id"`
	Expiry time.Time `json:"expiry"`
	// ExpiryMonth is "MM/YYYY", as printed on the card.
	ExpiryMonth string `json:"expiry_month"`
}

func FromStoredTokens(tokens []entities.StoredToken) []TokenResponse {
	out := make([]TokenResponse, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, TokenResponse{
			ID:          t.ID,
			Expiry:      t.Expiry,
			ExpiryMonth: t.Expiry.Format("01/2006"),
		})
	}
	return out
}
