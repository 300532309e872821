package request

import (
	"strings"

	"github.com/nails/driver-invoice-worldpay/internal/domain/entities"
)

type RefundRequest struct {
	OrderCode       string `json:"order_code" binding:"required"`
	Amount          int64  `json:"amount" binding:"required,gt=0"`
	CurrencyCode    string `json:"currency_code" binding:"required,len=3"`
	Exponent        *int   `json:"exponent"`
	CustomerPresent bool   `json:"customer_present"`
	Reference       string `json:"reference"`
}

func (r RefundRequest) ToEntity() entities.RefundRequest {
	exponent := defaultExponent
	if r.Exponent != nil {
		exponent = *r.Exponent
	}
	return entities.RefundRequest{
		OrderCode:       strings.TrimSpace(r.OrderCode),
		Amount:          r.Amount,
		CurrencyCode:    strings.ToUpper(strings.TrimSpace(r.CurrencyCode)),
		Exponent:        exponent,
		CustomerPresent: r.CustomerPresent,
		Reference:       r.Reference,
	}
}

// MerchantQuery selects the merchant account for read and token calls.
type MerchantQuery struct {
	Currency        string `form:"currency" binding:"required,len=3"`
	CustomerPresent bool   `form:"customer_present"`
}

func (q MerchantQuery) CurrencyCode() string {
	return strings.ToUpper(strings.TrimSpace(q.Currency))
}

// TokenOwner builds the owner for a shopper's stored tokens.
func (q MerchantQuery) TokenOwner(shopperID string) entities.TokenOwner {
	return entities.TokenOwner{
		ShopperID:       strings.TrimSpace(shopperID),
		CurrencyCode:    q.CurrencyCode(),
		CustomerPresent: q.CustomerPresent,
	}
}
