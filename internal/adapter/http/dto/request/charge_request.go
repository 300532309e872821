package request

import (
	"strings"

	"github.com/nails/driver-invoice-worldpay/internal/domain/entities"
)

type AddressRequest struct {
	Line1       string `json:"line_1" binding:"required"`
	Line2       string `json:"line_2"`
	City        string `json:"city" binding:"required"`
	State       string `json:"state"`
	PostalCode  string `json:"postal_code" binding:"required"`
	CountryCode string `json:"country_code" binding:"required,len=2"`
}

type PaymentDataRequest struct {
	Token        string          `json:"token"`
	CardNumber   string          `json:"card_number"`
	ExpiryMonth  string          `json:"expiry_month"`
	ExpiryYear   string          `json:"expiry_year"`
	HolderName   string          `json:"holder_name"`
	CVC          string          `json:"cvc"`
	Address      *AddressRequest `json:"address"`
	DDCSessionID string          `json:"ddc_session_id"`
}

type SourceRequest struct {
	ID    string `json:"id" binding:"required"`
	Token string `json:"token" binding:"required"`
}

type ShopperRequest struct {
	ID    string `json:"id" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

// ChargeRequest is the body of POST /charges.
type ChargeRequest struct {
	InvoiceID       string             `json:"invoice_id" binding:"required"`
	PaymentID       string             `json:"payment_id" binding:"required"`
	Amount          int64              `json:"amount" binding:"required,gt=0"`
	CurrencyCode    string             `json:"currency_code" binding:"required,len=3"`
	Exponent        *int               `json:"exponent"`
	CustomerPresent bool               `json:"customer_present"`
	Description     string             `json:"description"`
	OrderCode       string             `json:"order_code"`
	SessionID       string             `json:"session_id"`
	Shopper         ShopperRequest     `json:"shopper" binding:"required"`
	Source          *SourceRequest     `json:"source"`
	PaymentData     PaymentDataRequest `json:"payment_data"`
}

// BrowserContext is what the handler reads off the shopper's own request.
type BrowserContext struct {
	IPAddress    string
	AcceptHeader string
	UserAgent    string
}

const defaultExponent = 2

func (r ChargeRequest) ToEntity(browser BrowserContext) entities.ChargeRequest {
	exponent := defaultExponent
	if r.Exponent != nil {
		exponent = *r.Exponent
	}
	req := entities.ChargeRequest{
		InvoiceID:       strings.TrimSpace(r.InvoiceID),
		PaymentID:       strings.TrimSpace(r.PaymentID),
		Amount:          r.Amount,
		CurrencyCode:    strings.ToUpper(strings.TrimSpace(r.CurrencyCode)),
		CustomerPresent: r.CustomerPresent,
		PaymentData: entities.PaymentData{
			Token:        r.PaymentData.Token,
			CardNumber:   r.PaymentData.CardNumber,
			ExpiryMonth:  r.PaymentData.ExpiryMonth,
			ExpiryYear:   r.PaymentData.ExpiryYear,
			HolderName:   r.PaymentData.HolderName,
			CVC:          r.PaymentData.CVC,
			DDCSessionID: r.PaymentData.DDCSessionID,
		},
		Order: entities.OrderContext{
			OrderCode:   strings.TrimSpace(r.OrderCode),
			Description: r.Description,
			Exponent:    exponent,
			SessionID:   r.SessionID,
			Shopper: entities.Shopper{
				ID:           r.Shopper.ID,
				Email:        r.Shopper.Email,
				IPAddress:    browser.IPAddress,
				AcceptHeader: browser.AcceptHeader,
				UserAgent:    browser.UserAgent,
			},
		},
	}
	if r.Source != nil {
		req.Source = &entities.PaymentSource{ID: r.Source.ID, Token: r.Source.Token}
	}
	if a := r.PaymentData.Address; a != nil {
		req.PaymentData.Address = &entities.Address{
			Line1:       a.Line1,
			Line2:       a.Line2,
			City:        a.City,
			State:       a.State,
			PostalCode:  a.PostalCode,
			CountryCode: strings.ToUpper(a.CountryCode),
		}
	}
	return req
}
