package entities

import "strings"

// Address is a billing address attached to a card credential.
type Address struct {
	Line1       string `json:"line_1"`
	Line2       string `json:"line_2,omitempty"`
	City        string `json:"city"`
	State       string `json:"state,omitempty"`
	PostalCode  string `json:"postal_code"`
	CountryCode string `json:"country_code"`
}

// PaymentData is the caller-supplied payment payload. CVC is transient: it
// is masked by the sensitive data guard once it has been sent to the gateway.
type PaymentData struct {
	Token        string   `json:"token,omitempty"`
	CardNumber   string   `json:"card_number,omitempty"`
	ExpiryMonth  string   `json:"expiry_month,omitempty"`
	ExpiryYear   string   `json:"expiry_year,omitempty"`
	HolderName   string   `json:"holder_name,omitempty"`
	CVC          string   `json:"cvc,omitempty"`
	Address      *Address `json:"address,omitempty"`
	DDCSessionID string   `json:"ddc_session_id,omitempty"`
}

// Clone returns a deep copy so a continuation never shares state with the
// payment data the guard later masks.
func (d PaymentData) Clone() PaymentData {
	out := d
	if d.Address != nil {
		addr := *d.Address
		out.Address = &addr
	}
	return out
}

// Redacted keeps what can sit in a store once the gateway has the order: the
// card number cut to its last four digits and the DDC reference.
func (d PaymentData) Redacted() PaymentData {
	return PaymentData{CardNumber: MaskCardNumber(d.CardNumber), DDCSessionID: d.DDCSessionID}
}

// MaskCardNumber replaces every digit but the last four with '*'.
func MaskCardNumber(pan string) string {
	if len(pan) <= 4 {
		return pan
	}
	return strings.Repeat("*", len(pan)-4) + pan[len(pan)-4:]
}

// PaymentSource is a saved card on file.
type PaymentSource struct {
	ID    string `json:"id"`
	Token string `json:"token"`
}

// Shopper identifies the customer and the browser they are paying from.
type Shopper struct {
	Email        string `json:"email"`
	ID           string `json:"id"`
	IPAddress    string `json:"ip_address,omitempty"`
	AcceptHeader string `json:"accept_header,omitempty"`
	UserAgent    string `json:"user_agent,omitempty"`
}

// OrderContext carries the per-attempt order details that are not part of
// the continuation snapshot.
type OrderContext struct {
	// OrderCode must be unique per attempt. Generated when empty.
	OrderCode   string  `json:"order_code"`
	Description string  `json:"description"`
	Exponent    int     `json:"exponent" validate:"gte=0,lte=4"`
	Shopper     Shopper `json:"shopper"`
	SessionID   string  `json:"session_id"`
	// ReturnURL receives the browser POST after an SCA challenge.
	ReturnURL string `json:"return_url,omitempty"`
}

// ChargeRequest is the full input to a charge attempt.
type ChargeRequest struct {
	InvoiceID       string         `json:"invoice_id" validate:"required"`
	PaymentID       string         `json:"payment_id" validate:"required"`
	Amount          int64          `json:"amount" validate:"gt=0"`
	CurrencyCode    string         `json:"currency_code" validate:"required,currency"`
	CustomerPresent bool           `json:"customer_present"`
	Source          *PaymentSource `json:"source,omitempty"`
	PaymentData     PaymentData    `json:"payment_data"`
	Order           OrderContext   `json:"order"`
}

// SourceID returns the saved source id, or "" for inline payment data.
func (r ChargeRequest) SourceID() string {
	if r.Source == nil {
		return ""
	}
	return r.Source.ID
}
