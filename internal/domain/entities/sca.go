package entities

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	canonicaljson "github.com/gibson042/canonicaljson-go"
)

var ErrContinuationTampered = errors.New("sca continuation does not match its recorded digest")

// ScaContinuation is the snapshot taken when a charge has to go through the
// SCA flow. It is persisted by the caller between the two phases.
type ScaContinuation struct {
	InvoiceID       string      `json:"invoice_id"`
	CurrencyCode    string      `json:"currency_code"`
	Amount          int64       `json:"amount"`
	SourceID        string      `json:"source_id,omitempty"`
	PaymentID       string      `json:"payment_id"`
	PaymentData     PaymentData `json:"payment_data"`
	CustomerPresent bool        `json:"customer_present"`
}

// NewScaContinuation snapshots a charge request. Payment data is copied.
func NewScaContinuation(req ChargeRequest) ScaContinuation {
	return ScaContinuation{
		InvoiceID:       req.InvoiceID,
		CurrencyCode:    req.CurrencyCode,
		Amount:          req.Amount,
		SourceID:        req.SourceID(),
		PaymentID:       req.PaymentID,
		PaymentData:     req.PaymentData.Clone(),
		CustomerPresent: req.CustomerPresent,
	}
}

// Marshal returns the stored form of the continuation.
func (c ScaContinuation) Marshal() ([]byte, error) {
	return json.Marshal(c)
}

// UnmarshalScaContinuation reverses Marshal.
func UnmarshalScaContinuation(b []byte) (ScaContinuation, error) {
	var c ScaContinuation
	if err := json.Unmarshal(b, &c); err != nil {
		return ScaContinuation{}, fmt.Errorf("decode sca continuation: %w", err)
	}
	return c, nil
}

// Digest is a SHA-256 over the canonical JSON form, independent of field
// order or whitespace in whatever store held the continuation.
func (c ScaContinuation) Digest() (string, error) {
	b, err := canonicaljson.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("canonicalize sca continuation: %w", err)
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:]), nil
}

// Verify checks the continuation against a digest recorded earlier.
func (c ScaContinuation) Verify(digest string) error {
	got, err := c.Digest()
	if err != nil {
		return err
	}
	if got != digest {
		return ErrContinuationTampered
	}
	return nil
}

// ChargeRequest rebuilds the charge a continuation was taken from.
func (c ScaContinuation) ChargeRequest(source *PaymentSource, order OrderContext) ChargeRequest {
	return ChargeRequest{
		InvoiceID:       c.InvoiceID,
		PaymentID:       c.PaymentID,
		Amount:          c.Amount,
		CurrencyCode:    c.CurrencyCode,
		CustomerPresent: c.CustomerPresent,
		Source:          source,
		PaymentData:     c.PaymentData,
		Order:           order,
	}
}

// ScaSession is what the service stores across the browser redirect.
//
// Storage model:
//   - PK: id
//   - expires_at drives store-side expiry (DynamoDB TTL / Redis key TTL)
type ScaSession struct {
	ID           string          `json:"id"`
	Continuation ScaContinuation `json:"continuation"`
	Digest       string          `json:"digest"`
	// SealedPaymentData holds the encrypted payment data until phase 1 runs;
	// Continuation.PaymentData is stored empty meanwhile.
	SealedPaymentData string         `json:"sealed_payment_data,omitempty"`
	Source            *PaymentSource `json:"source,omitempty"`
	Order             OrderContext   `json:"order"`
	// Initiated is set when phase 1 claims the session, before the gateway
	// is contacted. Only initiated sessions can complete phase 2.
	Initiated bool      `json:"initiated"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// RedirectChallenge tells the caller where to send the shopper's browser.
// Fields is posted as form data.
type RedirectChallenge struct {
	URL    string            `json:"url"`
	Fields map[string]string `json:"fields"`
}

// ScaReturn is what the browser posts back after the challenge.
type ScaReturn struct {
	OrderCode       string
	SessionID       string
	CurrencyCode    string
	CustomerPresent bool
	TransactionID   string
	ResponseCode    string
	MD              string
}

// DeviceDataCollection describes the hidden form the caller posts from its
// device data collection iframe.
type DeviceDataCollection struct {
	URL string `json:"url"`
	JWT string `json:"jwt"`
	BIN string `json:"bin,omitempty"`
}

// ChallengeDetails are lifted from the gateway's challengeRequired node.
type ChallengeDetails struct {
	ACSURL        string
	Payload       string
	TransactionID string
	Version       string
}
