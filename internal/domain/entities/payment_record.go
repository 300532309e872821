package entities

import "time"

// PaymentRecord is the stored view of one payment attempt. It is what the
// sensitive data guard writes masked payment data into.
//
// Storage model (DynamoDB):
//   - PK: id (payment id)
//   - GSI1 (invoice_id-index): invoice_id
type PaymentRecord struct {
	ID            string        `json:"id"`
	InvoiceID     string        `json:"invoice_id"`
	OrderCode     string        `json:"order_code,omitempty"`
	Status        OutcomeStatus `json:"status,omitempty"`
	TransactionID string        `json:"transaction_id,omitempty"`
	Amount        int64         `json:"amount"`
	CurrencyCode  string        `json:"currency_code"`
	PaymentData   PaymentData   `json:"payment_data"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
