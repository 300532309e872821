package response

import (
	"time"

	"github.com/nails/driver-invoice-worldpay/internal/domain/entities"
)

type PaymentRecordResponse struct {
	PaymentID     string    `json:"payment_id"`
	InvoiceID     string    `json:"invoice_id"`
	OrderCode     string    `json:"order_code,omitempty"`
	Status        string    `json:"status"`
	TransactionID string    `json:"transaction_id,omitempty"`
	Amount        int64     `json:"amount"`
	CurrencyCode  string    `json:"currency_code"`
	CardLast4     string    `json:"card_last4,omitempty"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromPaymentRecord(p entities.PaymentRecord) PaymentRecordResponse {
	res := PaymentRecordResponse{
		PaymentID:     p.ID,
		InvoiceID:     p.InvoiceID,
		OrderCode:     p.OrderCode,
		Status:        string(p.Status),
		TransactionID: p.TransactionID,
		Amount:        p.Amount,
		CurrencyCode:  p.CurrencyCode,
		UpdatedAt:     p.UpdatedAt,
	}
	if n := len(p.PaymentData.CardNumber); n >= 4 {
		res.CardLast4 = p.PaymentData.CardNumber[n-4:]
	}
	return res
}

func FromPaymentRecords(records []entities.PaymentRecord) []PaymentRecordResponse {
	out := make([]PaymentRecordResponse, 0, len(records))
	for _, p := range records {
		out = append(out, FromPaymentRecord(p))
	}
	return out
}
