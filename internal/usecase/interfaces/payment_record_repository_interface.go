package interfaces

import (
	"context"

	"github.com/nails/driver-invoice-worldpay/internal/domain/entities"
)

// IPaymentRecordRepository abstracts persistence of payment attempts.
//
// The driver must be able to:
//   - record the outcome of an attempt without touching its payment data
//   - overwrite payment data once the CVC has been masked
type IPaymentRecordRepository interface {
	RecordOutcome(ctx context.Context, rec entities.PaymentRecord) error
	UpdatePaymentData(ctx context.Context, paymentID string, data entities.PaymentData) error
	GetByID(ctx context.Context, paymentID string) (entities.PaymentRecord, error)
	ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.PaymentRecord, error)
}
