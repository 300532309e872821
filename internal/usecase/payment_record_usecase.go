package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"

	"github.com/nails/driver-invoice-worldpay/internal/domain/entities"
	"github.com/nails/driver-invoice-worldpay/internal/usecase/interfaces"
)

var (
	ErrPaymentRecordNotFound     = errors.New("payment record not found")
	ErrInvalidPaymentID          = errors.New("invalid payment_id")
	ErrInvalidInvoiceID          = errors.New("invalid invoice_id")
	ErrPaymentStoreNotConfigured = errors.New("payment record store not configured")
)

// IPaymentRecordUseCase reads back what the charge and SCA flows recorded.
type IPaymentRecordUseCase interface {
	GetByID(ctx context.Context, paymentID string) (entities.PaymentRecord, error)
	// ListByInvoiceID returns the attempts for an invoice, newest first.
	ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.PaymentRecord, error)
}

type PaymentRecordUseCase struct {
	repo interfaces.IPaymentRecordRepository
}

var _ IPaymentRecordUseCase = (*PaymentRecordUseCase)(nil)

func NewPaymentRecordUseCase(repo interfaces.IPaymentRecordRepository) *PaymentRecordUseCase {
	return &PaymentRecordUseCase{repo: repo}
}

func (u *PaymentRecordUseCase) GetByID(ctx context.Context, paymentID string) (entities.PaymentRecord, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return entities.PaymentRecord{}, ErrInvalidPaymentID
	}
	if u.repo == nil {
		return entities.PaymentRecord{}, ErrPaymentStoreNotConfigured
	}

	rec, err := u.repo.GetByID(ctx, paymentID)
	if err != nil {
		log.Printf("[worldpay][store] get failed payment_id=%s err=%v", paymentID, err)
		return entities.PaymentRecord{}, err
	}
	if rec.ID == "" {
		return entities.PaymentRecord{}, ErrPaymentRecordNotFound
	}
	return rec, nil
}

func (u *PaymentRecordUseCase) ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.PaymentRecord, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return nil, ErrInvalidInvoiceID
	}
	if u.repo == nil {
		return nil, ErrPaymentStoreNotConfigured
	}

	records, err := u.repo.ListByInvoiceID(ctx, invoiceID)
	if err != nil {
		log.Printf("[worldpay][store] list failed invoice_id=%s err=%v", invoiceID, err)
		return nil, err
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].UpdatedAt.After(records[j].UpdatedAt)
	})
	return records, nil
}
