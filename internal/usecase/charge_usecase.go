package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/nails/driver-invoice-worldpay/internal/domain/entities"
	"github.com/nails/driver-invoice-worldpay/internal/usecase/interfaces"
)

var ErrGatewayNotConfigured = errors.New("payment gateway not configured")

// IChargeUseCase charges an invoice, either directly or by handing the caller
// an SCA continuation when device data collection has run.
type IChargeUseCase interface {
	Charge(ctx context.Context, req *entities.ChargeRequest) (entities.Outcome, error)
}

type ChargeUseCase struct {
	gateway interfaces.IPaymentGateway
	guard   ISensitiveDataGuard
	records interfaces.IPaymentRecordRepository
}

var _ IChargeUseCase = (*ChargeUseCase)(nil)

func NewChargeUseCase(gateway interfaces.IPaymentGateway, guard ISensitiveDataGuard, records interfaces.IPaymentRecordRepository) *ChargeUseCase {
	if guard == nil {
		guard = NewSensitiveDataGuard(records)
	}
	return &ChargeUseCase{gateway: gateway, guard: guard, records: records}
}

// Charge returns a Failed outcome for gateway, transport and structural
// errors. Only invalid input and configuration errors come back as errors.
// The CVC in req.PaymentData is masked in place before Charge returns, and a
// generated order code is written back to req.Order.
func (u *ChargeUseCase) Charge(ctx context.Context, req *entities.ChargeRequest) (entities.Outcome, error) {
	if req == nil {
		return entities.Outcome{}, entities.ErrInvalidRequest
	}
	log.Printf("[worldpay][charge] start invoice_id=%s payment_id=%s currency=%s amount=%d customer_present=%t",
		req.InvoiceID, req.PaymentID, req.CurrencyCode, req.Amount, req.CustomerPresent)
	if err := req.Validate(); err != nil {
		log.Printf("[worldpay][charge] invalid request payment_id=%s err=%v", req.PaymentID, err)
		return entities.Outcome{}, err
	}

	var (
		out entities.Outcome
		err error
	)
	if req.PaymentData.DDCSessionID != "" {
		cont := entities.NewScaContinuation(*req)
		out = entities.Outcome{Status: entities.OutcomeSca, Continuation: &cont}
		log.Printf("[worldpay][charge] device data collected; deferring to sca payment_id=%s", req.PaymentID)
	} else {
		out, err = u.direct(ctx, req)
	}

	obfuscate(ctx, u.guard, req.PaymentID, &req.PaymentData)
	if err != nil {
		return entities.Outcome{}, err
	}

	recordOutcome(ctx, u.records, entities.PaymentRecord{
		ID:            req.PaymentID,
		InvoiceID:     req.InvoiceID,
		OrderCode:     req.Order.OrderCode,
		Status:        out.Status,
		TransactionID: out.TransactionID,
		Amount:        req.Amount,
		CurrencyCode:  req.CurrencyCode,
	})
	log.Printf("[worldpay][charge] done payment_id=%s status=%s raw_code=%s", req.PaymentID, out.Status, out.RawCode)
	return out, nil
}

func (u *ChargeUseCase) direct(ctx context.Context, req *entities.ChargeRequest) (entities.Outcome, error) {
	if u.gateway == nil {
		return entities.Outcome{}, ErrGatewayNotConfigured
	}
	cred, err := entities.ResolveCardCredential(req.Source, req.PaymentData)
	if err != nil {
		log.Printf("[worldpay][charge] no card credential payment_id=%s", req.PaymentID)
		return failure(err)
	}
	ensureOrderCode(&req.Order)

	reply, err := u.gateway.Send(ctx, chargeDocument(*req, cred), req.CurrencyCode, req.CustomerPresent, "")
	if err != nil {
		log.Printf("[worldpay][charge] send failed order_code=%s err=%v", req.Order.OrderCode, err)
		return failure(err)
	}
	return interpretLastEvent(reply, req.Order.OrderCode), nil
}

func ensureOrderCode(order *entities.OrderContext) {
	if order.OrderCode == "" {
		order.OrderCode = uuid.NewString()
	}
}

// obfuscate runs the guard. A persistence failure does not change the
// outcome of a payment that already reached the gateway.
func obfuscate(ctx context.Context, guard ISensitiveDataGuard, paymentID string, data *entities.PaymentData) {
	if err := guard.Obfuscate(ctx, paymentID, data); err != nil {
		log.Printf("[worldpay][guard] obfuscate failed payment_id=%s err=%v", paymentID, err)
	}
}

func recordOutcome(ctx context.Context, records interfaces.IPaymentRecordRepository, rec entities.PaymentRecord) {
	if records == nil || rec.ID == "" {
		return
	}
	rec.UpdatedAt = time.Now().UTC()
	if err := records.RecordOutcome(ctx, rec); err != nil {
		log.Printf("[worldpay][store] record outcome failed payment_id=%s err=%v", rec.ID, err)
	}
}
