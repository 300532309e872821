package usecase

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nails/driver-invoice-worldpay/internal/domain/entities"
	"github.com/nails/driver-invoice-worldpay/internal/usecase/interfaces"
	"github.com/nails/driver-invoice-worldpay/internal/xmldoc"
)

// Refund failure messages.
const (
	MessageNotRefundableFmt = "This payment cannot be refunded while its status is %s."
	MessageRefundExceedsFmt = "The refund of %s exceeds the refundable amount of %s."
)

// IRefundUseCase refunds captured orders and exposes their status.
type IRefundUseCase interface {
	Refund(ctx context.Context, req entities.RefundRequest) (entities.Outcome, error)
	OrderStatus(ctx context.Context, orderCode, currencyCode string, customerPresent bool) (string, error)
}

type RefundUseCase struct {
	gateway interfaces.IPaymentGateway
}

var _ IRefundUseCase = (*RefundUseCase)(nil)

func NewRefundUseCase(gateway interfaces.IPaymentGateway) *RefundUseCase {
	return &RefundUseCase{gateway: gateway}
}

// Refund runs three gated calls: order status, refundable amount, then the
// refund itself. Each step only runs when the previous one allows it.
func (u *RefundUseCase) Refund(ctx context.Context, req entities.RefundRequest) (entities.Outcome, error) {
	log.Printf("[worldpay][refund] start order_code=%s amount=%d currency=%s", req.OrderCode, req.Amount, req.CurrencyCode)
	if err := req.Validate(); err != nil {
		return entities.Outcome{}, err
	}
	if u.gateway == nil {
		return entities.Outcome{}, ErrGatewayNotConfigured
	}
	if req.Reference == "" {
		req.Reference = uuid.NewString()
	}

	status, cookie, err := u.lastEvent(ctx, req.OrderCode, req.CurrencyCode, req.CustomerPresent)
	if err != nil {
		return failure(err)
	}
	if !entities.IsRefundable(status) {
		log.Printf("[worldpay][refund] not refundable order_code=%s last_event=%s", req.OrderCode, status)
		return entities.Outcome{
			Status:     entities.OutcomeFailed,
			Message:    fmt.Sprintf(MessageNotRefundableFmt, status),
			RawCode:    status,
			RawMessage: "order status not refundable",
		}, nil
	}

	reply, err := u.gateway.Send(ctx, refundableAmountInquiryDocument(req.OrderCode), req.CurrencyCode, req.CustomerPresent, cookie)
	if err != nil {
		return failure(err)
	}
	cookie = affinity(reply, cookie)
	amountNode, err := xmldoc.Find(reply, pathRefundableAmount)
	if err != nil {
		return failure(structural(err))
	}
	refundable, err := strconv.ParseInt(strings.TrimSpace(amountNode.Attr("value")), 10, 64)
	if err != nil {
		return failure(&entities.StructuralError{Path: pathRefundableAmount + "[value]", Err: err})
	}
	if req.Amount > refundable {
		log.Printf("[worldpay][refund] amount exceeds refundable order_code=%s requested=%d refundable=%d", req.OrderCode, req.Amount, refundable)
		return entities.Outcome{
			Status:     entities.OutcomeFailed,
			Message:    fmt.Sprintf(MessageRefundExceedsFmt, formatMinor(req.Amount, req.CurrencyCode, req.Exponent), formatMinor(refundable, req.CurrencyCode, req.Exponent)),
			RawMessage: fmt.Sprintf("requested=%d refundable=%d", req.Amount, refundable),
		}, nil
	}

	reply, err = u.gateway.Send(ctx, refundDocument(req), req.CurrencyCode, req.CustomerPresent, cookie)
	if err != nil {
		return failure(err)
	}
	if _, ok := xmldoc.TryFind(reply, pathRefundReceived); !ok {
		log.Printf("[worldpay][refund] no acknowledgement order_code=%s reference=%s", req.OrderCode, req.Reference)
		return entities.Outcome{
			Status:     entities.OutcomeFailed,
			Message:    entities.MessageRefundFailed,
			RawMessage: "refundReceived missing",
		}, nil
	}
	log.Printf("[worldpay][refund] received order_code=%s reference=%s", req.OrderCode, req.Reference)
	return entities.Outcome{Status: entities.OutcomeComplete, TransactionID: req.Reference}, nil
}

// OrderStatus returns the order's lastEvent.
func (u *RefundUseCase) OrderStatus(ctx context.Context, orderCode, currencyCode string, customerPresent bool) (string, error) {
	if strings.TrimSpace(orderCode) == "" {
		return "", fmt.Errorf("%w: order_code is required", entities.ErrInvalidRequest)
	}
	if u.gateway == nil {
		return "", ErrGatewayNotConfigured
	}
	status, _, err := u.lastEvent(ctx, orderCode, currencyCode, customerPresent)
	return status, err
}

func (u *RefundUseCase) lastEvent(ctx context.Context, orderCode, currencyCode string, customerPresent bool) (string, string, error) {
	reply, err := u.gateway.Send(ctx, orderInquiryDocument(orderCode), currencyCode, customerPresent, "")
	if err != nil {
		return "", "", err
	}
	node, err := xmldoc.Find(reply, pathLastEvent)
	if err != nil {
		return "", "", structural(err)
	}
	return strings.TrimSpace(node.Text), reply.Attr(interfaces.MachineCookieAttr), nil
}

// affinity keeps the newest machine cookie seen for the order.
func affinity(reply *xmldoc.Document, current string) string {
	if c := reply.Attr(interfaces.MachineCookieAttr); c != "" {
		return c
	}
	return current
}

// formatMinor renders a minor-unit amount at the currency exponent, e.g.
// 5000 GBP at exponent 2 is "GBP 50.00".
func formatMinor(minor int64, currencyCode string, exponent int) string {
	return strings.ToUpper(currencyCode) + " " + decimal.New(minor, -int32(exponent)).StringFixed(int32(exponent))
}
