package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/nails/driver-invoice-worldpay/internal/domain/entities"
	mock_interfaces "github.com/nails/driver-invoice-worldpay/internal/usecase/interfaces/mocks"
	"github.com/nails/driver-invoice-worldpay/internal/xmldoc"

	"go.uber.org/mock/gomock"
)

func refundRequest(amount int64) entities.RefundRequest {
	return entities.RefundRequest{OrderCode: "order-1", Amount: amount, CurrencyCode: "GBP", Exponent: 2, Reference: "ref-1"}
}

func refundableReply(t *testing.T, value string) *xmldoc.Document {
	return replyDoc(t, `<refundableAmount><amount value="`+value+`" currencyCode="GBP" exponent="2"/></refundableAmount>`)
}

func TestRefundUseCase_Refund(t *testing.T) {
	t.Run("refunds after both checks pass", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewRefundUseCase(gateway)

		status := replyWithCookie(t, `<orderStatus orderCode="order-1"><payment><lastEvent>CAPTURED</lastEvent></payment></orderStatus>`, "machine=m1")
		gomock.InOrder(
			gateway.EXPECT().Send(gomock.Any(), gomock.Any(), "GBP", false, "").Return(status, nil),
			gateway.EXPECT().Send(gomock.Any(), gomock.Any(), "GBP", false, "machine=m1").Return(refundableReply(t, "4000"), nil),
			gateway.EXPECT().Send(gomock.Any(), gomock.Any(), "GBP", false, "machine=m1").
				DoAndReturn(func(_ context.Context, doc *xmldoc.Document, _ string, _ bool, _ string) (*xmldoc.Document, error) {
					mustFind(t, doc, "paymentService.modify.orderModification.refund")
					return replyDoc(t, `<ok><refundReceived orderCode="order-1"/></ok>`), nil
				}),
		)

		out, err := uc.Refund(context.Background(), refundRequest(4000))
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !out.IsComplete() || out.TransactionID != "ref-1" {
			t.Fatalf("expected complete with ref-1, got %+v", out)
		}
	})

	t.Run("status not refundable stops before the amount inquiry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewRefundUseCase(gateway)

		gateway.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(lastEventReply(t, "order-1", "AUTHORISED"), nil).Times(1)

		out, err := uc.Refund(context.Background(), refundRequest(100))
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if out.Status != entities.OutcomeFailed || out.RawCode != "AUTHORISED" {
			t.Fatalf("expected failed not refundable, got %+v", out)
		}
	})

	t.Run("amount above refundable never submits", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewRefundUseCase(gateway)

		gomock.InOrder(
			gateway.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return(lastEventReply(t, "order-1", "SETTLED"), nil),
			gateway.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return(refundableReply(t, "4000"), nil),
		)

		out, err := uc.Refund(context.Background(), refundRequest(5000))
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		want := "The refund of GBP 50.00 exceeds the refundable amount of GBP 40.00."
		if out.Status != entities.OutcomeFailed || out.Message != want {
			t.Fatalf("expected %q, got %+v", want, out)
		}
	})

	t.Run("missing acknowledgement fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewRefundUseCase(gateway)

		gomock.InOrder(
			gateway.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return(lastEventReply(t, "order-1", "CAPTURED"), nil),
			gateway.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return(refundableReply(t, "4000"), nil),
			gateway.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return(replyDoc(t, `<ok/>`), nil),
		)

		out, err := uc.Refund(context.Background(), refundRequest(1000))
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if out.Status != entities.OutcomeFailed || out.Message != entities.MessageRefundFailed {
			t.Fatalf("expected refund failed, got %+v", out)
		}
	})

	t.Run("gateway error short-circuits", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewRefundUseCase(gateway)

		gateway.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, &entities.TransportError{StatusCode: 503})

		out, err := uc.Refund(context.Background(), refundRequest(1000))
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if out.Status != entities.OutcomeFailed || out.Message != entities.MessageTransport || out.RawCode != "http_503" {
			t.Fatalf("expected transport failure, got %+v", out)
		}
	})

	t.Run("invalid request", func(t *testing.T) {
		uc := NewRefundUseCase(nil)
		_, err := uc.Refund(context.Background(), entities.RefundRequest{CurrencyCode: "GBP", Amount: 1})
		if !errors.Is(err, entities.ErrInvalidRequest) {
			t.Fatalf("expected ErrInvalidRequest, got %v", err)
		}
	})
}

func TestRefundUseCase_OrderStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	uc := NewRefundUseCase(gateway)

	gateway.EXPECT().Send(gomock.Any(), gomock.Any(), "EUR", true, "").Return(lastEventReply(t, "order-1", "SETTLED"), nil)

	status, err := uc.OrderStatus(context.Background(), "order-1", "EUR", true)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if status != "SETTLED" {
		t.Fatalf("expected SETTLED, got %q", status)
	}
}
