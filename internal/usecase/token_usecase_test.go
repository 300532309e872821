package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nails/driver-invoice-worldpay/internal/domain/entities"
	mock_interfaces "github.com/nails/driver-invoice-worldpay/internal/usecase/interfaces/mocks"
	"github.com/nails/driver-invoice-worldpay/internal/xmldoc"

	"go.uber.org/mock/gomock"
)

const tokensReplyBody = `<token><authenticatedShopperID>shopper-1</authenticatedShopperID><tokenDetails tokenEvent="NEW">` +
	`<paymentTokenID>tok-1</paymentTokenID><paymentTokenExpiry><date dayOfMonth="31" month="12" year="2030" hour="23" minute="59" second="58"/></paymentTokenExpiry>` +
	`</tokenDetails></token>` +
	`<token><tokenDetails><paymentTokenID>tok-2</paymentTokenID><paymentTokenExpiry><date dayOfMonth="1" month="6" year="2028"/></paymentTokenExpiry></tokenDetails></token>`

func TestTokenUseCase_ListTokens(t *testing.T) {
	owner := entities.TokenOwner{ShopperID: "shopper-1", CurrencyCode: "GBP"}

	t.Run("parses ids and expiry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewTokenUseCase(gateway)

		gateway.EXPECT().Send(gomock.Any(), gomock.Any(), "GBP", false, "").
			DoAndReturn(func(_ context.Context, doc *xmldoc.Document, _ string, _ bool, _ string) (*xmldoc.Document, error) {
				id := mustFind(t, doc, "paymentService.inquiry.shopperTokenRetrieval.authenticatedShopperID")
				if id.Text != "shopper-1" {
					t.Fatalf("unexpected shopper id %q", id.Text)
				}
				return replyDoc(t, tokensReplyBody), nil
			})

		tokens, err := uc.ListTokens(context.Background(), owner)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(tokens) != 2 {
			t.Fatalf("expected 2 tokens, got %d", len(tokens))
		}
		if tokens[0].ID != "tok-1" || !tokens[0].Expiry.Equal(time.Date(2030, 12, 31, 23, 59, 58, 0, time.UTC)) {
			t.Fatalf("unexpected first token %+v", tokens[0])
		}
		if tokens[1].ID != "tok-2" || !tokens[1].Expiry.Equal(time.Date(2028, 6, 1, 0, 0, 0, 0, time.UTC)) {
			t.Fatalf("unexpected second token %+v", tokens[1])
		}
	})

	t.Run("empty reply", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewTokenUseCase(gateway)

		gateway.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(replyDoc(t, ""), nil)

		tokens, err := uc.ListTokens(context.Background(), owner)
		if err != nil || len(tokens) != 0 {
			t.Fatalf("expected no tokens, got %v %v", tokens, err)
		}
	})

	t.Run("token without expiry is structural", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewTokenUseCase(gateway)

		gateway.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(replyDoc(t, `<token><tokenDetails><paymentTokenID>x</paymentTokenID></tokenDetails></token>`), nil)

		_, err := uc.ListTokens(context.Background(), owner)
		var stErr *entities.StructuralError
		if !errors.As(err, &stErr) {
			t.Fatalf("expected structural error, got %v", err)
		}
	})

	t.Run("empty shopper", func(t *testing.T) {
		uc := NewTokenUseCase(nil)
		_, err := uc.ListTokens(context.Background(), entities.TokenOwner{})
		if !errors.Is(err, ErrInvalidShopperID) {
			t.Fatalf("expected ErrInvalidShopperID, got %v", err)
		}
	})
}

func TestTokenUseCase_DeleteToken(t *testing.T) {
	owner := entities.TokenOwner{ShopperID: "shopper-1", CurrencyCode: "GBP"}

	t.Run("sends delete with default reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewTokenUseCase(gateway)

		gateway.EXPECT().Send(gomock.Any(), gomock.Any(), "GBP", false, "").
			DoAndReturn(func(_ context.Context, doc *xmldoc.Document, _ string, _ bool, _ string) (*xmldoc.Document, error) {
				del := mustFind(t, doc, "paymentService.modify.paymentTokenDelete")
				if del.Child("paymentTokenID").Text != "tok-1" || del.Child("tokenReason").Text != DefaultTokenDeleteReason {
					t.Fatalf("unexpected delete document")
				}
				if del.Child("tokenEventReference").Text == "" {
					t.Fatalf("expected event reference")
				}
				return replyDoc(t, `<ok><deleteTokenReceived paymentTokenID="tok-1"/></ok>`), nil
			})

		if err := uc.DeleteToken(context.Background(), "tok-1", owner, ""); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})

	t.Run("gateway error is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewTokenUseCase(gateway)

		gwErr := &entities.GatewayError{Code: 5, Message: "Token not found", Category: entities.ErrorCategoryValidation}
		gateway.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, gwErr)

		err := uc.DeleteToken(context.Background(), "tok-1", owner, "gone")
		if !errors.Is(err, gwErr) {
			t.Fatalf("expected gateway error, got %v", err)
		}
	})

	t.Run("empty token id", func(t *testing.T) {
		uc := NewTokenUseCase(nil)
		if err := uc.DeleteToken(context.Background(), "", owner, ""); !errors.Is(err, ErrInvalidTokenID) {
			t.Fatalf("expected ErrInvalidTokenID, got %v", err)
		}
	})
}
