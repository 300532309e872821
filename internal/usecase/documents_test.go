package usecase

import (
	"strings"
	"testing"

	"github.com/nails/driver-invoice-worldpay/internal/domain/entities"
	"github.com/nails/driver-invoice-worldpay/internal/xmldoc"
)

func TestOverrideNodes_FixedOrder(t *testing.T) {
	addr := &entities.Address{Line1: "1 High St", City: "London", PostalCode: "N1", CountryCode: "GB"}
	full := []string{"expiryDate", "cardHolderName", "cvc", "cardAddress"}

	// every subset of the four overrides
	for mask := 0; mask < 16; mask++ {
		var o entities.CardOverrides
		var want []string
		if mask&1 != 0 {
			o.ExpiryMonth, o.ExpiryYear = "12", "2030"
		}
		if mask&2 != 0 {
			o.HolderName = "Ada Lovelace"
		}
		if mask&4 != 0 {
			o.CVC = "123"
		}
		if mask&8 != 0 {
			o.Address = addr
		}
		for i, name := range full {
			if mask&(1<<i) != 0 {
				want = append(want, name)
			}
		}

		got := make([]string, 0)
		for _, n := range overrideNodes(o) {
			got = append(got, n.Name)
		}
		if !equalNames(got, want) {
			t.Fatalf("mask=%04b: expected %v, got %v", mask, want, got)
		}
	}
}

func TestChargeDocument_Token(t *testing.T) {
	req := tokenChargeRequest()
	req.PaymentData.HolderName = "Ada"
	req.PaymentData.ExpiryMonth, req.PaymentData.ExpiryYear = "01", "2031"
	cred, err := entities.ResolveCardCredential(req.Source, req.PaymentData)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	doc := chargeDocument(req, cred)

	root := doc.Element("paymentService")
	if root.Attr("version") != "1.4" {
		t.Fatalf("expected version 1.4, got %q", root.Attr("version"))
	}
	order := mustFind(t, doc, "paymentService.submit.order")
	if order.Attr("orderCode") != "order-1" {
		t.Fatalf("unexpected order code %q", order.Attr("orderCode"))
	}
	if got := childNames(order); !equalNames(got, []string{"description", "amount", "paymentDetails", "shopper"}) {
		t.Fatalf("unexpected order children %v", got)
	}
	amount := order.Child("amount")
	if amount.Attr("value") != "1000" || amount.Attr("currencyCode") != "GBP" || amount.Attr("exponent") != "2" {
		t.Fatalf("unexpected amount attrs %v", amount.Attrs)
	}

	token := mustFind(t, doc, "paymentService.submit.order.paymentDetails.TOKEN-SSL")
	if token.Attr("tokenScope") != "shopper" {
		t.Fatalf("expected shopper scope, got %q", token.Attr("tokenScope"))
	}
	if got := childNames(token); !equalNames(got, []string{"paymentTokenID", "paymentInstrument"}) {
		t.Fatalf("unexpected token children %v", got)
	}
	card := mustFind(t, doc, "paymentService.submit.order.paymentDetails.TOKEN-SSL.paymentInstrument.cardDetails")
	if got := childNames(card); !equalNames(got, []string{"expiryDate", "cardHolderName", "cvc"}) {
		t.Fatalf("unexpected card details %v", got)
	}
	session := mustFind(t, doc, "paymentService.submit.order.paymentDetails.session")
	if session.Attr("id") != "sess-1" || session.Attr("shopperIPAddress") != "10.0.0.1" {
		t.Fatalf("unexpected session attrs %v", session.Attrs)
	}
	shopper := mustFind(t, doc, "paymentService.submit.order.shopper")
	if got := childNames(shopper); !equalNames(got, []string{"shopperEmailAddress", "authenticatedShopperID"}) {
		t.Fatalf("unexpected shopper children %v", got)
	}

	wire, err := doc.Marshal()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(wire), "<!DOCTYPE paymentService PUBLIC") {
		t.Fatalf("expected doctype in %s", wire)
	}
}

func TestChargeDocument_RawCard(t *testing.T) {
	req := tokenChargeRequest()
	req.Source = nil
	req.PaymentData = entities.PaymentData{CardNumber: "4444333322221111", CVC: "999", ExpiryMonth: "02", ExpiryYear: "2032"}
	cred, err := entities.ResolveCardCredential(req.Source, req.PaymentData)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	doc := chargeDocument(req, cred)
	card := mustFind(t, doc, "paymentService.submit.order.paymentDetails.CARD-SSL")
	if got := childNames(card); !equalNames(got, []string{"cardNumber", "expiryDate", "cvc"}) {
		t.Fatalf("unexpected CARD-SSL children %v", got)
	}
	if _, ok := xmldoc.TryFind(doc, "paymentService.submit.order.paymentDetails.TOKEN-SSL"); ok {
		t.Fatalf("raw card must not produce TOKEN-SSL")
	}
}

func TestThreeDSChargeDocument(t *testing.T) {
	req := tokenChargeRequest()
	req.PaymentData.DDCSessionID = "ddc-1"
	cred, _ := entities.ResolveCardCredential(req.Source, req.PaymentData)
	doc := threeDSChargeDocument(req, cred, "390x400", "noPreference")

	order := mustFind(t, doc, "paymentService.submit.order")
	last := order.Children[len(order.Children)-1]
	if last.Name != "additional3DSData" {
		t.Fatalf("expected additional3DSData last, got %s", last.Name)
	}
	if last.Attr("dfReferenceId") != "ddc-1" || last.Attr("challengeWindowSize") != "390x400" || last.Attr("challengePreference") != "noPreference" {
		t.Fatalf("unexpected 3DS attrs %v", last.Attrs)
	}
}

func TestCompletedAuthenticationDocument(t *testing.T) {
	doc := completedAuthenticationDocument("order-1", "sess-1")
	order := mustFind(t, doc, "paymentService.submit.order")
	if got := childNames(order); !equalNames(got, []string{"info3DSecure", "session"}) {
		t.Fatalf("unexpected children %v", got)
	}
	mustFind(t, doc, "paymentService.submit.order.info3DSecure.completedAuthentication")
	if order.Child("session").Attr("id") != "sess-1" {
		t.Fatalf("expected session id")
	}
}

func TestRefundDocument(t *testing.T) {
	doc := refundDocument(entities.RefundRequest{OrderCode: "order-1", Amount: 500, CurrencyCode: "GBP", Exponent: 2, Reference: "ref-1"})
	refund := mustFind(t, doc, "paymentService.modify.orderModification.refund")
	if refund.Attr("reference") != "ref-1" {
		t.Fatalf("unexpected reference %q", refund.Attr("reference"))
	}
	if refund.Child("amount").Attr("value") != "500" {
		t.Fatalf("unexpected amount %v", refund.Child("amount").Attrs)
	}
}

func TestTokenDeleteDocument(t *testing.T) {
	doc := tokenDeleteDocument("tok-1", "shopper-1", "evt-1", "gone")
	del := mustFind(t, doc, "paymentService.modify.paymentTokenDelete")
	if del.Attr("tokenScope") != "shopper" {
		t.Fatalf("expected shopper scope")
	}
	want := []string{"paymentTokenID", "authenticatedShopperID", "tokenEventReference", "tokenReason"}
	if got := childNames(del); !equalNames(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
