package usecase

import (
	"testing"

	"github.com/nails/driver-invoice-worldpay/internal/domain/entities"
	"github.com/nails/driver-invoice-worldpay/internal/usecase/interfaces"
	"github.com/nails/driver-invoice-worldpay/internal/xmldoc"
)

func replyDoc(t *testing.T, body string) *xmldoc.Document {
	t.Helper()
	doc, err := xmldoc.ParseBytes([]byte(`<?xml version="1.0" encoding="UTF-8"?><paymentService version="1.4" merchantCode="M"><reply>` + body + `</reply></paymentService>`))
	if err != nil {
		t.Fatalf("parse reply: %v", err)
	}
	return doc
}

func replyWithCookie(t *testing.T, body, cookie string) *xmldoc.Document {
	doc := replyDoc(t, body)
	doc.SetAttr(interfaces.MachineCookieAttr, cookie)
	return doc
}

func lastEventReply(t *testing.T, orderCode, lastEvent string) *xmldoc.Document {
	return replyDoc(t, `<orderStatus orderCode="`+orderCode+`"><payment><lastEvent>`+lastEvent+`</lastEvent></payment></orderStatus>`)
}

func mustFind(t *testing.T, doc *xmldoc.Document, path string) *xmldoc.Node {
	t.Helper()
	n, err := xmldoc.Find(doc, path)
	if err != nil {
		t.Fatalf("find %s: %v", path, err)
	}
	return n
}

func childNames(n *xmldoc.Node) []string {
	names := make([]string, 0, len(n.Children))
	for _, c := range n.Children {
		names = append(names, c.Name)
	}
	return names
}

func equalNames(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func tokenChargeRequest() entities.ChargeRequest {
	return entities.ChargeRequest{
		InvoiceID:    "inv-1",
		PaymentID:    "pay-1",
		Amount:       1000,
		CurrencyCode: "GBP",
		Source:       &entities.PaymentSource{ID: "src-1", Token: "tok-9"},
		PaymentData:  entities.PaymentData{CVC: "123"},
		Order: entities.OrderContext{
			OrderCode: "order-1",
			Exponent:  2,
			SessionID: "sess-1",
			Shopper:   entities.Shopper{Email: "ada@example.com", ID: "shopper-1", IPAddress: "10.0.0.1"},
		},
	}
}
