package request

import (
	"testing"
)

func TestChargeRequest_ToEntity(t *testing.T) {
	r := ChargeRequest{
		InvoiceID:    " inv-1 ",
		PaymentID:    "pay-1",
		Amount:       1250,
		CurrencyCode: "gbp",
		Shopper:      ShopperRequest{ID: "cust-1", Email: "a@example.com"},
		Source:       &SourceRequest{ID: "src-1", Token: "tok-9"},
		PaymentData: PaymentDataRequest{
			CVC:     "123",
			Address: &AddressRequest{Line1: "1 High St", City: "Leeds", PostalCode: "LS1 1AA", CountryCode: "gb"},
		},
	}

	req := r.ToEntity(BrowserContext{IPAddress: "10.0.0.1", UserAgent: "UA", AcceptHeader: "text/html"})
	if req.InvoiceID != "inv-1" || req.CurrencyCode != "GBP" {
		t.Fatalf("unexpected normalization: %+v", req)
	}
	if req.Order.Exponent != 2 {
		t.Fatalf("expected default exponent 2, got %d", req.Order.Exponent)
	}
	if req.Source == nil || req.Source.Token != "tok-9" || req.SourceID() != "src-1" {
		t.Fatalf("unexpected source: %+v", req.Source)
	}
	if req.PaymentData.Address == nil || req.PaymentData.Address.CountryCode != "GB" {
		t.Fatalf("unexpected address: %+v", req.PaymentData.Address)
	}
	if req.Order.Shopper.IPAddress != "10.0.0.1" || req.Order.Shopper.UserAgent != "UA" {
		t.Fatalf("browser context not copied: %+v", req.Order.Shopper)
	}
}

func TestChargeRequest_ToEntityExplicitExponent(t *testing.T) {
	zero := 0
	r := ChargeRequest{Amount: 500, CurrencyCode: "JPY", Exponent: &zero}
	if got := r.ToEntity(BrowserContext{}).Order.Exponent; got != 0 {
		t.Fatalf("expected exponent 0, got %d", got)
	}
}

func TestRefundRequest_ToEntity(t *testing.T) {
	r := RefundRequest{OrderCode: " order-1 ", Amount: 100, CurrencyCode: "eur"}
	req := r.ToEntity()
	if req.OrderCode != "order-1" || req.CurrencyCode != "EUR" || req.Exponent != 2 {
		t.Fatalf("unexpected refund request: %+v", req)
	}
}

func TestMerchantQuery_TokenOwner(t *testing.T) {
	q := MerchantQuery{Currency: "usd", CustomerPresent: true}
	owner := q.TokenOwner(" shopper-1 ")
	if owner.ShopperID != "shopper-1" || owner.CurrencyCode != "USD" || !owner.CustomerPresent {
		t.Fatalf("unexpected owner: %+v", owner)
	}
}
