package response

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/nails/driver-invoice-worldpay/internal/domain/entities"
)

func TestFromOutcome(t *testing.T) {
	o := entities.Outcome{
		Status:        entities.OutcomeRedirect,
		TransactionID: "order-1",
		Redirect:      &entities.RedirectChallenge{URL: "https://challenge", Fields: map[string]string{"JWT": "j", "MD": "m"}},
		RawCode:       "7",
		RawMessage:    "secret gateway text",
	}

	res := FromOutcome(o)
	if res.Status != "redirect" || !res.Successful || res.Redirect == nil || res.Redirect.Fields["MD"] != "m" {
		t.Fatalf("unexpected response: %+v", res)
	}
	b, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(b), "secret gateway text") {
		t.Fatalf("raw gateway message leaked: %s", b)
	}
}

func TestOutcomeResponse_WithSession(t *testing.T) {
	expires := time.Date(2026, 3, 1, 11, 0, 0, 0, time.UTC)
	res := FromOutcome(entities.Outcome{Status: entities.OutcomeSca}).WithSession(entities.ScaSession{ID: "sess-1", ExpiresAt: expires})
	if res.ScaSessionID != "sess-1" || res.ScaExpiresAt == nil || !res.ScaExpiresAt.Equal(expires) {
		t.Fatalf("unexpected session fields: %+v", res)
	}
}

func TestFromOrderStatus(t *testing.T) {
	if !FromOrderStatus("o", entities.LastEventCaptured).Refundable {
		t.Fatalf("captured orders are refundable")
	}
	if FromOrderStatus("o", entities.LastEventAuthorised).Refundable {
		t.Fatalf("authorised orders are not refundable")
	}
}

func TestFromStoredTokens(t *testing.T) {
	exp := time.Date(2030, 12, 1, 0, 0, 0, 0, time.UTC)
	res := FromStoredTokens([]entities.StoredToken{{ID: "tok-1", Expiry: exp}})
	if len(res) != 1 || res[0].ExpiryMonth != "12/2030" {
		t.Fatalf("unexpected tokens: %+v", res)
	}
}

func TestFromPaymentRecord(t *testing.T) {
	res := FromPaymentRecord(entities.PaymentRecord{
		ID:          "pay-1",
		Status:      entities.OutcomeComplete,
		PaymentData: entities.PaymentData{CardNumber: "************1111"},
	})
	if res.PaymentID != "pay-1" || res.CardLast4 != "1111" || res.Status != "complete" {
		t.Fatalf("unexpected record: %+v", res)
	}
}
