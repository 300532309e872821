package repository

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/redis/go-redis/v9"

	"github.com/nails/driver-invoice-worldpay/internal/domain/entities"
)

func testSession(now time.Time) entities.ScaSession {
	return entities.ScaSession{
		ID: "sess-1",
		Continuation: entities.ScaContinuation{
			InvoiceID:    "inv-1",
			CurrencyCode: "GBP",
			Amount:       1000,
			PaymentID:    "pay-1",
			PaymentData:  entities.PaymentData{Token: "tok-9", CVC: "123"},
		},
		Digest:    "abc",
		Order:     entities.OrderContext{OrderCode: "order-1"},
		CreatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	}
}

func TestScaSessionDynamoRepository_SaveGetTake(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	ddb := newFakeDynamoDB()
	repo := NewScaSessionDynamoRepository(ddb)
	repo.now = func() time.Time { return now }
	ctx := context.Background()

	if err := repo.Save(ctx, testSession(now)); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Get(ctx, "sess-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != "sess-1" || got.Continuation.PaymentData.Token != "tok-9" || got.Order.OrderCode != "order-1" {
		t.Fatalf("unexpected session: %+v", got)
	}

	taken, err := repo.Take(ctx, "sess-1")
	if err != nil {
		t.Fatalf("take: %v", err)
	}
	if taken.ID != "sess-1" {
		t.Fatalf("expected taken session, got %+v", taken)
	}

	again, err := repo.Take(ctx, "sess-1")
	if err != nil {
		t.Fatalf("second take: %v", err)
	}
	if again.ID != "" {
		t.Fatalf("session must be single use, got %+v", again)
	}
}

func TestScaSessionDynamoRepository_Claim(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	ddb := newFakeDynamoDB()
	repo := NewScaSessionDynamoRepository(ddb)
	repo.now = func() time.Time { return now }
	ctx := context.Background()

	if err := repo.Save(ctx, testSession(now)); err != nil {
		t.Fatalf("save: %v", err)
	}

	s, won, err := repo.Claim(ctx, "sess-1")
	if err != nil {
		t.Fatalf("claim: %v", err)
	}
	if !won || s.ID != "sess-1" || !s.Initiated {
		t.Fatalf("expected first claim to win, got won=%t %+v", won, s)
	}
	if aws.ToString(ddb.lastUpdate.ConditionExpression) != scaClaimCondition {
		t.Fatalf("expected conditional claim, got %q", aws.ToString(ddb.lastUpdate.ConditionExpression))
	}

	s, won, err = repo.Claim(ctx, "sess-1")
	if err != nil {
		t.Fatalf("second claim: %v", err)
	}
	if won || s.ID != "sess-1" {
		t.Fatalf("expected second claim to lose, got won=%t %+v", won, s)
	}

	got, err := repo.Get(ctx, "sess-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !got.Initiated {
		t.Fatalf("expected claimed session to read as initiated")
	}

	s, won, err = repo.Claim(ctx, "missing")
	if err != nil {
		t.Fatalf("claim missing: %v", err)
	}
	if won || s.ID != "" {
		t.Fatalf("expected zero session for unknown id, got won=%t %+v", won, s)
	}
}

func TestScaSessionDynamoRepository_ExpiredIsMissing(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	ddb := newFakeDynamoDB()
	repo := NewScaSessionDynamoRepository(ddb)
	repo.now = func() time.Time { return now }

	if err := repo.Save(context.Background(), testSession(now)); err != nil {
		t.Fatalf("save: %v", err)
	}
	repo.now = func() time.Time { return now.Add(2 * time.Hour) }

	got, err := repo.Get(context.Background(), "sess-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != "" {
		t.Fatalf("expected expired session to read as missing, got %+v", got)
	}
}

func TestSessionTTL(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	if got := sessionTTL(time.Time{}, now); got != 0 {
		t.Fatalf("expected no expiry, got %v", got)
	}
	if got := sessionTTL(now.Add(time.Minute), now); got != time.Minute {
		t.Fatalf("expected 1m, got %v", got)
	}
	if got := sessionTTL(now.Add(-time.Minute), now); got >= 0 {
		t.Fatalf("expected negative ttl, got %v", got)
	}
}

func TestDecodeRedisSession(t *testing.T) {
	t.Run("nil reply is missing", func(t *testing.T) {
		s, err := decodeRedisSession(nil, redisNil())
		if err != nil || s.ID != "" {
			t.Fatalf("expected zero session, got %+v err=%v", s, err)
		}
	})
	t.Run("bad payload", func(t *testing.T) {
		if _, err := decodeRedisSession([]byte("{"), nil); err == nil {
			t.Fatalf("expected decode error")
		}
	})
	t.Run("valid payload", func(t *testing.T) {
		s, err := decodeRedisSession([]byte(`{"id":"sess-9","initiated":true}`), nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.ID != "sess-9" || !s.Initiated {
			t.Fatalf("unexpected session: %+v", s)
		}
	})
}

func redisNil() error { return redis.Nil }

func TestScaClaimKey(t *testing.T) {
	if got := scaClaimKey("sess-1"); got != "worldpay:sca:sess-1:claim" {
		t.Fatalf("unexpected claim key %q", got)
	}
}
