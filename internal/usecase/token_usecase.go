package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nails/driver-invoice-worldpay/internal/domain/entities"
	"github.com/nails/driver-invoice-worldpay/internal/usecase/interfaces"
	"github.com/nails/driver-invoice-worldpay/internal/xmldoc"
)

const DefaultTokenDeleteReason = "Card removed by the customer"

var (
	ErrInvalidShopperID = errors.New("invalid shopper_id")
	ErrInvalidTokenID   = errors.New("invalid token_id")
)

// ITokenUseCase manages cards stored with the gateway for a shopper.
type ITokenUseCase interface {
	ListTokens(ctx context.Context, owner entities.TokenOwner) ([]entities.StoredToken, error)
	DeleteToken(ctx context.Context, tokenID string, owner entities.TokenOwner, reason string) error
}

type TokenUseCase struct {
	gateway interfaces.IPaymentGateway
}

var _ ITokenUseCase = (*TokenUseCase)(nil)

func NewTokenUseCase(gateway interfaces.IPaymentGateway) *TokenUseCase {
	return &TokenUseCase{gateway: gateway}
}

func (u *TokenUseCase) ListTokens(ctx context.Context, owner entities.TokenOwner) ([]entities.StoredToken, error) {
	if strings.TrimSpace(owner.ShopperID) == "" {
		return nil, ErrInvalidShopperID
	}
	if u.gateway == nil {
		return nil, ErrGatewayNotConfigured
	}
	reply, err := u.gateway.Send(ctx, tokenRetrievalDocument(owner.ShopperID), owner.CurrencyCode, owner.CustomerPresent, "")
	if err != nil {
		log.Printf("[worldpay][tokens] list failed shopper_id=%s err=%v", owner.ShopperID, err)
		return nil, err
	}
	replyNode, err := xmldoc.Find(reply, pathReply)
	if err != nil {
		return nil, structural(err)
	}

	nodes := replyNode.ChildrenNamed("token")
	tokens := make([]entities.StoredToken, 0, len(nodes))
	for _, n := range nodes {
		idNode, err := xmldoc.FindIn(n, pathTokenID)
		if err != nil {
			return nil, structural(err)
		}
		dateNode, err := xmldoc.FindIn(n, pathTokenExpiryDate)
		if err != nil {
			return nil, structural(err)
		}
		expiry, err := tokenExpiry(dateNode)
		if err != nil {
			return nil, &entities.StructuralError{Path: pathTokenExpiryDate, Err: err}
		}
		tokens = append(tokens, entities.StoredToken{ID: strings.TrimSpace(idNode.Text), Expiry: expiry})
	}
	log.Printf("[worldpay][tokens] listed shopper_id=%s count=%d", owner.ShopperID, len(tokens))
	return tokens, nil
}

func (u *TokenUseCase) DeleteToken(ctx context.Context, tokenID string, owner entities.TokenOwner, reason string) error {
	if strings.TrimSpace(tokenID) == "" {
		return ErrInvalidTokenID
	}
	if strings.TrimSpace(owner.ShopperID) == "" {
		return ErrInvalidShopperID
	}
	if u.gateway == nil {
		return ErrGatewayNotConfigured
	}
	if reason == "" {
		reason = DefaultTokenDeleteReason
	}
	doc := tokenDeleteDocument(tokenID, owner.ShopperID, uuid.NewString(), reason)
	reply, err := u.gateway.Send(ctx, doc, owner.CurrencyCode, owner.CustomerPresent, "")
	if err != nil {
		log.Printf("[worldpay][tokens] delete failed shopper_id=%s err=%v", owner.ShopperID, err)
		return err
	}
	if _, err := xmldoc.Find(reply, pathTokenDeleteAck); err != nil {
		return structural(err)
	}
	log.Printf("[worldpay][tokens] deleted shopper_id=%s", owner.ShopperID)
	return nil
}

// tokenExpiry assembles the discrete date attributes into one UTC timestamp.
// Time-of-day parts default to zero when absent.
func tokenExpiry(date *xmldoc.Node) (time.Time, error) {
	part := func(name string, required bool) (int, error) {
		v := strings.TrimSpace(date.Attr(name))
		if v == "" {
			if required {
				return 0, fmt.Errorf("date attribute %s missing", name)
			}
			return 0, nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("date attribute %s: %w", name, err)
		}
		return n, nil
	}
	var parts [6]int
	for i, attr := range []struct {
		name     string
		required bool
	}{
		{"year", true}, {"month", true}, {"dayOfMonth", false},
		{"hour", false}, {"minute", false}, {"second", false},
	} {
		n, err := part(attr.name, attr.required)
		if err != nil {
			return time.Time{}, err
		}
		parts[i] = n
	}
	day := parts[2]
	if day == 0 {
		day = 1
	}
	return time.Date(parts[0], time.Month(parts[1]), day, parts[3], parts[4], parts[5], 0, time.UTC), nil
}
