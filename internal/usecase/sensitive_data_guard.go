package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"github.com/nails/driver-invoice-worldpay/internal/domain/entities"
	"github.com/nails/driver-invoice-worldpay/internal/usecase/interfaces"
)

const cvcMaskRune = '*'

// ISensitiveDataGuard masks card data once it has been sent to the gateway.
type ISensitiveDataGuard interface {
	Obfuscate(ctx context.Context, paymentID string, data *entities.PaymentData) error
}

type SensitiveDataGuard struct {
	records interfaces.IPaymentRecordRepository
}

var _ ISensitiveDataGuard = (*SensitiveDataGuard)(nil)

func NewSensitiveDataGuard(records interfaces.IPaymentRecordRepository) *SensitiveDataGuard {
	return &SensitiveDataGuard{records: records}
}

// Obfuscate replaces the CVC with a mask of the same length and persists the
// masked payment data. Already-masked data is left alone and not re-persisted.
func (g *SensitiveDataGuard) Obfuscate(ctx context.Context, paymentID string, data *entities.PaymentData) error {
	if data == nil || data.CVC == "" || isMasked(data.CVC) {
		return nil
	}
	data.CVC = strings.Repeat(string(cvcMaskRune), utf8.RuneCountInString(data.CVC))
	if g.records == nil || paymentID == "" {
		log.Printf("[worldpay][guard] cvc masked without persistence payment_id=%q", paymentID)
		return nil
	}
	if err := g.records.UpdatePaymentData(ctx, paymentID, *data); err != nil {
		log.Printf("[worldpay][guard] persist masked payment data failed payment_id=%s err=%v", paymentID, err)
		return fmt.Errorf("persist masked payment data: %w", err)
	}
	log.Printf("[worldpay][guard] cvc masked payment_id=%s", paymentID)
	return nil
}

func isMasked(v string) bool {
	return strings.Trim(v, string(cvcMaskRune)) == ""
}
