package entities

// RefundRequest asks for part or all of a captured order to be returned.
type RefundRequest struct {
	OrderCode       string `json:"order_code" validate:"required"`
	Amount          int64  `json:"amount" validate:"gt=0"`
	CurrencyCode    string `json:"currency_code" validate:"required,currency"`
	Exponent        int    `json:"exponent" validate:"gte=0,lte=4"`
	CustomerPresent bool   `json:"customer_present"`
	// Reference is generated when empty.
	Reference string `json:"reference"`
}

// Last event values reported by the gateway.
const (
	LastEventAuthorised         = "AUTHORISED"
	LastEventRefused            = "REFUSED"
	LastEventError              = "ERROR"
	LastEventCaptured           = "CAPTURED"
	LastEventSettled            = "SETTLED"
	LastEventSettledByMerchant  = "SETTLED_BY_MERCHANT"
	LastEventSentForRefund      = "SENT_FOR_REFUND"
	LastEventRefunded           = "REFUNDED"
	LastEventRefundedByMerchant = "REFUNDED_BY_MERCHANT"
)

var refundableStatuses = map[string]struct{}{
	LastEventCaptured:           {},
	LastEventSettled:            {},
	LastEventSettledByMerchant:  {},
	LastEventSentForRefund:      {},
	LastEventRefunded:           {},
	LastEventRefundedByMerchant: {},
}

// IsRefundable reports whether an order in this state accepts a refund.
func IsRefundable(lastEvent string) bool {
	_, ok := refundableStatuses[lastEvent]
	return ok
}
