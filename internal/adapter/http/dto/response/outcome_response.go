package response

import (
	"time"

	"github.com/nails/driver-invoice-worldpay/internal/domain/entities"
)

type RedirectResponse struct {
	URL    string            `json:"url"`
	Fields map[string]string `json:"fields"`
}

// OutcomeResponse never carries raw gateway codes or messages.
type OutcomeResponse struct {
	Status        string            `json:"status"`
	TransactionID string            `json:"transaction_id,omitempty"`
	Message       string            `json:"message,omitempty"`
	Successful    bool              `json:"successful"`
	ScaSessionID  string            `json:"sca_session_id,omitempty"`
	ScaExpiresAt  *time.Time        `json:"sca_expires_at,omitempty"`
	Redirect      *RedirectResponse `json:"redirect,omitempty"`
}

func FromOutcome(o entities.Outcome) OutcomeResponse {
	res := OutcomeResponse{
		Status:        string(o.Status),
		TransactionID: o.TransactionID,
		Message:       o.Message,
		Successful:    o.Successful(),
	}
	if o.Redirect != nil {
		res.Redirect = &RedirectResponse{URL: o.Redirect.URL, Fields: o.Redirect.Fields}
	}
	return res
}

// WithSession points an SCA outcome at its stored session.
func (r OutcomeResponse) WithSession(s entities.ScaSession) OutcomeResponse {
	r.ScaSessionID = s.ID
	if !s.ExpiresAt.IsZero() {
		expires := s.ExpiresAt
		r.ScaExpiresAt = &expires
	}
	return r
}

type DDCResponse struct {
	URL string `json:"url"`
	JWT string `json:"jwt"`
	BIN string `json:"bin,omitempty"`
}

func FromDeviceDataCollection(d entities.DeviceDataCollection) DDCResponse {
	return DDCResponse{URL: d.URL, JWT: d.JWT, BIN: d.BIN}
}

type OrderStatusResponse struct {
	OrderCode  string `json:"order_code"`
	LastEvent  string `json:"last_event"`
	Refundable bool   `json:"refundable"`
}

func FromOrderStatus(orderCode, lastEvent string) OrderStatusResponse {
	return OrderStatusResponse{
		OrderCode:  orderCode,
		LastEvent:  lastEvent,
		Refundable: entities.IsRefundable(lastEvent),
	}
}
