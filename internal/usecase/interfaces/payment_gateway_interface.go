package interfaces

import (
	"context"

	"github.com/nails/driver-invoice-worldpay/internal/xmldoc"
)

// MachineCookieAttr is the document attribute the gateway stores the
// session-affinity cookie under on every parsed reply.
const MachineCookieAttr = "machineCookie"

// IPaymentGateway sends one XML document to the payment gateway.
//
// The implementation selects the merchant account by (currency, customer
// present), echoes machineCookie when non-empty, and returns either the parsed
// reply or a *entities.TransportError / *entities.GatewayError /
// *entities.ConfigurationError. It never retries.
type IPaymentGateway interface {
	Send(ctx context.Context, doc *xmldoc.Document, currencyCode string, customerPresent bool, machineCookie string) (*xmldoc.Document, error)
}
