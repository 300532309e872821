package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/nails/driver-invoice-worldpay/internal/adapter/http/handlers"
)

const (
	PathCharges  = "/charges"
	PathSca      = "/sca"
	PathRefunds  = "/refunds"
	PathOrders   = "/orders"
	PathShoppers = "/shoppers"
	PathPayments = "/payments"
	PathInvoices = "/invoices"
)

// Handlers groups everything the /v1 routes dispatch to.
type Handlers struct {
	Charge   *handlers.ChargeHandler
	Sca      *handlers.ScaHandler
	Refund   *handlers.RefundHandler
	Token    *handlers.TokenHandler
	Payments *handlers.PaymentRecordHandler
}

func addWorldpayRoutes(rg *gin.RouterGroup, h Handlers) {
	rg.POST(PathCharges, h.Charge.CreateCharge)

	sca := rg.Group(PathSca)
	{
		sca.GET("/ddc", h.Sca.DeviceDataCollection)
		sca.POST("/:session_id/initial", h.Sca.InitialPayment)
		// The challenge page posts the shopper's browser back here.
		sca.POST("/:session_id/return", h.Sca.Return)
	}

	rg.POST(PathRefunds, h.Refund.CreateRefund)
	rg.GET(PathOrders+"/:order_code", h.Refund.GetOrderStatus)

	tokens := rg.Group(PathShoppers + "/:shopper_id/tokens")
	{
		tokens.GET("", h.Token.ListTokens)
		tokens.DELETE("/:token_id", h.Token.DeleteToken)
	}

	rg.GET(PathPayments+"/:payment_id", h.Payments.GetPayment)
	rg.GET(PathInvoices+"/:invoice_id/payments", h.Payments.ListInvoicePayments)
}
