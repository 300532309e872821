package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nails/driver-invoice-worldpay/internal/adapter/http/dto/request"
	"github.com/nails/driver-invoice-worldpay/internal/adapter/http/dto/response"
	"github.com/nails/driver-invoice-worldpay/internal/usecase"
)

type RefundHandler struct {
	refund usecase.IRefundUseCase
}

func NewRefundHandler(refund usecase.IRefundUseCase) *RefundHandler {
	return &RefundHandler{refund: refund}
}

// CreateRefund godoc
// @Summary      Refund part or all of an order
// @Tags         refunds
// @Accept       json
// @Produce      json
// @Param        body  body      request.RefundRequest  true  "Refund"
// @Success      200   {object}  response.OutcomeResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      502   {object}  response.OutcomeResponse
// @Router       /refunds [post]
func (h *RefundHandler) CreateRefund(c *gin.Context) {
	var body request.RefundRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		log.Printf("[worldpay][handler] refund invalid payload err=%v", err)
		invalidRequest(c)
		return
	}
	req := body.ToEntity()
	log.Printf("[worldpay][handler] refund start order_code=%s amount=%d", req.OrderCode, req.Amount)

	out, err := h.refund.Refund(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(outcomeStatus(out), response.FromOutcome(out))
}

// GetOrderStatus godoc
// @Summary      Last event of an order
// @Tags         orders
// @Produce      json
// @Param        order_code        path      string  true   "Order code"
// @Param        currency          query     string  true   "Currency of the merchant account"
// @Param        customer_present  query     bool    false  "Customer-present merchant account"
// @Success      200               {object}  response.OrderStatusResponse
// @Failure      502               {object}  pkg.HTTPError
// @Router       /orders/{order_code} [get]
func (h *RefundHandler) GetOrderStatus(c *gin.Context) {
	orderCode := c.Param("order_code")
	var q request.MerchantQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		invalidRequest(c)
		return
	}

	lastEvent, err := h.refund.OrderStatus(c.Request.Context(), orderCode, q.CurrencyCode(), q.CustomerPresent)
	if err != nil {
		if isGatewayFailure(err) {
			writeGatewayFailure(c, err)
			return
		}
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrderStatus(orderCode, lastEvent))
}
