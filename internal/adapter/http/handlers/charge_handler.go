package handlers

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/nails/driver-invoice-worldpay/internal/adapter/http/dto/request"
	"github.com/nails/driver-invoice-worldpay/internal/adapter/http/dto/response"
	"github.com/nails/driver-invoice-worldpay/internal/usecase"
)

// ChargeHandler handles POST /charges. When device data collection has run
// the charge is parked in an SCA session and the caller continues on /sca.
type ChargeHandler struct {
	charge usecase.IChargeUseCase
	sca    usecase.IScaUseCase
}

func NewChargeHandler(charge usecase.IChargeUseCase, sca usecase.IScaUseCase) *ChargeHandler {
	return &ChargeHandler{charge: charge, sca: sca}
}

// CreateCharge godoc
// @Summary      Charge an invoice
// @Tags         charges
// @Accept       json
// @Produce      json
// @Param        body  body      request.ChargeRequest  true  "Charge"
// @Success      200   {object}  response.OutcomeResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      500   {object}  pkg.HTTPError
// @Failure      502   {object}  response.OutcomeResponse
// @Router       /charges [post]
func (h *ChargeHandler) CreateCharge(c *gin.Context) {
	var body request.ChargeRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		log.Printf("[worldpay][handler] charge invalid payload err=%v", err)
		invalidRequest(c)
		return
	}
	req := body.ToEntity(browserContext(c))
	log.Printf("[worldpay][handler] charge start invoice_id=%s payment_id=%s", req.InvoiceID, req.PaymentID)

	out, err := h.charge.Charge(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	res := response.FromOutcome(out)

	if out.IsSca() && out.Continuation != nil {
		session, err := h.sca.StartSession(c.Request.Context(), *out.Continuation, req.Source, req.Order)
		if err != nil {
			writeError(c, err)
			return
		}
		res = res.WithSession(session)
	}
	log.Printf("[worldpay][handler] charge done payment_id=%s status=%s", req.PaymentID, out.Status)
	c.JSON(outcomeStatus(out), res)
}

func browserContext(c *gin.Context) request.BrowserContext {
	return request.BrowserContext{
		IPAddress:    c.ClientIP(),
		AcceptHeader: c.GetHeader("Accept"),
		UserAgent:    c.Request.UserAgent(),
	}
}
