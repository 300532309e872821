package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nails/driver-invoice-worldpay/internal/adapter/http/dto/request"
	"github.com/nails/driver-invoice-worldpay/internal/adapter/http/dto/response"
	"github.com/nails/driver-invoice-worldpay/internal/usecase"
)

type ScaHandler struct {
	sca usecase.IScaUseCase
}

func NewScaHandler(sca usecase.IScaUseCase) *ScaHandler {
	return &ScaHandler{sca: sca}
}

// DeviceDataCollection godoc
// @Summary      Device data collection descriptor
// @Tags         sca
// @Produce      json
// @Param        bin  query     string  false  "Card BIN"
// @Success      200  {object}  response.DDCResponse
// @Router       /sca/ddc [get]
func (h *ScaHandler) DeviceDataCollection(c *gin.Context) {
	var q request.DDCQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		invalidRequest(c)
		return
	}
	ddc, err := h.sca.DeviceDataCollection(c.Request.Context(), q.BIN)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDeviceDataCollection(ddc))
}

// InitialPayment godoc
// @Summary      Run the first SCA phase for a stored session
// @Tags         sca
// @Produce      json
// @Param        session_id  path      string  true  "SCA session id"
// @Success      200         {object}  response.OutcomeResponse
// @Failure      404         {object}  pkg.HTTPError
// @Failure      409         {object}  pkg.HTTPError
// @Router       /sca/{session_id}/initial [post]
func (h *ScaHandler) InitialPayment(c *gin.Context) {
	sessionID := c.Param("session_id")
	log.Printf("[worldpay][handler] sca initial start session_id=%s", sessionID)

	out, err := h.sca.InitialPaymentForSession(c.Request.Context(), sessionID)
	if err != nil {
		writeError(c, err)
		return
	}
	res := response.FromOutcome(out)
	if out.IsRedirect() {
		res.ScaSessionID = sessionID
	}
	log.Printf("[worldpay][handler] sca initial done session_id=%s status=%s", sessionID, out.Status)
	c.JSON(outcomeStatus(out), res)
}

// Return godoc
// @Summary      Challenge return; runs the second SCA phase
// @Tags         sca
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        session_id     path      string  true   "SCA session id"
// @Param        TransactionId  formData  string  false  "Challenge transaction id"
// @Param        Response       formData  string  false  "Challenge response"
// @Param        MD             formData  string  true   "Merchant data"
// @Success      200            {object}  response.OutcomeResponse
// @Failure      404            {object}  pkg.HTTPError
// @Failure      409            {object}  pkg.HTTPError
// @Router       /sca/{session_id}/return [post]
func (h *ScaHandler) Return(c *gin.Context) {
	sessionID := c.Param("session_id")
	var form request.ScaReturnForm
	if err := c.ShouldBind(&form); err != nil {
		log.Printf("[worldpay][handler] sca return invalid form session_id=%s", sessionID)
		invalidRequest(c)
		return
	}
	log.Printf("[worldpay][handler] sca return start session_id=%s transaction_id=%s", sessionID, form.TransactionID)

	out, err := h.sca.CompleteSession(c.Request.Context(), sessionID, form.TransactionID, form.Response, form.MD)
	if err != nil {
		writeError(c, err)
		return
	}
	log.Printf("[worldpay][handler] sca return done session_id=%s status=%s", sessionID, out.Status)
	c.JSON(outcomeStatus(out), response.FromOutcome(out))
}
