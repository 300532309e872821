package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nails/driver-invoice-worldpay/internal/adapter/http/dto/response"
	"github.com/nails/driver-invoice-worldpay/internal/usecase"
)

// PaymentRecordHandler exposes what was recorded for each payment attempt.
type PaymentRecordHandler struct {
	records usecase.IPaymentRecordUseCase
}

func NewPaymentRecordHandler(records usecase.IPaymentRecordUseCase) *PaymentRecordHandler {
	return &PaymentRecordHandler{records: records}
}

// GetPayment godoc
// @Summary      Recorded payment attempt
// @Tags         payments
// @Produce      json
// @Param        payment_id  path      string  true  "Payment id"
// @Success      200         {object}  response.PaymentRecordResponse
// @Failure      404         {object}  pkg.HTTPError
// @Router       /payments/{payment_id} [get]
func (h *PaymentRecordHandler) GetPayment(c *gin.Context) {
	rec, err := h.records.GetByID(c.Request.Context(), c.Param("payment_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentRecord(rec))
}

// ListInvoicePayments godoc
// @Summary      Payment attempts of an invoice, newest first
// @Tags         payments
// @Produce      json
// @Param        invoice_id  path      string  true  "Invoice id"
// @Success      200         {array}   response.PaymentRecordResponse
// @Router       /invoices/{invoice_id}/payments [get]
func (h *PaymentRecordHandler) ListInvoicePayments(c *gin.Context) {
	records, err := h.records.ListByInvoiceID(c.Request.Context(), c.Param("invoice_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentRecords(records))
}
