package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nails/driver-invoice-worldpay/internal/domain/entities"
	"github.com/nails/driver-invoice-worldpay/internal/usecase"
	"github.com/nails/driver-invoice-worldpay/pkg"
)

func invalidRequest(c *gin.Context) {
	appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func writeError(c *gin.Context, err error) {
	appErr := mapWorldpayError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.Printf("[worldpay][handler] %s %s failed code=%s err=%v", c.Request.Method, c.FullPath(), appErr.Code, err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// mapWorldpayError only sees errors the use cases let through: invalid input,
// missing state and deployment problems. Gateway failures arrive as outcomes.
func mapWorldpayError(err error) *pkg.AppError {
	switch {
	case entities.IsConfigurationError(err),
		errors.Is(err, usecase.ErrGatewayNotConfigured),
		errors.Is(err, usecase.ErrScaSessionStoreNotConfigured),
		errors.Is(err, usecase.ErrPaymentStoreNotConfigured):
		return pkg.NewDomainError("GATEWAY_NOT_CONFIGURED", "Payment gateway is not configured", err, http.StatusInternalServerError)
	case errors.Is(err, entities.ErrInvalidRequest),
		errors.Is(err, entities.ErrMissingCardCredential),
		errors.Is(err, usecase.ErrInvalidShopperID),
		errors.Is(err, usecase.ErrInvalidTokenID),
		errors.Is(err, usecase.ErrInvalidPaymentID),
		errors.Is(err, usecase.ErrInvalidInvoiceID):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrScaSessionNotFound):
		return pkg.NewDomainErrorSimple("SCA_SESSION_NOT_FOUND", "SCA session not found or expired", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentRecordNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrScaSessionAlreadyInitiated):
		return pkg.NewDomainErrorSimple("SCA_SESSION_ALREADY_INITIATED", "SCA session already initiated", http.StatusConflict)
	case errors.Is(err, usecase.ErrScaSessionNotInitiated):
		return pkg.NewDomainErrorSimple("SCA_SESSION_NOT_INITIATED", "SCA session has not been initiated", http.StatusConflict)
	case errors.Is(err, entities.ErrContinuationTampered),
		errors.Is(err, usecase.ErrContinuationMismatch):
		return pkg.NewDomainErrorSimple("SCA_CONTINUATION_MISMATCH", "SCA continuation does not match this payment", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// outcomeStatus is 200 for anything the gateway answered, 502 when it could
// not be reached or its reply was unusable.
func outcomeStatus(o entities.Outcome) int {
	if o.Status == entities.OutcomeFailed {
		return http.StatusBadGateway
	}
	return http.StatusOK
}

func isGatewayFailure(err error) bool {
	var gwErr *entities.GatewayError
	var trErr *entities.TransportError
	var stErr *entities.StructuralError
	return errors.As(err, &gwErr) || errors.As(err, &trErr) || errors.As(err, &stErr)
}

// writeGatewayFailure answers with the shopper-safe text only.
func writeGatewayFailure(c *gin.Context, err error) {
	code := "GATEWAY_ERROR"
	var gwErr *entities.GatewayError
	if errors.As(err, &gwErr) && gwErr.Category == entities.ErrorCategoryValidation {
		code = "GATEWAY_REJECTED"
	}
	log.Printf("[worldpay][handler] %s %s gateway failure err=%v", c.Request.Method, c.FullPath(), err)
	appErr := pkg.NewDomainError(code, entities.SafeMessage(err), err, http.StatusBadGateway)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
