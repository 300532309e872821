package entities

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCategory groups gateway error codes by what the operator or shopper
// can do about them. None of them implies an automatic retry.
type ErrorCategory string

const (
	ErrorCategoryAuthentication ErrorCategory = "authentication"
	ErrorCategoryValidation     ErrorCategory = "validation"
	ErrorCategoryGeneric        ErrorCategory = "generic"
)

// Gateway error codes that drive classification.
const (
	GatewayCodeParse                 = 2
	GatewayCodeSecurityViolation     = 4
	GatewayCodeInvalidOrderDetails   = 5
	GatewayCodeInvalidPaymentDetails = 7
	GatewayCodeUnauthorized          = 401
)

// Safe, shopper-facing messages.
const (
	MessageAuthentication = "The payment gateway is not configured correctly. Please contact the site administrator."
	MessageValidationFmt  = "The payment details were rejected by the gateway: %s"
	MessageGeneric        = "Something went wrong while processing your payment. Please try again."
	MessageTransport      = "The payment gateway could not be reached. Your payment has not been processed."
	MessageStructural     = "The payment gateway returned an unexpected response. Your payment has not been processed."
	MessageDeclined       = "The payment was declined by your card issuer."
	MessageRefundFailed   = "The refund could not be processed."
	MessageInvalidRequest = "The payment request is incomplete."
)

// GatewayError is an error node returned inside an otherwise valid response.
// RawCode is the code attribute as received; Code is 0 when it was missing
// or not numeric.
type GatewayError struct {
	Code     int
	RawCode  string
	Message  string
	Category ErrorCategory
}

func (e *GatewayError) Error() string {
	if e.Code == 0 {
		return fmt.Sprintf("gateway error code=%q (%s): %s", e.RawCode, e.Category, e.Message)
	}
	return fmt.Sprintf("gateway error %d (%s): %s", e.Code, e.Category, e.Message)
}

// ClassifyGatewayCode maps a numeric gateway code to its category. Zero
// stands for an unreadable code on an error node that is still present, so
// it is Generic as well: an error node never reads as success.
func ClassifyGatewayCode(code int) ErrorCategory {
	switch code {
	case GatewayCodeUnauthorized, GatewayCodeSecurityViolation:
		return ErrorCategoryAuthentication
	case GatewayCodeParse, GatewayCodeInvalidOrderDetails, GatewayCodeInvalidPaymentDetails:
		return ErrorCategoryValidation
	}
	return ErrorCategoryGeneric
}

// TransportError is a non-200 HTTP status or a failed round trip. No part of
// the response body is trusted.
type TransportError struct {
	StatusCode int
	Cause      error
}

func (e *TransportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("gateway transport failed (status %d): %v", e.StatusCode, e.Cause)
	}
	return fmt.Sprintf("gateway transport failed with status %d", e.StatusCode)
}

func (e *TransportError) Unwrap() error { return e.Cause }

// StructuralError is an expected node missing from a successful response.
type StructuralError struct {
	Path string
	Err  error
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("gateway response missing %s: %v", e.Path, e.Err)
}

func (e *StructuralError) Unwrap() error { return e.Err }

// ConfigurationError means no merchant record exists for the lookup key.
// It is raised before any network call and is meant for operators.
type ConfigurationError struct {
	CurrencyCode    string
	CustomerPresent bool
	Reason          string
}

func (e *ConfigurationError) Error() string {
	if e.Reason != "" {
		return "worldpay configuration: " + e.Reason
	}
	return fmt.Sprintf("worldpay configuration: no merchant configured for currency=%s customer_present=%t", e.CurrencyCode, e.CustomerPresent)
}

// IsConfigurationError reports whether err is, or wraps, a *ConfigurationError.
func IsConfigurationError(err error) bool {
	var cfgErr *ConfigurationError
	return errors.As(err, &cfgErr)
}

// SafeMessage maps an error to text that can be shown to a shopper. Only
// validation errors echo gateway text; nothing else leaks.
func SafeMessage(err error) string {
	var gwErr *GatewayError
	var trErr *TransportError
	var stErr *StructuralError
	switch {
	case errors.As(err, &gwErr):
		switch gwErr.Category {
		case ErrorCategoryAuthentication:
			return MessageAuthentication
		case ErrorCategoryValidation:
			return fmt.Sprintf(MessageValidationFmt, strings.TrimSpace(gwErr.Message))
		}
		return MessageGeneric
	case errors.As(err, &trErr):
		return MessageTransport
	case errors.As(err, &stErr):
		return MessageStructural
	case errors.Is(err, ErrInvalidRequest), errors.Is(err, ErrMissingCardCredential):
		return MessageInvalidRequest
	}
	return MessageGeneric
}

// FailedOutcome converts an error into a Failed outcome, keeping the raw
// code and message for operators.
func FailedOutcome(err error) Outcome {
	out := Outcome{Status: OutcomeFailed, Message: SafeMessage(err), RawMessage: err.Error()}
	var gwErr *GatewayError
	if errors.As(err, &gwErr) {
		out.RawCode = fmt.Sprintf("%d", gwErr.Code)
		if gwErr.Code == 0 {
			out.RawCode = gwErr.RawCode
		}
		out.RawMessage = gwErr.Message
	}
	var trErr *TransportError
	if errors.As(err, &trErr) && trErr.StatusCode != 0 {
		out.RawCode = fmt.Sprintf("http_%d", trErr.StatusCode)
	}
	return out
}
