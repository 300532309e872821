package usecase

import (
	"fmt"
	"strconv"

	"github.com/nails/driver-invoice-worldpay/internal/domain/entities"
	"github.com/nails/driver-invoice-worldpay/internal/xmldoc"
)

// Wire schema constants for the paymentService DTD.
const (
	protocolVersion = "1.4"
	paymentDocType  = `paymentService PUBLIC "-//WorldPay//DTD WorldPay PaymentService v1//EN" "http://dtd.worldpay.com/paymentService_v1.dtd"`
)

// Reply paths.
const (
	pathLastEvent        = "paymentService.reply.orderStatus.payment.lastEvent"
	pathChallengeDetails = "paymentService.reply.orderStatus.challengeRequired.threeDSChallengeDetails"
	pathRefundableAmount = "paymentService.reply.refundableAmount.amount"
	pathRefundReceived   = "paymentService.reply.ok.refundReceived"
	pathTokenDeleteAck   = "paymentService.reply.ok.deleteTokenReceived"
	pathReply            = "paymentService.reply"
	pathTokenID          = "token.tokenDetails.paymentTokenID"
	pathTokenExpiryDate  = "token.tokenDetails.paymentTokenExpiry.date"
)

// paymentService wraps one operation subtree (submit, inquiry or modify) in
// the protocol envelope. merchantCode is stamped by the gateway.
func paymentService(body *xmldoc.Node) *xmldoc.Document {
	doc := xmldoc.NewDocument(xmldoc.Element("paymentService", xmldoc.Attrs{"version": protocolVersion}, body))
	doc.DocType = paymentDocType
	return doc
}

// chargeOrder builds submit.order for a direct or 3DS charge. Child order
// follows the DTD: description, amount, paymentDetails, shopper.
func chargeOrder(req entities.ChargeRequest, cred entities.CardCredential) *xmldoc.Node {
	description := req.Order.Description
	if description == "" {
		description = fmt.Sprintf("Invoice %s", req.InvoiceID)
	}
	return xmldoc.Element("order", xmldoc.Attrs{"orderCode": req.Order.OrderCode},
		xmldoc.Text("description", description, nil),
		amountNode(req.Amount, req.CurrencyCode, req.Order.Exponent),
		paymentDetailsNode(cred, req.Order),
		shopperNode(req.Order.Shopper),
	)
}

func chargeDocument(req entities.ChargeRequest, cred entities.CardCredential) *xmldoc.Document {
	return paymentService(xmldoc.Element("submit", nil, chargeOrder(req, cred)))
}

// threeDSChargeDocument is the charge document plus additional3DSData as the
// last child of order.
func threeDSChargeDocument(req entities.ChargeRequest, cred entities.CardCredential, windowSize, preference string) *xmldoc.Document {
	order := chargeOrder(req, cred)
	order.Append(xmldoc.Element("additional3DSData", xmldoc.Attrs{
		"dfReferenceId":       req.PaymentData.DDCSessionID,
		"challengeWindowSize": windowSize,
		"challengePreference": preference,
	}))
	return paymentService(xmldoc.Element("submit", nil, order))
}

// completedAuthenticationDocument confirms a finished challenge. The gateway
// correlates it by order code and machine cookie.
func completedAuthenticationDocument(orderCode, sessionID string) *xmldoc.Document {
	return paymentService(xmldoc.Element("submit", nil,
		xmldoc.Element("order", xmldoc.Attrs{"orderCode": orderCode},
			xmldoc.Element("info3DSecure", nil, xmldoc.Element("completedAuthentication", nil)),
			sessionNode("", sessionID),
		),
	))
}

func amountNode(value int64, currencyCode string, exponent int) *xmldoc.Node {
	return xmldoc.Element("amount", xmldoc.Attrs{
		"currencyCode": currencyCode,
		"exponent":     strconv.Itoa(exponent),
		"value":        strconv.FormatInt(value, 10),
	})
}

func paymentDetailsNode(cred entities.CardCredential, order entities.OrderContext) *xmldoc.Node {
	details := xmldoc.Element("paymentDetails", nil)
	switch c := cred.(type) {
	case entities.TokenReference:
		token := xmldoc.Element("TOKEN-SSL", xmldoc.Attrs{"tokenScope": entities.TokenScope},
			xmldoc.Text("paymentTokenID", c.TokenID, nil))
		if overrides := c.Overrides(); !overrides.Empty() {
			token.Append(xmldoc.Element("paymentInstrument", nil,
				xmldoc.Element("cardDetails", nil, overrideNodes(overrides)...)))
		}
		details.Append(token)
	case entities.RawCard:
		card := xmldoc.Element("CARD-SSL", nil, xmldoc.Text("cardNumber", c.Number, nil))
		card.Append(overrideNodes(c.Overrides())...)
		details.Append(card)
	}
	return details.Append(sessionNode(order.Shopper.IPAddress, order.SessionID))
}

// overrideNodes renders card overrides as expiry, holder name, CVC, address.
// The gateway rejects any other order.
func overrideNodes(o entities.CardOverrides) []*xmldoc.Node {
	var nodes []*xmldoc.Node
	if o.HasExpiry() {
		nodes = append(nodes, xmldoc.Element("expiryDate", nil,
			xmldoc.Element("date", xmldoc.Attrs{"month": o.ExpiryMonth, "year": o.ExpiryYear})))
	}
	if o.HolderName != "" {
		nodes = append(nodes, xmldoc.Text("cardHolderName", o.HolderName, nil))
	}
	if o.CVC != "" {
		nodes = append(nodes, xmldoc.Text("cvc", o.CVC, nil))
	}
	if o.Address != nil {
		nodes = append(nodes, xmldoc.Element("cardAddress", nil, addressNode(*o.Address)))
	}
	return nodes
}

func addressNode(a entities.Address) *xmldoc.Node {
	addr := xmldoc.Element("address", nil, xmldoc.Text("address1", a.Line1, nil))
	if a.Line2 != "" {
		addr.Append(xmldoc.Text("address2", a.Line2, nil))
	}
	addr.Append(
		xmldoc.Text("postalCode", a.PostalCode, nil),
		xmldoc.Text("city", a.City, nil),
	)
	if a.State != "" {
		addr.Append(xmldoc.Text("state", a.State, nil))
	}
	return addr.Append(xmldoc.Text("countryCode", a.CountryCode, nil))
}

func sessionNode(ipAddress, id string) *xmldoc.Node {
	if ipAddress == "" && id == "" {
		return nil
	}
	attrs := xmldoc.Attrs{}
	if ipAddress != "" {
		attrs["shopperIPAddress"] = ipAddress
	}
	if id != "" {
		attrs["id"] = id
	}
	return xmldoc.Element("session", attrs)
}

func shopperNode(s entities.Shopper) *xmldoc.Node {
	shopper := xmldoc.Element("shopper", nil)
	if s.Email != "" {
		shopper.Append(xmldoc.Text("shopperEmailAddress", s.Email, nil))
	}
	if s.ID != "" {
		shopper.Append(xmldoc.Text("authenticatedShopperID", s.ID, nil))
	}
	if s.AcceptHeader != "" || s.UserAgent != "" {
		shopper.Append(xmldoc.Element("browser", nil,
			xmldoc.Text("acceptHeader", s.AcceptHeader, nil),
			xmldoc.Text("userAgentHeader", s.UserAgent, nil),
		))
	}
	if len(shopper.Children) == 0 {
		return nil
	}
	return shopper
}

func orderInquiryDocument(orderCode string) *xmldoc.Document {
	return paymentService(xmldoc.Element("inquiry", nil,
		xmldoc.Element("orderInquiry", xmldoc.Attrs{"orderCode": orderCode})))
}

func refundableAmountInquiryDocument(orderCode string) *xmldoc.Document {
	return paymentService(xmldoc.Element("inquiry", nil,
		xmldoc.Element("refundableAmountInquiry", xmldoc.Attrs{"orderCode": orderCode})))
}

func refundDocument(req entities.RefundRequest) *xmldoc.Document {
	amount := amountNode(req.Amount, req.CurrencyCode, req.Exponent)
	amount.Attrs["debitCreditIndicator"] = "credit"
	return paymentService(xmldoc.Element("modify", nil,
		xmldoc.Element("orderModification", xmldoc.Attrs{"orderCode": req.OrderCode},
			xmldoc.Element("refund", xmldoc.Attrs{"reference": req.Reference}, amount))))
}

func tokenRetrievalDocument(shopperID string) *xmldoc.Document {
	return paymentService(xmldoc.Element("inquiry", nil,
		xmldoc.Element("shopperTokenRetrieval", nil,
			xmldoc.Text("authenticatedShopperID", shopperID, nil))))
}

func tokenDeleteDocument(tokenID, shopperID, eventReference, reason string) *xmldoc.Document {
	return paymentService(xmldoc.Element("modify", nil,
		xmldoc.Element("paymentTokenDelete", xmldoc.Attrs{"tokenScope": entities.TokenScope},
			xmldoc.Text("paymentTokenID", tokenID, nil),
			xmldoc.Text("authenticatedShopperID", shopperID, nil),
			xmldoc.Text("tokenEventReference", eventReference, nil),
			xmldoc.Text("tokenReason", reason, nil),
		)))
}
