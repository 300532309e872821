package usecase

import (
	"errors"
	"log"
	"strings"

	"github.com/nails/driver-invoice-worldpay/internal/domain/entities"
	"github.com/nails/driver-invoice-worldpay/internal/xmldoc"
)

// interpretLastEvent maps a reply's lastEvent marker to an outcome.
// AUTHORISED completes with the order code as transaction id, REFUSED is a
// decline, anything else (including a missing marker) is an error.
func interpretLastEvent(reply *xmldoc.Document, orderCode string) entities.Outcome {
	node, err := xmldoc.Find(reply, pathLastEvent)
	if err != nil {
		log.Printf("[worldpay][charge] lastEvent missing order_code=%s err=%v", orderCode, err)
		return entities.Outcome{
			Status:     entities.OutcomeError,
			Message:    entities.MessageStructural,
			RawMessage: err.Error(),
		}
	}
	lastEvent := strings.TrimSpace(node.Text)
	switch lastEvent {
	case entities.LastEventAuthorised:
		return entities.Outcome{Status: entities.OutcomeComplete, TransactionID: orderCode}
	case entities.LastEventRefused:
		out := entities.Outcome{Status: entities.OutcomeDeclined, Message: entities.MessageDeclined, RawCode: lastEvent}
		if iso, ok := xmldoc.TryFind(reply, "paymentService.reply.orderStatus.payment.ISO8583ReturnCode"); ok {
			out.RawCode = iso.Attr("code")
			out.RawMessage = iso.Attr("description")
		}
		return out
	}
	return entities.Outcome{
		Status:     entities.OutcomeError,
		Message:    entities.MessageGeneric,
		RawCode:    lastEvent,
		RawMessage: "unexpected lastEvent " + lastEvent,
	}
}

// failure turns an orchestrator error into a Failed outcome. Configuration
// errors are a deployment defect and are returned as errors instead.
func failure(err error) (entities.Outcome, error) {
	if entities.IsConfigurationError(err) {
		return entities.Outcome{}, err
	}
	return entities.FailedOutcome(err), nil
}

// structural wraps a missing mandatory node.
func structural(err error) error {
	path := ""
	var nf *xmldoc.NotFoundError
	if errors.As(err, &nf) {
		path = strings.TrimPrefix(nf.Path+"."+nf.Segment, ".")
	}
	return &entities.StructuralError{Path: path, Err: err}
}

func childText(n *xmldoc.Node, name string) string {
	if c := n.Child(name); c != nil {
		return strings.TrimSpace(c.Text)
	}
	return ""
}
