package payments

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/nails/driver-invoice-worldpay/internal/domain/entities"
	"github.com/nails/driver-invoice-worldpay/internal/usecase/interfaces"
	"github.com/nails/driver-invoice-worldpay/internal/xmldoc"
)

const machineCookiePrefix = "machine="

// Error nodes are looked up in this order; the location depends on the
// request type.
var errorPaths = []string{
	"paymentService.reply.error",
	"paymentService.reply.orderStatus.error",
}

// ClassifyResponse records the machine cookie on the reply and returns the
// *entities.GatewayError it carries, or nil when the reply has no error node.
func ClassifyResponse(reply *xmldoc.Document, header http.Header) error {
	if cookie := MachineCookie(header); cookie != "" {
		reply.SetAttr(interfaces.MachineCookieAttr, cookie)
	}
	for _, path := range errorPaths {
		node, ok := xmldoc.TryFind(reply, path)
		if !ok {
			continue
		}
		raw := strings.TrimSpace(node.Attr("code"))
		code, err := strconv.Atoi(raw)
		if err != nil || code == 0 {
			log.Printf("[worldpay][gateway] error node without a usable code path=%s code=%q", path, raw)
			code = 0
		}
		return &entities.GatewayError{
			Code:     code,
			RawCode:  raw,
			Message:  strings.TrimSpace(node.Text),
			Category: entities.ClassifyGatewayCode(code),
		}
	}
	return nil
}

// MachineCookie returns the "machine=..." pair from Set-Cookie headers,
// without cookie attributes, ready to be sent back as a Cookie header.
func MachineCookie(header http.Header) string {
	for _, line := range header.Values("Set-Cookie") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, machineCookiePrefix) {
			continue
		}
		pair, _, _ := strings.Cut(line, ";")
		return strings.TrimSpace(pair)
	}
	return ""
}
