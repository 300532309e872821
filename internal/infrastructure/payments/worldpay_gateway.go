package payments

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/sony/gobreaker"

	"github.com/nails/driver-invoice-worldpay/internal/config"
	"github.com/nails/driver-invoice-worldpay/internal/domain/entities"
	"github.com/nails/driver-invoice-worldpay/internal/usecase/interfaces"
	"github.com/nails/driver-invoice-worldpay/internal/xmldoc"
)

const maxReplyBytes = 4 << 20

var ErrWorldpayGatewayNotConfigured = errors.New("worldpay gateway not configured")

// WorldpayGateway posts paymentService documents to the XML Direct endpoint.
// One Send is one HTTP call; consecutive transport failures open the breaker
// and later calls fail fast with a TransportError.
type WorldpayGateway struct {
	settings config.Settings
	endpoint string
	client   *http.Client
	breaker  *gobreaker.CircuitBreaker
}

var _ interfaces.IPaymentGateway = (*WorldpayGateway)(nil)

type Option func(*WorldpayGateway)

// WithEndpoint overrides the environment endpoint.
func WithEndpoint(url string) Option {
	return func(g *WorldpayGateway) { g.endpoint = url }
}

// WithHTTPClient replaces the default client built from the settings timeout.
func WithHTTPClient(c *http.Client) Option {
	return func(g *WorldpayGateway) { g.client = c }
}

func NewWorldpayGateway(settings config.Settings, opts ...Option) *WorldpayGateway {
	g := &WorldpayGateway{
		settings: settings,
		endpoint: settings.GatewayURL(),
		client:   &http.Client{Timeout: settings.HTTPTimeout},
	}
	for _, opt := range opts {
		opt(g)
	}
	maxFailures := settings.Breaker.MaxFailures
	g.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "worldpay",
		MaxRequests: 1,
		Timeout:     settings.Breaker.OpenFor,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return maxFailures > 0 && counts.ConsecutiveFailures >= maxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Printf("[worldpay][gateway] breaker %s state %s -> %s", name, from, to)
		},
	})
	log.Printf("[worldpay][gateway] initialized environment=%s merchants=%d", settings.Environment, len(settings.Merchants))
	return g
}

type roundTripResult struct {
	body   []byte
	header http.Header
}

func (g *WorldpayGateway) Send(ctx context.Context, doc *xmldoc.Document, currencyCode string, customerPresent bool, machineCookie string) (*xmldoc.Document, error) {
	if g == nil || g.client == nil || g.breaker == nil {
		return nil, ErrWorldpayGatewayNotConfigured
	}
	merchant, err := g.settings.Merchant(currencyCode, customerPresent)
	if err != nil {
		log.Printf("[worldpay][gateway] no merchant currency=%s customer_present=%t", currencyCode, customerPresent)
		return nil, err
	}
	op := stampMerchant(doc, merchant)
	body, err := doc.Marshal()
	if err != nil {
		return nil, fmt.Errorf("encode %s document: %w", op, err)
	}
	log.Printf("[worldpay][gateway] send start op=%s merchant_code=%s body_len=%d affinity=%t", op, merchant.MerchantCode, len(body), machineCookie != "")

	res, err := g.breaker.Execute(func() (interface{}, error) {
		return g.roundTrip(ctx, merchant, body, machineCookie)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			err = &entities.TransportError{Cause: err}
		}
		log.Printf("[worldpay][gateway] send failed op=%s merchant_code=%s err=%v", op, merchant.MerchantCode, err)
		return nil, err
	}
	rt := res.(*roundTripResult)

	reply, err := xmldoc.ParseBytes(rt.body)
	if err != nil {
		log.Printf("[worldpay][gateway] unparseable reply op=%s body_len=%d", op, len(rt.body))
		return nil, &entities.StructuralError{Path: "paymentService", Err: err}
	}
	if err := ClassifyResponse(reply, rt.header); err != nil {
		log.Printf("[worldpay][gateway] gateway error op=%s merchant_code=%s err=%v", op, merchant.MerchantCode, err)
		return nil, err
	}
	log.Printf("[worldpay][gateway] send success op=%s merchant_code=%s", op, merchant.MerchantCode)
	return reply, nil
}

func (g *WorldpayGateway) roundTrip(ctx context.Context, merchant config.MerchantAccount, body []byte, machineCookie string) (*roundTripResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &entities.TransportError{Cause: err}
	}
	req.SetBasicAuth(merchant.XMLUsername, merchant.XMLPassword)
	req.Header.Set("Content-Type", "text/xml; charset=UTF-8")
	if machineCookie != "" {
		req.Header.Set("Cookie", machineCookie)
	}

	started := time.Now()
	resp, err := g.client.Do(req)
	if err != nil {
		return nil, &entities.TransportError{Cause: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxReplyBytes))
	if err != nil {
		return nil, &entities.TransportError{StatusCode: resp.StatusCode, Cause: err}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &entities.TransportError{StatusCode: resp.StatusCode}
	}
	log.Printf("[worldpay][gateway] round trip status=%d elapsed=%s", resp.StatusCode, time.Since(started).Round(time.Millisecond))
	return &roundTripResult{body: raw, header: resp.Header}, nil
}

// stampMerchant sets merchantCode on the envelope and, for submitted orders,
// the installation id. It returns the operation name for logging.
func stampMerchant(doc *xmldoc.Document, merchant config.MerchantAccount) string {
	root := doc.Element("paymentService")
	if root == nil {
		return ""
	}
	if root.Attrs == nil {
		root.Attrs = xmldoc.Attrs{}
	}
	root.Attrs["merchantCode"] = merchant.MerchantCode
	if merchant.InstallationID != "" {
		if order, ok := xmldoc.TryFind(doc, "paymentService.submit.order"); ok {
			if order.Attrs == nil {
				order.Attrs = xmldoc.Attrs{}
			}
			order.Attrs["installationId"] = merchant.InstallationID
		}
	}
	if len(root.Children) == 0 {
		return ""
	}
	op := root.Children[0]
	if len(op.Children) > 0 {
		return op.Name + "." + op.Children[0].Name
	}
	return op.Name
}
