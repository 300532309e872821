package payments

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nails/driver-invoice-worldpay/internal/config"
	"github.com/nails/driver-invoice-worldpay/internal/domain/entities"
	"github.com/nails/driver-invoice-worldpay/internal/usecase/interfaces"
	"github.com/nails/driver-invoice-worldpay/internal/xmldoc"
)

func testSettings() config.Settings {
	return config.Settings{
		Environment: config.EnvironmentTest,
		Merchants: []config.MerchantAccount{
			{CurrencyCode: "GBP", MerchantCode: "ECOM", InstallationID: "1234", XMLUsername: "user", XMLPassword: "secret"},
		},
		HTTPTimeout: 5 * time.Second,
		Breaker:     config.Breaker{MaxFailures: 2, OpenFor: time.Minute},
	}
}

func orderDoc() *xmldoc.Document {
	return xmldoc.NewDocument(xmldoc.Element("paymentService", xmldoc.Attrs{"version": "1.4"},
		xmldoc.Element("submit", nil,
			xmldoc.Element("order", xmldoc.Attrs{"orderCode": "order-1"},
				xmldoc.Text("description", "Invoice 1", nil)))))
}

func reply(body string) string {
	return `<?xml version="1.0" encoding="UTF-8"?><!DOCTYPE paymentService PUBLIC "-//WorldPay//DTD WorldPay PaymentService v1//EN" "http://dtd.worldpay.com/paymentService_v1.dtd"><paymentService version="1.4" merchantCode="ECOM"><reply>` + body + `</reply></paymentService>`
}

func TestWorldpayGateway_Send(t *testing.T) {
	var gotBody, gotCookie, gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != "user" || pass != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		gotCookie = r.Header.Get("Cookie")
		gotContentType = r.Header.Get("Content-Type")
		w.Header().Add("Set-Cookie", "JSESSIONID=abc; Path=/")
		w.Header().Add("Set-Cookie", "machine=0a1b2c; Path=/; Secure")
		_, _ = io.WriteString(w, reply(`<orderStatus orderCode="order-1"><payment><lastEvent>AUTHORISED</lastEvent></payment></orderStatus>`))
	}))
	defer srv.Close()

	g := NewWorldpayGateway(testSettings(), WithEndpoint(srv.URL))
	doc, err := g.Send(context.Background(), orderDoc(), "gbp", false, "machine=previous")
	require.NoError(t, err)

	assert.Contains(t, gotBody, `merchantCode="ECOM"`)
	assert.Contains(t, gotBody, `installationId="1234"`)
	assert.Contains(t, gotBody, "<!DOCTYPE paymentService")
	assert.Equal(t, "machine=previous", gotCookie)
	assert.True(t, strings.HasPrefix(gotContentType, "text/xml"))

	assert.Equal(t, "machine=0a1b2c", doc.Attr(interfaces.MachineCookieAttr))
	lastEvent, err := xmldoc.Find(doc, "paymentService.reply.orderStatus.payment.lastEvent")
	require.NoError(t, err)
	assert.Equal(t, "AUTHORISED", lastEvent.Text)
}

func TestWorldpayGateway_Errors(t *testing.T) {
	t.Run("error node classified", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, reply(`<error code="401"><![CDATA[Invalid credentials]]></error>`))
		}))
		defer srv.Close()

		g := NewWorldpayGateway(testSettings(), WithEndpoint(srv.URL))
		_, err := g.Send(context.Background(), orderDoc(), "GBP", false, "")

		var gwErr *entities.GatewayError
		require.True(t, errors.As(err, &gwErr))
		assert.Equal(t, 401, gwErr.Code)
		assert.Equal(t, entities.ErrorCategoryAuthentication, gwErr.Category)
		assert.Equal(t, "Invalid credentials", gwErr.Message)
		assert.Equal(t, entities.MessageAuthentication, entities.SafeMessage(err))
	})

	t.Run("non-200 is a transport error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = io.WriteString(w, reply(`<orderStatus><payment><lastEvent>AUTHORISED</lastEvent></payment></orderStatus>`))
		}))
		defer srv.Close()

		g := NewWorldpayGateway(testSettings(), WithEndpoint(srv.URL))
		_, err := g.Send(context.Background(), orderDoc(), "GBP", false, "")

		var trErr *entities.TransportError
		require.True(t, errors.As(err, &trErr))
		assert.Equal(t, http.StatusBadGateway, trErr.StatusCode)
	})

	t.Run("unknown merchant never calls out", func(t *testing.T) {
		var calls int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
		}))
		defer srv.Close()

		g := NewWorldpayGateway(testSettings(), WithEndpoint(srv.URL))
		_, err := g.Send(context.Background(), orderDoc(), "EUR", true, "")

		assert.True(t, entities.IsConfigurationError(err))
		assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
	})

	t.Run("breaker opens after consecutive transport failures", func(t *testing.T) {
		var calls int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		g := NewWorldpayGateway(testSettings(), WithEndpoint(srv.URL))
		for i := 0; i < 3; i++ {
			_, err := g.Send(context.Background(), orderDoc(), "GBP", false, "")
			var trErr *entities.TransportError
			require.True(t, errors.As(err, &trErr))
		}
		assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	})

	t.Run("garbage body is structural", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, "<html><body>maintenance")
		}))
		defer srv.Close()

		g := NewWorldpayGateway(testSettings(), WithEndpoint(srv.URL))
		_, err := g.Send(context.Background(), orderDoc(), "GBP", false, "")

		var stErr *entities.StructuralError
		assert.True(t, errors.As(err, &stErr))
	})
}
