package payments

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nails/driver-invoice-worldpay/internal/domain/entities"
	"github.com/nails/driver-invoice-worldpay/internal/usecase/interfaces"
	"github.com/nails/driver-invoice-worldpay/internal/xmldoc"
)

func parseReply(t *testing.T, body string) *xmldoc.Document {
	t.Helper()
	doc, err := xmldoc.ParseBytes([]byte(reply(body)))
	require.NoError(t, err)
	return doc
}

func TestClassifyResponse(t *testing.T) {
	cases := []struct {
		name     string
		body     string
		code     int
		category entities.ErrorCategory
	}{
		{"reply error security violation", `<error code="4">Security violation</error>`, 4, entities.ErrorCategoryAuthentication},
		{"reply error parse", `<error code="2">XML parse error</error>`, 2, entities.ErrorCategoryValidation},
		{"order status error invalid payment", `<orderStatus orderCode="o"><error code="7">Invalid payment details</error></orderStatus>`, 7, entities.ErrorCategoryValidation},
		{"order status error invalid order", `<orderStatus orderCode="o"><error code="5">Duplicate order</error></orderStatus>`, 5, entities.ErrorCategoryValidation},
		{"generic", `<error code="1">Internal error</error>`, 1, entities.ErrorCategoryGeneric},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ClassifyResponse(parseReply(t, tc.body), http.Header{})
			gwErr, ok := err.(*entities.GatewayError)
			require.True(t, ok, "expected *GatewayError, got %v", err)
			assert.Equal(t, tc.code, gwErr.Code)
			assert.Equal(t, tc.category, gwErr.Category)
		})
	}

	t.Run("reply error wins over order status error", func(t *testing.T) {
		err := ClassifyResponse(parseReply(t, `<error code="2">outer</error><orderStatus><error code="7">inner</error></orderStatus>`), http.Header{})
		gwErr := err.(*entities.GatewayError)
		assert.Equal(t, 2, gwErr.Code)
		assert.Equal(t, "outer", gwErr.Message)
	})

	t.Run("unreadable code keeps the raw attribute", func(t *testing.T) {
		err := ClassifyResponse(parseReply(t, `<error code="E12">Unexpected</error>`), http.Header{})
		gwErr, ok := err.(*entities.GatewayError)
		require.True(t, ok, "expected *GatewayError, got %v", err)
		assert.Equal(t, 0, gwErr.Code)
		assert.Equal(t, "E12", gwErr.RawCode)
		assert.Equal(t, entities.ErrorCategoryGeneric, gwErr.Category)
		assert.Contains(t, gwErr.Error(), `code="E12"`)
		assert.Equal(t, "E12", entities.FailedOutcome(err).RawCode)
	})

	t.Run("missing code is still an error", func(t *testing.T) {
		err := ClassifyResponse(parseReply(t, `<error>No code</error>`), http.Header{})
		gwErr, ok := err.(*entities.GatewayError)
		require.True(t, ok, "expected *GatewayError, got %v", err)
		assert.Equal(t, "", gwErr.RawCode)
		assert.Equal(t, entities.ErrorCategoryGeneric, gwErr.Category)
	})

	t.Run("no error node", func(t *testing.T) {
		doc := parseReply(t, `<ok><refundReceived/></ok>`)
		h := http.Header{}
		h.Add("Set-Cookie", "machine=ff00; path=/")
		assert.NoError(t, ClassifyResponse(doc, h))
		assert.Equal(t, "machine=ff00", doc.Attr(interfaces.MachineCookieAttr))
	})
}

func TestMachineCookie(t *testing.T) {
	h := http.Header{}
	assert.Equal(t, "", MachineCookie(h))
	h.Add("Set-Cookie", "machineid=nope")
	assert.Equal(t, "", MachineCookie(h))
	h.Add("Set-Cookie", "machine=abc;Path=/")
	assert.Equal(t, "machine=abc", MachineCookie(h))
}
