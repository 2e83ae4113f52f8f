package pass

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeParseRoundTrip(t *testing.T) {
	p := New("A1B2C3D4E")
	parsed, err := Parse(p.Encode())
	require.NoError(t, err)
	assert.Equal(t, p, parsed)
}

func TestParseRejectsForeignFrames(t *testing.T) {
	cases := []string{
		"",
		"https://example.com/menu",
		"just some text",
		`{"id":"A1B2C3D4E"}`,
		`{"id":"A1B2C3D4E","type":"OTHER_EVENT"}`,
		`{"id":"","type":"ELIXIR_ENTRY"}`,
		`{"id":"A1B2C3D4E","type":"ELIXIR_ENTRY","extra":1}`,
	}
	for _, raw := range cases {
		_, err := Parse(raw)
		assert.ErrorIs(t, err, ErrBadPayload, raw)
	}
}

func TestEntryQRURLCarriesExactPayload(t *testing.T) {
	p := New("A1B2C3D4E")
	qr := EntryQRURL(p, 300)

	u, err := url.Parse(qr)
	require.NoError(t, err)
	assert.Equal(t, "api.qrserver.com", u.Host)

	q := u.Query()
	assert.Equal(t, "300x300", q.Get("size"))
	assert.Equal(t, "000", q.Get("bgcolor"))
	assert.Equal(t, "FFD700", q.Get("color"))

	// The scanner must be able to re-parse the embedded data verbatim.
	parsed, err := Parse(q.Get("data"))
	require.NoError(t, err)
	assert.Equal(t, p, parsed)
}

func TestPaymentQRURL(t *testing.T) {
	qr := PaymentQRURL("someone@oksbi", 750)

	u, err := url.Parse(qr)
	require.NoError(t, err)
	data := u.Query().Get("data")
	assert.True(t, strings.HasPrefix(data, "upi://pay?"))
	assert.Contains(t, data, "pa=someone@oksbi")
	assert.Contains(t, data, "am=750")
	assert.Contains(t, data, "cu=INR")
}
