// Package pass owns the entry-pass wire contract: the QR payload exchanged
// between the issued pass and the venue scanner, and the URLs handed to the
// external QR image endpoint.
package pass

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
)

// PayloadType tags every entry-pass QR payload.
const PayloadType = "ELIXIR_ENTRY"

const qrEndpoint = "https://api.qrserver.com/v1/create-qr-code/"

var ErrBadPayload = errors.New("pass: not an entry payload")

// Payload is the QR contents: exactly these two fields, nothing else.
type Payload struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

func New(id string) Payload {
	return Payload{ID: id, Type: PayloadType}
}

// Encode renders the payload as its canonical JSON string.
func (p Payload) Encode() string {
	b, _ := json.Marshal(p)
	return string(b)
}

// Parse decodes a scanned frame. Anything that is not a JSON object with
// exactly an id and a matching type tag is rejected; callers treat that as
// a frame to ignore, not an error to surface.
func Parse(raw string) (Payload, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(raw)))
	dec.DisallowUnknownFields()
	var p Payload
	if err := dec.Decode(&p); err != nil {
		return Payload{}, ErrBadPayload
	}
	if p.Type != PayloadType || p.ID == "" {
		return Payload{}, ErrBadPayload
	}
	return p, nil
}

// EntryQRURL builds the image request for an entry pass. The payload JSON
// is percent-encoded so the scanner side re-parses the exact string.
func EntryQRURL(p Payload, size int) string {
	return fmt.Sprintf("%s?size=%dx%d&bgcolor=000&color=FFD700&data=%s",
		qrEndpoint, size, size, url.QueryEscape(p.Encode()))
}

// UPIURI is the payment deep link shown on the wizard's payment step.
func UPIURI(upiID string, amount int) string {
	return fmt.Sprintf("upi://pay?pa=%s&pn=ELIXIR%%20Symposium&am=%d&cu=INR&tn=ELIXIR%%20Reg", upiID, amount)
}

// PaymentQRURL renders the UPI deep link as a scannable image.
func PaymentQRURL(upiID string, amount int) string {
	return fmt.Sprintf("%s?size=250x250&data=%s", qrEndpoint, url.QueryEscape(UPIURI(upiID, amount)))
}
