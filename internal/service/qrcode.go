package service

import (
	"net/url"
	"strings"

	"github.com/skip2/go-qrcode"
)

// QRGenerator renders the QR code printed on an order receipt.
type QRGenerator interface {
	Generate(orderNumber string) ([]byte, error)
}

// DefaultQRGenerator encodes a link to the order lookup endpoint as a PNG.
type DefaultQRGenerator struct {
	BaseURL string
	Size    int
}

func (g DefaultQRGenerator) Generate(orderNumber string) ([]byte, error) {
	size := g.Size
	if size == 0 {
		size = 256
	}
	return qrcode.Encode(g.LookupURL(orderNumber), qrcode.Medium, size)
}

// LookupURL is the address encoded in the QR code.
func (g DefaultQRGenerator) LookupURL(orderNumber string) string {
	return strings.TrimRight(g.BaseURL, "/") + "/orders/order-number/" + url.PathEscape(orderNumber)
}
