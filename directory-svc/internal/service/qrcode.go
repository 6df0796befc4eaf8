package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Generate(bookingID int) ([]byte, error) {
	qrData := fmt.Sprintf("%s/bookings/%d/confirmation", g.BaseURL, bookingID)
	return qrcode.Encode(qrData, qrcode.Medium, 256)
}
