package service

import (
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(foodID int) ([]byte, error)
}

// MenuCardQRGenerator encodes the public page of a food as a PNG QR code.
type MenuCardQRGenerator struct {
	BaseURL string
}

func (g MenuCardQRGenerator) Link(foodID int) string {
	return fmt.Sprintf("%s/foods/%d", strings.TrimRight(g.BaseURL, "/"), foodID)
}

func (g MenuCardQRGenerator) Generate(foodID int) ([]byte, error) {
	return qrcode.Encode(g.Link(foodID), qrcode.Medium, 256)
}
