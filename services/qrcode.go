package services

import (
	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(data string) ([]byte, error)
}

// DefaultQRGenerator แปลง pickup code เป็น PNG ให้ลูกค้าโชว์หน้าร้าน
type DefaultQRGenerator struct {
	Size int
}

func (g DefaultQRGenerator) Generate(data string) ([]byte, error) {
	size := g.Size
	if size <= 0 {
		size = 256
	}
	return qrcode.Encode(data, qrcode.Medium, size)
}
