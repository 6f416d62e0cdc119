package client

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
)

// QRClient decodes QR codes from policy document images. Insurers print a
// QR sticker carrying the policy number on newer schedules; it is a far
// more reliable source than OCR when present.
type QRClient struct{}

func NewQRClient() *QRClient {
	return &QRClient{}
}

// DecodeFile returns the text payload of the first QR code found in the
// image at filePath.
func (qc *QRClient) DecodeFile(filePath string) (string, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	return qc.Decode(img)
}

// Decode scans a decoded image for a QR code and returns its payload.
func (qc *QRClient) Decode(img image.Image) (string, error) {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", fmt.Errorf("failed to binarize image: %w", err)
	}

	result, err := qrcode.NewQRCodeReader().Decode(bmp, nil)
	if err != nil {
		return "", fmt.Errorf("no QR code detected: %w", err)
	}

	return result.GetText(), nil
}
