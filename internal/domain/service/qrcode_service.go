// Package service defines interfaces for domain services.
package service

// QRCodeService generates QR code images. Used to embed a verification code
// in issued certificates.
type QRCodeService interface {
	// GeneratePNG encodes the content into a PNG image.
	GeneratePNG(content string) ([]byte, error)
}
