package qr

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// Encode converts text into a square QR module matrix at the minimum version
// that fits, using error-correction level Low. The quiet zone is not
// included; callers add their own border when rasterizing.
func Encode(text string) ([][]bool, error) {
	q, err := qrcode.New(text, qrcode.Low)
	if err != nil {
		return nil, fmt.Errorf("qr encode %q: %w", text, err)
	}

	q.DisableBorder = true
	return q.Bitmap(), nil
}
