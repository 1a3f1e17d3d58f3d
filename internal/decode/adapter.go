// Package decode adapts the external QR image decoding capability. Image
// loading goes through the imaging library; symbol detection and payload
// extraction go through the gozxing multi-QR reader.
package decode

import (
	"context"
	"errors"
	"fmt"

	"github.com/disintegration/imaging"
	"github.com/makiuchi-d/gozxing"
	multiqr "github.com/makiuchi-d/gozxing/multi/qrcode"

	"github.com/vk/qrforge/internal/ctxlog"
)

var (
	// ErrFileNotFound marks a decode path that does not exist or is not
	// a regular file. The orchestrator checks this before the adapter
	// ever runs.
	ErrFileNotFound = errors.New("image file not found")

	// ErrUnreadableImage marks a file that exists but cannot be loaded
	// or scanned as a raster image.
	ErrUnreadableImage = errors.New("unreadable image")

	// ErrNoQRFound marks a readable image that carries no QR symbol.
	ErrNoQRFound = errors.New("no QR code detected")
)

// Adapter extracts QR payloads from raster images.
type Adapter struct{}

// NewAdapter creates a new decode adapter.
func NewAdapter() *Adapter {
	return &Adapter{}
}

// Decode loads the image at path and returns every QR payload found in
// it. A readable image with no symbol returns ErrNoQRFound.
func (a *Adapter) Decode(ctx context.Context, path string) ([]string, error) {
	logger := ctxlog.FromContext(ctx)

	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadableImage, path, err)
	}

	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadableImage, path, err)
	}

	results, err := multiqr.NewQRCodeMultiReader().DecodeMultiple(bmp, nil)
	if err != nil {
		if _, ok := err.(gozxing.NotFoundException); ok {
			return nil, fmt.Errorf("%w in %s", ErrNoQRFound, path)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadableImage, path, err)
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoQRFound, path)
	}

	texts := make([]string, 0, len(results))
	for _, r := range results {
		texts = append(texts, r.GetText())
	}
	logger.Debug("Symbols decoded.", "path", path, "count", len(texts))
	return texts, nil
}
