package app

import (
	"context"
	"io"

	"github.com/vk/qrforge/internal/encode"
)

// Encoder is the narrow contract to the external QR generation
// capability. Implemented by the encode package.
type Encoder interface {
	// Encode renders the request into image files and returns the paths
	// written. Nothing is written when any rendering step fails.
	Encode(ctx context.Context, req encode.Request) ([]string, error)

	// Preview writes a terminal rendering of text to w.
	Preview(ctx context.Context, w io.Writer, text string) error
}

// Decoder is the narrow contract to the external QR image decoding
// capability. Implemented by the decode package.
type Decoder interface {
	// Decode returns every QR payload found in the image at path.
	Decode(ctx context.Context, path string) ([]string, error)
}
