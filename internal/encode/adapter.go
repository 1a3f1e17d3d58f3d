// Package encode adapts the external QR generation capabilities: PNG and
// SVG image rendering plus a half-block terminal preview. The symbol math
// itself lives in the underlying libraries.
package encode

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mdp/qrterminal/v3"
	qrgen "github.com/skip2/go-qrcode"

	"github.com/vk/qrforge/internal/ctxlog"
)

// MaxPayloadBytes is the upper bound accepted before handing text to the
// symbol encoder. A version-40 QR code stores at most 2953 bytes.
const MaxPayloadBytes = 2953

// DefaultScale is the pixel width of a single QR module in rendered
// images when the request does not override it.
const DefaultScale = 10

// ErrCapacity is returned when text cannot fit in a QR symbol.
var ErrCapacity = errors.New("payload exceeds QR code capacity")

// Request describes one QR rendering operation. An empty PNGPath or
// SVGPath skips that output.
type Request struct {
	Text    string
	PNGPath string
	SVGPath string

	Scale      int
	Level      string // "low", "medium", "high" or "highest"
	Foreground string
	Background string
}

// Adapter renders QR images through skip2/go-qrcode and previews them
// through mdp/qrterminal.
type Adapter struct{}

// NewAdapter creates a new encode adapter.
func NewAdapter() *Adapter {
	return &Adapter{}
}

// Encode renders req.Text into the requested image files and returns the
// paths written. All images are rendered in memory before the first
// write, and a failed write removes any file written earlier in the same
// call, so a failed operation leaves nothing behind.
func (a *Adapter) Encode(ctx context.Context, req Request) ([]string, error) {
	logger := ctxlog.FromContext(ctx)

	if len(req.Text) > MaxPayloadBytes {
		return nil, fmt.Errorf("%w: %d bytes over the %d byte limit", ErrCapacity, len(req.Text), MaxPayloadBytes)
	}

	fg, err := ParseColor(orDefault(req.Foreground, "black"))
	if err != nil {
		return nil, err
	}
	bg, err := ParseColor(orDefault(req.Background, "white"))
	if err != nil {
		return nil, err
	}

	code, err := qrgen.New(req.Text, recoveryLevel(req.Level))
	if err != nil {
		// The library only fails here when the payload cannot be
		// placed in any symbol version at the requested level.
		return nil, fmt.Errorf("%w: %v", ErrCapacity, err)
	}
	code.ForegroundColor = fg
	code.BackgroundColor = bg

	scale := req.Scale
	if scale <= 0 {
		scale = DefaultScale
	}

	type output struct {
		path string
		data []byte
	}
	var outputs []output

	if req.PNGPath != "" {
		// A negative size renders at a fixed number of pixels per module.
		png, err := code.PNG(-scale)
		if err != nil {
			return nil, fmt.Errorf("rendering PNG: %w", err)
		}
		outputs = append(outputs, output{req.PNGPath, png})
	}
	if req.SVGPath != "" {
		outputs = append(outputs, output{req.SVGPath, renderSVG(code.Bitmap(), scale, fg, bg)})
	}

	written := make([]string, 0, len(outputs))
	for _, o := range outputs {
		if err := os.WriteFile(o.path, o.data, 0o644); err != nil {
			// Remove earlier outputs so a failed operation leaves no
			// files behind.
			for _, path := range written {
				if rmErr := os.Remove(path); rmErr != nil {
					logger.Warn("Could not remove partial output.", "path", path, "error", rmErr)
				}
			}
			return nil, fmt.Errorf("writing %s: %w", o.path, err)
		}
		written = append(written, o.path)
		logger.Debug("Image written.", "path", o.path, "bytes", len(o.data))
	}
	return written, nil
}

// Preview writes a half-block unicode rendering of text to w.
func (a *Adapter) Preview(ctx context.Context, w io.Writer, text string) error {
	qrterminal.GenerateWithConfig(text, qrterminal.Config{
		Level:          qrterminal.M,
		Writer:         w,
		HalfBlocks:     true,
		BlackChar:      qrterminal.BLACK_BLACK,
		WhiteChar:      qrterminal.WHITE_WHITE,
		BlackWhiteChar: qrterminal.BLACK_WHITE,
		WhiteBlackChar: qrterminal.WHITE_BLACK,
		QuietZone:      1,
	})
	return nil
}

func recoveryLevel(name string) qrgen.RecoveryLevel {
	switch name {
	case "low":
		return qrgen.Low
	case "high":
		return qrgen.High
	case "highest":
		return qrgen.Highest
	default:
		return qrgen.Medium
	}
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
