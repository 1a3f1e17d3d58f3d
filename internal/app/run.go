package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/vk/qrforge/internal/ctxlog"
	"github.com/vk/qrforge/internal/decode"
	"github.com/vk/qrforge/internal/encode"
	"github.com/vk/qrforge/internal/fsutil"
	"github.com/vk/qrforge/internal/payload"
)

// Run executes exactly one operation for this invocation.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.presenter.Banner()

	switch a.cfg.Mode {
	case ModeEncode:
		return a.runEncode(ctx, a.cfg.Text, a.cfg.OutputName)
	case ModeWiFi:
		return a.runWiFi(ctx, a.cfg.WiFi, a.cfg.OutputName)
	case ModeDecode:
		return a.runDecode(ctx, a.cfg.DecodePath)
	default:
		return a.runInteractive(ctx)
	}
}

// runEncode resolves the output paths and hands text to the encoder.
func (a *App) runEncode(ctx context.Context, text, baseName string) error {
	if strings.TrimSpace(text) == "" {
		a.presenter.Errorf("Input text cannot be empty")
		return fmt.Errorf("%w: input text cannot be empty", ErrUsage)
	}

	if err := fsutil.EnsureDir(a.defaults.OutputDir); err != nil {
		a.presenter.Errorf("Cannot create output directory %s", a.defaults.OutputDir)
		return err
	}

	if baseName == "" {
		baseName = fsutil.TimestampName(time.Now())
	}

	req := encode.Request{
		Text:       text,
		Scale:      a.defaults.Scale,
		Level:      a.defaults.Level,
		Foreground: a.foreground(),
		Background: a.background(),
	}
	switch a.format() {
	case "svg":
		req.SVGPath = fsutil.ResolvePath(a.defaults.OutputDir, baseName, ".svg")
	case "both":
		req.PNGPath = fsutil.ResolvePath(a.defaults.OutputDir, baseName, ".png")
		req.SVGPath = fsutil.ResolvePath(a.defaults.OutputDir, baseName, ".svg")
	default:
		req.PNGPath = fsutil.ResolvePath(a.defaults.OutputDir, baseName, ".png")
	}

	a.logger.Debug("Encoding payload.", "bytes", len(text), "format", a.format())
	written, err := a.encoder.Encode(ctx, req)
	if err != nil {
		a.presenter.Errorf("Error generating QR code: %v", err)
		return err
	}
	for _, path := range written {
		a.presenter.Saved(path)
	}

	if !a.cfg.NoPreview && a.defaults.Preview {
		if err := a.encoder.Preview(ctx, a.outW, text); err != nil {
			a.logger.Warn("Terminal preview failed.", "error", err)
		}
	}

	a.presenter.Successf("QR code generated successfully")
	return nil
}

// runWiFi builds the network payload and encodes it under a WiFi name.
func (a *App) runWiFi(ctx context.Context, network payload.WiFi, baseName string) error {
	a.presenter.Infof("📶 Generating WiFi QR code...")
	a.presenter.Field("SSID", network.SSID)
	a.presenter.Field("Security", network.Security)
	a.presenter.Field("Hidden", fmt.Sprintf("%t", network.Hidden))

	if baseName == "" {
		baseName = fsutil.WiFiName(network.SSID, time.Now())
	}
	return a.runEncode(ctx, network.Encode(), baseName)
}

// runDecode validates the path, scans the image and reports every
// payload found, with a kind-specific notice per payload.
func (a *App) runDecode(ctx context.Context, path string) error {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		a.presenter.Errorf("File not found: %s", path)
		return fmt.Errorf("%w: %s", decode.ErrFileNotFound, path)
	}

	a.presenter.Infof("🔍 Scanning %s...", path)
	texts, err := a.decoder.Decode(ctx, path)
	if err != nil {
		// A symbol-free image is an expected outcome, not a failure of
		// the tool; it still exits non-zero.
		if errors.Is(err, decode.ErrNoQRFound) {
			a.presenter.Infof("No QR code found in %s", path)
		} else {
			a.presenter.Errorf("%v", err)
		}
		return err
	}

	a.presenter.Successf("QR code decoded successfully")
	for _, text := range texts {
		a.presenter.Result(text)
		a.describePayload(text)
	}
	return nil
}

// describePayload prints a notice for recognized payload schemes.
func (a *App) describePayload(text string) {
	kind := payload.DetectKind(text)
	switch kind {
	case payload.KindWiFi:
		network, err := payload.ParseWiFi(text)
		if err != nil {
			return
		}
		a.presenter.Infof("📶 WiFi network detected:")
		a.presenter.Field("SSID", network.SSID)
		a.presenter.Field("Password", network.Password)
		a.presenter.Field("Security", network.Security)
		a.presenter.Field("Hidden", fmt.Sprintf("%t", network.Hidden))
	case payload.KindText:
		// Plain text needs no notice.
	default:
		a.presenter.Infof("%s detected", kind)
	}
}
