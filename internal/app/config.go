package app

import (
	"errors"
	"fmt"

	"github.com/vk/qrforge/internal/payload"
)

// Mode selects which operation a single invocation performs.
type Mode int

const (
	ModeInteractive Mode = iota
	ModeEncode
	ModeDecode
	ModeWiFi
)

// Config holds everything one invocation needs to run. Empty string
// fields fall back to the loaded defaults.
type Config struct {
	Mode Mode

	// Text is the payload to encode (ModeEncode).
	Text string

	// OutputName is an optional base name for generated files.
	OutputName string

	// DecodePath is the image to decode (ModeDecode).
	DecodePath string

	// WiFi carries the network descriptor (ModeWiFi).
	WiFi payload.WiFi

	Format     string
	Foreground string
	Background string
	NoPreview  bool

	ConfigPath string
	LogFormat  string
	LogLevel   string
}

// NewConfig validates mode-specific requirements and returns the config.
func NewConfig(cfg Config) (*Config, error) {
	switch cfg.Mode {
	case ModeDecode:
		if cfg.DecodePath == "" {
			return nil, errors.New("decode mode requires an image path")
		}
	case ModeWiFi:
		if cfg.WiFi.SSID == "" {
			return nil, errors.New("WiFi mode requires a network name (-ssid)")
		}
		switch cfg.WiFi.Security {
		case "", "WPA", "WEP", "nopass":
		default:
			return nil, fmt.Errorf("invalid WiFi security %q: must be 'WPA', 'WEP' or 'nopass'", cfg.WiFi.Security)
		}
	}
	return &cfg, nil
}
