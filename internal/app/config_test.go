package app

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/qrforge/internal/payload"
)

func TestNewConfig_DecodeRequiresPath(t *testing.T) {
	t.Parallel()

	_, err := NewConfig(Config{Mode: ModeDecode})

	require.Error(t, err)
	require.Contains(t, err.Error(), "image path")
}

func TestNewConfig_WiFiRequiresSSID(t *testing.T) {
	t.Parallel()

	_, err := NewConfig(Config{Mode: ModeWiFi})

	require.Error(t, err)
	require.Contains(t, err.Error(), "-ssid")
}

func TestNewConfig_WiFiSecurityEnum(t *testing.T) {
	t.Parallel()

	_, err := NewConfig(Config{Mode: ModeWiFi, WiFi: payload.WiFi{SSID: "net", Security: "WPA3-Enterprise"}})
	require.Error(t, err)

	cfg, err := NewConfig(Config{Mode: ModeWiFi, WiFi: payload.WiFi{SSID: "net", Security: "nopass"}})
	require.NoError(t, err)
	require.Equal(t, ModeWiFi, cfg.Mode)
}

func TestNewConfig_EncodeAndInteractivePass(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig(Config{Mode: ModeEncode, Text: "hello"})
	require.NoError(t, err)
	require.Equal(t, "hello", cfg.Text)

	cfg, err = NewConfig(Config{Mode: ModeInteractive})
	require.NoError(t, err)
	require.Equal(t, ModeInteractive, cfg.Mode)
}
