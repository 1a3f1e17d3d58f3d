package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/qrforge/internal/payload"
)

// runInteractive prompts for a mode choice and its payload, then runs
// the chosen flow. Reads block on stdin until the user answers.
func (a *App) runInteractive(ctx context.Context) error {
	a.presenter.Infof("Choose an option:")
	fmt.Fprintln(a.outW, "1. Generate text QR code")
	fmt.Fprintln(a.outW, "2. Generate WiFi QR code")
	fmt.Fprintln(a.outW, "3. Decode QR code from file")

	choice, err := a.prompt("\nEnter choice (1-3): ")
	if err != nil {
		return err
	}

	switch choice {
	case "1":
		text, err := a.prompt("Enter text to convert: ")
		if err != nil {
			return err
		}
		return a.runEncode(ctx, text, "")

	case "2":
		network, err := a.promptWiFi()
		if err != nil {
			return err
		}
		return a.runWiFi(ctx, network, "")

	case "3":
		path, err := a.prompt("Enter path to QR code image: ")
		if err != nil {
			return err
		}
		return a.runDecode(ctx, path)

	default:
		a.presenter.Errorf("Invalid choice")
		return fmt.Errorf("%w: invalid choice %q", ErrUsage, choice)
	}
}

func (a *App) promptWiFi() (payload.WiFi, error) {
	ssid, err := a.prompt("WiFi network name (SSID): ")
	if err != nil {
		return payload.WiFi{}, err
	}
	if ssid == "" {
		a.presenter.Errorf("SSID cannot be empty")
		return payload.WiFi{}, fmt.Errorf("%w: SSID cannot be empty", ErrUsage)
	}
	password, err := a.prompt("WiFi password: ")
	if err != nil {
		return payload.WiFi{}, err
	}
	security, err := a.prompt("Security type (WPA/WEP/nopass) [WPA]: ")
	if err != nil {
		return payload.WiFi{}, err
	}
	if security == "" {
		security = "WPA"
	}
	hidden, err := a.prompt("Hidden network? (y/n) [n]: ")
	if err != nil {
		return payload.WiFi{}, err
	}

	return payload.WiFi{
		SSID:     ssid,
		Password: password,
		Security: security,
		Hidden:   strings.HasPrefix(strings.ToLower(hidden), "y"),
	}, nil
}

// prompt prints label and reads one trimmed line from stdin. EOF before
// a newline still returns whatever was typed.
func (a *App) prompt(label string) (string, error) {
	fmt.Fprint(a.outW, label)
	line, err := a.inR.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
