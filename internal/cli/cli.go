package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/qrforge/internal/app"
	"github.com/vk/qrforge/internal/encode"
	"github.com/vk/qrforge/internal/payload"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated
// app.Config, a boolean indicating if the program should exit cleanly,
// or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("qrforge", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
QR Forge - Generate and decode QR codes from the terminal.

Usage:
  qrforge [options]

Running with no mode flag starts an interactive session.

Options:
`)
		flagSet.PrintDefaults()
		fmt.Fprintf(output, `
Examples:
  qrforge -i "Hello World"                    Basic QR code
  qrforge -i "Hello" -o my_qr -f svg          SVG output
  qrforge -i "Hello" -fg red -bg yellow       Colored QR code
  qrforge -wifi -ssid MyNetwork -pass secret  WiFi QR code
  qrforge -d qrcodes/my_qr.png                Decode an image

Available colors: %s
`, strings.Join(encode.ColorNames(), ", "))
	}

	textFlag := flagSet.String("i", "", "Text to encode into a QR code.")
	outFlag := flagSet.String("o", "", "Output base name; the extension is added when missing.")
	decodeFlag := flagSet.String("d", "", "Path to an image to decode.")
	formatFlag := flagSet.String("f", "", "Output format: 'png', 'svg' or 'both'.")
	fgFlag := flagSet.String("fg", "", "Foreground color name.")
	bgFlag := flagSet.String("bg", "", "Background color name.")
	wifiFlag := flagSet.Bool("wifi", false, "Generate a WiFi network QR code.")
	ssidFlag := flagSet.String("ssid", "", "WiFi network name (with -wifi).")
	passFlag := flagSet.String("pass", "", "WiFi password (with -wifi).")
	securityFlag := flagSet.String("security", "WPA", "WiFi security: 'WPA', 'WEP' or 'nopass' (with -wifi).")
	hiddenFlag := flagSet.Bool("hidden", false, "Mark the WiFi network as hidden (with -wifi).")
	noPreviewFlag := flagSet.Bool("no-preview", false, "Skip the terminal preview after encoding.")
	configFlag := flagSet.String("config", "qrforge.hcl", "Path to the defaults file.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	// Track flags the user actually set, so an explicit -i "" is an
	// encode request (and a later usage error) rather than a silent
	// fall-through to interactive mode.
	seen := map[string]bool{}
	flagSet.Visit(func(f *flag.Flag) { seen[f.Name] = true })

	if seen["i"] && seen["d"] {
		return nil, false, &ExitError{Code: 2, Message: "the -i and -d flags are mutually exclusive"}
	}
	if *wifiFlag && (seen["i"] || seen["d"]) {
		return nil, false, &ExitError{Code: 2, Message: "the -wifi flag cannot be combined with -i or -d"}
	}

	switch strings.ToLower(*formatFlag) {
	case "", "png", "svg", "both":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid format: must be 'png', 'svg' or 'both'"}
	}
	for _, name := range []string{*fgFlag, *bgFlag} {
		if name == "" {
			continue
		}
		if _, err := encode.ParseColor(name); err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	mode := app.ModeInteractive
	switch {
	case seen["d"]:
		mode = app.ModeDecode
	case *wifiFlag:
		mode = app.ModeWiFi
	case seen["i"]:
		mode = app.ModeEncode
	}

	config, err := app.NewConfig(app.Config{
		Mode:       mode,
		Text:       *textFlag,
		OutputName: *outFlag,
		DecodePath: *decodeFlag,
		WiFi: payload.WiFi{
			SSID:     *ssidFlag,
			Password: *passFlag,
			Security: *securityFlag,
			Hidden:   *hiddenFlag,
		},
		Format:     strings.ToLower(*formatFlag),
		Foreground: strings.ToLower(*fgFlag),
		Background: strings.ToLower(*bgFlag),
		NoPreview:  *noPreviewFlag,
		ConfigPath: *configFlag,
		LogFormat:  logFormat,
		LogLevel:   logLevel,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "mode", mode)
	return config, false, nil
}
