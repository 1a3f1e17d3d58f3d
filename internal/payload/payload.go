// Package payload builds and inspects the text payloads carried by QR
// codes: WiFi network descriptors in the WIFI:...;; convention, and a
// lightweight classification of decoded content.
package payload

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a decoded payload by its leading scheme.
type Kind int

const (
	KindText Kind = iota
	KindURL
	KindWiFi
	KindTel
	KindEmail
)

// String returns a human-readable label for the payload kind.
func (k Kind) String() string {
	switch k {
	case KindURL:
		return "URL"
	case KindWiFi:
		return "WiFi network"
	case KindTel:
		return "phone number"
	case KindEmail:
		return "email address"
	default:
		return "plain text"
	}
}

// DetectKind inspects the leading bytes of a decoded payload.
func DetectKind(s string) Kind {
	switch {
	case strings.HasPrefix(s, "WIFI:"):
		return KindWiFi
	case strings.HasPrefix(s, "http://"), strings.HasPrefix(s, "https://"):
		return KindURL
	case strings.HasPrefix(s, "tel:"):
		return KindTel
	case strings.HasPrefix(s, "mailto:"):
		return KindEmail
	default:
		return KindText
	}
}

// ErrNotWiFi is returned when a payload does not carry the WIFI: prefix.
var ErrNotWiFi = errors.New("payload is not a WiFi descriptor")

// WiFi describes a network join payload per the de facto WiFi QR
// convention: WIFI:T:<security>;S:<ssid>;P:<password>;H:<hidden>;;
type WiFi struct {
	SSID     string
	Password string
	Security string // "WPA", "WEP" or "nopass"
	Hidden   bool
}

// Encode renders the descriptor into its wire form. The metacharacters
// \ ; , : " are backslash-escaped inside field values.
func (w WiFi) Encode() string {
	security := w.Security
	if security == "" {
		security = "WPA"
	}
	return fmt.Sprintf("WIFI:T:%s;S:%s;P:%s;H:%t;;",
		escape(security), escape(w.SSID), escape(w.Password), w.Hidden)
}

// ParseWiFi parses a decoded WIFI: payload back into its fields.
func ParseWiFi(s string) (WiFi, error) {
	if !strings.HasPrefix(s, "WIFI:") {
		return WiFi{}, ErrNotWiFi
	}
	var w WiFi
	for _, field := range splitUnescaped(strings.TrimPrefix(s, "WIFI:"), ';') {
		key, value, ok := strings.Cut(field, ":")
		if !ok {
			continue
		}
		value = unescape(value)
		switch key {
		case "S":
			w.SSID = value
		case "P":
			w.Password = value
		case "T":
			w.Security = value
		case "H":
			w.Hidden = strings.EqualFold(value, "true")
		}
	}
	return w, nil
}

func escape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if strings.ContainsRune(`\;,:"`, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func unescape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	escaped := false
	for _, r := range s {
		if !escaped && r == '\\' {
			escaped = true
			continue
		}
		escaped = false
		b.WriteRune(r)
	}
	return b.String()
}

// splitUnescaped splits s on sep, honoring backslash escapes.
func splitUnescaped(s string, sep rune) []string {
	var parts []string
	var b strings.Builder
	escaped := false
	for _, r := range s {
		switch {
		case escaped:
			b.WriteRune(r)
			escaped = false
		case r == '\\':
			b.WriteByte('\\')
			escaped = true
		case r == sep:
			parts = append(parts, b.String())
			b.Reset()
		default:
			b.WriteRune(r)
		}
	}
	if b.Len() > 0 {
		parts = append(parts, b.String())
	}
	return parts
}
