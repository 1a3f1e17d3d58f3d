// Package fsutil provides file system helpers for resolving and preparing
// output paths.
package fsutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ErrDirCreate is returned when the output directory cannot be created.
var ErrDirCreate = errors.New("cannot create output directory")

// EnsureDir makes sure dir exists, creating it and any missing parents.
// It is a no-op when the directory is already present.
func EnsureDir(dir string) error {
	if dir == "" {
		return fmt.Errorf("%w: empty directory name", ErrDirCreate)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrDirCreate, dir, err)
	}
	return nil
}

// TimestampName formats t into a base name that is legal on every common
// filesystem. Colons are never emitted; Windows and some network mounts
// reject them in file names.
func TimestampName(t time.Time) string {
	return t.Format("2006-01-02_15-04-05")
}

// WiFiName builds a base name for a generated WiFi QR code.
func WiFiName(ssid string, t time.Time) string {
	return "wifi_" + Sanitize(ssid) + "_" + t.Format("20060102_150405")
}

// Sanitize replaces characters that are illegal in file names on common
// filesystems with '-' and trims trailing dots and spaces, which Windows
// rejects. A name with nothing left after sanitizing falls back to "qr".
func Sanitize(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	kept := 0
	for _, r := range name {
		switch {
		case r < 0x20:
			b.WriteByte('-')
		case strings.ContainsRune(`<>:"/\|?*`, r):
			b.WriteByte('-')
		default:
			b.WriteRune(r)
			kept++
		}
	}
	cleaned := strings.TrimRight(b.String(), ". ")
	if cleaned == "" || kept == 0 {
		return "qr"
	}
	return cleaned
}

// ResolvePath joins dir with a sanitized base name carrying exactly one
// ext suffix. A base that already ends in ext is accepted unchanged, so
// the suffix is never doubled. ext must include the leading dot.
func ResolvePath(dir, base, ext string) string {
	cleaned := Sanitize(base)
	if !strings.HasSuffix(strings.ToLower(cleaned), strings.ToLower(ext)) {
		cleaned += ext
	}
	return filepath.Join(dir, cleaned)
}
