package encode

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncode_WritesPNG(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := filepath.Join(t.TempDir(), "site.png")
	req := Request{Text: "https://example.com", PNGPath: path}

	// --- Act ---
	written, err := NewAdapter().Encode(context.Background(), req)

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, []string{path}, written)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err, "output must be a valid PNG")
	bounds := img.Bounds()
	require.Equal(t, bounds.Dx(), bounds.Dy(), "QR images are square")
	require.Greater(t, bounds.Dx(), 0)
}

func TestEncode_ScaleControlsImageSize(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	small := filepath.Join(dir, "small.png")
	large := filepath.Join(dir, "large.png")

	_, err := NewAdapter().Encode(context.Background(), Request{Text: "scale test", PNGPath: small, Scale: 2})
	require.NoError(t, err)
	_, err = NewAdapter().Encode(context.Background(), Request{Text: "scale test", PNGPath: large, Scale: 10})
	require.NoError(t, err)

	smallImg := decodePNG(t, small)
	largeImg := decodePNG(t, large)
	require.Equal(t, 5*smallImg.Dx(), largeImg.Dx(), "same symbol at 5x the module scale")
}

func TestEncode_WritesSVG(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := filepath.Join(t.TempDir(), "site.svg")
	req := Request{Text: "https://example.com", SVGPath: path, Foreground: "navy", Background: "white"}

	// --- Act ---
	written, err := NewAdapter().Encode(context.Background(), req)

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, []string{path}, written)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	svg := string(data)
	require.Contains(t, svg, "<svg xmlns=\"http://www.w3.org/2000/svg\"")
	require.Contains(t, svg, "#000080", "navy modules")
	require.Contains(t, svg, "#ffffff", "white background")
	require.True(t, strings.HasSuffix(strings.TrimSpace(svg), "</svg>"))
}

func TestEncode_BothFormats(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	pngPath := filepath.Join(dir, "out.png")
	svgPath := filepath.Join(dir, "out.svg")

	written, err := NewAdapter().Encode(context.Background(), Request{
		Text:    "both formats",
		PNGPath: pngPath,
		SVGPath: svgPath,
	})

	require.NoError(t, err)
	require.Equal(t, []string{pngPath, svgPath}, written)
	require.FileExists(t, pngPath)
	require.FileExists(t, svgPath)
}

func TestEncode_CapacityExceededLeavesNoFile(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := filepath.Join(t.TempDir(), "too-big.png")
	oversized := strings.Repeat("x", MaxPayloadBytes+1)

	// --- Act ---
	written, err := NewAdapter().Encode(context.Background(), Request{Text: oversized, PNGPath: path})

	// --- Assert ---
	require.ErrorIs(t, err, ErrCapacity)
	require.Empty(t, written)
	require.NoFileExists(t, path)
}

func TestEncode_FailedWriteRemovesEarlierOutputs(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	pngPath := filepath.Join(dir, "out.png")
	// Pointing the SVG into a missing directory makes its write fail
	// after the PNG write has already succeeded.
	svgPath := filepath.Join(dir, "no-such-dir", "out.svg")

	// --- Act ---
	written, err := NewAdapter().Encode(context.Background(), Request{
		Text:    "both formats",
		PNGPath: pngPath,
		SVGPath: svgPath,
	})

	// --- Assert ---
	require.Error(t, err)
	require.Empty(t, written)
	require.NoFileExists(t, pngPath, "a failed operation must leave no files behind")
}

func TestEncode_UnknownColor(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad-color.png")

	_, err := NewAdapter().Encode(context.Background(), Request{Text: "hi", PNGPath: path, Foreground: "chartreuse"})

	require.ErrorIs(t, err, ErrBadColor)
	require.NoFileExists(t, path)
}

func TestPreview_WritesHalfBlocks(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	err := NewAdapter().Preview(context.Background(), &out, "preview me")

	require.NoError(t, err)
	require.NotEmpty(t, out.String())
	require.Contains(t, out.String(), "█")
}

func TestParseColor(t *testing.T) {
	t.Parallel()

	c, err := ParseColor("DarkGreen")
	require.NoError(t, err)
	require.Equal(t, uint8(100), c.G)

	_, err = ParseColor("mauve")
	require.ErrorIs(t, err, ErrBadColor)
}

func decodePNG(t *testing.T, path string) image.Rectangle {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	return img.Bounds()
}
