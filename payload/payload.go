// Package payload encodes raster images into embeddable SVG payloads.
//
// A payload is the value of an xlink:href attribute on an <image> element:
// a data-URI prefix followed by the base64-encoded image bytes. Only PNG
// sources are accepted, matching what drawing editors embed; other
// recognized raster formats are rejected with a distinct error from truly
// unrecognized data.
package payload

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"strings"

	"golang.org/x/image/draw"

	"github.com/tsawler/svgfig/format"
)

// Encoded is an opaque, already-encoded embeddable image string. The
// document model inserts it verbatim as an attribute value and never
// inspects or re-decodes it.
type Encoded string

const pngPrefix = "data:image/png;base64,"

var (
	// ErrUnknownFormat reports data whose byte signature matches no
	// recognized raster format.
	ErrUnknownFormat = errors.New("payload: unrecognized image format")
	// ErrNotPNG reports a recognized raster format other than PNG.
	ErrNotPNG = errors.New("payload: image is not PNG encoded")
)

// FormatError reports a source whose contents cannot be embedded. It
// wraps ErrUnknownFormat or ErrNotPNG.
type FormatError struct {
	Path   string
	Format format.Format // Unknown when the signature was unrecognized
	Err    error
}

func (e *FormatError) Error() string {
	if e.Format == format.Unknown {
		return fmt.Sprintf("payload: %s: unrecognized image format", e.Path)
	}
	return fmt.Sprintf("payload: %s: %s image cannot be embedded, only PNG is supported", e.Path, e.Format)
}

func (e *FormatError) Unwrap() error { return e.Err }

// Option configures payload encoding.
type Option func(*config)

type config struct {
	maxWidth  int
	maxHeight int
}

// WithMaxDimensions caps the pixel dimensions of the embedded image.
// Sources larger than w by h are downscaled preserving aspect ratio and
// re-encoded before embedding, which keeps templated documents small. A
// zero value leaves the corresponding axis unbounded.
func WithMaxDimensions(w, h int) Option {
	return func(c *config) {
		c.maxWidth = w
		c.maxHeight = h
	}
}

// EncodeFile reads the PNG file at path and produces its embeddable
// payload.
func EncodeFile(path string, opts ...Option) (Encoded, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("payload: opening %s: %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("payload: reading %s: %w", path, err)
	}
	return encode(path, data, opts)
}

// EncodeBytes produces the payload for in-memory PNG data. name appears in
// diagnostics only.
func EncodeBytes(name string, data []byte, opts ...Option) (Encoded, error) {
	return encode(name, data, opts)
}

func encode(name string, data []byte, opts []Option) (Encoded, error) {
	var cfg config
	for _, o := range opts {
		o(&cfg)
	}

	switch f := format.DetectFromMagic(data); f {
	case format.PNG:
	case format.Unknown:
		return "", &FormatError{Path: name, Format: f, Err: ErrUnknownFormat}
	default:
		return "", &FormatError{Path: name, Format: f, Err: ErrNotPNG}
	}

	if cfg.maxWidth > 0 || cfg.maxHeight > 0 {
		scaled, err := downscale(data, cfg)
		if err != nil {
			return "", fmt.Errorf("payload: resizing %s: %w", name, err)
		}
		data = scaled
	}

	var b strings.Builder
	b.Grow(len(pngPrefix) + base64.StdEncoding.EncodedLen(len(data)))
	b.WriteString(pngPrefix)
	b.WriteString(base64.StdEncoding.EncodeToString(data))
	return Encoded(b.String()), nil
}

// downscale decodes the PNG, scales it to fit within the configured
// bounds, and re-encodes it. Sources already within bounds are embedded
// unchanged.
func downscale(data []byte, cfg config) ([]byte, error) {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	scale := 1.0
	if cfg.maxWidth > 0 && w > cfg.maxWidth {
		scale = float64(cfg.maxWidth) / float64(w)
	}
	if cfg.maxHeight > 0 && h > cfg.maxHeight {
		if s := float64(cfg.maxHeight) / float64(h); s < scale {
			scale = s
		}
	}
	if scale >= 1 {
		return data, nil
	}

	dw := max(1, int(float64(w)*scale))
	dh := max(1, int(float64(h)*scale))
	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
