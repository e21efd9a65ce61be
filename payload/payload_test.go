package payload

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tsawler/svgfig/format"
)

// makePNG encodes a solid-color PNG of the given size.
func makePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 0xff, A: 0xff})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encoding test image: %v", err)
	}
	return buf.Bytes()
}

// decodePayload strips the data-URI prefix and decodes the base64 body.
func decodePayload(t *testing.T, p Encoded) []byte {
	t.Helper()
	s := string(p)
	if !strings.HasPrefix(s, "data:image/png;base64,") {
		t.Fatalf("payload has wrong prefix: %.40q", s)
	}
	data, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(s, "data:image/png;base64,"))
	if err != nil {
		t.Fatalf("payload body is not valid base64: %v", err)
	}
	return data
}

func TestEncodeBytes(t *testing.T) {
	src := makePNG(t, 4, 4)
	p, err := EncodeBytes("test.png", src)
	if err != nil {
		t.Fatalf("EncodeBytes: %v", err)
	}
	if !bytes.Equal(decodePayload(t, p), src) {
		t.Error("payload body does not round-trip to the source bytes")
	}
}

func TestEncodeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fig.png")
	src := makePNG(t, 4, 4)
	if err := os.WriteFile(path, src, 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := EncodeFile(path)
	if err != nil {
		t.Fatalf("EncodeFile: %v", err)
	}
	if !bytes.Equal(decodePayload(t, p), src) {
		t.Error("payload body does not round-trip to the file bytes")
	}
}

func TestEncodeFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.png")
	_, err := EncodeFile(path)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error %v does not wrap os.ErrNotExist", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error %q does not name the path", err)
	}
}

func TestEncodeRejectsNonImages(t *testing.T) {
	_, err := EncodeBytes("junk.bin", []byte("definitely not an image"))
	if !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("error %v does not wrap ErrUnknownFormat", err)
	}
	var ferr *FormatError
	if !errors.As(err, &ferr) {
		t.Fatalf("error %v is not a *FormatError", err)
	}
	if ferr.Format != format.Unknown {
		t.Errorf("FormatError.Format = %v, want Unknown", ferr.Format)
	}
}

func TestEncodeRejectsNonPNG(t *testing.T) {
	jpeg := []byte{0xff, 0xd8, 0xff, 0xe0, 0x00, 0x10, 'J', 'F', 'I', 'F'}
	_, err := EncodeBytes("photo.jpg", jpeg)
	if !errors.Is(err, ErrNotPNG) {
		t.Fatalf("error %v does not wrap ErrNotPNG", err)
	}
	var ferr *FormatError
	if !errors.As(err, &ferr) {
		t.Fatalf("error %v is not a *FormatError", err)
	}
	if ferr.Format != format.JPEG {
		t.Errorf("FormatError.Format = %v, want JPEG", ferr.Format)
	}
	if !strings.Contains(ferr.Error(), "photo.jpg") {
		t.Errorf("error %q does not name the source", ferr.Error())
	}
}

func TestWithMaxDimensions(t *testing.T) {
	src := makePNG(t, 10, 10)

	t.Run("downscales oversized images", func(t *testing.T) {
		p, err := EncodeBytes("big.png", src, WithMaxDimensions(4, 4))
		if err != nil {
			t.Fatalf("EncodeBytes: %v", err)
		}
		img, err := png.Decode(bytes.NewReader(decodePayload(t, p)))
		if err != nil {
			t.Fatalf("decoding payload: %v", err)
		}
		b := img.Bounds()
		if b.Dx() != 4 || b.Dy() != 4 {
			t.Errorf("embedded image is %dx%d, want 4x4", b.Dx(), b.Dy())
		}
	})

	t.Run("keeps aspect ratio", func(t *testing.T) {
		wide := makePNG(t, 20, 10)
		p, err := EncodeBytes("wide.png", wide, WithMaxDimensions(10, 10))
		if err != nil {
			t.Fatalf("EncodeBytes: %v", err)
		}
		img, err := png.Decode(bytes.NewReader(decodePayload(t, p)))
		if err != nil {
			t.Fatalf("decoding payload: %v", err)
		}
		b := img.Bounds()
		if b.Dx() != 10 || b.Dy() != 5 {
			t.Errorf("embedded image is %dx%d, want 10x5", b.Dx(), b.Dy())
		}
	})

	t.Run("leaves small images untouched", func(t *testing.T) {
		p, err := EncodeBytes("small.png", src, WithMaxDimensions(100, 100))
		if err != nil {
			t.Fatalf("EncodeBytes: %v", err)
		}
		if !bytes.Equal(decodePayload(t, p), src) {
			t.Error("within-bounds image was re-encoded")
		}
	})
}
