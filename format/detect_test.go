package format

import (
	"testing"
)

func TestFormat_String(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{PNG, "PNG"},
		{JPEG, "JPEG"},
		{GIF, "GIF"},
		{BMP, "BMP"},
		{TIFF, "TIFF"},
		{WebP, "WebP"},
		{Unknown, "Unknown"},
		{Format(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("Format(%d).String() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestFormat_Extension(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{PNG, ".png"},
		{JPEG, ".jpg"},
		{GIF, ".gif"},
		{BMP, ".bmp"},
		{TIFF, ".tiff"},
		{WebP, ".webp"},
		{Unknown, ""},
	}

	for _, tt := range tests {
		if got := tt.format.Extension(); got != tt.want {
			t.Errorf("Format(%d).Extension() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestFormat_MIME(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{PNG, "image/png"},
		{JPEG, "image/jpeg"},
		{GIF, "image/gif"},
		{BMP, "image/bmp"},
		{TIFF, "image/tiff"},
		{WebP, "image/webp"},
		{Unknown, ""},
	}

	for _, tt := range tests {
		if got := tt.format.MIME(); got != tt.want {
			t.Errorf("Format(%d).MIME() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
	}{
		{"plot.png", PNG},
		{"PHOTO.PNG", PNG},
		{"photo.jpg", JPEG},
		{"photo.jpeg", JPEG},
		{"anim.gif", GIF},
		{"scan.bmp", BMP},
		{"scan.tif", TIFF},
		{"scan.tiff", TIFF},
		{"pic.webp", WebP},
		{"figure.svg", Unknown},
		{"noextension", Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			if got := Detect(tt.filename); got != tt.want {
				t.Errorf("Detect(%q) = %v, want %v", tt.filename, got, tt.want)
			}
		})
	}
}

func TestDetectFromMagic(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Format
	}{
		{"png", []byte("\x89PNG\r\n\x1a\nrest"), PNG},
		{"jpeg", []byte{0xff, 0xd8, 0xff, 0xe0, 0x00, 0x10}, JPEG},
		{"gif87a", []byte("GIF87a......"), GIF},
		{"gif89a", []byte("GIF89a......"), GIF},
		{"bmp", []byte("BM\x36\x00\x00\x00"), BMP},
		{"tiff little endian", []byte("II*\x00....."), TIFF},
		{"tiff big endian", []byte("MM\x00*....."), TIFF},
		{"webp", []byte("RIFF\x24\x00\x00\x00WEBPVP8 "), WebP},
		{"riff but not webp", []byte("RIFF\x24\x00\x00\x00WAVEfmt "), Unknown},
		{"plain text", []byte("hello, image?"), Unknown},
		{"too short", []byte("\x89P"), Unknown},
		{"empty", nil, Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectFromMagic(tt.data); got != tt.want {
				t.Errorf("DetectFromMagic() = %v, want %v", got, tt.want)
			}
		})
	}
}
