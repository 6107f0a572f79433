package chunk

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	long := []byte(strings.Repeat("revision text that compresses well\n", 50))
	tests := []struct {
		name   string
		text   []byte
		engine Engine
		marker byte
	}{
		{"zlib", long, Zlib, markerZlib},
		{"zstd", long, Zstd, markerZstd},
		{"short text", []byte("tiny"), Zstd, markerText},
		{"short nul text", []byte("\x00tiny"), Zlib, markerRaw},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Compress(tt.text, tt.engine)
			if c[0] != tt.marker {
				t.Errorf("Compress() marker = %q, want %q", c[0], tt.marker)
			}
			got, err := Decompress(c)
			if err != nil {
				t.Fatalf("Decompress() error = %v", err)
			}
			if !bytes.Equal(got, tt.text) {
				t.Errorf("Decompress() = %q, want %q", got, tt.text)
			}
		})
	}
}

func TestEmpty(t *testing.T) {
	if c := Compress(nil, Zlib); len(c) != 0 {
		t.Errorf("Compress(nil) = %q, want empty", c)
	}
	got, err := Decompress(nil)
	if err != nil || len(got) != 0 {
		t.Errorf("Decompress(nil) = %q, %v, want empty", got, err)
	}
}

func TestIncompressible(t *testing.T) {
	text := make([]byte, 64)
	for i := range text {
		text[i] = byte(i*7 + 1)
	}
	c := Compress(text, Zlib)
	if c[0] != markerText || !bytes.Equal(c[1:], text) {
		t.Errorf("Compress() = %q, want text stored with 'u' marker", c)
	}
}

func TestDecompressErrors(t *testing.T) {
	if _, err := Decompress([]byte("?abc")); !errors.Is(err, ErrUnknownCompression) {
		t.Errorf("Decompress() error = %v, want %v", err, ErrUnknownCompression)
	}
	if _, err := Decompress([]byte("x\x00garbage")); !errors.Is(err, ErrDecompress) {
		t.Errorf("Decompress() error = %v, want %v", err, ErrDecompress)
	}
	if _, err := Decompress([]byte{markerZstd, 0xb5, 0x2f, 0xfd, 0xff}); !errors.Is(err, ErrDecompress) {
		t.Errorf("Decompress() error = %v, want %v", err, ErrDecompress)
	}
}

func TestDecompressLimit(t *testing.T) {
	text := []byte(strings.Repeat("all work and no play ", 500))
	for _, e := range []Engine{Zlib, Zstd} {
		t.Run(e.String(), func(t *testing.T) {
			c := Compress(text, e)
			if len(c) >= len(text) {
				t.Fatalf("Compress() did not compress %d bytes", len(text))
			}
			if _, err := DecompressLimit(c, 100); !errors.Is(err, ErrTooLarge) {
				t.Errorf("DecompressLimit(100) error = %v, want %v", err, ErrTooLarge)
			}
			got, err := DecompressLimit(c, len(text))
			if err != nil {
				t.Fatalf("DecompressLimit(%d) error = %v", len(text), err)
			}
			if !bytes.Equal(got, text) {
				t.Errorf("DecompressLimit(%d) returned %d bytes, want %d", len(text), len(got), len(text))
			}
		})
	}
}

func TestDecompressLimitStored(t *testing.T) {
	// stored chunks are already in memory and are not limited
	c := Compress([]byte("short"), Zstd)
	got, err := DecompressLimit(c, 1)
	if err != nil {
		t.Fatalf("DecompressLimit() error = %v", err)
	}
	if string(got) != "short" {
		t.Errorf("DecompressLimit() = %q, want %q", got, "short")
	}
}
