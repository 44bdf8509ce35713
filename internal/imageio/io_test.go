package imageio

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func testImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 6))
	for y := 0; y < 6; y++ {
		for x := 0; x < 8; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 30), G: uint8(y * 40), B: 0x80, A: 0xff})
		}
	}
	return img
}

func TestEncodeDecodeDetectsFormat(t *testing.T) {
	tests := []struct {
		ext      string
		format   string
		lossless bool
	}{
		{".png", "png", true},
		{".bmp", "bmp", true},
		{".tiff", "tiff", true},
		{".gif", "gif", false},
		{".jpg", "jpeg", false},
	}
	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			src := testImage()
			var buf bytes.Buffer
			if err := Encode(&buf, src, tt.ext); err != nil {
				t.Fatalf("Encode(%s) error = %v", tt.ext, err)
			}

			img, format, err := LoadFromBytes(buf.Bytes())
			if err != nil {
				t.Fatalf("LoadFromBytes() error = %v", err)
			}
			if format != tt.format {
				t.Errorf("format = %q, want %q", format, tt.format)
			}
			if img.Bounds() != src.Bounds() {
				t.Errorf("Bounds() = %v, want %v", img.Bounds(), src.Bounds())
			}
			if tt.lossless {
				r1, g1, b1, a1 := img.At(5, 3).RGBA()
				r2, g2, b2, a2 := src.At(5, 3).RGBA()
				if r1 != r2 || g1 != g2 || b1 != b2 || a1 != a2 {
					t.Errorf("pixel (5, 3) = %v, want %v", img.At(5, 3), src.At(5, 3))
				}
			}
		})
	}
}

func TestEncodeUnsupported(t *testing.T) {
	err := Encode(&bytes.Buffer{}, testImage(), ".webp")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Encode(.webp) error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestLoadFromBytesEmpty(t *testing.T) {
	if _, _, err := LoadFromBytes(nil); !errors.Is(err, ErrEmptyData) {
		t.Errorf("LoadFromBytes(nil) error = %v, want ErrEmptyData", err)
	}
}

func TestDecodeGarbage(t *testing.T) {
	if _, _, err := LoadFromBytes([]byte("not an image")); err == nil {
		t.Error("LoadFromBytes(garbage) error = nil")
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "frame.PNG")

	if err := Save(path, testImage()); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	img, format, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if format != "png" || img.Bounds().Dx() != 8 {
		t.Errorf("Load() = %q %v", format, img.Bounds())
	}

	if err := Save(filepath.Join(dir, "frame.xyz"), testImage()); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Save(.xyz) error = %v, want ErrUnsupportedFormat", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "frame.xyz")); !os.IsNotExist(err) {
		t.Error("Save(.xyz) created a file")
	}
	if _, _, err := Load(filepath.Join(dir, "missing.png")); err == nil {
		t.Error("Load(missing) error = nil")
	}
}
