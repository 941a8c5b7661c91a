package common

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/spf13/afero"
)

// pngBytes encodes a solid-colored PNG for test input
func pngBytes(t *testing.T, width, height int, fill color.NRGBA) []byte {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, fill)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("Failed to encode test PNG: %v", err)
	}
	return buf.Bytes()
}

func decodeThumb(t *testing.T, fs afero.Fs, path string) image.Image {
	t.Helper()

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		t.Fatalf("Failed to read thumbnail: %v", err)
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Failed to decode thumbnail: %v", err)
	}
	return img
}

func TestCreateThumbnailScalesDown(t *testing.T) {
	opaque := color.NRGBA{R: 30, G: 90, B: 160, A: 255}

	tests := []struct {
		name       string
		width      int
		height     int
		maxSize    int
		wantWidth  int
		wantHeight int
	}{
		{"landscape above limit", 1600, 800, 800, 800, 400},
		{"portrait above limit", 800, 1600, 800, 400, 800},
		{"exactly at limit", 800, 800, 800, 800, 800},
		{"small image not upscaled", 100, 50, 800, 100, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			src := pngBytes(t, tt.width, tt.height, opaque)
			if err := afero.WriteFile(fs, "photo.png", src, 0644); err != nil {
				t.Fatalf("Failed to write test image: %v", err)
			}

			res, err := CreateThumbnail(fs, "photo.png", "thumb.jpg", tt.maxSize, 75)
			if err != nil {
				t.Fatalf("CreateThumbnail failed: %v", err)
			}

			if res.OriginalSize != int64(len(src)) {
				t.Errorf("Expected original size %d, got %d", len(src), res.OriginalSize)
			}
			if res.ThumbSize <= 0 {
				t.Errorf("Expected positive thumbnail size, got %d", res.ThumbSize)
			}

			thumb := decodeThumb(t, fs, "thumb.jpg")
			bounds := thumb.Bounds()
			if bounds.Dx() != tt.wantWidth || bounds.Dy() != tt.wantHeight {
				t.Errorf("Expected %dx%d thumbnail, got %dx%d",
					tt.wantWidth, tt.wantHeight, bounds.Dx(), bounds.Dy())
			}
		})
	}
}

func TestCreateThumbnailFlattensTransparencyToWhite(t *testing.T) {
	fs := afero.NewMemMapFs()

	// Red with a fully transparent alpha channel
	src := pngBytes(t, 10, 10, color.NRGBA{R: 255, G: 0, B: 0, A: 0})
	if err := afero.WriteFile(fs, "transparent.png", src, 0644); err != nil {
		t.Fatalf("Failed to write test image: %v", err)
	}

	if _, err := CreateThumbnail(fs, "transparent.png", "thumb.jpg", 800, 75); err != nil {
		t.Fatalf("CreateThumbnail failed: %v", err)
	}

	thumb := decodeThumb(t, fs, "thumb.jpg")
	r, g, b, _ := thumb.At(5, 5).RGBA()
	if r>>8 < 250 || g>>8 < 250 || b>>8 < 250 {
		t.Errorf("Expected transparent area to flatten to white, got r=%d g=%d b=%d",
			r>>8, g>>8, b>>8)
	}
}

func TestCreateThumbnailBlendsPartialTransparency(t *testing.T) {
	fs := afero.NewMemMapFs()

	// Half-transparent red should blend with the white background
	src := pngBytes(t, 10, 10, color.NRGBA{R: 255, G: 0, B: 0, A: 128})
	if err := afero.WriteFile(fs, "partial.png", src, 0644); err != nil {
		t.Fatalf("Failed to write test image: %v", err)
	}

	if _, err := CreateThumbnail(fs, "partial.png", "thumb.jpg", 800, 75); err != nil {
		t.Fatalf("CreateThumbnail failed: %v", err)
	}

	thumb := decodeThumb(t, fs, "thumb.jpg")
	r, g, _, _ := thumb.At(5, 5).RGBA()
	if r>>8 < 240 {
		t.Errorf("Expected red channel near 255 after blending, got %d", r>>8)
	}
	if g>>8 < 110 || g>>8 > 145 {
		t.Errorf("Expected green channel near 127 after blending, got %d", g>>8)
	}
}

func TestCreateThumbnailKeepsOpaqueColors(t *testing.T) {
	fs := afero.NewMemMapFs()

	src := pngBytes(t, 10, 10, color.NRGBA{R: 255, G: 0, B: 0, A: 255})
	if err := afero.WriteFile(fs, "red.png", src, 0644); err != nil {
		t.Fatalf("Failed to write test image: %v", err)
	}

	if _, err := CreateThumbnail(fs, "red.png", "thumb.jpg", 800, 75); err != nil {
		t.Fatalf("CreateThumbnail failed: %v", err)
	}

	thumb := decodeThumb(t, fs, "thumb.jpg")
	r, g, b, _ := thumb.At(5, 5).RGBA()
	if r>>8 < 240 || g>>8 > 30 || b>>8 > 30 {
		t.Errorf("Expected opaque red to stay red, got r=%d g=%d b=%d", r>>8, g>>8, b>>8)
	}
}

func TestCreateThumbnailErrors(t *testing.T) {
	tests := []struct {
		name  string
		setup func(fs afero.Fs) error
		src   string
	}{
		{
			name:  "missing source",
			setup: func(fs afero.Fs) error { return nil },
			src:   "nope.jpg",
		},
		{
			name: "corrupt image data",
			setup: func(fs afero.Fs) error {
				return afero.WriteFile(fs, "broken.jpg", []byte("not an image"), 0644)
			},
			src: "broken.jpg",
		},
		{
			name: "empty file",
			setup: func(fs afero.Fs) error {
				return afero.WriteFile(fs, "empty.png", nil, 0644)
			},
			src: "empty.png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			if err := tt.setup(fs); err != nil {
				t.Fatalf("Setup failed: %v", err)
			}

			res, err := CreateThumbnail(fs, tt.src, "thumb.jpg", 800, 75)
			if err == nil {
				t.Fatal("Expected an error, got nil")
			}
			if res != nil {
				t.Errorf("Expected nil result on error, got %+v", res)
			}

			exists, _ := afero.Exists(fs, "thumb.jpg")
			if exists {
				t.Error("No thumbnail should be written when processing fails")
			}
		})
	}
}

func TestReduction(t *testing.T) {
	tests := []struct {
		name     string
		result   ThumbnailResult
		expected float64
	}{
		{"half the size", ThumbnailResult{OriginalSize: 2048, ThumbSize: 1024}, 50},
		{"no change", ThumbnailResult{OriginalSize: 1024, ThumbSize: 1024}, 0},
		{"zero original", ThumbnailResult{OriginalSize: 0, ThumbSize: 10}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.result.Reduction(); got != tt.expected {
				t.Errorf("Reduction() = %v, expected %v", got, tt.expected)
			}
		})
	}
}
