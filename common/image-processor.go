package common

// Image processor for gallery thumbnails
//
// Responsibilities:
// 1. Decode the source image (JPEG or PNG)
// 2. Flatten transparency onto a white background
// 3. Scale down so no dimension exceeds the configured maximum
// 4. Encode as compressed JPEG next to the originals, in thumbnails/

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/spf13/afero"
)

// ThumbnailResult holds the byte sizes of the source image and the
// thumbnail written for it, for the per-image size report.
type ThumbnailResult struct {
	OriginalSize int64
	ThumbSize    int64
}

// Reduction returns the size reduction in percent
func (r *ThumbnailResult) Reduction() float64 {
	if r.OriginalSize == 0 {
		return 0
	}
	return float64(r.OriginalSize-r.ThumbSize) / float64(r.OriginalSize) * 100
}

// CreateThumbnail reads the image at srcPath, scales it down so that
// neither dimension exceeds maxSize and writes it to dstPath as JPEG with
// the given quality. Images already within bounds are re-encoded but never
// upscaled. Any existing file at dstPath is overwritten.
func CreateThumbnail(fs afero.Fs, srcPath, dstPath string, maxSize, quality int) (*ThumbnailResult, error) {
	data, err := afero.ReadFile(fs, srcPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	img = flattenOnWhite(img)
	thumb := imaging.Fit(img, maxSize, maxSize, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumb, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return nil, fmt.Errorf("failed to encode thumbnail: %w", err)
	}

	if err := afero.WriteFile(fs, dstPath, buf.Bytes(), 0644); err != nil {
		return nil, fmt.Errorf("failed to write thumbnail: %w", err)
	}

	return &ThumbnailResult{
		OriginalSize: int64(len(data)),
		ThumbSize:    int64(buf.Len()),
	}, nil
}

// flattenOnWhite composites an image carrying transparency onto an opaque
// white background. JPEG has no alpha channel, so without this step
// transparent PNG regions would come out black.
func flattenOnWhite(img image.Image) image.Image {
	if op, ok := img.(interface{ Opaque() bool }); ok && op.Opaque() {
		return img
	}
	bg := imaging.New(img.Bounds().Dx(), img.Bounds().Dy(), color.White)
	return imaging.Overlay(bg, img, image.Point{}, 1.0)
}
