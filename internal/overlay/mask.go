// Package overlay turns water masks into images for display and export.
package overlay

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

// MaskImage renders mask as a grayscale image, 255 for water and 0 elsewhere.
func MaskImage(mask []bool, w, h int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i, on := range mask[:w*h] {
		if on {
			img.Pix[i] = 255
		}
	}
	return img
}

// ScaleMask resamples a w×h mask to dw×dh with nearest-neighbor sampling.
func ScaleMask(mask []bool, w, h, dw, dh int) []bool {
	if w == dw && h == dh {
		return append([]bool(nil), mask...)
	}
	src := MaskImage(mask, w, h)
	dst := image.NewGray(image.Rect(0, 0, dw, dh))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	out := make([]bool, dw*dh)
	for i, v := range dst.Pix {
		out[i] = v >= 128
	}
	return out
}

// EncodeMaskPNG writes mask as a grayscale PNG.
func EncodeMaskPNG(w io.Writer, mask []bool, width, height int) error {
	if err := png.Encode(w, MaskImage(mask, width, height)); err != nil {
		return fmt.Errorf("overlay: png encode: %w", err)
	}
	return nil
}
