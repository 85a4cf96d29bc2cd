package overlay

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/draw"
)

// DefaultColor is the debug overlay tint.
var DefaultColor = color.NRGBA{R: 255, A: 255}

// Options controls Render. Zero Width or Height keeps the source size.
type Options struct {
	Width  int
	Height int
	// Show paints water pixels in Color on top of the map.
	Show  bool
	Color color.NRGBA
}

// ScaleFactors returns how many source pixels map onto one display pixel on each axis.
func ScaleFactors(origW, origH, dispW, dispH int) (sx, sy float64) {
	return float64(origW) / float64(dispW), float64(origH) / float64(dispH)
}

// ToDisplay maps a mask index in an origW-wide image to display coordinates.
func ToDisplay(index, origW int, sx, sy float64) (x, y float64) {
	ox := index % origW
	oy := index / origW
	return float64(ox) / sx, float64(oy) / sy
}

// Render scales the map to the display size and, when opts.Show is set,
// paints every water pixel of mask at its scaled position.
func Render(img *image.NRGBA, mask []bool, opts Options) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	dw, dh := opts.Width, opts.Height
	if dw <= 0 || dh <= 0 {
		dw, dh = w, h
	}

	dst := image.NewNRGBA(image.Rect(0, 0, dw, dh))
	if dw == w && dh == h {
		draw.Copy(dst, image.Point{}, img, b, draw.Src, nil)
	} else {
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	}

	if !opts.Show {
		return dst
	}

	tint := opts.Color
	if tint == (color.NRGBA{}) {
		tint = DefaultColor
	}
	sx, sy := ScaleFactors(w, h, dw, dh)
	for i, on := range mask {
		if !on {
			continue
		}
		x, y := ToDisplay(i, w, sx, sy)
		px, py := int(x), int(y)
		if px < dw && py < dh {
			dst.SetNRGBA(px, py, tint)
		}
	}
	return dst
}

// EncodeWebP writes img as lossless WebP.
func EncodeWebP(w io.Writer, img image.Image) error {
	if err := nativewebp.Encode(w, img, nil); err != nil {
		return fmt.Errorf("overlay: webp encode: %w", err)
	}
	return nil
}
