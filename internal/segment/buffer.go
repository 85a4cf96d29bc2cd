package segment

import (
	"errors"
	"fmt"
	"image"
)

var (
	// ErrInvalidBuffer is returned when a Buffer's dimensions do not match its pixel data.
	ErrInvalidBuffer = errors.New("segment: invalid buffer")
	// ErrInvalidConfig is returned when a Config carries unusable parameters.
	ErrInvalidConfig = errors.New("segment: invalid config")
)

// Buffer is an immutable raw pixel buffer, rows top to bottom, pixels left to right.
// Channels is 3 (RGB) or 4 (RGBA); alpha is ignored.
type Buffer struct {
	Width    int
	Height   int
	Channels int
	Pix      []uint8 // len = Width*Height*Channels
}

// NewBuffer wraps pix and validates it.
func NewBuffer(w, h, channels int, pix []uint8) (Buffer, error) {
	b := Buffer{Width: w, Height: h, Channels: channels, Pix: pix}
	if err := b.Validate(); err != nil {
		return Buffer{}, err
	}
	return b, nil
}

// FromNRGBA builds a 4-channel Buffer from img without copying when the
// image rows are contiguous.
func FromNRGBA(img *image.NRGBA) Buffer {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if img.Stride == w*4 && img.PixOffset(b.Min.X, b.Min.Y) == 0 {
		return Buffer{Width: w, Height: h, Channels: 4, Pix: img.Pix[:w*h*4]}
	}
	pix := make([]uint8, w*h*4)
	for y := 0; y < h; y++ {
		i := img.PixOffset(b.Min.X, b.Min.Y+y)
		copy(pix[y*w*4:(y+1)*w*4], img.Pix[i:i+w*4])
	}
	return Buffer{Width: w, Height: h, Channels: 4, Pix: pix}
}

// Validate reports ErrInvalidBuffer if the dimensions are not positive or
// the pixel slice length is not Width*Height*Channels.
func (b Buffer) Validate() error {
	if b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidBuffer, b.Width, b.Height)
	}
	if b.Channels != 3 && b.Channels != 4 {
		return fmt.Errorf("%w: %d channels", ErrInvalidBuffer, b.Channels)
	}
	if want := b.Width * b.Height * b.Channels; len(b.Pix) != want {
		return fmt.Errorf("%w: have %d bytes, want %d", ErrInvalidBuffer, len(b.Pix), want)
	}
	return nil
}

// Len returns the number of pixels.
func (b Buffer) Len() int {
	return b.Width * b.Height
}

// RGB returns the color channels of pixel i (index = y*Width + x).
func (b Buffer) RGB(i int) (r, g, bl uint8) {
	p := i * b.Channels
	return b.Pix[p], b.Pix[p+1], b.Pix[p+2]
}
