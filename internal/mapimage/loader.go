package mapimage

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"

	"watermask/internal/segment"
)

// Extensions lists the map file extensions Load understands.
var Extensions = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff", ".webp", ".tga"}

// decoders picks the decoder by extension. The tga package registers an
// empty magic string, so image.Decode sniffing would route everything to it.
var decoders = map[string]func(io.Reader) (image.Image, error){
	".png":  png.Decode,
	".jpg":  jpeg.Decode,
	".jpeg": jpeg.Decode,
	".gif":  gif.Decode,
	".bmp":  bmp.Decode,
	".tif":  tiff.Decode,
	".tiff": tiff.Decode,
	".webp": webp.Decode,
	".tga":  tga.Decode,
}

// IsMapFile reports whether path has a supported extension.
func IsMapFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Load reads and decodes a map image and returns it as NRGBA.
func Load(path string) (*image.NRGBA, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("mapimage: read %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	decode, ok := decoders[ext]
	if !ok {
		return nil, fmt.Errorf("mapimage: unknown extension: %s", path)
	}
	img, err := decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("mapimage: decode %s: %w", path, err)
	}

	return ToNRGBA(img), nil
}

// LoadBuffer loads path and wraps it as a segmentation buffer.
func LoadBuffer(path string) (*image.NRGBA, segment.Buffer, error) {
	img, err := Load(path)
	if err != nil {
		return nil, segment.Buffer{}, err
	}
	buf := segment.FromNRGBA(img)
	if err := buf.Validate(); err != nil {
		return nil, segment.Buffer{}, fmt.Errorf("mapimage: %s: %w", path, err)
	}
	return img, buf, nil
}

// ToNRGBA converts any image to NRGBA with its origin at (0, 0).
// Channel values saturate to [0,255] through the NRGBA color model.
func ToNRGBA(src image.Image) *image.NRGBA {
	b := src.Bounds()
	if n, ok := src.(*image.NRGBA); ok && b.Min == (image.Point{}) {
		return n
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}
