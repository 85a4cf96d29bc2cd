package segment

import "fmt"

// Color is an 8-bit RGB triple.
type Color struct {
	R, G, B uint8
}

// Default reference water tones (#67C9F2 and #C6E7FA).
var (
	WaterDeep    = Color{103, 201, 242}
	WaterShallow = Color{198, 231, 250}
)

// Classifier decides from a pixel's own color whether it is candidate water.
//
// A pixel is water if it lies within Tolerance (Euclidean RGB distance) of any
// reference color, or if blue strictly dominates red and green, blue exceeds
// MinBlue, and the channel sum lies strictly between MinSum and MaxSum.
type Classifier struct {
	References []Color
	Tolerance  int
	MinBlue    int
	MaxSum     int // background #F0F0F0 sums to 720
	MinSum     int
}

// DefaultClassifier returns the classifier tuned for the map palette.
func DefaultClassifier() Classifier {
	return Classifier{
		References: []Color{WaterDeep, WaterShallow},
		Tolerance:  20,
		MinBlue:    120,
		MaxSum:     720,
		MinSum:     100,
	}
}

// Validate checks that the thresholds are usable.
func (c Classifier) Validate() error {
	if c.Tolerance < 0 {
		return fmt.Errorf("%w: negative tolerance %d", ErrInvalidConfig, c.Tolerance)
	}
	if c.MinSum > c.MaxSum {
		return fmt.Errorf("%w: min sum %d above max sum %d", ErrInvalidConfig, c.MinSum, c.MaxSum)
	}
	return nil
}

// IsWater reports whether the color is candidate water.
func (c Classifier) IsWater(r, g, b uint8) bool {
	tol2 := c.Tolerance * c.Tolerance
	for _, ref := range c.References {
		dr := int(r) - int(ref.R)
		dg := int(g) - int(ref.G)
		db := int(b) - int(ref.B)
		if dr*dr+dg*dg+db*db <= tol2 {
			return true
		}
	}

	if b <= r || b <= g || int(b) <= c.MinBlue {
		return false
	}
	sum := int(r) + int(g) + int(b)
	return sum < c.MaxSum && sum > c.MinSum
}

// Classify evaluates every pixel of buf independently.
func Classify(buf Buffer, isWater func(r, g, b uint8) bool) []bool {
	out := make([]bool, buf.Len())
	for i := range out {
		out[i] = isWater(buf.RGB(i))
	}
	return out
}
