// Package segment finds contiguous water regions in a raster image by color
// and drops regions smaller than a minimum area.
//
// The pipeline runs in four sequential stages: per-pixel classification,
// flood-fill region growth, union-find component labeling, and size
// filtering. Every call owns its working arrays, so independent images may
// be segmented concurrently.
package segment

import (
	"fmt"
	"image"
	"sort"
)

// DefaultMinArea is the smallest component, in pixels, that survives filtering.
const DefaultMinArea = 75

// Config controls a segmentation run.
type Config struct {
	Classifier Classifier
	MinArea    int
}

// DefaultConfig returns the default classifier with DefaultMinArea.
func DefaultConfig() Config {
	return Config{
		Classifier: DefaultClassifier(),
		MinArea:    DefaultMinArea,
	}
}

// Validate checks the classifier and the minimum area.
func (c Config) Validate() error {
	if err := c.Classifier.Validate(); err != nil {
		return err
	}
	if c.MinArea < 0 {
		return fmt.Errorf("%w: negative min area %d", ErrInvalidConfig, c.MinArea)
	}
	return nil
}

// Component describes one connected water region found by labeling.
type Component struct {
	Label    uint32          // root label
	Size     int             // pixel count
	Bounds   image.Rectangle // in buffer coordinates
	Retained bool            // Size >= MinArea
}

// Result is the output of Segment.
type Result struct {
	Width  int
	Height int
	// Mask is true for retained water pixels, index = y*Width + x.
	Mask []bool
	// Components lists every region found, largest first.
	Components  []Component
	WaterPixels int
}

// At reports whether pixel (x, y) is retained water.
func (r *Result) At(x, y int) bool {
	return r.Mask[y*r.Width+x]
}

// Retained returns the number of components that survived filtering.
func (r *Result) Retained() int {
	n := 0
	for _, c := range r.Components {
		if c.Retained {
			n++
		}
	}
	return n
}

// Segment runs the full pipeline on buf.
func Segment(buf Buffer, cfg Config) (*Result, error) {
	if err := buf.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	mask := GrowRegions(buf, cfg.Classifier.IsWater)
	lab, err := LabelAndSize(mask, buf.Width, buf.Height)
	if err != nil {
		return nil, err
	}
	components := collectComponents(lab, cfg.MinArea)
	FilterSmallComponents(mask, lab, cfg.MinArea)

	water := 0
	for _, on := range mask {
		if on {
			water++
		}
	}

	return &Result{
		Width:       buf.Width,
		Height:      buf.Height,
		Mask:        mask,
		Components:  components,
		WaterPixels: water,
	}, nil
}

// collectComponents gathers the size and bounding box of every root.
func collectComponents(lab *Labeling, minArea int) []Component {
	byRoot := make(map[uint32]*Component)
	var order []uint32

	for i, l := range lab.Labels {
		if l == 0 {
			continue
		}
		root := lab.Root[l]
		x, y := i%lab.Width, i/lab.Width
		pt := image.Rect(x, y, x+1, y+1)
		c, ok := byRoot[root]
		if !ok {
			size := lab.Size[root]
			c = &Component{Label: root, Size: size, Bounds: pt, Retained: size >= minArea}
			byRoot[root] = c
			order = append(order, root)
			continue
		}
		c.Bounds = c.Bounds.Union(pt)
	}

	out := make([]Component, len(order))
	for i, root := range order {
		out[i] = *byRoot[root]
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Size > out[j].Size
	})
	return out
}
