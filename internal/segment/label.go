package segment

import "fmt"

// Labeling is the result of a component labeling pass.
type Labeling struct {
	Width  int
	Height int
	// Labels holds the provisional label of each pixel, 0 for background.
	Labels []uint32
	// Root maps every label 1..K to its final union-find root.
	Root []uint32
	// Size holds the pixel count of each root label. Entries for non-root
	// labels are stale and must be read through Root.
	Size []int
}

// NumLabels returns K, the number of provisional labels allocated.
func (l *Labeling) NumLabels() int {
	return len(l.Root) - 1
}

// SizeOf returns the size of the component label belongs to, or 0 for background.
func (l *Labeling) SizeOf(label uint32) int {
	if label == 0 {
		return 0
	}
	return l.Size[l.Root[label]]
}

// ComponentAt returns the root label of pixel i, or 0 for background.
func (l *Labeling) ComponentAt(i int) uint32 {
	return l.Root[l.Labels[i]]
}

// LabelAndSize labels the true pixels of mask in one row-major pass,
// looking only at the left and top neighbors and unioning their labels
// when both are set.
func LabelAndSize(mask []bool, w, h int) (*Labeling, error) {
	if w <= 0 || h <= 0 || len(mask) != w*h {
		return nil, fmt.Errorf("%w: mask of %d for %dx%d", ErrInvalidBuffer, len(mask), w, h)
	}

	labels := make([]uint32, w*h)
	f := newForest(w * h)

	for y := 0; y < h; y++ {
		row := y * w
		for x := 0; x < w; x++ {
			i := row + x
			if !mask[i] {
				continue
			}

			var left, top uint32
			if x > 0 && mask[i-1] {
				left = labels[i-1]
			}
			if y > 0 && mask[i-w] {
				top = labels[i-w]
			}

			var root uint32
			switch {
			case left == 0 && top == 0:
				labels[i] = f.makeSet()
				continue
			case top == 0:
				root = f.find(left)
			case left == 0:
				root = f.find(top)
			default:
				root = f.union(left, top)
			}
			labels[i] = root
			f.size[root]++
		}
	}

	root := make([]uint32, f.count()+1)
	for l := 1; l < len(root); l++ {
		root[l] = f.find(uint32(l))
	}

	return &Labeling{
		Width:  w,
		Height: h,
		Labels: labels,
		Root:   root,
		Size:   f.size,
	}, nil
}
