package overlay

import (
	"bytes"
	"fmt"

	"github.com/gotranspile/gotrace"
)

// TraceSVG vectorizes the water mask into an SVG document of filled outlines.
func TraceSVG(mask []bool, w, h int) (string, error) {
	bm := gotrace.BitmapFromGray(MaskImage(mask, w, h), nil)

	paths, err := gotrace.Trace(bm, nil)
	if err != nil {
		return "", fmt.Errorf("overlay: trace: %w", err)
	}

	var buf bytes.Buffer
	if err := gotrace.Render("svg", nil, &buf, paths, w, h); err != nil {
		return "", fmt.Errorf("overlay: render svg: %w", err)
	}
	return buf.String(), nil
}
