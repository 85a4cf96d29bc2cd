package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"watermask/internal/mapimage"
	"watermask/internal/segment"
)

// inspectmask prints segmentation statistics for one image:
//
//	inspectmask [-min-area N] [-top N] [-px x,y ...] map.png
func main() {
	minArea := flag.Int("min-area", segment.DefaultMinArea, "Minimum retained region size in pixels")
	top := flag.Int("top", 10, "Number of largest regions to list")
	probe := flag.String("px", "", "Semicolon-separated x,y pixels to classify, e.g. 10,4;200,31")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: inspectmask [flags] <image>")
		os.Exit(2)
	}
	path := flag.Arg(0)

	_, buf, err := mapimage.LoadBuffer(path)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	cfg := segment.DefaultConfig()
	cfg.MinArea = *minArea

	candidates := segment.Classify(buf, cfg.Classifier.IsWater)
	res, err := segment.Segment(buf, cfg)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	total := buf.Len()
	nCand := 0
	for _, c := range candidates {
		if c {
			nCand++
		}
	}
	fmt.Printf("Image: %dx%d (%d px)\n", buf.Width, buf.Height, total)
	fmt.Printf("Candidates: %d (%.2f%%)\n", nCand, 100*float64(nCand)/float64(total))
	fmt.Printf("Regions: %d, kept %d with min area %d\n", len(res.Components), res.Retained(), cfg.MinArea)
	fmt.Printf("Water: %d (%.2f%%)\n", res.WaterPixels, 100*float64(res.WaterPixels)/float64(total))

	for i, c := range largest(res.Components, *top) {
		state := "dropped"
		if c.Retained {
			state = "kept"
		}
		fmt.Printf("  [%d] label=%d size=%d bounds=%v %s\n", i, c.Label, c.Size, c.Bounds, state)
	}

	if *probe == "" {
		return
	}
	for _, p := range strings.Split(*probe, ";") {
		xs, ys, ok := strings.Cut(strings.TrimSpace(p), ",")
		x, errX := strconv.Atoi(xs)
		y, errY := strconv.Atoi(ys)
		if !ok || errX != nil || errY != nil || x < 0 || y < 0 || x >= buf.Width || y >= buf.Height {
			fmt.Printf("  Pixel %q: invalid\n", p)
			continue
		}
		i := y*buf.Width + x
		r, g, b := buf.RGB(i)
		fmt.Printf("  Pixel(%d,%d): R=%d G=%d B=%d candidate=%v water=%v\n",
			x, y, r, g, b, candidates[i], res.Mask[i])
	}
}

// largest returns the first n components, clamped to [0, len(cs)].
func largest(cs []segment.Component, n int) []segment.Component {
	n = max(0, min(n, len(cs)))
	return cs[:n]
}
