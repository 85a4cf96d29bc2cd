package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"watermask/internal/mapimage"
	"watermask/internal/overlay"
	"watermask/internal/segment"
)

// Config holds all shared resources for a batch run.
type Config struct {
	OutputDir string
	Maps      mapimage.Resolver
	Segment   segment.Config
	Overlay   overlay.Options
	TraceSVG  bool
	Workers   int
	// Progress, if positive, prints a progress line at this interval.
	Progress time.Duration
}

// Result holds the outcome of segmenting one map.
type Result struct {
	Name        string
	Width       int
	Height      int
	WaterPixels int
	Components  int
	Retained    int
	Success     bool
	Error       string
}

// Run segments all named maps using a worker pool. Results keep the order of names.
func Run(cfg Config, names []string) []Result {
	total := len(names)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	if cfg.Progress > 0 {
		go func() {
			ticker := time.NewTicker(cfg.Progress)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					p := processed.Load()
					if p > 0 {
						rate := float64(p) / time.Since(start).Seconds()
						fmt.Printf("  [%d/%d] %.1f maps/sec\n", p, total, rate)
					}
				}
			}
		}()
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	jobs := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = processMap(cfg, names[idx])
				processed.Add(1)
			}
		}()
	}

	for i := range names {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	close(done)

	return results
}

func processMap(cfg Config, name string) Result {
	fail := func(err error) Result {
		return Result{Name: name, Error: err.Error()}
	}

	img, err := cfg.Maps.Resolve(name)
	if err != nil {
		return fail(err)
	}

	buf := segment.FromNRGBA(img)
	res, err := segment.Segment(buf, cfg.Segment)
	if err != nil {
		return fail(fmt.Errorf("%s: %w", name, err))
	}

	dir := filepath.Join(cfg.OutputDir, name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fail(err)
	}

	if err := writeFile(filepath.Join(dir, "mask.png"), func(f *os.File) error {
		return overlay.EncodeMaskPNG(f, res.Mask, res.Width, res.Height)
	}); err != nil {
		return fail(err)
	}

	rendered := overlay.Render(img, res.Mask, cfg.Overlay)
	if err := writeFile(filepath.Join(dir, "overlay.webp"), func(f *os.File) error {
		return overlay.EncodeWebP(f, rendered)
	}); err != nil {
		return fail(err)
	}

	if cfg.TraceSVG && res.WaterPixels > 0 {
		svg, err := overlay.TraceSVG(res.Mask, res.Width, res.Height)
		if err != nil {
			return fail(err)
		}
		if err := os.WriteFile(filepath.Join(dir, "outline.svg"), []byte(svg), 0644); err != nil {
			return fail(err)
		}
	}

	return Result{
		Name:        name,
		Width:       res.Width,
		Height:      res.Height,
		WaterPixels: res.WaterPixels,
		Components:  len(res.Components),
		Retained:    res.Retained(),
		Success:     true,
	}
}

func writeFile(path string, encode func(f *os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
