package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"watermask/internal/batch"
	"watermask/internal/config"
	"watermask/internal/mapimage"
	"watermask/internal/overlay"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	mapsDir := flag.String("maps", "", "Directory of map images (default: auto-detect assets/)")
	outputDir := flag.String("output", "", "Output directory (default: <maps>/water-masks)")
	name := flag.String("map", "", "Segment only the map with this name")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	minArea := flag.Int("min-area", 0, "Minimum retained region size in pixels (default: 75)")
	show := flag.Bool("show", false, "Paint detected water over the map in the overlay")
	trace := flag.Bool("svg", false, "Also write traced SVG outlines")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		MapsDir:   *mapsDir,
		OutputDir: *outputDir,
		Workers:   *workers,
		MinArea:   *minArea,
		ShowWater: *show,
		TraceSVG:  *trace,
	})

	if cfg.MapsDir == "" {
		fmt.Fprintln(os.Stderr, "Error: cannot find a maps directory. Use -maps flag or config.json.")
		os.Exit(1)
	}

	segCfg, err := cfg.SegmentConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	tint, err := cfg.Overlay()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	index := mapimage.BuildIndex(cfg.MapsDir)
	names := index.Names()
	if *name != "" {
		stem, ok := index.Canonical(*name)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: no map named %q in %s\n", *name, cfg.MapsDir)
			os.Exit(1)
		}
		names = []string{stem}
	}

	if len(names) == 0 {
		fmt.Println("No maps to segment.")
		os.Exit(0)
	}

	fmt.Printf("Water mask segmentation\n")
	fmt.Printf("Maps: %d, Workers: %d, Min area: %d\n", len(names), cfg.Workers, segCfg.MinArea)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	results := batch.Run(batch.Config{
		OutputDir: cfg.OutputDir,
		Maps:      mapimage.NewCache(index),
		Segment:   segCfg,
		Overlay: overlay.Options{
			Width:  cfg.DisplayWidth,
			Height: cfg.DisplayHeight,
			Show:   cfg.ShowWater,
			Color:  tint,
		},
		TraceSVG: cfg.TraceSVG,
		Workers:  cfg.Workers,
		Progress: 2 * time.Second,
	}, names)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	success, failed := 0, 0
	var errors []batch.Result
	for _, r := range results {
		if r.Success {
			success++
			fmt.Printf("  %s: %dx%d, %d water px, %d/%d regions kept\n",
				r.Name, r.Width, r.Height, r.WaterPixels, r.Retained, r.Components)
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Segmented: %d/%d\n", success, len(names))

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := 20
		if len(errors) < limit {
			limit = len(errors)
		}
		for _, e := range errors[:limit] {
			fmt.Printf("  %s: %s\n", e.Name, e.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	} else if err := batch.WriteManifest(manifestPath, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
