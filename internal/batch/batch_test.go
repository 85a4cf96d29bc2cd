package batch

import (
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"watermask/internal/mapimage"
	"watermask/internal/overlay"
	"watermask/internal/segment"
)

type fakeMaps map[string]*image.NRGBA

func (m fakeMaps) Resolve(name string) (*image.NRGBA, error) {
	img, ok := m[name]
	if !ok {
		return nil, fmt.Errorf("no map named %q", name)
	}
	return img, nil
}

// lakeMap is a w×h background map with a square lake of side n at the origin.
func lakeMap(w, h, n int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBA{R: 240, G: 240, B: 240, A: 255}
			if x < n && y < n {
				c = color.NRGBA{R: 103, G: 201, B: 242, A: 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestRun(t *testing.T) {
	// Arrange
	out := t.TempDir()
	cfg := Config{
		OutputDir: out,
		Maps: fakeMaps{
			"london": lakeMap(20, 20, 10),
			"puddle": lakeMap(20, 20, 3),
		},
		Segment:  segment.DefaultConfig(),
		Overlay:  overlay.Options{Show: true},
		TraceSVG: true,
		Workers:  3,
	}
	names := []string{"london", "missing", "puddle"}

	// Act
	results := Run(cfg, names)

	// Assert
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	london, missing, puddle := results[0], results[1], results[2]
	if !london.Success || london.WaterPixels != 100 || london.Retained != 1 {
		t.Errorf("london = %+v", london)
	}
	if missing.Success || missing.Error == "" || missing.Name != "missing" {
		t.Errorf("missing = %+v", missing)
	}
	if !puddle.Success || puddle.WaterPixels != 0 || puddle.Components != 1 || puddle.Retained != 0 {
		t.Errorf("puddle = %+v", puddle)
	}
	for _, name := range []string{"mask.png", "overlay.webp", "outline.svg"} {
		if _, err := os.Stat(filepath.Join(out, "london", name)); err != nil {
			t.Errorf("missing output %s: %v", name, err)
		}
	}
}

func TestRunDecodesMapsFromDisk(t *testing.T) {
	// Arrange: a real PNG map resolved through the index and cache.
	mapsDir := t.TempDir()
	f, err := os.Create(filepath.Join(mapsDir, "London-Map.png"))
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, lakeMap(24, 16, 10)); err != nil {
		t.Fatal(err)
	}
	f.Close()

	index := mapimage.BuildIndex(mapsDir)
	out := t.TempDir()
	cfg := Config{
		OutputDir: out,
		Maps:      mapimage.NewCache(index),
		Segment:   segment.DefaultConfig(),
		Overlay:   overlay.Options{Width: 12, Height: 8, Show: true},
		Workers:   2,
	}

	// Act
	results := Run(cfg, index.Names())

	// Assert
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	r := results[0]
	if !r.Success {
		t.Fatalf("run failed: %s", r.Error)
	}
	if r.Name != "london-map" || r.Width != 24 || r.Height != 16 || r.WaterPixels != 100 {
		t.Errorf("result = %+v", r)
	}

	mf, err := os.Open(filepath.Join(out, "london-map", "mask.png"))
	if err != nil {
		t.Fatalf("mask.png not written: %v", err)
	}
	defer mf.Close()
	mask, err := png.Decode(mf)
	if err != nil {
		t.Fatal(err)
	}
	if mask.Bounds() != image.Rect(0, 0, 24, 16) {
		t.Errorf("mask bounds = %v", mask.Bounds())
	}
	if _, err := os.Stat(filepath.Join(out, "london-map", "overlay.webp")); err != nil {
		t.Errorf("overlay.webp not written: %v", err)
	}
}

func TestRunInvalidConfig(t *testing.T) {
	cfg := Config{
		OutputDir: t.TempDir(),
		Maps:      fakeMaps{"london": lakeMap(4, 4, 2)},
		Segment:   segment.Config{Classifier: segment.DefaultClassifier(), MinArea: -1},
	}

	results := Run(cfg, []string{"london"})

	if results[0].Success {
		t.Error("expected failure for invalid segment config")
	}
}

func TestWriteManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.json")
	results := []Result{
		{Name: "london", Width: 10, Height: 10, WaterPixels: 25, Components: 3, Retained: 1, Success: true},
		{Name: "broken", Error: "decode failed"},
	}

	if err := WriteManifest(path, results); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var entries []ManifestEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	e := entries[0]
	if e.Name != "london" || e.Coverage != 0.25 || e.Mask != "london/mask.png" || e.Overlay != "london/overlay.webp" {
		t.Errorf("entry = %+v", e)
	}
}
