package config

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"watermask/internal/segment"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadAndSegmentConfig(t *testing.T) {
	path := writeConfig(t, `{
		"maps_dir": "/data/maps",
		"show_water": true,
		"segment": {
			"reference_colors": ["#67C9F2", "#000080"],
			"tolerance": 0,
			"min_area": 10
		}
	}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	seg, err := cfg.SegmentConfig()
	if err != nil {
		t.Fatal(err)
	}

	if !cfg.ShowWater || cfg.MapsDir != "/data/maps" {
		t.Errorf("loaded %+v", cfg)
	}
	want := []segment.Color{segment.WaterDeep, {R: 0, G: 0, B: 128}}
	if len(seg.Classifier.References) != 2 || seg.Classifier.References[0] != want[0] || seg.Classifier.References[1] != want[1] {
		t.Errorf("references = %v, want %v", seg.Classifier.References, want)
	}
	if seg.Classifier.Tolerance != 0 {
		t.Errorf("explicit zero tolerance replaced by %d", seg.Classifier.Tolerance)
	}
	if seg.MinArea != 10 {
		t.Errorf("min area = %d, want 10", seg.MinArea)
	}
	if seg.Classifier.MinBlue != 120 || seg.Classifier.MaxSum != 720 || seg.Classifier.MinSum != 100 {
		t.Errorf("defaults lost: %+v", seg.Classifier)
	}
}

func TestSegmentConfigDefaults(t *testing.T) {
	var cfg Config

	seg, err := cfg.SegmentConfig()
	if err != nil {
		t.Fatal(err)
	}

	def := segment.DefaultConfig()
	if seg.MinArea != def.MinArea || seg.Classifier.Tolerance != def.Classifier.Tolerance {
		t.Errorf("got %+v, want defaults", seg)
	}
}

func TestSegmentConfigErrors(t *testing.T) {
	bad := Config{Segment: Segment{ReferenceColors: []string{"blue"}}}
	if _, err := bad.SegmentConfig(); err == nil {
		t.Error("expected error for malformed hex color")
	}

	negative := -5
	bad = Config{Segment: Segment{MinArea: &negative}}
	if _, err := bad.SegmentConfig(); !errors.Is(err, segment.ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := Load(writeConfig(t, "{")); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestResolveFlagsOverride(t *testing.T) {
	cfg := Config{MapsDir: "/maps", OutputDir: "out", Workers: 2}

	cfg.Resolve(Flags{Workers: 8, MinArea: 30, ShowWater: true})

	if cfg.Workers != 8 {
		t.Errorf("workers = %d, want 8", cfg.Workers)
	}
	if cfg.OutputDir != filepath.Join("/maps", "out") {
		t.Errorf("output dir = %q", cfg.OutputDir)
	}
	if cfg.Segment.MinArea == nil || *cfg.Segment.MinArea != 30 {
		t.Errorf("min area flag not applied")
	}
	if !cfg.ShowWater {
		t.Error("show water flag not applied")
	}
	col, err := cfg.Overlay()
	if err != nil {
		t.Fatal(err)
	}
	if col != (color.NRGBA{R: 255, A: 255}) {
		t.Errorf("overlay color = %v, want red", col)
	}
}
