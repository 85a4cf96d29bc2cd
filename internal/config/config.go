package config

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"runtime"

	"github.com/lucasb-eyer/go-colorful"

	"watermask/internal/segment"
)

// Config holds all configurable paths, output and segmentation settings.
type Config struct {
	// Paths
	MapsDir   string `json:"maps_dir"`
	OutputDir string `json:"output_dir"`

	// Output settings
	DisplayWidth  int    `json:"display_width"`
	DisplayHeight int    `json:"display_height"`
	ShowWater     bool   `json:"show_water"`
	OverlayColor  string `json:"overlay_color"`
	TraceSVG      bool   `json:"trace_svg"`
	Workers       int    `json:"workers"`

	Segment Segment `json:"segment"`
}

// Segment holds segmentation overrides. Nil fields keep the engine defaults.
type Segment struct {
	ReferenceColors []string `json:"reference_colors"`
	Tolerance       *int     `json:"tolerance"`
	MinBlue         *int     `json:"min_blue"`
	MaxSum          *int     `json:"max_sum"`
	MinSum          *int     `json:"min_sum"`
	MinArea         *int     `json:"min_area"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	MapsDir   string
	OutputDir string
	Workers   int
	MinArea   int
	ShowWater bool
	TraceSVG  bool
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.MapsDir != "" {
		c.MapsDir = flags.MapsDir
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.MinArea > 0 {
		minArea := flags.MinArea
		c.Segment.MinArea = &minArea
	}
	if flags.ShowWater {
		c.ShowWater = true
	}
	if flags.TraceSVG {
		c.TraceSVG = true
	}

	if c.MapsDir == "" {
		c.MapsDir = detectMapsDir()
	}
	if c.OutputDir == "" {
		c.OutputDir = filepath.Join(c.MapsDir, "water-masks")
	} else if c.MapsDir != "" && !filepath.IsAbs(c.OutputDir) {
		c.OutputDir = filepath.Join(c.MapsDir, c.OutputDir)
	}

	if c.OverlayColor == "" {
		c.OverlayColor = "#FF0000"
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// SegmentConfig builds a validated engine configuration.
func (c *Config) SegmentConfig() (segment.Config, error) {
	out := segment.DefaultConfig()
	s := c.Segment

	if len(s.ReferenceColors) > 0 {
		refs := make([]segment.Color, 0, len(s.ReferenceColors))
		for _, hex := range s.ReferenceColors {
			col, err := colorful.Hex(hex)
			if err != nil {
				return segment.Config{}, fmt.Errorf("config: reference color %q: %w", hex, err)
			}
			r, g, b := col.RGB255()
			refs = append(refs, segment.Color{R: r, G: g, B: b})
		}
		out.Classifier.References = refs
	}
	if s.Tolerance != nil {
		out.Classifier.Tolerance = *s.Tolerance
	}
	if s.MinBlue != nil {
		out.Classifier.MinBlue = *s.MinBlue
	}
	if s.MaxSum != nil {
		out.Classifier.MaxSum = *s.MaxSum
	}
	if s.MinSum != nil {
		out.Classifier.MinSum = *s.MinSum
	}
	if s.MinArea != nil {
		out.MinArea = *s.MinArea
	}

	if err := out.Validate(); err != nil {
		return segment.Config{}, fmt.Errorf("config: %w", err)
	}
	return out, nil
}

// Overlay parses OverlayColor.
func (c *Config) Overlay() (color.NRGBA, error) {
	col, err := colorful.Hex(c.OverlayColor)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("config: overlay color %q: %w", c.OverlayColor, err)
	}
	r, g, b := col.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}

func detectMapsDir() string {
	cwd, _ := os.Getwd()
	for _, dir := range []string{
		filepath.Join(cwd, "assets"),
		filepath.Join(cwd, "src", "assets"),
		filepath.Join(cwd, "maps"),
	} {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}
	return ""
}
