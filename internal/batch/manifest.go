package batch

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// ManifestEntry represents one successfully segmented map in the output manifest.
type ManifestEntry struct {
	Name        string  `json:"name"`
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	WaterPixels int     `json:"water_pixels"`
	Coverage    float64 `json:"coverage"`
	Components  int     `json:"components"`
	Retained    int     `json:"retained"`
	Mask        string  `json:"mask"`
	Overlay     string  `json:"overlay"`
}

// WriteManifest writes manifest.json describing the successful results.
func WriteManifest(path string, results []Result) error {
	entries := make([]ManifestEntry, 0, len(results))
	for _, r := range results {
		if !r.Success {
			continue
		}
		entries = append(entries, ManifestEntry{
			Name:        r.Name,
			Width:       r.Width,
			Height:      r.Height,
			WaterPixels: r.WaterPixels,
			Coverage:    float64(r.WaterPixels) / float64(r.Width*r.Height),
			Components:  r.Components,
			Retained:    r.Retained,
			Mask:        filepath.ToSlash(filepath.Join(r.Name, "mask.png")),
			Overlay:     filepath.ToSlash(filepath.Join(r.Name, "overlay.webp")),
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
