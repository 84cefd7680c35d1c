package batch

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// ManifestEntry represents one rendered scene in the output manifest.
type ManifestEntry struct {
	Name      string  `json:"name"`
	Image     string  `json:"image"`
	Thumbnail string  `json:"thumbnail,omitempty"`
	Width     int     `json:"width"`
	Height    int     `json:"height"`
	RenderMS  float64 `json:"render_ms"`
}

// WriteManifest writes the successful results as JSON. Image paths are
// relative to the manifest's directory.
func WriteManifest(path string, results []Result) error {
	dir := filepath.Dir(path)
	entries := make([]ManifestEntry, 0, len(results))
	for _, r := range results {
		if !r.Success {
			continue
		}
		entries = append(entries, ManifestEntry{
			Name:      r.Name,
			Image:     relTo(dir, r.Output),
			Thumbnail: relTo(dir, r.Thumbnail),
			Width:     r.Width,
			Height:    r.Height,
			RenderMS:  float64(r.Elapsed.Microseconds()) / 1000,
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func relTo(dir, path string) string {
	if path == "" {
		return ""
	}
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}
