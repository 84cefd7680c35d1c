package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Config holds all configurable paths and render settings.
type Config struct {
	// Paths
	SceneDir  string `json:"scene_dir"`
	OutputDir string `json:"output_dir"`

	// Render settings
	Format        string `json:"format"`
	Thumbnail     int    `json:"thumbnail"`
	Workers       int    `json:"workers"`
	RenderWorkers int    `json:"render_workers"`
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

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.SceneDir != "" {
		c.SceneDir = flags.SceneDir
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Thumbnail > 0 {
		c.Thumbnail = flags.Thumbnail
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.RenderWorkers > 0 {
		c.RenderWorkers = flags.RenderWorkers
	}

	if c.SceneDir == "" {
		c.SceneDir = detectSceneDir()
	}
	if c.OutputDir == "" {
		c.OutputDir = "output"
	}

	// Defaults for render settings
	if c.Format == "" {
		c.Format = "png"
	}
	if c.Workers <= 0 {
		c.Workers = 1
	}
	if c.RenderWorkers <= 0 {
		c.RenderWorkers = runtime.NumCPU()
	}
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	SceneDir      string
	OutputDir     string
	Format        string
	Thumbnail     int
	Workers       int
	RenderWorkers int
}

// detectSceneDir looks for a scenes/ directory next to the executable or
// in the working directory.
func detectSceneDir() string {
	exe, _ := os.Executable()
	if exe != "" {
		dir := filepath.Dir(exe)
		for _, base := range []string{dir, filepath.Dir(dir)} {
			if isDir(filepath.Join(base, "scenes")) {
				return filepath.Join(base, "scenes")
			}
		}
	}

	cwd, _ := os.Getwd()
	if isDir(filepath.Join(cwd, "scenes")) {
		return filepath.Join(cwd, "scenes")
	}
	return ""
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
