package main

import (
	"flag"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"whitted-tracer/internal/batch"
	"whitted-tracer/internal/config"
	"whitted-tracer/internal/imageio"
	"whitted-tracer/internal/scene"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	sceneName := flag.String("scene", "", "Render only this scene (name from the scene dir, or a file path)")
	demo := flag.Bool("demo", false, "Render the built-in demo scene")
	sceneDir := flag.String("scenes", "", "Directory of .yaml scene files (default: ./scenes)")
	outputDir := flag.String("output", "", "Output directory (default: output)")
	format := flag.String("format", "", "Image format: png, webp, tga, bmp (default: png)")
	thumbnail := flag.Int("thumbnail", 0, "Also write thumbnails with this longer side in pixels")
	workers := flag.Int("workers", 0, "Scenes rendered in parallel (default: 1)")
	renderWorkers := flag.Int("render-workers", 0, "Row workers per render (default: NumCPU)")
	verbose := flag.Bool("v", false, "Debug logging")

	flag.Parse()

	// Logging
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			log.Fatal().Err(err).Msg("loading config")
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		SceneDir:      *sceneDir,
		OutputDir:     *outputDir,
		Format:        *format,
		Thumbnail:     *thumbnail,
		Workers:       *workers,
		RenderWorkers: *renderWorkers,
	})

	imgFormat, err := imageio.ParseFormat(cfg.Format)
	if err != nil {
		log.Fatal().Err(err).Msg("output format")
	}

	// Collect jobs
	var jobs []batch.Job
	switch {
	case *demo:
		jobs = []batch.Job{{Name: "demo", Scene: scene.Demo()}}
	case *sceneName != "" && fileExists(*sceneName):
		base := filepath.Base(*sceneName)
		jobs = []batch.Job{{Name: base[:len(base)-len(filepath.Ext(base))], Path: *sceneName}}
	default:
		if cfg.SceneDir == "" {
			log.Fatal().Msg("cannot find a scenes directory; use -scenes, -scene or -demo")
		}
		idx := batch.BuildIndex(cfg.SceneDir)
		log.Info().Str("dir", cfg.SceneDir).Int("scenes", idx.Len()).Msg("scene index built")
		if *sceneName != "" {
			path, ok := idx.ResolvePath(*sceneName)
			if !ok {
				log.Fatal().Str("scene", *sceneName).Strs("available", idx.Names()).Msg("unknown scene")
			}
			jobs = []batch.Job{{Name: *sceneName, Path: path}}
		} else {
			jobs = idx.Jobs()
		}
	}

	if len(jobs) == 0 {
		log.Info().Msg("no scenes to render")
		return
	}

	log.Info().
		Int("scenes", len(jobs)).
		Int("workers", cfg.Workers).
		Int("render_workers", cfg.RenderWorkers).
		Str("format", string(imgFormat)).
		Str("output", cfg.OutputDir).
		Msg("rendering")

	start := time.Now()

	results := batch.Run(batch.Config{
		OutputDir:     cfg.OutputDir,
		Format:        imgFormat,
		Thumbnail:     cfg.Thumbnail,
		Workers:       cfg.Workers,
		RenderWorkers: cfg.RenderWorkers,
		Progress:      2 * time.Second,
	}, jobs)

	// Count results
	failed := 0
	for _, r := range results {
		if r.Success {
			log.Info().Str("scene", r.Name).Str("image", r.Output).Dur("elapsed", r.Elapsed).Msg("saved")
			continue
		}
		failed++
		log.Error().Str("scene", r.Name).Str("error", r.Error).Msg("render failed")
	}
	log.Info().
		Int("rendered", len(results)-failed).
		Int("total", len(results)).
		Dur("elapsed", time.Since(start)).
		Msg("done")

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		log.Warn().Err(err).Msg("creating output dir")
	} else if err := batch.WriteManifest(manifestPath, results); err != nil {
		log.Warn().Err(err).Msg("manifest write failed")
	} else {
		log.Info().Str("path", manifestPath).Msg("manifest written")
	}

	if failed > 0 {
		os.Exit(1)
	}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
