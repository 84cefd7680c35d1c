// Package batch renders many scenes to image files with a worker pool.
package batch

import (
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"whitted-tracer/internal/imageio"
	"whitted-tracer/internal/postprocess"
	"whitted-tracer/internal/raster"
	"whitted-tracer/internal/scene"
)

// Config holds all shared settings for a batch run.
type Config struct {
	OutputDir string
	Format    imageio.Format
	// Thumbnail, when positive, also writes <name>_thumb with the longer
	// side scaled to this many pixels.
	Thumbnail int
	// Workers is the number of scenes rendered at once.
	Workers int
	// RenderWorkers is the number of row workers inside each render.
	RenderWorkers int
	// Progress is how often progress is logged. Zero disables it.
	Progress time.Duration
}

// Job is one scene to render. Scene, when set, is used instead of
// loading Path.
type Job struct {
	Name  string
	Path  string
	Scene *scene.Scene
}

// Result holds the outcome of processing one job.
type Result struct {
	Name      string
	Output    string
	Thumbnail string
	Width     int
	Height    int
	Elapsed   time.Duration
	Success   bool
	Error     string
}

// Run processes all jobs using a worker pool. Results are in job order.
func Run(cfg Config, jobs []Job) []Result {
	total := len(jobs)
	results := make([]Result, total)
	var processed atomic.Int64

	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}

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
						log.Info().Int64("done", p).Int("total", total).
							Float64("scenes_per_sec", rate).Msg("progress")
					}
				}
			}
		}()
	}

	// Worker pool
	jobChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobChan {
				results[idx] = processJob(cfg, jobs[idx])
				processed.Add(1)
			}
		}()
	}

	for i := range jobs {
		jobChan <- i
	}
	close(jobChan)

	wg.Wait()
	close(done)

	return results
}

func processJob(cfg Config, job Job) Result {
	res := Result{Name: job.Name}
	start := time.Now()

	sc := job.Scene
	if sc == nil {
		var err error
		sc, err = scene.Load(job.Path)
		if err != nil {
			res.Error = err.Error()
			return res
		}
	} else if err := sc.Validate(); err != nil {
		res.Error = err.Error()
		return res
	}

	img := raster.Render(sc, cfg.RenderWorkers)
	res.Width, res.Height = sc.Width, sc.Height

	res.Output = filepath.Join(cfg.OutputDir, job.Name+cfg.Format.Ext())
	if err := imageio.Save(res.Output, img, cfg.Format); err != nil {
		res.Error = err.Error()
		return res
	}

	if cfg.Thumbnail > 0 {
		thumb := postprocess.Thumbnail(img, cfg.Thumbnail)
		res.Thumbnail = filepath.Join(cfg.OutputDir, fmt.Sprintf("%s_thumb%s", job.Name, cfg.Format.Ext()))
		if err := imageio.Save(res.Thumbnail, thumb, cfg.Format); err != nil {
			res.Error = err.Error()
			return res
		}
	}

	res.Elapsed = time.Since(start)
	res.Success = true
	log.Debug().Str("scene", job.Name).Dur("elapsed", res.Elapsed).Str("output", res.Output).Msg("rendered")
	return res
}
