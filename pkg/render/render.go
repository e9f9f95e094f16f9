// Package render paints escape-time fields onto a canvas.
package render

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/willbeason/escape-field/pkg/colour"
	"github.com/willbeason/escape-field/pkg/escape"
)

// progressInterval is how many finished columns pass between progress reports.
const progressInterval = 100

type options struct {
	workers  int
	progress func(done, total int)
}

// Option configures Render.
type Option func(*options)

// WithWorkers sets the number of goroutines computing columns. Values below one mean
// runtime.NumCPU().
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithProgress registers f to be called after every finished column. f may be called
// from several goroutines at once.
func WithProgress(f func(done, total int)) Option {
	return func(o *options) {
		o.progress = f
	}
}

// Render paints every pixel of the cfg.Width x cfg.Height raster onto canvas exactly once.
//
// Columns are handed to workers through a channel, so each column is owned by a single
// goroutine. If ctx is cancelled no further columns are started and ctx.Err() is returned
// once the running ones finish.
func Render(ctx context.Context, canvas Canvas, cfg escape.Config, opts ...Option) error {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.workers < 1 {
		o.workers = runtime.NumCPU()
	}

	log := Logger()
	topLeft, bottomRight := cfg.Viewport.Bounds(cfg.Width, cfg.Height)
	log.Info("rendering",
		"width", cfg.Width,
		"height", cfg.Height,
		"max_iterations", cfg.MaxIterations,
		"colour_scale", cfg.ColourScale,
		"top_left", topLeft,
		"bottom_right", bottomRight,
		"workers", o.workers)
	start := time.Now()

	columns := make(chan int)

	go func() {
		defer close(columns)
		for i := 0; i < cfg.Width; i++ {
			select {
			case columns <- i:
			case <-ctx.Done():
				return
			}
		}
	}()

	var done atomic.Int64

	wg := sync.WaitGroup{}
	wg.Add(o.workers)
	for w := 0; w < o.workers; w++ {
		go func() {
			defer wg.Done()

			for i := range columns {
				paintColumn(canvas, i, cfg)

				d := int(done.Add(1))
				if d%progressInterval == 0 {
					log.Debug("progress", "columns", d, "total", cfg.Width)
				}
				if o.progress != nil {
					o.progress(d, cfg.Width)
				}
			}
		}()
	}

	wg.Wait()

	if d := int(done.Load()); d < cfg.Width {
		err := ctx.Err()
		log.Warn("render cancelled", "columns", d, "total", cfg.Width, "err", err)
		return err
	}

	log.Info("render complete", "pixels", cfg.Pixels(), "elapsed", time.Since(start))

	return nil
}

func paintColumn(canvas Canvas, i int, cfg escape.Config) {
	for j := 0; j < cfg.Height; j++ {
		p := escape.ComputePixel(i, j, cfg)
		canvas.SetPixel(i, j, colour.HSB(p.Hue, p.Saturation, p.Brightness))
	}
}
