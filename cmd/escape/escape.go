package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/gg"
	"github.com/spf13/cobra"

	"github.com/willbeason/escape-field/pkg/config"
	"github.com/willbeason/escape-field/pkg/escape"
	"github.com/willbeason/escape-field/pkg/framebuffer"
	"github.com/willbeason/escape-field/pkg/output"
	"github.com/willbeason/escape-field/pkg/render"
)

const (
	configFlag        = "config"
	presetFlag        = "preset"
	widthFlag         = "width"
	heightFlag        = "height"
	scalingFlag       = "scaling"
	xOffsetFlag       = "x-offset"
	yOffsetFlag       = "y-offset"
	maxIterationsFlag = "max-iterations"
	colourScaleFlag   = "colour-scale"
	workersFlag       = "workers"
	outFlag           = "out"
	framebufferFlag   = "framebuffer"
	fbFormatFlag      = "fb-format"
	fbStrideFlag      = "fb-stride"
	verboseFlag       = "verbose"
)

func mainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "escape",
		Short: "Render the Mandelbrot set with escape-time colouring",
		Long: `Render the Mandelbrot set with escape-time colouring.

Pixel (i, j) is mapped to the point (i*scaling - x-offset) + (j*scaling - y-offset)i.
Points that survive max-iterations are black; the rest are coloured by iteration count,
the hue wheel wrapping colour-scale times across the budget.

Settings come from the preset, then the config file, then flags that were set explicitly.`,
		Args: cobra.ExactArgs(0),
		RunE: runCmd,
	}

	flags := cmd.Flags()
	flags.String(configFlag, "", "TOML file with render settings")
	flags.String(presetFlag, escape.DefaultPreset, fmt.Sprintf("starting settings, one of %v", escape.PresetNames()))
	flags.Int(widthFlag, 0, "raster width in pixels")
	flags.Int(heightFlag, 0, "raster height in pixels")
	flags.Float64(scalingFlag, 0, "plane units per pixel; smaller zooms in")
	flags.Float64(xOffsetFlag, 0, "real-axis translation applied after scaling")
	flags.Float64(yOffsetFlag, 0, "imaginary-axis translation applied after scaling")
	flags.Int(maxIterationsFlag, 0, "iteration budget per pixel")
	flags.Float64(colourScaleFlag, 0, "how many times the hue wheel wraps across the budget")
	flags.Int(workersFlag, 0, "goroutines computing columns (default: number of CPUs)")
	flags.StringP(outFlag, "o", "mandelbrot.png", "image file to write (.png, .bmp, .tif); empty to skip")
	flags.StringP(framebufferFlag, "d", "", "framebuffer device or file to write packed pixels to, e.g. /dev/fb1")
	flags.String(fbFormatFlag, "bgra32", "framebuffer pixel format: rgb565, bgr24 or bgra32")
	flags.Int(fbStrideFlag, 0, "framebuffer line length in bytes (default: width times pixel size)")
	flags.BoolP(verboseFlag, "v", false, "log render progress")

	return cmd
}

// settings is everything runCmd needs after flags, config file and preset are merged.
type settings struct {
	cfg         escape.Config
	workers     int
	out         string
	framebuffer string
	fbFormat    framebuffer.Format
	fbStride    int
	verbose     bool
}

func loadSettings(cmd *cobra.Command) (settings, error) {
	flags := cmd.Flags()
	s := settings{}

	configPath, _ := flags.GetString(configFlag)
	presetName, _ := flags.GetString(presetFlag)

	file := config.File{}
	if configPath != "" {
		var err error
		file, err = config.Load(configPath)
		if err != nil {
			return s, err
		}
	}

	// An explicit --preset wins over the file's preset.
	if flags.Changed(presetFlag) {
		file.Preset = &presetName
	}
	base, err := file.Base(presetName)
	if err != nil {
		return s, err
	}
	s.cfg = file.Apply(base)

	if file.Workers != nil {
		s.workers = *file.Workers
	}
	s.out, _ = flags.GetString(outFlag)
	if file.Output != nil && !flags.Changed(outFlag) {
		s.out = *file.Output
	}

	if flags.Changed(widthFlag) {
		s.cfg.Width, _ = flags.GetInt(widthFlag)
	}
	if flags.Changed(heightFlag) {
		s.cfg.Height, _ = flags.GetInt(heightFlag)
	}
	if flags.Changed(scalingFlag) {
		s.cfg.Viewport.Scaling, _ = flags.GetFloat64(scalingFlag)
	}
	if flags.Changed(xOffsetFlag) {
		s.cfg.Viewport.XOffset, _ = flags.GetFloat64(xOffsetFlag)
	}
	if flags.Changed(yOffsetFlag) {
		s.cfg.Viewport.YOffset, _ = flags.GetFloat64(yOffsetFlag)
	}
	if flags.Changed(maxIterationsFlag) {
		s.cfg.MaxIterations, _ = flags.GetInt(maxIterationsFlag)
	}
	if flags.Changed(colourScaleFlag) {
		s.cfg.ColourScale, _ = flags.GetFloat64(colourScaleFlag)
	}
	if flags.Changed(workersFlag) {
		s.workers, _ = flags.GetInt(workersFlag)
	}

	s.framebuffer, _ = flags.GetString(framebufferFlag)
	fbFormat, _ := flags.GetString(fbFormatFlag)
	if s.fbFormat, err = framebuffer.ParseFormat(fbFormat); err != nil {
		return s, err
	}
	s.fbStride, _ = flags.GetInt(fbStrideFlag)
	s.verbose, _ = flags.GetBool(verboseFlag)

	if s.out == "" && s.framebuffer == "" {
		return s, fmt.Errorf("nothing to write: both --%s and --%s are empty", outFlag, framebufferFlag)
	}

	return s, s.cfg.Validate()
}

func setupLogging(cmd *cobra.Command, verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	render.SetLogger(logger)
	gg.SetLogger(logger)
}

func runCmd(cmd *cobra.Command, _ []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true
	setupLogging(cmd, s.verbose)

	var canvases []render.Canvas

	var surface *gg.Pixmap
	if s.out != "" {
		surface = render.NewSurface(s.cfg)
		canvases = append(canvases, surface)
	}

	var fb *framebuffer.Target
	if s.framebuffer != "" {
		fb, err = framebuffer.New(s.cfg.Width, s.cfg.Height, s.fbStride, s.fbFormat)
		if err != nil {
			return err
		}
		canvases = append(canvases, fb)
	}

	err = render.Render(cmd.Context(), render.Multi(canvases...), s.cfg, render.WithWorkers(s.workers))
	if err != nil {
		return err
	}

	if surface != nil {
		if err := output.Save(s.out, surface.ToImage()); err != nil {
			return err
		}
		render.Logger().Info("image saved", "path", s.out)
	}

	if fb != nil {
		if err := writeFramebuffer(s.framebuffer, fb); err != nil {
			return err
		}
		render.Logger().Info("framebuffer written", "path", s.framebuffer, "format", fb.Format)
	}

	return nil
}

func writeFramebuffer(path string, fb *framebuffer.Target) (err error) {
	dev, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE, 0o644)
	if err != nil {
		return fmt.Errorf("opening framebuffer: %w", err)
	}
	defer func() {
		if cerr := dev.Close(); err == nil {
			err = cerr
		}
	}()

	if _, err := fb.WriteTo(dev); err != nil {
		return fmt.Errorf("writing framebuffer %s: %w", path, err)
	}

	return nil
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
