// Command dottrack seeds bright dots on the first frame of a source and tracks them on the next ones.
package main

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/LdDl/dot-go/config"
	"github.com/LdDl/dot-go/dot"
	"github.com/LdDl/dot-go/framesource"
	"github.com/LdDl/dot-go/framesource/gocvsource"
	"github.com/LdDl/dot-go/internal/cli"
	"github.com/LdDl/dot-go/overlay"
)

func main() {
	cfg, opts, err := cli.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger := NewLogger(cfg.LogLevel, cfg.LogJSON)
	if opts.SaveConfig {
		if err := cfg.Save(opts.ConfigPath); err != nil {
			logger.Error("config save failed", "error", err)
		} else {
			logger.Info("config saved", "path", opts.ConfigPath)
		}
	}
	if err := run(cfg, logger); err != nil {
		logger.Error("tracking stopped", "error", err)
		os.Exit(1)
	}
}

func openSource(path string) (framesource.Source, error) {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return framesource.NewDirSource(path)
	}
	return gocvsource.Open(path)
}

func run(cfg *config.Config, logger *slog.Logger) error {
	src, err := openSource(cfg.Source)
	if err != nil {
		return err
	}
	defer src.Close()

	if cfg.OverlayDir != "" {
		if err := os.MkdirAll(cfg.OverlayDir, 0o755); err != nil {
			return errors.Wrapf(err, "Can't create overlay directory '%s'", cfg.OverlayDir)
		}
	}

	group := dot.NewGroup(cfg.MaxLost, cfg.GroupIoU,
		dot.WithAccuracy(cfg.Accuracy),
		dot.WithComputeMoments(cfg.ComputeMoments),
		dot.WithPrediction(cfg.Predict),
		dot.WithLogger(logger),
	)

	frames := 0
	for {
		frame, err := src.Acquire()
		if err == io.EOF {
			logger.Info("end of source", "frames", frames)
			return nil
		}
		if err != nil {
			return err
		}

		var canvas *overlay.Canvas
		if cfg.OverlayDir != "" {
			canvas = overlay.NewCanvas(frame.Image, cfg.OverlayScale)
			group.SetGraphics(canvas)
		}

		if frame.Sequence == 0 {
			seed(group, frame.Image, cfg.Seeds, logger)
		} else {
			for id, err := range group.Track(frame.Image) {
				logger.Warn("dot tracking failed", "frame", frame.Sequence, "id", id, "error", err)
			}
		}
		report(group, frame.Sequence, cfg.ComputeMoments, logger)
		frames++

		if canvas != nil {
			canvas.Label(2, 12, fmt.Sprintf("#%d", frame.Sequence), color.RGBA{G: 255, A: 255})
			path := filepath.Join(cfg.OverlayDir, fmt.Sprintf("frame_%06d.png", frame.Sequence))
			if err := canvas.SavePNG(path); err != nil {
				return err
			}
		}

		if group.Len() == 0 {
			return errors.Wrapf(dot.ErrFeatureLost, "every dot is lost at frame %d", frame.Sequence)
		}
		if cfg.MaxFrames > 0 && frames >= cfg.MaxFrames {
			logger.Info("frame limit reached", "frames", cfg.MaxFrames)
			return nil
		}
	}
}

func seed(group *dot.Group, img *image.Gray, seeds []config.Seed, logger *slog.Logger) {
	for _, s := range seeds {
		id, err := group.Add(img, s.U, s.V)
		if err != nil {
			logger.Warn("dot not seeded", "u", s.U, "v", s.V, "error", err)
			continue
		}
		logger.Info("dot seeded", "id", id, "u", s.U, "v", s.V)
	}
}

func report(group *dot.Group, sequence uint64, withEllipse bool, logger *slog.Logger) {
	for _, id := range group.IDs() {
		d := group.Dots[id]
		if d.GetState() != dot.StateTracking {
			continue
		}
		attrs := []any{
			"frame", sequence,
			"id", id,
			"u", d.GetCenter().U,
			"v", d.GetCenter().V,
			"width", d.GetWidth(),
			"height", d.GetHeight(),
			"surface", d.GetSurface(),
		}
		if withEllipse {
			if e, err := d.GetEllipse(); err == nil {
				attrs = append(attrs, "semi_major", e.SemiMajor, "semi_minor", e.SemiMinor, "orientation", e.Orientation)
			}
		}
		logger.Info("dot", attrs...)
	}
}
