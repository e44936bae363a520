// Package cli parses the command line of dottrack.
package cli

import (
	"flag"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/LdDl/dot-go/config"
)

// seedList collects repeated -seed u,v flags
type seedList []config.Seed

func (s *seedList) String() string {
	parts := make([]string, len(*s))
	for i, seed := range *s {
		parts[i] = fmt.Sprintf("%d,%d", seed.U, seed.V)
	}
	return strings.Join(parts, " ")
}

func (s *seedList) Set(value string) error {
	var seed config.Seed
	if _, err := fmt.Sscanf(value, "%d,%d", &seed.U, &seed.V); err != nil {
		return errors.Wrapf(err, "seed '%s' is not 'u,v'", value)
	}
	*s = append(*s, seed)
	return nil
}

// Options are the flags that are not part of the configuration file
type Options struct {
	ConfigPath string
	SaveConfig bool

	source       string
	seeds        seedList
	accuracy     float64
	moments      bool
	predict      float64
	maxLost      int
	groupIoU     float64
	maxFrames    int
	overlayDir   string
	overlayScale int
	logLevel     string
	logJSON      bool
}

// Parse parses args and loads the configuration file, set flags override it
func Parse(args []string) (*config.Config, *Options, error) {
	opts := Options{}
	fs := flag.NewFlagSet("dottrack", flag.ContinueOnError)
	fs.StringVar(&opts.ConfigPath, "config", "dottrack.json", "Path to JSON configuration")
	fs.BoolVar(&opts.SaveConfig, "save-config", false, "Write the effective configuration back to -config")
	fs.StringVar(&opts.source, "source", "0", "Camera index, video file or directory of images")
	fs.Var(&opts.seeds, "seed", "Pixel 'u,v' to seed a dot at. Repeat for several dots")
	fs.Float64Var(&opts.accuracy, "accuracy", 0.65, "Matching tolerance in [0.05, 1]")
	fs.BoolVar(&opts.moments, "moments", false, "Compute second order moments and ellipse")
	fs.Float64Var(&opts.predict, "predict", 0, "Time between frames for Kalman prediction, 0 disables it")
	fs.IntVar(&opts.maxLost, "max-lost", 0, "Frames a lost dot is seeded again before it is dropped")
	fs.Float64Var(&opts.groupIoU, "group-iou", 0, "Drop dots converging on the same region above this IoU, 0 disables it")
	fs.IntVar(&opts.maxFrames, "max-frames", 0, "Stop after this number of frames, 0 for all")
	fs.StringVar(&opts.overlayDir, "overlay", "", "Directory receiving annotated frames")
	fs.IntVar(&opts.overlayScale, "overlay-scale", 1, "Enlargement factor of annotated frames")
	fs.StringVar(&opts.logLevel, "log-level", "info", "Log level: debug, info, warn or error")
	fs.BoolVar(&opts.logJSON, "log-json", false, "Log as JSON")
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, nil, err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "source":
			cfg.Source = opts.source
		case "seed":
			cfg.Seeds = opts.seeds
		case "accuracy":
			cfg.Accuracy = opts.accuracy
		case "moments":
			cfg.ComputeMoments = opts.moments
		case "predict":
			cfg.Predict = opts.predict
		case "max-lost":
			cfg.MaxLost = opts.maxLost
		case "group-iou":
			cfg.GroupIoU = opts.groupIoU
		case "max-frames":
			cfg.MaxFrames = opts.maxFrames
		case "overlay":
			cfg.OverlayDir = opts.overlayDir
		case "overlay-scale":
			cfg.OverlayScale = opts.overlayScale
		case "log-level":
			cfg.LogLevel = opts.logLevel
		case "log-json":
			cfg.LogJSON = opts.logJSON
		}
	})
	if err := cfg.Validate(); err != nil {
		return nil, nil, errors.Wrap(err, "Invalid configuration")
	}
	if err := cfg.RequireSeeds(); err != nil {
		return nil, nil, errors.Wrap(err, "Invalid configuration")
	}
	return cfg, &opts, nil
}
