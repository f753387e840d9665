package main

import (
	"os"

	"github.com/openmag/geomag/internal/bfield"
	"github.com/openmag/geomag/internal/config"
	"github.com/openmag/geomag/internal/coords"
	"github.com/openmag/geomag/internal/logger"
	"github.com/openmag/geomag/internal/render"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile string  `short:"c" long:"config" env:"CONFIG_FILE" description:"Path to configuration file"`
	Date       int     `short:"d" long:"date"   description:"Date as YYYYMMDD" required:"true"`
	UT         float64 `short:"u" long:"ut"     description:"Universal time in decimal hours" default:"0"`
	Model      string  `short:"m" long:"model"  description:"Field model name (overrides config)"`
	Extent     float64 `short:"e" long:"extent" description:"Slice half-width in Re" default:"15"`
	Grid       int     `short:"g" long:"grid"   description:"Sample grid resolution" default:"128"`
	Scale      int     `short:"s" long:"scale"  description:"Output upscale factor" default:"4"`
	Output     string  `short:"o" long:"out"    description:"Output WebP file path" required:"true"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if opts.Model != "" {
		cfg.Model = opts.Model
	}

	model, err := bfield.New(cfg.Model, cfg.Field)
	if err != nil {
		log.Fatal().Err(err).Msg("Unknown field model")
	}

	ctx, err := coords.NewContext(opts.Date, opts.UT)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid date or time")
	}

	img := render.SliceMap(ctx, model, render.Options{
		Extent: opts.Extent,
		Grid:   opts.Grid,
		Scale:  opts.Scale,
	})

	f, err := os.Create(opts.Output)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create output file")
	}
	defer func() { _ = f.Close() }()

	if err := render.EncodeWebP(f, img); err != nil {
		log.Fatal().Err(err).Msg("Failed to encode webp")
	}

	log.Info().
		Str("path", opts.Output).
		Str("model", model.Name()).
		Int("size", img.Bounds().Dx()).
		Msg("Field map written")
}
