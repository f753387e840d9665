package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/openmag/geomag/internal/bfield"
	"github.com/openmag/geomag/internal/config"
	"github.com/openmag/geomag/internal/coords"
	"github.com/openmag/geomag/internal/logger"
	"github.com/openmag/geomag/internal/trace"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile string   `short:"c" long:"config"   env:"CONFIG_FILE" description:"Path to configuration file"`
	Date       int      `short:"d" long:"date"     description:"Date as YYYYMMDD" required:"true"`
	UT         float64  `short:"u" long:"ut"       description:"Universal time in decimal hours" default:"0"`
	System     string   `short:"s" long:"sys"      description:"Coordinate system of the positions" default:"GSM"`
	Model      string   `short:"m" long:"model"    description:"Field model name (overrides config)"`
	Positions  []string `short:"p" long:"position" description:"Position as x,y,z in Re (repeatable)" required:"true"`
	Extended   bool     `short:"e" long:"extended" description:"Include footpoints and minimum-B output"`
	Format     string   `short:"f" long:"format"   description:"Output format" choice:"json" choice:"yaml" default:"json"`
}

type record struct {
	Position coords.Vec3   `json:"position" yaml:"position"`
	Topology string        `json:"topology" yaml:"topology"`
	Extended *trace.Result `json:"extended,omitempty" yaml:"extended,omitempty"`
}

func parsePosition(raw string) (coords.Vec3, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 3 {
		return coords.Vec3{}, fmt.Errorf("position %q: need exactly x,y,z", raw)
	}

	var out [3]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return coords.Vec3{}, fmt.Errorf("position %q: %w", raw, err)
		}
		out[i] = v
	}

	return coords.Vec3{X: out[0], Y: out[1], Z: out[2]}, nil
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

	sys, err := coords.ParseSystem(opts.System)
	if err != nil {
		log.Fatal().Err(err).Msg("Unknown coordinate system")
	}

	ctx, err := coords.NewContext(opts.Date, opts.UT)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid date or time")
	}

	records := make([]record, 0, len(opts.Positions))
	for _, raw := range opts.Positions {
		pos, err := parsePosition(raw)
		if err != nil {
			log.Fatal().Err(err).Msg("Invalid position")
		}

		res, err := trace.ClassifyExtended(ctx, model, pos, sys, cfg.Tracer)
		if err != nil {
			log.Fatal().Err(err).Str("position", raw).Msg("Classification failed")
		}

		rec := record{Position: pos, Topology: res.Topology.String()}
		if opts.Extended {
			rec.Extended = &res
		}
		records = append(records, rec)

		log.Debug().
			Str("position", raw).
			Str("topology", res.Topology.String()).
			Msg("Position classified")
	}

	var out []byte
	if opts.Format == "yaml" {
		out, err = yaml.Marshal(records)
	} else {
		out, err = json.MarshalIndent(records, "", "  ")
	}
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to marshal output")
	}

	fmt.Println(string(out))
}
