package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/openmag/geomag/internal/astrotime"
	"github.com/openmag/geomag/internal/logger"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	Times  []string `short:"t" long:"time"   description:"Instant as RFC3339 (repeatable); defaults to now"`
	Format string   `short:"f" long:"format" description:"Output format" choice:"json" choice:"yaml" default:"json"`
	Output string   `short:"o" long:"out"    description:"Output file path. Writes to stdout if empty"`
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

	times := make([]time.Time, 0, len(opts.Times))
	if len(opts.Times) == 0 {
		times = append(times, time.Now().UTC())
	}
	for _, raw := range opts.Times {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			log.Fatal().Err(err).Str("time", raw).Msg("Invalid RFC3339 instant")
		}
		times = append(times, t)
	}

	summaries := astrotime.SummarizeAll(times)

	var out []byte
	var err error
	if opts.Format == "yaml" {
		out, err = yaml.Marshal(summaries)
	} else {
		out, err = json.MarshalIndent(summaries, "", "  ")
	}
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to marshal output")
	}

	if opts.Output != "" {
		if err := os.WriteFile(opts.Output, out, 0644); err != nil {
			log.Fatal().Err(err).Msg("Failed to write output file")
		}
		log.Info().Str("path", opts.Output).Int("count", len(summaries)).Msg("Wrote conversions")
		return
	}

	fmt.Println(string(out))
}
