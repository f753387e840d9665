package server

import (
	"github.com/rs/zerolog/log"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/html"

	"github.com/openmag/geomag/internal/config"
)

// ServerContext holds dependencies for request handlers.
type ServerContext struct {
	Config    *config.Config
	Metrics   *MetricsCollector
	IndexHTML []byte
}

// NewServerContext initializes the context: the field model is resolved
// once to fail fast on bad configuration, and the index page is minified.
func NewServerContext(cfg *config.Config) (*ServerContext, error) {
	if _, err := cfg.BuildModel(); err != nil {
		return nil, err
	}

	m := minify.New()
	m.AddFunc("text/html", html.Minify)

	index, err := m.Bytes("text/html", indexHTML)
	if err != nil {
		log.Warn().Err(err).Msg("Index page minification failed, serving raw")
		index = indexHTML
	}

	log.Info().
		Str("model", cfg.Model).
		Int("index_bytes", len(index)).
		Msg("Server context initialized")

	return &ServerContext{
		Config:    cfg,
		Metrics:   NewMetricsCollector(),
		IndexHTML: index,
	}, nil
}
