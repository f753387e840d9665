// Package bfield provides magnetospheric magnetic field models evaluated
// in GSM coordinates.
package bfield

import (
	"errors"
	"fmt"
	"strings"

	"github.com/openmag/geomag/internal/coords"
)

// ErrUnsupportedModel is returned when a field model name is not in the
// registry.
var ErrUnsupportedModel = errors.New("unsupported field model")

// DefaultIMF is the uniform southward interplanetary field in nT used by
// the open-magnetosphere model when none is configured.
const DefaultIMF = 15.0

// Model evaluates a magnetic field at a GSM position given in Earth radii.
// The result is in nT, GSM components.
type Model interface {
	Name() string
	Eval(ctx *coords.Context, posGSM coords.Vec3) coords.Vec3
}

// Config carries tunable model parameters.
type Config struct {
	// IMF is the magnitude of the uniform southward interplanetary field
	// in nT. Zero selects DefaultIMF.
	IMF float64 `yaml:"imf" json:"imf"`
}

// New resolves a case-insensitive model name. Supported: "cdip" (centered
// tilted dipole) and "dungey" (dipole plus uniform southward IMF).
func New(name string, cfg Config) (Model, error) {
	imf := cfg.IMF
	if imf <= 0 {
		imf = DefaultIMF
	}

	switch strings.ToLower(strings.TrimSpace(name)) {
	case "cdip":
		return CenteredDipole{}, nil
	case "dungey":
		return DipoleIMF{IMF: imf}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedModel, name)
	}
}

// Names lists the registered model names.
func Names() []string {
	return []string{"cdip", "dungey"}
}
