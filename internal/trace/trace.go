package trace

import (
	"math"

	"github.com/openmag/geomag/internal/bfield"
	"github.com/openmag/geomag/internal/coords"
)

// EarthRadius is the reference Earth radius in km.
const EarthRadius = 6371.2

// Magnetopause is the Shue-style boundary r = R0 * (2/(1+cos theta))^Alpha
// with theta measured from the sunward GSM x-axis.
type Magnetopause struct {
	R0    float64 `yaml:"r0" json:"r0"`       // subsolar standoff, Re
	Alpha float64 `yaml:"alpha" json:"alpha"` // tail flaring exponent
}

// DefaultMagnetopause returns quiet-time boundary parameters.
func DefaultMagnetopause() Magnetopause {
	return Magnetopause{R0: 10.22, Alpha: 0.58}
}

// Outside reports whether a GSM position lies beyond the boundary.
func (mp Magnetopause) Outside(posGSM coords.Vec3) bool {
	r := posGSM.Mag()
	if r == 0 {
		return false
	}

	cosT := posGSM.X / r
	if 1+cosT < 1e-6 {
		// deep tail, boundary is effectively at infinity
		return false
	}

	return r > mp.R0*math.Pow(2/(1+cosT), mp.Alpha)
}

// Options tunes the tracer. The zero value selects the defaults.
type Options struct {
	// TargetHeight is the footpoint altitude above the surface in km.
	TargetHeight float64 `yaml:"target_height" json:"target_height"`
	// MaxSteps bounds each directional trace.
	MaxSteps int `yaml:"max_steps" json:"max_steps"`
	// EscapeRadius in Re; past it a line counts as interplanetary.
	EscapeRadius float64 `yaml:"escape_radius" json:"escape_radius"`
	// Magnetopause bounds the trace region.
	Magnetopause Magnetopause `yaml:"magnetopause" json:"magnetopause"`
}

func (o Options) normalized() Options {
	if o.TargetHeight <= 0 {
		o.TargetHeight = 120
	}
	if o.MaxSteps <= 0 {
		o.MaxSteps = 20000
	}
	if o.EscapeRadius <= 0 {
		o.EscapeRadius = 30
	}
	if o.Magnetopause.R0 <= 0 {
		o.Magnetopause = DefaultMagnetopause()
	}
	return o
}

// targetRadius is the footpoint sphere radius in Re.
func (o Options) targetRadius() float64 {
	return 1 + o.TargetHeight/EarthRadius
}

// Result carries the extended classification output.
type Result struct {
	Topology Topology `json:"topology" yaml:"topology"`

	// Footpoints on the target height sphere, GSM Re. Valid only when the
	// matching Has flag is set.
	NorthFootpoint coords.Vec3 `json:"north_footpoint" yaml:"north_footpoint"`
	SouthFootpoint coords.Vec3 `json:"south_footpoint" yaml:"south_footpoint"`
	HasNorth       bool        `json:"has_north" yaml:"has_north"`
	HasSouth       bool        `json:"has_south" yaml:"has_south"`

	// MinB is the smallest field magnitude seen along the line in nT and
	// MinBPos where it occurred.
	MinB    float64     `json:"min_b" yaml:"min_b"`
	MinBPos coords.Vec3 `json:"min_b_pos" yaml:"min_b_pos"`
}

// Classify traces the field line through pos and returns its topology. The
// position may be given in any supported coordinate system.
func Classify(ctx *coords.Context, model bfield.Model, pos coords.Vec3, sys coords.System, opt Options) (Topology, error) {
	res, err := ClassifyExtended(ctx, model, pos, sys, opt)
	if err != nil {
		return BadTrace, err
	}
	return res.Topology, nil
}

type endKind int

const (
	endFootpoint endKind = iota
	endEscaped
	endExhausted
	endNull
)

type directional struct {
	kind      endKind
	footpoint coords.Vec3
}

// ClassifyExtended is Classify plus footpoints and the minimum-|B| point.
func ClassifyExtended(ctx *coords.Context, model bfield.Model, pos coords.Vec3, sys coords.System, opt Options) (Result, error) {
	opt = opt.normalized()

	gsm, err := ctx.Convert(pos, sys, coords.GSM)
	if err != nil {
		return Result{}, err
	}

	res := Result{}
	r := gsm.Mag()

	switch {
	case r < 1:
		res.Topology = InsideEarth
		return res, nil
	case r < opt.targetRadius():
		res.Topology = TargetHeightUnreachable
		return res, nil
	case opt.Magnetopause.Outside(gsm):
		res.Topology = OpenIMF
		return res, nil
	}

	res.MinB = math.Inf(1)
	track := func(p coords.Vec3, b float64) {
		if b < res.MinB {
			res.MinB = b
			res.MinBPos = p
		}
	}

	fwd := traceDirection(ctx, model, gsm, +1, opt, track)
	bwd := traceDirection(ctx, model, gsm, -1, opt, track)

	for _, d := range []directional{fwd, bwd} {
		if d.kind != endFootpoint {
			continue
		}
		sm, cerr := ctx.Convert(d.footpoint, coords.GSM, coords.SM)
		if cerr != nil {
			return Result{}, cerr
		}
		if sm.Z >= 0 {
			res.NorthFootpoint = d.footpoint
			res.HasNorth = true
		} else {
			res.SouthFootpoint = d.footpoint
			res.HasSouth = true
		}
	}

	switch {
	case fwd.kind == endExhausted || bwd.kind == endExhausted,
		fwd.kind == endNull || bwd.kind == endNull:
		res.Topology = BadTrace
	case res.HasNorth && res.HasSouth:
		res.Topology = Closed
	case res.HasNorth:
		res.Topology = OpenNorthLobe
	case res.HasSouth:
		res.Topology = OpenSouthLobe
	default:
		res.Topology = OpenIMF
	}

	return res, nil
}

// traceDirection integrates the field direction from start until the line
// grounds, escapes, nulls out or exhausts the step budget. dir selects
// parallel (+1) or antiparallel (-1) to B.
func traceDirection(ctx *coords.Context, model bfield.Model, start coords.Vec3, dir float64, opt Options, track func(coords.Vec3, float64)) directional {
	const nullField = 1e-3 // nT

	rTarget := opt.targetRadius()
	pos := start

	step := func(p coords.Vec3) (coords.Vec3, bool) {
		b := model.Eval(ctx, p)
		m := b.Mag()
		if m < nullField {
			return coords.Vec3{}, false
		}
		return b.Scale(dir / m), true
	}

	for i := 0; i < opt.MaxSteps; i++ {
		r := pos.Mag()
		h := clampStep(0.02 * r)

		// RK4 on the unit direction field
		b := model.Eval(ctx, pos)
		m := b.Mag()
		if m < nullField {
			return directional{kind: endNull}
		}
		track(pos, m)
		k1 := b.Scale(dir / m)

		k2, ok := step(pos.Add(k1.Scale(h / 2)))
		if !ok {
			return directional{kind: endNull}
		}
		k3, ok := step(pos.Add(k2.Scale(h / 2)))
		if !ok {
			return directional{kind: endNull}
		}
		k4, ok := step(pos.Add(k3.Scale(h)))
		if !ok {
			return directional{kind: endNull}
		}

		next := pos.Add(k1.Add(k2.Scale(2)).Add(k3.Scale(2)).Add(k4).Scale(h / 6))

		if next.Mag() <= rTarget {
			return directional{
				kind:      endFootpoint,
				footpoint: sphereCrossing(pos, next, rTarget),
			}
		}
		if next.Mag() > opt.EscapeRadius || opt.Magnetopause.Outside(next) {
			return directional{kind: endEscaped}
		}

		pos = next
	}

	return directional{kind: endExhausted}
}

func clampStep(h float64) float64 {
	const minStep, maxStep = 0.005, 0.2
	if h < minStep {
		return minStep
	}
	if h > maxStep {
		return maxStep
	}
	return h
}

// sphereCrossing bisects the chord between an outside and an inside point
// down to the sphere of radius rt.
func sphereCrossing(outside, inside coords.Vec3, rt float64) coords.Vec3 {
	for i := 0; i < 60; i++ {
		mid := outside.Add(inside).Scale(0.5)
		if mid.Mag() > rt {
			outside = mid
		} else {
			inside = mid
		}
		if outside.Sub(inside).Mag() < 1e-9 {
			break
		}
	}
	return outside.Add(inside).Scale(0.5)
}
