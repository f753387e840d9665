// Package trace follows magnetic field lines and classifies their
// topology: closed, open through one polar cap, or interplanetary.
package trace

import "fmt"

// Topology classifies where the two ends of a field line connect.
type Topology int

// Field line classifications.
const (
	// Closed lines reach the target height in both hemispheres.
	Closed Topology = iota
	// InsideEarth means the start position is below the surface.
	InsideEarth
	// OpenNorthLobe lines ground only in the northern hemisphere.
	OpenNorthLobe
	// OpenSouthLobe lines ground only in the southern hemisphere.
	OpenSouthLobe
	// OpenIMF lines never reach the Earth.
	OpenIMF
	// BadTrace marks traces that hit the step budget or a field null.
	BadTrace
	// TargetHeightUnreachable means the start position sits between the
	// surface and the target height sphere.
	TargetHeightUnreachable
)

var topologyNames = map[Topology]string{
	Closed:                  "closed",
	InsideEarth:             "inside_earth",
	OpenNorthLobe:           "open_n_lobe",
	OpenSouthLobe:           "open_s_lobe",
	OpenIMF:                 "open_imf",
	BadTrace:                "bad_trace",
	TargetHeightUnreachable: "target_height_unreachable",
}

// String returns the snake_case classification name used on the wire.
func (tp Topology) String() string {
	if name, ok := topologyNames[tp]; ok {
		return name
	}
	return fmt.Sprintf("Topology(%d)", int(tp))
}

// MarshalText implements encoding.TextMarshaler so the topology serializes
// as its name.
func (tp Topology) MarshalText() ([]byte, error) {
	return []byte(tp.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (tp *Topology) UnmarshalText(b []byte) error {
	name := string(b)
	for t, n := range topologyNames {
		if n == name {
			*tp = t
			return nil
		}
	}
	return fmt.Errorf("unknown topology %q", name)
}

// MarshalYAML keeps YAML output aligned with the JSON names.
func (tp Topology) MarshalYAML() (any, error) {
	return tp.String(), nil
}
