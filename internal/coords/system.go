package coords

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedSystem is returned when a coordinate system name is not one
// of the supported set.
var ErrUnsupportedSystem = errors.New("unsupported coordinate system")

// System identifies a geocentric coordinate system.
type System int

// Supported coordinate systems.
const (
	GEI System = iota // Geocentric Equatorial Inertial (true of date)
	GEO               // Geographic, rotates with the Earth
	GSE               // Geocentric Solar Ecliptic
	GSM               // Geocentric Solar Magnetospheric
	SM                // Solar Magnetic
	MAG               // Geomagnetic, dipole-axis aligned
)

var systemNames = map[System]string{
	GEI: "GEI",
	GEO: "GEO",
	GSE: "GSE",
	GSM: "GSM",
	SM:  "SM",
	MAG: "MAG",
}

// String returns the canonical upper-case name of the system.
func (s System) String() string {
	if name, ok := systemNames[s]; ok {
		return name
	}
	return fmt.Sprintf("System(%d)", int(s))
}

// ParseSystem resolves a case-insensitive system name. Unknown names return
// ErrUnsupportedSystem.
func ParseSystem(name string) (System, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for sys, n := range systemNames {
		if n == upper {
			return sys, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedSystem, name)
}

// Systems lists the supported systems in a stable order.
func Systems() []System {
	return []System{GEI, GEO, GSE, GSM, SM, MAG}
}
