package coords

import (
	"fmt"
	"math"
	"time"

	"github.com/openmag/geomag/internal/astrotime"
)

const (
	degPerRad = 180.0 / math.Pi
	radPerDeg = math.Pi / 180.0
)

// Context holds the rotation matrices and solar/dipole geometry for one
// date and universal time. It is immutable after construction and safe for
// concurrent use.
type Context struct {
	dateLong int
	utHours  float64
	jd       float64

	sunGEI Vec3 // unit vector toward the sun
	dipGEI Vec3 // unit dipole axis, northern hemisphere
	moment float64
	tilt   float64

	// GEI -> system rotations
	mats [MAG + 1]Matrix3
}

// NewContext prepares transforms for a YYYYMMDD date and universal time in
// decimal hours.
func NewContext(dateLong int, utHours float64) (*Context, error) {
	if _, err := astrotime.FromDateLong(dateLong); err != nil {
		return nil, err
	}
	if utHours < 0 || utHours >= 24 {
		return nil, fmt.Errorf("universal time %g out of range [0, 24)", utHours)
	}

	year := dateLong / 10000
	month := dateLong / 100 % 100
	day := dateLong % 100

	c := &Context{
		dateLong: dateLong,
		utHours:  utHours,
		jd:       astrotime.JulianDateYMDH(year, month, day, utHours),
	}
	c.build()

	return c, nil
}

// NewContextTime prepares transforms for a time.Time instant.
func NewContextTime(t time.Time) (*Context, error) {
	return NewContext(astrotime.DateLong(t), astrotime.FPHours(t))
}

// build computes the sun vector, dipole axis and every GEI->system basis.
func (c *Context) build() {
	d := c.jd - 2451545.0

	// Greenwich mean sidereal time
	gmst := math.Mod(280.46061837+360.98564736629*d, 360) * radPerDeg

	// low-accuracy solar ephemeris (Astronomical Almanac)
	meanLon := (280.460 + 0.9856474*d) * radPerDeg
	meanAnom := (357.528 + 0.9856003*d) * radPerDeg
	eclLon := meanLon + (1.915*math.Sin(meanAnom)+0.020*math.Sin(2*meanAnom))*radPerDeg
	obliq := (23.439 - 0.0000004*d) * radPerDeg

	c.sunGEI = Vec3{
		math.Cos(eclLon),
		math.Cos(obliq) * math.Sin(eclLon),
		math.Sin(obliq) * math.Sin(eclLon),
	}

	// geographic basis: rotation about Z by GMST
	sinT, cosT := math.Sin(gmst), math.Cos(gmst)
	geoX := Vec3{cosT, sinT, 0}
	geoY := Vec3{-sinT, cosT, 0}
	geoZ := Vec3{0, 0, 1}

	// dipole axis for the decimal year, rotated from GEO into GEI
	decYear := 2000.0 + d/365.25
	dipGEO, moment := dipoleAxisGEO(decYear)
	c.moment = moment
	c.dipGEI = geoX.Scale(dipGEO.X).
		Add(geoY.Scale(dipGEO.Y)).
		Add(geoZ.Scale(dipGEO.Z)).
		Normalize()

	sun := c.sunGEI
	eclPole := Vec3{0, -math.Sin(obliq), math.Cos(obliq)}

	// GSE: x to the sun, z to the ecliptic pole
	gseY := eclPole.Cross(sun).Normalize()

	// GSM: x to the sun, dipole axis in the xz-plane
	gsmY := c.dipGEI.Cross(sun).Normalize()
	gsmZ := sun.Cross(gsmY)

	// SM: z along the dipole axis, sun in the xz-plane
	smX := gsmY.Cross(c.dipGEI)

	// MAG: z along the dipole axis, y = geographic pole x dipole
	magY := geoZ.Cross(c.dipGEI).Normalize()
	magX := magY.Cross(c.dipGEI)

	c.tilt = math.Asin(clamp(c.dipGEI.Dot(sun), -1, 1))

	c.mats[GEI] = rowBasis(Vec3{1, 0, 0}, Vec3{0, 1, 0}, Vec3{0, 0, 1})
	c.mats[GEO] = rowBasis(geoX, geoY, geoZ)
	c.mats[GSE] = rowBasis(sun, gseY, eclPole)
	c.mats[GSM] = rowBasis(sun, gsmY, gsmZ)
	c.mats[SM] = rowBasis(smX, gsmY, c.dipGEI)
	c.mats[MAG] = rowBasis(magX, magY, c.dipGEI)
}

// Convert transforms a vector between two supported coordinate systems.
func (c *Context) Convert(v Vec3, from, to System) (Vec3, error) {
	if from < GEI || from > MAG {
		return Vec3{}, fmt.Errorf("%w: %v", ErrUnsupportedSystem, from)
	}
	if to < GEI || to > MAG {
		return Vec3{}, fmt.Errorf("%w: %v", ErrUnsupportedSystem, to)
	}
	if from == to {
		return v, nil
	}

	gei := c.mats[from].Transpose().MulVec(v)
	return c.mats[to].MulVec(gei), nil
}

// MLT returns the magnetic local time of a position in decimal hours
// [0, 24). Noon is toward the sun in the solar magnetic frame.
func (c *Context) MLT(v Vec3, sys System) (float64, error) {
	sm, err := c.Convert(v, sys, SM)
	if err != nil {
		return 0, err
	}

	mlt := 12.0 + math.Atan2(sm.Y, sm.X)*degPerRad/15.0
	if mlt < 0 {
		mlt += 24
	}
	if mlt >= 24 {
		mlt -= 24
	}

	return mlt, nil
}

// JD returns the Julian date of the context instant.
func (c *Context) JD() float64 { return c.jd }

// DateLong returns the YYYYMMDD date of the context.
func (c *Context) DateLong() int { return c.dateLong }

// UTHours returns the universal time of the context in decimal hours.
func (c *Context) UTHours() float64 { return c.utHours }

// Sun returns the unit vector toward the sun in GEI.
func (c *Context) Sun() Vec3 { return c.sunGEI }

// DipoleAxis returns the unit dipole axis in the requested system.
func (c *Context) DipoleAxis(sys System) (Vec3, error) {
	return c.Convert(c.dipGEI, GEI, sys)
}

// DipoleMoment returns the dipole strength B0 in nT at 1 Earth radius on
// the magnetic equator.
func (c *Context) DipoleMoment() float64 { return c.moment }

// DipoleTilt returns the dipole tilt angle in radians, positive when the
// northern dipole pole leans sunward.
func (c *Context) DipoleTilt() float64 { return c.tilt }

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
