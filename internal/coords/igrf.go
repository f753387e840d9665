package coords

import "math"

// dipoleEpoch holds the first-degree IGRF Gauss coefficients (nT) for one
// model epoch.
type dipoleEpoch struct {
	year          float64
	g10, g11, h11 float64
}

// First-degree coefficients of IGRF-13, 1965-2020, plus the predicted
// secular variation for extrapolation past the last epoch.
var dipoleEpochs = []dipoleEpoch{
	{1965, -30334, -2119, 5776},
	{1970, -30220, -2068, 5737},
	{1975, -30100, -2013, 5675},
	{1980, -29992, -1956, 5604},
	{1985, -29873, -1905, 5500},
	{1990, -29775, -1848, 5406},
	{1995, -29692, -1784, 5306},
	{2000, -29619.4, -1728.2, 5186.1},
	{2005, -29554.6, -1669.0, 5078.0},
	{2010, -29496.6, -1586.4, 4944.3},
	{2015, -29441.5, -1501.8, 4795.4},
	{2020, -29404.8, -1450.9, 4652.5},
}

var dipoleSV = dipoleEpoch{year: 0, g10: 5.7, g11: 7.4, h11: -25.9}

// dipoleCoeffs interpolates the dipole coefficients for a decimal year.
// Years before the first epoch clamp to it; years after the last epoch
// extrapolate with the secular variation.
func dipoleCoeffs(year float64) (g10, g11, h11 float64) {
	first := dipoleEpochs[0]
	if year <= first.year {
		return first.g10, first.g11, first.h11
	}

	last := dipoleEpochs[len(dipoleEpochs)-1]
	if year >= last.year {
		dy := year - last.year
		return last.g10 + dy*dipoleSV.g10,
			last.g11 + dy*dipoleSV.g11,
			last.h11 + dy*dipoleSV.h11
	}

	for i := 1; i < len(dipoleEpochs); i++ {
		hi := dipoleEpochs[i]
		if year > hi.year {
			continue
		}
		lo := dipoleEpochs[i-1]
		f := (year - lo.year) / (hi.year - lo.year)
		return lo.g10 + f*(hi.g10-lo.g10),
			lo.g11 + f*(hi.g11-lo.g11),
			lo.h11 + f*(hi.h11-lo.h11)
	}

	return last.g10, last.g11, last.h11
}

// dipoleAxisGEO returns the unit vector of the dipole axis (pointing into
// the northern hemisphere) in GEO coordinates and the dipole moment B0 in
// nT for a decimal year.
func dipoleAxisGEO(year float64) (axis Vec3, moment float64) {
	g10, g11, h11 := dipoleCoeffs(year)
	moment = math.Sqrt(g10*g10 + g11*g11 + h11*h11)

	// g10 is negative, so -g10/B0 points north
	axis = Vec3{-g11 / moment, -h11 / moment, -g10 / moment}
	return axis, moment
}
