// Package astrotime handles civil/atomic time conversions: Julian dates,
// leap years, the TAI-UTC leap second table and compact date encodings.
package astrotime

import (
	"fmt"
	"time"
)

// MJDOffset is the Julian date of the Modified Julian Date epoch
// (1858-11-17 00:00 UTC).
const MJDOffset = 2400000.5

// JulianDateYMDH returns the Julian date for a Gregorian calendar date and
// universal time expressed in decimal hours.
func JulianDateYMDH(year, month, day int, ut float64) float64 {
	jdn := day - 32075 +
		1461*(year+4800+(month-14)/12)/4 +
		367*(month-2-(month-14)/12*12)/12 -
		3*((year+4900+(month-14)/12)/100)/4

	return float64(jdn) + (ut-12.0)/24.0
}

// JulianDate returns the Julian date of t. The time is converted to UTC
// before the calendar fields are read.
func JulianDate(t time.Time) float64 {
	u := t.UTC()
	return JulianDateYMDH(u.Year(), int(u.Month()), u.Day(), FPHours(u))
}

// ModifiedJD returns the Modified Julian Date of t.
func ModifiedJD(t time.Time) float64 {
	return JulianDate(t) - MJDOffset
}

// DateLong encodes t as a YYYYMMDD integer, e.g. 20001202.
func DateLong(t time.Time) int {
	u := t.UTC()
	return u.Year()*10000 + int(u.Month())*100 + u.Day()
}

// DateLongs encodes every element of ts as a YYYYMMDD integer.
func DateLongs(ts []time.Time) []int {
	out := make([]int, len(ts))
	for i, t := range ts {
		out[i] = DateLong(t)
	}
	return out
}

// FromDateLong decodes a YYYYMMDD integer into a UTC midnight time.
// It rejects values whose month or day fields are out of range.
func FromDateLong(dl int) (time.Time, error) {
	year := dl / 10000
	month := dl / 100 % 100
	day := dl % 100

	if year < 1 || month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("%w: %d", ErrBadDateLong, dl)
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if DateLong(t) != dl {
		// e.g. 20230230 normalizes to a different day
		return time.Time{}, fmt.Errorf("%w: %d", ErrBadDateLong, dl)
	}

	return t, nil
}

// FPHours returns the time of day of t as fractional hours, including
// minutes, seconds and the sub-second part.
func FPHours(t time.Time) float64 {
	u := t.UTC()
	return float64(u.Hour()) +
		float64(u.Minute())/60.0 +
		float64(u.Second())/3600.0 +
		float64(u.Nanosecond())/3.6e12
}

// FPHoursSlice converts every element of ts to fractional hours.
func FPHoursSlice(ts []time.Time) []float64 {
	out := make([]float64, len(ts))
	for i, t := range ts {
		out[i] = FPHours(t)
	}
	return out
}
