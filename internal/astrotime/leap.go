package astrotime

import (
	"errors"
	"time"
)

// ErrBadDateLong is returned for YYYYMMDD values that do not encode a real
// calendar date.
var ErrBadDateLong = errors.New("invalid YYYYMMDD date")

// LeapYear reports whether year is a leap year in the proleptic Gregorian
// calendar.
func LeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// leapEntry is one row of the IERS TAI-UTC table. Rows before 1972 carry a
// rate: TAI-UTC = base + (MJD - mjd0) * rate. Rows from 1972 on are whole
// seconds with rate 0.
type leapEntry struct {
	jd       float64 // effective from this Julian date (0h UTC)
	dateLong int
	base     float64
	mjd0     float64
	rate     float64
}

// IERS table, 1961-01-01 through 2017-01-01.
var leapTable = []leapEntry{
	{2437300.5, 19610101, 1.4228180, 37300, 0.001296},
	{2437512.5, 19610801, 1.3728180, 37300, 0.001296},
	{2437665.5, 19620101, 1.8458580, 37665, 0.0011232},
	{2438334.5, 19631101, 1.9458580, 37665, 0.0011232},
	{2438395.5, 19640101, 3.2401300, 38761, 0.001296},
	{2438486.5, 19640401, 3.3401300, 38761, 0.001296},
	{2438639.5, 19640901, 3.4401300, 38761, 0.001296},
	{2438761.5, 19650101, 3.5401300, 38761, 0.001296},
	{2438820.5, 19650301, 3.6401300, 38761, 0.001296},
	{2438942.5, 19650701, 3.7401300, 38761, 0.001296},
	{2439004.5, 19650901, 3.8401300, 38761, 0.001296},
	{2439126.5, 19660101, 4.3131700, 39126, 0.002592},
	{2439887.5, 19680201, 4.2131700, 39126, 0.002592},
	{2441317.5, 19720101, 10, 0, 0},
	{2441499.5, 19720701, 11, 0, 0},
	{2441683.5, 19730101, 12, 0, 0},
	{2442048.5, 19740101, 13, 0, 0},
	{2442413.5, 19750101, 14, 0, 0},
	{2442778.5, 19760101, 15, 0, 0},
	{2443144.5, 19770101, 16, 0, 0},
	{2443509.5, 19780101, 17, 0, 0},
	{2443874.5, 19790101, 18, 0, 0},
	{2444239.5, 19800101, 19, 0, 0},
	{2444786.5, 19810701, 20, 0, 0},
	{2445151.5, 19820701, 21, 0, 0},
	{2445516.5, 19830701, 22, 0, 0},
	{2446247.5, 19850701, 23, 0, 0},
	{2447161.5, 19880101, 24, 0, 0},
	{2447892.5, 19900101, 25, 0, 0},
	{2448257.5, 19910101, 26, 0, 0},
	{2448804.5, 19920701, 27, 0, 0},
	{2449169.5, 19930701, 28, 0, 0},
	{2449534.5, 19940701, 29, 0, 0},
	{2450083.5, 19960101, 30, 0, 0},
	{2450630.5, 19970701, 31, 0, 0},
	{2451179.5, 19990101, 32, 0, 0},
	{2453736.5, 20060101, 33, 0, 0},
	{2454832.5, 20090101, 34, 0, 0},
	{2456109.5, 20120701, 35, 0, 0},
	{2457204.5, 20150701, 36, 0, 0},
	{2457754.5, 20170101, 37, 0, 0},
}

// LeapSeconds returns TAI-UTC in seconds at the given Julian date. Dates
// before 1961 return 0.
func LeapSeconds(jd float64) float64 {
	for i := len(leapTable) - 1; i >= 0; i-- {
		e := leapTable[i]
		if jd < e.jd {
			continue
		}
		if e.rate != 0 {
			return e.base + (jd-MJDOffset-e.mjd0)*e.rate
		}
		return e.base
	}
	return 0
}

// LeapSecondDay reports the length in SI seconds of the UTC day encoded as
// a YYYYMMDD integer: 86401 for a day that ends in a positive leap second,
// 86400 otherwise.
func LeapSecondDay(dateLong int) (secondsInDay float64, leap bool) {
	t, err := FromDateLong(dateLong)
	if err != nil {
		return 86400, false
	}

	next := DateLong(t.Add(24 * time.Hour))
	for _, e := range leapTable {
		if e.rate != 0 {
			continue
		}
		if e.dateLong == next {
			return 86401, true
		}
	}

	return 86400, false
}

// UTCToTAI converts a UTC Julian date to a TAI Julian date.
func UTCToTAI(jd float64) float64 {
	return jd + LeapSeconds(jd)/86400.0
}

// TAIToUTC converts a TAI Julian date to a UTC Julian date. The leap second
// count is looked up iteratively since the table is keyed by UTC.
func TAIToUTC(jd float64) float64 {
	utc := jd
	for i := 0; i < 3; i++ {
		utc = jd - LeapSeconds(utc)/86400.0
	}
	return utc
}
