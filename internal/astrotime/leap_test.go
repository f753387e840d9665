package astrotime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLeapYear(t *testing.T) {
	leaps := map[int]bool{}
	for y := 1600; y <= 2040; y += 4 {
		leaps[y] = true
	}
	// century years are leap only when divisible by 400
	leaps[1700] = false
	leaps[1800] = false
	leaps[1900] = false

	for y := 1600; y <= 2040; y++ {
		assert.Equal(t, leaps[y], LeapYear(y), "year %d", y)
	}
}

func TestLeapSecondsIntegerEra(t *testing.T) {
	cases := []struct {
		jd   float64
		want float64
	}{
		{2441317.5, 10}, // 1972-01-01
		{2441499.5, 11}, // 1972-07-01
		{2444239.5, 19}, // 1980-01-01
		{2450630.5, 31}, // 1997-07-01
		{2451179.5, 32}, // 1999-01-01
		{2454832.5, 34}, // 2009-01-01
		{2455553.0, 34}, // 2010-12-22 mid-era
		{2457754.5, 37}, // 2017-01-01
		{2460000.0, 37}, // beyond last entry
	}

	for _, c := range cases {
		assert.InDelta(t, c.want, LeapSeconds(c.jd), 1e-9, "jd %f", c.jd)
	}
}

func TestLeapSecondsRateEra(t *testing.T) {
	// epoch bases
	assert.InDelta(t, 1.4228180, LeapSeconds(2437300.5), 1e-9)

	// 1964-01-01: 3.2401300 + (38395 - 38761) * 0.001296
	assert.InDelta(t, 2.765794, LeapSeconds(2438395.5), 1e-9)

	// 1966-01-01 falls exactly on its own reference MJD
	assert.InDelta(t, 4.3131700, LeapSeconds(2439126.5), 1e-9)

	// pre-table dates carry no offset
	assert.Zero(t, LeapSeconds(2415028.0)) // 1900-01-08
	assert.Zero(t, LeapSeconds(2437300.0))
}

func TestLeapSecondsMonotonic(t *testing.T) {
	// monotonic only from 1972 on; the rate era has two downward steps
	prev := 0.0
	for jd := 2441317.5; jd < 2458000.0; jd += 10 {
		cur := LeapSeconds(jd)
		assert.GreaterOrEqual(t, cur, prev, "jd %f", jd)
		prev = cur
	}
}

func TestLeapSecondDay(t *testing.T) {
	leapDays := []int{
		19720630, 19721231, 19731231, 19810630,
		19871231, 19920630, 19951231, 20161231,
	}
	for _, dl := range leapDays {
		secs, leap := LeapSecondDay(dl)
		assert.True(t, leap, "dateLong %d", dl)
		assert.Equal(t, 86401.0, secs, "dateLong %d", dl)
	}

	for _, dl := range []int{19720629, 19720701, 20001202, 20170101} {
		secs, leap := LeapSecondDay(dl)
		assert.False(t, leap, "dateLong %d", dl)
		assert.Equal(t, 86400.0, secs, "dateLong %d", dl)
	}

	// malformed input behaves as an ordinary day
	secs, leap := LeapSecondDay(99999999)
	assert.False(t, leap)
	assert.Equal(t, 86400.0, secs)
}

func TestUTCTAIRoundTrip(t *testing.T) {
	for _, jd := range []float64{2441317.5, 2451545.0, 2455553.0} {
		tai := UTCToTAI(jd)
		assert.Greater(t, tai, jd)
		assert.InDelta(t, jd, TAIToUTC(tai), 1e-9, "jd %f", jd)
	}
}
