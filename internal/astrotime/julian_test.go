package astrotime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJulianDateAnchors(t *testing.T) {
	cases := []struct {
		name string
		t    time.Time
		want float64
	}{
		{"J2000 epoch", time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC), 2451545.0},
		{"unix epoch", time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC), 2440587.5},
		{"gregorian reform era", time.Date(1600, 1, 1, 0, 0, 0, 0, time.UTC), 2305447.5},
		{"mjd epoch", time.Date(1858, 11, 17, 0, 0, 0, 0, time.UTC), MJDOffset},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.InDelta(t, c.want, JulianDate(c.t), 1e-9)
		})
	}
}

func TestJulianDateYMDH(t *testing.T) {
	// noon and midnight straddle the integer day number
	assert.InDelta(t, 2451545.0, JulianDateYMDH(2000, 1, 1, 12.0), 1e-9)
	assert.InDelta(t, 2451544.5, JulianDateYMDH(2000, 1, 1, 0.0), 1e-9)
	assert.InDelta(t, 2451545.25, JulianDateYMDH(2000, 1, 1, 18.0), 1e-9)
}

func TestModifiedJD(t *testing.T) {
	assert.InDelta(t, 0.0, ModifiedJD(time.Date(1858, 11, 17, 0, 0, 0, 0, time.UTC)), 1e-9)
	assert.InDelta(t, 51544.5, ModifiedJD(time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)), 1e-9)
}

func TestDateLong(t *testing.T) {
	d := time.Date(2000, 12, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 20001202, DateLong(d))

	// time of day is ignored
	assert.Equal(t, 20001202, DateLong(time.Date(2000, 12, 2, 23, 59, 59, 0, time.UTC)))

	assert.Equal(t, []int{20001202, 20001202}, DateLongs([]time.Time{d, d}))
	assert.Empty(t, DateLongs(nil))
}

func TestFromDateLong(t *testing.T) {
	got, err := FromDateLong(20001202)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2000, 12, 2, 0, 0, 0, 0, time.UTC), got)

	for _, bad := range []int{0, 20001302, 20001232, 20230230, -1} {
		_, err := FromDateLong(bad)
		assert.ErrorIs(t, err, ErrBadDateLong, "dateLong %d", bad)
	}
}

func TestFPHours(t *testing.T) {
	cases := []struct {
		t    time.Time
		want float64
	}{
		{time.Date(2000, 12, 2, 0, 0, 0, 0, time.UTC), 0},
		{time.Date(2000, 12, 2, 12, 0, 0, 0, time.UTC), 12.0},
		{time.Date(2000, 12, 2, 11, 40, 0, 0, time.UTC), 11.666666666666666},
		{time.Date(2000, 12, 2, 1, 1, 20, 0, time.UTC), 1.0222222222222221},
		{time.Date(2000, 12, 2, 1, 1, 20, 34567000, time.UTC), 1.0222318241666666},
	}

	for _, c := range cases {
		assert.InDelta(t, c.want, FPHours(c.t), 1e-12)
	}

	noon := time.Date(2000, 12, 2, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, []float64{12.0, 12.0}, FPHoursSlice([]time.Time{noon, noon}))
}
