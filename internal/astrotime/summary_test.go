package astrotime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	s := Summarize(time.Date(2000, 12, 2, 12, 0, 0, 0, time.UTC))

	assert.Equal(t, 20001202, s.DateLong)
	assert.InDelta(t, 12.0, s.FPHours, 1e-12)
	assert.InDelta(t, s.JD-MJDOffset, s.MJD, 1e-9)
	assert.InDelta(t, 32.0, s.LeapSeconds, 1e-9)
	assert.True(t, s.LeapYear)

	// non-UTC input is normalized
	loc := time.FixedZone("plus2", 2*3600)
	s = Summarize(time.Date(2000, 12, 2, 14, 0, 0, 0, loc))
	assert.InDelta(t, 12.0, s.FPHours, 1e-12)
	assert.Equal(t, time.UTC, s.Time.Location())
}

func TestSummarizeAll(t *testing.T) {
	noon := time.Date(2000, 12, 2, 12, 0, 0, 0, time.UTC)
	out := SummarizeAll([]time.Time{noon, noon})
	assert.Len(t, out, 2)
	assert.Equal(t, out[0], out[1])
	assert.Empty(t, SummarizeAll(nil))
}
