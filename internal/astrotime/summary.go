package astrotime

import "time"

// Summary bundles every supported encoding of one instant.
type Summary struct {
	Time        time.Time `json:"time" yaml:"time"`
	DateLong    int       `json:"date_long" yaml:"date_long"`
	FPHours     float64   `json:"fp_hours" yaml:"fp_hours"`
	JD          float64   `json:"jd" yaml:"jd"`
	MJD         float64   `json:"mjd" yaml:"mjd"`
	LeapSeconds float64   `json:"leap_seconds" yaml:"leap_seconds"`
	LeapYear    bool      `json:"leap_year" yaml:"leap_year"`
}

// Summarize converts an instant to all supported encodings.
func Summarize(t time.Time) Summary {
	u := t.UTC()
	jd := JulianDate(u)

	return Summary{
		Time:        u,
		DateLong:    DateLong(u),
		FPHours:     FPHours(u),
		JD:          jd,
		MJD:         jd - MJDOffset,
		LeapSeconds: LeapSeconds(jd),
		LeapYear:    LeapYear(u.Year()),
	}
}

// SummarizeAll converts a batch of instants.
func SummarizeAll(ts []time.Time) []Summary {
	out := make([]Summary, len(ts))
	for i, t := range ts {
		out[i] = Summarize(t)
	}
	return out
}
