// Package server handles HTTP requests and middleware.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/openmag/geomag/internal/astrotime"
	"github.com/openmag/geomag/internal/bfield"
	"github.com/openmag/geomag/internal/coords"
	"github.com/openmag/geomag/internal/trace"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Ignoring error as we cannot handle client disconnects
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

// queryFloat parses a required float parameter.
func queryFloat(q url.Values, key string) (float64, error) {
	raw := q.Get(key)
	if raw == "" {
		return 0, fmt.Errorf("missing required parameter %q", key)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("parameter %q: %w", key, err)
	}
	return v, nil
}

// queryPosition parses the x, y, z parameters.
func queryPosition(q url.Values) (coords.Vec3, error) {
	x, err := queryFloat(q, "x")
	if err != nil {
		return coords.Vec3{}, err
	}
	y, err := queryFloat(q, "y")
	if err != nil {
		return coords.Vec3{}, err
	}
	z, err := queryFloat(q, "z")
	if err != nil {
		return coords.Vec3{}, err
	}
	return coords.Vec3{X: x, Y: y, Z: z}, nil
}

// queryContext builds the transform context from date and ut parameters.
func queryContext(q url.Values) (*coords.Context, error) {
	raw := q.Get("date")
	if raw == "" {
		return nil, errors.New(`missing required parameter "date"`)
	}
	dateLong, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("parameter %q: %w", "date", err)
	}

	ut := 0.0
	if q.Get("ut") != "" {
		if ut, err = queryFloat(q, "ut"); err != nil {
			return nil, err
		}
	}

	return coords.NewContext(dateLong, ut)
}

type classifyResponse struct {
	Topology string        `json:"topology"`
	Position coords.Vec3   `json:"position"`
	System   string        `json:"system"`
	Date     int           `json:"date"`
	UT       float64       `json:"ut"`
	Model    string        `json:"model"`
	Extended *trace.Result `json:"extended,omitempty"`
}

// HandleClassify traces the field line through a position and reports its
// topology.
func (s *ServerContext) HandleClassify(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	pos, err := queryPosition(q)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	ctx, err := queryContext(q)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	sysName := q.Get("sys")
	if sysName == "" {
		sysName = "GSM"
	}
	sys, err := coords.ParseSystem(sysName)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	modelName := q.Get("model")
	if modelName == "" {
		modelName = s.Config.Model
	}
	model, err := bfield.New(modelName, s.Config.Field)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	res, err := trace.ClassifyExtended(ctx, model, pos, sys, s.Config.Tracer)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	s.Metrics.RecordClassification(res.Topology.String())

	resp := classifyResponse{
		Topology: res.Topology.String(),
		Position: pos,
		System:   sys.String(),
		Date:     ctx.DateLong(),
		UT:       ctx.UTHours(),
		Model:    model.Name(),
	}
	if q.Get("extended") == "true" || q.Get("extended") == "1" {
		resp.Extended = &res
	}

	writeJSON(w, http.StatusOK, resp)
}

type convertResponse struct {
	Input  coords.Vec3 `json:"input"`
	Output coords.Vec3 `json:"output"`
	From   string      `json:"from"`
	To     string      `json:"to"`
	Date   int         `json:"date"`
	UT     float64     `json:"ut"`
}

// HandleConvert transforms a vector between coordinate systems.
func (s *ServerContext) HandleConvert(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	pos, err := queryPosition(q)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	ctx, err := queryContext(q)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	from, err := coords.ParseSystem(q.Get("from"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	to, err := coords.ParseSystem(q.Get("to"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	out, err := ctx.Convert(pos, from, to)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	writeJSON(w, http.StatusOK, convertResponse{
		Input:  pos,
		Output: out,
		From:   from.String(),
		To:     to.String(),
		Date:   ctx.DateLong(),
		UT:     ctx.UTHours(),
	})
}

type leapSecondsResponse struct {
	JD            float64  `json:"jd"`
	LeapSeconds   float64  `json:"leap_seconds"`
	Date          *int     `json:"date,omitempty"`
	SecondsInDay  *float64 `json:"seconds_in_day,omitempty"`
	LeapSecondDay *bool    `json:"leap_second_day,omitempty"`
}

// HandleLeapSeconds reports TAI-UTC for a Julian date or a YYYYMMDD day.
func (s *ServerContext) HandleLeapSeconds(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var resp leapSecondsResponse

	switch {
	case q.Get("jd") != "":
		jd, err := queryFloat(q, "jd")
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		resp.JD = jd

	case q.Get("date") != "":
		dateLong, err := strconv.Atoi(q.Get("date"))
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Errorf("parameter %q: %w", "date", err))
			return
		}
		day, err := astrotime.FromDateLong(dateLong)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}

		secs, leap := astrotime.LeapSecondDay(dateLong)
		resp.JD = astrotime.JulianDate(day)
		resp.Date = &dateLong
		resp.SecondsInDay = &secs
		resp.LeapSecondDay = &leap

	default:
		writeError(w, http.StatusBadRequest, errors.New(`need parameter "jd" or "date"`))
		return
	}

	resp.LeapSeconds = astrotime.LeapSeconds(resp.JD)
	writeJSON(w, http.StatusOK, resp)
}

// HandleDateConv converts one or more RFC3339 instants to the compact date
// encodings.
func (s *ServerContext) HandleDateConv(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query()["t"]
	if len(raw) == 0 {
		writeError(w, http.StatusBadRequest, errors.New(`missing required parameter "t"`))
		return
	}

	times := make([]time.Time, 0, len(raw))
	for _, s := range raw {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		times = append(times, t)
	}

	writeJSON(w, http.StatusOK, astrotime.SummarizeAll(times))
}

// HandleIndex serves the landing page.
func (s *ServerContext) HandleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	etag := fmt.Sprintf(`"%x"`, len(s.IndexHTML))

	if match := r.Header.Get("If-None-Match"); match == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "public, no-cache")
	_, _ = w.Write(s.IndexHTML)
}

// Mux wires all routes, including metrics.
func (s *ServerContext) Mux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/classify", s.HandleClassify)
	mux.HandleFunc("/api/convert", s.HandleConvert)
	mux.HandleFunc("/api/leapseconds", s.HandleLeapSeconds)
	mux.HandleFunc("/api/dateconv", s.HandleDateConv)
	mux.Handle("/metrics", s.Metrics.Handler())
	mux.HandleFunc("/", s.HandleIndex)
	return mux
}
