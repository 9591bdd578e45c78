package risk

import (
	"errors"
	"math"
	"strconv"

	"github.com/helios-ride/service-routing/internal/domain/route"
)

// ErrNoRoutes is returned when there is nothing to score.
var ErrNoRoutes = errors.New("no routes to score")

// Bounds of the normalized scales.
const (
	SingleRouteMin = 1.0
	SingleRouteMax = 10.0
	MultiRouteMin  = 2.0
	MultiRouteMax  = 8.0
)

// ScoredRoute is the client-facing result for one route alternative.
type ScoredRoute struct {
	Polyline  string         `json:"polyline"`
	Hazards   []route.LatLng `json:"hazards"`
	Reasons   []string       `json:"reasons"`
	RiskScore float64        `json:"risk_score"`
}

// Normalize maps raw scores onto the bounded risk scale.
//
// A lone route is placed on an absolute curve in [1, 10]. Several routes are
// ranked against each other on a cubic-smoothed curve in [2, 8]; when they all
// tie, a flat tier is chosen from the shared score.
func Normalize(raw []float64) ([]float64, error) {
	switch len(raw) {
	case 0:
		return nil, ErrNoRoutes
	case 1:
		return []float64{normalizeSingle(raw[0])}, nil
	}

	lo, hi := raw[0], raw[0]
	sum := 0.0
	for _, r := range raw {
		lo = math.Min(lo, r)
		hi = math.Max(hi, r)
		sum += r
	}

	out := make([]float64, len(raw))
	if hi == lo {
		tier := tierFor(sum / float64(len(raw)))
		for i := range out {
			out[i] = tier
		}
		return out, nil
	}

	for i, r := range raw {
		relative := (r - lo) / (hi - lo)
		curved := 0.5 + 0.5*math.Pow(2*relative-1, 3)
		out[i] = roundOneDecimal(MultiRouteMin + curved*(MultiRouteMax-MultiRouteMin))
	}
	return out, nil
}

func normalizeSingle(raw float64) float64 {
	var v float64
	switch {
	case raw < 150:
		v = 1 + (raw-100)/50*2
	case raw < 300:
		v = 3 + (raw-150)/150*4
	default:
		v = 7 + (raw-300)/500*3
	}
	v = math.Max(SingleRouteMin, math.Min(SingleRouteMax, v))
	return roundOneDecimal(v)
}

func tierFor(avg float64) float64 {
	switch {
	case avg < 200:
		return 3.0
	case avg < 400:
		return 5.0
	default:
		return 7.0
	}
}

// roundOneDecimal rounds half-to-even on the exact binary value.
func roundOneDecimal(v float64) float64 {
	out, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 1, 64), 64)
	return out
}

// Assess scores and normalizes every route alternative of one request.
func (s *Scorer) Assess(routes []route.Route) ([]ScoredRoute, error) {
	if len(routes) == 0 {
		return nil, ErrNoRoutes
	}

	assessments := make([]Assessment, len(routes))
	raw := make([]float64, len(routes))
	for i, r := range routes {
		assessments[i] = s.Score(r)
		raw[i] = assessments[i].RawScore
	}

	scores, err := Normalize(raw)
	if err != nil {
		return nil, err
	}

	out := make([]ScoredRoute, len(routes))
	for i, r := range routes {
		out[i] = ScoredRoute{
			Polyline:  r.OverviewPolyline.Points,
			Hazards:   assessments[i].Hazards,
			Reasons:   assessments[i].Reasons,
			RiskScore: scores[i],
		}
	}
	return out, nil
}
