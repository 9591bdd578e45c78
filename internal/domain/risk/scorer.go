package risk

import (
	"fmt"
	"math"
	"strings"

	"github.com/helios-ride/service-routing/internal/domain/route"
)

// Fallback reasons used when no factor produced one.
const (
	ReasonMinimalComplexity = "Direct route with minimal complexity"
	ReasonStandardCity      = "Standard city route"
	ReasonExtraCaution      = "Route requires extra caution due to complexity"
)

// Assessment is the unnormalized result of scoring one route.
type Assessment struct {
	RawScore float64
	Hazards  []route.LatLng
	Reasons  []string
}

// Scorer computes raw risk scores from provider routes. It holds only
// read-only tables and is safe for concurrent use.
type Scorer struct {
	hazards      []ManeuverHazard
	blackspots   []Blackspot
	radiusMeters float64
}

// NewScorer creates a Scorer using the built-in keyword and blackspot tables.
func NewScorer() *Scorer {
	return NewScorerWithTables(DefaultManeuverHazards(), DefaultBlackspots())
}

// NewScorerWithTables creates a Scorer over caller-provided tables.
// The hazard table is matched in slice order.
func NewScorerWithTables(hazards []ManeuverHazard, spots []Blackspot) *Scorer {
	return &Scorer{
		hazards:      append([]ManeuverHazard(nil), hazards...),
		blackspots:   append([]Blackspot(nil), spots...),
		radiusMeters: BlackspotRadiusMeters,
	}
}

// Score evaluates a single route.
func (s *Scorer) Score(r route.Route) Assessment {
	leg := r.PrimaryLeg()
	a := Assessment{RawScore: BaseScore, Hazards: []route.LatLng{}}

	s.scoreTraffic(leg, &a)

	distanceKm := float64(leg.Distance.Value) / 1000
	a.RawScore += math.Min(distanceKm*DistancePointsPerKm, DistanceCap)

	s.scoreManeuvers(leg, distanceKm, &a)
	s.scoreBlackspots(leg, &a)
	s.scoreHighway(leg, &a)

	if len(leg.Steps) > LongStepCount {
		a.Reasons = append(a.Reasons, fmt.Sprintf("Long route with %d steps", len(leg.Steps)))
	}

	if len(a.Reasons) == 0 {
		a.Reasons = append(a.Reasons, fallbackReason(a.RawScore))
	}
	return a
}

func (s *Scorer) scoreTraffic(leg route.Leg, a *Assessment) {
	normal := leg.FreeFlowSeconds()
	traffic := leg.TrafficSeconds()

	if traffic > normal && normal > 0 {
		delay := float64(traffic-normal) / float64(normal)
		a.RawScore += math.Min(delay*TrafficDelayWeight, TrafficDelayCap)
	}

	trafficMin := traffic / 60
	normalMin := normal / 60
	if normal > 0 {
		delayMin := trafficMin - normalMin
		switch {
		case delayMin > 5:
			a.Reasons = append(a.Reasons, fmt.Sprintf("Heavy traffic: +%d mins delay", delayMin))
		case delayMin > 2:
			a.Reasons = append(a.Reasons, fmt.Sprintf("Moderate traffic: +%d mins delay", delayMin))
		}
	} else if trafficMin > 15 {
		a.Reasons = append(a.Reasons, fmt.Sprintf("Long route: approx. %d mins", trafficMin))
	}
}

func (s *Scorer) scoreManeuvers(leg route.Leg, distanceKm float64, a *Assessment) {
	count := 0
	for _, step := range leg.Steps {
		instruction := strings.ToLower(step.HTMLInstructions)
		for _, h := range s.hazards {
			if !strings.Contains(instruction, h.Keyword) {
				continue
			}
			count++
			a.RawScore += float64(h.Points)
			if h.Major() {
				a.Hazards = append(a.Hazards, step.StartLocation)
			}
			break
		}
	}

	density := 0.0
	if distanceKm > 0 {
		density = float64(count) / distanceKm
	}
	switch {
	case density > 10:
		a.Reasons = append(a.Reasons, fmt.Sprintf("Very complex route: %d maneuvers in %.1f km", count, distanceKm))
	case density > 5:
		a.Reasons = append(a.Reasons, fmt.Sprintf("Complex route: %d maneuvers in %.1f km", count, distanceKm))
	case count > 15:
		a.Reasons = append(a.Reasons, fmt.Sprintf("Multiple turns: %d maneuvers", count))
	}
}

func (s *Scorer) scoreBlackspots(leg route.Leg, a *Assessment) {
	passed := make(map[string]struct{}, len(s.blackspots))
	for _, step := range leg.Steps {
		for _, spot := range s.blackspots {
			if _, seen := passed[spot.Name]; seen {
				continue
			}
			if route.DistanceMeters(step.StartLocation, spot.Location) <= s.radiusMeters {
				a.RawScore += BlackspotPoints
				passed[spot.Name] = struct{}{}
			}
		}
	}
	if len(passed) > 0 {
		a.Reasons = append(a.Reasons, fmt.Sprintf("Passes through %d known high-accident zone(s)", len(passed)))
	}
}

func (s *Scorer) scoreHighway(leg route.Leg, a *Assessment) {
	for _, step := range leg.Steps {
		instruction := strings.ToLower(step.HTMLInstructions)
		for _, kw := range highwayKeywords {
			if strings.Contains(instruction, kw) {
				a.RawScore += HighwayPoints
				a.Reasons = append(a.Reasons, "Includes high-speed highway or expressway sections")
				return
			}
		}
	}
}

func fallbackReason(score float64) string {
	switch {
	case score < 150:
		return ReasonMinimalComplexity
	case score < 250:
		return ReasonStandardCity
	default:
		return ReasonExtraCaution
	}
}
