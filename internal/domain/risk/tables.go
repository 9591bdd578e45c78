package risk

import "github.com/helios-ride/service-routing/internal/domain/route"

// Scoring constants.
const (
	BaseScore = 100.0

	TrafficDelayWeight = 200.0
	TrafficDelayCap    = 300.0

	DistancePointsPerKm = 5.0
	DistanceCap         = 100.0

	// MajorHazardThreshold is the keyword score above which a step's location
	// is reported as a hazard.
	MajorHazardThreshold = 20

	BlackspotPoints       = 400.0
	BlackspotRadiusMeters = 250.0

	HighwayPoints = 50.0

	LongStepCount = 20
)

// ManeuverHazard maps an instruction keyword to the points it adds.
type ManeuverHazard struct {
	Keyword string
	Points  int
}

// Major reports whether the maneuver is severe enough to be mapped as a hazard.
func (h ManeuverHazard) Major() bool {
	return h.Points > MajorHazardThreshold
}

// maneuverHazards is ordered; the first keyword found in an instruction wins.
var maneuverHazards = [...]ManeuverHazard{
	{Keyword: "roundabout", Points: 25},
	{Keyword: "sharp", Points: 35},
	{Keyword: "u-turn", Points: 45},
	{Keyword: "merge", Points: 20},
	{Keyword: "exit", Points: 15},
	{Keyword: "turn left", Points: 8},
	{Keyword: "turn right", Points: 8},
	{Keyword: "slight", Points: 5},
}

// DefaultManeuverHazards returns a copy of the keyword table in match order.
func DefaultManeuverHazards() []ManeuverHazard {
	out := make([]ManeuverHazard, len(maneuverHazards))
	copy(out, maneuverHazards[:])
	return out
}

// Blackspot is a location with a history of accidents.
type Blackspot struct {
	Name     string
	Location route.LatLng
}

var blackspots = [...]Blackspot{
	{Name: "Gandhipuram Signal", Location: route.LatLng{Lat: 11.0180, Lng: 76.9691}},
	{Name: "Ukkadam", Location: route.LatLng{Lat: 10.9946, Lng: 76.9644}},
	{Name: "Avinashi Road - Hope College", Location: route.LatLng{Lat: 11.0268, Lng: 77.0357}},
}

// DefaultBlackspots returns a copy of the built-in blackspot table.
func DefaultBlackspots() []Blackspot {
	out := make([]Blackspot, len(blackspots))
	copy(out, blackspots[:])
	return out
}

var highwayKeywords = [...]string{"highway", "expressway"}
