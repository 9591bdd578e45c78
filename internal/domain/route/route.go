package route

// LatLng is a WGS84 coordinate in the provider's {lat, lng} form.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// TextValue is the provider's pairing of a display string and a numeric value.
// Durations are seconds and distances are meters.
type TextValue struct {
	Text  string `json:"text"`
	Value int64  `json:"value"`
}

// Step is a single maneuver within a leg.
type Step struct {
	HTMLInstructions string    `json:"html_instructions"`
	Maneuver         string    `json:"maneuver,omitempty"`
	Distance         TextValue `json:"distance"`
	Duration         TextValue `json:"duration"`
	StartLocation    LatLng    `json:"start_location"`
	EndLocation      LatLng    `json:"end_location"`
}

// Leg is the route between two waypoints.
type Leg struct {
	StartAddress      string     `json:"start_address"`
	EndAddress        string     `json:"end_address"`
	Distance          TextValue  `json:"distance"`
	Duration          TextValue  `json:"duration"`
	DurationInTraffic *TextValue `json:"duration_in_traffic,omitempty"`
	Steps             []Step     `json:"steps"`
}

// FreeFlowSeconds is the leg duration without traffic.
func (l Leg) FreeFlowSeconds() int64 {
	return l.Duration.Value
}

// TrafficSeconds is the live-traffic duration, falling back to the free-flow
// duration when the provider did not return one.
func (l Leg) TrafficSeconds() int64 {
	if l.DurationInTraffic == nil {
		return l.Duration.Value
	}
	return l.DurationInTraffic.Value
}

// Polyline is an encoded polyline.
type Polyline struct {
	Points string `json:"points"`
}

// Route is one alternative returned by the directions provider.
type Route struct {
	Summary          string   `json:"summary"`
	Legs             []Leg    `json:"legs"`
	OverviewPolyline Polyline `json:"overview_polyline"`
	Warnings         []string `json:"warnings,omitempty"`
}

// PrimaryLeg returns the first leg, or an empty leg when the route has none.
func (r Route) PrimaryLeg() Leg {
	if len(r.Legs) == 0 {
		return Leg{}
	}
	return r.Legs[0]
}
