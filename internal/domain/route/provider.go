package route

import "context"

// DirectionsProvider looks up alternative driving routes with live traffic.
type DirectionsProvider interface {
	Directions(ctx context.Context, origin, destination LatLng) ([]Route, error)
}

// PlacesProvider completes free-text place queries.
type PlacesProvider interface {
	Autocomplete(ctx context.Context, input string) ([]string, error)
}
