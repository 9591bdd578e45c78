package application

import (
	"context"

	medicalDomain "github.com/helios-ride/service-routing/internal/domain/medical"
	"github.com/helios-ride/service-routing/internal/domain/risk"
	"github.com/helios-ride/service-routing/internal/domain/route"
	"github.com/helios-ride/service-routing/internal/platform/domain"
)

type fakeDirections struct {
	routes []route.Route
	err    error
	calls  int
}

func (f *fakeDirections) Directions(_ context.Context, _, _ route.LatLng) ([]route.Route, error) {
	f.calls++
	return f.routes, f.err
}

type fakePlaces struct {
	results []string
	err     error
	calls   int
}

func (f *fakePlaces) Autocomplete(_ context.Context, _ string) ([]string, error) {
	f.calls++
	return f.results, f.err
}

type fakePublisher struct {
	published [][]risk.ScoredRoute
}

func (f *fakePublisher) PublishRiskAssessed(_ context.Context, _, _ route.LatLng, routes []risk.ScoredRoute) {
	f.published = append(f.published, routes)
}

type fakeRecords struct {
	available bool
	records   map[string]*medicalDomain.Record
	err       error
}

func (f *fakeRecords) Available() bool { return f.available }

func (f *fakeRecords) FindByUID(_ context.Context, uid string) (*medicalDomain.Record, error) {
	if f.err != nil {
		return nil, f.err
	}
	r, ok := f.records[uid]
	if !ok {
		return nil, domain.NewNotFoundError("User", uid)
	}
	return r, nil
}

func simpleRoute(polyline string, trafficSeconds int64) route.Route {
	return route.Route{
		OverviewPolyline: route.Polyline{Points: polyline},
		Legs: []route.Leg{{
			Duration:          route.TextValue{Value: 600},
			DurationInTraffic: &route.TextValue{Value: trafficSeconds},
			Distance:          route.TextValue{Value: 2000},
		}},
	}
}
