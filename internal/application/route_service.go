package application

import (
	"context"

	"go.uber.org/zap"

	"github.com/helios-ride/service-routing/internal/domain/risk"
	"github.com/helios-ride/service-routing/internal/domain/route"
	"github.com/helios-ride/service-routing/internal/platform/domain"
	"github.com/helios-ride/service-routing/internal/platform/metrics"
)

// RouteRequest holds the endpoints of a route lookup.
type RouteRequest struct {
	Start route.LatLng
	End   route.LatLng
}

// RouteResponse is the API response for a scored route lookup.
type RouteResponse struct {
	Routes []risk.ScoredRoute `json:"routes"`
}

// RouteEventPublisher receives the outcome of each successful scoring.
type RouteEventPublisher interface {
	PublishRiskAssessed(ctx context.Context, origin, destination route.LatLng, routes []risk.ScoredRoute)
}

// RouteService fetches route alternatives and attaches risk scores.
type RouteService struct {
	directions route.DirectionsProvider
	scorer     *risk.Scorer
	publisher  RouteEventPublisher
	metrics    *metrics.Collector
	logger     *zap.Logger
}

// NewRouteService creates a new RouteService. publisher and collector may be nil.
func NewRouteService(
	directions route.DirectionsProvider,
	scorer *risk.Scorer,
	publisher RouteEventPublisher,
	collector *metrics.Collector,
	logger *zap.Logger,
) *RouteService {
	return &RouteService{
		directions: directions,
		scorer:     scorer,
		publisher:  publisher,
		metrics:    collector,
		logger:     logger,
	}
}

// PlanRoute looks up alternatives between the request endpoints and scores them.
func (s *RouteService) PlanRoute(ctx context.Context, req RouteRequest) (*RouteResponse, error) {
	if err := req.Start.Validate(); err != nil {
		return nil, domain.NewValidationError("invalid start coordinate: " + err.Error())
	}
	if err := req.End.Validate(); err != nil {
		return nil, domain.NewValidationError("invalid end coordinate: " + err.Error())
	}

	routes, err := s.directions.Directions(ctx, req.Start, req.End)
	s.metrics.ObserveUpstream("directions", err)
	if err != nil {
		s.logger.Error("directions lookup failed",
			zap.String("origin", req.Start.String()),
			zap.String("destination", req.End.String()),
			zap.Error(err),
		)
		return nil, domain.NewUpstreamError("An unexpected error occurred", err)
	}
	if len(routes) == 0 {
		return nil, domain.NewNotFoundMessage("No routes found by the mapping provider")
	}

	scored, err := s.scorer.Assess(routes)
	if err != nil {
		return nil, domain.NewUpstreamError("Could not process any routes", err)
	}

	for _, r := range scored {
		s.metrics.ObserveRiskScore(r.RiskScore)
	}
	if s.publisher != nil {
		s.publisher.PublishRiskAssessed(ctx, req.Start, req.End, scored)
	}

	s.logger.Info("routes scored",
		zap.String("origin", req.Start.String()),
		zap.String("destination", req.End.String()),
		zap.Int("routes", len(scored)),
	)
	return &RouteResponse{Routes: scored}, nil
}
