package application

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/helios-ride/service-routing/internal/domain/route"
	"github.com/helios-ride/service-routing/internal/platform/domain"
	"github.com/helios-ride/service-routing/internal/platform/metrics"
)

// PlaceService completes place names for the search box.
type PlaceService struct {
	places  route.PlacesProvider
	metrics *metrics.Collector
	logger  *zap.Logger
}

// NewPlaceService creates a new PlaceService.
func NewPlaceService(places route.PlacesProvider, collector *metrics.Collector, logger *zap.Logger) *PlaceService {
	return &PlaceService{places: places, metrics: collector, logger: logger}
}

// Autocomplete returns place descriptions for input. Blank input yields an
// empty list without calling the provider.
func (s *PlaceService) Autocomplete(ctx context.Context, input string) ([]string, error) {
	if strings.TrimSpace(input) == "" {
		return []string{}, nil
	}

	descriptions, err := s.places.Autocomplete(ctx, input)
	s.metrics.ObserveUpstream("autocomplete", err)
	if err != nil {
		s.logger.Error("autocomplete failed", zap.String("input", input), zap.Error(err))
		return nil, domain.NewUpstreamError("Autocomplete failed", err)
	}
	if descriptions == nil {
		descriptions = []string{}
	}
	return descriptions, nil
}
