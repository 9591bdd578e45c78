package events

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/helios-ride/service-routing/internal/domain/risk"
	"github.com/helios-ride/service-routing/internal/domain/route"
	"github.com/helios-ride/service-routing/internal/platform/kafka"
)

// Topics and event types emitted by the routing service.
const (
	SourceRouting      = "service-routing"
	TopicRoutingEvents = "routing.events"
	RouteRiskAssessed  = "route.risk_assessed"
)

// RouteRiskSummary is the per-alternative part of RouteRiskAssessedEvent.
type RouteRiskSummary struct {
	RiskScore   float64 `json:"risk_score"`
	HazardCount int     `json:"hazard_count"`
	ReasonCount int     `json:"reason_count"`
}

// RouteRiskAssessedEvent is published after the alternatives of one request are scored.
type RouteRiskAssessedEvent struct {
	Origin      route.LatLng       `json:"origin"`
	Destination route.LatLng       `json:"destination"`
	RouteCount  int                `json:"route_count"`
	Routes      []RouteRiskSummary `json:"routes"`
	OccurredAt  time.Time          `json:"occurred_at"`
}

// EventProducer is the subset of the kafka producer the publisher needs.
type EventProducer interface {
	PublishEvent(ctx context.Context, topic string, ce kafka.CloudEvent) error
}

// RoutePublisher emits routing analytics events. Publishing is best effort:
// failures are logged and never returned to the caller.
type RoutePublisher struct {
	producer EventProducer
	logger   *zap.Logger
}

// NewRoutePublisher creates a new RoutePublisher.
func NewRoutePublisher(producer EventProducer, logger *zap.Logger) *RoutePublisher {
	return &RoutePublisher{producer: producer, logger: logger}
}

// PublishRiskAssessed emits a RouteRiskAssessedEvent. A nil publisher does nothing.
func (p *RoutePublisher) PublishRiskAssessed(ctx context.Context, origin, destination route.LatLng, routes []risk.ScoredRoute) {
	if p == nil || p.producer == nil {
		return
	}

	evt := RouteRiskAssessedEvent{
		Origin:      origin,
		Destination: destination,
		RouteCount:  len(routes),
		Routes:      make([]RouteRiskSummary, len(routes)),
		OccurredAt:  time.Now().UTC(),
	}
	for i, r := range routes {
		evt.Routes[i] = RouteRiskSummary{
			RiskScore:   r.RiskScore,
			HazardCount: len(r.Hazards),
			ReasonCount: len(r.Reasons),
		}
	}

	ce, err := kafka.NewCloudEvent(SourceRouting, RouteRiskAssessed, evt)
	if err != nil {
		p.logger.Error("failed to create cloud event",
			zap.String("event_type", RouteRiskAssessed),
			zap.Error(err),
		)
		return
	}
	ce.Subject = origin.String() + ";" + destination.String()

	if err := p.producer.PublishEvent(ctx, TopicRoutingEvents, ce); err != nil {
		p.logger.Error("failed to publish event",
			zap.String("topic", TopicRoutingEvents),
			zap.String("event_type", RouteRiskAssessed),
			zap.Error(err),
		)
	}
}
