package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/helios-ride/service-routing/internal/domain/risk"
	"github.com/helios-ride/service-routing/internal/domain/route"
	"github.com/helios-ride/service-routing/internal/platform/kafka"
)

type recordingProducer struct {
	topic  string
	events []kafka.CloudEvent
	err    error
}

func (p *recordingProducer) PublishEvent(_ context.Context, topic string, ce kafka.CloudEvent) error {
	p.topic = topic
	p.events = append(p.events, ce)
	return p.err
}

func TestRoutePublisher_PublishRiskAssessed(t *testing.T) {
	producer := &recordingProducer{}
	pub := NewRoutePublisher(producer, zap.NewNop())

	origin := route.LatLng{Lat: 11.018, Lng: 76.9691}
	dest := route.LatLng{Lat: 10.9946, Lng: 76.9644}
	pub.PublishRiskAssessed(context.Background(), origin, dest, []risk.ScoredRoute{
		{RiskScore: 2.0, Reasons: []string{"a"}, Hazards: []route.LatLng{}},
		{RiskScore: 8.0, Reasons: []string{"a", "b"}, Hazards: []route.LatLng{origin}},
	})

	require.Len(t, producer.events, 1)
	assert.Equal(t, TopicRoutingEvents, producer.topic)

	ce := producer.events[0]
	assert.Equal(t, RouteRiskAssessed, ce.Type)
	assert.Equal(t, SourceRouting, ce.Source)
	assert.Equal(t, "11.018,76.9691;10.9946,76.9644", ce.Subject)

	var evt RouteRiskAssessedEvent
	require.NoError(t, ce.ParseData(&evt))
	assert.Equal(t, 2, evt.RouteCount)
	assert.Equal(t, RouteRiskSummary{RiskScore: 8.0, HazardCount: 1, ReasonCount: 2}, evt.Routes[1])
}

func TestRoutePublisher_ErrorsAreSwallowed(t *testing.T) {
	producer := &recordingProducer{err: errors.New("broker down")}
	pub := NewRoutePublisher(producer, zap.NewNop())

	assert.NotPanics(t, func() {
		pub.PublishRiskAssessed(context.Background(), route.LatLng{}, route.LatLng{}, nil)
	})
	assert.Len(t, producer.events, 1)
}

func TestRoutePublisher_Nil(t *testing.T) {
	var pub *RoutePublisher
	assert.NotPanics(t, func() {
		pub.PublishRiskAssessed(context.Background(), route.LatLng{}, route.LatLng{}, nil)
	})
}
