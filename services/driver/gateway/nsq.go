package gateway

import (
	"context"

	"github.com/drivesense/drivesense-backend/internal/pkg/models"
	"github.com/drivesense/drivesense-backend/internal/pkg/nsq"
)

// AlertGateway publishes created safety events to an NSQ topic for
// downstream consumers (notification fan-out, dashboards).
type AlertGateway struct {
	producer *nsq.Producer
	topic    string
}

// NewAlertGateway creates a new alert gateway publishing to topic.
func NewAlertGateway(producer *nsq.Producer, topic string) *AlertGateway {
	return &AlertGateway{
		producer: producer,
		topic:    topic,
	}
}

// PublishEventAlert publishes the event as a JSON message.
func (g *AlertGateway) PublishEventAlert(_ context.Context, event *models.Event) error {
	return g.producer.Publish(g.topic, event)
}
