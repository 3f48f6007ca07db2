package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"

	"kanban-api/domain/ports"
	natspkg "kanban-api/infrastructure/nats"
)

// NATSActivityPublisher implements ActivityPublisherPort over plain NATS
// Pub/Sub. Delivery is fire-and-forget; the audit row in Postgres is the
// source of truth.
type NATSActivityPublisher struct {
	conn *nats.Conn
}

func NewNATSActivityPublisher(conn *nats.Conn) ports.ActivityPublisherPort {
	return &NATSActivityPublisher{conn: conn}
}

func (p *NATSActivityPublisher) PublishActivityCreated(ctx context.Context, event *ports.ActivityEvent) error {
	if event == nil {
		return fmt.Errorf("event cannot be nil")
	}
	if event.ID == "" {
		return fmt.Errorf("event id is required")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal activity event: %w", err)
	}

	return p.conn.Publish(natspkg.SubjectActivityCreated, data)
}
