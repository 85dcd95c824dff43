// Package events publishes entity change notifications over NATS so other
// services can react to writes without polling the API.
package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"
)

type Publisher struct {
	conn   *nats.Conn
	logger zerolog.Logger
}

type changeEvent struct {
	Entity string    `json:"entity"`
	ID     uint      `json:"id"`
	Action string    `json:"action"`
	At     time.Time `json:"at"`
}

func NewPublisher(natsURL string, logger zerolog.Logger) (*Publisher, error) {
	nc, err := nats.Connect(natsURL)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}
	return &Publisher{conn: nc, logger: logger}, nil
}

// EntityChanged publishes on resmap.<entity>.<id>.<action>. A nil publisher
// (events disabled) is a no-op, and publish failures are logged, never
// surfaced: notification is best-effort by contract.
func (p *Publisher) EntityChanged(entity string, id uint, action string) {
	if p == nil || p.conn == nil {
		return
	}
	payload, err := json.Marshal(changeEvent{Entity: entity, ID: id, Action: action, At: time.Now().UTC()})
	if err != nil {
		p.logger.Error().Err(err).Msg("Failed to marshal change event")
		return
	}
	subject := fmt.Sprintf("resmap.%s.%d.%s", entity, id, action)
	if err := p.conn.Publish(subject, payload); err != nil {
		p.logger.Error().Err(err).Str("subject", subject).Msg("Failed to publish change event")
	}
}

// Close drains the NATS connection.
func (p *Publisher) Close() {
	if p == nil || p.conn == nil {
		return
	}
	if err := p.conn.Drain(); err != nil {
		p.logger.Error().Err(err).Msg("Failed to drain NATS connection")
	}
}
