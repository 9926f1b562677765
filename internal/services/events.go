package services

import (
	"context"

	"github.com/admaagape/studyapi/internal/clients/redis"
	"github.com/admaagape/studyapi/internal/logger"
	"github.com/admaagape/studyapi/internal/sse"
)

// Publisher fans generation lifecycle events out to streaming clients. With a
// bus attached, events go through redis so every instance's hub sees them (the
// forwarder delivers locally too); without one, the local hub is notified
// directly. Event delivery is best-effort and never fails the operation that
// produced it.
type Publisher struct {
	log *logger.Logger
	hub *sse.Hub
	bus redis.EventBus
}

func NewPublisher(log *logger.Logger, hub *sse.Hub, bus redis.EventBus) *Publisher {
	return &Publisher{
		log: log.With("component", "EventPublisher"),
		hub: hub,
		bus: bus,
	}
}

func (p *Publisher) Emit(ctx context.Context, channel string, event sse.Event, data any) {
	if p == nil || channel == "" {
		return
	}
	msg := sse.Message{Channel: channel, Event: event, Data: data}
	if p.bus != nil {
		err := p.bus.Publish(ctx, msg)
		if err == nil {
			return
		}
		p.log.Warn("Bus publish failed, broadcasting locally", "channel", channel, "error", err)
	}
	if p.hub != nil {
		p.hub.Broadcast(msg)
	}
}
