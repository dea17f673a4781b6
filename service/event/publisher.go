package event

import (
	"context"

	"github.com/viant/guitarfest/internal/clock"
	"github.com/viant/guitarfest/service/messaging"
)

type Publisher[T any] struct {
	queue messaging.Queue[Event[T]]
}

func NewPublisher[T any](queue messaging.Queue[Event[T]]) *Publisher[T] {
	return &Publisher[T]{queue: queue}
}

// Publish stamps event and puts it on the queue.
func (p *Publisher[T]) Publish(ctx context.Context, event *Event[T]) error {
	event.CreatedAt = clock.Now()
	return p.queue.Publish(ctx, event)
}

// Consume returns the oldest event acknowledged, or nil when none is pending.
func (p *Publisher[T]) Consume(ctx context.Context) (*Event[T], error) {
	msg, err := p.queue.Consume(ctx)
	if err != nil || msg == nil {
		return nil, err
	}
	if err = msg.Ack(); err != nil {
		return nil, err
	}
	return msg.T(), nil
}

// Drain hands every pending event to handler.  An event the handler rejects
// is returned to the queue and draining stops with the handler error.
func (p *Publisher[T]) Drain(ctx context.Context, handler func(*Event[T]) error) (int, error) {
	count := 0
	for {
		msg, err := p.queue.Consume(ctx)
		if err != nil || msg == nil {
			return count, err
		}
		if err = handler(msg.T()); err != nil {
			if nackErr := msg.Nack(err); nackErr != nil {
				return count, nackErr
			}
			return count, err
		}
		if err = msg.Ack(); err != nil {
			return count, err
		}
		count++
	}
}
