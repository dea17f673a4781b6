// Package messaging defines the queue abstraction used to hand run events
// to downstream consumers.
package messaging

import (
	"context"
	"errors"
)

// Vendor represents the name of a queue implementation.
type Vendor string

const (
	VendorMemory Vendor = "memory"
	VendorFs     Vendor = "fs"
)

// ErrQueueFull is returned when a bounded queue cannot take another message.
var ErrQueueFull = errors.New("queue is full")

// Queue represents an abstract message queue for any payload type.
type Queue[T any] interface {
	// Publish adds a new message with payload to the queue
	Publish(ctx context.Context, t *T) error

	// Consume retrieves the oldest message; it returns a nil message when
	// the queue is empty
	Consume(ctx context.Context) (Message[T], error)
}

// Message represents a message retrieved from a queue.
type Message[T any] interface {
	// T returns the payload of this message
	T() *T

	// Ack acknowledges successful processing of this message
	Ack() error

	// Nack returns the message to the queue, or retires it once retries are
	// exhausted
	Nack(err error) error
}
