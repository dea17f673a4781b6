// Package event publishes run lifecycle events to a memory or filesystem
// backed queue.
package event

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/guitarfest/service/messaging"
	"github.com/viant/guitarfest/service/messaging/fs"
	"github.com/viant/guitarfest/service/messaging/memory"
)

// Config selects the queue vendor; an empty vendor disables events.
type Config struct {
	Vendor     string `json:"vendor,omitempty" yaml:"vendor,omitempty" env:"GUITARFEST_EVENTS_VENDOR"`
	URL        string `json:"url,omitempty" yaml:"url,omitempty" env:"GUITARFEST_EVENTS_URL"`
	MaxRetries int    `json:"maxRetries,omitempty" yaml:"maxRetries,omitempty" env:"GUITARFEST_EVENTS_MAX_RETRIES"`
}

// Enabled reports whether a vendor was configured.
func (c *Config) Enabled() bool {
	return c != nil && c.Vendor != ""
}

func (c *Config) Validate() error {
	if !c.Enabled() {
		return nil
	}
	if c.MaxRetries < 0 {
		return fmt.Errorf("maxRetries must be >= 0")
	}
	switch messaging.Vendor(c.Vendor) {
	case messaging.VendorMemory:
	case messaging.VendorFs:
		if c.URL == "" {
			return fmt.Errorf("fs queue vendor requires url")
		}
	default:
		return fmt.Errorf("unsupported queue vendor: %s", c.Vendor)
	}
	return nil
}

// QueueOf creates the queue described by config.
func QueueOf[T any](ctx context.Context, fileSystem afs.Service, config *Config) (messaging.Queue[T], error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	switch messaging.Vendor(config.Vendor) {
	case messaging.VendorFs:
		fsConfig := fs.DefaultConfig(config.URL)
		if config.MaxRetries > 0 {
			fsConfig.MaxRetries = config.MaxRetries
		}
		queue, err := fs.NewQueue[T](ctx, fileSystem, fsConfig)
		if err != nil {
			return nil, err
		}
		return queue, nil
	case messaging.VendorMemory:
		memConfig := memory.DefaultConfig()
		if config.MaxRetries > 0 {
			memConfig.MaxRetries = config.MaxRetries
		}
		return memory.NewQueue[T](memConfig), nil
	}
	return nil, fmt.Errorf("queue vendor was empty")
}

// PublisherOf returns a publisher backed by the queue described by config.
func PublisherOf[T any](ctx context.Context, fileSystem afs.Service, config *Config) (*Publisher[T], error) {
	queue, err := QueueOf[Event[T]](ctx, fileSystem, config)
	if err != nil {
		return nil, err
	}
	return NewPublisher[T](queue), nil
}
