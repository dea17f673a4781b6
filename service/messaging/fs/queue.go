package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/storage"
	"github.com/viant/guitarfest/service/messaging"
)

// MessageState represents the state of a message in the filesystem queue
type MessageState string

const (
	MessageStatePending    MessageState = "pending"
	MessageStateProcessing MessageState = "processing"
	MessageStateCompleted  MessageState = "completed"
	MessageStateFailed     MessageState = "failed"
)

// Message implements messaging.Message for the filesystem queue
type Message[T any] struct {
	ID        string       `json:"id"`
	Data      T            `json:"data"`
	State     MessageState `json:"state"`
	Error     string       `json:"error,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
	Retries   int          `json:"retries"`

	name      string
	queue     *Queue[T]
	processed bool
	mu        sync.Mutex
}

// T returns the message payload
func (m *Message[T]) T() *T {
	return &m.Data
}

// Ack moves the message to the completed directory
func (m *Message[T]) Ack() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.processed {
		return fmt.Errorf("message %s already processed", m.ID)
	}
	m.processed = true
	m.State = MessageStateCompleted
	m.UpdatedAt = time.Now()
	return m.queue.settle(context.Background(), m, m.queue.completedURL)
}

// Nack puts the message back to pending, or to the dead letter directory
// once MaxRetries is exceeded.
func (m *Message[T]) Nack(err error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.processed {
		return fmt.Errorf("message %s already processed", m.ID)
	}
	m.processed = true
	if err != nil {
		m.Error = err.Error()
	}
	m.Retries++
	m.UpdatedAt = time.Now()
	if m.Retries > m.queue.config.MaxRetries {
		m.State = MessageStateFailed
		return m.queue.settle(context.Background(), m, m.queue.dlqURL)
	}
	m.State = MessageStatePending
	return m.queue.settle(context.Background(), m, m.queue.pendingURL)
}

// Config holds configuration for filesystem queue
type Config struct {
	URL        string
	MaxRetries int
}

// DefaultConfig returns a default queue configuration
func DefaultConfig(URL string) Config {
	return Config{URL: URL, MaxRetries: 3}
}

// Queue implements a filesystem based messaging.Queue; every message is a
// JSON document moved between state directories.
type Queue[T any] struct {
	fs            afs.Service
	config        Config
	pendingURL    string
	processingURL string
	completedURL  string
	dlqURL        string
	sequence      atomic.Uint64
	mu            sync.Mutex
}

// NewQueue creates a new filesystem based queue
func NewQueue[T any](ctx context.Context, fs afs.Service, config Config) (*Queue[T], error) {
	if config.URL == "" {
		return nil, fmt.Errorf("queue URL was empty")
	}
	q := &Queue[T]{
		fs:            fs,
		config:        config,
		pendingURL:    path.Join(config.URL, string(MessageStatePending)),
		processingURL: path.Join(config.URL, string(MessageStateProcessing)),
		completedURL:  path.Join(config.URL, string(MessageStateCompleted)),
		dlqURL:        path.Join(config.URL, "dlq"),
	}
	for _, dir := range []string{q.pendingURL, q.processingURL, q.completedURL, q.dlqURL} {
		if exists, _ := fs.Exists(ctx, dir); exists {
			continue
		}
		if err := fs.Create(ctx, dir, file.DefaultDirOsMode, true); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return q, nil
}

// Publish writes a new pending message
func (q *Queue[T]) Publish(ctx context.Context, t *T) error {
	now := time.Now()
	message := &Message[T]{
		ID:        uuid.New().String(),
		Data:      *t,
		State:     MessageStatePending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	// names sort in publication order
	message.name = fmt.Sprintf("%020d-%06d-%s.json", now.UnixNano(), q.sequence.Add(1), message.ID)
	return q.upload(ctx, path.Join(q.pendingURL, message.name), message)
}

// Consume moves the oldest pending message to processing
func (q *Queue[T]) Consume(ctx context.Context) (messaging.Message[T], error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	objects, err := q.list(ctx, q.pendingURL)
	if err != nil {
		return nil, err
	}
	if len(objects) == 0 {
		return nil, nil
	}
	obj := objects[0]
	message, err := q.read(ctx, obj.URL())
	if err != nil {
		_ = q.fs.Move(ctx, obj.URL(), path.Join(q.dlqURL, "invalid-"+obj.Name()))
		return nil, err
	}
	message.name = obj.Name()
	message.queue = q
	message.State = MessageStateProcessing
	message.UpdatedAt = time.Now()
	if err = q.upload(ctx, path.Join(q.processingURL, message.name), message); err != nil {
		return nil, err
	}
	if err = q.fs.Delete(ctx, obj.URL()); err != nil {
		return nil, fmt.Errorf("failed to delete pending message %s: %w", obj.URL(), err)
	}
	return message, nil
}

// Pending returns the number of messages waiting to be consumed
func (q *Queue[T]) Pending(ctx context.Context) (int, error) {
	objects, err := q.list(ctx, q.pendingURL)
	return len(objects), err
}

// DLQSize returns the number of retired messages
func (q *Queue[T]) DLQSize(ctx context.Context) (int, error) {
	objects, err := q.list(ctx, q.dlqURL)
	return len(objects), err
}

// settle writes m to dir and removes it from processing
func (q *Queue[T]) settle(ctx context.Context, m *Message[T], dir string) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if err := q.upload(ctx, path.Join(dir, m.name), m); err != nil {
		return err
	}
	processing := path.Join(q.processingURL, m.name)
	if exists, _ := q.fs.Exists(ctx, processing); exists {
		if err := q.fs.Delete(ctx, processing); err != nil {
			return fmt.Errorf("failed to delete processing message %s: %w", processing, err)
		}
	}
	return nil
}

// list returns the JSON documents in dir sorted by name
func (q *Queue[T]) list(ctx context.Context, dir string) ([]storage.Object, error) {
	objects, err := q.fs.List(ctx, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}
	var ret []storage.Object
	for _, obj := range objects {
		if !obj.IsDir() && strings.HasSuffix(obj.Name(), ".json") {
			ret = append(ret, obj)
		}
	}
	slices.SortFunc(ret, func(a, b storage.Object) int { return strings.Compare(a.Name(), b.Name()) })
	return ret, nil
}

func (q *Queue[T]) upload(ctx context.Context, URL string, message *Message[T]) error {
	data, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message %s: %w", message.ID, err)
	}
	if err = q.fs.Upload(ctx, URL, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write message %s: %w", URL, err)
	}
	return nil
}

func (q *Queue[T]) read(ctx context.Context, URL string) (*Message[T], error) {
	data, err := q.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read message %s: %w", URL, err)
	}
	message := &Message[T]{}
	if err = json.Unmarshal(data, message); err != nil {
		return nil, fmt.Errorf("failed to decode message %s: %w", URL, err)
	}
	return message, nil
}

var _ messaging.Queue[any] = (*Queue[any])(nil)
