package progress

import (
	"context"
	"sync"
	"time"
)

// Delta represents an incremental counter change emitted by the allocator.
type Delta struct {
	Choices   int
	Rounds    int
	Assigned  int
	Unmatched int
}

// Progress keeps aggregated counters for one run.  It is safe for concurrent
// use.
type Progress struct {
	RunID     string
	StartedAt time.Time

	TotalChoices   int
	RoundsDone     int
	AssignedCount  int
	UnmatchedCount int

	sync.Mutex
	onChange func(Progress)
}

// Update applies the supplied delta to the tracker.  The onChange callback,
// if any, is invoked with a copy outside the critical section.
func (p *Progress) Update(d Delta) {
	if p == nil {
		return
	}

	p.Lock()
	p.TotalChoices += d.Choices
	p.RoundsDone += d.Rounds
	p.AssignedCount += d.Assigned
	p.UnmatchedCount += d.Unmatched
	snapshot := p.copy()
	cb := p.onChange
	p.Unlock()

	if cb != nil {
		cb(snapshot)
	}
}

// Snapshot returns a copy of the tracker suitable for read-only inspection.
func (p *Progress) Snapshot() Progress {
	if p == nil {
		return Progress{}
	}
	p.Lock()
	defer p.Unlock()
	return p.copy()
}

// OnChange registers a callback invoked after every Update.  Passing nil
// disables the callback.
func (p *Progress) OnChange(cb func(Progress)) {
	if p == nil {
		return
	}
	p.Lock()
	p.onChange = cb
	p.Unlock()
}

func (p *Progress) copy() Progress {
	return Progress{
		RunID:          p.RunID,
		StartedAt:      p.StartedAt,
		TotalChoices:   p.TotalChoices,
		RoundsDone:     p.RoundsDone,
		AssignedCount:  p.AssignedCount,
		UnmatchedCount: p.UnmatchedCount,
	}
}

// ----------------------------------------------------------------------------
// Context helpers
// ----------------------------------------------------------------------------

type trackerKeyT struct{}

var trackerKey trackerKeyT

// WithNewTracker creates a new Progress tracker, embeds it in a derived
// context and returns both.
func WithNewTracker(ctx context.Context, runID string, onChange func(Progress)) (context.Context, *Progress) {
	if ctx == nil {
		ctx = context.Background()
	}
	tr := &Progress{
		RunID:     runID,
		StartedAt: time.Now(),
		onChange:  onChange,
	}
	return context.WithValue(ctx, trackerKey, tr), tr
}

// FromContext extracts the Progress tracker from ctx.
func FromContext(ctx context.Context) (*Progress, bool) {
	if ctx == nil {
		return nil, false
	}
	tr, ok := ctx.Value(trackerKey).(*Progress)
	return tr, ok
}

// UpdateCtx looks up the tracker in ctx (if any) and applies the delta.
func UpdateCtx(ctx context.Context, d Delta) {
	if tr, ok := FromContext(ctx); ok {
		tr.Update(d)
	}
}
