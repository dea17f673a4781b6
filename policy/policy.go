package policy

import (
	"context"
	"fmt"
	"strings"
)

// Round-two removal scopes.
const (
	// ScopeWinningPairs removes only the exact (person, item) pairs won in
	// round one before round two runs (default).
	ScopeWinningPairs = "pairs"
	// ScopeClaimed removes every choice whose person was matched or whose item
	// was claimed in round one.
	ScopeClaimed = "claimed"
)

// DefaultMaxRanking is the longest preference list accepted by default.
const DefaultMaxRanking = 6

// Policy represents the allocation settings for the current run.
//
//   - RoundTwoScope controls which round-one choices are removed before round two.
//   - MaxRanking bounds preference list length (0 disables the bound).
//
// A nil *Policy means "use the allocator defaults".
type Policy struct {
	RoundTwoScope string
	MaxRanking    int
}

// Config represents the declarative, serialisable part of a Policy.
type Config struct {
	RoundTwoScope string `json:"roundTwoScope,omitempty" yaml:"roundTwoScope,omitempty" env:"GUITARFEST_ROUND_TWO_SCOPE"`
	MaxRanking    int    `json:"maxRanking,omitempty" yaml:"maxRanking,omitempty" env:"GUITARFEST_MAX_RANKING"`
}

// Default returns the policy matching the documented round-two behaviour.
func Default() *Policy {
	return &Policy{RoundTwoScope: ScopeWinningPairs, MaxRanking: DefaultMaxRanking}
}

// ToConfig converts a runtime Policy into a persistable Config.
func ToConfig(p *Policy) *Config {
	if p == nil {
		return nil
	}
	return &Config{RoundTwoScope: p.RoundTwoScope, MaxRanking: p.MaxRanking}
}

// FromConfig converts a stored Config back to a runtime Policy.
func FromConfig(c *Config) *Policy {
	if c == nil {
		return nil
	}
	return &Policy{RoundTwoScope: c.RoundTwoScope, MaxRanking: c.MaxRanking}
}

// Scope returns the normalised round-two scope, ScopeWinningPairs when unset.
func (p *Policy) Scope() string {
	if p == nil || p.RoundTwoScope == "" {
		return ScopeWinningPairs
	}
	return strings.ToLower(p.RoundTwoScope)
}

// Validate checks the scope name and the ranking bound.
func (p *Policy) Validate() error {
	if p == nil {
		return nil
	}
	switch p.Scope() {
	case ScopeWinningPairs, ScopeClaimed:
	default:
		return fmt.Errorf("unsupported round two scope: %q", p.RoundTwoScope)
	}
	if p.MaxRanking < 0 {
		return fmt.Errorf("maxRanking must be >= 0")
	}
	return nil
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

type ctxKeyT struct{}

var ctxKey ctxKeyT

// WithPolicy embeds policy in ctx.
func WithPolicy(ctx context.Context, p *Policy) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxKey, p)
}

// FromContext extracts the Policy or nil.
func FromContext(ctx context.Context) *Policy {
	if ctx == nil {
		return nil
	}
	if v, ok := ctx.Value(ctxKey).(*Policy); ok {
		return v
	}
	return nil
}
