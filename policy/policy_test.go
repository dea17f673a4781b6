package policy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolicy_Validate(t *testing.T) {
	testCases := []struct {
		description string
		policy      *Policy
		expectErr   bool
	}{
		{description: "nil policy", policy: nil},
		{description: "default", policy: Default()},
		{description: "claimed scope, mixed case", policy: &Policy{RoundTwoScope: "Claimed"}},
		{description: "unknown scope", policy: &Policy{RoundTwoScope: "everything"}, expectErr: true},
		{description: "negative bound", policy: &Policy{MaxRanking: -1}, expectErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			err := tc.policy.Validate()
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestPolicy_Context(t *testing.T) {
	assert.Nil(t, FromContext(context.Background()))
	p := &Policy{RoundTwoScope: ScopeClaimed}
	ctx := WithPolicy(context.Background(), p)
	assert.Equal(t, p, FromContext(ctx))
	assert.Equal(t, ScopeClaimed, FromContext(ctx).Scope())
	var empty *Policy
	assert.Equal(t, ScopeWinningPairs, empty.Scope())
}

func TestPolicy_ConfigRoundTrip(t *testing.T) {
	p := &Policy{RoundTwoScope: ScopeClaimed, MaxRanking: 3}
	assert.Equal(t, p, FromConfig(ToConfig(p)))
	assert.Nil(t, ToConfig(nil))
	assert.Nil(t, FromConfig(nil))
}
