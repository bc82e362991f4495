package rto

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rtokit/pkg/async"
)

func draft(constraints ...string) *ValidationError {
	return &ValidationError{Property: "p", Constraints: constraints, Value: constraints[0]}
}

func TestOutcome(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("certain failures merge immediately", func(t *testing.T) {
		o := newOutcome(report{draft: draft("a")})
		o.add(report{draft: draft("b")})
		o.add(report{draft: draft("a")})
		assert.Equal(t, outcomeSettled, o.state)

		ve, err := o.join(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, ve.Constraints)
		assert.Equal(t, "a", ve.Value)
	})

	t.Run("deferred failures keep registration order", func(t *testing.T) {
		o := newOutcome(report{draft: draft("a"), check: async.Resolved(false)})
		o.add(report{draft: draft("b")})
		o.add(report{draft: draft("c"), check: async.Resolved(true)})
		o.add(report{draft: draft("d"), check: async.Resolved(false)})
		assert.Equal(t, outcomePending, o.state)

		ve, err := o.join(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "d"}, ve.Constraints)
		assert.Equal(t, outcomeSettled, o.state)
	})

	t.Run("settled then deferred", func(t *testing.T) {
		o := newOutcome(report{draft: draft("a")})
		o.add(report{draft: draft("b"), check: async.Resolved(false)})

		ve, err := o.join(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, ve.Constraints)
	})

	t.Run("all deferred checks pass", func(t *testing.T) {
		o := newOutcome(report{draft: draft("a"), check: async.Resolved(true)})
		ve, err := o.join(ctx)
		require.NoError(t, err)
		assert.Nil(t, ve)
	})

	t.Run("fault", func(t *testing.T) {
		boom := errors.New("boom")
		o := newOutcome(report{draft: draft("a"), check: async.Failed[bool](boom)})
		_, err := o.join(ctx)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("drafts are not mutated", func(t *testing.T) {
		first := draft("a")
		o := newOutcome(report{draft: first})
		o.add(report{draft: draft("b")})
		assert.Equal(t, []string{"a"}, first.Constraints)
	})
}
