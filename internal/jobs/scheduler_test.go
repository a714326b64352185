package jobs

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingReconciler struct {
	calls atomic.Int32
	err   error
}

func (c *countingReconciler) ReconcileStale(context.Context) (int, error) {
	c.calls.Add(1)
	return 1, c.err
}

func TestReconcileOnce_SurvivesErrors(t *testing.T) {
	r := &countingReconciler{err: errors.New("boom")}
	ReconcileOnce(context.Background(), r)
	ReconcileOnce(context.Background(), r)
	assert.Equal(t, int32(2), r.calls.Load())
}

func TestScheduler_RunsReconciler(t *testing.T) {
	s, err := New()
	require.NoError(t, err)

	r := &countingReconciler{}
	_, err = s.AddStandingsReconciler(context.Background(), r, 20*time.Millisecond)
	require.NoError(t, err)

	s.Start()
	assert.Eventually(t, func() bool { return r.calls.Load() >= 2 }, 2*time.Second, 10*time.Millisecond)
	require.NoError(t, s.Stop())
	require.NoError(t, s.Stop(), "stop is idempotent")
}

func TestScheduler_RejectsBadInterval(t *testing.T) {
	s, err := New()
	require.NoError(t, err)
	defer s.Stop()

	_, err = s.AddStandingsReconciler(context.Background(), &countingReconciler{}, 0)
	assert.ErrorIs(t, err, ErrInvalidInterval)
}
