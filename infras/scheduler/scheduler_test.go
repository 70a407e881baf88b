package scheduler_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"haven/infras/otel/mocks"
	"haven/infras/scheduler"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_Register(t *testing.T) {
	sched := scheduler.New(mocks.NewOtel())

	err := sched.Register(
		scheduler.Job{Name: "empty", Spec: "", Run: func(context.Context) error { return nil }},
		scheduler.Job{Name: "valid", Spec: "@every 1h", Run: func(context.Context) error { return nil }},
	)
	assert.NoError(t, err)

	err = sched.Register(scheduler.Job{Name: "broken", Spec: "not a spec", Run: func(context.Context) error { return nil }})
	assert.Error(t, err)
}

func TestScheduler_RunsJobs(t *testing.T) {
	sched := scheduler.New(mocks.NewOtel())

	var calls atomic.Int32

	require.NoError(t, sched.Register(
		scheduler.Job{Name: "tick", Spec: "@every 1s", Run: func(context.Context) error {
			calls.Add(1)

			return nil
		}},
		scheduler.Job{Name: "failing", Spec: "@every 1s", Run: func(context.Context) error {
			return errors.New("boom")
		}},
	))

	sched.Start()
	sched.Start()

	assert.Eventually(t, func() bool { return calls.Load() > 0 }, 3*time.Second, 50*time.Millisecond)

	sched.Stop()
	sched.Stop()
}

func TestScheduler_JobTimeout(t *testing.T) {
	sched := scheduler.New(mocks.NewOtel())

	deadlines := make(chan bool, 2)

	require.NoError(t, sched.Register(
		scheduler.Job{Name: "bounded", Spec: "@every 1s", Timeout: time.Minute, Run: func(ctx context.Context) error {
			_, ok := ctx.Deadline()
			select {
			case deadlines <- ok:
			default:
			}

			return nil
		}},
	))

	sched.Start()
	defer sched.Stop()

	select {
	case ok := <-deadlines:
		assert.True(t, ok)
	case <-time.After(3 * time.Second):
		t.Fatal("job did not run")
	}
}
