package scheduler_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/akwrites/penlight/internal/domain/plan"
	"github.com/akwrites/penlight/internal/registry"
	"github.com/akwrites/penlight/internal/registry/mocks"
	"github.com/akwrites/penlight/internal/scheduler"
	"github.com/akwrites/penlight/internal/store"
	"github.com/stretchr/testify/require"
)

type captureNotifier struct {
	mu    sync.Mutex
	notes []scheduler.Notification
}

func (c *captureNotifier) Notify(ctx context.Context, n scheduler.Notification) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notes = append(c.notes, n)
}

func (c *captureNotifier) all() []scheduler.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]scheduler.Notification(nil), c.notes...)
}

func setupRegistry(t *testing.T) *registry.Service {
	t.Helper()
	ctx := context.Background()
	svc := registry.NewService(store.NewMemory(), &mocks.DocumentReader{}, nil)
	require.NoError(t, svc.Load(ctx))

	require.NoError(t, svc.UpdatePlan(ctx, svc.ActiveProjectID(), plan.Update{
		Name: "Novel", TargetWords: 1000, Deadline: "2030-01-01",
		DailyTarget: 500, ReminderTime: "09:00",
	}))
	require.NoError(t, svc.RecordSample(ctx, svc.ActiveProjectID(), 200, "2024-06-10"))
	return svc
}

func TestTick_FiresAtReminderTime(t *testing.T) {
	svc := setupRegistry(t)
	notifier := &captureNotifier{}

	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	sched := scheduler.New(svc, notifier, nil,
		scheduler.WithClock(func() time.Time { return now }))

	sched.Tick(context.Background())

	notes := notifier.all()
	require.Len(t, notes, 1)
	require.Equal(t, 300, notes[0].Shortfall)
	require.Equal(t, "Novel", notes[0].ProjectName)
	require.Equal(t, 500, notes[0].DailyTarget)
}

func TestTick_AtMostOncePerMinute(t *testing.T) {
	svc := setupRegistry(t)
	notifier := &captureNotifier{}

	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	sched := scheduler.New(svc, notifier, nil,
		scheduler.WithClock(func() time.Time { return now }))

	// Misbehaving cadence: three ticks within the same minute.
	sched.Tick(context.Background())
	now = now.Add(10 * time.Second)
	sched.Tick(context.Background())
	now = now.Add(10 * time.Second)
	sched.Tick(context.Background())

	require.Len(t, notifier.all(), 1)
}

func TestTick_FiresAgainNextDay(t *testing.T) {
	svc := setupRegistry(t)
	notifier := &captureNotifier{}

	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	sched := scheduler.New(svc, notifier, nil,
		scheduler.WithClock(func() time.Time { return now }))

	sched.Tick(context.Background())
	now = now.AddDate(0, 0, 1)
	sched.Tick(context.Background())

	require.Len(t, notifier.all(), 2)
}

func TestTick_SilentOffReminderMinute(t *testing.T) {
	svc := setupRegistry(t)
	notifier := &captureNotifier{}

	sched := scheduler.New(svc, notifier, nil,
		scheduler.WithClock(func() time.Time {
			return time.Date(2024, 6, 10, 9, 1, 0, 0, time.UTC)
		}))
	sched.Tick(context.Background())

	require.Empty(t, notifier.all())
}

func TestTick_SilentWhenTargetMet(t *testing.T) {
	ctx := context.Background()
	svc := setupRegistry(t)
	require.NoError(t, svc.RecordSample(ctx, svc.ActiveProjectID(), 700, "2024-06-10"))

	notifier := &captureNotifier{}
	sched := scheduler.New(svc, notifier, nil,
		scheduler.WithClock(func() time.Time {
			return time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
		}))
	sched.Tick(ctx)

	require.Empty(t, notifier.all())
}

func TestRun_StopsOnCancel(t *testing.T) {
	svc := setupRegistry(t)
	sched := scheduler.New(svc, &captureNotifier{}, nil,
		scheduler.WithPeriod(time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sched.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}
}
