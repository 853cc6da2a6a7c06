// Package scheduler drives the periodic reminder check.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/akwrites/penlight/internal/registry"
)

// DefaultPeriod matches the reminder time's minute granularity.
const DefaultPeriod = time.Minute

// Notification is delivered when a project's reminder fires.
type Notification struct {
	ProjectID   string
	ProjectName string
	Shortfall   int
	DailyTarget int
}

// Notifier delivers a reminder notification to the user.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// LogNotifier is a Notifier that writes reminders to the log.
type LogNotifier struct {
	Logger *slog.Logger
}

func (n LogNotifier) Notify(ctx context.Context, note Notification) {
	n.Logger.Warn("writing reminder",
		"project_id", note.ProjectID,
		"project", note.ProjectName,
		"shortfall", note.Shortfall,
		"daily_target", note.DailyTarget)
}

// Scheduler ticks once a minute and forwards firing reminder checks to the
// notifier. It tracks the last fired minute per project, so a project is
// notified at most once per target minute even if the registry is checked
// more often than the nominal cadence.
type Scheduler struct {
	registry  *registry.Service
	notifier  Notifier
	logger    *slog.Logger
	period    time.Duration
	now       func() time.Time
	lastFired map[string]string
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithPeriod overrides the tick period.
func WithPeriod(d time.Duration) Option {
	return func(s *Scheduler) { s.period = d }
}

// WithClock overrides the scheduler clock, for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) { s.now = now }
}

// New creates a reminder scheduler over reg.
func New(reg *registry.Service, notifier Notifier, logger *slog.Logger, opts ...Option) *Scheduler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Scheduler{
		registry:  reg,
		notifier:  notifier,
		logger:    logger,
		period:    DefaultPeriod,
		now:       time.Now,
		lastFired: make(map[string]string),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run ticks until ctx is canceled.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Tick(ctx)
		}
	}
}

// Tick evaluates every project's reminder once.
func (s *Scheduler) Tick(ctx context.Context) {
	now := s.now()
	minute := now.Format("2006-01-02 15:04")

	for _, rem := range s.registry.CheckReminders(now) {
		if !rem.Check.ShouldFire {
			continue
		}
		if s.lastFired[rem.ProjectID] == minute {
			continue
		}
		s.lastFired[rem.ProjectID] = minute

		s.logger.Debug("reminder fired",
			"project_id", rem.ProjectID, "shortfall", rem.Check.Shortfall)
		s.notifier.Notify(ctx, Notification{
			ProjectID:   rem.ProjectID,
			ProjectName: rem.ProjectName,
			Shortfall:   rem.Check.Shortfall,
			DailyTarget: rem.DailyTarget,
		})
	}
}
