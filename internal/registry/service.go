// Package registry owns the set of writing projects, the active selection,
// and every mutating operation over them. All mutations persist the full
// registry through the injected store before returning.
package registry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/akwrites/penlight/internal/domain/metrics"
	"github.com/akwrites/penlight/internal/domain/plan"
	"github.com/akwrites/penlight/internal/domain/progress"
	"github.com/akwrites/penlight/internal/domain/wordcount"
	"github.com/akwrites/penlight/internal/host"
	"github.com/akwrites/penlight/internal/store"
)

// Service is the project registry. The mutex serializes every operation so
// no caller ever observes a half-applied ledger update; in-memory state is
// applied before the durable write, and a failed write is reported while
// the in-memory change stands.
type Service struct {
	mu       sync.Mutex
	projects []*plan.Project
	activeID string

	store  store.Store
	doc    host.DocumentReader
	logger *slog.Logger
	now    func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the service clock, for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a registry backed by st, sampling the manuscript
// through doc.
func NewService(st store.Store, doc host.DocumentReader, logger *slog.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Service{
		store:  st,
		doc:    doc,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the persisted registry. An absent blob starts empty; a
// malformed one is logged and discarded rather than failing startup. Either
// way the registry self-heals by synthesizing a default project, and the
// healed state is persisted.
func (s *Service) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	blob, ok, err := s.store.Get(ctx)
	if err != nil {
		return fmt.Errorf("loading registry: %w", err)
	}

	if ok {
		state, err := store.Decode(blob)
		if err != nil {
			s.logger.Warn("discarding unreadable state blob", "error", err)
		} else {
			s.projects = state.Projects
			s.activeID = state.ActiveProjectID
		}
	}

	if healed := s.healLocked(); healed {
		return s.persistLocked(ctx)
	}
	return nil
}

// healLocked restores the registry invariants: never projectless, and the
// active id always references an existing project. Reports whether anything
// changed.
func (s *Service) healLocked() bool {
	healed := false
	if len(s.projects) == 0 {
		p := plan.New(plan.DefaultName, s.now())
		s.projects = append(s.projects, p)
		s.activeID = p.ID
		s.logger.Info("created default project", "project_id", p.ID)
		return true
	}
	if s.findLocked(s.activeID) == nil {
		s.activeID = s.projects[0].ID
		healed = true
	}
	return healed
}

func (s *Service) findLocked(id string) *plan.Project {
	for _, p := range s.projects {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (s *Service) persistLocked(ctx context.Context) error {
	blob, err := store.Encode(store.State{
		Projects:        s.projects,
		ActiveProjectID: s.activeID,
	})
	if err != nil {
		return err
	}
	if err := s.store.Set(ctx, blob); err != nil {
		return fmt.Errorf("persisting registry: %w", err)
	}
	return nil
}

// CreateProject adds a project with default settings and makes it active.
func (s *Service) CreateProject(ctx context.Context, name string) (*plan.Project, error) {
	if strings.TrimSpace(name) == "" {
		return nil, plan.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := plan.New(name, s.now())
	s.projects = append(s.projects, p)
	s.activeID = p.ID

	if err := s.persistLocked(ctx); err != nil {
		return clone(p), err
	}
	s.logger.Info("created project", "project_id", p.ID, "name", p.Name)
	return clone(p), nil
}

// DeleteProject removes a project. When the active project is deleted the
// first remaining one becomes active; deleting the last project immediately
// synthesizes a fresh default project, so the registry is never empty.
func (s *Service) DeleteProject(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, p := range s.projects {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return plan.ErrProjectNotFound
	}

	s.projects = append(s.projects[:idx], s.projects[idx+1:]...)
	if s.activeID == id {
		s.activeID = ""
	}
	s.healLocked()

	if err := s.persistLocked(ctx); err != nil {
		return err
	}
	s.logger.Info("deleted project", "project_id", id)
	return nil
}

// SetActiveProject switches the active selection. An unknown id is a no-op.
func (s *Service) SetActiveProject(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findLocked(id) == nil {
		return nil
	}
	s.activeID = id
	return s.persistLocked(ctx)
}

// UpdatePlan overwrites a project's plan settings. Validation failures
// leave the project untouched and nothing is persisted.
func (s *Service) UpdatePlan(ctx context.Context, id string, u plan.Update) error {
	if err := plan.ValidateUpdate(u); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findLocked(id)
	if p == nil {
		return plan.ErrProjectNotFound
	}

	p.Name = u.Name
	p.TargetWords = u.TargetWords
	p.Deadline = u.Deadline
	p.DailyTarget = u.DailyTarget
	if u.ReminderTime != "" {
		p.ReminderTime = u.ReminderTime
	}

	if err := s.persistLocked(ctx); err != nil {
		return err
	}
	s.logger.Info("updated plan", "project_id", id, "target_words", u.TargetWords)
	return nil
}

// RecordSample upserts a cumulative word-count sample for date into the
// project's ledger.
func (s *Service) RecordSample(ctx context.Context, id string, words int, date progress.Date) error {
	if words < 0 || date.IsZero() {
		return plan.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findLocked(id)
	if p == nil {
		return plan.ErrProjectNotFound
	}

	p.Progress.Upsert(date, words)
	return s.persistLocked(ctx)
}

// UpdateProgress reads the manuscript, counts its words and records today's
// sample for the project. The document is read before the registry lock is
// taken, so a failed read never touches the ledger and slow reads don't
// block other operations. Returns the sampled word count.
func (s *Service) UpdateProgress(ctx context.Context, id string) (int, error) {
	text, err := s.doc.ReadText(ctx)
	if err != nil {
		return 0, fmt.Errorf("reading document: %w", err)
	}
	words := wordcount.Count(text)

	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findLocked(id)
	if p == nil {
		return 0, plan.ErrProjectNotFound
	}

	today := progress.DateOf(s.now())
	p.Progress.Upsert(today, words)

	if err := s.persistLocked(ctx); err != nil {
		return words, err
	}
	s.logger.Info("recorded progress", "project_id", id, "date", today, "words", words)
	return words, nil
}

// Projects returns a snapshot of all projects in creation order.
func (s *Service) Projects() []*plan.Project {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*plan.Project, len(s.projects))
	for i, p := range s.projects {
		out[i] = clone(p)
	}
	return out
}

// ActiveProjectID returns the id of the active project.
func (s *Service) ActiveProjectID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeID
}

// Get returns a snapshot of one project. An empty id resolves to the
// active project.
func (s *Service) Get(id string) (*plan.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.resolveLocked(id)
	if err != nil {
		return nil, err
	}
	return clone(p), nil
}

func (s *Service) resolveLocked(id string) (*plan.Project, error) {
	if id == "" {
		id = s.activeID
	}
	p := s.findLocked(id)
	if p == nil {
		return nil, plan.ErrProjectNotFound
	}
	return p, nil
}

// Metrics computes the derived progress snapshot for a project as of the
// given instant. A zero asOf uses the service clock.
func (s *Service) Metrics(id string, asOf time.Time) (metrics.Metrics, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.resolveLocked(id)
	if err != nil {
		return metrics.Metrics{}, err
	}
	if asOf.IsZero() {
		asOf = s.now()
	}
	return metrics.Compute(p, asOf), nil
}

// History returns the most recent n ledger points, newest first.
func (s *Service) History(id string, n int) ([]progress.Point, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.resolveLocked(id)
	if err != nil {
		return nil, err
	}
	return p.Progress.History(n), nil
}

// Series returns the full daily series in chronological order, as consumed
// by chart renderers.
func (s *Service) Series(id string) ([]progress.Point, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.resolveLocked(id)
	if err != nil {
		return nil, err
	}
	return p.Progress.Series(), nil
}

// Reminder is one project's reminder evaluation.
type Reminder struct {
	ProjectID   string
	ProjectName string
	DailyTarget int
	Check       metrics.ReminderCheck
}

// CheckReminders evaluates every project's reminder at now.
func (s *Service) CheckReminders(now time.Time) []Reminder {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Reminder, 0, len(s.projects))
	for _, p := range s.projects {
		out = append(out, Reminder{
			ProjectID:   p.ID,
			ProjectName: p.Name,
			DailyTarget: p.DailyTarget,
			Check:       metrics.CheckReminder(p, now),
		})
	}
	return out
}

// CheckReminder evaluates a single project's reminder at now.
func (s *Service) CheckReminder(id string, now time.Time) (metrics.ReminderCheck, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.resolveLocked(id)
	if err != nil {
		return metrics.ReminderCheck{}, err
	}
	if now.IsZero() {
		now = s.now()
	}
	return metrics.CheckReminder(p, now), nil
}

// IsNotFound reports whether err is a missing-project error.
func IsNotFound(err error) bool {
	return errors.Is(err, plan.ErrProjectNotFound)
}

func clone(p *plan.Project) *plan.Project {
	cp := *p
	cp.Progress = make(progress.Ledger, len(p.Progress))
	copy(cp.Progress, p.Progress)
	return &cp
}
