// Package plan defines the writing project: its goal settings and embedded
// progress ledger.
package plan

import (
	"time"

	"github.com/google/uuid"

	"github.com/akwrites/penlight/internal/domain/progress"
)

// Defaults applied when a project is created.
const (
	DefaultName         = "My First Project"
	DefaultTargetWords  = 10000
	DefaultDailyTarget  = 500
	DefaultReminderTime = "09:00"
)

// Project is one tracked writing goal. Deadline may be unset on a freshly
// created project; Name, TargetWords and Deadline are all required before a
// plan update is accepted. StartDate is informational only.
type Project struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	TargetWords  int             `json:"targetWords"`
	Deadline     progress.Date   `json:"deadline,omitempty"`
	DailyTarget  int             `json:"dailyTarget"`
	ReminderTime string          `json:"reminderTime"`
	StartDate    progress.Date   `json:"startDate"`
	Progress     progress.Ledger `json:"progress"`
}

// New creates a project with a fresh ID, default settings and an empty
// ledger, started on the calendar date of now.
func New(name string, now time.Time) *Project {
	return &Project{
		ID:           uuid.NewString(),
		Name:         name,
		TargetWords:  DefaultTargetWords,
		DailyTarget:  DefaultDailyTarget,
		ReminderTime: DefaultReminderTime,
		StartDate:    progress.DateOf(now),
		Progress:     progress.Ledger{},
	}
}
