package metrics

import (
	"time"

	"github.com/akwrites/penlight/internal/domain/plan"
	"github.com/akwrites/penlight/internal/domain/progress"
)

// ReminderCheck is the outcome of evaluating a project's daily reminder.
// Shortfall is reported even when the check does not fire, so callers can
// display it independently of the reminder time; it goes negative once the
// daily target has been exceeded.
type ReminderCheck struct {
	ShouldFire bool `json:"shouldFire"`
	Shortfall  int  `json:"shortfall"`
}

// CheckReminder evaluates p's reminder at now. It fires only when now's
// wall-clock HH:MM equals the project's reminder time and today's written
// words still fall short of the daily target. Deduplication across repeated
// calls within the same minute is the scheduler's concern, not this check's.
func CheckReminder(p *plan.Project, now time.Time) ReminderCheck {
	shortfall := p.DailyTarget - p.Progress.TodayDelta(progress.DateOf(now))
	return ReminderCheck{
		ShouldFire: p.ReminderTime != "" && now.Format("15:04") == p.ReminderTime && shortfall > 0,
		Shortfall:  shortfall,
	}
}
