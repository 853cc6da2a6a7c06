package plan

import (
	"regexp"
	"strings"

	"github.com/akwrites/penlight/internal/domain/progress"
)

var reminderTimeRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// Update carries the plan settings a caller wants to apply to a project.
type Update struct {
	Name         string
	TargetWords  int
	Deadline     progress.Date
	DailyTarget  int
	ReminderTime string
}

// ValidateUpdate checks that an update satisfies plan completeness: name,
// positive target and deadline are all required, and the optional fields
// must be well formed when set.
func ValidateUpdate(u Update) error {
	if strings.TrimSpace(u.Name) == "" {
		return ErrIncompletePlan
	}
	if u.TargetWords <= 0 {
		return ErrIncompletePlan
	}
	if u.Deadline.IsZero() {
		return ErrIncompletePlan
	}
	if _, err := progress.ParseDate(string(u.Deadline)); err != nil {
		return ErrInvalidInput
	}
	if u.DailyTarget < 0 {
		return ErrInvalidInput
	}
	if u.ReminderTime != "" && !reminderTimeRe.MatchString(u.ReminderTime) {
		return ErrInvalidInput
	}
	return nil
}
