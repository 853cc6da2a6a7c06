// Package metrics derives progress readings from a project's plan and
// ledger. All computations are pure functions of project state and an
// injected clock value.
package metrics

import (
	"math"
	"time"

	"github.com/akwrites/penlight/internal/domain/plan"
	"github.com/akwrites/penlight/internal/domain/progress"
)

// Metrics is the derived progress snapshot for one project at a moment in
// time.
type Metrics struct {
	CurrentWords int     `json:"currentWords"`
	Percent      float64 `json:"percent"`
	DaysLeft     int     `json:"daysLeft"`
	TodayWords   int     `json:"todayWords"`
}

// Compute derives the metrics for p as of the given instant. Percent is
// rounded to one decimal and clamped to [0,100]; a zero word target is
// floored at 1 to avoid dividing by zero. DaysLeft is the number of calendar
// days (rounded up) until the deadline, 0 once passed or while the deadline
// is unset.
func Compute(p *plan.Project, asOf time.Time) Metrics {
	current := p.Progress.LatestTotal()

	target := p.TargetWords
	if target < 1 {
		target = 1
	}
	percent := math.Round(float64(current)/float64(target)*1000) / 10
	if percent > 100 {
		percent = 100
	}
	if percent < 0 {
		percent = 0
	}

	return Metrics{
		CurrentWords: current,
		Percent:      percent,
		DaysLeft:     daysLeft(p.Deadline, asOf),
		TodayWords:   p.Progress.TodayDelta(progress.DateOf(asOf)),
	}
}

func daysLeft(deadline progress.Date, asOf time.Time) int {
	if deadline.IsZero() {
		return 0
	}
	remaining := deadline.Time().Sub(asOf)
	days := int(math.Ceil(remaining.Hours() / 24))
	if days < 0 {
		return 0
	}
	return days
}
