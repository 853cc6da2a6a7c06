package mcp

import (
	"github.com/akwrites/penlight/internal/domain/metrics"
	"github.com/akwrites/penlight/internal/domain/plan"
	"github.com/akwrites/penlight/internal/domain/progress"
)

type CreateProjectParams struct {
	Name string `json:"name"`
}

type CreateProjectResponse struct {
	Project *plan.Project `json:"project"`
}

type ListProjectsParams struct{}

type ListProjectsResponse struct {
	Projects        []*plan.Project `json:"projects"`
	ActiveProjectID string          `json:"active_project_id"`
}

type ProjectIDParams struct {
	// ID of the project; omit to address the active project.
	ID string `json:"id,omitempty"`
}

type DeleteProjectParams struct {
	ID string `json:"id"`
}

type SetActiveProjectParams struct {
	ID string `json:"id"`
}

type UpdatePlanParams struct {
	ID           string `json:"id,omitempty"`
	Name         string `json:"name"`
	TargetWords  int    `json:"target_words"`
	Deadline     string `json:"deadline"`
	DailyTarget  int    `json:"daily_target,omitempty"`
	ReminderTime string `json:"reminder_time,omitempty"`
}

type UpdateProgressParams struct {
	ID string `json:"id,omitempty"`
}

type UpdateProgressResponse struct {
	Words   int             `json:"words"`
	Metrics metrics.Metrics `json:"metrics"`
}

type RecordSampleParams struct {
	ID    string `json:"id,omitempty"`
	Date  string `json:"date"`
	Words int    `json:"words"`
}

type GetMetricsParams struct {
	ID string `json:"id,omitempty"`
	// AsOf is an optional RFC 3339 instant; defaults to now.
	AsOf string `json:"as_of,omitempty"`
}

type GetHistoryParams struct {
	ID    string `json:"id,omitempty"`
	Limit int    `json:"limit,omitempty"`
}

type HistoryResponse struct {
	Points []progress.Point `json:"points"`
}

type CheckReminderParams struct {
	ID string `json:"id,omitempty"`
}

type OKResponse struct {
	OK bool `json:"ok"`
}
