package mcp

import (
	"context"
	"time"

	"github.com/akwrites/penlight/internal/domain/metrics"
	"github.com/akwrites/penlight/internal/domain/plan"
	"github.com/akwrites/penlight/internal/domain/progress"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// registerTools attaches every tool to the server.
func registerTools(server *sdkmcp.Server, reg Registry) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "create_project",
		Description: "Create a new writing project with default settings and make it active",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in CreateProjectParams) (*sdkmcp.CallToolResult, CreateProjectResponse, error) {
		p, err := reg.CreateProject(ctx, in.Name)
		if err != nil {
			return nil, CreateProjectResponse{}, MapError(err)
		}
		return nil, CreateProjectResponse{Project: p}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_projects",
		Description: "List all writing projects and the active project id",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in ListProjectsParams) (*sdkmcp.CallToolResult, ListProjectsResponse, error) {
		return nil, ListProjectsResponse{
			Projects:        reg.Projects(),
			ActiveProjectID: reg.ActiveProjectID(),
		}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_project",
		Description: "Get one project, or the active project when id is omitted",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in ProjectIDParams) (*sdkmcp.CallToolResult, CreateProjectResponse, error) {
		p, err := reg.Get(in.ID)
		if err != nil {
			return nil, CreateProjectResponse{}, MapError(err)
		}
		return nil, CreateProjectResponse{Project: p}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_project",
		Description: "Delete a project; deleting the last project creates a fresh default one",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in DeleteProjectParams) (*sdkmcp.CallToolResult, OKResponse, error) {
		if err := reg.DeleteProject(ctx, in.ID); err != nil {
			return nil, OKResponse{}, MapError(err)
		}
		return nil, OKResponse{OK: true}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "set_active_project",
		Description: "Switch the active project; unknown ids are ignored",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in SetActiveProjectParams) (*sdkmcp.CallToolResult, OKResponse, error) {
		if err := reg.SetActiveProject(ctx, in.ID); err != nil {
			return nil, OKResponse{}, MapError(err)
		}
		return nil, OKResponse{OK: true}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "update_plan",
		Description: "Overwrite a project's plan: name, word target and deadline are required",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in UpdatePlanParams) (*sdkmcp.CallToolResult, OKResponse, error) {
		id := in.ID
		if id == "" {
			id = reg.ActiveProjectID()
		}
		err := reg.UpdatePlan(ctx, id, plan.Update{
			Name:         in.Name,
			TargetWords:  in.TargetWords,
			Deadline:     progress.Date(in.Deadline),
			DailyTarget:  in.DailyTarget,
			ReminderTime: in.ReminderTime,
		})
		if err != nil {
			return nil, OKResponse{}, MapError(err)
		}
		return nil, OKResponse{OK: true}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "update_progress",
		Description: "Sample the manuscript's word count and record it as today's progress",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in UpdateProgressParams) (*sdkmcp.CallToolResult, UpdateProgressResponse, error) {
		id := in.ID
		if id == "" {
			id = reg.ActiveProjectID()
		}
		words, err := reg.UpdateProgress(ctx, id)
		if err != nil {
			return nil, UpdateProgressResponse{}, MapError(err)
		}
		m, err := reg.Metrics(id, time.Time{})
		if err != nil {
			return nil, UpdateProgressResponse{}, MapError(err)
		}
		return nil, UpdateProgressResponse{Words: words, Metrics: m}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "record_sample",
		Description: "Record an explicit cumulative word count for a date (YYYY-MM-DD)",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in RecordSampleParams) (*sdkmcp.CallToolResult, OKResponse, error) {
		id := in.ID
		if id == "" {
			id = reg.ActiveProjectID()
		}
		date, err := progress.ParseDate(in.Date)
		if err != nil {
			return nil, OKResponse{}, MapError(plan.ErrInvalidInput)
		}
		if err := reg.RecordSample(ctx, id, in.Words, date); err != nil {
			return nil, OKResponse{}, MapError(err)
		}
		return nil, OKResponse{OK: true}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_metrics",
		Description: "Get current words, completion percent, days left and today's words for a project",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in GetMetricsParams) (*sdkmcp.CallToolResult, metrics.Metrics, error) {
		var asOf time.Time
		if in.AsOf != "" {
			t, err := time.Parse(time.RFC3339, in.AsOf)
			if err != nil {
				return nil, metrics.Metrics{}, MapError(plan.ErrInvalidInput)
			}
			asOf = t
		}
		m, err := reg.Metrics(in.ID, asOf)
		if err != nil {
			return nil, metrics.Metrics{}, MapError(err)
		}
		return nil, m, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_history",
		Description: "Get the most recent progress entries, newest first (default 10)",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in GetHistoryParams) (*sdkmcp.CallToolResult, HistoryResponse, error) {
		limit := in.Limit
		if limit <= 0 {
			limit = 10
		}
		points, err := reg.History(in.ID, limit)
		if err != nil {
			return nil, HistoryResponse{}, MapError(err)
		}
		return nil, HistoryResponse{Points: points}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_progress_series",
		Description: "Get the full daily progress series in chronological order, for charting",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in ProjectIDParams) (*sdkmcp.CallToolResult, HistoryResponse, error) {
		points, err := reg.Series(in.ID)
		if err != nil {
			return nil, HistoryResponse{}, MapError(err)
		}
		return nil, HistoryResponse{Points: points}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "check_reminder",
		Description: "Evaluate a project's daily reminder right now and report the shortfall",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in CheckReminderParams) (*sdkmcp.CallToolResult, metrics.ReminderCheck, error) {
		check, err := reg.CheckReminder(in.ID, time.Time{})
		if err != nil {
			return nil, metrics.ReminderCheck{}, MapError(err)
		}
		return nil, check, nil
	})
}
