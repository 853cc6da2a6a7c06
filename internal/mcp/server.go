// Package mcp exposes the tracker's operations as MCP tools, the surface
// the presentation layer drives.
package mcp

import (
	"context"
	"log/slog"
	"time"

	"github.com/akwrites/penlight/internal/domain/metrics"
	"github.com/akwrites/penlight/internal/domain/plan"
	"github.com/akwrites/penlight/internal/domain/progress"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Registry defines the registry operations needed by MCP.
type Registry interface {
	CreateProject(ctx context.Context, name string) (*plan.Project, error)
	DeleteProject(ctx context.Context, id string) error
	SetActiveProject(ctx context.Context, id string) error
	UpdatePlan(ctx context.Context, id string, u plan.Update) error
	UpdateProgress(ctx context.Context, id string) (int, error)
	RecordSample(ctx context.Context, id string, words int, date progress.Date) error
	Projects() []*plan.Project
	ActiveProjectID() string
	Get(id string) (*plan.Project, error)
	Metrics(id string, asOf time.Time) (metrics.Metrics, error)
	History(id string, n int) ([]progress.Point, error)
	Series(id string) ([]progress.Point, error)
	CheckReminder(id string, now time.Time) (metrics.ReminderCheck, error)
}

// Config contains server configuration.
type Config struct {
	Registry Registry
	Logger   *slog.Logger
}

const serverInstructions = `Writing-progress tracker. Projects hold a word
target, deadline, daily target and a per-day ledger of cumulative word
counts. update_progress samples the configured manuscript document and
records today's count; get_metrics derives completion percent, days left
and today's words. An empty project id always refers to the active project.`

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "penlight",
		Version: "0.1.0",
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	registerTools(server, cfg.Registry)

	return server
}
