package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/akwrites/penlight/internal/config"
	"github.com/akwrites/penlight/internal/host"
	"github.com/akwrites/penlight/internal/mcp"
	"github.com/akwrites/penlight/internal/registry"
	"github.com/akwrites/penlight/internal/scheduler"
	"github.com/akwrites/penlight/internal/sqlite"
	"github.com/akwrites/penlight/internal/store"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	// Use stderr for logs in stdio mode to keep stdout clean for JSON-RPC.
	logWriter := io.Writer(os.Stdout)
	if cfg.Transport.Mode == "stdio" {
		logWriter = os.Stderr
	}
	logger := slog.New(slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	st, cleanup, err := openStore(cfg.Store)
	if err != nil {
		logger.Error("failed to open store", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	reg := registry.NewService(st, host.NewFileReader(cfg.Document.Path), logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := reg.Load(ctx); err != nil {
		logger.Error("failed to load registry", "error", err)
		os.Exit(1)
	}

	if cfg.Reminder.Enabled {
		sched := scheduler.New(reg, scheduler.LogNotifier{Logger: logger}, logger)
		go sched.Run(ctx)
	}

	mcpServer := mcp.NewServer(mcp.Config{
		Registry: reg,
		Logger:   logger,
	})

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	if cfg.Transport.Mode == "stdio" {
		runStdioMode(ctx, cancel, stop, logger, mcpServer)
	} else {
		runHTTPMode(stop, logger, mcpServer, cfg.Server.Host, cfg.Server.Port)
	}
}

func openStore(cfg config.StoreConfig) (store.Store, func(), error) {
	switch cfg.Backend {
	case "memory":
		return store.NewMemory(), func() {}, nil
	case "file":
		return store.NewFile(cfg.Path), func() {}, nil
	case "sqlite":
		if err := ensureDir(cfg.Path); err != nil {
			return nil, nil, fmt.Errorf("preparing store path: %w", err)
		}
		db, err := sqlite.New(cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		if err := db.RunMigrations(); err != nil {
			db.Close()
			return nil, nil, err
		}
		return sqlite.NewStateStore(db, ""), func() { db.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}

func runStdioMode(ctx context.Context, cancel context.CancelFunc, stop chan os.Signal, logger *slog.Logger, mcpServer *sdkmcp.Server) {
	logger.Info("starting stdio transport")

	transport := &sdkmcp.StdioTransport{}

	go func() {
		<-stop
		logger.Info("shutting down")
		cancel()
	}()

	// Run blocks until stdin closes or context is canceled
	if err := mcpServer.Run(ctx, transport); err != nil {
		logger.Error("stdio server error", "error", err)
		os.Exit(1)
	}
}

func runHTTPMode(stop chan os.Signal, logger *slog.Logger, mcpServer *sdkmcp.Server, hostname string, port int) {
	mcpHandler := sdkmcp.NewStreamableHTTPHandler(
		func(r *http.Request) *sdkmcp.Server { return mcpServer },
		&sdkmcp.StreamableHTTPOptions{
			Stateless:      false,
			SessionTimeout: 30 * time.Minute,
		},
	)

	router := http.NewServeMux()
	router.Handle("/mcp", mcpHandler)
	router.Handle("/mcp/", mcpHandler)
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	addr := fmt.Sprintf("%s:%d", hostname, port)
	httpServer := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		logger.Info("server listening", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
		}
	}()

	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger.Info("shutting down")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}

func ensureDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
