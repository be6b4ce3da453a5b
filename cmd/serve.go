package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/rybkr/tilepuzzle/internal/generator"
	"github.com/rybkr/tilepuzzle/internal/server"
	"github.com/rybkr/tilepuzzle/internal/store"
)

const (
	redisAddrEnv    = "TILEPUZZLE_REDIS_ADDR"
	shutdownTimeout = 30 * time.Second
)

var (
	listenAddr    string
	redisAddr     string
	levelTTL      time.Duration
	maxFigureSize int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve puzzles over HTTP and websockets",
	Long: `Start an HTTP server that generates puzzles on demand and stores them in
Redis so they can be fetched again by ID.

Routes:
  GET  /stream        websocket; send {"type":"Generate","payload":{...}}
  POST /levels        generate and store a level
  GET  /levels/{id}   fetch a stored level`,
	RunE: runServe,
}

func init() {
	defaultRedis := os.Getenv(redisAddrEnv)
	if defaultRedis == "" {
		defaultRedis = "localhost:6379"
	}

	serveCmd.Flags().StringVar(&listenAddr, "addr", ":8080", "HTTP listen address")
	serveCmd.Flags().StringVar(&redisAddr, "redis", defaultRedis, "Redis address (env "+redisAddrEnv+")")
	serveCmd.Flags().DurationVar(&levelTTL, "ttl", 2*time.Hour, "How long stored levels live")
	serveCmd.Flags().IntVar(&maxFigureSize, "max-size", 500, "Largest figure size a client may request")
	serveCmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "Soft time limit per puzzle")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := slog.Default()

	client := redis.NewClient(&redis.Options{Addr: redisAddr})
	defer client.Close()
	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to reach redis at %s: %w", redisAddr, err)
	}

	repo, err := store.NewRedisRepository(&store.Config{Client: client, TTL: levelTTL})
	if err != nil {
		return fmt.Errorf("failed to create level repository: %w", err)
	}

	opts := generator.DefaultOptions()
	opts.Timeout = timeout
	opts.MaxFigureSize = maxFigureSize
	opts.Logger = logger

	srv, err := server.New(&server.Config{
		Generator:  generator.New(opts),
		Repository: repo,
		Logger:     logger,
		LevelTTL:   levelTTL,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	httpServer := &http.Server{
		Addr:              listenAddr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("server starting", slog.String("addr", listenAddr), slog.String("redis", redisAddr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Warn("graceful shutdown timeout exceeded, forcing stop", slog.Any("error", err))
			return httpServer.Close()
		}
		logger.Info("server stopped gracefully")
		return nil
	case err := <-errChan:
		return err
	}
}
