// Package server exposes puzzle generation over HTTP and a websocket
// stream, persisting each generated level so other clients can fetch it.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/coder/websocket"

	"github.com/rybkr/tilepuzzle/internal/board"
	"github.com/rybkr/tilepuzzle/internal/generator"
	"github.com/rybkr/tilepuzzle/internal/store"
)

const (
	writeTimeout   = 3 * time.Second
	maxMessageSize = 4 << 10
)

// Generator produces puzzles. *generator.Generator satisfies it.
type Generator interface {
	Generate(req generator.Request) (*board.Result, error)
}

// Config holds the server's dependencies.
type Config struct {
	Generator  Generator
	Repository store.Repository
	Logger     *slog.Logger  // nil means slog.Default()
	LevelTTL   time.Duration // 0 means the repository default
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Generator == nil {
		return errors.New("server: generator is required")
	}
	if c.Repository == nil {
		return errors.New("server: repository is required")
	}
	return nil
}

// Server routes requests to the generator and the level repository.
type Server struct {
	gen    Generator
	repo   store.Repository
	logger *slog.Logger
	ttl    time.Duration
}

// New creates a Server.
func New(cfg *Config) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		gen:    cfg.Generator,
		repo:   cfg.Repository,
		logger: logger,
		ttl:    cfg.LevelTTL,
	}, nil
}

// Handler returns the HTTP routes:
//
//	GET  /stream        websocket; each Generate intent yields a Level reply
//	POST /levels        generate and store a level from a JSON request
//	GET  /levels/{id}   fetch a stored level
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /stream", s.handleStream)
	mux.HandleFunc("POST /levels", s.handleCreateLevel)
	mux.HandleFunc("GET /levels/{id}", s.handleGetLevel)
	return mux
}

// createLevel generates a puzzle and stores it.
func (s *Server) createLevel(ctx context.Context, req generator.Request) (*store.Level, error) {
	result, err := s.gen.Generate(req)
	if err != nil {
		return nil, err
	}
	out, err := s.repo.Save(ctx, store.SaveInput{Result: result, TTL: s.ttl})
	if err != nil {
		return nil, err
	}
	s.logger.Info("level created",
		slog.String("id", out.Level.ID),
		slog.String("tile_type", req.TileType.String()),
		slog.Int("figure_size", req.FigureSize),
		slog.Int("pieces", req.PiecesAmount),
		slog.Bool("balanced", result.Stats.Balanced))
	return out.Level, nil
}

func (s *Server) handleCreateLevel(w http.ResponseWriter, r *http.Request) {
	var req generator.Request
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxMessageSize))
	if err := dec.Decode(&req); err != nil {
		s.writeError(w, fmt.Errorf("%w: %v", errBadRequest, err))
		return
	}

	level, err := s.createLevel(r.Context(), req)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, level)
}

func (s *Server) handleGetLevel(w http.ResponseWriter, r *http.Request) {
	out, err := s.repo.Get(r.Context(), store.GetInput{ID: r.PathValue("id")})
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out.Level)
}

func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
	if err != nil {
		s.logger.Warn("websocket accept failed", slog.Any("error", err))
		return
	}
	defer conn.Close(websocket.StatusNormalClosure, "")
	conn.SetReadLimit(maxMessageSize)

	ctx := r.Context()
	s.logger.Info("stream opened", slog.String("remote", r.RemoteAddr))
	defer s.logger.Info("stream closed", slog.String("remote", r.RemoteAddr))

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return
		}

		reply := s.handleIntent(ctx, data)
		msg, err := json.Marshal(reply)
		if err != nil {
			s.logger.Error("marshal reply", slog.Any("error", err))
			return
		}

		wctx, cancel := context.WithTimeout(ctx, writeTimeout)
		err = conn.Write(wctx, websocket.MessageText, msg)
		cancel()
		if err != nil {
			return
		}
	}
}

// handleIntent turns one stream message into its reply.
func (s *Server) handleIntent(ctx context.Context, data []byte) ReplyEnvelope {
	var env IntentEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return errorReply(fmt.Errorf("%w: %v", errBadRequest, err))
	}

	switch env.Type {
	case TypeGenerate:
		var req generator.Request
		if err := json.Unmarshal(env.Payload, &req); err != nil {
			return errorReply(fmt.Errorf("%w: %v", errBadRequest, err))
		}
		level, err := s.createLevel(ctx, req)
		if err != nil {
			s.logger.Warn("generate failed", slog.Any("error", err))
			return errorReply(err)
		}
		return ReplyEnvelope{Type: TypeLevel, Level: level}
	default:
		return errorReply(fmt.Errorf("%w: unknown message type %q", errBadRequest, env.Type))
	}
}
