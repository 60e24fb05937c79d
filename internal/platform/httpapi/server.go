// Package httpapi serves generated boards over HTTP for web front ends.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/vovakirdan/iceslide/internal/config"
	"github.com/vovakirdan/iceslide/internal/games/iceslide/puzzle"
)

// RequestIDHeader carries the per-request id in responses.
const RequestIDHeader = "X-Request-ID"

type ctxKey struct{}

// Options configures a Server.
type Options struct {
	// ConfigPath is a custom difficulty config; empty uses the search order.
	ConfigPath string

	// Seed fixes every board's random source. Zero seeds from the clock.
	Seed int64

	Logger *log.Logger
}

// Server represents the board API.
type Server struct {
	opts   Options
	router *mux.Router
	logger *log.Logger
}

// BoardResponse is the body of GET /board.
type BoardResponse struct {
	RequestID  string        `json:"request_id"`
	Difficulty string        `json:"difficulty"`
	Board      puzzle.Layout `json:"board"`
	Attempts   int           `json:"attempts"`
	ElapsedMS  int64         `json:"elapsed_ms"`
}

// DifficultyInfo describes one preset in GET /difficulties.
type DifficultyInfo struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Cols        int    `json:"cols"`
	Rows        int    `json:"rows"`
	MinMoves    int    `json:"min_moves"`
	RockPercent int    `json:"rock_percent"`
	Default     bool   `json:"default,omitempty"`
}

// NewServer creates a new API server.
func NewServer(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	s := &Server{
		opts:   opts,
		router: mux.NewRouter(),
		logger: logger,
	}
	s.setupRoutes()
	return s
}

// setupRoutes configures all routes.
func (s *Server) setupRoutes() {
	s.router.Use(s.requestIDMiddleware, corsMiddleware)

	s.router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	s.router.HandleFunc("/difficulties", s.handleDifficulties).Methods(http.MethodGet)
	s.router.HandleFunc("/board", s.handleBoard).Methods(http.MethodGet)

	// Preflight requests never reach a GET route
	s.router.Methods(http.MethodOptions).HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting HTTP server", "address", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// requestIDMiddleware tags every request with a uuid and logs it.
func (s *Server) requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set(RequestIDHeader, id)

		start := time.Now()
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, id)))
		s.logger.Debug("request", "id", id, "method", r.Method, "path", r.URL.Path, "took", time.Since(start))
	})
}

// corsMiddleware allows read-only access from any origin.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		next.ServeHTTP(w, r)
	})
}

// requestID returns the id assigned by requestIDMiddleware.
func requestID(r *http.Request) string {
	id, _ := r.Context().Value(ctxKey{}).(string)
	return id
}

// Response helpers
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // Client went away
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, r *http.Request, status int, message string) {
	respondJSON(w, status, map[string]string{
		"error":      message,
		"request_id": requestID(r),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// loadConfig reads the difficulty config, falling back to the defaults.
func (s *Server) loadConfig() config.IceConfig {
	cfg, err := config.LoadIce(s.opts.ConfigPath)
	if err != nil {
		s.logger.Warn("using default config", "err", err)
		return config.DefaultIceConfig()
	}
	return cfg
}

func (s *Server) handleDifficulties(w http.ResponseWriter, _ *http.Request) {
	cfg := s.loadConfig()

	infos := make([]DifficultyInfo, 0, len(cfg.Presets))
	for _, p := range cfg.Presets {
		infos = append(infos, DifficultyInfo{
			Name:        p.Name,
			Title:       p.Title,
			Cols:        p.Cols,
			Rows:        p.Rows,
			MinMoves:    p.MinMoves,
			RockPercent: p.RockPercent,
			Default:     p.Name == cfg.Default,
		})
	}
	respondJSON(w, http.StatusOK, infos)
}

// handleBoard generates a board for ?difficulty=name. The optional cols,
// rows, moves and rocks parameters override the preset.
func (s *Server) handleBoard(w http.ResponseWriter, r *http.Request) {
	cfg := s.loadConfig()
	query := r.URL.Query()

	preset, err := cfg.PresetByName(query.Get("difficulty"))
	if err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	var o config.Overrides
	for _, f := range []struct {
		name string
		dst  *int
	}{
		{"cols", &o.Cols},
		{"rows", &o.Rows},
		{"moves", &o.MinMoves},
		{"rocks", &o.RockPercent},
	} {
		v := query.Get(f.name)
		if v == "" {
			continue
		}
		n, convErr := strconv.Atoi(v)
		if convErr != nil {
			respondError(w, r, http.StatusBadRequest, "invalid "+f.name+": "+v)
			return
		}
		*f.dst = n
	}

	preset, err = config.ApplyOverrides(preset, o)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	seed := s.opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	res, err := puzzle.Generate(r.Context(), puzzle.GenParams{
		Rows:        preset.BoardRows(),
		Cols:        preset.BoardCols(),
		RockPercent: preset.RockPercent,
		MinMoves:    preset.MinMoves,
		MaxAttempts: cfg.Generator.MaxAttempts,
		Logger:      s.logger,
	}, rand.New(rand.NewSource(seed)))
	if err != nil {
		s.logger.Error("generation failed", "id", requestID(r), "difficulty", preset.Name, "err", err)
		respondError(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	layout := res.Board.Layout()
	layout.Solution = res.Solution.String()

	respondJSON(w, http.StatusOK, BoardResponse{
		RequestID:  requestID(r),
		Difficulty: preset.Name,
		Board:      layout,
		Attempts:   res.Attempts,
		ElapsedMS:  res.Elapsed.Milliseconds(),
	})
}
