package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/iceslide/internal/games/iceslide/puzzle"
)

func newTestServer(t *testing.T, opts Options) *Server {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	if opts.Seed == 0 {
		opts.Seed = 42
	}
	return NewServer(opts)
}

func get(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, Options{})

	w := get(t, s, "/health")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	_, err := uuid.Parse(w.Header().Get(RequestIDHeader))
	assert.NoError(t, err, "request id should be a uuid")
}

func TestBoard(t *testing.T) {
	s := newTestServer(t, Options{})

	w := get(t, s, "/board?difficulty=easy")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp BoardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, w.Header().Get(RequestIDHeader), resp.RequestID)
	assert.Equal(t, "easy", resp.Difficulty)
	assert.Equal(t, 9, resp.Board.Rows)
	assert.Equal(t, 9, resp.Board.Cols)
	assert.Positive(t, resp.Attempts)

	b, err := resp.Board.Board()
	require.NoError(t, err)
	moves, err := puzzle.ParseDirections(resp.Board.Solution)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(moves), 7)
	assert.True(t, puzzle.Verify(b, moves), "solution %q should solve the board", resp.Board.Solution)
	assert.Equal(t, len(moves), puzzle.Solve(b, 0).Len(), "served solution should be shortest")
}

func TestBoardDefaultsAndOverrides(t *testing.T) {
	s := newTestServer(t, Options{})

	w := get(t, s, "/board")
	require.Equal(t, http.StatusOK, w.Code)
	var resp BoardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "easy", resp.Difficulty)

	w = get(t, s, "/board?difficulty=EASY&cols=4&rows=3&moves=2")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 5, resp.Board.Rows)
	assert.Equal(t, 6, resp.Board.Cols)
}

func TestBoardBadRequests(t *testing.T) {
	s := newTestServer(t, Options{})

	tests := []struct {
		name   string
		target string
	}{
		{"unknown difficulty", "/board?difficulty=nightmare"},
		{"non-numeric override", "/board?cols=wide"},
		{"override out of range", "/board?cols=99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(t, s, tt.target)
			assert.Equal(t, http.StatusBadRequest, w.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"])
			assert.Equal(t, w.Header().Get(RequestIDHeader), body["request_id"])
		})
	}
}

func TestBoardGenerationFailure(t *testing.T) {
	// No 3x3 interior needs 30 moves, so a small attempt budget runs out.
	path := filepath.Join(t.TempDir(), "iceslide.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
default: tiny
generator:
  max_attempts: 50
presets:
  - name: tiny
    title: Tiny
    cols: 3
    rows: 3
    min_moves: 30
    rock_percent: 0
`), 0o600))

	s := newTestServer(t, Options{ConfigPath: path})

	w := get(t, s, "/board?difficulty=tiny")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "attempt limit")
}

func TestDifficulties(t *testing.T) {
	s := newTestServer(t, Options{})

	w := get(t, s, "/difficulties")
	require.Equal(t, http.StatusOK, w.Code)

	var infos []DifficultyInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &infos))
	require.Len(t, infos, 4)
	assert.Equal(t, "easy", infos[0].Name)
	assert.True(t, infos[0].Default)
	assert.Equal(t, 20, infos[3].Cols)
}

func TestMethods(t *testing.T) {
	s := newTestServer(t, Options{})

	req := httptest.NewRequest(http.MethodOptions, "/board", nil)
	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodPost, "/board", nil)
	w = httptest.NewRecorder()
	s.ServeHTTP(w, req)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
