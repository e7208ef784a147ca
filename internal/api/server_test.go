package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/chalkboard/internal/entropy"
	"github.com/talgya/chalkboard/internal/events"
	"github.com/talgya/chalkboard/internal/sim"
	"github.com/talgya/chalkboard/internal/social"
)

func testServer(t *testing.T) (*Server, sim.GameState) {
	t.Helper()
	red := sim.NewReducer(entropy.New(1))
	state := red.Reduce(sim.GameState{}, sim.NewGame{Difficulty: events.DifficultyNormal, ClassSize: 5})
	state = red.Reduce(state, sim.PublishPost{Post: social.Post{
		ID: "post-1", AuthorID: state.Students[0].ID, Caption: "field trip", Likes: 9, Comments: 3,
	}})
	srv := NewServer(func() sim.GameState { return state.Clone() }, 0)
	return srv, state
}

func TestHandleStatus(t *testing.T) {
	srv, state := testServer(t)

	rec := httptest.NewRecorder()
	srv.handleStatus(rec, httptest.NewRequest(http.MethodGet, "/api/v1/status", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp statusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, state.RunID, resp.RunID)
	assert.Equal(t, 1, resp.Week)
	assert.Equal(t, "monday", resp.Day)
	assert.Equal(t, "morning", resp.Phase)
	assert.Equal(t, 5, resp.ClassSize)
	assert.Equal(t, state.ClassAverage(), resp.ClassAverage)
}

func TestHandleStudents(t *testing.T) {
	srv, _ := testServer(t)

	rec := httptest.NewRecorder()
	srv.handleStudents(rec, httptest.NewRequest(http.MethodGet, "/api/v1/students", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var out []studentSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out, 5)
	for i := 1; i < len(out); i++ {
		assert.LessOrEqual(t, out[i-1].Name, out[i].Name, "roster is name-sorted")
	}
}

func TestHandleStudentNotFound(t *testing.T) {
	srv, _ := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/students/nobody", nil)
	req.SetPathValue("id", "nobody")
	rec := httptest.NewRecorder()
	srv.handleStudent(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleStudentFound(t *testing.T) {
	srv, state := testServer(t)
	id := string(state.Students[0].ID)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/students/"+id, nil)
	req.SetPathValue("id", id)
	rec := httptest.NewRecorder()
	srv.handleStudent(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), id)
}

func TestHandleEvents(t *testing.T) {
	srv, _ := testServer(t)

	rec := httptest.NewRecorder()
	srv.handleEvents(rec, httptest.NewRequest(http.MethodGet, "/api/v1/events", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp eventsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotNil(t, resp.Active)
	assert.Empty(t, resp.Active)
}

func TestHandleFeed(t *testing.T) {
	srv, _ := testServer(t)

	rec := httptest.NewRecorder()
	srv.handleFeed(rec, httptest.NewRequest(http.MethodGet, "/api/v1/feed?top=1", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp feedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Posts, 1)
	require.Len(t, resp.Trending, 1)
	assert.Equal(t, "post-1", resp.Trending[0].ID)
}

func TestCORSMiddleware(t *testing.T) {
	handler := corsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/v1/status", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/status", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
