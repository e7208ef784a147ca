// Package api serves a read-only observation view of a running simulation.
package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/talgya/chalkboard/internal/calendar"
	"github.com/talgya/chalkboard/internal/events"
	"github.com/talgya/chalkboard/internal/sim"
	"github.com/talgya/chalkboard/internal/social"
	"github.com/talgya/chalkboard/internal/students"
)

// Server exposes simulation state over HTTP. StateFn must return a snapshot
// that is safe to read after return; callers typically hand in a function
// that clones under a lock.
type Server struct {
	StateFn func() sim.GameState
	Port    int
}

func NewServer(stateFn func() sim.GameState, port int) *Server {
	return &Server{StateFn: stateFn, Port: port}
}

// Start launches the HTTP listener in a goroutine and returns immediately.
func (s *Server) Start() {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/v1/status", s.handleStatus)
	mux.HandleFunc("GET /api/v1/students", s.handleStudents)
	mux.HandleFunc("GET /api/v1/students/{id}", s.handleStudent)
	mux.HandleFunc("GET /api/v1/events", s.handleEvents)
	mux.HandleFunc("GET /api/v1/feed", s.handleFeed)

	addr := fmt.Sprintf(":%d", s.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsMiddleware(mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("api server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("api server failed", "error", err)
		}
	}()
}

type statusResponse struct {
	RunID        string      `json:"run_id"`
	Week         int         `json:"week"`
	Day          string      `json:"day"`
	Phase        string      `json:"phase"`
	SchoolDay    int         `json:"school_day"`
	Weather      string      `json:"weather"`
	ClassAverage float64     `json:"class_average"`
	AverageMood  float64     `json:"average_mood"`
	Teacher      sim.Teacher `json:"teacher"`
	ClassSize    int         `json:"class_size"`
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	state := s.StateFn()
	resp := statusResponse{
		RunID:        state.RunID,
		Week:         state.Turn.Week,
		Day:          sim.DayName(state.Turn.Day),
		Phase:        events.PhaseName(state.Turn.Phase),
		SchoolDay:    state.Year.CurrentDay,
		Weather:      calendar.WeatherName(state.Year.WeatherOn(state.Year.CurrentDay)),
		ClassAverage: state.ClassAverage(),
		AverageMood:  state.AverageMood(),
		Teacher:      state.Teacher,
		ClassSize:    len(state.Students),
	}
	writeJSON(w, http.StatusOK, resp)
}

type studentSummary struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Mood       string  `json:"mood"`
	Clique     string  `json:"clique"`
	Academic   float64 `json:"academic_level"`
	Engagement float64 `json:"engagement"`
	Energy     float64 `json:"energy"`
	Popularity float64 `json:"popularity"`
	Friends    int     `json:"friends"`
	Rivals     int     `json:"rivals"`
}

func (s *Server) handleStudents(w http.ResponseWriter, r *http.Request) {
	state := s.StateFn()
	out := make([]studentSummary, 0, len(state.Students))
	for i := range state.Students {
		st := &state.Students[i]
		out = append(out, studentSummary{
			ID:         string(st.ID),
			Name:       st.Name,
			Mood:       students.MoodName(st.Mood),
			Clique:     students.CliqueName(st.Clique),
			Academic:   st.AcademicLevel,
			Engagement: st.Engagement,
			Energy:     st.Energy,
			Popularity: st.Popularity,
			Friends:    len(st.FriendIDs),
			Rivals:     len(st.RivalIDs),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleStudent(w http.ResponseWriter, r *http.Request) {
	state := s.StateFn()
	id := students.StudentID(r.PathValue("id"))
	st, ok := state.StudentByID(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "student not found"})
		return
	}
	writeJSON(w, http.StatusOK, st)
}

type eventSummary struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Choices     []string `json:"choices"`
}

type eventsResponse struct {
	Active   []eventSummary `json:"active"`
	Resolved []string       `json:"resolved"`
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	state := s.StateFn()
	resp := eventsResponse{
		Active:   []eventSummary{},
		Resolved: state.Turn.ResolvedEvents,
	}
	for _, ev := range state.Turn.ActiveEvents {
		choices := make([]string, 0, len(ev.Choices))
		for _, c := range ev.Choices {
			choices = append(choices, c.Label)
		}
		resp.Active = append(resp.Active, eventSummary{
			ID:          ev.ID,
			Title:       ev.Title,
			Category:    ev.Category,
			Description: ev.Description,
			Choices:     choices,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

type feedResponse struct {
	Posts    []social.Post `json:"posts"`
	Trending []social.Post `json:"trending"`
}

func (s *Server) handleFeed(w http.ResponseWriter, r *http.Request) {
	state := s.StateFn()
	n := 3
	if raw := r.URL.Query().Get("top"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			n = v
		}
	}
	resp := feedResponse{
		Posts:    state.Feed,
		Trending: social.Trending(state.Feed, n),
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
