// Package sim provides the turn/phase state machine: the GameState root
// aggregate and the reducer that applies actions to it. Every transition is
// a pure function (state, action) -> state; inputs are never mutated and
// invalid or out-of-phase actions return the unchanged state.
package sim

import (
	"math"

	"github.com/talgya/chalkboard/internal/calendar"
	"github.com/talgya/chalkboard/internal/curriculum"
	"github.com/talgya/chalkboard/internal/events"
	"github.com/talgya/chalkboard/internal/social"
	"github.com/talgya/chalkboard/internal/students"
)

// Teacher holds the player-side resources. Energy, reputation, and parent
// satisfaction live in [0,100]; the supplies budget is not hard-clamped.
type Teacher struct {
	Energy             float64 `json:"energy"`
	Reputation         float64 `json:"reputation"`
	ParentSatisfaction float64 `json:"parent_satisfaction"`
	SuppliesBudget     float64 `json:"supplies_budget"`
}

// DayOfWeek enumerates the five school days.
type DayOfWeek uint8

const (
	Monday DayOfWeek = iota
	Tuesday
	Wednesday
	Thursday
	Friday
)

// DayName returns a human-readable day name.
func DayName(d DayOfWeek) string {
	switch d {
	case Monday:
		return "monday"
	case Tuesday:
		return "tuesday"
	case Wednesday:
		return "wednesday"
	case Thursday:
		return "thursday"
	case Friday:
		return "friday"
	default:
		return "unknown"
	}
}

// Next returns the following school day, wrapping Friday to Monday.
// wrapped is true on the Friday->Monday rollover.
func (d DayOfWeek) Next() (next DayOfWeek, wrapped bool) {
	if d == Friday {
		return Monday, true
	}
	return d + 1, false
}

// Turn is the within-day state: the current phase plus the per-day
// selections and event logs that reset on day advancement.
type Turn struct {
	Week             int                      `json:"week"`
	Day              DayOfWeek                `json:"day"`
	Phase            events.Phase             `json:"phase"`
	SelectedLesson   *curriculum.Lesson       `json:"selected_lesson,omitempty"`
	SelectedMethod   *curriculum.Method       `json:"selected_method,omitempty"`
	SelectedActivity *string                  `json:"selected_activity,omitempty"`
	HomeworkAssigned *curriculum.HomeworkType `json:"homework_assigned,omitempty"`
	ActiveEvents     []events.Event           `json:"active_events"`
	ResolvedEvents   []string                 `json:"resolved_events"`
	Interactions     []social.Interaction     `json:"interactions"`
}

// Clone returns a deep copy of the turn.
func (t Turn) Clone() Turn {
	out := t
	if t.SelectedLesson != nil {
		l := *t.SelectedLesson
		out.SelectedLesson = &l
	}
	if t.SelectedMethod != nil {
		m := *t.SelectedMethod
		out.SelectedMethod = &m
	}
	if t.SelectedActivity != nil {
		a := *t.SelectedActivity
		out.SelectedActivity = &a
	}
	if t.HomeworkAssigned != nil {
		h := *t.HomeworkAssigned
		out.HomeworkAssigned = &h
	}
	out.ActiveEvents = append([]events.Event(nil), t.ActiveEvents...)
	out.ResolvedEvents = append([]string(nil), t.ResolvedEvents...)
	out.Interactions = append([]social.Interaction(nil), t.Interactions...)
	return out
}

// GradeEntry is one recorded score in the gradebook substate.
type GradeEntry struct {
	StudentID students.StudentID `json:"student_id"`
	Subject   curriculum.Subject `json:"subject"`
	Score     float64            `json:"score"`
	Day       int                `json:"day"`
}

// Gradebook is an externally-owned substate threaded through the reducer.
type Gradebook struct {
	Entries []GradeEntry `json:"entries"`
}

// Period is one scheduled block in the weekly plan.
type Period struct {
	Day     DayOfWeek          `json:"day"`
	Subject curriculum.Subject `json:"subject"`
}

// Schedule is the weekly period plan, owned by an out-of-scope subsystem.
type Schedule struct {
	Periods []Period `json:"periods"`
}

// GameState is the root aggregate for one run.
type GameState struct {
	RunID      string              `json:"run_id"`
	Students   []students.Student  `json:"students"`
	Teacher    Teacher             `json:"teacher"`
	Turn       Turn                `json:"turn"`
	Year       calendar.SchoolYear `json:"year"`
	Difficulty events.Difficulty   `json:"difficulty"`

	// Externally-owned substates, threaded through unchanged unless an
	// action explicitly targets them.
	Gradebook Gradebook     `json:"gradebook"`
	Schedule  Schedule      `json:"schedule"`
	Feed      []social.Post `json:"feed"`
}

// Clone returns a deep copy of the whole state.
func (g GameState) Clone() GameState {
	out := g
	out.Students = make([]students.Student, len(g.Students))
	for i := range g.Students {
		out.Students[i] = g.Students[i].Clone()
	}
	out.Turn = g.Turn.Clone()
	out.Year = g.Year.Clone()
	out.Gradebook.Entries = append([]GradeEntry(nil), g.Gradebook.Entries...)
	out.Schedule.Periods = append([]Period(nil), g.Schedule.Periods...)
	out.Feed = append([]social.Post(nil), g.Feed...)
	return out
}

// ClassAverage is the rounded mean academic level, computed on read so it
// can never go stale after an overlooked mutation path.
func (g *GameState) ClassAverage() float64 {
	if len(g.Students) == 0 {
		return 0
	}
	total := 0.0
	for i := range g.Students {
		total += g.Students[i].AcademicLevel
	}
	return math.Round(total / float64(len(g.Students)))
}

// AverageMood is the mean mood index across the roster.
func (g *GameState) AverageMood() float64 {
	if len(g.Students) == 0 {
		return 0
	}
	total := 0
	for i := range g.Students {
		total += g.Students[i].Mood.Index()
	}
	return float64(total) / float64(len(g.Students))
}

// studentIndex finds a student's position in the roster, -1 when absent.
func (g *GameState) studentIndex(id students.StudentID) int {
	for i := range g.Students {
		if g.Students[i].ID == id {
			return i
		}
	}
	return -1
}

// StudentByID returns a copy of the named student.
func (g *GameState) StudentByID(id students.StudentID) (students.Student, bool) {
	if i := g.studentIndex(id); i >= 0 {
		return g.Students[i].Clone(), true
	}
	return students.Student{}, false
}

func clampTeacherStat(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
