// Event templates and their materialized GameEvents.
package events

import (
	"github.com/talgya/chalkboard/internal/students"
)

// Phase identifies a sub-step of the school day. PhaseAny is only valid as a
// template scope, never as turn state.
type Phase uint8

const (
	PhaseMorning Phase = iota
	PhaseTeaching
	PhaseInteraction
	PhaseEndOfDay
	PhaseAny
)

// NumDayPhases is the number of real phases in a day (excludes PhaseAny).
const NumDayPhases = 4

// PhaseName returns a human-readable phase name.
func PhaseName(p Phase) string {
	switch p {
	case PhaseMorning:
		return "morning"
	case PhaseTeaching:
		return "teaching"
	case PhaseInteraction:
		return "interaction"
	case PhaseEndOfDay:
		return "end-of-day"
	case PhaseAny:
		return "any"
	default:
		return "unknown"
	}
}

// Difficulty is the global run difficulty; it scales event probability.
type Difficulty uint8

const (
	DifficultyEasy Difficulty = iota
	DifficultyNormal
	DifficultyHard
)

// Factor returns the event-probability multiplier for the difficulty.
func (d Difficulty) Factor() float64 {
	switch d {
	case DifficultyEasy:
		return 0.7
	case DifficultyHard:
		return 1.3
	default:
		return 1.0
	}
}

// DifficultyName returns a human-readable difficulty name.
func DifficultyName(d Difficulty) string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyHard:
		return "hard"
	default:
		return "normal"
	}
}

// Choice is one way to resolve an event, with its ordered effect list.
type Choice struct {
	ID      string   `json:"id"`
	Label   string   `json:"label"`
	Effects []Effect `json:"effects"`
}

// Template describes a potential event. Probability is per check, in (0,1],
// before the difficulty factor. RequiresStudent templates bind one eligible
// student at generation time; StudentFilter narrows eligibility (nil accepts
// every student).
type Template struct {
	ID              string
	Title           string
	Category        string // "daily", "special", "parent", "behavior", "weather"
	Phase           Phase
	Probability     float64
	RequiresStudent bool
	StudentFilter   func(*students.Student) bool

	// Description renders the event text; the bound student is nil for
	// class/teacher events.
	Description func(s *students.Student) string

	// Choices take the bound student so effects can reference them.
	Choices func(s *students.Student) []Choice
}

// AppliesTo reports whether the template can fire in the given phase.
func (t *Template) AppliesTo(p Phase) bool {
	return t.Phase == PhaseAny || t.Phase == p
}

// Event is a materialized template bound to concrete students, ready for
// resolution. IDs are templateID-unixNano, unique within a run.
type Event struct {
	ID                 string               `json:"id"`
	TemplateID         string               `json:"template_id"`
	Title              string               `json:"title"`
	Category           string               `json:"category"`
	Description        string               `json:"description"`
	Choices            []Choice             `json:"choices"`
	AffectedStudentIDs []students.StudentID `json:"affected_student_ids,omitempty"`
}

// ChoiceByID finds a choice on the event, nil if the id is unknown.
func (e *Event) ChoiceByID(id string) *Choice {
	for i := range e.Choices {
		if e.Choices[i].ID == id {
			return &e.Choices[i]
		}
	}
	return nil
}
