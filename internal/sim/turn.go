// Phase and day transitions — the heart of the state machine.
package sim

import (
	"github.com/talgya/chalkboard/internal/curriculum"
	"github.com/talgya/chalkboard/internal/events"
	"github.com/talgya/chalkboard/internal/students"
)

// advancePhase moves to the next phase in fixed order. At end-of-day the
// action is ignored; day advancement is its own transition. Leaving teaching
// applies teaching effects only when both a lesson and a method are set —
// callers gate the UI, but the reducer stays defensively idempotent.
func (r *Reducer) advancePhase(state GameState) GameState {
	switch state.Turn.Phase {
	case events.PhaseMorning:
		out := state.Clone()
		out.Turn.Phase = events.PhaseTeaching
		return out

	case events.PhaseTeaching:
		out := state.Clone()
		if out.Turn.SelectedLesson != nil && out.Turn.SelectedMethod != nil {
			lesson := *out.Turn.SelectedLesson
			method := *out.Turn.SelectedMethod
			for i := range out.Students {
				if !out.Students[i].AttendanceToday {
					continue
				}
				out.Students[i] = students.ApplyTeachingEffects(out.Students[i], lesson, method)
			}
		}
		out.Turn.Phase = events.PhaseInteraction
		return out

	case events.PhaseInteraction:
		out := state.Clone()
		out.Turn.Phase = events.PhaseEndOfDay
		return out

	default:
		// End-of-day: advancing the phase is a no-op, not an error.
		return state
	}
}

// advanceDay wraps up the day: homework simulation and overnight recovery
// for every student, teacher energy restoration, the day-of-week roll, the
// school-year counter, and the per-day turn reset. Only accepted from
// end-of-day.
func (r *Reducer) advanceDay(state GameState) GameState {
	if state.Turn.Phase != events.PhaseEndOfDay {
		return state
	}

	out := state.Clone()

	hw := curriculum.HomeworkNone
	if out.Turn.HomeworkAssigned != nil {
		hw = *out.Turn.HomeworkAssigned
	}

	for i := range out.Students {
		s := out.Students[i]
		result := students.SimulateHomework(&s, hw, r.rng)
		s = students.MoodNudgeFromHomework(s, result)
		s = students.OvernightRecovery(s, r.rng)
		s.AttendanceToday = true
		out.Students[i] = s
	}

	out.Teacher.Energy = clampTeacherStat(out.Teacher.Energy + dayEnergyRecovery)

	next, wrapped := out.Turn.Day.Next()
	out.Turn.Day = next
	if wrapped {
		out.Turn.Week++
	}
	out.Year.Advance()

	// Per-day turn fields reset to their initial values.
	out.Turn.Phase = events.PhaseMorning
	out.Turn.SelectedLesson = nil
	out.Turn.SelectedMethod = nil
	out.Turn.SelectedActivity = nil
	out.Turn.HomeworkAssigned = nil
	out.Turn.ActiveEvents = nil
	out.Turn.ResolvedEvents = nil
	out.Turn.Interactions = nil

	return out
}
