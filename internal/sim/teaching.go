// Teaching-phase and interaction actions.
package sim

import (
	"github.com/talgya/chalkboard/internal/events"
	"github.com/talgya/chalkboard/internal/students"
)

// selectLesson is only honored during teaching and costs teacher energy
// immediately, floored at zero.
func selectLesson(state GameState, a SelectLesson) GameState {
	if state.Turn.Phase != events.PhaseTeaching {
		return state
	}
	out := state.Clone()
	lesson := a.Lesson
	out.Turn.SelectedLesson = &lesson
	out.Teacher.Energy = clampTeacherStat(out.Teacher.Energy - lessonEnergyCost)
	return out
}

// selectMethod mirrors selectLesson for the teaching method.
func selectMethod(state GameState, a SelectMethod) GameState {
	if state.Turn.Phase != events.PhaseTeaching {
		return state
	}
	out := state.Clone()
	method := a.Method
	out.Turn.SelectedMethod = &method
	out.Teacher.Energy = clampTeacherStat(out.Teacher.Energy - methodEnergyCost)
	return out
}

// assignHomework is only honored at end-of-day.
func assignHomework(state GameState, a AssignHomework) GameState {
	if state.Turn.Phase != events.PhaseEndOfDay {
		return state
	}
	out := state.Clone()
	hw := a.Type
	out.Turn.HomeworkAssigned = &hw
	return out
}

// interactStudent delegates a one-on-one action to the behavior model.
// Only honored during the interaction phase; unknown student ids are
// silently ignored.
func interactStudent(state GameState, a InteractStudent) GameState {
	if state.Turn.Phase != events.PhaseInteraction {
		return state
	}
	idx := state.studentIndex(a.StudentID)
	if idx < 0 {
		return state
	}

	out := state.Clone()
	out.Students[idx] = students.ApplyInteraction(out.Students[idx], a.Kind)
	out.Teacher.Energy = clampTeacherStat(out.Teacher.Energy - interactEnergyCost)
	return out
}
