// Event-system actions — random checks, resolution, and the behavior
// escalation/reward coordinator.
package sim

import (
	"github.com/talgya/chalkboard/internal/events"
)

// randomEventCheck rolls the template registry for the current phase and
// appends at most one materialized event to the active list.
func (r *Reducer) randomEventCheck(state GameState) GameState {
	ev := events.CheckForEvents(state.Turn.Phase, state.Students, state.Difficulty, r.rng, r.now())
	if ev == nil {
		return state
	}
	out := state.Clone()
	out.Turn.ActiveEvents = append(out.Turn.ActiveEvents, *ev)
	return out
}

// resolveEvent applies a chosen option's effect list. Unknown event or
// choice ids leave the state untouched — a stale id after a day reset is
// indistinguishable from a legitimate replay, and that is intentional.
func resolveEvent(state GameState, a ResolveEvent) GameState {
	evIdx := -1
	for i := range state.Turn.ActiveEvents {
		if state.Turn.ActiveEvents[i].ID == a.EventID {
			evIdx = i
			break
		}
	}
	if evIdx < 0 {
		return state
	}
	choice := state.Turn.ActiveEvents[evIdx].ChoiceByID(a.ChoiceID)
	if choice == nil {
		return state
	}

	out := state.Clone()
	for _, eff := range choice.Effects {
		out = applyEffect(out, eff)
	}

	out.Turn.ActiveEvents = append(
		out.Turn.ActiveEvents[:evIdx],
		out.Turn.ActiveEvents[evIdx+1:]...)
	out.Turn.ResolvedEvents = append(out.Turn.ResolvedEvents, a.EventID)
	return out
}

// applyEffect routes one tagged effect to its target. Student and class
// stats clamp to [0,100]; teacher stats clamp except the supplies budget.
func applyEffect(state GameState, eff events.Effect) GameState {
	out := state

	switch eff.Target {
	case events.TargetStudent:
		if idx := out.studentIndex(eff.StudentID); idx >= 0 {
			out.Students[idx] = events.ApplyToStudent(out.Students[idx], eff)
		}
	case events.TargetClass:
		for i := range out.Students {
			out.Students[i] = events.ApplyToStudent(out.Students[i], eff)
		}
	case events.TargetTeacher:
		out.Teacher = applyTeacherEffect(out.Teacher, eff)
	}
	return out
}

func applyTeacherEffect(t Teacher, eff events.Effect) Teacher {
	switch eff.Stat {
	case events.StatTeacherEnergy:
		t.Energy = clampTeacherStat(t.Energy + eff.Delta)
	case events.StatReputation:
		t.Reputation = clampTeacherStat(t.Reputation + eff.Delta)
	case events.StatParentSatisfaction:
		t.ParentSatisfaction = clampTeacherStat(t.ParentSatisfaction + eff.Delta)
	case events.StatSuppliesBudget:
		// The budget can run negative; the caller sees the hole.
		t.SuppliesBudget += eff.Delta
	}
	return t
}

// behaviorReview runs the escalation ladder and the reward lottery over the
// roster. Consequences fire exactly at a threshold crossing so a student
// isn't re-escalated every review; at most one reward per review keeps the
// recognition scarce.
func (r *Reducer) behaviorReview(state GameState) GameState {
	out := state.Clone()
	now := r.now()
	rewarded := false

	for i := range out.Students {
		s := &out.Students[i]

		switch s.BehaviorIncidents {
		case 1, 3, 5:
			if ev := events.EscalateBehavior(s, now); ev != nil {
				out.Turn.ActiveEvents = append(out.Turn.ActiveEvents, *ev)
			}
		}

		if !rewarded {
			if ev := events.MaybeReward(s, r.rng, now); ev != nil {
				out.Turn.ActiveEvents = append(out.Turn.ActiveEvents, *ev)
				rewarded = true
			}
		}
	}
	return out
}
