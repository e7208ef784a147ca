// The root reducer — composes the per-subsystem reducers into one total
// function. Every (state, action) pair produces some valid state; anything
// unrecognized or out of phase falls through to the unchanged input.
package sim

import (
	"time"

	"github.com/google/uuid"

	"github.com/talgya/chalkboard/internal/calendar"
	"github.com/talgya/chalkboard/internal/entropy"
	"github.com/talgya/chalkboard/internal/events"
	"github.com/talgya/chalkboard/internal/social"
	"github.com/talgya/chalkboard/internal/students"
)

const (
	// DefaultClassSize is the roster size when NewGame doesn't specify one.
	DefaultClassSize = 15

	lessonEnergyCost   = 5.0
	methodEnergyCost   = 5.0
	interactEnergyCost = 5.0
	dayEnergyRecovery  = 40.0
)

// Reducer owns the run's random source and clock. The same seed replays the
// same run given the same action sequence.
type Reducer struct {
	rng *entropy.Source
	now func() time.Time
}

// NewReducer creates a reducer drawing randomness from the given source.
func NewReducer(rng *entropy.Source) *Reducer {
	return &Reducer{rng: rng, now: time.Now}
}

// Rand exposes the reducer's random source (the runner shares it for
// auto-play decisions).
func (r *Reducer) Rand() *entropy.Source {
	return r.rng
}

// Reduce applies one action and returns the next state. The input state is
// never mutated.
func (r *Reducer) Reduce(state GameState, action Action) GameState {
	switch a := action.(type) {
	case NewGame:
		return r.newGame(a)
	case LoadGame:
		return loadGame(a.State)
	case AdvancePhase:
		return r.advancePhase(state)
	case AdvanceDay:
		return r.advanceDay(state)
	case SelectLesson:
		return selectLesson(state, a)
	case SelectMethod:
		return selectMethod(state, a)
	case AssignHomework:
		return assignHomework(state, a)
	case InteractStudent:
		return interactStudent(state, a)
	case ResolveEvent:
		return resolveEvent(state, a)
	case RandomEventCheck:
		return r.randomEventCheck(state)
	case ProcessSocial:
		return r.processSocial(state)
	case BehaviorReview:
		return r.behaviorReview(state)
	case RecordGrade:
		return recordGrade(state, a)
	case ScheduleChange:
		return scheduleChange(state, a)
	case PublishPost:
		return publishPost(state, a)
	case ReactToPost:
		return reactToPost(state, a)
	default:
		return state
	}
}

// newGame builds the initial state: a fresh roster with seeded bonds and
// cliques, default teacher resources, day one of the school year.
func (r *Reducer) newGame(a NewGame) GameState {
	size := a.ClassSize
	if size <= 0 {
		size = DefaultClassSize
	}

	roster := students.NewSpawner(r.rng).SpawnRoster(size)
	roster = social.SeedBonds(roster, social.SeedChancePerStudent, r.rng)
	roster = social.AssignCliques(roster)
	for i := range roster {
		roster[i].Popularity = social.PopularityScore(&roster[i])
	}

	return GameState{
		RunID:    uuid.NewString(),
		Students: roster,
		Teacher: Teacher{
			Energy:             100,
			Reputation:         50,
			ParentSatisfaction: 70,
			SuppliesBudget:     100,
		},
		Turn: Turn{
			Week:  1,
			Day:   Monday,
			Phase: events.PhaseMorning,
		},
		Year:       calendar.Generate(calendar.DefaultGenConfig(r.rng.Seed())),
		Difficulty: a.Difficulty,
		Feed:       []social.Post{},
	}
}

// loadGame restores a snapshot, defaulting fields that older saves lack.
func loadGame(snapshot GameState) GameState {
	out := snapshot.Clone()

	for i := range out.Students {
		if out.Students[i].FriendshipStrengths == nil {
			out.Students[i].FriendshipStrengths = make(map[students.StudentID]float64)
		}
	}
	if out.Feed == nil {
		out.Feed = []social.Post{}
	}
	if out.Year.TotalDays == 0 {
		out.Year = calendar.Generate(calendar.DefaultGenConfig(1))
	}
	if out.Turn.Week < 1 {
		out.Turn.Week = 1
	}
	return out
}
