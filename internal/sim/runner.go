// Headless day runner — drives whole school days through the reducer,
// auto-picking lessons, interactions, and event resolutions. Powers the CLI
// run mode and the end-to-end soak tests.
package sim

import (
	"fmt"
	"log/slog"

	"github.com/talgya/chalkboard/internal/calendar"
	"github.com/talgya/chalkboard/internal/curriculum"
	"github.com/talgya/chalkboard/internal/students"
)

// Runner plays days against a reducer, keeping the latest state.
type Runner struct {
	Red   *Reducer
	State GameState

	// ResolvedLog accumulates resolved event ids across the whole run;
	// the per-day list on the turn resets at each day advance.
	ResolvedLog []string

	// OnDayEnd runs after each completed day (autosave hook). Failures are
	// the hook's problem; the runner never blocks on it.
	OnDayEnd func(GameState)
}

// NewRunner creates a runner over an initial state.
func NewRunner(red *Reducer, state GameState) *Runner {
	return &Runner{Red: red, State: state}
}

// Run plays the given number of school days.
func (r *Runner) Run(days int) {
	for i := 0; i < days; i++ {
		r.PlayDay()
	}
}

// PlayDay advances from morning through end-of-day and rolls the next day.
func (r *Runner) PlayDay() {
	rng := r.Red.Rand()

	// Morning.
	r.apply(RandomEventCheck{})
	r.resolveActive()
	r.apply(AdvancePhase{})

	// Teaching: pick a lesson and a method at random.
	lessons := curriculum.Lessons()
	r.apply(SelectLesson{Lesson: lessons[rng.IntN(len(lessons))]})
	r.apply(SelectMethod{Method: curriculum.Method(rng.IntN(curriculum.NumMethods))})
	r.apply(RandomEventCheck{})
	r.resolveActive()
	r.apply(AdvancePhase{})

	// Interaction: a couple of one-on-ones, then the social tick.
	for n := rng.Between(2, 3); n > 0 && len(r.State.Students) > 0; n-- {
		target := r.State.Students[rng.IntN(len(r.State.Students))]
		kind := students.InteractionKind(rng.IntN(3))
		r.apply(InteractStudent{StudentID: target.ID, Kind: kind})
	}
	r.apply(ProcessSocial{})
	r.apply(RandomEventCheck{})
	r.resolveActive()
	r.apply(AdvancePhase{})

	// End of day.
	r.apply(AssignHomework{Type: curriculum.HomeworkType(rng.Between(1, 4))})
	r.apply(RandomEventCheck{})
	if r.State.Turn.Day == Friday {
		r.apply(BehaviorReview{})
	}
	r.resolveActive()

	r.ResolvedLog = append(r.ResolvedLog, r.State.Turn.ResolvedEvents...)
	r.logDay()
	r.apply(AdvanceDay{})

	if r.OnDayEnd != nil {
		r.OnDayEnd(r.State)
	}
}

func (r *Runner) apply(a Action) {
	r.State = r.Red.Reduce(r.State, a)
}

// resolveActive resolves every active event with its first choice.
func (r *Runner) resolveActive() {
	for len(r.State.Turn.ActiveEvents) > 0 {
		ev := r.State.Turn.ActiveEvents[0]
		if len(ev.Choices) == 0 {
			break
		}
		before := len(r.State.Turn.ActiveEvents)
		r.apply(ResolveEvent{EventID: ev.ID, ChoiceID: ev.Choices[0].ID})
		if len(r.State.Turn.ActiveEvents) >= before {
			break
		}
	}
}

func (r *Runner) logDay() {
	day := r.State.Year.CurrentDay
	weather := r.State.Year.WeatherOn(day)

	slog.Info("daily report",
		"week", r.State.Turn.Week,
		"day", DayName(r.State.Turn.Day),
		"school_day", day,
		"weather", calendar.WeatherName(weather),
		"class_average", r.State.ClassAverage(),
		"avg_mood", fmt.Sprintf("%.2f", r.State.AverageMood()),
		"teacher_energy", r.State.Teacher.Energy,
		"events_resolved", len(r.State.Turn.ResolvedEvents),
		"interactions", len(r.State.Turn.Interactions),
		"feed_posts", len(r.State.Feed),
	)

	if r.State.Year.OnBreak(day + 1) {
		slog.Info("break ahead", "school_day", day+1)
	}
}
