// Event generation — probability gating, student binding, effect binding.
package events

import (
	"fmt"
	"time"

	"github.com/talgya/chalkboard/internal/entropy"
	"github.com/talgya/chalkboard/internal/students"
)

// CheckForEvents rolls every registered template that applies to the phase,
// scaled by the difficulty factor, and materializes the first success.
// At most one event is returned per check; the loop breaks on the first
// successful generation so a single check can never flood the day.
func CheckForEvents(phase Phase, roster []students.Student, difficulty Difficulty, rng *entropy.Source, now time.Time) *Event {
	factor := difficulty.Factor()

	for i := range registry {
		tmpl := &registry[i]
		if !tmpl.AppliesTo(phase) {
			continue
		}
		if !rng.Chance(tmpl.Probability * factor) {
			continue
		}
		if ev := Generate(tmpl, roster, rng, now); ev != nil {
			return ev
		}
	}
	return nil
}

// Generate materializes a template into a concrete event. For templates that
// require a student, the roster is filtered through StudentFilter (nil
// accepts all) and one eligible student is chosen uniformly; when nobody is
// eligible the template silently yields no event.
func Generate(tmpl *Template, roster []students.Student, rng *entropy.Source, now time.Time) *Event {
	var bound *students.Student

	if tmpl.RequiresStudent {
		eligible := make([]*students.Student, 0, len(roster))
		for i := range roster {
			if tmpl.StudentFilter == nil || tmpl.StudentFilter(&roster[i]) {
				eligible = append(eligible, &roster[i])
			}
		}
		if len(eligible) == 0 {
			return nil
		}
		bound = eligible[rng.IntN(len(eligible))]
	}

	ev := &Event{
		ID:          fmt.Sprintf("%s-%d", tmpl.ID, now.UnixNano()),
		TemplateID:  tmpl.ID,
		Title:       tmpl.Title,
		Category:    tmpl.Category,
		Description: tmpl.Description(bound),
		Choices:     tmpl.Choices(bound),
	}

	if bound != nil {
		ev.AffectedStudentIDs = []students.StudentID{bound.ID}
		// Thread the bound id into every student-targeted effect so
		// resolution needs no further lookup.
		for ci := range ev.Choices {
			for ei := range ev.Choices[ci].Effects {
				eff := &ev.Choices[ci].Effects[ei]
				if eff.Target == TargetStudent && eff.StudentID == "" {
					eff.StudentID = bound.ID
				}
			}
		}
	}

	return ev
}
