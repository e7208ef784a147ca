// Behavior escalation and rewards — the coordinator that turns repeated
// negative behavior into formal consequences and good behavior into
// trait-weighted rewards. Both emit the same effect-list shape as every
// other event family.
package events

import (
	"fmt"
	"time"

	"github.com/talgya/chalkboard/internal/entropy"
	"github.com/talgya/chalkboard/internal/students"
)

// Consequence is the formal response to accumulated behavior incidents.
type Consequence uint8

const (
	ConsequenceNone Consequence = iota
	ConsequenceWarning
	ConsequenceDetention
	ConsequenceParentContact
)

// ConsequenceName returns a human-readable consequence label.
func ConsequenceName(c Consequence) string {
	switch c {
	case ConsequenceWarning:
		return "warning"
	case ConsequenceDetention:
		return "detention"
	case ConsequenceParentContact:
		return "parent contact"
	default:
		return "none"
	}
}

// ConsequenceFor maps prior incident counts to the escalation ladder:
// 1 prior incident earns a warning, 3 detention, 5 parent contact.
func ConsequenceFor(priorIncidents int) Consequence {
	switch {
	case priorIncidents >= 5:
		return ConsequenceParentContact
	case priorIncidents >= 3:
		return ConsequenceDetention
	case priorIncidents >= 1:
		return ConsequenceWarning
	default:
		return ConsequenceNone
	}
}

// EscalateBehavior materializes a consequence event for a student whose
// incident count has crossed a threshold. Returns nil below the first rung.
func EscalateBehavior(s *students.Student, now time.Time) *Event {
	c := ConsequenceFor(s.BehaviorIncidents)
	if c == ConsequenceNone {
		return nil
	}

	effects := []Effect{
		{Target: TargetStudent, Stat: StatMood, Delta: -1, StudentID: s.ID},
	}
	switch c {
	case ConsequenceDetention:
		effects = append(effects,
			Effect{Target: TargetStudent, Stat: StatSocialEnergy, Delta: -10, StudentID: s.ID},
		)
	case ConsequenceParentContact:
		effects = append(effects,
			Effect{Target: TargetStudent, Stat: StatEngagement, Delta: 5, StudentID: s.ID},
			Effect{Target: TargetTeacher, Stat: StatParentSatisfaction, Delta: -5},
		)
	}

	return &Event{
		ID:          fmt.Sprintf("consequence-%s-%d", s.ID, now.UnixNano()),
		TemplateID:  "consequence",
		Title:       "Consequence: " + ConsequenceName(c),
		Category:    "behavior",
		Description: fmt.Sprintf("%s has reached %d incidents: %s.", s.Name, s.BehaviorIncidents, ConsequenceName(c)),
		Choices: []Choice{
			{ID: "apply", Label: "Apply the " + ConsequenceName(c), Effects: effects},
		},
		AffectedStudentIDs: []students.StudentID{s.ID},
	}
}

// rewardChance weights the odds a well-behaved student is noticed.
// Perfectionists and curious students collect positive notes a little more
// often; distracted students a little less.
func rewardChance(s *students.Student) float64 {
	chance := 0.05
	for _, t := range []students.Trait{s.PrimaryTrait, s.SecondaryTrait} {
		switch t {
		case students.TraitPerfectionist, students.TraitCurious:
			chance += 0.03
		case students.TraitDistracted:
			chance -= 0.02
		}
	}
	if s.PositiveNotes > 3 {
		chance += 0.02
	}
	return chance
}

// MaybeReward rolls a trait-weighted chance for a recognition event for the
// given student. Returns nil when the roll misses.
func MaybeReward(s *students.Student, rng *entropy.Source, now time.Time) *Event {
	if s.BehaviorIncidents > 0 {
		return nil
	}
	if !rng.Chance(rewardChance(s)) {
		return nil
	}

	return &Event{
		ID:          fmt.Sprintf("reward-%s-%d", s.ID, now.UnixNano()),
		TemplateID:  "reward",
		Title:       "Star Student",
		Category:    "behavior",
		Description: fmt.Sprintf("%s has had a great week and deserves a shout-out.", s.Name),
		Choices: []Choice{
			{
				ID:    "recognize",
				Label: "Recognize them in front of the class",
				Effects: []Effect{
					{Target: TargetStudent, Stat: StatMood, Delta: 1, StudentID: s.ID},
					{Target: TargetStudent, Stat: StatPositiveNotes, Delta: 1, StudentID: s.ID},
					{Target: TargetStudent, Stat: StatPopularity, Delta: 3, StudentID: s.ID},
				},
			},
			{
				ID:    "sticker",
				Label: "A quiet sticker on their desk",
				Effects: []Effect{
					{Target: TargetStudent, Stat: StatMood, Delta: 1, StudentID: s.ID},
					{Target: TargetStudent, Stat: StatPositiveNotes, Delta: 1, StudentID: s.ID},
				},
			},
		},
		AffectedStudentIDs: []students.StudentID{s.ID},
	}
}
