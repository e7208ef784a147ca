// The template registry — daily classroom events plus the special, parent,
// weather, and behavioral families. All families share the same
// template/probability/effect-list shape.
package events

import (
	"fmt"

	"github.com/talgya/chalkboard/internal/students"
)

func classDescription(text string) func(*students.Student) string {
	return func(*students.Student) string { return text }
}

func studentDescription(format string) func(*students.Student) string {
	return func(s *students.Student) string {
		if s == nil {
			return fmt.Sprintf(format, "a student")
		}
		return fmt.Sprintf(format, s.Name)
	}
}

// registry holds every template the generator can draw from, roughly ordered
// by phase. Probabilities are per check, before the difficulty factor.
var registry = []Template{
	// ── Morning ──────────────────────────────────────────────────────
	{
		ID:              "late-arrival",
		Title:           "Late Arrival",
		Category:        "daily",
		Phase:           PhaseMorning,
		Probability:     0.12,
		RequiresStudent: true,
		Description:     studentDescription("%s slips in ten minutes after the bell."),
		Choices: func(s *students.Student) []Choice {
			return []Choice{
				{
					ID:    "wave-in",
					Label: "Wave them in quietly",
					Effects: []Effect{
						{Target: TargetStudent, Stat: StatMood, Delta: 1},
					},
				},
				{
					ID:    "note-tardy",
					Label: "Mark the tardy and move on",
					Effects: []Effect{
						{Target: TargetStudent, Stat: StatMood, Delta: -1},
						{Target: TargetStudent, Stat: StatBehaviorIncidents, Delta: 1},
						{Target: TargetTeacher, Stat: StatReputation, Delta: 1},
					},
				},
			}
		},
	},
	{
		ID:              "forgot-homework",
		Title:           "Forgotten Homework",
		Category:        "daily",
		Phase:           PhaseMorning,
		Probability:     0.10,
		RequiresStudent: true,
		StudentFilter:   func(s *students.Student) bool { return !s.HomeworkCompleted },
		Description:     studentDescription("%s can't find last night's homework anywhere."),
		Choices: func(s *students.Student) []Choice {
			return []Choice{
				{
					ID:    "extension",
					Label: "Grant a one-day extension",
					Effects: []Effect{
						{Target: TargetStudent, Stat: StatMood, Delta: 1},
						{Target: TargetStudent, Stat: StatEngagement, Delta: 5},
					},
				},
				{
					ID:    "zero",
					Label: "Record the zero",
					Effects: []Effect{
						{Target: TargetStudent, Stat: StatMood, Delta: -1},
						{Target: TargetStudent, Stat: StatEngagement, Delta: -5},
						{Target: TargetTeacher, Stat: StatParentSatisfaction, Delta: -2},
					},
				},
			}
		},
	},
	{
		ID:          "monday-energy",
		Title:       "Restless Morning",
		Category:    "daily",
		Phase:       PhaseMorning,
		Probability: 0.08,
		Description: classDescription("The whole class is buzzing and nobody can settle down."),
		Choices: func(*students.Student) []Choice {
			return []Choice{
				{
					ID:    "stretch-break",
					Label: "Run a two-minute stretch break",
					Effects: []Effect{
						{Target: TargetClass, Stat: StatEnergy, Delta: -5},
						{Target: TargetClass, Stat: StatEngagement, Delta: 8},
						{Target: TargetTeacher, Stat: StatTeacherEnergy, Delta: -5},
					},
				},
				{
					ID:    "push-through",
					Label: "Start the lesson anyway",
					Effects: []Effect{
						{Target: TargetClass, Stat: StatEngagement, Delta: -5},
					},
				},
			}
		},
	},

	// ── Teaching ─────────────────────────────────────────────────────
	{
		ID:              "classroom-disruption",
		Title:           "Disruption",
		Category:        "behavior",
		Phase:           PhaseTeaching,
		Probability:     0.12,
		RequiresStudent: true,
		StudentFilter:   func(s *students.Student) bool { return s.Engagement < 50 },
		Description:     studentDescription("%s is tapping a pencil loudly and pulling others off task."),
		Choices: func(s *students.Student) []Choice {
			return []Choice{
				{
					ID:    "quiet-word",
					Label: "Have a quiet word",
					Effects: []Effect{
						{Target: TargetStudent, Stat: StatEngagement, Delta: 8},
						{Target: TargetTeacher, Stat: StatTeacherEnergy, Delta: -3},
					},
				},
				{
					ID:    "call-out",
					Label: "Call it out in front of the class",
					Effects: []Effect{
						{Target: TargetStudent, Stat: StatMood, Delta: -2},
						{Target: TargetStudent, Stat: StatBehaviorIncidents, Delta: 1},
						{Target: TargetClass, Stat: StatEngagement, Delta: 3},
					},
				},
			}
		},
	},
	{
		ID:              "brilliant-question",
		Title:           "Brilliant Question",
		Category:        "daily",
		Phase:           PhaseTeaching,
		Probability:     0.08,
		RequiresStudent: true,
		StudentFilter: func(s *students.Student) bool {
			return s.IsGifted || s.PrimaryTrait == students.TraitCurious ||
				s.SecondaryTrait == students.TraitCurious
		},
		Description: studentDescription("%s asks a question that stops the room."),
		Choices: func(s *students.Student) []Choice {
			return []Choice{
				{
					ID:    "explore",
					Label: "Chase the tangent together",
					Effects: []Effect{
						{Target: TargetStudent, Stat: StatMood, Delta: 1},
						{Target: TargetStudent, Stat: StatPositiveNotes, Delta: 1},
						{Target: TargetClass, Stat: StatEngagement, Delta: 5},
						{Target: TargetTeacher, Stat: StatTeacherEnergy, Delta: -3},
					},
				},
				{
					ID:    "park-it",
					Label: "Park it for later",
					Effects: []Effect{
						{Target: TargetStudent, Stat: StatEngagement, Delta: -3},
					},
				},
			}
		},
	},
	{
		ID:          "projector-dies",
		Title:       "Projector Failure",
		Category:    "daily",
		Phase:       PhaseTeaching,
		Probability: 0.05,
		Description: classDescription("The projector bulb dies mid-slide."),
		Choices: func(*students.Student) []Choice {
			return []Choice{
				{
					ID:    "improvise",
					Label: "Improvise on the whiteboard",
					Effects: []Effect{
						{Target: TargetClass, Stat: StatEngagement, Delta: -3},
						{Target: TargetTeacher, Stat: StatTeacherEnergy, Delta: -5},
					},
				},
				{
					ID:    "order-bulb",
					Label: "Order a replacement from supplies",
					Effects: []Effect{
						{Target: TargetTeacher, Stat: StatSuppliesBudget, Delta: -15},
					},
				},
			}
		},
	},

	// ── Interaction ──────────────────────────────────────────────────
	{
		ID:              "friendship-squabble",
		Title:           "Squabble",
		Category:        "daily",
		Phase:           PhaseInteraction,
		Probability:     0.10,
		RequiresStudent: true,
		Description:     studentDescription("%s is in a heated argument over a borrowed marker."),
		Choices: func(s *students.Student) []Choice {
			return []Choice{
				{
					ID:    "mediate",
					Label: "Mediate on the spot",
					Effects: []Effect{
						{Target: TargetStudent, Stat: StatMood, Delta: 1},
						{Target: TargetStudent, Stat: StatSocialSkills, Delta: 3},
						{Target: TargetTeacher, Stat: StatTeacherEnergy, Delta: -5},
					},
				},
				{
					ID:    "let-settle",
					Label: "Let them work it out",
					Effects: []Effect{
						{Target: TargetStudent, Stat: StatSocialEnergy, Delta: -8},
					},
				},
			}
		},
	},
	{
		ID:              "student-confides",
		Title:           "A Quiet Word",
		Category:        "daily",
		Phase:           PhaseInteraction,
		Probability:     0.08,
		RequiresStudent: true,
		StudentFilter:   func(s *students.Student) bool { return s.Mood.Negative() },
		Description:     studentDescription("%s lingers at your desk, clearly wanting to talk."),
		Choices: func(s *students.Student) []Choice {
			return []Choice{
				{
					ID:    "listen",
					Label: "Make the time",
					Effects: []Effect{
						{Target: TargetStudent, Stat: StatMood, Delta: 2},
						{Target: TargetTeacher, Stat: StatTeacherEnergy, Delta: -5},
						{Target: TargetTeacher, Stat: StatParentSatisfaction, Delta: 2},
					},
				},
				{
					ID:    "later",
					Label: "Promise to catch up tomorrow",
					Effects: []Effect{
						{Target: TargetStudent, Stat: StatMood, Delta: -1},
					},
				},
			}
		},
	},

	// ── End of day ───────────────────────────────────────────────────
	{
		ID:          "parent-email",
		Title:       "Parent Email",
		Category:    "parent",
		Phase:       PhaseEndOfDay,
		Probability: 0.08,
		Description: classDescription("A long parent email lands in your inbox before you leave."),
		Choices: func(*students.Student) []Choice {
			return []Choice{
				{
					ID:    "reply-tonight",
					Label: "Reply thoughtfully tonight",
					Effects: []Effect{
						{Target: TargetTeacher, Stat: StatTeacherEnergy, Delta: -10},
						{Target: TargetTeacher, Stat: StatParentSatisfaction, Delta: 5},
					},
				},
				{
					ID:    "reply-tomorrow",
					Label: "Flag it for tomorrow",
					Effects: []Effect{
						{Target: TargetTeacher, Stat: StatParentSatisfaction, Delta: -3},
					},
				},
			}
		},
	},
	{
		ID:          "supply-run",
		Title:       "Empty Supply Bin",
		Category:    "daily",
		Phase:       PhaseEndOfDay,
		Probability: 0.05,
		Description: classDescription("The glue sticks are gone again."),
		Choices: func(*students.Student) []Choice {
			return []Choice{
				{
					ID:    "restock",
					Label: "Restock from the budget",
					Effects: []Effect{
						{Target: TargetTeacher, Stat: StatSuppliesBudget, Delta: -10},
					},
				},
				{
					ID:    "make-do",
					Label: "Make do next week",
					Effects: []Effect{
						{Target: TargetClass, Stat: StatEngagement, Delta: -2},
					},
				},
			}
		},
	},

	// ── Special / any-phase families ─────────────────────────────────
	{
		ID:          "fire-drill",
		Title:       "Fire Drill",
		Category:    "special",
		Phase:       PhaseAny,
		Probability: 0.03,
		Description: classDescription("The alarm sounds: surprise fire drill."),
		Choices: func(*students.Student) []Choice {
			return []Choice{
				{
					ID:    "orderly",
					Label: "File out in good order",
					Effects: []Effect{
						{Target: TargetClass, Stat: StatEnergy, Delta: -5},
						{Target: TargetClass, Stat: StatEngagement, Delta: -8},
						{Target: TargetTeacher, Stat: StatReputation, Delta: 2},
					},
				},
			}
		},
	},
	{
		ID:          "class-pet-escape",
		Title:       "Class Pet on the Loose",
		Category:    "special",
		Phase:       PhaseAny,
		Probability: 0.02,
		Description: classDescription("The hamster has staged a breakout."),
		Choices: func(*students.Student) []Choice {
			return []Choice{
				{
					ID:    "rescue-mission",
					Label: "Turn it into a rescue mission",
					Effects: []Effect{
						{Target: TargetClass, Stat: StatMood, Delta: 1},
						{Target: TargetClass, Stat: StatEngagement, Delta: -10},
						{Target: TargetTeacher, Stat: StatTeacherEnergy, Delta: -5},
					},
				},
				{
					ID:    "quiet-capture",
					Label: "Recapture it quietly during recess",
					Effects: []Effect{
						{Target: TargetTeacher, Stat: StatTeacherEnergy, Delta: -3},
					},
				},
			}
		},
	},
	{
		ID:          "snow-flurry",
		Title:       "First Snow",
		Category:    "weather",
		Phase:       PhaseAny,
		Probability: 0.02,
		Description: classDescription("Snow starts falling and every head turns to the window."),
		Choices: func(*students.Student) []Choice {
			return []Choice{
				{
					ID:    "window-minute",
					Label: "Give them one minute at the window",
					Effects: []Effect{
						{Target: TargetClass, Stat: StatMood, Delta: 1},
						{Target: TargetClass, Stat: StatEngagement, Delta: -5},
					},
				},
				{
					ID:    "blinds-down",
					Label: "Lower the blinds",
					Effects: []Effect{
						{Target: TargetClass, Stat: StatMood, Delta: -1},
					},
				},
			}
		},
	},
}

// Registry returns the registered templates. Exposed for tests and the
// inspect tooling; the slice must not be modified.
func Registry() []Template {
	return registry
}

// TemplateByID finds a registered template, nil when absent.
func TemplateByID(id string) *Template {
	for i := range registry {
		if registry[i].ID == id {
			return &registry[i]
		}
	}
	return nil
}
