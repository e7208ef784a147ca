// Overnight recovery and teacher interaction effects.
package students

import (
	"github.com/talgya/chalkboard/internal/entropy"
)

// OvernightRecovery returns the student after a night's rest: a fixed energy
// refill, shaded by mood polarity, and a one-step mood drift toward neutral.
// Bad moods always improve; good moods have a 50% chance to fade. The fade
// draw is the only inherently probabilistic recovery rule.
func OvernightRecovery(s Student, rng *entropy.Source) Student {
	out := s.Clone()

	recovery := 35.0
	if s.Mood.Positive() {
		recovery += 10
	} else if s.Mood.Negative() {
		recovery -= 10
	}
	out.Energy = ClampStat(s.Energy + recovery)
	out.SocialEnergy = ClampStat(s.SocialEnergy + 25)

	if s.Mood.Negative() {
		out.Mood = ShiftMood(s.Mood, 1)
	} else if s.Mood.Positive() && rng.Chance(0.5) {
		out.Mood = ShiftMood(s.Mood, -1)
	}

	return out
}

// InteractionKind enumerates the teacher's one-on-one actions.
type InteractionKind uint8

const (
	InteractPraise InteractionKind = iota
	InteractHelp
	InteractRedirect
)

// InteractionName returns a human-readable interaction name.
func InteractionName(k InteractionKind) string {
	switch k {
	case InteractPraise:
		return "praise"
	case InteractHelp:
		return "help"
	case InteractRedirect:
		return "redirect"
	default:
		return "unknown"
	}
}

// ApplyInteraction returns the student after a one-on-one teacher action.
// Each action is a small fixed-effect function.
func ApplyInteraction(s Student, kind InteractionKind) Student {
	out := s.Clone()

	switch kind {
	case InteractPraise:
		out.Mood = ShiftMood(s.Mood, 1)
		out.Engagement = ClampStat(s.Engagement + 10)
		out.PositiveNotes = s.PositiveNotes + 1
	case InteractHelp:
		out.AcademicLevel = ClampStat(s.AcademicLevel + 2)
		out.Engagement = ClampStat(s.Engagement + 5)
		if s.Mood == MoodFrustrated {
			out.Mood = MoodNeutral
		}
	case InteractRedirect:
		out.Engagement = ClampStat(s.Engagement + 8)
		out.Energy = ClampStat(s.Energy - 5)
	}

	return out
}

// MoodNudgeFromHomework shifts mood one step up on completed homework with
// good quality, one step down on a miss. Applied during day advancement.
func MoodNudgeFromHomework(s Student, result HomeworkResult) Student {
	out := s.Clone()
	out.HomeworkCompleted = result.Completed
	if result.Completed && result.Quality >= 70 {
		out.Mood = ShiftMood(s.Mood, 1)
	} else if !result.Completed {
		out.Mood = ShiftMood(s.Mood, -1)
	}
	return out
}
