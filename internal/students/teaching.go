// Teaching-effect formulas. Four independent pure computations (engagement
// delta, academic growth, mood delta, energy drain) composed into a single
// post-lesson student by ApplyTeachingEffects.
package students

import (
	"github.com/talgya/chalkboard/internal/curriculum"
)

// EngagementDelta computes how a lesson/method combination moves a student's
// engagement. Composed of the method's base modifier, the style match bonus,
// trait adjustments, energy thresholds, social-energy interaction with the
// method format, and a mood-derived term.
func EngagementDelta(s *Student, lesson curriculum.Lesson, method curriculum.Method) float64 {
	info := method.Info()
	delta := info.BaseEngagement

	// Style match is the strongest single lever.
	if method.MatchesStyle(s.LearningStyle) {
		delta += 15
	} else {
		delta -= 15
	}

	delta += traitEngagementAdjust(s.PrimaryTrait, lesson, info)
	delta += traitEngagementAdjust(s.SecondaryTrait, lesson, info)

	// Tired students check out; rested ones lean in.
	if s.Energy < 30 {
		delta -= 10
	} else if s.Energy > 80 {
		delta += 5
	}

	// Group formats drain introverts, solo formats shelter them.
	if s.SocialEnergy < 30 {
		if info.Group {
			delta -= 8
		}
		if info.Solo {
			delta += 5
		}
	} else if s.SocialEnergy > 70 && (s.PrimaryTrait.Extroverted() || s.SecondaryTrait.Extroverted()) {
		if info.Group {
			delta += 8
		}
		if info.Solo {
			delta -= 5
		}
	}

	delta += float64(s.Mood.Index()-2) * 2

	return delta
}

func traitEngagementAdjust(t Trait, lesson curriculum.Lesson, info curriculum.MethodInfo) float64 {
	switch t {
	case TraitCurious:
		if lesson.Difficulty >= 2 {
			return 10
		}
	case TraitDistracted:
		return -5
	case TraitOutgoing:
		if info.Group {
			return 8
		}
	case TraitShy:
		if info.Group {
			return -8
		}
		if info.Solo {
			return 5
		}
	case TraitSocial:
		if info.Group {
			return 5
		}
	case TraitAthletic:
		if info.Active {
			return 8
		}
	case TraitCreative:
		if info.Fun {
			return 5
		}
	case TraitPerfectionist:
		if lesson.Difficulty == 3 {
			return 5
		}
	}
	return 0
}

// AcademicGrowth computes the academic-level gain from one lesson.
// Base 1.0, difficulty and style bonuses, engagement tier scaling, then
// IEP/gifted penalties; never negative.
func AcademicGrowth(s *Student, lesson curriculum.Lesson, method curriculum.Method) float64 {
	styleMatch := method.MatchesStyle(s.LearningStyle)

	growth := 1.0 + 0.5*float64(lesson.Difficulty-1)
	if styleMatch {
		growth += 1.0
	}

	if s.Engagement > 70 {
		growth += 1.0
	} else if s.Engagement < 30 {
		growth -= 0.5
	}

	if s.HasIEP && !styleMatch {
		growth *= 0.5
	}
	if s.IsGifted && lesson.Difficulty < 2 {
		growth *= 0.7
	}

	if growth < 0 {
		growth = 0
	}
	return growth
}

// TeachingMoodDelta computes the mood shift (in scale steps) from a lesson.
func TeachingMoodDelta(s *Student, lesson curriculum.Lesson, method curriculum.Method) int {
	delta := 0
	if method.MatchesStyle(s.LearningStyle) {
		delta++
	} else {
		delta--
	}
	if method.Info().Fun {
		delta++
	}
	if lesson.Difficulty == 3 && s.AcademicLevel < 50 {
		delta--
	}
	if s.Energy < 20 {
		delta--
	}
	return delta
}

// EnergyDrain computes how much energy a lesson costs the student.
func EnergyDrain(s *Student, method curriculum.Method) float64 {
	info := method.Info()
	drain := 10.0 * info.Duration.Factor()

	if info.Active {
		drain += 5
	}
	if method == curriculum.MethodIndependentStudy {
		drain -= 3
	}
	if s.PrimaryTrait == TraitDistracted || s.SecondaryTrait == TraitDistracted {
		drain += 5
	}
	if (s.PrimaryTrait == TraitOutgoing || s.SecondaryTrait == TraitOutgoing) &&
		method == curriculum.MethodIndependentStudy {
		drain += 5
	}
	return drain
}

// ApplyTeachingEffects produces the post-lesson student: all four formulas
// evaluated against the pre-lesson snapshot and applied at once, stats
// clamped to [0,100]. The input is not mutated.
func ApplyTeachingEffects(s Student, lesson curriculum.Lesson, method curriculum.Method) Student {
	out := s.Clone()

	engagement := EngagementDelta(&s, lesson, method)
	growth := AcademicGrowth(&s, lesson, method)
	moodDelta := TeachingMoodDelta(&s, lesson, method)
	drain := EnergyDrain(&s, method)

	out.Engagement = ClampStat(s.Engagement + engagement)
	out.AcademicLevel = ClampStat(s.AcademicLevel + growth)
	out.Mood = ShiftMood(s.Mood, moodDelta)
	out.Energy = ClampStat(s.Energy - drain)

	return out
}
