// Homework simulation — a completion-chance formula plus one random draw.
package students

import (
	"github.com/talgya/chalkboard/internal/curriculum"
	"github.com/talgya/chalkboard/internal/entropy"
)

// HomeworkResult is the outcome of one overnight homework simulation.
type HomeworkResult struct {
	Completed bool    `json:"completed"`
	Quality   float64 `json:"quality"` // 0 on failure, [30,100] on success
}

// CompletionChance returns the probability in [0.1, 0.98] that the student
// completes the given homework. HomeworkNone always returns 1.
func CompletionChance(s *Student, hw curriculum.HomeworkType) float64 {
	if hw == curriculum.HomeworkNone {
		return 1
	}

	chance := 0.30 + (s.AcademicLevel/100)*0.40 + (s.Engagement/100)*0.25

	if s.PrimaryTrait == TraitPerfectionist || s.SecondaryTrait == TraitPerfectionist {
		chance += 0.15
	}
	if s.PrimaryTrait == TraitDistracted || s.SecondaryTrait == TraitDistracted {
		chance -= 0.15
	}

	chance -= hw.CompletionPenalty()

	if chance < 0.1 {
		chance = 0.1
	}
	if chance > 0.98 {
		chance = 0.98
	}
	return chance
}

// SimulateHomework draws one uniform number against the completion chance.
// On failure quality is 0; on success quality tracks academic level with
// trait/engagement modifiers and a little noise, clamped to [30,100].
func SimulateHomework(s *Student, hw curriculum.HomeworkType, rng *entropy.Source) HomeworkResult {
	chance := CompletionChance(s, hw)
	if !rng.Chance(chance) {
		return HomeworkResult{Completed: false, Quality: 0}
	}

	quality := s.AcademicLevel
	if s.PrimaryTrait == TraitPerfectionist || s.SecondaryTrait == TraitPerfectionist {
		quality += 8
	}
	if s.PrimaryTrait == TraitDistracted || s.SecondaryTrait == TraitDistracted {
		quality -= 5
	}
	if s.Engagement > 70 {
		quality += 5
	} else if s.Engagement < 30 {
		quality -= 5
	}
	quality += float64(rng.Between(-5, 5))

	if quality < 30 {
		quality = 30
	}
	if quality > 100 {
		quality = 100
	}
	return HomeworkResult{Completed: true, Quality: quality}
}
