// Popularity — a weighted sum over a student's social signals.
package social

import (
	"github.com/talgya/chalkboard/internal/students"
)

// PopularityScore computes a student's popularity in [0,100]: base 50, friend
// and rival counts (capped), social skill and engagement fractions, positive
// notes, behavior incidents, and average test score when any scores exist.
func PopularityScore(s *students.Student) float64 {
	score := 50.0

	friendBonus := float64(len(s.FriendIDs))
	if friendBonus > 20 {
		friendBonus = 20
	}
	score += friendBonus

	rivalPenalty := float64(len(s.RivalIDs))
	if rivalPenalty > 15 {
		rivalPenalty = 15
	}
	score -= rivalPenalty

	score += 15 * (s.SocialSkills / 100)
	score += 10 * (s.Engagement / 100)
	score += 2 * float64(s.PositiveNotes)
	score -= 3 * float64(s.BehaviorIncidents)

	if avg, ok := s.AverageTestScore(); ok {
		score += 10 * (avg / 100)
	}

	return students.ClampStat(score)
}
