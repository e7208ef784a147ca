// Package social provides the social-dynamics engine: pairwise compatibility,
// friendship strength and its friend/rival projection, per-turn interaction
// sampling, cliques, popularity, and feed virality.
package social

import (
	"github.com/talgya/chalkboard/internal/students"
)

// traitPair is a normalized (low, high) trait key for the symmetric matrix.
type traitPair struct {
	a, b students.Trait
}

func pairKey(a, b students.Trait) traitPair {
	if a > b {
		a, b = b, a
	}
	return traitPair{a, b}
}

// compatDefault is the fallback score for trait pairs the matrix doesn't name.
const compatDefault = 0.0

// compatMatrix scores how well two traits get along, -50 (friction) to +50
// (natural fit). Symmetric; unlisted pairs fall back to compatDefault.
var compatMatrix = map[traitPair]float64{
	pairKey(students.TraitOutgoing, students.TraitOutgoing):           15,
	pairKey(students.TraitOutgoing, students.TraitSocial):             30,
	pairKey(students.TraitSocial, students.TraitSocial):               25,
	pairKey(students.TraitOutgoing, students.TraitShy):                -20,
	pairKey(students.TraitSocial, students.TraitShy):                  -15,
	pairKey(students.TraitShy, students.TraitShy):                     10,
	pairKey(students.TraitShy, students.TraitCurious):                 15,
	pairKey(students.TraitShy, students.TraitPerfectionist):           10,
	pairKey(students.TraitCurious, students.TraitCurious):             20,
	pairKey(students.TraitCurious, students.TraitPerfectionist):       15,
	pairKey(students.TraitCurious, students.TraitCreative):            15,
	pairKey(students.TraitPerfectionist, students.TraitPerfectionist): 15,
	pairKey(students.TraitPerfectionist, students.TraitDistracted):    -25,
	pairKey(students.TraitDistracted, students.TraitDistracted):       10,
	pairKey(students.TraitDistracted, students.TraitOutgoing):         5,
	pairKey(students.TraitDistracted, students.TraitAthletic):         5,
	pairKey(students.TraitAthletic, students.TraitAthletic):           20,
	pairKey(students.TraitAthletic, students.TraitOutgoing):           15,
	pairKey(students.TraitAthletic, students.TraitSocial):             10,
	pairKey(students.TraitAthletic, students.TraitCreative):           -10,
	pairKey(students.TraitCreative, students.TraitCreative):           20,
}

// traitScore looks up one trait-vs-trait score with the default fallback.
func traitScore(a, b students.Trait) float64 {
	if v, ok := compatMatrix[pairKey(a, b)]; ok {
		return v
	}
	return compatDefault
}

// Compatibility scores two students by averaging the trait matrix over the
// Cartesian product of each student's {primary, secondary} pair, clamped to
// [-50, +50].
func Compatibility(a, b *students.Student) float64 {
	total := traitScore(a.PrimaryTrait, b.PrimaryTrait) +
		traitScore(a.PrimaryTrait, b.SecondaryTrait) +
		traitScore(a.SecondaryTrait, b.PrimaryTrait) +
		traitScore(a.SecondaryTrait, b.SecondaryTrait)
	score := total / 4

	if score < -50 {
		score = -50
	}
	if score > 50 {
		score = 50
	}
	return score
}
