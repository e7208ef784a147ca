// Clique assignment — a deterministic decision tree over social skill
// thresholds and trait keywords. At most one clique per student.
package social

import (
	"github.com/talgya/chalkboard/internal/students"
)

// AssignClique derives a student's clique label.
func AssignClique(s *students.Student) students.Clique {
	if s.SocialSkills >= 80 {
		return students.CliquePopular
	}
	if s.SocialSkills <= 40 {
		return students.CliqueLoners
	}

	for _, t := range []students.Trait{s.PrimaryTrait, s.SecondaryTrait} {
		switch t {
		case students.TraitCurious, students.TraitPerfectionist:
			return students.CliqueNerds
		case students.TraitAthletic:
			return students.CliqueAthletes
		case students.TraitCreative:
			return students.CliqueArtists
		}
	}
	return students.CliqueNone
}

// AssignCliques recomputes every student's clique. Returns a new roster.
func AssignCliques(roster []students.Student) []students.Student {
	out := make([]students.Student, len(roster))
	for i := range roster {
		out[i] = roster[i].Clone()
		out[i].Clique = AssignClique(&roster[i])
	}
	return out
}

// CliqueMembers filters the roster to one clique's members.
func CliqueMembers(roster []students.Student, c students.Clique) []students.Student {
	var members []students.Student
	for _, s := range roster {
		if s.Clique == c {
			members = append(members, s)
		}
	}
	return members
}

// CliqueCohesion is the average pairwise compatibility of a clique's members
// rescaled from [-50,50] to [0,100]. Cliques of fewer than two members score
// a neutral 50.
func CliqueCohesion(members []students.Student) float64 {
	if len(members) < 2 {
		return 50
	}

	total := 0.0
	pairs := 0
	for i := range members {
		for j := i + 1; j < len(members); j++ {
			total += Compatibility(&members[i], &members[j])
			pairs++
		}
	}
	return total/float64(pairs) + 50
}
