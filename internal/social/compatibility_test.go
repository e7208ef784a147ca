package social

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/chalkboard/internal/students"
)

func studentWith(id string, primary, secondary students.Trait) students.Student {
	return students.Student{
		ID:                  students.StudentID(id),
		Name:                id,
		PrimaryTrait:        primary,
		SecondaryTrait:      secondary,
		SocialSkills:        60,
		SocialEnergy:        60,
		Engagement:          50,
		Popularity:          50,
		Mood:                students.MoodNeutral,
		FriendshipStrengths: map[students.StudentID]float64{},
	}
}

func TestCompatibilitySymmetric(t *testing.T) {
	a := studentWith("a", students.TraitOutgoing, students.TraitAthletic)
	b := studentWith("b", students.TraitShy, students.TraitCurious)
	assert.Equal(t, Compatibility(&a, &b), Compatibility(&b, &a))
}

func TestCompatibilityOrdering(t *testing.T) {
	// Two gregarious students should score far better together than a
	// gregarious/withdrawn pairing.
	outgoingSocialA := studentWith("a", students.TraitOutgoing, students.TraitSocial)
	outgoingSocialB := studentWith("b", students.TraitOutgoing, students.TraitSocial)
	outgoingShyA := studentWith("c", students.TraitOutgoing, students.TraitShy)
	outgoingShyB := studentWith("d", students.TraitOutgoing, students.TraitShy)

	warm := Compatibility(&outgoingSocialA, &outgoingSocialB)
	tense := Compatibility(&outgoingShyA, &outgoingShyB)

	assert.Equal(t, 25.0, warm)
	assert.Equal(t, -3.75, tense)
	assert.Greater(t, warm, tense)
}

func TestCompatibilityBounded(t *testing.T) {
	for p1 := students.Trait(0); p1 < students.NumTraits; p1++ {
		for s1 := students.Trait(0); s1 < students.NumTraits; s1++ {
			for p2 := students.Trait(0); p2 < students.NumTraits; p2++ {
				for s2 := students.Trait(0); s2 < students.NumTraits; s2++ {
					a := studentWith("a", p1, s1)
					b := studentWith("b", p2, s2)
					score := Compatibility(&a, &b)
					require.GreaterOrEqual(t, score, -50.0)
					require.LessOrEqual(t, score, 50.0)
				}
			}
		}
	}
}

func TestCompatibilityUnlistedPairsDefault(t *testing.T) {
	// Shy/athletic appears nowhere in the matrix; all four combos fall back.
	a := studentWith("a", students.TraitShy, students.TraitShy)
	b := studentWith("b", students.TraitAthletic, students.TraitAthletic)
	// shy/shy never enters: a's two traits are both shy vs b's athletic.
	assert.Equal(t, 0.0, Compatibility(&a, &b))
}
