package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/chalkboard/internal/entropy"
	"github.com/talgya/chalkboard/internal/students"
)

func TestConsequenceFor(t *testing.T) {
	tests := []struct {
		incidents int
		want      Consequence
	}{
		{0, ConsequenceNone},
		{1, ConsequenceWarning},
		{2, ConsequenceWarning},
		{3, ConsequenceDetention},
		{4, ConsequenceDetention},
		{5, ConsequenceParentContact},
		{9, ConsequenceParentContact},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ConsequenceFor(tt.incidents), "incidents=%d", tt.incidents)
	}
}

func TestEscalateBehavior(t *testing.T) {
	now := time.Now()

	clean := sampleStudent()
	assert.Nil(t, EscalateBehavior(&clean, now))

	warned := sampleStudent()
	warned.BehaviorIncidents = 1
	ev := EscalateBehavior(&warned, now)
	require.NotNil(t, ev)
	assert.Contains(t, ev.Title, "warning")
	require.Len(t, ev.Choices, 1)
	assert.Equal(t, "apply", ev.Choices[0].ID)
	require.Len(t, ev.Choices[0].Effects, 1)
	assert.Equal(t, StatMood, ev.Choices[0].Effects[0].Stat)

	detained := sampleStudent()
	detained.BehaviorIncidents = 3
	ev = EscalateBehavior(&detained, now)
	require.NotNil(t, ev)
	assert.Contains(t, ev.Title, "detention")
	require.Len(t, ev.Choices[0].Effects, 2)
	assert.Equal(t, StatSocialEnergy, ev.Choices[0].Effects[1].Stat)

	contacted := sampleStudent()
	contacted.BehaviorIncidents = 5
	ev = EscalateBehavior(&contacted, now)
	require.NotNil(t, ev)
	assert.Contains(t, ev.Title, "parent contact")
	require.Len(t, ev.Choices[0].Effects, 3)
	assert.Equal(t, TargetTeacher, ev.Choices[0].Effects[2].Target)
	assert.Equal(t, StatParentSatisfaction, ev.Choices[0].Effects[2].Stat)
}

func TestEscalateBehaviorDistinctIDsSameInstant(t *testing.T) {
	now := time.Now()

	first := sampleStudent()
	first.ID = "stu-a"
	first.BehaviorIncidents = 1
	second := sampleStudent()
	second.ID = "stu-b"
	second.BehaviorIncidents = 3

	evA := EscalateBehavior(&first, now)
	evB := EscalateBehavior(&second, now)
	require.NotNil(t, evA)
	require.NotNil(t, evB)
	assert.NotEqual(t, evA.ID, evB.ID,
		"two consequences minted at the same instant need distinct ids")
}

func TestMaybeRewardSkipsTroubledStudents(t *testing.T) {
	rng := entropy.New(1)
	s := sampleStudent()
	s.BehaviorIncidents = 1
	for i := 0; i < 200; i++ {
		require.Nil(t, MaybeReward(&s, rng, time.Now()))
	}
}

func TestMaybeRewardEventuallyFires(t *testing.T) {
	rng := entropy.New(8)
	s := sampleStudent()
	s.PrimaryTrait = students.TraitPerfectionist
	s.SecondaryTrait = students.TraitCurious
	s.PositiveNotes = 5

	now := time.Now()
	for i := 0; i < 1000; i++ {
		if ev := MaybeReward(&s, rng, now); ev != nil {
			assert.Equal(t, "Star Student", ev.Title)
			require.Len(t, ev.Choices, 2)
			assert.NotNil(t, ev.ChoiceByID("recognize"))
			assert.NotNil(t, ev.ChoiceByID("sticker"))
			assert.Equal(t, []students.StudentID{s.ID}, ev.AffectedStudentIDs)
			return
		}
	}
	t.Fatal("reward never fired in 1000 rolls at 13% chance")
}
