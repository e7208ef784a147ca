package students

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/chalkboard/internal/entropy"
)

func TestOvernightRecoveryEnergy(t *testing.T) {
	rng := entropy.New(1)

	neutral := baseStudent()
	neutral.Energy = 40
	out := OvernightRecovery(neutral, rng)
	assert.Equal(t, 75.0, out.Energy)
	assert.Equal(t, 75.0, out.SocialEnergy, "social energy refills by 25")

	happy := baseStudent()
	happy.Mood = MoodHappy
	happy.Energy = 40
	out = OvernightRecovery(happy, rng)
	assert.Equal(t, 85.0, out.Energy, "positive mood adds 10 to recovery")

	upset := baseStudent()
	upset.Mood = MoodUpset
	upset.Energy = 40
	out = OvernightRecovery(upset, rng)
	assert.Equal(t, 65.0, out.Energy, "negative mood costs 10 recovery")
}

func TestOvernightRecoveryMoodDrift(t *testing.T) {
	rng := entropy.New(2)

	upset := baseStudent()
	upset.Mood = MoodUpset
	out := OvernightRecovery(upset, rng)
	assert.Equal(t, MoodFrustrated, out.Mood, "bad moods always step toward neutral")

	neutral := baseStudent()
	out = OvernightRecovery(neutral, rng)
	assert.Equal(t, MoodNeutral, out.Mood, "neutral mood never drifts")

	// Good moods fade 50% of the time; over many draws both outcomes appear.
	fades, holds := 0, 0
	for i := 0; i < 100; i++ {
		happy := baseStudent()
		happy.Mood = MoodHappy
		out = OvernightRecovery(happy, rng)
		switch out.Mood {
		case MoodNeutral:
			fades++
		case MoodHappy:
			holds++
		default:
			t.Fatalf("unexpected mood %s after recovery", MoodName(out.Mood))
		}
	}
	assert.Positive(t, fades)
	assert.Positive(t, holds)
}

func TestOvernightRecoveryClamps(t *testing.T) {
	rng := entropy.New(3)
	s := baseStudent()
	s.Energy = 95
	s.SocialEnergy = 90
	out := OvernightRecovery(s, rng)
	assert.Equal(t, 100.0, out.Energy)
	assert.Equal(t, 100.0, out.SocialEnergy)
}

func TestApplyInteractionPraise(t *testing.T) {
	s := baseStudent()
	s.Engagement = 50
	s.PositiveNotes = 2

	out := ApplyInteraction(s, InteractPraise)
	assert.Equal(t, MoodHappy, out.Mood)
	assert.Equal(t, 60.0, out.Engagement)
	assert.Equal(t, 3, out.PositiveNotes)
	assert.Equal(t, 2, s.PositiveNotes, "input must not be mutated")
}

func TestApplyInteractionHelp(t *testing.T) {
	s := baseStudent()
	s.Mood = MoodFrustrated
	s.AcademicLevel = 60
	s.Engagement = 50

	out := ApplyInteraction(s, InteractHelp)
	assert.Equal(t, 62.0, out.AcademicLevel)
	assert.Equal(t, 55.0, out.Engagement)
	assert.Equal(t, MoodNeutral, out.Mood, "help calms a frustrated student")

	bored := baseStudent()
	bored.Mood = MoodBored
	out = ApplyInteraction(bored, InteractHelp)
	assert.Equal(t, MoodBored, out.Mood, "help only resets frustration")
}

func TestApplyInteractionRedirect(t *testing.T) {
	s := baseStudent()
	s.Engagement = 20
	s.Energy = 50

	out := ApplyInteraction(s, InteractRedirect)
	assert.Equal(t, 28.0, out.Engagement)
	assert.Equal(t, 45.0, out.Energy)
}

func TestMoodNudgeFromHomework(t *testing.T) {
	good := baseStudent()
	out := MoodNudgeFromHomework(good, HomeworkResult{Completed: true, Quality: 85})
	assert.Equal(t, MoodHappy, out.Mood)
	assert.True(t, out.HomeworkCompleted)

	mid := baseStudent()
	out = MoodNudgeFromHomework(mid, HomeworkResult{Completed: true, Quality: 55})
	assert.Equal(t, MoodNeutral, out.Mood, "middling quality leaves mood alone")

	missed := baseStudent()
	out = MoodNudgeFromHomework(missed, HomeworkResult{Completed: false})
	assert.Equal(t, MoodBored, out.Mood)
	require.False(t, out.HomeworkCompleted)
}
