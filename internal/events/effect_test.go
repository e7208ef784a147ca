package events

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/talgya/chalkboard/internal/students"
)

func sampleStudent() students.Student {
	return students.Student{
		ID:                  "s-1",
		Name:                "Test Student",
		PrimaryTrait:        students.TraitCurious,
		SecondaryTrait:      students.TraitCreative,
		AcademicLevel:       60,
		Engagement:          50,
		Energy:              60,
		SocialSkills:        60,
		Popularity:          50,
		SocialEnergy:        50,
		Mood:                students.MoodNeutral,
		FriendshipStrengths: map[students.StudentID]float64{},
	}
}

func TestApplyToStudentStats(t *testing.T) {
	tests := []struct {
		name   string
		effect Effect
		check  func(t *testing.T, out students.Student)
	}{
		{"engagement", Effect{Stat: StatEngagement, Delta: 10}, func(t *testing.T, out students.Student) {
			assert.Equal(t, 60.0, out.Engagement)
		}},
		{"energy", Effect{Stat: StatEnergy, Delta: -15}, func(t *testing.T, out students.Student) {
			assert.Equal(t, 45.0, out.Energy)
		}},
		{"mood steps", Effect{Stat: StatMood, Delta: 2}, func(t *testing.T, out students.Student) {
			assert.Equal(t, students.MoodExcited, out.Mood)
		}},
		{"academic", Effect{Stat: StatAcademic, Delta: 5}, func(t *testing.T, out students.Student) {
			assert.Equal(t, 65.0, out.AcademicLevel)
		}},
		{"positive notes", Effect{Stat: StatPositiveNotes, Delta: 1}, func(t *testing.T, out students.Student) {
			assert.Equal(t, 1, out.PositiveNotes)
		}},
		{"behavior incidents", Effect{Stat: StatBehaviorIncidents, Delta: 1}, func(t *testing.T, out students.Student) {
			assert.Equal(t, 1, out.BehaviorIncidents)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := sampleStudent()
			out := ApplyToStudent(s, tt.effect)
			tt.check(t, out)
			assert.Equal(t, sampleStudent(), s, "input must not be mutated")
		})
	}
}

func TestApplyToStudentClamps(t *testing.T) {
	s := sampleStudent()
	s.Engagement = 95
	out := ApplyToStudent(s, Effect{Stat: StatEngagement, Delta: 50})
	assert.Equal(t, 100.0, out.Engagement)

	out = ApplyToStudent(s, Effect{Stat: StatEnergy, Delta: -500})
	assert.Equal(t, 0.0, out.Energy)

	out = ApplyToStudent(s, Effect{Stat: StatMood, Delta: -10})
	assert.Equal(t, students.MoodUpset, out.Mood)
}

func TestApplyToStudentCountersFloorAtZero(t *testing.T) {
	s := sampleStudent()
	out := ApplyToStudent(s, Effect{Stat: StatPositiveNotes, Delta: -5})
	assert.Zero(t, out.PositiveNotes)

	out = ApplyToStudent(s, Effect{Stat: StatBehaviorIncidents, Delta: -3})
	assert.Zero(t, out.BehaviorIncidents)
}

func TestApplyToStudentIgnoresTeacherStats(t *testing.T) {
	s := sampleStudent()
	out := ApplyToStudent(s, Effect{Stat: StatReputation, Delta: -20})
	assert.Equal(t, sampleStudent(), out)
}

func TestTeacherStat(t *testing.T) {
	assert.False(t, StatEngagement.TeacherStat())
	assert.False(t, StatBehaviorIncidents.TeacherStat())
	assert.True(t, StatTeacherEnergy.TeacherStat())
	assert.True(t, StatSuppliesBudget.TeacherStat())
}
