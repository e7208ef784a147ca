// Package events provides the procedural event system: a phase-scoped
// template registry, a probability-gated generator that binds templates to
// students, and declarative effect lists resolved against student, class, or
// teacher state.
package events

import (
	"github.com/talgya/chalkboard/internal/students"
)

// Target says whose state an effect touches.
type Target uint8

const (
	TargetStudent Target = iota
	TargetClass
	TargetTeacher
)

// Stat enumerates the attributes an effect may modify. Student and teacher
// stats share the enum; Apply* functions match exhaustively, so a typo'd
// attribute is unrepresentable rather than silently skipped.
type Stat uint8

const (
	StatEngagement Stat = iota
	StatEnergy
	StatMood // Delta interpreted as mood-scale steps
	StatAcademic
	StatSocialSkills
	StatSocialEnergy
	StatPopularity
	StatPositiveNotes
	StatBehaviorIncidents

	StatTeacherEnergy
	StatReputation
	StatParentSatisfaction
	StatSuppliesBudget
)

// Effect is one declarative state modification attached to an event choice.
// StudentID is bound at generation time when Target is TargetStudent.
type Effect struct {
	Target    Target             `json:"target"`
	Stat      Stat               `json:"stat"`
	Delta     float64            `json:"delta"`
	StudentID students.StudentID `json:"student_id,omitempty"`
}

// ApplyToStudent resolves a student- or class-targeted effect against one
// student, clamping stats to [0,100]. Teacher stats are ignored here; the
// reducer routes those to teacher state.
func ApplyToStudent(s students.Student, e Effect) students.Student {
	out := s.Clone()

	switch e.Stat {
	case StatEngagement:
		out.Engagement = students.ClampStat(s.Engagement + e.Delta)
	case StatEnergy:
		out.Energy = students.ClampStat(s.Energy + e.Delta)
	case StatMood:
		out.Mood = students.ShiftMood(s.Mood, int(e.Delta))
	case StatAcademic:
		out.AcademicLevel = students.ClampStat(s.AcademicLevel + e.Delta)
	case StatSocialSkills:
		out.SocialSkills = students.ClampStat(s.SocialSkills + e.Delta)
	case StatSocialEnergy:
		out.SocialEnergy = students.ClampStat(s.SocialEnergy + e.Delta)
	case StatPopularity:
		out.Popularity = students.ClampStat(s.Popularity + e.Delta)
	case StatPositiveNotes:
		out.PositiveNotes = s.PositiveNotes + int(e.Delta)
		if out.PositiveNotes < 0 {
			out.PositiveNotes = 0
		}
	case StatBehaviorIncidents:
		out.BehaviorIncidents = s.BehaviorIncidents + int(e.Delta)
		if out.BehaviorIncidents < 0 {
			out.BehaviorIncidents = 0
		}
	}

	return out
}

// TeacherStat reports whether the stat belongs to teacher state.
func (s Stat) TeacherStat() bool {
	return s >= StatTeacherEnergy
}
