// Package curriculum defines the lesson, teaching-method, and homework
// catalogs the behavior model and reducer consume.
package curriculum

// Style enumerates how a student learns best. Methods serve one or more
// styles; a match or mismatch feeds the engagement and growth formulas.
type Style uint8

const (
	StyleVisual Style = iota
	StyleAuditory
	StyleKinesthetic
	StyleReadingWriting
)

// NumStyles is the total number of learning styles.
const NumStyles = 4

// StyleName returns a human-readable style name.
func StyleName(s Style) string {
	switch s {
	case StyleVisual:
		return "visual"
	case StyleAuditory:
		return "auditory"
	case StyleKinesthetic:
		return "kinesthetic"
	case StyleReadingWriting:
		return "reading/writing"
	default:
		return "unknown"
	}
}

// Subject enumerates the taught subjects.
type Subject uint8

const (
	SubjectMath Subject = iota
	SubjectScience
	SubjectReading
	SubjectHistory
	SubjectArt
)

// SubjectName returns a human-readable subject name.
func SubjectName(s Subject) string {
	switch s {
	case SubjectMath:
		return "math"
	case SubjectScience:
		return "science"
	case SubjectReading:
		return "reading"
	case SubjectHistory:
		return "history"
	case SubjectArt:
		return "art"
	default:
		return "unknown"
	}
}

// Lesson is a selectable unit of teaching: a subject at a difficulty tier.
// Difficulty runs 1 (review) to 3 (challenge).
type Lesson struct {
	Subject    Subject `json:"subject"`
	Difficulty int     `json:"difficulty"`
	Title      string  `json:"title"`
}

// Lessons returns the full lesson catalog.
func Lessons() []Lesson {
	return []Lesson{
		{SubjectMath, 1, "Number Review"},
		{SubjectMath, 2, "Fractions"},
		{SubjectMath, 3, "Word Problems"},
		{SubjectScience, 1, "Weather Journal"},
		{SubjectScience, 2, "Simple Machines"},
		{SubjectScience, 3, "Ecosystems"},
		{SubjectReading, 1, "Silent Reading"},
		{SubjectReading, 2, "Book Circles"},
		{SubjectReading, 3, "Essay Drafting"},
		{SubjectHistory, 1, "Timeline Basics"},
		{SubjectHistory, 2, "Local History"},
		{SubjectHistory, 3, "Primary Sources"},
		{SubjectArt, 1, "Color Wheels"},
		{SubjectArt, 2, "Collage Project"},
	}
}

// Duration buckets a method's length; Factor scales the base energy drain.
type Duration uint8

const (
	DurationShort Duration = iota
	DurationMedium
	DurationLong
)

// Factor returns the energy-drain multiplier for the duration.
func (d Duration) Factor() float64 {
	switch d {
	case DurationShort:
		return 0.7
	case DurationLong:
		return 1.3
	default:
		return 1.0
	}
}

// Method enumerates the teaching methods.
type Method uint8

const (
	MethodLecture Method = iota
	MethodGroupWork
	MethodHandsOn
	MethodGameBased
	MethodIndependentStudy
	MethodDiscussion
)

// NumMethods is the total number of teaching methods.
const NumMethods = 6

// MethodInfo describes how a method behaves in the teaching formulas.
type MethodInfo struct {
	Name           string
	BaseEngagement float64  // Flat engagement modifier before adjustments
	Styles         []Style  // Learning styles this method serves
	Group          bool     // Collaborative format
	Solo           bool     // Independent format
	Active         bool     // Physically active (extra energy drain)
	Fun            bool     // Mood bonus (game-based, hands-on)
	Duration       Duration
}

var methodTable = [NumMethods]MethodInfo{
	MethodLecture: {
		Name:           "lecture",
		BaseEngagement: -2,
		Styles:         []Style{StyleAuditory},
		Duration:       DurationMedium,
	},
	MethodGroupWork: {
		Name:           "group work",
		BaseEngagement: 5,
		Styles:         []Style{StyleAuditory, StyleKinesthetic},
		Group:          true,
		Duration:       DurationMedium,
	},
	MethodHandsOn: {
		Name:           "hands-on",
		BaseEngagement: 8,
		Styles:         []Style{StyleKinesthetic, StyleVisual},
		Active:         true,
		Fun:            true,
		Duration:       DurationLong,
	},
	MethodGameBased: {
		Name:           "game-based",
		BaseEngagement: 10,
		Styles:         []Style{StyleVisual, StyleKinesthetic},
		Group:          true,
		Active:         true,
		Fun:            true,
		Duration:       DurationShort,
	},
	MethodIndependentStudy: {
		Name:           "independent study",
		BaseEngagement: 0,
		Styles:         []Style{StyleReadingWriting},
		Solo:           true,
		Duration:       DurationMedium,
	},
	MethodDiscussion: {
		Name:           "discussion",
		BaseEngagement: 3,
		Styles:         []Style{StyleAuditory, StyleReadingWriting},
		Group:          true,
		Duration:       DurationShort,
	},
}

// Info returns the method's formula properties.
func (m Method) Info() MethodInfo {
	if int(m) >= len(methodTable) {
		return methodTable[MethodLecture]
	}
	return methodTable[m]
}

// Name returns the method's display name.
func (m Method) Name() string {
	return m.Info().Name
}

// MatchesStyle reports whether the method serves the given learning style.
func (m Method) MatchesStyle(s Style) bool {
	for _, st := range m.Info().Styles {
		if st == s {
			return true
		}
	}
	return false
}

// HomeworkType enumerates assignable homework.
type HomeworkType uint8

const (
	HomeworkNone HomeworkType = iota
	HomeworkWorksheet
	HomeworkReading
	HomeworkEssay
	HomeworkProject
)

// HomeworkName returns a human-readable homework label.
func HomeworkName(h HomeworkType) string {
	switch h {
	case HomeworkNone:
		return "none"
	case HomeworkWorksheet:
		return "worksheet"
	case HomeworkReading:
		return "reading"
	case HomeworkEssay:
		return "essay"
	case HomeworkProject:
		return "project"
	default:
		return "unknown"
	}
}

// CompletionPenalty returns how much the homework type lowers the
// completion chance. HomeworkNone has no penalty (it is never assigned work).
func (h HomeworkType) CompletionPenalty() float64 {
	switch h {
	case HomeworkWorksheet:
		return 0
	case HomeworkReading:
		return 0.05
	case HomeworkEssay:
		return 0.10
	case HomeworkProject:
		return 0.15
	default:
		return 0
	}
}
