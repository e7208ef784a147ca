// Package students provides the student data model and the behavior model:
// mood transitions, teaching-effect formulas, homework simulation, and
// overnight recovery.
package students

import (
	"github.com/talgya/chalkboard/internal/curriculum"
)

// StudentID is a stable unique identifier for a student.
type StudentID string

// Trait enumerates the 8 personality archetypes driving formula coefficients.
type Trait uint8

const (
	TraitShy Trait = iota
	TraitOutgoing
	TraitCurious
	TraitDistracted
	TraitPerfectionist
	TraitSocial
	TraitAthletic
	TraitCreative
)

// NumTraits is the total number of personality traits.
const NumTraits = 8

// TraitName returns a human-readable trait name.
func TraitName(t Trait) string {
	switch t {
	case TraitShy:
		return "shy"
	case TraitOutgoing:
		return "outgoing"
	case TraitCurious:
		return "curious"
	case TraitDistracted:
		return "distracted"
	case TraitPerfectionist:
		return "perfectionist"
	case TraitSocial:
		return "social"
	case TraitAthletic:
		return "athletic"
	case TraitCreative:
		return "creative"
	default:
		return "unknown"
	}
}

// Extroverted reports whether the trait skews toward group settings.
func (t Trait) Extroverted() bool {
	return t == TraitOutgoing || t == TraitSocial
}

// Clique is a derived social-group label, assigned from social stats rather
// than chosen by the student.
type Clique uint8

const (
	CliqueNone Clique = iota
	CliquePopular
	CliqueNerds
	CliqueAthletes
	CliqueArtists
	CliqueLoners
)

// CliqueName returns a human-readable clique name.
func CliqueName(c Clique) string {
	switch c {
	case CliquePopular:
		return "popular"
	case CliqueNerds:
		return "nerds"
	case CliqueAthletes:
		return "athletes"
	case CliqueArtists:
		return "artists"
	case CliqueLoners:
		return "loners"
	default:
		return "none"
	}
}

// Student is the core entity: identity, personality, mutable stats, and the
// social edges the dynamics engine maintains.
type Student struct {
	ID         StudentID `json:"id"`
	Name       string    `json:"name"`
	AvatarSeed int64     `json:"avatar_seed"`

	// Personality
	PrimaryTrait   Trait            `json:"primary_trait"`
	SecondaryTrait Trait            `json:"secondary_trait"`
	LearningStyle  curriculum.Style `json:"learning_style"`

	// Stats, all clamped to [0,100] at every write site.
	AcademicLevel float64 `json:"academic_level"`
	Engagement    float64 `json:"engagement"`
	Energy        float64 `json:"energy"`
	SocialSkills  float64 `json:"social_skills"`
	Popularity    float64 `json:"popularity"`
	SocialEnergy  float64 `json:"social_energy"`

	Mood Mood `json:"mood"`

	// Flags
	AttendanceToday   bool `json:"attendance_today"`
	HomeworkCompleted bool `json:"homework_completed"`
	HasIEP            bool `json:"has_iep"`
	IsGifted          bool `json:"is_gifted"`
	NeedsExtraHelp    bool `json:"needs_extra_help"`

	// Social graph. FriendIDs and RivalIDs are projections of
	// FriendshipStrengths (>= +40 friend, <= -40 rival) and are never edited
	// independently of strength.
	FriendIDs           []StudentID           `json:"friend_ids"`
	RivalIDs            []StudentID           `json:"rival_ids"`
	FriendshipStrengths map[StudentID]float64 `json:"friendship_strengths"`
	Clique              Clique                `json:"clique"`

	// Counters and history
	BehaviorIncidents int       `json:"behavior_incidents"`
	PositiveNotes     int       `json:"positive_notes"`
	TestScores        []float64 `json:"test_scores"`
}

// Clone returns a deep copy. The reducer never mutates a student in place;
// every change replaces the whole value.
func (s Student) Clone() Student {
	out := s
	out.FriendIDs = append([]StudentID(nil), s.FriendIDs...)
	out.RivalIDs = append([]StudentID(nil), s.RivalIDs...)
	out.TestScores = append([]float64(nil), s.TestScores...)
	out.FriendshipStrengths = make(map[StudentID]float64, len(s.FriendshipStrengths))
	for id, v := range s.FriendshipStrengths {
		out.FriendshipStrengths[id] = v
	}
	return out
}

// IsFriend reports whether the given id is in the friend projection.
func (s *Student) IsFriend(id StudentID) bool {
	for _, f := range s.FriendIDs {
		if f == id {
			return true
		}
	}
	return false
}

// IsRival reports whether the given id is in the rival projection.
func (s *Student) IsRival(id StudentID) bool {
	for _, r := range s.RivalIDs {
		if r == id {
			return true
		}
	}
	return false
}

// AverageTestScore returns the mean of recorded test scores, or 0 with ok
// false when none exist.
func (s *Student) AverageTestScore() (avg float64, ok bool) {
	if len(s.TestScores) == 0 {
		return 0, false
	}
	total := 0.0
	for _, sc := range s.TestScores {
		total += sc
	}
	return total / float64(len(s.TestScores)), true
}

// ClampStat bounds a stat value to [0,100].
func ClampStat(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
