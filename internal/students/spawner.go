// Roster generation — creates the classroom's initial students with
// personalities, learning styles, stats, and support flags.
package students

import (
	"github.com/google/uuid"

	"github.com/talgya/chalkboard/internal/curriculum"
	"github.com/talgya/chalkboard/internal/entropy"
)

var firstNames = []string{
	"Ava", "Ben", "Carmen", "Dev", "Elena", "Felix", "Grace", "Hugo",
	"Isla", "Jaden", "Kira", "Liam", "Maya", "Noah", "Olive", "Priya",
	"Quinn", "Rosa", "Sam", "Tessa", "Umar", "Violet", "Wes", "Ximena",
	"Yusuf", "Zoe",
}

var lastNames = []string{
	"Alvarez", "Brooks", "Chen", "Diaz", "Ellis", "Foster", "Green",
	"Huang", "Ibrahim", "Jensen", "Kim", "Lopez", "Munoz", "Nguyen",
	"Okafor", "Park", "Quist", "Rivera", "Silva", "Tran", "Ueda",
	"Vargas", "Walsh", "Young",
}

// Spawner creates students for a run.
type Spawner struct {
	rng *entropy.Source
}

// NewSpawner creates a roster spawner drawing from the given source.
func NewSpawner(rng *entropy.Source) *Spawner {
	return &Spawner{rng: rng}
}

// SpawnRoster creates a class of count students.
func (sp *Spawner) SpawnRoster(count int) []Student {
	roster := make([]Student, 0, count)
	for i := 0; i < count; i++ {
		roster = append(roster, sp.spawnOne())
	}
	return roster
}

func (sp *Spawner) spawnOne() Student {
	primary := Trait(sp.rng.IntN(NumTraits))
	secondary := Trait(sp.rng.IntN(NumTraits))
	for secondary == primary {
		secondary = Trait(sp.rng.IntN(NumTraits))
	}

	name := firstNames[sp.rng.IntN(len(firstNames))] + " " +
		lastNames[sp.rng.IntN(len(lastNames))]

	s := Student{
		ID:         StudentID(uuid.Must(uuid.NewRandomFromReader(sp.rng)).String()),
		Name:       name,
		AvatarSeed: int64(sp.rng.IntN(1 << 30)),

		PrimaryTrait:   primary,
		SecondaryTrait: secondary,
		LearningStyle:  curriculum.Style(sp.rng.IntN(curriculum.NumStyles)),

		AcademicLevel: float64(sp.rng.Between(35, 85)),
		Engagement:    float64(sp.rng.Between(40, 80)),
		Energy:        float64(sp.rng.Between(70, 100)),
		SocialSkills:  float64(sp.rng.Between(30, 90)),
		Popularity:    50,
		SocialEnergy:  float64(sp.rng.Between(50, 100)),

		Mood: MoodNeutral,

		AttendanceToday:     true,
		FriendshipStrengths: make(map[StudentID]float64),
	}

	// Support flags at roughly classroom-realistic rates.
	if sp.rng.Chance(0.12) {
		s.HasIEP = true
	}
	if sp.rng.Chance(0.10) {
		s.IsGifted = true
		s.AcademicLevel = ClampStat(s.AcademicLevel + 10)
	}
	if sp.rng.Chance(0.15) || s.AcademicLevel < 45 {
		s.NeedsExtraHelp = true
	}

	return s
}
