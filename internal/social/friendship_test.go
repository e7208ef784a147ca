package social

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/chalkboard/internal/entropy"
	"github.com/talgya/chalkboard/internal/students"
)

func TestUpdateFriendshipProjection(t *testing.T) {
	s := studentWith("a", students.TraitCurious, students.TraitCreative)
	peer := students.StudentID("b")

	s = UpdateFriendship(s, peer, 30)
	assert.False(t, s.IsFriend(peer))
	assert.False(t, s.IsRival(peer))

	s = UpdateFriendship(s, peer, 15)
	assert.True(t, s.IsFriend(peer), "strength 45 crosses the friend threshold")
	assert.False(t, s.IsRival(peer))

	s = UpdateFriendship(s, peer, -100)
	assert.False(t, s.IsFriend(peer))
	assert.True(t, s.IsRival(peer), "strength -55 crosses the rival threshold")

	s = UpdateFriendship(s, peer, 30)
	assert.False(t, s.IsFriend(peer))
	assert.False(t, s.IsRival(peer), "strength -25 is back in the neutral band")
}

func TestUpdateFriendshipExclusivity(t *testing.T) {
	s := studentWith("a", students.TraitCurious, students.TraitCreative)
	peer := students.StudentID("b")

	deltas := []float64{60, -120, 90, 45, -200, 300}
	for _, d := range deltas {
		s = UpdateFriendship(s, peer, d)
		require.False(t, s.IsFriend(peer) && s.IsRival(peer),
			"peer must never be both friend and rival")
	}
}

func TestUpdateFriendshipClampsStrength(t *testing.T) {
	s := studentWith("a", students.TraitCurious, students.TraitCreative)
	peer := students.StudentID("b")

	s = UpdateFriendship(s, peer, 500)
	assert.Equal(t, 100.0, s.FriendshipStrengths[peer])

	s = UpdateFriendship(s, peer, -500)
	assert.Equal(t, -100.0, s.FriendshipStrengths[peer])
}

func TestUpdateFriendshipDoesNotMutateInput(t *testing.T) {
	s := studentWith("a", students.TraitCurious, students.TraitCreative)
	out := UpdateFriendship(s, "b", 50)

	assert.Empty(t, s.FriendIDs)
	assert.Empty(t, s.FriendshipStrengths)
	assert.True(t, out.IsFriend("b"))
}

func TestSeedBondsSymmetric(t *testing.T) {
	rng := entropy.New(11)
	roster := []students.Student{
		studentWith("a", students.TraitOutgoing, students.TraitSocial),
		studentWith("b", students.TraitOutgoing, students.TraitSocial),
		studentWith("c", students.TraitShy, students.TraitCurious),
		studentWith("d", students.TraitPerfectionist, students.TraitDistracted),
	}

	out := SeedBonds(roster, SeedChancePerStudent, rng)
	require.Len(t, out, len(roster))

	for i := range out {
		for j := range out {
			if i == j {
				continue
			}
			si := out[i].FriendshipStrengths[out[j].ID]
			sj := out[j].FriendshipStrengths[out[i].ID]
			assert.Equal(t, si, sj, "%s/%s bond must be symmetric", out[i].ID, out[j].ID)
			require.False(t, out[i].IsFriend(out[j].ID) && out[i].IsRival(out[j].ID))
		}
	}
}

func TestSeedBondsEventuallyFormsFriendships(t *testing.T) {
	// Highly compatible pairs at a generous trial rate should bond within a
	// handful of seeds.
	for seed := int64(0); seed < 10; seed++ {
		roster := []students.Student{
			studentWith("a", students.TraitOutgoing, students.TraitSocial),
			studentWith("b", students.TraitOutgoing, students.TraitSocial),
		}
		out := SeedBonds(roster, 1.0, entropy.New(seed))
		if out[0].IsFriend(out[1].ID) {
			assert.True(t, out[1].IsFriend(out[0].ID))
			return
		}
	}
	t.Fatal("no friendship formed across 10 seeds at maximum trial rate")
}
