// Friendship strength and the friend/rival projection. Strength is the only
// persistent edge weight; the friend and rival sets are recomputed whenever a
// strength crosses the +-40 thresholds, never edited on their own.
package social

import (
	"github.com/talgya/chalkboard/internal/entropy"
	"github.com/talgya/chalkboard/internal/students"
)

const (
	// FriendThreshold and RivalThreshold bound the neutral band.
	FriendThreshold = 40.0
	RivalThreshold  = -40.0

	maxStrength = 100.0
	minStrength = -100.0
)

// UpdateFriendship adds delta to the strength a student holds toward a peer,
// clamps it to [-100, 100], and reprojects the friend/rival sets. Returns the
// updated student; the input is not mutated.
func UpdateFriendship(s students.Student, peer students.StudentID, delta float64) students.Student {
	out := s.Clone()

	strength := out.FriendshipStrengths[peer] + delta
	if strength > maxStrength {
		strength = maxStrength
	}
	if strength < minStrength {
		strength = minStrength
	}
	out.FriendshipStrengths[peer] = strength

	reproject(&out, peer, strength)
	return out
}

// reproject enforces the exclusivity invariant for one edge: a peer is a
// friend, a rival, or neither — never both.
func reproject(s *students.Student, peer students.StudentID, strength float64) {
	s.FriendIDs = removeID(s.FriendIDs, peer)
	s.RivalIDs = removeID(s.RivalIDs, peer)

	switch {
	case strength >= FriendThreshold:
		s.FriendIDs = append(s.FriendIDs, peer)
	case strength <= RivalThreshold:
		s.RivalIDs = append(s.RivalIDs, peer)
	}
}

func removeID(ids []students.StudentID, id students.StudentID) []students.StudentID {
	for i, v := range ids {
		if v == id {
			return append(ids[:i:i], ids[i+1:]...)
		}
	}
	return ids
}

// SeedChancePerStudent is the base rate for initial friendship trials.
const SeedChancePerStudent = 0.30

// SeedBonds forms the roster's initial friendships and rivalries. Each
// ordered pair gets one Bernoulli friendship trial with probability
// (compatibility+50)/100 x chancePerStudent; pairs with compatibility below
// -15 additionally get a 10% rivalry trial. Returns a new roster slice.
func SeedBonds(roster []students.Student, chancePerStudent float64, rng *entropy.Source) []students.Student {
	out := make([]students.Student, len(roster))
	for i := range roster {
		out[i] = roster[i].Clone()
	}

	for i := range out {
		for j := range out {
			if i == j {
				continue
			}
			compat := Compatibility(&out[i], &out[j])

			if rng.Chance((compat + 50) / 100 * chancePerStudent) {
				strength := float64(rng.Between(45, 70))
				out[i] = UpdateFriendship(out[i], out[j].ID, strength-out[i].FriendshipStrengths[out[j].ID])
				out[j] = UpdateFriendship(out[j], out[i].ID, strength-out[j].FriendshipStrengths[out[i].ID])
				continue
			}

			if compat < -15 && rng.Chance(0.10) {
				strength := float64(rng.Between(-65, -45))
				out[i] = UpdateFriendship(out[i], out[j].ID, strength-out[i].FriendshipStrengths[out[j].ID])
				out[j] = UpdateFriendship(out[j], out[i].ID, strength-out[j].FriendshipStrengths[out[i].ID])
			}
		}
	}

	return out
}
