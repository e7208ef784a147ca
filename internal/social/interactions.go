// Per-turn social interaction sampling — a few random pairs interact, the
// interaction type skewed by existing friend/rival status, and the resulting
// sentiment folds back into friendship strength.
package social

import (
	"fmt"

	"github.com/talgya/chalkboard/internal/entropy"
	"github.com/talgya/chalkboard/internal/students"
)

// InteractionType enumerates what happened between two students.
type InteractionType uint8

const (
	InteractionChat InteractionType = iota
	InteractionHelp
	InteractionCompliment
	InteractionTeamwork
	InteractionConflict
	InteractionGossip
	InteractionDrama
	InteractionExclude
)

// Positive reports whether the interaction improves the bond.
func (t InteractionType) Positive() bool {
	return t <= InteractionTeamwork
}

// String returns a human-readable interaction label.
func (t InteractionType) String() string {
	switch t {
	case InteractionChat:
		return "chat"
	case InteractionHelp:
		return "help"
	case InteractionCompliment:
		return "compliment"
	case InteractionTeamwork:
		return "teamwork"
	case InteractionConflict:
		return "conflict"
	case InteractionGossip:
		return "gossip"
	case InteractionDrama:
		return "drama"
	case InteractionExclude:
		return "exclude"
	default:
		return "unknown"
	}
}

var positiveTypes = []InteractionType{
	InteractionChat, InteractionHelp, InteractionCompliment, InteractionTeamwork,
}

var negativeTypes = []InteractionType{
	InteractionConflict, InteractionGossip, InteractionDrama, InteractionExclude,
}

// Interaction records one sampled exchange between two students.
type Interaction struct {
	A           students.StudentID `json:"a"`
	B           students.StudentID `json:"b"`
	Type        InteractionType    `json:"type"`
	Delta       float64            `json:"delta"` // Friendship strength change
	Description string             `json:"description"`
}

// ProcessSocialTurn samples 2-4 random unordered pairs, generates a typed
// interaction per pair, and folds the sentiment delta into both participants'
// friendship strengths. Returns the updated roster and the interactions.
func ProcessSocialTurn(roster []students.Student, rng *entropy.Source) ([]students.Student, []Interaction) {
	out := make([]students.Student, len(roster))
	for i := range roster {
		out[i] = roster[i].Clone()
	}
	if len(out) < 2 {
		return out, nil
	}

	count := rng.Between(2, 4)
	interactions := make([]Interaction, 0, count)

	for n := 0; n < count; n++ {
		i := rng.IntN(len(out))
		j := rng.IntN(len(out))
		if i == j {
			j = (j + 1) % len(out)
		}

		kind := pickInteraction(&out[i], out[j].ID, rng)

		var delta float64
		if kind.Positive() {
			delta = float64(rng.Between(5, 12))
		} else {
			delta = -float64(rng.Between(8, 20))
		}

		out[i] = UpdateFriendship(out[i], out[j].ID, delta)
		out[j] = UpdateFriendship(out[j], out[i].ID, delta)

		out[i] = applySocialWear(out[i], kind)
		out[j] = applySocialWear(out[j], kind)

		interactions = append(interactions, Interaction{
			A:     out[i].ID,
			B:     out[j].ID,
			Type:  kind,
			Delta: delta,
			Description: fmt.Sprintf("%s and %s: %s",
				out[i].Name, out[j].Name, kind),
		})
	}

	// Popularity is a roster-wide derivation; refresh after the deltas land.
	for i := range out {
		out[i].Popularity = PopularityScore(&out[i])
	}

	return out, interactions
}

// pickInteraction chooses the interaction type, skewed by existing status:
// friends lean positive, rivals lean negative, strangers in between.
func pickInteraction(s *students.Student, peer students.StudentID, rng *entropy.Source) InteractionType {
	positiveOdds := 0.60
	if s.IsFriend(peer) {
		positiveOdds = 0.80
	} else if s.IsRival(peer) {
		positiveOdds = 0.20
	}

	if rng.Chance(positiveOdds) {
		return positiveTypes[rng.IntN(len(positiveTypes))]
	}
	return negativeTypes[rng.IntN(len(negativeTypes))]
}

// applySocialWear charges the interaction against social energy and lets
// positive exchanges grow social skill a little.
func applySocialWear(s students.Student, kind InteractionType) students.Student {
	out := s.Clone()
	out.SocialEnergy = students.ClampStat(s.SocialEnergy - 4)
	if kind.Positive() {
		out.SocialSkills = students.ClampStat(s.SocialSkills + 1)
	}
	return out
}
