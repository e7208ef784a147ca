// Social-media feed — posts, virality scoring, and the trending projection.
// Structurally the same composition pattern as popularity, computed over
// posts instead of students.
package social

import (
	"sort"

	"github.com/talgya/chalkboard/internal/students"
)

// PostCategory tags what a post is about.
type PostCategory uint8

const (
	PostClassLife PostCategory = iota
	PostAchievement
	PostMeme
	PostGossip
)

// CategoryName returns a human-readable category label.
func CategoryName(c PostCategory) string {
	switch c {
	case PostClassLife:
		return "class life"
	case PostAchievement:
		return "achievement"
	case PostMeme:
		return "meme"
	case PostGossip:
		return "gossip"
	default:
		return "unknown"
	}
}

// Post is one entry in the class social feed. Caption text is supplied by
// callers; the engine only scores engagement.
type Post struct {
	ID       string             `json:"id"`
	AuthorID students.StudentID `json:"author_id"`
	Caption  string             `json:"caption"`
	Category PostCategory       `json:"category"`
	Likes    int                `json:"likes"`
	Comments int                `json:"comments"`
	Day      int                `json:"day"`
}

// gossipBonus rewards the category that travels fastest.
const gossipBonus = 15.0

// ViralityScore weights a post's engagement signals: comments count double
// likes, gossip gets a category bonus. Clamped to [0,100].
func ViralityScore(p *Post) float64 {
	score := float64(p.Likes) + 2*float64(p.Comments)
	if p.Category == PostGossip {
		score += gossipBonus
	}
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

// Trending returns the top n posts by virality, highest first. Ties keep
// feed order so the projection is stable across recomputes.
func Trending(feed []Post, n int) []Post {
	out := append([]Post(nil), feed...)
	sort.SliceStable(out, func(i, j int) bool {
		return ViralityScore(&out[i]) > ViralityScore(&out[j])
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
