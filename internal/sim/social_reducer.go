// Social tick and the pass-through substate actions (grades, schedule, feed).
package sim

import (
	"github.com/talgya/chalkboard/internal/social"
)

// processSocial runs one social-dynamics tick: sampled interactions fold
// into friendship strengths, then cliques are reassigned from the updated
// stats. The interactions land in the turn log for the daily report.
func (r *Reducer) processSocial(state GameState) GameState {
	out := state.Clone()
	roster, interactions := social.ProcessSocialTurn(out.Students, r.rng)
	out.Students = social.AssignCliques(roster)
	out.Turn.Interactions = append(out.Turn.Interactions, interactions...)
	return out
}

// recordGrade appends to both the gradebook substate and the student's
// append-only test log.
func recordGrade(state GameState, a RecordGrade) GameState {
	idx := state.studentIndex(a.StudentID)
	if idx < 0 {
		return state
	}
	out := state.Clone()
	out.Gradebook.Entries = append(out.Gradebook.Entries, GradeEntry{
		StudentID: a.StudentID,
		Subject:   a.Subject,
		Score:     a.Score,
		Day:       out.Year.CurrentDay,
	})
	out.Students[idx].TestScores = append(out.Students[idx].TestScores, a.Score)
	return out
}

// scheduleChange replaces the weekly period plan wholesale.
func scheduleChange(state GameState, a ScheduleChange) GameState {
	out := state.Clone()
	out.Schedule.Periods = append([]Period(nil), a.Periods...)
	return out
}

// publishPost appends to the class feed; the post's text comes from the
// caller, the engine only stores and scores it.
func publishPost(state GameState, a PublishPost) GameState {
	out := state.Clone()
	post := a.Post
	if post.Day == 0 {
		post.Day = out.Year.CurrentDay
	}
	out.Feed = append(out.Feed, post)
	return out
}

// reactToPost adds engagement to an existing post; unknown post ids are a
// silent no-op like every other stale reference.
func reactToPost(state GameState, a ReactToPost) GameState {
	idx := -1
	for i := range state.Feed {
		if state.Feed[i].ID == a.PostID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return state
	}
	out := state.Clone()
	out.Feed[idx].Likes += a.Likes
	out.Feed[idx].Comments += a.Comments
	return out
}
