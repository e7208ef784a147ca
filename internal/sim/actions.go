// The closed action set the reducer accepts. Actions are a tagged union:
// an unexported marker method keeps the set closed to this package's types.
package sim

import (
	"github.com/talgya/chalkboard/internal/curriculum"
	"github.com/talgya/chalkboard/internal/events"
	"github.com/talgya/chalkboard/internal/social"
	"github.com/talgya/chalkboard/internal/students"
)

// Action is one state transition request.
type Action interface {
	isAction()
}

// NewGame starts a fresh run.
type NewGame struct {
	Difficulty events.Difficulty
	ClassSize  int // 0 means the default roster size
}

// LoadGame restores a previously saved state wholesale.
type LoadGame struct {
	State GameState
}

// AdvancePhase moves to the next phase in fixed order; a no-op at end-of-day.
type AdvancePhase struct{}

// AdvanceDay wraps up the day; only accepted from end-of-day.
type AdvanceDay struct{}

// SelectLesson picks the day's lesson; only honored during teaching.
type SelectLesson struct {
	Lesson curriculum.Lesson
}

// SelectMethod picks the teaching method; only honored during teaching.
type SelectMethod struct {
	Method curriculum.Method
}

// AssignHomework sets tonight's homework; only honored at end-of-day.
type AssignHomework struct {
	Type curriculum.HomeworkType
}

// InteractStudent is a one-on-one teacher action; only honored during the
// interaction phase.
type InteractStudent struct {
	StudentID students.StudentID
	Kind      students.InteractionKind
}

// ResolveEvent applies a choice on an active event. Unknown event or choice
// ids are silent no-ops.
type ResolveEvent struct {
	EventID  string
	ChoiceID string
}

// RandomEventCheck rolls the event templates for the current phase.
type RandomEventCheck struct{}

// ProcessSocial runs one social-dynamics tick over the roster.
type ProcessSocial struct{}

// BehaviorReview runs the escalation/reward coordinator over the roster,
// materializing consequence and recognition events.
type BehaviorReview struct{}

// RecordGrade appends a score to the gradebook and the student's test log.
// Owned by the grading subsystem, routed through the same reducer.
type RecordGrade struct {
	StudentID students.StudentID
	Subject   curriculum.Subject
	Score     float64
}

// ScheduleChange replaces the weekly period plan. Owned by the scheduling
// subsystem.
type ScheduleChange struct {
	Periods []Period
}

// PublishPost appends a post to the class social feed. Owned by the
// social-media subsystem.
type PublishPost struct {
	Post social.Post
}

// ReactToPost adds engagement to an existing post.
type ReactToPost struct {
	PostID   string
	Likes    int
	Comments int
}

func (NewGame) isAction()          {}
func (LoadGame) isAction()         {}
func (AdvancePhase) isAction()     {}
func (AdvanceDay) isAction()       {}
func (SelectLesson) isAction()     {}
func (SelectMethod) isAction()     {}
func (AssignHomework) isAction()   {}
func (InteractStudent) isAction()  {}
func (ResolveEvent) isAction()     {}
func (RandomEventCheck) isAction() {}
func (ProcessSocial) isAction()    {}
func (BehaviorReview) isAction()   {}
func (RecordGrade) isAction()      {}
func (ScheduleChange) isAction()   {}
func (PublishPost) isAction()      {}
func (ReactToPost) isAction()      {}
