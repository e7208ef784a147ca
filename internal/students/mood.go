package students

// Mood is short-term affect on a 6-point ordered scale.
type Mood uint8

const (
	MoodUpset Mood = iota
	MoodFrustrated
	MoodBored
	MoodNeutral
	MoodHappy
	MoodExcited
)

// NumMoods is the number of points on the mood scale.
const NumMoods = 6

// MoodName returns a human-readable mood name.
func MoodName(m Mood) string {
	switch m {
	case MoodUpset:
		return "upset"
	case MoodFrustrated:
		return "frustrated"
	case MoodBored:
		return "bored"
	case MoodNeutral:
		return "neutral"
	case MoodHappy:
		return "happy"
	case MoodExcited:
		return "excited"
	default:
		return "unknown"
	}
}

// Index returns the mood's position on the ordered scale (0 = upset).
func (m Mood) Index() int {
	return int(m)
}

// Positive reports whether the mood is above neutral.
func (m Mood) Positive() bool {
	return m > MoodNeutral
}

// Negative reports whether the mood is below neutral.
func (m Mood) Negative() bool {
	return m < MoodNeutral
}

// ShiftMood moves a mood by delta steps, clamped to the scale bounds.
// Shifting up from excited or down from upset is a no-op.
func ShiftMood(m Mood, delta int) Mood {
	idx := m.Index() + delta
	if idx < 0 {
		idx = 0
	}
	if idx >= NumMoods {
		idx = NumMoods - 1
	}
	return Mood(idx)
}
