package curriculum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMethodTableComplete(t *testing.T) {
	for m := Method(0); m < NumMethods; m++ {
		info := m.Info()
		assert.NotEmpty(t, info.Name, "method %d has no name", m)
		assert.NotEmpty(t, info.Styles, "method %s serves no styles", info.Name)
	}
}

func TestMatchesStyle(t *testing.T) {
	tests := []struct {
		method Method
		style  Style
		want   bool
	}{
		{MethodLecture, StyleAuditory, true},
		{MethodLecture, StyleKinesthetic, false},
		{MethodHandsOn, StyleKinesthetic, true},
		{MethodHandsOn, StyleVisual, true},
		{MethodHandsOn, StyleReadingWriting, false},
		{MethodIndependentStudy, StyleReadingWriting, true},
		{MethodGameBased, StyleAuditory, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.method.MatchesStyle(tt.style),
			"%s vs %s", tt.method.Name(), StyleName(tt.style))
	}
}

func TestDurationFactor(t *testing.T) {
	assert.Equal(t, 0.7, DurationShort.Factor())
	assert.Equal(t, 1.0, DurationMedium.Factor())
	assert.Equal(t, 1.3, DurationLong.Factor())
}

func TestCompletionPenalty(t *testing.T) {
	assert.Equal(t, 0.0, HomeworkNone.CompletionPenalty())
	assert.Equal(t, 0.0, HomeworkWorksheet.CompletionPenalty())
	assert.Equal(t, 0.05, HomeworkReading.CompletionPenalty())
	assert.Equal(t, 0.10, HomeworkEssay.CompletionPenalty())
	assert.Equal(t, 0.15, HomeworkProject.CompletionPenalty())
}

func TestLessonCatalog(t *testing.T) {
	lessons := Lessons()
	assert.NotEmpty(t, lessons)
	for _, l := range lessons {
		assert.GreaterOrEqual(t, l.Difficulty, 1, "%s difficulty below 1", l.Title)
		assert.LessOrEqual(t, l.Difficulty, 3, "%s difficulty above 3", l.Title)
		assert.NotEmpty(t, l.Title)
	}
}

func TestMethodInfoOutOfRange(t *testing.T) {
	assert.Equal(t, "lecture", Method(200).Name())
}
