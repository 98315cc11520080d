package conversation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuizSessionSelectValidatesCandidates(t *testing.T) {
	s := NewQuizSession(sampleQuiz())

	assert.False(t, s.Select("not-an-option"))
	assert.Empty(t, s.Selection())

	assert.True(t, s.Select("a"))
	assert.Equal(t, "a", s.Selection())

	// Reselecting before advancing overwrites the pending choice.
	assert.True(t, s.Select("b"))
	assert.Equal(t, "b", s.Selection())
}

func TestQuizSessionAdvanceRequiresSelection(t *testing.T) {
	s := NewQuizSession(sampleQuiz())

	assert.False(t, s.Advance())
	assert.Equal(t, 0, s.Index())

	require.True(t, s.Select("a"))
	assert.True(t, s.Advance())
	assert.Equal(t, 1, s.Index())
	assert.Empty(t, s.Selection(), "selection is cleared after advancing")
}

func TestQuizSessionCompletion(t *testing.T) {
	s := NewQuizSession(sampleQuiz())

	require.True(t, s.Select("a"))
	require.True(t, s.Advance())
	require.True(t, s.Select("e"))
	require.True(t, s.Advance())
	require.True(t, s.Select("g"))
	require.True(t, s.Advance())

	assert.True(t, s.Completed())
	assert.Nil(t, s.Current())
	assert.False(t, s.Select("a"), "completed session rejects selections")
	assert.False(t, s.Advance())

	results := s.Results()
	require.Len(t, results, 3)
	assert.Equal(t, "a", results[0].UserAnswer)
	assert.Equal(t, "e", results[1].UserAnswer)
	assert.Equal(t, "g", results[2].UserAnswer)
}

func TestQuizSessionResultsNilBeforeCompletion(t *testing.T) {
	s := NewQuizSession(sampleQuiz())
	assert.Nil(t, s.Results())
}

func TestScoreQuiz(t *testing.T) {
	questions := sampleQuiz()
	questions[0].UserAnswer = "a" // correct
	questions[1].UserAnswer = "d" // wrong
	questions[2].UserAnswer = "i" // correct

	results := ScoreQuiz(questions)
	require.Len(t, results, 3)
	assert.True(t, results[0].Correct)
	assert.False(t, results[1].Correct)
	assert.True(t, results[2].Correct)
	assert.Equal(t, "e", results[1].CorrectAnswer)
}
