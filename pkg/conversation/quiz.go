package conversation

// QuizQuestion is one generated multiple-choice question. The generator
// guarantees the option cardinality and that CorrectAnswer is one of
// Options; the session does not re-validate either.
type QuizQuestion struct {
	Question      string
	Options       []string
	CorrectAnswer string
	UserAnswer    string
}

// ScoredResult pairs a question with its captured answer and verdict.
// It outlives the quiz session so the report can be composed later.
type ScoredResult struct {
	Question      string
	UserAnswer    string
	CorrectAnswer string
	Correct       bool
}

// QuizSession walks a fixed ordered question list one question at a
// time. It is either presenting question `index` or completed; once
// completed the list is frozen.
type QuizSession struct {
	questions []*QuizQuestion
	index     int
	selection string
	completed bool
}

func NewQuizSession(questions []*QuizQuestion) *QuizSession {
	return &QuizSession{questions: questions}
}

// Select records a pending choice for the current question. Reselecting
// before advancing overwrites the pending choice. Options outside the
// current question's candidate set are ignored.
func (s *QuizSession) Select(option string) bool {
	if s.completed || option == "" {
		return false
	}
	for _, candidate := range s.questions[s.index].Options {
		if candidate == option {
			s.selection = option
			return true
		}
	}
	return false
}

// Advance captures the pending selection into the current question and
// moves on, or completes the session on the last question. Without a
// pending selection it is a no-op.
func (s *QuizSession) Advance() bool {
	if s.completed || s.selection == "" {
		return false
	}
	s.questions[s.index].UserAnswer = s.selection
	s.selection = ""
	if s.index+1 < len(s.questions) {
		s.index++
	} else {
		s.completed = true
	}
	return true
}

func (s *QuizSession) Completed() bool { return s.completed }

func (s *QuizSession) Index() int { return s.index }

func (s *QuizSession) Len() int { return len(s.questions) }

func (s *QuizSession) Selection() string { return s.selection }

// Current returns the question being presented, or nil once completed.
func (s *QuizSession) Current() *QuizQuestion {
	if s.completed {
		return nil
	}
	return s.questions[s.index]
}

// Results returns the frozen question list, nil until completion.
func (s *QuizSession) Results() []*QuizQuestion {
	if !s.completed {
		return nil
	}
	return s.questions
}

// ScoreQuiz computes per-question verdicts (captured == correct).
func ScoreQuiz(questions []*QuizQuestion) []ScoredResult {
	results := make([]ScoredResult, len(questions))
	for i, q := range questions {
		results[i] = ScoredResult{
			Question:      q.Question,
			UserAnswer:    q.UserAnswer,
			CorrectAnswer: q.CorrectAnswer,
			Correct:       q.UserAnswer == q.CorrectAnswer,
		}
	}
	return results
}
