package conversation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-facilitator-be/internal/i18n"
)

type fakeAnswers struct {
	reply string
	err   error
	calls int
	gate  chan struct{} // when set, GenerateAnswer blocks until closed
	enter chan struct{} // when set, signaled on call entry
}

func (f *fakeAnswers) GenerateAnswer(_ context.Context, _ []Exchange, question string, _ *Document, _ i18n.Language) (string, error) {
	f.calls++
	if f.enter != nil {
		f.enter <- struct{}{}
	}
	if f.gate != nil {
		<-f.gate
	}
	if f.err != nil {
		return "", f.err
	}
	if f.reply != "" {
		return f.reply, nil
	}
	return "answer to " + question, nil
}

type fakeQuizzes struct {
	questions []*QuizQuestion
	err       error
	calls     int
}

func (f *fakeQuizzes) GenerateQuiz(_ context.Context, _ *Document, _ i18n.Language) ([]*QuizQuestion, error) {
	f.calls++
	return f.questions, f.err
}

type recordedAnswer struct {
	questionId uuid.UUID
	text       string
}

type fakeRecorder struct {
	questions map[uuid.UUID]string
	answers   []recordedAnswer
	files     []string
	failNext  bool
}

func newFakeRecorder() *fakeRecorder {
	return &fakeRecorder{questions: make(map[uuid.UUID]string)}
}

func (f *fakeRecorder) RecordQuestion(_ context.Context, _ uuid.UUID, text string) (uuid.UUID, error) {
	if f.failNext {
		f.failNext = false
		return uuid.Nil, errors.New("store down")
	}
	id := uuid.New()
	f.questions[id] = text
	return id, nil
}

func (f *fakeRecorder) RecordAnswer(_ context.Context, questionId uuid.UUID, text string) error {
	f.answers = append(f.answers, recordedAnswer{questionId: questionId, text: text})
	return nil
}

func (f *fakeRecorder) RecordFile(_ context.Context, _ uuid.UUID, name string, _ int64, _ string) error {
	f.files = append(f.files, name)
	return nil
}

func sampleQuiz() []*QuizQuestion {
	return []*QuizQuestion{
		{Question: "Q1", Options: []string{"a", "b", "c"}, CorrectAnswer: "a"},
		{Question: "Q2", Options: []string{"d", "e", "f"}, CorrectAnswer: "e"},
		{Question: "Q3", Options: []string{"g", "h", "i"}, CorrectAnswer: "i"},
	}
}

func newTestMachine(t *testing.T, deps Deps, cfg Config) *Machine {
	t.Helper()
	if deps.Answers == nil {
		deps.Answers = &fakeAnswers{}
	}
	if deps.Quizzes == nil {
		deps.Quizzes = &fakeQuizzes{questions: sampleQuiz()}
	}
	if deps.Recorder == nil {
		deps.Recorder = NoopRecorder{}
	}
	cfg.PacingDisabled = true
	if cfg.InactivityTimeout == 0 {
		cfg.InactivityTimeout = time.Hour
	}
	m := NewMachine(uuid.New(), i18n.LanguageSpanish, deps, cfg)
	t.Cleanup(m.Close)
	return m
}

// runIntake walks the six intake answers and leaves the machine in
// FILE_UPLOAD.
func runIntake(t *testing.T, m *Machine) {
	t.Helper()
	for _, text := range []string{"Ana", "Acme", "Ingeniera", "555-0100", "ana@acme.com", "PLCs"} {
		require.NoError(t, m.SubmitText(context.Background(), text))
	}
	require.Equal(t, StageFileUpload, m.Snapshot().Stage)
}

func uploadDoc(t *testing.T, m *Machine) {
	t.Helper()
	require.NoError(t, m.SubmitFile(context.Background(), &Document{
		Name:      "manual.pdf",
		MediaType: "application/pdf",
		Data:      []byte("doc"),
	}))
	require.Equal(t, StageQAndA, m.Snapshot().Stage)
}

func TestIntakeOrderAndProfile(t *testing.T) {
	m := newTestMachine(t, Deps{}, Config{})

	state := m.Snapshot()
	assert.Equal(t, StageCollectName, state.Stage)
	require.Len(t, state.Timeline, 1) // welcome message

	require.NoError(t, m.SubmitText(context.Background(), "Ana"))
	state = m.Snapshot()
	assert.Equal(t, StageCollectCompany, state.Stage)
	// The company prompt greets the user by the name just captured.
	last := state.Timeline[len(state.Timeline)-1]
	assert.Equal(t, RoleAssistant, last.Role)
	assert.Contains(t, last.Text, "Ana")

	for _, step := range []struct {
		input string
		next  Stage
	}{
		{"Acme", StageCollectJob},
		{"Ingeniera", StageCollectPhone},
		{"555-0100", StageCollectEmail},
		{"ana@acme.com", StageCollectTopic},
		{"PLCs", StageFileUpload},
	} {
		require.NoError(t, m.SubmitText(context.Background(), step.input))
		assert.Equal(t, step.next, m.Snapshot().Stage)
	}

	profile := m.Snapshot().Profile
	assert.Equal(t, "Ana", profile.Name)
	assert.Equal(t, "Acme", profile.Company)
	assert.Equal(t, "Ingeniera", profile.JobTitle)
	assert.Equal(t, "555-0100", profile.Phone)
	assert.Equal(t, "ana@acme.com", profile.Email)
	assert.Equal(t, "PLCs", profile.Topic)
}

func TestEmptyInputIsNoOp(t *testing.T) {
	m := newTestMachine(t, Deps{}, Config{})
	before := m.Snapshot()

	require.NoError(t, m.SubmitText(context.Background(), ""))
	require.NoError(t, m.SubmitText(context.Background(), "   \t  "))

	after := m.Snapshot()
	assert.Equal(t, before.Stage, after.Stage)
	assert.Len(t, after.Timeline, len(before.Timeline))
}

func TestFileOutsideUploadStageRejected(t *testing.T) {
	m := newTestMachine(t, Deps{}, Config{})
	err := m.SubmitFile(context.Background(), &Document{Name: "x", MediaType: "application/pdf", Data: []byte("d")})
	assert.ErrorIs(t, err, ErrWrongStage)
}

func TestFileHandoffMovesToQAndA(t *testing.T) {
	rec := newFakeRecorder()
	m := newTestMachine(t, Deps{Recorder: rec}, Config{})
	runIntake(t, m)
	uploadDoc(t, m)

	assert.Equal(t, []string{"manual.pdf"}, rec.files)
}

func TestCounterTriggersQuizAfterThreshold(t *testing.T) {
	quizzes := &fakeQuizzes{questions: sampleQuiz()}
	m := newTestMachine(t, Deps{Quizzes: quizzes}, Config{QuizThreshold: 3})
	runIntake(t, m)
	uploadDoc(t, m)

	for i := 0; i < 2; i++ {
		require.NoError(t, m.SubmitText(context.Background(), fmt.Sprintf("pregunta %d", i)))
		assert.Equal(t, StageQAndA, m.Snapshot().Stage)
	}

	require.NoError(t, m.SubmitText(context.Background(), "tercera pregunta"))
	assert.Equal(t, StageQuizActive, m.Snapshot().Stage)
	assert.Equal(t, 1, quizzes.calls)
}

func TestFailedAnswerDoesNotCount(t *testing.T) {
	answers := &fakeAnswers{}
	quizzes := &fakeQuizzes{questions: sampleQuiz()}
	m := newTestMachine(t, Deps{Answers: answers, Quizzes: quizzes}, Config{QuizThreshold: 2})
	runIntake(t, m)
	uploadDoc(t, m)

	require.NoError(t, m.SubmitText(context.Background(), "primera"))

	answers.err = errors.New("model unavailable")
	require.NoError(t, m.SubmitText(context.Background(), "fallida"))
	state := m.Snapshot()
	assert.Equal(t, StageQAndA, state.Stage)
	// Failed round-trip surfaces the generic error message.
	assert.Contains(t, state.Timeline[len(state.Timeline)-1].Text,
		i18n.T(i18n.LanguageSpanish, i18n.KeyErrorGeneric, nil))

	answers.err = nil
	require.NoError(t, m.SubmitText(context.Background(), "segunda"))
	assert.Equal(t, StageQuizActive, m.Snapshot().Stage)
}

func TestTriggerQuizIdempotent(t *testing.T) {
	quizzes := &fakeQuizzes{questions: sampleQuiz()}
	m := newTestMachine(t, Deps{Quizzes: quizzes}, Config{})
	runIntake(t, m)
	uploadDoc(t, m)

	m.TriggerQuiz(context.Background(), "reason one")
	m.TriggerQuiz(context.Background(), "reason two")

	assert.Equal(t, StageQuizActive, m.Snapshot().Stage)
	assert.Equal(t, 1, quizzes.calls)
}

func TestQuizFailureReturnsToQAndAAndResetsCounter(t *testing.T) {
	quizzes := &fakeQuizzes{err: errors.New("schema violation")}
	m := newTestMachine(t, Deps{Quizzes: quizzes}, Config{QuizThreshold: 2})
	runIntake(t, m)
	uploadDoc(t, m)

	require.NoError(t, m.SubmitText(context.Background(), "uno"))
	require.NoError(t, m.SubmitText(context.Background(), "dos"))

	state := m.Snapshot()
	assert.Equal(t, StageQAndA, state.Stage)
	assert.Contains(t, state.Timeline[len(state.Timeline)-1].Text,
		i18n.T(i18n.LanguageSpanish, i18n.KeyQuizError, nil))

	// Counter was reset: one more answered question must not re-trigger.
	quizzes.err = nil
	quizzes.questions = sampleQuiz()
	require.NoError(t, m.SubmitText(context.Background(), "tres"))
	assert.Equal(t, StageQAndA, m.Snapshot().Stage)

	require.NoError(t, m.SubmitText(context.Background(), "cuatro"))
	assert.Equal(t, StageQuizActive, m.Snapshot().Stage)
}

func TestQuizEmptyListTreatedAsFailure(t *testing.T) {
	quizzes := &fakeQuizzes{questions: nil}
	m := newTestMachine(t, Deps{Quizzes: quizzes}, Config{})
	runIntake(t, m)
	uploadDoc(t, m)

	m.TriggerQuiz(context.Background(), "idle")
	assert.Equal(t, StageQAndA, m.Snapshot().Stage)
}

func TestBusyRejectsConcurrentInput(t *testing.T) {
	answers := &fakeAnswers{gate: make(chan struct{}), enter: make(chan struct{}, 1)}
	m := newTestMachine(t, Deps{Answers: answers}, Config{})
	runIntake(t, m)
	uploadDoc(t, m)

	done := make(chan error, 1)
	go func() {
		done <- m.SubmitText(context.Background(), "larga")
	}()

	<-answers.enter
	assert.True(t, m.Snapshot().Busy)
	assert.ErrorIs(t, m.SubmitText(context.Background(), "otra"), ErrBusy)

	close(answers.gate)
	require.NoError(t, <-done)
	assert.False(t, m.Snapshot().Busy)
}

func TestInactivityWatchdogTriggersQuiz(t *testing.T) {
	quizzes := &fakeQuizzes{questions: sampleQuiz()}
	m := newTestMachine(t, Deps{Quizzes: quizzes}, Config{InactivityTimeout: 30 * time.Millisecond})
	runIntake(t, m)
	uploadDoc(t, m)

	assert.Eventually(t, func() bool {
		return m.Snapshot().Stage == StageQuizActive
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, 1, quizzes.calls)
}

func TestWatchdogOnlyArmedDuringQAndA(t *testing.T) {
	m := newTestMachine(t, Deps{}, Config{InactivityTimeout: 30 * time.Millisecond})
	// Intake stages never arm the timer; the stage must not move.
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, StageCollectName, m.Snapshot().Stage)
}

func walkQuiz(t *testing.T, m *Machine, pick func(q *QuizView) string) {
	t.Helper()
	for {
		state := m.Snapshot()
		if state.Quiz == nil {
			return
		}
		m.SelectQuizOption(pick(state.Quiz))
		m.AdvanceQuiz(context.Background())
	}
}

func TestQuizFlowAndResults(t *testing.T) {
	m := newTestMachine(t, Deps{}, Config{})
	runIntake(t, m)
	uploadDoc(t, m)
	m.TriggerQuiz(context.Background(), "idle")

	// Advancing without a selection is a no-op.
	m.AdvanceQuiz(context.Background())
	state := m.Snapshot()
	require.NotNil(t, state.Quiz)
	assert.Equal(t, 0, state.Quiz.Index)

	// Answer Q1 correctly, Q2 and Q3 wrong.
	picks := map[string]string{"Q1": "a", "Q2": "d", "Q3": "g"}
	walkQuiz(t, m, func(q *QuizView) string { return picks[q.Question] })

	state = m.Snapshot()
	assert.Equal(t, StageQuizResults, state.Stage)
	require.Len(t, state.Results, 3)
	assert.True(t, state.Results[0].Correct)
	assert.False(t, state.Results[1].Correct)
	assert.False(t, state.Results[2].Correct)

	// The completion message carries the score.
	last := state.Timeline[len(state.Timeline)-1]
	assert.Contains(t, last.Text, "1")
	assert.Contains(t, last.Text, "3")
}

func finishQuiz(t *testing.T, m *Machine) {
	t.Helper()
	runIntake(t, m)
	uploadDoc(t, m)
	m.TriggerQuiz(context.Background(), "idle")
	walkQuiz(t, m, func(q *QuizView) string { return q.Options[0] })
	require.NoError(t, m.StartReport(context.Background()))
	require.Equal(t, StageAskSendReport, m.Snapshot().Stage)
}

func TestReportAffirmativeCollectsFacilitatorEmail(t *testing.T) {
	m := newTestMachine(t, Deps{}, Config{})
	finishQuiz(t, m)

	require.NoError(t, m.SubmitText(context.Background(), "Sí"))
	assert.Equal(t, StageCollectFacilitatorEmail, m.Snapshot().Stage)

	require.NoError(t, m.SubmitText(context.Background(), "facilitador@acme.com"))
	assert.Equal(t, StageCompleted, m.Snapshot().Stage)

	report, ok := m.Report()
	require.True(t, ok)
	assert.Equal(t, "facilitador@acme.com", report.Recipient)
	assert.Equal(t, "Ana", report.Profile.Name)
}

func TestReportDeclinedCompletesWithoutRecipient(t *testing.T) {
	m := newTestMachine(t, Deps{}, Config{})
	finishQuiz(t, m)

	require.NoError(t, m.SubmitText(context.Background(), "no, gracias"))
	assert.Equal(t, StageCompleted, m.Snapshot().Stage)

	_, ok := m.Report()
	assert.False(t, ok)
}

func TestStartReportOutsideResultsRejected(t *testing.T) {
	m := newTestMachine(t, Deps{}, Config{})
	assert.ErrorIs(t, m.StartReport(context.Background()), ErrWrongStage)
}

func TestRecorderLinksAnswersToQuestions(t *testing.T) {
	rec := newFakeRecorder()
	m := newTestMachine(t, Deps{Recorder: rec}, Config{})
	runIntake(t, m)
	uploadDoc(t, m)

	require.NoError(t, m.SubmitText(context.Background(), "¿qué es un PLC?"))

	require.NotEmpty(t, rec.answers)
	last := rec.answers[len(rec.answers)-1]
	assert.Equal(t, "¿qué es un PLC?", rec.questions[last.questionId])
	assert.Equal(t, "answer to ¿qué es un PLC?", last.text)
}

func TestRecorderFailureDoesNotBlockConversation(t *testing.T) {
	rec := newFakeRecorder()
	rec.failNext = true
	m := newTestMachine(t, Deps{Recorder: rec}, Config{})

	require.NoError(t, m.SubmitText(context.Background(), "Ana"))
	assert.Equal(t, StageCollectCompany, m.Snapshot().Stage)
}

// The machine must behave identically with and without a store.
func TestSameFlowWithNoopAndFakeRecorder(t *testing.T) {
	for _, tc := range []struct {
		name     string
		recorder Recorder
	}{
		{"noop", NoopRecorder{}},
		{"fake", newFakeRecorder()},
	} {
		t.Run(tc.name, func(t *testing.T) {
			m := newTestMachine(t, Deps{Recorder: tc.recorder}, Config{})
			finishQuiz(t, m)
			require.NoError(t, m.SubmitText(context.Background(), "sí"))
			require.NoError(t, m.SubmitText(context.Background(), "fac@acme.com"))
			_, ok := m.Report()
			assert.True(t, ok)
		})
	}
}

func TestSetLanguageSwitchesPrompts(t *testing.T) {
	m := newTestMachine(t, Deps{}, Config{})
	m.SetLanguage(i18n.LanguageEnglish)

	require.NoError(t, m.SubmitText(context.Background(), "Ana"))
	state := m.Snapshot()
	last := state.Timeline[len(state.Timeline)-1]
	assert.True(t, strings.Contains(last.Text, "What company"), "got %q", last.Text)
}

func TestListenerReceivesEvents(t *testing.T) {
	var events []Event
	m := newTestMachine(t, Deps{Listener: func(ev Event) { events = append(events, ev) }}, Config{})

	require.NoError(t, m.SubmitText(context.Background(), "Ana"))

	var sawStage, sawMessage bool
	for _, ev := range events {
		switch ev.Type {
		case EventStageChanged:
			sawStage = true
		case EventMessageAppended:
			sawMessage = true
		}
		assert.Equal(t, m.Id(), ev.ConversationId)
	}
	assert.True(t, sawStage)
	assert.True(t, sawMessage)
}
