// Package conversation implements the scripted intake -> document Q&A ->
// quiz -> report conversation as a single-session state machine. The
// machine owns the stage, the user profile, the timeline and the quiz
// sub-flow; answer/quiz generation, persistence and mail delivery are
// collaborators injected through Deps.
package conversation

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"ai-facilitator-be/internal/i18n"
	"ai-facilitator-be/internal/pkg/logger"

	"github.com/google/uuid"
)

const (
	DefaultQuizThreshold     = 5
	DefaultInactivityTimeout = 60 * time.Second
	DefaultPacingDelay       = 2 * time.Second
)

// Config tunes the machine's auto-trigger behavior. The pacing delay is
// a UX device, not a correctness requirement; zero makes the paced
// transitions synchronous, which the tests rely on.
type Config struct {
	QuizThreshold     int
	InactivityTimeout time.Duration
	PacingDelay       time.Duration
	PacingDisabled    bool // treat PacingDelay==0 as intentional
}

func (c Config) withDefaults() Config {
	if c.QuizThreshold <= 0 {
		c.QuizThreshold = DefaultQuizThreshold
	}
	if c.InactivityTimeout <= 0 {
		c.InactivityTimeout = DefaultInactivityTimeout
	}
	if c.PacingDelay <= 0 && !c.PacingDisabled {
		c.PacingDelay = DefaultPacingDelay
	}
	return c
}

// Deps are the machine's collaborators. Answers, Quizzes and Recorder
// are required; Logger and Listener may be nil.
type Deps struct {
	Answers  AnswerGenerator
	Quizzes  QuizGenerator
	Recorder Recorder
	Logger   logger.ILogger
	Listener Listener
}

// Machine is one conversation instance. All exported methods are safe
// for concurrent use; internally a single mutex serializes every state
// mutation, released only around generator calls (the busy window).
type Machine struct {
	mu   sync.Mutex
	cfg  Config
	deps Deps

	id        uuid.UUID
	lang      i18n.Language
	stage     Stage
	profile   Profile
	doc       *Document
	timeline  Timeline
	counter   interactionCounter
	quiz      *QuizSession
	results   []ScoredResult
	recipient string

	lastQuestionId *uuid.UUID
	busy           bool
	closed         bool

	watchdog *Watchdog
}

func NewMachine(id uuid.UUID, lang i18n.Language, deps Deps, cfg Config) *Machine {
	m := &Machine{
		id:    id,
		lang:  lang,
		cfg:   cfg.withDefaults(),
		deps:  deps,
		stage: StageCollectName,
	}
	m.watchdog = NewWatchdog(m.cfg.InactivityTimeout, m.fireInactivity)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.appendAssistant(context.Background(), m.t(i18n.KeyWelcome, nil))
	return m
}

func (m *Machine) Id() uuid.UUID { return m.id }

// Close cancels the watchdog and disables pending paced transitions.
func (m *Machine) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	m.watchdog.Cancel()
}

// SetLanguage swaps the conversation language mid-session.
func (m *Machine) SetLanguage(lang i18n.Language) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lang = lang
}

// SubmitText handles one user input. Empty input after trimming is a
// no-op: no state change, no timeline entry.
func (m *Machine) SubmitText(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.busy {
		return ErrBusy
	}
	if m.closed {
		return ErrWrongStage
	}

	m.appendUser(ctx, text)

	switch m.stage {
	case StageCollectName:
		m.profile.Name = text
		m.setStage(StageCollectCompany)
		m.appendAssistant(ctx, m.t(i18n.KeyAskCompany, map[string]string{"name": text}))
	case StageCollectCompany:
		m.profile.Company = text
		m.setStage(StageCollectJob)
		m.appendAssistant(ctx, m.t(i18n.KeyAskJob, nil))
	case StageCollectJob:
		m.profile.JobTitle = text
		m.setStage(StageCollectPhone)
		m.appendAssistant(ctx, m.t(i18n.KeyAskPhone, nil))
	case StageCollectPhone:
		m.profile.Phone = text
		m.setStage(StageCollectEmail)
		m.appendAssistant(ctx, m.t(i18n.KeyAskEmail, nil))
	case StageCollectEmail:
		m.profile.Email = text
		m.setStage(StageCollectTopic)
		m.appendAssistant(ctx, m.t(i18n.KeyAskTopic, nil))
	case StageCollectTopic:
		m.profile.Topic = text
		m.setStage(StageFileUpload)
		m.appendAssistant(ctx, m.t(i18n.KeyAskFile, map[string]string{"topic": text}))
	case StageQAndA:
		m.answerQuestion(ctx, text)
	case StageAskSendReport:
		if i18n.IsAffirmative(text) {
			m.setStage(StageCollectFacilitatorEmail)
			m.appendAssistant(ctx, m.t(i18n.KeyAskFacilitatorEmail, nil))
		} else {
			m.setStage(StageCompleted)
			m.appendAssistant(ctx, m.t(i18n.KeySentSuccess, nil))
		}
	case StageCollectFacilitatorEmail:
		m.recipient = text
		m.setStage(StageCompleted)
		m.appendAssistant(ctx, m.t(i18n.KeyReadyToSend, nil))
	case StageFileUpload, StageProcessingFile, StageQuizLoading,
		StageQuizActive, StageQuizResults, StageCompleted:
		// Free text has no effect in these stages.
	}
	return nil
}

// SubmitFile receives the decoded document from the upload boundary.
// Size and media-type validation happen before this call.
func (m *Machine) SubmitFile(ctx context.Context, doc *Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.stage != StageFileUpload || doc == nil {
		return ErrWrongStage
	}

	m.doc = doc
	m.setStage(StageProcessingFile)
	m.appendAssistant(ctx, m.t(i18n.KeyFileReceived, map[string]string{"fileName": doc.Name}))

	if err := m.deps.Recorder.RecordFile(ctx, m.id, doc.Name, int64(len(doc.Data)), doc.MediaType); err != nil {
		m.logWarn("file record failed", err)
	}

	m.schedule(m.cfg.PacingDelay, func() {
		if m.stage != StageProcessingFile {
			return
		}
		m.setStage(StageQAndA)
		m.appendAssistant(context.Background(), m.t(i18n.KeyFileReviewed, nil))
	})
	return nil
}

// SelectQuizOption records a pending choice for the quiz question being
// presented. Unknown options and calls outside QUIZ_ACTIVE are no-ops.
func (m *Machine) SelectQuizOption(option string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.stage != StageQuizActive || m.quiz == nil {
		return
	}
	if m.quiz.Select(strings.TrimSpace(option)) {
		m.notify(Event{Type: EventQuizUpdated})
	}
}

// AdvanceQuiz captures the pending selection and moves to the next
// question, completing the quiz on the last one.
func (m *Machine) AdvanceQuiz(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.stage != StageQuizActive || m.quiz == nil {
		return
	}
	if !m.quiz.Advance() {
		return
	}
	if !m.quiz.Completed() {
		m.notify(Event{Type: EventQuizUpdated})
		return
	}

	m.results = ScoreQuiz(m.quiz.Results())
	correct := 0
	for _, r := range m.results {
		if r.Correct {
			correct++
		}
	}
	m.setStage(StageQuizResults)
	m.appendAssistant(ctx, m.t(i18n.KeyQuizCompleted, map[string]string{
		"correct": strconv.Itoa(correct),
		"total":   strconv.Itoa(len(m.results)),
	}))
}

// StartReport moves from the results view into the report handshake.
func (m *Machine) StartReport(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.stage != StageQuizResults {
		return ErrWrongStage
	}
	m.setStage(StageAskSendReport)
	m.appendAssistant(ctx, m.t(i18n.KeyAskSendReport, nil))
	return nil
}

// TriggerQuiz is the shared quiz-trigger entry point used by the turn
// counter and the inactivity watchdog.
func (m *Machine) TriggerQuiz(ctx context.Context, reason string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.triggerQuiz(ctx, reason)
}

// Report composes the facilitator report once the conversation is
// complete and a recipient is known.
func (m *Machine) Report() (Report, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.stage != StageCompleted || m.recipient == "" || len(m.results) == 0 {
		return Report{}, false
	}
	return ComposeReport(m.profile, m.results, m.recipient, m.lang), true
}

// State is an immutable view of the conversation for rendering.
type State struct {
	Stage     Stage
	Language  i18n.Language
	Busy      bool
	Profile   Profile
	Timeline  []Exchange
	Quiz      *QuizView
	Results   []ScoredResult
	Recipient string
}

// QuizView is the render surface of the active quiz session.
type QuizView struct {
	Index      int
	Total      int
	Question   string
	Options    []string
	Selection  string
	CanAdvance bool
}

func (m *Machine) Snapshot() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	state := State{
		Stage:     m.stage,
		Language:  m.lang,
		Busy:      m.busy,
		Profile:   m.profile,
		Timeline:  m.timeline.Snapshot(),
		Recipient: m.recipient,
	}
	if m.quiz != nil && !m.quiz.Completed() {
		current := m.quiz.Current()
		options := make([]string, len(current.Options))
		copy(options, current.Options)
		state.Quiz = &QuizView{
			Index:      m.quiz.Index(),
			Total:      m.quiz.Len(),
			Question:   current.Question,
			Options:    options,
			Selection:  m.quiz.Selection(),
			CanAdvance: m.quiz.Selection() != "",
		}
	}
	if m.results != nil {
		state.Results = make([]ScoredResult, len(m.results))
		copy(state.Results, m.results)
	}
	return state
}

// --- internals (callers hold m.mu) ---

// answerQuestion runs one Q&A round-trip. The lock is released while
// the generator call is in flight; the busy flag covers the gap.
func (m *Machine) answerQuestion(ctx context.Context, question string) {
	if m.doc == nil {
		m.appendAssistant(ctx, m.t(i18n.KeyErrorGeneric, nil))
		return
	}

	history := m.timeline.Snapshot()
	doc, lang := m.doc, m.lang
	m.setBusy(true)

	m.mu.Unlock()
	reply, err := m.deps.Answers.GenerateAnswer(ctx, history, question, doc, lang)
	m.mu.Lock()

	m.setBusy(false)
	if err != nil {
		m.logWarn("answer generation failed", err)
		m.appendAssistant(ctx, m.t(i18n.KeyErrorGeneric, nil))
		return
	}

	m.appendAssistant(ctx, reply)
	if m.counter.Increment() >= m.cfg.QuizThreshold {
		reason := m.t(i18n.KeyQuizTriggerCount, nil)
		m.schedule(m.cfg.PacingDelay, func() {
			m.triggerQuiz(context.Background(), reason)
		})
	}
}

// triggerQuiz runs the shared trigger body. The guard makes racing
// trigger sources collapse into a single execution: the first one moves
// the stage to QUIZ_LOADING before releasing the lock.
func (m *Machine) triggerQuiz(ctx context.Context, reason string) {
	if m.stage == StageQuizLoading || m.stage == StageQuizActive {
		return
	}
	m.watchdog.Cancel()
	m.setStage(StageQuizLoading)
	m.appendAssistant(ctx, reason+" "+m.t(i18n.KeyGeneratingQuiz, nil))

	doc, lang := m.doc, m.lang
	var questions []*QuizQuestion
	var err error
	if doc == nil {
		err = ErrWrongStage
	} else {
		m.setBusy(true)
		m.mu.Unlock()
		questions, err = m.deps.Quizzes.GenerateQuiz(ctx, doc, lang)
		m.mu.Lock()
		m.setBusy(false)
	}

	if err != nil || len(questions) == 0 {
		if err != nil {
			m.logWarn("quiz generation failed", err)
		}
		m.appendAssistant(ctx, m.t(i18n.KeyQuizError, nil))
		m.setStage(StageQAndA)
		m.counter.Reset()
		return
	}

	m.quiz = NewQuizSession(questions)
	m.counter.Reset()
	m.setStage(StageQuizActive)
}

func (m *Machine) fireInactivity() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}
	m.triggerQuiz(context.Background(), m.t(i18n.KeyQuizTriggerIdle, nil))
}

func (m *Machine) appendUser(ctx context.Context, text string) {
	entry := Exchange{
		Id:        uuid.New(),
		Role:      RoleUser,
		Text:      text,
		CreatedAt: time.Now(),
	}

	questionId, err := m.deps.Recorder.RecordQuestion(ctx, m.id, text)
	if err != nil || questionId == uuid.Nil {
		if err != nil {
			m.logWarn("question record failed", err)
		}
		m.lastQuestionId = nil
	} else {
		m.lastQuestionId = &questionId
		entry.QuestionId = &questionId
	}

	m.timeline.Append(entry)
	m.notify(Event{Type: EventMessageAppended, Exchange: &entry})
	m.rearmWatchdog()
}

func (m *Machine) appendAssistant(ctx context.Context, text string) {
	entry := Exchange{
		Id:         uuid.New(),
		Role:       RoleAssistant,
		Text:       text,
		CreatedAt:  time.Now(),
		QuestionId: m.lastQuestionId,
	}
	m.timeline.Append(entry)

	if m.lastQuestionId != nil {
		if err := m.deps.Recorder.RecordAnswer(ctx, *m.lastQuestionId, text); err != nil {
			m.logWarn("answer record failed", err)
		}
	}

	m.notify(Event{Type: EventMessageAppended, Exchange: &entry})
	m.rearmWatchdog()
}

func (m *Machine) setStage(s Stage) {
	m.stage = s
	m.notify(Event{Type: EventStageChanged})
	m.rearmWatchdog()
}

func (m *Machine) setBusy(busy bool) {
	m.busy = busy
	m.notify(Event{Type: EventBusyChanged})
}

// rearmWatchdog keeps the inactivity timer armed only during Q&A and
// refreshes it on every stage or timeline change.
func (m *Machine) rearmWatchdog() {
	if m.closed {
		return
	}
	if m.stage == StageQAndA {
		m.watchdog.Arm()
	} else {
		m.watchdog.Cancel()
	}
}

// schedule runs fn after d, re-acquiring the lock. With pacing disabled
// (d <= 0) fn runs inline under the already-held lock.
func (m *Machine) schedule(d time.Duration, fn func()) {
	if d <= 0 {
		fn()
		return
	}
	time.AfterFunc(d, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		if m.closed {
			return
		}
		fn()
	})
}

func (m *Machine) t(key i18n.Key, subs map[string]string) string {
	return i18n.T(m.lang, key, subs)
}

func (m *Machine) logWarn(msg string, err error) {
	if m.deps.Logger == nil {
		return
	}
	m.deps.Logger.Warn("Conversation", msg, map[string]interface{}{
		"conversation_id": m.id.String(),
		"stage":           m.stage.String(),
		"error":           err.Error(),
	})
}

func (m *Machine) notify(ev Event) {
	if m.deps.Listener == nil {
		return
	}
	ev.ConversationId = m.id
	ev.Stage = m.stage.String()
	ev.Busy = m.busy
	m.deps.Listener(ev)
}

