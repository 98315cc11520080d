package main

import (
	"context"
	"fmt"
	"log"

	"github.com/fatih/color"
	"github.com/google/uuid"

	"ai-facilitator-be/internal/i18n"
	"ai-facilitator-be/pkg/conversation"
	"ai-facilitator-be/pkg/genai"
)

// Walks the full conversation in-process with the scripted generator:
// intake, document handoff, Q&A until the quiz threshold, quiz, report.
func main() {
	fmt.Println("=== Facilitator Conversation Simulation ===")

	userColor := color.New(color.FgCyan)
	botColor := color.New(color.FgGreen)
	sysColor := color.New(color.FgYellow)

	scripted := genai.NewScriptedGenerator()
	rendered := 0

	machine := conversation.NewMachine(uuid.New(), i18n.LanguageSpanish, conversation.Deps{
		Answers:  scripted,
		Quizzes:  scripted,
		Recorder: conversation.NoopRecorder{},
	}, conversation.Config{
		PacingDisabled: true, // synchronous transitions for the script
	})
	defer machine.Close()

	render := func() {
		state := machine.Snapshot()
		for _, entry := range state.Timeline[rendered:] {
			if entry.Role == conversation.RoleUser {
				userColor.Printf("USER: %s\n", entry.Text)
			} else {
				botColor.Printf("BOT : %s\n", entry.Text)
			}
		}
		rendered = len(state.Timeline)
	}

	say := func(text string) {
		if err := machine.SubmitText(context.Background(), text); err != nil {
			log.Fatalf("submit failed: %v", err)
		}
		render()
	}

	ctx := context.Background()
	render()

	// Intake
	for _, answer := range []string{
		"Ana", "Acme", "Ingeniera", "555-0100", "ana@acme.com", "Seguridad industrial",
	} {
		say(answer)
	}

	// Document handoff
	doc := &conversation.Document{
		Name:      "manual.pdf",
		MediaType: "application/pdf",
		Data:      []byte("contenido simulado"),
	}
	if err := machine.SubmitFile(ctx, doc); err != nil {
		log.Fatalf("file handoff failed: %v", err)
	}
	render()

	// Q&A until the counter trips the quiz
	for i := 1; i <= conversation.DefaultQuizThreshold; i++ {
		say(fmt.Sprintf("Pregunta número %d sobre el documento", i))
	}

	// Quiz: always pick the first option
	state := machine.Snapshot()
	for state.Quiz != nil {
		sysColor.Printf("QUIZ %d/%d: %s\n", state.Quiz.Index+1, state.Quiz.Total, state.Quiz.Question)
		machine.SelectQuizOption(state.Quiz.Options[0])
		machine.AdvanceQuiz(ctx)
		render()
		state = machine.Snapshot()
	}

	// Report handshake
	if err := machine.StartReport(ctx); err != nil {
		log.Fatalf("report start failed: %v", err)
	}
	render()
	say("sí")
	say("facilitador@acme.com")

	report, ok := machine.Report()
	if !ok {
		log.Fatal("report not ready")
	}

	sysColor.Printf("\n--- Report for %s (%d/%d) ---\n", report.Recipient, report.CorrectCount, report.Total)
	fmt.Println(report.Body)
}
