// Package i18n holds the localized conversation texts and the language
// utilities used by the conversation core. Lookup is a pure function: a
// missing key is a programming error and is returned verbatim so it shows
// up loudly in the UI instead of crashing the conversation.
package i18n

import "strings"

type Language string

const (
	LanguageEnglish Language = "en"
	LanguageSpanish Language = "es"

	DefaultLanguage = LanguageSpanish
)

// ParseLanguage normalizes a client-supplied language tag.
func ParseLanguage(s string) (Language, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "en", "en-us", "en-gb":
		return LanguageEnglish, true
	case "es", "es-es", "es-mx", "":
		return LanguageSpanish, true
	default:
		return DefaultLanguage, false
	}
}

// Key identifies one translatable text.
type Key string

const (
	KeyWelcome              Key = "welcome"
	KeyAskCompany           Key = "ask_company"
	KeyAskJob               Key = "ask_job"
	KeyAskPhone             Key = "ask_phone"
	KeyAskEmail             Key = "ask_email"
	KeyAskTopic             Key = "ask_topic"
	KeyAskFile              Key = "ask_file"
	KeyFileTooLarge         Key = "file_too_large"
	KeyFileReceived         Key = "file_received"
	KeyFileReviewed         Key = "file_reviewed"
	KeyErrorGeneric         Key = "error_generic"
	KeyGeneratingQuiz       Key = "generating_quiz"
	KeyQuizTriggerCount     Key = "quiz_trigger_count"
	KeyQuizTriggerIdle      Key = "quiz_trigger_idle"
	KeyQuizError            Key = "quiz_error"
	KeyQuizCompleted        Key = "quiz_completed"
	KeyAskSendReport        Key = "ask_send_report"
	KeyAskFacilitatorEmail  Key = "ask_facilitator_email"
	KeySentSuccess          Key = "sent_success"
	KeyReadyToSend          Key = "ready_to_send"
	KeyReportSubject        Key = "report_subject"
	KeyReportUserData       Key = "report_user_data"
	KeyReportName           Key = "report_name"
	KeyReportCompany        Key = "report_company"
	KeyReportJob            Key = "report_job"
	KeyReportPhone          Key = "report_phone"
	KeyReportEmail          Key = "report_email"
	KeyReportTopic          Key = "report_topic"
	KeyReportResults        Key = "report_results"
	KeyReportScore          Key = "report_score"
	KeyReportQuestion       Key = "report_question"
	KeyReportUserAnswer     Key = "report_user_answer"
	KeyReportCorrectAnswer  Key = "report_correct_answer"
	KeyReportVerdict        Key = "report_verdict"
	KeyReportVerdictCorrect Key = "report_verdict_correct"
	KeyReportVerdictWrong   Key = "report_verdict_wrong"
)

// T resolves key for lang, applying {placeholder} substitutions.
// Total: unknown languages fall back to the default table, unknown keys
// return the key itself.
func T(lang Language, key Key, subs map[string]string) string {
	table, ok := translations[lang]
	if !ok {
		table = translations[DefaultLanguage]
	}
	text, ok := table[key]
	if !ok {
		return string(key)
	}
	for placeholder, value := range subs {
		text = strings.ReplaceAll(text, "{"+placeholder+"}", value)
	}
	return text
}
