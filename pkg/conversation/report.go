package conversation

import (
	"fmt"
	"strings"

	"ai-facilitator-be/internal/i18n"
)

// Report is the composed facilitator report. ComposeReport is pure and
// deterministic: identical inputs produce a structurally identical
// report with a byte-identical body.
type Report struct {
	Recipient    string       `json:"recipient"`
	Subject      string       `json:"subject"`
	Body         string       `json:"body"`
	Profile      Profile      `json:"profile"`
	CorrectCount int          `json:"correct_count"`
	Total        int          `json:"total"`
	Items        []ReportItem `json:"items"`
}

type ReportItem struct {
	Question      string `json:"question"`
	UserAnswer    string `json:"user_answer"`
	CorrectAnswer string `json:"correct_answer"`
	Correct       bool   `json:"correct"`
}

func ComposeReport(profile Profile, results []ScoredResult, recipient string, lang i18n.Language) Report {
	items := make([]ReportItem, len(results))
	correct := 0
	for i, r := range results {
		if r.Correct {
			correct++
		}
		items[i] = ReportItem{
			Question:      r.Question,
			UserAnswer:    r.UserAnswer,
			CorrectAnswer: r.CorrectAnswer,
			Correct:       r.Correct,
		}
	}

	t := func(key i18n.Key) string { return i18n.T(lang, key, nil) }

	var b strings.Builder
	b.WriteString(t(i18n.KeyReportUserData) + "\n")
	fmt.Fprintf(&b, "%s: %s\n", t(i18n.KeyReportName), profile.Name)
	fmt.Fprintf(&b, "%s: %s\n", t(i18n.KeyReportCompany), profile.Company)
	fmt.Fprintf(&b, "%s: %s\n", t(i18n.KeyReportJob), profile.JobTitle)
	fmt.Fprintf(&b, "%s: %s\n", t(i18n.KeyReportPhone), profile.Phone)
	fmt.Fprintf(&b, "%s: %s\n", t(i18n.KeyReportEmail), profile.Email)
	fmt.Fprintf(&b, "%s: %s\n\n", t(i18n.KeyReportTopic), profile.Topic)

	b.WriteString(t(i18n.KeyReportResults) + "\n")
	fmt.Fprintf(&b, "%s: %d / %d\n\n", t(i18n.KeyReportScore), correct, len(items))

	for i, item := range items {
		verdict := t(i18n.KeyReportVerdictWrong)
		if item.Correct {
			verdict = t(i18n.KeyReportVerdictCorrect)
		}
		fmt.Fprintf(&b, "%s %d: %s\n", t(i18n.KeyReportQuestion), i+1, item.Question)
		fmt.Fprintf(&b, "%s: %s\n", t(i18n.KeyReportUserAnswer), item.UserAnswer)
		fmt.Fprintf(&b, "%s: %s\n", t(i18n.KeyReportCorrectAnswer), item.CorrectAnswer)
		fmt.Fprintf(&b, "%s: %s\n\n", t(i18n.KeyReportVerdict), verdict)
	}

	return Report{
		Recipient:    recipient,
		Subject:      i18n.T(lang, i18n.KeyReportSubject, map[string]string{"topic": profile.Topic}),
		Body:         b.String(),
		Profile:      profile,
		CorrectCount: correct,
		Total:        len(items),
		Items:        items,
	}
}
