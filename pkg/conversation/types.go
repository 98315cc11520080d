package conversation

import "errors"

// Document is the decoded uploaded document used as grounding for
// generated answers and quizzes. Created once during the file handoff
// and immutable afterwards.
type Document struct {
	Name      string
	MediaType string
	Data      []byte
}

// Profile holds the six intake fields. Each is written exactly once,
// in stage order, and never revised by the machine.
type Profile struct {
	Name     string
	Company  string
	JobTitle string
	Phone    string
	Email    string
	Topic    string
}

var (
	// ErrBusy is returned when input arrives while a generation call
	// is still in flight for this conversation.
	ErrBusy = errors.New("conversation: generation in progress")

	// ErrWrongStage is returned when an operation is not valid for the
	// current stage (e.g. a file upload outside FILE_UPLOAD).
	ErrWrongStage = errors.New("conversation: operation not valid in current stage")
)
