package conversation

// Stage is the current phase of the scripted conversation. The intake
// stages run linearly, branch into the file handoff, loop through the
// Q&A/quiz cycle and finish with the report handshake.
type Stage int

const (
	StageCollectName Stage = iota
	StageCollectCompany
	StageCollectJob
	StageCollectPhone
	StageCollectEmail
	StageCollectTopic
	StageFileUpload
	StageProcessingFile
	StageQAndA
	StageQuizLoading
	StageQuizActive
	StageQuizResults
	StageAskSendReport
	StageCollectFacilitatorEmail
	StageCompleted
)

func (s Stage) String() string {
	switch s {
	case StageCollectName:
		return "COLLECT_NAME"
	case StageCollectCompany:
		return "COLLECT_COMPANY"
	case StageCollectJob:
		return "COLLECT_JOB"
	case StageCollectPhone:
		return "COLLECT_PHONE"
	case StageCollectEmail:
		return "COLLECT_EMAIL"
	case StageCollectTopic:
		return "COLLECT_TOPIC"
	case StageFileUpload:
		return "FILE_UPLOAD"
	case StageProcessingFile:
		return "PROCESSING_FILE"
	case StageQAndA:
		return "Q_AND_A"
	case StageQuizLoading:
		return "QUIZ_LOADING"
	case StageQuizActive:
		return "QUIZ_ACTIVE"
	case StageQuizResults:
		return "QUIZ_RESULTS"
	case StageAskSendReport:
		return "ASK_SEND_REPORT"
	case StageCollectFacilitatorEmail:
		return "COLLECT_FACILITATOR_EMAIL"
	case StageCompleted:
		return "COMPLETED"
	default:
		return "UNKNOWN"
	}
}
