package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Quiz file ─────────────────────────────────────────────────────
	ErrUnsupportedFileFormat ErrCode = "UNSUPPORTED_FILE_FORMAT"
	ErrEmptyQuizName         ErrCode = "EMPTY_QUIZ_NAME"
	ErrMissingQuizName       ErrCode = "MISSING_QUIZ_NAME"
	ErrNoValidQuestions      ErrCode = "NO_VALID_QUESTIONS"
	ErrMissingCorrectAnswer  ErrCode = "MISSING_CORRECT_ANSWER"

	// ─── Session ───────────────────────────────────────────────────────
	ErrInvalidRange     ErrCode = "INVALID_RANGE"
	ErrNoQuestionsInSet ErrCode = "NO_QUESTIONS_SELECTED"
	ErrUnknownQuestion  ErrCode = "UNKNOWN_QUESTION"
	ErrDuplicateAnswer  ErrCode = "DUPLICATE_ANSWER"
	ErrNothingToRetry   ErrCode = "NOTHING_TO_RETRY"
	ErrSessionNotFound  ErrCode = "SESSION_NOT_FOUND"

	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation ErrCode = "VALIDATION_ERROR"
	ErrInvalidID  ErrCode = "INVALID_ID"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound ErrCode = "NOT_FOUND"

	// ─── Upload ────────────────────────────────────────────────────────
	ErrFileRequired ErrCode = "FILE_REQUIRED"
	ErrFileTooLarge ErrCode = "FILE_TOO_LARGE"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	// ─── Quiz file ─────────────────────────────────────────────────────
	case ErrUnsupportedFileFormat:
		return "Unsupported file format. Please use .txt, .docx, or .pdf."
	case ErrEmptyQuizName:
		return "Quiz name cannot be empty."
	case ErrMissingQuizName:
		return "Quiz name not found. The first line should be \"# QUIZ: Your Quiz Name\"."
	case ErrNoValidQuestions:
		return "No valid questions found. Please check your quiz format."
	case ErrMissingCorrectAnswer:
		return "A question has no valid correct answer."

	// ─── Session ───────────────────────────────────────────────────────
	case ErrInvalidRange:
		return "Invalid question range."
	case ErrNoQuestionsInSet:
		return "The chosen settings select no questions."
	case ErrUnknownQuestion:
		return "An answer refers to a question that is not part of this quiz."
	case ErrDuplicateAnswer:
		return "A question was answered more than once."
	case ErrNothingToRetry:
		return "Every question was answered correctly, nothing to retry."
	case ErrSessionNotFound:
		return "Session not found or already started."

	// ─── Validation ────────────────────────────────────────────────────
	case ErrValidation:
		return "Request validation failed."
	case ErrInvalidID:
		return "Invalid ID format."

	// ─── Resources ─────────────────────────────────────────────────────
	case ErrNotFound:
		return "The requested resource was not found."

	// ─── Upload ────────────────────────────────────────────────────────
	case ErrFileRequired:
		return "A quiz file is required."
	case ErrFileTooLarge:
		return "File exceeds the maximum allowed size."

	// ─── Rate Limiting ─────────────────────────────────────────────────
	case ErrRateLimitExceeded:
		return "Too many requests. Please try again later."

	// ─── Server ────────────────────────────────────────────────────────
	case ErrInternal:
		return "An internal server error occurred."

	default:
		return "An unknown error occurred."
	}
}
