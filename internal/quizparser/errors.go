package quizparser

import "errors"

// Parse errors. Their text is shown to the uploader verbatim.
var (
	ErrMissingQuizName      = errors.New(`quiz name not found. Please start your quiz with "# QUIZ: Your Quiz Name"`)
	ErrEmptyQuizName        = errors.New(`quiz name is empty. Please provide a quiz name after "# QUIZ:"`)
	ErrNoValidQuestions     = errors.New("no valid questions found. Please check your quiz format")
	ErrMissingCorrectAnswer = errors.New("question has no valid correct answer")
)

// WarnMissingCorrectAnswer is reported when a question's answer was defaulted to "A"
// or names a label that none of its options carry.
const WarnMissingCorrectAnswer = "MISSING_CORRECT_ANSWER"

// Warning is a non-fatal finding attached to a parsed question.
type Warning struct {
	QuestionID int    `json:"question_id"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}
