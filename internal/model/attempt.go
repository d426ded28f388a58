package model

import (
	"time"

	"github.com/google/uuid"
)

// QuizAnswer records the player's choice for one question of an attempt.
type QuizAnswer struct {
	QuestionIndex  int    `json:"question_index"`
	QuestionID     int    `json:"question_id"`
	SelectedAnswer string `json:"selected_answer"`
	CorrectAnswer  string `json:"correct_answer"`
	IsCorrect      bool   `json:"is_correct"`
	QuestionText   string `json:"question_text"`
}

// QuizAttempt is one completed playthrough.
type QuizAttempt struct {
	ID             uuid.UUID    `json:"id"`
	QuizID         uuid.UUID    `json:"quiz_id"`
	QuizName       string       `json:"quiz_name"`
	Score          int          `json:"score"`
	TotalQuestions int          `json:"total_questions"`
	TimeSpent      int          `json:"time_spent"`
	CompletedAt    time.Time    `json:"completed_at"`
	Answers        []QuizAnswer `json:"answers"`
}

// CorrectCount returns the number of correctly answered questions.
func (a *QuizAttempt) CorrectCount() int {
	n := 0
	for _, ans := range a.Answers {
		if ans.IsCorrect {
			n++
		}
	}
	return n
}

// SubmitAttemptRequest is the payload for submitting a finished attempt.
type SubmitAttemptRequest struct {
	TimeSpent int                   `json:"time_spent" binding:"min=0"`
	Answers   []SubmittedAnswerItem `json:"answers" binding:"required,min=1,dive"`
}

// SubmittedAnswerItem is one answered question in presentation order.
type SubmittedAnswerItem struct {
	QuestionID     int    `json:"question_id" binding:"required,min=1"`
	SelectedAnswer string `json:"selected_answer" binding:"required,option_label"`
}

// AttemptResult is returned after grading an attempt.
type AttemptResult struct {
	Attempt *QuizAttempt `json:"attempt"`
	Badge   Badge        `json:"badge"`
}
