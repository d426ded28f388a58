package model

import (
	"time"

	"github.com/google/uuid"
)

// QuestionOption is one labelled answer choice.
type QuestionOption struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

// QuizQuestion is a single parsed multiple-choice question.
// ID is 1-based and assigned in document order at parse time.
type QuizQuestion struct {
	ID            int              `json:"id"`
	Question      string           `json:"question"`
	Options       []QuestionOption `json:"options"`
	CorrectAnswer string           `json:"correct_answer"`
}

// HasLabel reports whether label names one of the question's options.
func (q QuizQuestion) HasLabel(label string) bool {
	for _, o := range q.Options {
		if o.Label == label {
			return true
		}
	}
	return false
}

// Quiz represents a parsed, stored question bank.
type Quiz struct {
	ID            uuid.UUID      `json:"id"`
	Name          string         `json:"name"`
	Format        string         `json:"format"`
	Questions     []QuizQuestion `json:"questions"`
	CreatedAt     time.Time      `json:"created_at"`
	LastPlayed    *time.Time     `json:"last_played,omitempty"`
	TotalAttempts int            `json:"total_attempts"`
	BestScore     int            `json:"best_score"`
}

// QuizSummary is the list view of a quiz (questions omitted).
type QuizSummary struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	Format        string     `json:"format"`
	QuestionCount int        `json:"question_count"`
	CreatedAt     time.Time  `json:"created_at"`
	LastPlayed    *time.Time `json:"last_played,omitempty"`
	TotalAttempts int        `json:"total_attempts"`
	BestScore     int        `json:"best_score"`
}
