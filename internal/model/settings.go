package model

import (
	"time"

	"github.com/google/uuid"
)

// QuestionRange selects a contiguous, 1-based inclusive slice of the bank.
type QuestionRange struct {
	Enabled bool `json:"enabled"`
	Start   int  `json:"start"`
	End     int  `json:"end"`
}

// QuizSettings configures one play session.
// SpecificQuestionIDs, when non-empty, takes precedence over QuestionRange.
type QuizSettings struct {
	ShuffleQuestions    bool          `json:"shuffle_questions"`
	ShuffleAnswers      bool          `json:"shuffle_answers"`
	FastMode            bool          `json:"fast_mode"`
	QuestionRange       QuestionRange `json:"question_range"`
	SpecificQuestionIDs []int         `json:"specific_question_ids,omitempty"`
}

// PrepareSessionRequest is the payload for preparing a play session.
type PrepareSessionRequest struct {
	ShuffleQuestions    bool                  `json:"shuffle_questions"`
	ShuffleAnswers      bool                  `json:"shuffle_answers"`
	FastMode            bool                  `json:"fast_mode"`
	QuestionRange       *QuestionRangeRequest `json:"question_range" binding:"omitempty"`
	SpecificQuestionIDs []int                 `json:"specific_question_ids" binding:"omitempty,dive,min=1"`
}

// QuestionRangeRequest carries the raw range bounds; bounds are checked by the range validator.
type QuestionRangeRequest struct {
	Enabled bool `json:"enabled"`
	Start   int  `json:"start"`
	End     int  `json:"end"`
}

// Settings converts the request into QuizSettings.
func (r PrepareSessionRequest) Settings() QuizSettings {
	s := QuizSettings{
		ShuffleQuestions:    r.ShuffleQuestions,
		ShuffleAnswers:      r.ShuffleAnswers,
		FastMode:            r.FastMode,
		SpecificQuestionIDs: r.SpecificQuestionIDs,
	}
	if r.QuestionRange != nil {
		s.QuestionRange = QuestionRange(*r.QuestionRange)
	}
	return s
}

// PreparedSession is the one-shot handoff of a prepared question sequence to the play UI.
// It is held in Redis with a TTL and never persisted.
type PreparedSession struct {
	SessionID uuid.UUID      `json:"session_id"`
	QuizID    uuid.UUID      `json:"quiz_id"`
	QuizName  string         `json:"quiz_name"`
	FastMode  bool           `json:"fast_mode"`
	Questions []QuizQuestion `json:"questions"`
	CreatedAt time.Time      `json:"created_at"`
}
