package quizparser

import (
	"fmt"
	"strings"

	"github.com/stemsi/quizmaster-backend/internal/model"
)

const defaultCorrectAnswer = "A"

type partialQuestion struct {
	text    string
	options []model.QuestionOption
	correct string
}

// accumulator folds a sequence of question/option events into completed questions.
// A block is only kept when flushed with non-empty text and at least minOptions options;
// ids are the running count of kept blocks.
type accumulator struct {
	minOptions int
	current    *partialQuestion
	completed  []model.QuizQuestion
	warnings   []Warning
}

func newAccumulator(minOptions int) *accumulator {
	return &accumulator{minOptions: minOptions}
}

// start flushes the open block and opens a new one.
func (a *accumulator) start(text string) {
	a.flush()
	a.current = &partialQuestion{text: text}
}

func (a *accumulator) open() bool {
	return a.current != nil
}

// addOption appends an option to the open block. Repeated labels keep the first occurrence.
func (a *accumulator) addOption(label, text string) bool {
	if a.current == nil {
		return false
	}
	for _, o := range a.current.options {
		if o.Label == label {
			return false
		}
	}
	a.current.options = append(a.current.options, model.QuestionOption{Label: label, Text: text})
	return true
}

func (a *accumulator) markCorrect(label string) {
	if a.current != nil {
		a.current.correct = label
	}
}

func (a *accumulator) flush() {
	cur := a.current
	a.current = nil
	if cur == nil || cur.text == "" || len(cur.options) < a.minOptions {
		return
	}

	q := model.QuizQuestion{
		ID:            len(a.completed) + 1,
		Question:      cur.text,
		Options:       cur.options,
		CorrectAnswer: cur.correct,
	}

	switch {
	case q.CorrectAnswer == "":
		q.CorrectAnswer = defaultCorrectAnswer
		a.warn(q.ID, fmt.Sprintf("no correct answer marked, defaulted to %q", defaultCorrectAnswer))
	case !q.HasLabel(q.CorrectAnswer):
		a.warn(q.ID, fmt.Sprintf("correct answer %q matches none of the options", q.CorrectAnswer))
	}

	a.completed = append(a.completed, q)
}

func (a *accumulator) warn(id int, msg string) {
	a.warnings = append(a.warnings, Warning{QuestionID: id, Code: WarnMissingCorrectAnswer, Message: msg})
}

// finish flushes the last open block and returns everything kept.
func (a *accumulator) finish() ([]model.QuizQuestion, []Warning) {
	a.flush()
	return a.completed, a.warnings
}

// nonBlankLines splits on newlines, trims each line and drops blank ones.
func nonBlankLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}
