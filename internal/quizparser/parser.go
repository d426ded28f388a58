// Package quizparser turns plain text extracted from an uploaded quiz file into
// a question bank. Three authoring formats are recognised; see Detect.
package quizparser

import (
	"fmt"

	"github.com/stemsi/quizmaster-backend/internal/model"
)

// Result is the outcome of a successful parse.
//
// Warnings lists questions whose answer was defaulted or names no option. Unless
// StrictAnswers is set, such a question is kept as is, so its stored CorrectAnswer
// may be a label no option carries and cannot be answered correctly.
type Result struct {
	Name      string               `json:"name"`
	Format    FormatKind           `json:"-"`
	Questions []model.QuizQuestion `json:"questions"`
	Warnings  []Warning            `json:"warnings,omitempty"`
}

// Options tunes parsing.
type Options struct {
	// StrictAnswers rejects documents in which any question lacks a usable correct answer
	// instead of defaulting it to "A".
	StrictAnswers bool
}

// Parse detects the format of text and parses it with default options.
// baseName is the uploaded file name without directory or extension; formats that do
// not carry a title use it as the quiz name.
func Parse(text, baseName string) (*Result, error) {
	return ParseWithOptions(text, baseName, Options{})
}

// ParseWithOptions is Parse with explicit options.
func ParseWithOptions(text, baseName string, opts Options) (*Result, error) {
	format := Detect(text)

	var (
		res *Result
		err error
	)
	switch format {
	case FormatDelimiterBlock:
		res, err = parseDelimiterBlock(text, baseName)
	case FormatAsteriskMarked:
		res, err = parseAsteriskMarked(text, baseName)
	default:
		res, err = parseDefault(text)
	}
	if err != nil {
		return nil, err
	}
	res.Format = format

	if opts.StrictAnswers && len(res.Warnings) > 0 {
		w := res.Warnings[0]
		return nil, fmt.Errorf("%w: question %d: %s", ErrMissingCorrectAnswer, w.QuestionID, w.Message)
	}
	return res, nil
}

func buildResult(name string, acc *accumulator) (*Result, error) {
	questions, warnings := acc.finish()
	if len(questions) == 0 {
		return nil, ErrNoValidQuestions
	}
	return &Result{Name: name, Questions: questions, Warnings: warnings}, nil
}
