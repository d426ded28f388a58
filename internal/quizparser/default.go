package quizparser

import (
	"regexp"
	"strings"
)

var (
	titleLine           = regexp.MustCompile(`(?i)^#\s*QUIZ:(.*)$`)
	defaultQuestionLine = regexp.MustCompile(`(?i)^Q(\d+):\s*(.+)$`)
	defaultOptionLine   = regexp.MustCompile(`(?i)^([A-D])\)\s*(.+)$`)
	answerLine          = regexp.MustCompile(`(?i)^ANSWER:\s*([A-D])`)
)

// parseDefault handles:
//
//	# QUIZ: Arithmetic
//	Q1: What is 2+2?
//	A) 3
//	B) 4
//	ANSWER: B
//
// The number after Q is a marker only; ids come from the order of surviving questions.
// A block needs one option to survive. Unrecognised lines are ignored.
func parseDefault(text string) (*Result, error) {
	lines := nonBlankLines(text)

	name, found := "", false
	for _, line := range lines {
		if m := titleLine.FindStringSubmatch(line); m != nil {
			name, found = strings.TrimSpace(m[1]), true
			break
		}
	}
	if !found {
		return nil, ErrMissingQuizName
	}
	if name == "" {
		return nil, ErrEmptyQuizName
	}

	acc := newAccumulator(1)
	for _, line := range lines {
		if titleLine.MatchString(line) {
			continue
		}

		if m := defaultQuestionLine.FindStringSubmatch(line); m != nil {
			acc.start(strings.TrimSpace(m[2]))
			continue
		}

		if !acc.open() {
			continue
		}

		if m := defaultOptionLine.FindStringSubmatch(line); m != nil {
			acc.addOption(strings.ToUpper(m[1]), strings.TrimSpace(m[2]))
			continue
		}

		if m := answerLine.FindStringSubmatch(line); m != nil {
			acc.markCorrect(strings.ToUpper(m[1]))
		}
	}

	return buildResult(name, acc)
}
