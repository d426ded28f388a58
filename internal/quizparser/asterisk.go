package quizparser

import (
	"regexp"
	"strings"
)

const sourceURLPrefix = "SourceURL:"

var (
	asteriskQuestionLine = regexp.MustCompile(`^(\d+)\.\s*(.+)$`)
	asteriskOptionLine   = regexp.MustCompile(`(?i)^(\*)?([A-D])\)\s*(.+)$`)
)

// parseAsteriskMarked handles numbered questions whose correct option is prefixed
// with an asterisk:
//
//	1. Capital of France?
//	A) Berlin
//	*B) Paris
//
// A block needs two options to survive.
func parseAsteriskMarked(text, baseName string) (*Result, error) {
	acc := newAccumulator(2)

	for _, line := range nonBlankLines(text) {
		if strings.HasPrefix(line, sourceURLPrefix) {
			continue
		}

		if m := asteriskQuestionLine.FindStringSubmatch(line); m != nil {
			acc.start(strings.TrimSpace(m[2]))
			continue
		}

		m := asteriskOptionLine.FindStringSubmatch(line)
		if m == nil || !acc.open() {
			continue
		}
		label := strings.ToUpper(m[2])
		if acc.addOption(label, strings.TrimSpace(m[3])) && m[1] == "*" {
			acc.markCorrect(label)
		}
	}

	return buildResult(baseName, acc)
}
