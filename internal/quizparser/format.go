package quizparser

import (
	"regexp"
	"strings"
)

// FormatKind identifies one of the supported quiz authoring conventions.
type FormatKind int

const (
	// FormatDefault is the "# QUIZ:" / "Q1:" / "A)" / "ANSWER:" layout.
	FormatDefault FormatKind = iota
	// FormatDelimiterBlock separates questions with "+++++" and options with "=====".
	FormatDelimiterBlock
	// FormatAsteriskMarked numbers questions "1." and stars the correct option "*B)".
	FormatAsteriskMarked
)

const (
	blockSeparator      = "+++++"
	optionPrefix        = "====="
	correctOptionPrefix = "=====#"
)

var asteriskMarker = regexp.MustCompile(`\*[A-D]\)`)

// String returns the stable name stored alongside a quiz.
func (k FormatKind) String() string {
	switch k {
	case FormatDelimiterBlock:
		return "delimiter_block"
	case FormatAsteriskMarked:
		return "asterisk_marked"
	default:
		return "default"
	}
}

// Detect classifies raw text. Checks run in a fixed order and the first match wins,
// so a text carrying both delimiter and asterisk markers is a delimiter-block document.
func Detect(text string) FormatKind {
	if strings.Contains(text, blockSeparator) && strings.Contains(text, optionPrefix) {
		return FormatDelimiterBlock
	}
	if asteriskMarker.MatchString(text) {
		return FormatAsteriskMarked
	}
	return FormatDefault
}
