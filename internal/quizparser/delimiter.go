package quizparser

import (
	"regexp"
	"strings"
)

const maxOptions = 4

var (
	optionLabels   = [maxOptions]string{"A", "B", "C", "D"}
	numberedPrefix = regexp.MustCompile(`^\d+\.\s*(.+)$`)
)

// parseDelimiterBlock handles documents where "+++++" separates questions and each
// option line starts with "=====" ("=====#" for the correct one). Labels are assigned by
// position, never read from the text. Only the first four options of a block are read
// and a block needs two options to survive.
func parseDelimiterBlock(text, baseName string) (*Result, error) {
	acc := newAccumulator(2)

	for _, block := range strings.Split(text, blockSeparator) {
		lines := nonBlankLines(block)
		if len(lines) == 0 {
			continue
		}

		acc.start(stripNumbering(lines[0]))

		labelIndex := 0
		for _, line := range lines[1:] {
			if labelIndex >= maxOptions {
				break
			}

			correct := false
			var optText string
			switch {
			case strings.HasPrefix(line, correctOptionPrefix):
				correct = true
				optText = strings.TrimSpace(strings.TrimPrefix(line, correctOptionPrefix))
			case strings.HasPrefix(line, optionPrefix):
				optText = strings.TrimSpace(strings.TrimPrefix(line, optionPrefix))
			default:
				continue
			}
			if optText == "" {
				continue
			}

			label := optionLabels[labelIndex]
			acc.addOption(label, optText)
			if correct {
				acc.markCorrect(label)
			}
			labelIndex++
		}
	}

	return buildResult(baseName, acc)
}

func stripNumbering(line string) string {
	if m := numberedPrefix.FindStringSubmatch(line); m != nil {
		return strings.TrimSpace(m[1])
	}
	return line
}
