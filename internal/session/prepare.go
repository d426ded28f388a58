package session

import (
	"slices"

	"github.com/stemsi/quizmaster-backend/internal/model"
)

// Preparer builds session question sequences.
type Preparer struct {
	src RandSource
}

// NewPreparer creates a Preparer drawing randomness from src.
// A nil src falls back to GlobalSource.
func NewPreparer(src RandSource) *Preparer {
	if src == nil {
		src = GlobalSource
	}
	return &Preparer{src: src}
}

// Prepare selects, orders and optionally shuffles the questions of one session.
//
// Selection is by specific ids when any are given (bank order kept, not id-list order),
// else by the enabled range over positions, else the whole bank. Question order and each
// question's option order are then shuffled independently when requested. The input is
// never modified; ids, texts and correct answers are carried over unchanged.
// The range is not validated here and an empty result is valid.
func (p *Preparer) Prepare(questions []model.QuizQuestion, settings model.QuizSettings) []model.QuizQuestion {
	selected := selectQuestions(questions, settings)

	if settings.ShuffleQuestions {
		selected = Shuffle(p.src, selected)
	}

	for i := range selected {
		if settings.ShuffleAnswers {
			selected[i].Options = Shuffle(p.src, selected[i].Options)
		} else {
			selected[i].Options = slices.Clone(selected[i].Options)
		}
	}
	return selected
}

func selectQuestions(questions []model.QuizQuestion, settings model.QuizSettings) []model.QuizQuestion {
	if len(settings.SpecificQuestionIDs) > 0 {
		wanted := make(map[int]struct{}, len(settings.SpecificQuestionIDs))
		for _, id := range settings.SpecificQuestionIDs {
			wanted[id] = struct{}{}
		}
		out := make([]model.QuizQuestion, 0, len(wanted))
		for _, q := range questions {
			if _, ok := wanted[q.ID]; ok {
				out = append(out, q)
			}
		}
		return out
	}

	if settings.QuestionRange.Enabled {
		lo := clamp(settings.QuestionRange.Start-1, 0, len(questions))
		hi := clamp(settings.QuestionRange.End, lo, len(questions))
		return slices.Clone(questions[lo:hi])
	}

	return slices.Clone(questions)
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
