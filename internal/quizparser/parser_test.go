package quizparser

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/stemsi/quizmaster-backend/internal/model"
)

func opts(pairs ...string) []model.QuestionOption {
	out := make([]model.QuestionOption, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, model.QuestionOption{Label: pairs[i], Text: pairs[i+1]})
	}
	return out
}

func mustParse(t *testing.T, text, baseName string) *Result {
	t.Helper()
	res, err := Parse(text, baseName)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return res
}

func TestParseMinimalDocumentPerFormat(t *testing.T) {
	docs := []struct {
		name   string
		text   string
		format FormatKind
	}{
		{"default", "# QUIZ: Mini\nQ1: Yes?\nA) yes\nB) no\nANSWER: A", FormatDefault},
		{"delimiter", "Yes?\n=====#yes\n=====no\n+++++", FormatDelimiterBlock},
		{"asterisk", "1. Yes?\n*A) yes\nB) no", FormatAsteriskMarked},
	}

	for _, d := range docs {
		t.Run(d.name, func(t *testing.T) {
			res := mustParse(t, d.text, "mini")
			if res.Format != d.format {
				t.Fatalf("Format = %v, want %v", res.Format, d.format)
			}
			if len(res.Questions) != 1 {
				t.Fatalf("got %d questions, want 1", len(res.Questions))
			}
			q := res.Questions[0]
			if len(q.Options) != 2 {
				t.Fatalf("got %d options, want 2", len(q.Options))
			}
			if !q.HasLabel(q.CorrectAnswer) {
				t.Fatalf("correct answer %q not among options %+v", q.CorrectAnswer, q.Options)
			}
			if q.ID != 1 {
				t.Fatalf("ID = %d, want 1", q.ID)
			}
		})
	}
}

func TestParseDefaultRoundTrip(t *testing.T) {
	text := `# QUIZ: Arithmetic
Q1: What is 2+2?
A) 3
B) 4
C) 5
D) 6
ANSWER: B`

	res := mustParse(t, text, "ignored")
	if res.Name != "Arithmetic" {
		t.Fatalf("Name = %q, want Arithmetic", res.Name)
	}
	want := model.QuizQuestion{
		ID:            1,
		Question:      "What is 2+2?",
		Options:       opts("A", "3", "B", "4", "C", "5", "D", "6"),
		CorrectAnswer: "B",
	}
	if !reflect.DeepEqual(res.Questions, []model.QuizQuestion{want}) {
		t.Fatalf("Questions = %+v, want %+v", res.Questions, want)
	}
	if len(res.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %+v", res.Warnings)
	}
}

func TestParseDefault(t *testing.T) {
	t.Run("title variants", func(t *testing.T) {
		for _, title := range []string{"#QUIZ: Named", "# quiz:   Named  ", "#   Quiz:Named"} {
			res := mustParse(t, title+"\nQ1: q\nA) a", "")
			if res.Name != "Named" {
				t.Errorf("title %q: Name = %q, want Named", title, res.Name)
			}
		}
	})

	t.Run("missing title", func(t *testing.T) {
		_, err := Parse("Q1: q\nA) a\nANSWER: A", "file")
		if !errors.Is(err, ErrMissingQuizName) {
			t.Fatalf("err = %v, want ErrMissingQuizName", err)
		}
	})

	t.Run("empty title", func(t *testing.T) {
		_, err := Parse("# QUIZ:   \nQ1: q\nA) a", "file")
		if !errors.Is(err, ErrEmptyQuizName) {
			t.Fatalf("err = %v, want ErrEmptyQuizName", err)
		}
	})

	t.Run("title only", func(t *testing.T) {
		_, err := Parse("# QUIZ: Nothing here\nsome prose\nmore prose", "file")
		if !errors.Is(err, ErrNoValidQuestions) {
			t.Fatalf("err = %v, want ErrNoValidQuestions", err)
		}
	})

	t.Run("missing answer defaults to A with warning", func(t *testing.T) {
		res := mustParse(t, "# QUIZ: x\nQ1: q\nA) a\nB) b", "")
		if got := res.Questions[0].CorrectAnswer; got != "A" {
			t.Fatalf("CorrectAnswer = %q, want A", got)
		}
		if len(res.Warnings) != 1 || res.Warnings[0].QuestionID != 1 || res.Warnings[0].Code != WarnMissingCorrectAnswer {
			t.Fatalf("Warnings = %+v", res.Warnings)
		}
	})

	t.Run("blocks without options are dropped and ids stay sequential", func(t *testing.T) {
		text := `# QUIZ: Numbers
Q1: first
a) one
answer: a
Q5: no options here
Q2: second
A) two
B) deux
ANSWER: b
Q9: third
C) three`
		res := mustParse(t, text, "")
		if len(res.Questions) != 3 {
			t.Fatalf("got %d questions, want 3", len(res.Questions))
		}
		for i, q := range res.Questions {
			if q.ID != i+1 {
				t.Errorf("question %d has ID %d", i, q.ID)
			}
		}
		if res.Questions[0].Options[0].Label != "A" || res.Questions[0].CorrectAnswer != "A" {
			t.Errorf("first question not normalised: %+v", res.Questions[0])
		}
		if res.Questions[1].Question != "second" || res.Questions[1].CorrectAnswer != "B" {
			t.Errorf("second question = %+v", res.Questions[1])
		}
		// "third" has only option C and no answer: kept, defaulted to A, warned.
		if res.Questions[2].CorrectAnswer != "A" || len(res.Warnings) != 1 || res.Warnings[0].QuestionID != 3 {
			t.Errorf("third question = %+v, warnings = %+v", res.Questions[2], res.Warnings)
		}
	})

	t.Run("lines before the first question are ignored", func(t *testing.T) {
		res := mustParse(t, "A) stray\nANSWER: C\n# QUIZ: x\nQ1: q\nA) a\nB) b\nANSWER: B", "")
		if len(res.Questions[0].Options) != 2 || res.Questions[0].CorrectAnswer != "B" {
			t.Fatalf("question = %+v", res.Questions[0])
		}
	})

	t.Run("repeated label keeps first", func(t *testing.T) {
		res := mustParse(t, "# QUIZ: x\nQ1: q\nA) first\nA) second\nB) b\nANSWER: A", "")
		if !reflect.DeepEqual(res.Questions[0].Options, opts("A", "first", "B", "b")) {
			t.Fatalf("Options = %+v", res.Questions[0].Options)
		}
	})

	t.Run("last block is flushed", func(t *testing.T) {
		res := mustParse(t, "# QUIZ: x\r\nQ1: a\r\nA) 1\r\nQ2: b\r\nA) 2\r\n", "")
		if len(res.Questions) != 2 || res.Questions[1].Question != "b" {
			t.Fatalf("Questions = %+v", res.Questions)
		}
	})
}

func TestParseDelimiterBlock(t *testing.T) {
	t.Run("positional labels", func(t *testing.T) {
		text := "1. Pick one\n=====red\n=====#green\n=====blue\n+++++"
		res := mustParse(t, text, "colors")
		q := res.Questions[0]
		if q.Question != "Pick one" {
			t.Fatalf("Question = %q", q.Question)
		}
		if !reflect.DeepEqual(q.Options, opts("A", "red", "B", "green", "C", "blue")) {
			t.Fatalf("Options = %+v", q.Options)
		}
		if q.CorrectAnswer != "B" {
			t.Fatalf("CorrectAnswer = %q, want B", q.CorrectAnswer)
		}
		if res.Name != "colors" {
			t.Fatalf("Name = %q, want colors", res.Name)
		}
	})

	t.Run("moving the correct line first relabels it A", func(t *testing.T) {
		text := "1. Pick one\n=====#green\n=====red\n=====blue\n+++++"
		q := mustParse(t, text, "colors").Questions[0]
		if q.CorrectAnswer != "A" || q.Options[0].Text != "green" {
			t.Fatalf("question = %+v", q)
		}
	})

	t.Run("at most four options", func(t *testing.T) {
		text := "Many\n=====a\n=====b\n=====c\n=====d\n=====#e\n+++++"
		res := mustParse(t, text, "x")
		q := res.Questions[0]
		if len(q.Options) != 4 {
			t.Fatalf("got %d options, want 4", len(q.Options))
		}
		// The fifth line was starred but never read.
		if q.CorrectAnswer != "A" || len(res.Warnings) != 1 {
			t.Fatalf("CorrectAnswer = %q, warnings = %+v", q.CorrectAnswer, res.Warnings)
		}
	})

	t.Run("blocks under two options are dropped", func(t *testing.T) {
		text := "Lonely\n=====#only\n+++++\n\n+++++\n12. Pair\n=====#x\n=====y\nnot an option\n=====   \n+++++"
		res := mustParse(t, text, "x")
		if len(res.Questions) != 1 {
			t.Fatalf("got %d questions, want 1", len(res.Questions))
		}
		if q := res.Questions[0]; q.ID != 1 || q.Question != "Pair" || len(q.Options) != 2 {
			t.Fatalf("question = %+v", q)
		}
	})

	t.Run("no survivors", func(t *testing.T) {
		_, err := Parse("Q\n=====a\n+++++\nR\n=====#b\n+++++", "x")
		if !errors.Is(err, ErrNoValidQuestions) {
			t.Fatalf("err = %v, want ErrNoValidQuestions", err)
		}
	})
}

func TestParseAsteriskMarked(t *testing.T) {
	t.Run("multiple questions", func(t *testing.T) {
		text := `SourceURL: file:///tmp/quiz.docx
1. Capital of France?
A) Berlin
*B) Paris
C) Rome
2. Lonely question
*A) only one
3.   Largest planet?
a) Mars
*d) Jupiter`
		res := mustParse(t, text, "geo")
		if res.Name != "geo" {
			t.Fatalf("Name = %q", res.Name)
		}
		if len(res.Questions) != 2 {
			t.Fatalf("got %d questions, want 2: %+v", len(res.Questions), res.Questions)
		}
		first, second := res.Questions[0], res.Questions[1]
		if first.ID != 1 || first.CorrectAnswer != "B" || len(first.Options) != 3 {
			t.Fatalf("first = %+v", first)
		}
		if second.ID != 2 || second.Question != "Largest planet?" || second.CorrectAnswer != "D" {
			t.Fatalf("second = %+v", second)
		}
		if !reflect.DeepEqual(second.Options, opts("A", "Mars", "D", "Jupiter")) {
			t.Fatalf("second options = %+v", second.Options)
		}
	})

	t.Run("unstarred block defaults to A", func(t *testing.T) {
		// One starred line elsewhere is needed for detection.
		text := "1. a?\n*A) x\nB) y\n2. b?\nA) x\nB) y"
		res := mustParse(t, text, "q")
		if res.Questions[1].CorrectAnswer != "A" {
			t.Fatalf("CorrectAnswer = %q", res.Questions[1].CorrectAnswer)
		}
		if len(res.Warnings) != 1 || res.Warnings[0].QuestionID != 2 {
			t.Fatalf("Warnings = %+v", res.Warnings)
		}
	})

	t.Run("no survivors", func(t *testing.T) {
		_, err := Parse("1. only\n*A) one", "x")
		if !errors.Is(err, ErrNoValidQuestions) {
			t.Fatalf("err = %v, want ErrNoValidQuestions", err)
		}
	})
}

func TestParseStrictAnswers(t *testing.T) {
	text := "# QUIZ: strict\nQ1: fine\nA) a\nB) b\nANSWER: B\nQ2: unmarked\nA) a\nB) b"

	if _, err := Parse(text, ""); err != nil {
		t.Fatalf("lenient Parse() error = %v", err)
	}

	_, err := ParseWithOptions(text, "", Options{StrictAnswers: true})
	if !errors.Is(err, ErrMissingCorrectAnswer) {
		t.Fatalf("err = %v, want ErrMissingCorrectAnswer", err)
	}
	if !strings.Contains(err.Error(), "question 2") {
		t.Fatalf("err = %q, want it to name question 2", err)
	}

	t.Run("answer pointing at no option", func(t *testing.T) {
		doc := "# QUIZ: s\nQ1: q\nA) a\nB) b\nANSWER: D"

		res, err := Parse(doc, "")
		if err != nil {
			t.Fatalf("lenient Parse() error = %v", err)
		}
		q := res.Questions[0]
		if q.CorrectAnswer != "D" || q.HasLabel(q.CorrectAnswer) {
			t.Fatalf("lenient question = %+v, want unreachable answer D kept", q)
		}
		if len(res.Warnings) != 1 || res.Warnings[0].QuestionID != 1 {
			t.Fatalf("Warnings = %+v, want one for question 1", res.Warnings)
		}

		_, err = ParseWithOptions(doc, "", Options{StrictAnswers: true})
		if !errors.Is(err, ErrMissingCorrectAnswer) {
			t.Fatalf("err = %v, want ErrMissingCorrectAnswer", err)
		}
	})
}
