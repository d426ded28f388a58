package quizparser

import "testing"

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		text string
		want FormatKind
	}{
		{"empty", "", FormatDefault},
		{"default", "# QUIZ: Math\nQ1: 1+1?\nA) 2\nANSWER: A", FormatDefault},
		{"delimiter", "1. Sky?\n=====#Blue\n=====Red\n+++++\n2. Grass?\n=====Green", FormatDelimiterBlock},
		{"asterisk", "1. Sky?\nA) Red\n*B) Blue", FormatAsteriskMarked},
		{"asterisk mid-line", "see *D) below", FormatAsteriskMarked},
		{"lowercase star is not a marker", "1. Sky?\n*b) Blue", FormatDefault},
		{"star beyond D is not a marker", "*E) nope", FormatDefault},
		{"separator without option prefix", "+++++\nQ1: x", FormatDefault},
		{"option prefix without separator", "=====x\n*A) y", FormatAsteriskMarked},
		{"delimiter wins over asterisk", "+++++\n=====a\n*A) b", FormatDelimiterBlock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect(tt.text); got != tt.want {
				t.Fatalf("Detect() = %v, want %v", got, tt.want)
			}
			// Deterministic: a second call agrees.
			if again := Detect(tt.text); again != tt.want {
				t.Fatalf("Detect() second call = %v, want %v", again, tt.want)
			}
		})
	}
}

func TestFormatKindString(t *testing.T) {
	cases := map[FormatKind]string{
		FormatDefault:        "default",
		FormatDelimiterBlock: "delimiter_block",
		FormatAsteriskMarked: "asterisk_marked",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", k, got, want)
		}
	}
}
