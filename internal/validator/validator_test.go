package validator

import (
	"testing"

	govalidator "github.com/go-playground/validator/v10"
)

type answer struct {
	SelectedAnswer string `json:"selected_answer" validate:"required,option_label"`
}

func TestOptionLabel(t *testing.T) {
	v := govalidator.New()
	register(v)

	for _, label := range []string{"A", "B", "C", "D"} {
		if err := v.Struct(answer{SelectedAnswer: label}); err != nil {
			t.Errorf("label %q rejected: %v", label, err)
		}
	}

	for _, label := range []string{"E", "a", "AB", "1"} {
		err := v.Struct(answer{SelectedAnswer: label})
		if err == nil {
			t.Errorf("label %q accepted", label)
			continue
		}
		fields := TranslateErrors(err)
		if fields["selected_answer"] != "selected_answer must be one of A, B, C or D" {
			t.Errorf("label %q: fields = %v", label, fields)
		}
	}
}
