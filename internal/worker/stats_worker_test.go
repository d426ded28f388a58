package worker

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stemsi/quizmaster-backend/internal/model"
)

func TestAggregate(t *testing.T) {
	a := uuid.New()
	b := uuid.New()
	batch := []*model.StatsPayload{
		{QuizID: a.String(), Score: 40, Correct: 2, Total: 5},
		{QuizID: b.String(), Score: 100, Correct: 3, Total: 3},
		{QuizID: a.String(), Score: 80, Correct: 4, Total: 5},
	}

	quizzes, user, err := aggregate(batch)
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}

	want := []quizDelta{
		{quizID: a, attempts: 2, best: 80},
		{quizID: b, attempts: 1, best: 100},
	}
	if len(quizzes) != len(want) {
		t.Fatalf("got %d quiz deltas, want %d", len(quizzes), len(want))
	}
	for i := range want {
		if quizzes[i] != want[i] {
			t.Errorf("quizzes[%d] = %+v, want %+v", i, quizzes[i], want[i])
		}
	}

	wantUser := userDelta{score: 9, quizzes: 3, correct: 9, answered: 13}
	if user != wantUser {
		t.Errorf("user delta = %+v, want %+v", user, wantUser)
	}
}

func TestAggregateRejectsBadQuizID(t *testing.T) {
	_, _, err := aggregate([]*model.StatsPayload{{QuizID: "not-a-uuid"}})
	if err == nil {
		t.Fatal("expected error for malformed quiz id")
	}
}
