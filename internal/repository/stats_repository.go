package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stemsi/quizmaster-backend/internal/model"
)

type StatsRepository struct {
	pool *pgxpool.Pool
}

func NewStatsRepository(pool *pgxpool.Pool) *StatsRepository {
	return &StatsRepository{pool: pool}
}

// Get returns the aggregated user stats; a missing row reads as all zeros.
func (r *StatsRepository) Get(ctx context.Context) (*model.UserStats, error) {
	s := &model.UserStats{}
	err := r.pool.QueryRow(ctx,
		`SELECT total_score, total_quizzes_taken, total_correct_answers, total_questions_answered, updated_at
		 FROM user_stats WHERE id = 1`,
	).Scan(&s.TotalScore, &s.TotalQuizzesTaken, &s.TotalCorrectAnswers, &s.TotalQuestionsAnswered, &s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return &model.UserStats{}, nil
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}
