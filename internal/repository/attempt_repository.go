package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stemsi/quizmaster-backend/internal/model"
)

const attemptColumns = `id, quiz_id, quiz_name, score, total_questions, time_spent, completed_at, answers`

// AttemptRepository handles quiz attempt data access.
type AttemptRepository struct {
	pool *pgxpool.Pool
}

// NewAttemptRepository creates a new AttemptRepository.
func NewAttemptRepository(pool *pgxpool.Pool) *AttemptRepository {
	return &AttemptRepository{pool: pool}
}

// Create inserts a completed attempt.
func (r *AttemptRepository) Create(ctx context.Context, a *model.QuizAttempt) error {
	answers, err := json.Marshal(a.Answers)
	if err != nil {
		return fmt.Errorf("marshal answers: %w", err)
	}

	return r.pool.QueryRow(ctx,
		`INSERT INTO quiz_attempts (id, quiz_id, quiz_name, score, total_questions, time_spent, completed_at, answers)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING completed_at`,
		a.ID, a.QuizID, a.QuizName, a.Score, a.TotalQuestions, a.TimeSpent, a.CompletedAt, answers,
	).Scan(&a.CompletedAt)
}

// GetByID retrieves a single attempt. Returns pgx.ErrNoRows when absent.
func (r *AttemptRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.QuizAttempt, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+attemptColumns+` FROM quiz_attempts WHERE id = $1`, id)
	return scanAttempt(row)
}

// ListByQuiz retrieves all attempts of a quiz, newest first.
func (r *AttemptRepository) ListByQuiz(ctx context.Context, quizID uuid.UUID) ([]model.QuizAttempt, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+attemptColumns+` FROM quiz_attempts
		 WHERE quiz_id = $1
		 ORDER BY completed_at DESC`, quizID,
	)
	if err != nil {
		return nil, err
	}
	return collectAttempts(rows)
}

// ListRecent retrieves the most recent attempts across all quizzes.
func (r *AttemptRepository) ListRecent(ctx context.Context, limit int) ([]model.QuizAttempt, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+attemptColumns+` FROM quiz_attempts
		 ORDER BY completed_at DESC
		 LIMIT $1`, limit,
	)
	if err != nil {
		return nil, err
	}
	return collectAttempts(rows)
}

func collectAttempts(rows pgx.Rows) ([]model.QuizAttempt, error) {
	defer rows.Close()

	var attempts []model.QuizAttempt
	for rows.Next() {
		a, err := scanAttempt(rows)
		if err != nil {
			return nil, err
		}
		attempts = append(attempts, *a)
	}
	return attempts, rows.Err()
}

func scanAttempt(row pgx.Row) (*model.QuizAttempt, error) {
	a := &model.QuizAttempt{}
	var answers []byte
	if err := row.Scan(&a.ID, &a.QuizID, &a.QuizName, &a.Score, &a.TotalQuestions, &a.TimeSpent, &a.CompletedAt, &answers); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(answers, &a.Answers); err != nil {
		return nil, fmt.Errorf("unmarshal answers: %w", err)
	}
	return a, nil
}
