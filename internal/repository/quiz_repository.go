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

// QuizRepository handles quiz data access.
type QuizRepository struct {
	pool *pgxpool.Pool
}

// NewQuizRepository creates a new QuizRepository.
func NewQuizRepository(pool *pgxpool.Pool) *QuizRepository {
	return &QuizRepository{pool: pool}
}

// Create inserts a parsed quiz. Questions are stored as one JSONB document.
func (r *QuizRepository) Create(ctx context.Context, q *model.Quiz) error {
	questions, err := json.Marshal(q.Questions)
	if err != nil {
		return fmt.Errorf("marshal questions: %w", err)
	}

	return r.pool.QueryRow(ctx,
		`INSERT INTO quizzes (id, name, format, questions, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at`,
		q.ID, q.Name, q.Format, questions, q.CreatedAt,
	).Scan(&q.CreatedAt)
}

// GetByID retrieves a quiz with its full question bank.
// Returns pgx.ErrNoRows when the quiz does not exist.
func (r *QuizRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Quiz, error) {
	q := &model.Quiz{}
	var questions []byte
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, format, questions, created_at, last_played, total_attempts, best_score
		 FROM quizzes WHERE id = $1`, id,
	).Scan(&q.ID, &q.Name, &q.Format, &questions, &q.CreatedAt, &q.LastPlayed, &q.TotalAttempts, &q.BestScore)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(questions, &q.Questions); err != nil {
		return nil, fmt.Errorf("unmarshal questions: %w", err)
	}
	return q, nil
}

// List returns quiz summaries, most recently created first.
func (r *QuizRepository) List(ctx context.Context) ([]model.QuizSummary, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, format, jsonb_array_length(questions), created_at, last_played, total_attempts, best_score
		 FROM quizzes
		 ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var quizzes []model.QuizSummary
	for rows.Next() {
		var s model.QuizSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.Format, &s.QuestionCount, &s.CreatedAt, &s.LastPlayed, &s.TotalAttempts, &s.BestScore); err != nil {
			return nil, err
		}
		quizzes = append(quizzes, s)
	}
	return quizzes, rows.Err()
}

// Delete removes a quiz; its attempts go with it through the foreign key cascade.
// Returns pgx.ErrNoRows when nothing was deleted.
func (r *QuizRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM quizzes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
