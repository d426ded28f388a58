package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stemsi/quizmaster-backend/internal/config"
	"github.com/stemsi/quizmaster-backend/internal/logger"
	"github.com/stemsi/quizmaster-backend/internal/model"
	"github.com/stemsi/quizmaster-backend/internal/repository"
)

const DefaultRecentAttempts = 10

// AttemptService grades and records finished attempts.
type AttemptService struct {
	quizService *QuizService
	attemptRepo *repository.AttemptRepository
	rdb         *redis.Client
	log         zerolog.Logger
}

// NewAttemptService creates a new AttemptService.
func NewAttemptService(
	quizService *QuizService,
	attemptRepo *repository.AttemptRepository,
	rdb *redis.Client,
	log zerolog.Logger,
) *AttemptService {
	return &AttemptService{
		quizService: quizService,
		attemptRepo: attemptRepo,
		rdb:         rdb,
		log:         logger.Component(log, "attempt_service"),
	}
}

// Submit grades the submitted answers against the stored quiz, saves the attempt and
// queues a stats update.
func (s *AttemptService) Submit(ctx context.Context, quizID uuid.UUID, req model.SubmitAttemptRequest) (*model.AttemptResult, error) {
	quiz, err := s.quizService.Get(ctx, quizID)
	if err != nil {
		return nil, err
	}

	answers, err := gradeAnswers(quiz.Questions, req.Answers)
	if err != nil {
		return nil, err
	}

	attempt := &model.QuizAttempt{
		ID:             uuid.New(),
		QuizID:         quiz.ID,
		QuizName:       quiz.Name,
		TotalQuestions: len(answers),
		TimeSpent:      req.TimeSpent,
		CompletedAt:    time.Now(),
		Answers:        answers,
	}
	attempt.Score = scorePercent(attempt.CorrectCount(), attempt.TotalQuestions)

	if err := s.attemptRepo.Create(ctx, attempt); err != nil {
		return nil, fmt.Errorf("create attempt: %w", err)
	}

	// Stats are eventually consistent; a lost push only skews counters.
	payload, _ := json.Marshal(model.StatsPayload{
		QuizID:  quiz.ID.String(),
		Score:   attempt.Score,
		Correct: attempt.CorrectCount(),
		Total:   attempt.TotalQuestions,
	})
	if err := s.rdb.RPush(ctx, config.WorkerKey.PersistStatsQueue, payload).Err(); err != nil {
		s.log.Error().Err(err).Str("attempt_id", attempt.ID.String()).Msg("Failed to queue stats update")
	}

	s.log.Info().
		Str("attempt_id", attempt.ID.String()).
		Str("quiz_id", quiz.ID.String()).
		Int("score", attempt.Score).
		Msg("Attempt submitted")

	return &model.AttemptResult{Attempt: attempt, Badge: model.BadgeFor(attempt.Score)}, nil
}

// Get retrieves a single attempt.
func (s *AttemptService) Get(ctx context.Context, id uuid.UUID) (*model.QuizAttempt, error) {
	attempt, err := s.attemptRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAttemptNotFound
		}
		return nil, fmt.Errorf("get attempt: %w", err)
	}
	return attempt, nil
}

// ListByQuiz returns the attempts of one quiz, newest first.
func (s *AttemptService) ListByQuiz(ctx context.Context, quizID uuid.UUID) ([]model.QuizAttempt, error) {
	if _, err := s.quizService.Get(ctx, quizID); err != nil {
		return nil, err
	}
	attempts, err := s.attemptRepo.ListByQuiz(ctx, quizID)
	if err != nil {
		return nil, fmt.Errorf("list attempts: %w", err)
	}
	if attempts == nil {
		attempts = []model.QuizAttempt{}
	}
	return attempts, nil
}

// ListRecent returns the latest attempts across all quizzes.
// A non-positive limit uses DefaultRecentAttempts.
func (s *AttemptService) ListRecent(ctx context.Context, limit int) ([]model.QuizAttempt, error) {
	if limit <= 0 {
		limit = DefaultRecentAttempts
	}
	attempts, err := s.attemptRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent attempts: %w", err)
	}
	if attempts == nil {
		attempts = []model.QuizAttempt{}
	}
	return attempts, nil
}

// RetrySettings builds session settings that replay only the wrongly answered questions
// of an attempt.
func (s *AttemptService) RetrySettings(ctx context.Context, attemptID uuid.UUID) (*model.QuizSettings, error) {
	attempt, err := s.Get(ctx, attemptID)
	if err != nil {
		return nil, err
	}

	ids := wrongQuestionIDs(attempt.Answers)
	if len(ids) == 0 {
		return nil, ErrNothingToRetry
	}
	return &model.QuizSettings{
		ShuffleAnswers:      true,
		SpecificQuestionIDs: ids,
	}, nil
}

// gradeAnswers checks each submitted label against the stored question with the same id.
// Each question may be answered at most once.
func gradeAnswers(questions []model.QuizQuestion, submitted []model.SubmittedAnswerItem) ([]model.QuizAnswer, error) {
	byID := make(map[int]*model.QuizQuestion, len(questions))
	for i := range questions {
		byID[questions[i].ID] = &questions[i]
	}

	seen := make(map[int]struct{}, len(submitted))
	answers := make([]model.QuizAnswer, 0, len(submitted))
	for i, item := range submitted {
		q, ok := byID[item.QuestionID]
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrUnknownQuestion, item.QuestionID)
		}
		if _, dup := seen[q.ID]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateAnswer, q.ID)
		}
		seen[q.ID] = struct{}{}
		answers = append(answers, model.QuizAnswer{
			QuestionIndex:  i,
			QuestionID:     q.ID,
			SelectedAnswer: item.SelectedAnswer,
			CorrectAnswer:  q.CorrectAnswer,
			IsCorrect:      item.SelectedAnswer == q.CorrectAnswer,
			QuestionText:   q.Question,
		})
	}
	return answers, nil
}

// scorePercent rounds correct/total to a whole percentage; an empty attempt scores 0.
func scorePercent(correct, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}

// wrongQuestionIDs returns the unique ids of incorrect answers in ascending order.
func wrongQuestionIDs(answers []model.QuizAnswer) []int {
	var ids []int
	for _, a := range answers {
		if !a.IsCorrect {
			ids = append(ids, a.QuestionID)
		}
	}
	slices.Sort(ids)
	return slices.Compact(ids)
}
