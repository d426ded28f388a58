package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stemsi/quizmaster-backend/internal/config"
	"github.com/stemsi/quizmaster-backend/internal/extract"
	"github.com/stemsi/quizmaster-backend/internal/logger"
	"github.com/stemsi/quizmaster-backend/internal/model"
	"github.com/stemsi/quizmaster-backend/internal/quizparser"
	"github.com/stemsi/quizmaster-backend/internal/repository"
)

// Domain Errors
var (
	ErrQuizNotFound     = errors.New("quiz not found")
	ErrAttemptNotFound  = errors.New("attempt not found")
	ErrSessionNotFound  = errors.New("session not found or expired")
	ErrUnknownQuestion  = errors.New("question does not belong to this quiz")
	ErrDuplicateAnswer  = errors.New("question answered more than once")
	ErrNothingToRetry   = errors.New("attempt has no wrong answers to retry")
	ErrNoQuestionsInSet = errors.New("no questions selected for this session")
)

// ImportResult is returned after a quiz file was parsed and stored.
type ImportResult struct {
	Quiz     *model.Quiz          `json:"quiz"`
	Warnings []quizparser.Warning `json:"warnings,omitempty"`
}

// PreviewResult is a parse result that was not stored.
type PreviewResult struct {
	Name      string               `json:"name"`
	Format    string               `json:"format"`
	Questions []model.QuizQuestion `json:"questions"`
	Warnings  []quizparser.Warning `json:"warnings,omitempty"`
}

// QuizService handles quiz import, storage and Redis caching.
type QuizService struct {
	quizRepo *repository.QuizRepository
	rdb      *redis.Client
	cacheTTL time.Duration
	opts     quizparser.Options
	log      zerolog.Logger
}

// NewQuizService creates a new QuizService.
func NewQuizService(
	quizRepo *repository.QuizRepository,
	rdb *redis.Client,
	cfg *config.Config,
	log zerolog.Logger,
) *QuizService {
	return &QuizService{
		quizRepo: quizRepo,
		rdb:      rdb,
		cacheTTL: cfg.QuizCacheTTL,
		opts:     quizparser.Options{StrictAnswers: cfg.StrictAnswers},
		log:      logger.Component(log, "quiz_service"),
	}
}

// Import extracts, parses and stores an uploaded quiz file.
// Nothing is persisted when extraction or parsing fails.
func (s *QuizService) Import(ctx context.Context, fileName string, r io.Reader) (*ImportResult, error) {
	res, err := s.parse(fileName, r)
	if err != nil {
		return nil, err
	}

	quiz := &model.Quiz{
		ID:        uuid.New(),
		Name:      res.Name,
		Format:    res.Format.String(),
		Questions: res.Questions,
		CreatedAt: time.Now(),
	}
	if err := s.quizRepo.Create(ctx, quiz); err != nil {
		return nil, fmt.Errorf("create quiz: %w", err)
	}

	if err := s.cache(ctx, quiz); err != nil {
		s.log.Warn().Err(err).Str("quiz_id", quiz.ID.String()).Msg("Failed to cache quiz payload")
	}

	s.log.Info().
		Str("quiz_id", quiz.ID.String()).
		Str("format", quiz.Format).
		Int("questions", len(quiz.Questions)).
		Msg("Quiz imported")

	return &ImportResult{Quiz: quiz, Warnings: res.Warnings}, nil
}

// Preview parses an uploaded quiz file without storing it.
func (s *QuizService) Preview(fileName string, r io.Reader) (*PreviewResult, error) {
	res, err := s.parse(fileName, r)
	if err != nil {
		return nil, err
	}
	return &PreviewResult{
		Name:      res.Name,
		Format:    res.Format.String(),
		Questions: res.Questions,
		Warnings:  res.Warnings,
	}, nil
}

func (s *QuizService) parse(fileName string, r io.Reader) (*quizparser.Result, error) {
	text, err := extract.Text(fileName, r)
	if err != nil {
		return nil, err
	}

	res, err := quizparser.ParseWithOptions(text, extract.BaseName(fileName), s.opts)
	if err != nil {
		return nil, err
	}

	for _, w := range res.Warnings {
		s.log.Warn().
			Str("file", fileName).
			Int("question_id", w.QuestionID).
			Str("code", w.Code).
			Msg(w.Message)
	}
	return res, nil
}

// Get returns a quiz with its questions, from Redis when cached.
func (s *QuizService) Get(ctx context.Context, id uuid.UUID) (*model.Quiz, error) {
	key := config.CacheKey.QuizPayloadKey(id.String())

	data, err := s.rdb.Get(ctx, key).Bytes()
	if err == nil {
		var quiz model.Quiz
		if err := json.Unmarshal(data, &quiz); err == nil {
			return &quiz, nil
		}
		s.log.Warn().Str("quiz_id", id.String()).Msg("Corrupt cached quiz payload, reloading")
	} else if !errors.Is(err, redis.Nil) {
		s.log.Warn().Err(err).Msg("Redis get failed, falling back to database")
	}

	quiz, err := s.quizRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrQuizNotFound
		}
		return nil, fmt.Errorf("get quiz: %w", err)
	}

	if err := s.cache(ctx, quiz); err != nil {
		s.log.Warn().Err(err).Str("quiz_id", id.String()).Msg("Failed to cache quiz payload")
	}
	return quiz, nil
}

// List returns quiz summaries, newest first.
func (s *QuizService) List(ctx context.Context) ([]model.QuizSummary, error) {
	quizzes, err := s.quizRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list quizzes: %w", err)
	}
	if quizzes == nil {
		quizzes = []model.QuizSummary{}
	}
	return quizzes, nil
}

// Delete removes a quiz, its attempts and its cached payload.
func (s *QuizService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.quizRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrQuizNotFound
		}
		return fmt.Errorf("delete quiz: %w", err)
	}

	if err := s.rdb.Del(ctx, config.CacheKey.QuizPayloadKey(id.String())).Err(); err != nil {
		s.log.Warn().Err(err).Str("quiz_id", id.String()).Msg("Failed to evict quiz payload")
	}

	s.log.Info().Str("quiz_id", id.String()).Msg("Quiz deleted")
	return nil
}

func (s *QuizService) cache(ctx context.Context, quiz *model.Quiz) error {
	data, err := json.Marshal(quiz)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, config.CacheKey.QuizPayloadKey(quiz.ID.String()), data, s.cacheTTL).Err()
}
