package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stemsi/quizmaster-backend/internal/config"
	"github.com/stemsi/quizmaster-backend/internal/logger"
	"github.com/stemsi/quizmaster-backend/internal/model"
	"github.com/stemsi/quizmaster-backend/internal/session"
)

// SessionService prepares play sessions and hands them to the player exactly once.
type SessionService struct {
	quizService *QuizService
	preparer    *session.Preparer
	rdb         *redis.Client
	ttl         time.Duration
	log         zerolog.Logger
}

// NewSessionService creates a new SessionService.
func NewSessionService(
	quizService *QuizService,
	preparer *session.Preparer,
	rdb *redis.Client,
	cfg *config.Config,
	log zerolog.Logger,
) *SessionService {
	return &SessionService{
		quizService: quizService,
		preparer:    preparer,
		rdb:         rdb,
		ttl:         cfg.SessionTTL,
		log:         logger.Component(log, "session_service"),
	}
}

// Prepare selects and shuffles the questions of a quiz according to settings and stores
// the result for pickup by Take.
func (s *SessionService) Prepare(ctx context.Context, quizID uuid.UUID, settings model.QuizSettings) (*model.PreparedSession, error) {
	quiz, err := s.quizService.Get(ctx, quizID)
	if err != nil {
		return nil, err
	}

	if err := checkSettings(settings, len(quiz.Questions)); err != nil {
		return nil, err
	}

	questions := s.preparer.Prepare(quiz.Questions, settings)
	if len(questions) == 0 {
		return nil, ErrNoQuestionsInSet
	}

	prepared := &model.PreparedSession{
		SessionID: uuid.New(),
		QuizID:    quiz.ID,
		QuizName:  quiz.Name,
		FastMode:  settings.FastMode,
		Questions: questions,
		CreatedAt: time.Now(),
	}

	data, err := json.Marshal(prepared)
	if err != nil {
		return nil, fmt.Errorf("marshal session: %w", err)
	}
	key := config.CacheKey.PreparedSessionKey(prepared.SessionID.String())
	if err := s.rdb.Set(ctx, key, data, s.ttl).Err(); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	s.log.Debug().
		Str("session_id", prepared.SessionID.String()).
		Str("quiz_id", quizID.String()).
		Int("questions", len(questions)).
		Msg("Session prepared")

	return prepared, nil
}

// Take returns a prepared session and removes it, so a session can be started once.
func (s *SessionService) Take(ctx context.Context, sessionID uuid.UUID) (*model.PreparedSession, error) {
	data, err := s.rdb.GetDel(ctx, config.CacheKey.PreparedSessionKey(sessionID.String())).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("take session: %w", err)
	}

	var prepared model.PreparedSession
	if err := json.Unmarshal(data, &prepared); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return &prepared, nil
}

// checkSettings validates the question range when it is the active selection mode.
func checkSettings(settings model.QuizSettings, total int) error {
	if len(settings.SpecificQuestionIDs) > 0 || !settings.QuestionRange.Enabled {
		return nil
	}
	return session.ValidateRange(settings.QuestionRange.Start, settings.QuestionRange.End, total)
}
