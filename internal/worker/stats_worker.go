package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stemsi/quizmaster-backend/internal/config"
	"github.com/stemsi/quizmaster-backend/internal/logger"
	"github.com/stemsi/quizmaster-backend/internal/model"
)

const (
	StatsBatchSize    = 50
	StatsBatchTimeout = 2 * time.Second
	StatsPollTimeout  = 1 * time.Second
)

type StatsWorker struct {
	pool *pgxpool.Pool
	rdb  *redis.Client
	log  zerolog.Logger
}

func NewStatsWorker(pool *pgxpool.Pool, rdb *redis.Client, log zerolog.Logger) *StatsWorker {
	return &StatsWorker{
		pool: pool,
		rdb:  rdb,
		log:  logger.Component(log, "stats_worker"),
	}
}

// quizDelta is the per-quiz change carried by one batch.
type quizDelta struct {
	quizID   uuid.UUID
	attempts int
	best     int
}

// userDelta is the change to the single user stats row.
type userDelta struct {
	score    int
	quizzes  int
	correct  int
	answered int
}

// ----------------------------------------------------------------
// Worker loop with batching
// ----------------------------------------------------------------

func (w *StatsWorker) Start(ctx context.Context) {
	w.log.Info().Msg("StatsWorker started")

	batch := make([]*model.StatsPayload, 0, StatsBatchSize)
	lastFlush := time.Now()

	for {
		if len(batch) > 0 &&
			(len(batch) >= StatsBatchSize || time.Since(lastFlush) >= StatsBatchTimeout) {

			w.flushSafe(ctx, batch)
			batch = batch[:0]
			lastFlush = time.Now()
		}

		select {
		case <-ctx.Done():
			w.log.Info().Msg("Shutdown requested. Flushing remaining batch...")
			w.flushSafe(context.Background(), batch)
			return

		default:
			item, err := w.rdb.BLPop(ctx, StatsPollTimeout, config.WorkerKey.PersistStatsQueue).Result()
			if err != nil {
				if err != redis.Nil && ctx.Err() == nil {
					w.log.Error().Err(err).Msg("BLPop error")
				}
				continue
			}

			if len(item) < 2 {
				continue
			}

			var p model.StatsPayload
			if err := json.Unmarshal([]byte(item[1]), &p); err != nil {
				w.log.Error().Err(err).Msg("Invalid JSON payload")
				continue
			}

			batch = append(batch, &p)
		}
	}
}

// ----------------------------------------------------------------
// Batch update wrapper
// ----------------------------------------------------------------

func (w *StatsWorker) flushSafe(ctx context.Context, batch []*model.StatsPayload) {
	if len(batch) == 0 {
		return
	}

	quizzes, user, err := aggregate(batch)
	if err != nil {
		// A malformed quiz id would poison every retry; drop it and go one by one.
		w.log.Warn().Err(err).Msg("batch contains an invalid quiz id, using fallback")
		w.fallback(ctx, batch)
		return
	}

	if err := w.bulkUpdate(ctx, quizzes, user); err != nil {
		w.log.Warn().Err(err).Msg("bulk stats update failed, using fallback")
		w.fallback(ctx, batch)
		return
	}

	w.evictQuizPayloads(ctx, quizzes)
	w.log.Debug().Int("attempts", len(batch)).Int("quizzes", len(quizzes)).Msg("Stats flushed")
}

func (w *StatsWorker) fallback(ctx context.Context, batch []*model.StatsPayload) {
	var updated []quizDelta
	for _, p := range batch {
		quizID, err := uuid.Parse(p.QuizID)
		if err != nil {
			w.log.Error().Err(err).Str("quiz_id", p.QuizID).Msg("Dropping stats payload")
			continue
		}
		if err := w.persistSingle(ctx, quizID, p); err != nil {
			w.log.Error().Err(err).Msg("persistSingle failed, requeueing")
			raw, _ := json.Marshal(p)
			w.rdb.RPush(ctx, config.WorkerKey.PersistStatsQueue, raw)
			continue
		}
		updated = append(updated, quizDelta{quizID: quizID})
	}
	w.evictQuizPayloads(ctx, updated)
}

// aggregate folds a batch into one delta per quiz plus the user stats delta.
// Quizzes keep the order of their first appearance.
func aggregate(batch []*model.StatsPayload) ([]quizDelta, userDelta, error) {
	var user userDelta
	index := make(map[uuid.UUID]int)
	quizzes := make([]quizDelta, 0, len(batch))

	for _, p := range batch {
		quizID, err := uuid.Parse(p.QuizID)
		if err != nil {
			return nil, userDelta{}, err
		}

		i, ok := index[quizID]
		if !ok {
			i = len(quizzes)
			index[quizID] = i
			quizzes = append(quizzes, quizDelta{quizID: quizID, best: p.Score})
		}
		quizzes[i].attempts++
		quizzes[i].best = max(quizzes[i].best, p.Score)

		user.score += p.Correct
		user.quizzes++
		user.correct += p.Correct
		user.answered += p.Total
	}
	return quizzes, user, nil
}

// ----------------------------------------------------------------
// BULK PostgreSQL UPDATE using UNNEST + alias
// ----------------------------------------------------------------

func (w *StatsWorker) bulkUpdate(ctx context.Context, quizzes []quizDelta, user userDelta) error {
	ids := make([]uuid.UUID, len(quizzes))
	attempts := make([]int, len(quizzes))
	best := make([]int, len(quizzes))
	for i, q := range quizzes {
		ids[i] = q.quizID
		attempts[i] = q.attempts
		best[i] = q.best
	}

	tx, err := w.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		UPDATE quizzes AS q
		SET total_attempts = q.total_attempts + t.attempts,
		    best_score = GREATEST(q.best_score, t.best),
		    last_played = NOW()
		FROM (
			SELECT u.quiz_id, u.attempts, u.best
			FROM UNNEST(
				$1::uuid[],
				$2::int[],
				$3::int[]
			) AS u (quiz_id, attempts, best)
		) AS t
		WHERE q.id = t.quiz_id
	`, ids, attempts, best)
	if err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, userStatsUpdate, user.score, user.quizzes, user.correct, user.answered); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

const userStatsUpdate = `
	UPDATE user_stats
	SET total_score = total_score + $1,
	    total_quizzes_taken = total_quizzes_taken + $2,
	    total_correct_answers = total_correct_answers + $3,
	    total_questions_answered = total_questions_answered + $4,
	    updated_at = NOW()
	WHERE id = 1`

// ----------------------------------------------------------------
// BULK Redis DEL for stale quiz payloads
// ----------------------------------------------------------------

func (w *StatsWorker) evictQuizPayloads(ctx context.Context, quizzes []quizDelta) {
	if len(quizzes) == 0 {
		return
	}
	pipe := w.rdb.Pipeline()
	for _, q := range quizzes {
		pipe.Del(ctx, config.CacheKey.QuizPayloadKey(q.quizID.String()))
	}
	_, _ = pipe.Exec(ctx)
}

// ----------------------------------------------------------------
// FALLBACK single update
// ----------------------------------------------------------------

func (w *StatsWorker) persistSingle(ctx context.Context, quizID uuid.UUID, p *model.StatsPayload) error {
	tx, err := w.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	// The quiz may have been deleted since the attempt; user stats still count it.
	_, err = tx.Exec(ctx,
		`UPDATE quizzes
		 SET total_attempts = total_attempts + 1,
		     best_score = GREATEST(best_score, $1),
		     last_played = NOW()
		 WHERE id = $2`,
		p.Score, quizID,
	)
	if err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, userStatsUpdate, p.Correct, 1, p.Correct, p.Total); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
