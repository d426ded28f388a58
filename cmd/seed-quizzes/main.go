package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/stemsi/quizmaster-backend/internal/config"
	"github.com/stemsi/quizmaster-backend/internal/database"
	"github.com/stemsi/quizmaster-backend/internal/extract"
	"github.com/stemsi/quizmaster-backend/internal/logger"
	"github.com/stemsi/quizmaster-backend/internal/repository"
	"github.com/stemsi/quizmaster-backend/internal/service"
)

func main() {
	dir := flag.String("dir", "quizzes", "Directory of .txt/.docx/.pdf quiz files to import")
	flag.Parse()

	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	quizService := service.NewQuizService(repository.NewQuizRepository(pool), rdb, cfg, log)

	entries, err := os.ReadDir(*dir)
	if err != nil {
		log.Fatal().Err(err).Str("dir", *dir).Msg("Failed to read quiz directory")
	}

	fmt.Printf("=== Importing quizzes from %s ===\n", *dir)

	imported, skipped := 0, 0
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if _, err := extract.KindOf(name); err != nil {
			skipped++
			continue
		}

		res, err := importFile(ctx, quizService, filepath.Join(*dir, name))
		if err != nil {
			fmt.Printf("Error importing %s: %v\n", name, err)
			continue
		}
		imported++
		fmt.Printf("Imported %s as %q (%d questions, %s)\n",
			name, res.Quiz.Name, len(res.Quiz.Questions), res.Quiz.Format)
	}

	fmt.Printf("\nSeed completed! Imported %d quiz file(s), skipped %d unsupported file(s).\n", imported, skipped)
}

func importFile(ctx context.Context, quizService *service.QuizService, path string) (*service.ImportResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return quizService.Import(ctx, filepath.Base(path), f)
}
