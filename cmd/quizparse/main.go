// Command quizparse parses a local quiz file and prints the result as JSON.
// It needs no database and is meant for checking a file before uploading it.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/stemsi/quizmaster-backend/internal/extract"
	"github.com/stemsi/quizmaster-backend/internal/logger"
	"github.com/stemsi/quizmaster-backend/internal/quizparser"
)

type output struct {
	File   string `json:"file"`
	Format string `json:"format"`
	*quizparser.Result
}

func main() {
	strict := flag.Bool("strict", false, "Fail when a question has no usable correct answer")
	compact := flag.Bool("compact", false, "Print single-line JSON")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: quizparse [flags] <file.txt|file.docx|file.pdf>")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	path := flag.Arg(0)

	log := logger.SetupWriter(os.Stderr, "info", "pretty")

	f, err := os.Open(path)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open file")
	}
	defer f.Close()

	text, err := extract.Text(path, f)
	if err != nil {
		log.Fatal().Err(err).Str("file", path).Msg("Failed to extract text")
	}

	res, err := quizparser.ParseWithOptions(text, extract.BaseName(path), quizparser.Options{StrictAnswers: *strict})
	if err != nil {
		log.Fatal().Err(err).Str("file", path).Msg("Failed to parse quiz")
	}

	for _, w := range res.Warnings {
		log.Warn().Int("question_id", w.QuestionID).Str("code", w.Code).Msg(w.Message)
	}

	enc := json.NewEncoder(os.Stdout)
	if !*compact {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(output{File: path, Format: res.Format.String(), Result: res}); err != nil {
		log.Fatal().Err(err).Msg("Failed to write output")
	}

	log.Info().
		Str("format", res.Format.String()).
		Int("questions", len(res.Questions)).
		Msg("Parsed")
}

func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
