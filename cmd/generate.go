package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/akiohm/quizlab/internal/content"
	"github.com/akiohm/quizlab/internal/llm"
	"github.com/akiohm/quizlab/internal/quizgen"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate items from a text file without starting the server",
	Long: `Run one generation and print the result as JSON.

This is a stateless developer tool — no database, no session, no events.
Useful for evaluating prompt and extraction quality against a live model.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().String("file", "", "Source .txt file (required for item modes)")
	generateCmd.Flags().String("mode", "multiple_choice", "multiple_choice, free_response, flashcards, translation, or listening")
	generateCmd.Flags().Int("count", 3, "Number of items to generate")
	generateCmd.Flags().String("level", "", "Target proficiency, e.g. \"TOEIC 600\"")
	generateCmd.Flags().Int("words", 0, "Target word count for passage modes")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	file, _ := cmd.Flags().GetString("file")
	modeVal, _ := cmd.Flags().GetString("mode")
	count, _ := cmd.Flags().GetInt("count")
	level, _ := cmd.Flags().GetString("level")
	words, _ := cmd.Flags().GetInt("words")

	mode := quizgen.Mode(modeVal)
	if !mode.Valid() {
		return fmt.Errorf("invalid mode %q", modeVal)
	}

	input := quizgen.GenerateInput{
		Count:     count,
		Level:     level,
		WordCount: words,
	}
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("read %s: %w", file, err)
		}
		text, err := content.ExtractText(file, data)
		if err != nil {
			return err
		}
		input.Content = text
	}

	// No EventRepo — logging skipped.
	ctx := context.Background()
	provider, err := llm.NewProviderFromEnv(ctx, nil)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}
	gen := quizgen.New(provider, quizgen.DefaultConfig())

	var result any
	switch mode {
	case quizgen.ModeMultipleChoice:
		result, err = gen.GenerateQuiz(ctx, input)
	case quizgen.ModeFreeResponse:
		result, err = gen.GenerateText(ctx, input)
	case quizgen.ModeFlashcards:
		result, err = gen.GenerateFlashcards(ctx, input)
	default:
		result, err = gen.GeneratePassage(ctx, mode, input)
	}
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
