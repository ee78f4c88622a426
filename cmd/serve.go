package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/akiohm/quizlab/internal/chat"
	"github.com/akiohm/quizlab/internal/config"
	"github.com/akiohm/quizlab/internal/grader"
	"github.com/akiohm/quizlab/internal/llm"
	"github.com/akiohm/quizlab/internal/logger"
	"github.com/akiohm/quizlab/internal/quizgen"
	"github.com/akiohm/quizlab/internal/server"
	"github.com/akiohm/quizlab/internal/speech"
	"github.com/akiohm/quizlab/internal/store"
	"github.com/akiohm/quizlab/internal/themelog"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

// runServe wires the store, provider, and collaborators and runs the
// HTTP server until it fails or is killed.
func runServe(cmd *cobra.Command) error {
	ctx := cmd.Context()

	configDir, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cfg)
	defer log.Sync()

	dbPath := cfg.Database.Path
	if dbPath == "" {
		dbPath, err = resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
	} else if err := store.EnsureDir(dbPath); err != nil {
		return fmt.Errorf("create DB directory: %w", err)
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()
	eventRepo := st.EventRepo()

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	deps := server.Deps{
		Generator: quizgen.New(provider, quizgen.DefaultConfig()),
		Grader:    grader.New(provider, grader.DefaultConfig()),
		Chat:      chat.New(provider, chat.DefaultConfig()),
		Events:    eventRepo,
	}

	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		synth, err := speech.NewGemini(ctx, key, cfg.Speech.Model, cfg.Speech.CacheDir)
		if err != nil {
			return fmt.Errorf("speech synthesizer: %w", err)
		}
		deps.Speech = synth
	} else {
		log.Warn("GEMINI_API_KEY not set, speech synthesis disabled")
	}

	themePath := cfg.ThemeLog.Path
	if themePath == "" {
		themePath = "themes.json"
	}
	deps.Themes = themelog.Open(themePath)

	srv := server.New(cfg, log, deps)
	log.Info("starting server",
		zap.String("port", cfg.Server.Port),
		zap.String("db", dbPath),
	)
	return srv.Run()
}
