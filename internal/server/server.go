// Package server exposes the generation pipeline and session state machine
// over HTTP. All state lives in memory behind a shared-secret gate; the
// event store only records what happened, it is not consulted to serve
// requests.
package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/akiohm/quizlab/internal/chat"
	"github.com/akiohm/quizlab/internal/config"
	"github.com/akiohm/quizlab/internal/grader"
	"github.com/akiohm/quizlab/internal/quizgen"
	"github.com/akiohm/quizlab/internal/speech"
	"github.com/akiohm/quizlab/internal/store"
	"github.com/akiohm/quizlab/internal/themelog"
)

// Deps are the collaborators the server dispatches to. Events may be nil;
// generation outcomes are then simply not recorded.
type Deps struct {
	Generator quizgen.Generator
	Grader    *grader.Grader
	Chat      *chat.Service
	Speech    speech.Synthesizer
	Themes    *themelog.Log
	Events    store.EventRepo
}

// Server is the HTTP API.
type Server struct {
	cfg      *config.Config
	log      *zap.Logger
	deps     Deps
	gate     *gate
	sessions *registry
}

// New creates a Server. The caller owns the logger's lifecycle.
func New(cfg *config.Config, log *zap.Logger, deps Deps) *Server {
	return &Server{
		cfg:      cfg,
		log:      log,
		deps:     deps,
		gate:     newGate(cfg.Auth.Password),
		sessions: newRegistry(),
	}
}

// Router builds the gin engine with all routes and middleware attached.
func (s *Server) Router() *gin.Engine {
	if s.cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(s.log))

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	if len(s.cfg.CORS.AllowedOrigins) > 0 {
		corsCfg.AllowOrigins = s.cfg.CORS.AllowedOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	r.Use(cors.New(corsCfg))

	api := r.Group("/api")
	api.POST("/login", s.handleLogin)

	auth := api.Group("")
	auth.Use(s.authRequired())
	{
		auth.POST("/upload", s.handleUpload)
		auth.GET("/sessions/:id", s.handleSessionState)
		auth.POST("/sessions/:id/generate", s.handleGenerate)
		auth.POST("/sessions/:id/answer", s.handleAnswer)
		auth.POST("/sessions/:id/advance", s.handleAdvance)
		auth.POST("/sessions/:id/reset", s.handleReset)
		auth.POST("/sessions/:id/chat", s.handleChat)
		auth.POST("/sessions/:id/chat/clear", s.handleChatClear)
		auth.POST("/listening", s.handleListening)
		auth.POST("/speech", s.handleSpeech)
		auth.POST("/translation/score", s.handleTranslationScore)
	}

	return r
}

// Run starts the server on the configured port.
func (s *Server) Run() error {
	return s.Router().Run(":" + s.cfg.Server.Port)
}
