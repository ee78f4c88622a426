package server

import (
	"context"
	"io"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/akiohm/quizlab/internal/chat"
	"github.com/akiohm/quizlab/internal/content"
	"github.com/akiohm/quizlab/internal/quizgen"
	"github.com/akiohm/quizlab/internal/session"
	"github.com/akiohm/quizlab/internal/speech"
	"github.com/akiohm/quizlab/internal/store"
	"github.com/akiohm/quizlab/internal/themelog"
)

const previewLen = 80

type loginRequest struct {
	Password string `json:"password" binding:"required"`
}

func (s *Server) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "password is required"})
		return
	}

	token, ok := s.gate.Login(req.Password)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid password"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// handleUpload accepts a study text and binds it to a session. When no
// session_id field is sent a fresh id is issued.
func (s *Server) handleUpload(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "open upload: " + err.Error()})
		return
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "read upload: " + err.Error()})
		return
	}

	text, err := content.ExtractText(fh.Filename, data)
	if err != nil {
		writeError(c, err)
		return
	}

	id := c.PostForm("session_id")
	if id == "" {
		id = uuid.NewString()
	}
	entry := s.sessions.get(id)
	entry.mu.Lock()
	entry.content = text
	entry.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"session_id": id, "chars": len(text)})
}

type generateRequest struct {
	Mode      string   `json:"mode" binding:"required"`
	Count     int      `json:"count"`
	Level     string   `json:"level"`
	WordCount int      `json:"word_count"`
	Keywords  []string `json:"keywords"`
}

// handleGenerate runs the pipeline for the requested mode and loads the
// result into the session. A failed generation leaves the session exactly
// as it was.
func (s *Server) handleGenerate(c *gin.Context) {
	id := c.Param("id")
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mode := quizgen.Mode(req.Mode)
	if !mode.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown mode " + req.Mode})
		return
	}

	entry := s.sessions.get(id)
	entry.mu.Lock()
	defer entry.mu.Unlock()

	input := quizgen.GenerateInput{
		Content:   entry.content,
		Count:     req.Count,
		Level:     req.Level,
		WordCount: req.WordCount,
		Keywords:  req.Keywords,
	}

	ctx := c.Request.Context()
	switch mode {
	case quizgen.ModeMultipleChoice:
		items, err := s.deps.Generator.GenerateQuiz(ctx, input)
		if err == nil {
			err = entry.state.BeginQuiz(items)
		}
		s.recordGeneration(ctx, mode, input, len(items), err)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, s.stateView(entry))

	case quizgen.ModeFreeResponse:
		items, err := s.deps.Generator.GenerateText(ctx, input)
		if err == nil {
			err = entry.state.BeginText(items)
		}
		s.recordGeneration(ctx, mode, input, len(items), err)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, s.stateView(entry))

	case quizgen.ModeFlashcards:
		cards, err := s.deps.Generator.GenerateFlashcards(ctx, input)
		s.recordGeneration(ctx, mode, input, len(cards), err)
		if err != nil {
			writeError(c, err)
			return
		}
		entry.flashcards = cards
		c.JSON(http.StatusOK, gin.H{"session_id": id, "flashcards": cards})

	case quizgen.ModeTranslation:
		passage, err := s.deps.Generator.GeneratePassage(ctx, mode, input)
		if err != nil {
			s.recordGeneration(ctx, mode, input, 0, err)
			writeError(c, err)
			return
		}
		rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		item := quizgen.PickSentence(rng, passage)
		s.recordGeneration(ctx, mode, input, 1, nil)
		entry.translation = item
		c.JSON(http.StatusOK, gin.H{
			"session_id": id,
			"passage":    passage,
			"item":       item,
		})

	default:
		// Listening passages go through /api/listening so the theme log
		// stays in one code path.
		c.JSON(http.StatusBadRequest, gin.H{"error": "use /api/listening for listening mode"})
	}
}

type answerRequest struct {
	Answer string `json:"answer"`
}

func (s *Server) handleAnswer(c *gin.Context) {
	var req answerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry := s.sessions.get(c.Param("id"))
	entry.mu.Lock()
	defer entry.mu.Unlock()

	result, err := entry.state.Answer(req.Answer)
	if err != nil {
		writeError(c, err)
		return
	}

	view := s.stateView(entry)
	view["result"] = result
	c.JSON(http.StatusOK, view)
}

func (s *Server) handleAdvance(c *gin.Context) {
	entry := s.sessions.get(c.Param("id"))
	entry.mu.Lock()
	defer entry.mu.Unlock()

	if err := entry.state.Advance(); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, s.stateView(entry))
}

func (s *Server) handleReset(c *gin.Context) {
	entry := s.sessions.get(c.Param("id"))
	entry.mu.Lock()
	defer entry.mu.Unlock()

	entry.state.Reset()
	c.JSON(http.StatusOK, s.stateView(entry))
}

func (s *Server) handleSessionState(c *gin.Context) {
	entry := s.sessions.get(c.Param("id"))
	entry.mu.Lock()
	defer entry.mu.Unlock()

	c.JSON(http.StatusOK, s.stateView(entry))
}

type chatRequest struct {
	Question string `json:"question" binding:"required"`
}

// handleChat answers a free-form question about the session's uploaded
// content, carrying the conversation history across turns. Works without
// an upload too; answers are then ungrounded.
func (s *Server) handleChat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry := s.sessions.get(c.Param("id"))
	entry.mu.Lock()
	defer entry.mu.Unlock()

	answer, err := s.deps.Chat.Ask(c.Request.Context(), entry.content, entry.chat, req.Question)
	if err != nil {
		writeError(c, err)
		return
	}

	entry.chat = append(entry.chat,
		chat.Turn{Role: "user", Content: req.Question},
		chat.Turn{Role: "assistant", Content: answer},
	)

	c.JSON(http.StatusOK, gin.H{
		"answer":  answer,
		"history": entry.chat,
	})
}

// handleChatClear drops the conversation history, leaving the uploaded
// content and any session items in place.
func (s *Server) handleChatClear(c *gin.Context) {
	entry := s.sessions.get(c.Param("id"))
	entry.mu.Lock()
	defer entry.mu.Unlock()

	entry.chat = nil
	c.JSON(http.StatusOK, gin.H{"history": []chat.Turn{}})
}

type listeningRequest struct {
	Level     string   `json:"level"`
	WordCount int      `json:"word_count"`
	Keywords  []string `json:"keywords"`
}

// handleListening generates a listening passage, steering the model away
// from recently used themes, and appends the result to the theme log.
func (s *Server) handleListening(c *gin.Context) {
	var req listeningRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := quizgen.GenerateInput{
		Level:     req.Level,
		WordCount: req.WordCount,
		Keywords:  req.Keywords,
	}
	if s.deps.Themes != nil {
		keep := s.cfg.ThemeLog.Keep
		if keep <= 0 {
			keep = themelog.DefaultKeep
		}
		input.AvoidThemes = s.deps.Themes.RecentThemes(keep)
	}

	ctx := c.Request.Context()
	passage, err := s.deps.Generator.GeneratePassage(ctx, quizgen.ModeListening, input)
	s.recordGeneration(ctx, quizgen.ModeListening, input, 1, err)
	if err != nil {
		writeError(c, err)
		return
	}

	if s.deps.Themes != nil {
		preview := passage.Text
		if runes := []rune(preview); len(runes) > previewLen {
			preview = string(runes[:previewLen])
		}
		logErr := s.deps.Themes.Append(themelog.Entry{
			Timestamp:     time.Now(),
			Level:         input.Level,
			WordCount:     input.WordCount,
			Theme:         passage.Theme,
			SpeakerGender: passage.SpeakerGender,
			Preview:       preview,
		})
		if logErr != nil {
			s.log.Warn("theme log append failed", zap.Error(logErr))
		}
	}

	c.JSON(http.StatusOK, gin.H{"passage": passage})
}

type speechRequest struct {
	Text   string `json:"text" binding:"required"`
	Gender string `json:"gender"`
	Voice  string `json:"voice"`
}

// handleSpeech synthesizes audio for a passage and returns the raw bytes
// with the synthesizer's MIME type.
func (s *Server) handleSpeech(c *gin.Context) {
	var req speechRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if s.deps.Speech == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "speech synthesis is not configured"})
		return
	}

	voice := req.Voice
	if voice == "" {
		voice = speech.VoiceForGender(req.Gender)
	}

	audio, err := s.deps.Speech.Synthesize(c.Request.Context(), req.Text, voice)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, audio.MIMEType, audio.Data)
}

type translationScoreRequest struct {
	Sentence    string `json:"sentence" binding:"required"`
	Translation string `json:"translation" binding:"required"`
	Level       string `json:"level"`
}

func (s *Server) handleTranslationScore(c *gin.Context) {
	var req translationScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	eval, err := s.deps.Grader.Score(c.Request.Context(), req.Sentence, req.Translation, req.Level)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, eval)
}

// recordGeneration appends a generation event; failures to record are
// logged, never surfaced to the client.
func (s *Server) recordGeneration(ctx context.Context, mode quizgen.Mode, input quizgen.GenerateInput, itemCount int, genErr error) {
	if s.deps.Events == nil {
		return
	}

	data := store.GenerationEventData{
		Mode:           string(mode),
		RequestedCount: input.Count,
		ItemCount:      itemCount,
		ContentChars:   len(input.Content),
		Level:          input.Level,
		Success:        genErr == nil,
	}
	if genErr != nil {
		data.ItemCount = 0
		data.ErrorKind = errorKind(genErr)
	}
	if err := s.deps.Events.AppendGeneration(ctx, data); err != nil {
		s.log.Warn("record generation event failed", zap.Error(err))
	}
}

// stateView renders the session for the client. The current item is
// presented without its answer fields until it has been answered.
func (s *Server) stateView(entry *sessionEntry) gin.H {
	st := entry.state
	view := gin.H{
		"session_id":  st.ID,
		"mode":        string(st.Mode),
		"phase":       st.Phase.String(),
		"current":     st.Current,
		"total":       st.Len(),
		"score":       st.Score,
		"answered":    st.Answered,
		"has_content": entry.content != "",
	}
	if st.LastResult != nil {
		view["last_result"] = st.LastResult
	}

	if st.Phase != session.PhaseInProgress {
		return view
	}

	if q := st.CurrentQuiz(); q != nil {
		item := gin.H{"question": q.Question, "choices": q.Choices}
		if st.Answered {
			item["correct_answer"] = q.CorrectAnswer
			item["explanation"] = q.Explanation
		}
		view["item"] = item
	}
	if tq := st.CurrentText(); tq != nil {
		item := gin.H{"question": tq.Question}
		if st.Answered {
			item["model_answer"] = tq.ModelAnswer
			item["key_points"] = tq.KeyPoints
			item["explanation"] = tq.Explanation
		}
		view["item"] = item
	}
	return view
}
