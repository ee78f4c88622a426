package server

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/akiohm/quizlab/internal/chat"
	"github.com/akiohm/quizlab/internal/config"
	"github.com/akiohm/quizlab/internal/grader"
	"github.com/akiohm/quizlab/internal/llm"
	"github.com/akiohm/quizlab/internal/quizgen"
	"github.com/akiohm/quizlab/internal/speech"
	"github.com/akiohm/quizlab/internal/themelog"
)

const testPassword = "correct-horse-battery"

const quizResponse = "Here you go!\n" +
	`{"questions":[{"question":"What color is the sky?","choices":["Red","Blue","Green","Yellow"],"correct_answer":"Blue","explanation":"Stated in the text."}]}`

const passageResponse = `{"passage":"The quarterly meeting was moved to Tuesday. All staff should check the new schedule.","theme":"office scheduling","speaker_gender":"female"}`

type testEnv struct {
	server *Server
	router *gin.Engine
	mock   *llm.MockProvider
	synth  *speech.MockSynthesizer
	themes *themelog.Log
	token  string
}

func newTestEnv(t *testing.T, responses ...llm.MockResponse) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mock := llm.NewMockProvider(responses...)
	synth := speech.NewMock([]byte("pcm-bytes"), "audio/L16;codec=pcm;rate=24000")
	themes := themelog.Open(filepath.Join(t.TempDir(), "themes.json"))

	cfg := &config.Config{}
	cfg.Auth.Password = testPassword
	cfg.Server.Mode = "debug"
	cfg.ThemeLog.Keep = themelog.DefaultKeep

	srv := New(cfg, zap.NewNop(), Deps{
		Generator: quizgen.New(mock, quizgen.DefaultConfig()),
		Grader:    grader.New(mock, grader.DefaultConfig()),
		Chat:      chat.New(mock, chat.DefaultConfig()),
		Speech:    synth,
		Themes:    themes,
	})

	env := &testEnv{server: srv, router: srv.Router(), mock: mock, synth: synth, themes: themes}
	env.token = env.login(t, testPassword)
	return env
}

func (e *testEnv) login(t *testing.T, password string) string {
	t.Helper()
	w := httptest.NewRecorder()
	body, _ := json.Marshal(map[string]string{"password": password})
	req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	e.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp["token"])
	return resp["token"]
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var r *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	} else {
		r = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+e.token)
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) upload(t *testing.T, filename, text string) string {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte(text))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+e.token)
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp["session_id"].(string)
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m), w.Body.String())
	return m
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	env := newTestEnv(t)

	w := httptest.NewRecorder()
	body, _ := json.Marshal(map[string]string{"password": "wrong"})
	req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	env.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestEndpointsRequireToken(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/api/sessions/abc", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/sessions/abc", nil)
	req.Header.Set("Authorization", "Bearer made-up-token")
	w = httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUploadRejectsUnsupportedFormat(t *testing.T) {
	env := newTestEnv(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, _ := mw.CreateFormFile("file", "notes.pdf")
	fw.Write([]byte("%PDF-1.4"))
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+env.token)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), ".pdf")
}

func TestQuizSessionLifecycle(t *testing.T) {
	env := newTestEnv(t, llm.MockResponse{Content: json.RawMessage(quizResponse)})
	id := env.upload(t, "notes.txt", "The sky is blue.")

	w := env.do(t, http.MethodPost, "/api/sessions/"+id+"/generate",
		map[string]any{"mode": "multiple_choice", "count": 1})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	view := decodeBody(t, w)
	assert.Equal(t, "in_progress", view["phase"])
	assert.Equal(t, float64(1), view["total"])

	// The answer must not be visible before answering.
	item := view["item"].(map[string]any)
	assert.Equal(t, "What color is the sky?", item["question"])
	_, leaked := item["correct_answer"]
	assert.False(t, leaked)

	// Wrong answer scores zero; the correct answer is now revealed.
	w = env.do(t, http.MethodPost, "/api/sessions/"+id+"/answer",
		map[string]any{"answer": "Red"})
	require.Equal(t, http.StatusOK, w.Code)
	view = decodeBody(t, w)
	result := view["result"].(map[string]any)
	assert.False(t, result["Correct"].(bool))
	item = view["item"].(map[string]any)
	assert.Equal(t, "Blue", item["correct_answer"])

	// Advancing past the last item completes the session.
	w = env.do(t, http.MethodPost, "/api/sessions/"+id+"/advance", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "completed", decodeBody(t, w)["phase"])

	// Reset returns to empty.
	w = env.do(t, http.MethodPost, "/api/sessions/"+id+"/reset", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "empty", decodeBody(t, w)["phase"])
}

func TestAdvanceBeforeAnswerRejected(t *testing.T) {
	env := newTestEnv(t, llm.MockResponse{Content: json.RawMessage(quizResponse)})
	id := env.upload(t, "notes.txt", "The sky is blue.")

	w := env.do(t, http.MethodPost, "/api/sessions/"+id+"/generate",
		map[string]any{"mode": "multiple_choice", "count": 1})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodPost, "/api/sessions/"+id+"/advance", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestFailedGenerationLeavesSessionUntouched(t *testing.T) {
	env := newTestEnv(t,
		llm.MockResponse{Content: json.RawMessage(quizResponse)},
		llm.MockResponse{Content: json.RawMessage("I cannot help with that.")},
	)
	id := env.upload(t, "notes.txt", "The sky is blue.")

	w := env.do(t, http.MethodPost, "/api/sessions/"+id+"/generate",
		map[string]any{"mode": "multiple_choice", "count": 1})
	require.Equal(t, http.StatusOK, w.Code)

	// Second generation gets a response with no JSON span.
	w = env.do(t, http.MethodPost, "/api/sessions/"+id+"/generate",
		map[string]any{"mode": "multiple_choice", "count": 1})
	assert.Equal(t, http.StatusBadGateway, w.Code)

	w = env.do(t, http.MethodGet, "/api/sessions/"+id, nil)
	view := decodeBody(t, w)
	assert.Equal(t, "in_progress", view["phase"])
	assert.Equal(t, float64(1), view["total"])
}

func TestGenerateWithoutUploadRejected(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/sessions/no-upload/generate",
		map[string]any{"mode": "multiple_choice", "count": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, env.mock.CallCount())
}

func TestGenerateUnknownMode(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/sessions/x/generate",
		map[string]any{"mode": "essay", "count": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListeningAppendsThemeAndAvoidsRepeats(t *testing.T) {
	env := newTestEnv(t,
		llm.MockResponse{Content: json.RawMessage(passageResponse)},
		llm.MockResponse{Content: json.RawMessage(passageResponse)},
	)

	w := env.do(t, http.MethodPost, "/api/listening",
		map[string]any{"level": "TOEIC 600", "word_count": 50})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	themes := env.themes.RecentThemes(themelog.DefaultKeep)
	require.Equal(t, []string{"office scheduling"}, themes)

	// The second request must carry the first theme as one to avoid.
	w = env.do(t, http.MethodPost, "/api/listening",
		map[string]any{"level": "TOEIC 600", "word_count": 50})
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, env.mock.Calls, 2)
	assert.Contains(t, env.mock.Calls[1].Messages[0].Content, "office scheduling")
}

func TestSpeechReturnsAudioWithMIMEType(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/speech",
		map[string]any{"text": "Hello there.", "gender": "male"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "audio/L16;codec=pcm;rate=24000", w.Header().Get("Content-Type"))
	assert.Equal(t, "pcm-bytes", w.Body.String())

	require.Len(t, env.synth.Calls, 1)
	assert.Equal(t, "Puck", env.synth.Calls[0].Voice)
}

func TestTranslationScore(t *testing.T) {
	env := newTestEnv(t, llm.MockResponse{
		Content: json.RawMessage(`{"score":4,"feedback":"Minor word choice issue.","model_translation":"The meeting was rescheduled."}`),
	})

	w := env.do(t, http.MethodPost, "/api/translation/score", map[string]any{
		"sentence":    "会議は火曜日に変更されました。",
		"translation": "The meeting moved to Tuesday.",
		"level":       "TOEIC 600",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var eval grader.Evaluation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &eval))
	assert.Equal(t, 4.0, eval.Score)
	assert.Contains(t, eval.Feedback, "word choice")
}

func TestChatGroundedInUploadWithHistory(t *testing.T) {
	env := newTestEnv(t,
		llm.MockResponse{Content: json.RawMessage("Because of Rayleigh scattering.")},
		llm.MockResponse{Content: json.RawMessage("Yes, that applies at sunset too.")},
	)
	id := env.upload(t, "notes.txt", "The sky is blue.")

	w := env.do(t, http.MethodPost, "/api/sessions/"+id+"/chat",
		map[string]any{"question": "Why is the sky blue?"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decodeBody(t, w)
	assert.Equal(t, "Because of Rayleigh scattering.", resp["answer"])
	assert.Len(t, resp["history"], 2)

	// The question must be grounded in the uploaded content.
	require.Len(t, env.mock.Calls, 1)
	assert.Contains(t, env.mock.Calls[0].Messages[0].Content, "The sky is blue.")

	// The second turn replays the first exchange as history.
	w = env.do(t, http.MethodPost, "/api/sessions/"+id+"/chat",
		map[string]any{"question": "Does that hold at sunset?"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody(t, w)["history"], 4)

	require.Len(t, env.mock.Calls, 2)
	second := env.mock.Calls[1]
	require.Len(t, second.Messages, 3)
	assert.Equal(t, "Because of Rayleigh scattering.", second.Messages[1].Content)
}

func TestChatWorksWithoutUpload(t *testing.T) {
	env := newTestEnv(t, llm.MockResponse{Content: json.RawMessage("Hello!")})

	w := env.do(t, http.MethodPost, "/api/sessions/fresh/chat",
		map[string]any{"question": "Hi"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Hi", env.mock.Calls[0].Messages[0].Content)
}

func TestChatClearDropsHistoryOnly(t *testing.T) {
	env := newTestEnv(t,
		llm.MockResponse{Content: json.RawMessage("Answer one.")},
		llm.MockResponse{Content: json.RawMessage("Answer two.")},
	)
	id := env.upload(t, "notes.txt", "The sky is blue.")

	w := env.do(t, http.MethodPost, "/api/sessions/"+id+"/chat",
		map[string]any{"question": "First question?"})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodPost, "/api/sessions/"+id+"/chat/clear", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody(t, w)["history"], 0)

	// The next question starts a fresh conversation, content intact.
	w = env.do(t, http.MethodPost, "/api/sessions/"+id+"/chat",
		map[string]any{"question": "Second question?"})
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, env.mock.Calls, 2)
	require.Len(t, env.mock.Calls[1].Messages, 1)
	assert.Contains(t, env.mock.Calls[1].Messages[0].Content, "The sky is blue.")
}
