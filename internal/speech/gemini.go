package speech

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"google.golang.org/genai"
)

const defaultTTSModel = "gemini-2.5-flash-preview-tts"

// GeminiSynthesizer implements Synthesizer with the Gemini speech API,
// caching results on disk keyed by voice and text.
type GeminiSynthesizer struct {
	client   *genai.Client
	model    string
	cacheDir string
	mu       sync.Mutex
}

// NewGemini creates a synthesizer. cacheDir may be empty to disable the
// cache.
func NewGemini(ctx context.Context, apiKey, model, cacheDir string) (*GeminiSynthesizer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}
	if model == "" {
		model = defaultTTSModel
	}
	if cacheDir != "" {
		if err := os.MkdirAll(cacheDir, 0o755); err != nil {
			return nil, fmt.Errorf("create speech cache dir: %w", err)
		}
	}
	return &GeminiSynthesizer{client: client, model: model, cacheDir: cacheDir}, nil
}

func (s *GeminiSynthesizer) Synthesize(ctx context.Context, text, voice string) (*Audio, error) {
	if cached, ok := s.fromCache(text, voice); ok {
		return cached, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Re-check after acquiring the lock.
	if cached, ok := s.fromCache(text, voice); ok {
		return cached, nil
	}

	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: voice},
			},
		},
	}

	contents := []*genai.Content{
		{Role: "user", Parts: []*genai.Part{{Text: text}}},
	}

	result, err := s.client.Models.GenerateContent(ctx, s.model, contents, config)
	if err != nil {
		return nil, fmt.Errorf("speech synthesis failed: %w", err)
	}

	blob := firstAudioBlob(result)
	if blob == nil {
		return nil, fmt.Errorf("speech response contained no audio")
	}

	audio := &Audio{Data: blob.Data, MIMEType: blob.MIMEType}
	s.toCache(text, voice, audio)
	return audio, nil
}

func firstAudioBlob(result *genai.GenerateContentResponse) *genai.Blob {
	for _, cand := range result.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return part.InlineData
			}
		}
	}
	return nil
}

func (s *GeminiSynthesizer) cachePath(text, voice string) string {
	h := sha256.Sum256([]byte(voice + ":" + text))
	return filepath.Join(s.cacheDir, hex.EncodeToString(h[:16])+".pcm")
}

func (s *GeminiSynthesizer) fromCache(text, voice string) (*Audio, bool) {
	if s.cacheDir == "" {
		return nil, false
	}
	data, err := os.ReadFile(s.cachePath(text, voice))
	if err != nil {
		return nil, false
	}
	// Gemini TTS returns raw PCM; the MIME type is stable per model.
	return &Audio{Data: data, MIMEType: "audio/L16;codec=pcm;rate=24000"}, true
}

func (s *GeminiSynthesizer) toCache(text, voice string, audio *Audio) {
	if s.cacheDir == "" {
		return
	}
	// Cache write failures are ignored; the audio was still produced.
	_ = os.WriteFile(s.cachePath(text, voice), audio.Data, 0o644)
}
