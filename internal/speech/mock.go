package speech

import (
	"context"
	"sync"
)

// MockSynthesizer is a deterministic Synthesizer for testing. It returns a
// fixed payload and records every call.
type MockSynthesizer struct {
	mu    sync.Mutex
	Audio Audio
	Err   error
	Calls []MockCall
}

// MockCall records the arguments of one Synthesize call.
type MockCall struct {
	Text  string
	Voice string
}

// NewMock creates a MockSynthesizer returning the given payload.
func NewMock(data []byte, mimeType string) *MockSynthesizer {
	return &MockSynthesizer{Audio: Audio{Data: data, MIMEType: mimeType}}
}

func (m *MockSynthesizer) Synthesize(_ context.Context, text, voice string) (*Audio, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, MockCall{Text: text, Voice: voice})
	if m.Err != nil {
		return nil, m.Err
	}
	audio := m.Audio
	return &audio, nil
}
