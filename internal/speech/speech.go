// Package speech wraps the external text-to-speech collaborator behind a
// small interface: text plus a voice in, audio bytes plus a MIME type out.
package speech

import "context"

// Audio is synthesized speech.
type Audio struct {
	Data     []byte
	MIMEType string
}

// Synthesizer converts text to speech.
type Synthesizer interface {
	// Synthesize renders text with the named voice. Voice names are
	// provider-specific; VoiceForGender maps the generator's speaker
	// gender to a sensible default.
	Synthesize(ctx context.Context, text, voice string) (*Audio, error)
}

// VoiceForGender maps a passage's speaker gender to a default voice.
func VoiceForGender(gender string) string {
	if gender == "male" {
		return "Puck"
	}
	return "Kore"
}
