package service

import (
	"context"
	"fmt"

	"github.com/birthdaybliss/bliss-backend/internal/common"
)

// SpeechSynthesizer is the external AI collaborator that reads a message aloud
type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, message string) (string, error)
}

// TTSService converts a page's message into playable audio
type TTSService interface {
	SpeakMessage(ctx context.Context, birthdayID string) (string, error)
}

type ttsService struct {
	birthdays   BirthdayService
	synthesizer SpeechSynthesizer
}

// NewTTSService creates a new TTSService. The synthesizer may be nil when
// the AI collaborator is disabled.
func NewTTSService(birthdays BirthdayService, synthesizer SpeechSynthesizer) TTSService {
	return &ttsService{birthdays: birthdays, synthesizer: synthesizer}
}

// SpeakMessage returns the audio data URI for the record's message. Failures
// surface as ErrAIService so callers can degrade to a silent page.
func (s *ttsService) SpeakMessage(ctx context.Context, birthdayID string) (string, error) {
	birthday, err := s.birthdays.Get(ctx, birthdayID)
	if err != nil {
		return "", err
	}

	if s.synthesizer == nil {
		return "", fmt.Errorf("%w: text-to-speech is not configured", common.ErrAIService)
	}

	audio, err := s.synthesizer.Synthesize(ctx, birthday.Message)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrAIService, err)
	}
	return audio, nil
}
