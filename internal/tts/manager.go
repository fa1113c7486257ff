package tts

import (
	"context"
	"errors"
	"fmt"

	"github.com/dooshek/vocalize/internal/logger"
	"github.com/dooshek/vocalize/internal/types"
	"github.com/dooshek/vocalize/internal/voicebank"
)

// ErrSynthesisUnavailable is returned when no synthesis engine could be
// initialized. The resolved voice bank stays valid and inspectable even
// when synthesis cannot proceed.
var ErrSynthesisUnavailable = errors.New("synthesis engine unavailable")

// Manager owns the synthesis provider and its active voice. The "last
// selected voice" lives here and nowhere else; callers issue one
// SelectVoiceForLanguage per construction.
type Manager struct {
	provider Provider
	voice    string
}

// NewManager creates a Manager for the configured engine provider
func NewManager(config types.EngineConfig) (*Manager, error) {
	provider, err := createProvider(config)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSynthesisUnavailable, err)
	}

	logger.Infof("Initialized synthesis engine: %s", provider.GetProviderName())

	return &Manager{
		provider: provider,
		voice:    config.Voice,
	}, nil
}

// SelectVoiceForLanguage picks the catalog voice best matching the
// language code and makes it the active voice. When nothing matches, the
// engine default stays active; that is not an error.
func (m *Manager) SelectVoiceForLanguage(language string) (voicebank.VoiceDescriptor, bool) {
	selected, ok := voicebank.SelectVoice(language, m.provider.GetAvailableVoices())
	if !ok {
		logger.Warnf("No voice matches language %q, keeping engine default", language)
		return voicebank.VoiceDescriptor{}, false
	}

	m.voice = selected.ID
	logger.Infof("Selected voice %s (%s) for language %q", selected.ID, selected.Name, language)
	return selected, true
}

// GetAudio converts text to speech using the active voice
func (m *Manager) GetAudio(ctx context.Context, text string) ([]byte, error) {
	if text == "" {
		return nil, fmt.Errorf("text cannot be empty")
	}

	return m.provider.GetAudio(ctx, text, m.voice)
}

// GetAvailableVoices returns the engine's advertised voice catalog
func (m *Manager) GetAvailableVoices() []voicebank.VoiceDescriptor {
	return m.provider.GetAvailableVoices()
}

// GetAudioFormat returns the format of audio produced by GetAudio
func (m *Manager) GetAudioFormat() AudioFormat {
	return m.provider.GetAudioFormat()
}

// GetProviderName returns the name of the current provider
func (m *Manager) GetProviderName() string {
	return m.provider.GetProviderName()
}

// ActiveVoice returns the currently selected voice ID, empty when the
// engine default is in effect.
func (m *Manager) ActiveVoice() string {
	return m.voice
}

// createProvider creates the appropriate provider based on configuration
func createProvider(config types.EngineConfig) (Provider, error) {
	switch config.Provider {
	case "openai":
		if config.OpenAI.APIKey == "" {
			return nil, fmt.Errorf("OpenAI API key is required for the OpenAI engine - set OPENAI_API_KEY or engine.openai.api_key")
		}

		return NewOpenAIProvider(config.OpenAI.APIKey, OpenAIConfig{
			Model:  config.OpenAI.Model,
			Speed:  config.OpenAI.Speed,
			Format: config.OpenAI.Format,
		}), nil

	case "edge", "":
		return NewEdgeProvider(), nil

	default:
		return nil, fmt.Errorf("unsupported engine provider: %s (supported: openai, edge)", config.Provider)
	}
}
