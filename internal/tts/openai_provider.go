package tts

import (
	"context"
	"fmt"
	"io"

	"github.com/dooshek/vocalize/internal/logger"
	"github.com/dooshek/vocalize/internal/voicebank"
	"github.com/sashabaranov/go-openai"
)

// OpenAIProvider implements Provider for the OpenAI TTS API
type OpenAIProvider struct {
	client *openai.Client
	config OpenAIConfig
}

// OpenAIConfig holds OpenAI TTS configuration
type OpenAIConfig struct {
	Model  string  // "tts-1" or "tts-1-hd"
	Speed  float64 // 0.25-4.0, default 1.0
	Format string  // "mp3", "opus", "aac", "flac", "wav", "pcm"
}

// NewOpenAIProvider creates a new OpenAI TTS provider
func NewOpenAIProvider(apiKey string, config OpenAIConfig) *OpenAIProvider {
	client := openai.NewClient(apiKey)

	if config.Model == "" {
		config.Model = "tts-1-hd"
	}
	if config.Speed == 0 {
		config.Speed = 1.0
	}
	if config.Format == "" {
		config.Format = "mp3"
	}

	return &OpenAIProvider{
		client: client,
		config: config,
	}
}

// GetAudio converts text to speech and returns audio data
func (p *OpenAIProvider) GetAudio(ctx context.Context, text string, voice string) ([]byte, error) {
	if voice == "" {
		voice = "nova"
	}

	logger.Infof("Generating speech for text (length: %d chars) with voice: %s", len(text), voice)

	response, err := p.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model:          openai.SpeechModel(p.config.Model),
		Input:          text,
		Voice:          openai.SpeechVoice(voice),
		Speed:          p.config.Speed,
		ResponseFormat: openai.SpeechResponseFormat(p.config.Format),
	})
	if err != nil {
		logger.Error("OpenAI TTS API error", err)
		return nil, fmt.Errorf("speech request failed: %w", err)
	}
	defer response.Close()

	audioData, err := io.ReadAll(response)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio data: %w", err)
	}

	logger.Infof("Generated %d bytes of %s audio", len(audioData), p.config.Format)

	return audioData, nil
}

// GetAvailableVoices returns the OpenAI voice catalog. The identifiers
// carry no language segment, so language-based selection falls through to
// the configured default voice.
func (p *OpenAIProvider) GetAvailableVoices() []voicebank.VoiceDescriptor {
	return []voicebank.VoiceDescriptor{
		{ID: "alloy", Name: "Alloy (neutral)"},
		{ID: "echo", Name: "Echo (male)"},
		{ID: "fable", Name: "Fable (British accent)"},
		{ID: "onyx", Name: "Onyx (deep male)"},
		{ID: "nova", Name: "Nova (female)"},
		{ID: "shimmer", Name: "Shimmer (warm female)"},
	}
}

// GetAudioFormat returns the configured response format
func (p *OpenAIProvider) GetAudioFormat() AudioFormat {
	return AudioFormat(p.config.Format)
}

// GetProviderName returns provider name
func (p *OpenAIProvider) GetProviderName() string {
	return "OpenAI TTS"
}
