package tts

import (
	"context"
	"fmt"

	"github.com/dooshek/vocalize/internal/logger"
	"github.com/dooshek/vocalize/internal/voicebank"
	"github.com/wujunwei928/edge-tts-go/edge_tts"
)

// EdgeProvider implements Provider using the Microsoft Edge neural TTS
// service. It needs no API key, which makes it the default engine.
type EdgeProvider struct{}

// NewEdgeProvider creates a new Edge TTS provider
func NewEdgeProvider() *EdgeProvider {
	return &EdgeProvider{}
}

// GetAudio converts text to speech and returns MP3 audio data
func (p *EdgeProvider) GetAudio(ctx context.Context, text string, voice string) ([]byte, error) {
	if voice == "" {
		voice = "fr-FR-DeniseNeural"
	}

	logger.Infof("Generating speech for text (length: %d chars) with voice: %s", len(text), voice)

	communicate, err := edge_tts.NewCommunicate(text, edge_tts.SetVoice(voice))
	if err != nil {
		return nil, fmt.Errorf("failed to create Edge TTS communicator: %w", err)
	}

	audioData, err := communicate.Stream()
	if err != nil {
		return nil, fmt.Errorf("Edge TTS synthesis failed: %w", err)
	}

	logger.Infof("Generated %d bytes of mp3 audio", len(audioData))

	return audioData, nil
}

// GetAvailableVoices returns a catalog of commonly used Edge neural
// voices. The language lives in the identifier prefix (e.g. "fr-FR"),
// so regional selection works against these IDs.
func (p *EdgeProvider) GetAvailableVoices() []voicebank.VoiceDescriptor {
	return []voicebank.VoiceDescriptor{
		{ID: "fr-FR-DeniseNeural", Name: "Denise (French, France)"},
		{ID: "fr-FR-HenriNeural", Name: "Henri (French, France)"},
		{ID: "fr-BE-CharlineNeural", Name: "Charline (French, Belgium)"},
		{ID: "fr-CA-SylvieNeural", Name: "Sylvie (French, Canada)"},
		{ID: "en-GB-SoniaNeural", Name: "Sonia (English, Great Britain)"},
		{ID: "en-US-AriaNeural", Name: "Aria (English, United States)"},
		{ID: "es-ES-ElviraNeural", Name: "Elvira (Spanish, Spain)"},
		{ID: "es-MX-DaliaNeural", Name: "Dalia (Spanish, Mexico)"},
		{ID: "de-DE-KatjaNeural", Name: "Katja (German, Germany)"},
		{ID: "it-IT-ElsaNeural", Name: "Elsa (Italian, Italy)"},
	}
}

// GetAudioFormat returns the Edge service output format
func (p *EdgeProvider) GetAudioFormat() AudioFormat {
	return FormatMP3
}

// GetProviderName returns provider name
func (p *EdgeProvider) GetProviderName() string {
	return "Edge TTS"
}
