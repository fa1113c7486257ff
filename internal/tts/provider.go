package tts

import (
	"context"

	"github.com/dooshek/vocalize/internal/voicebank"
)

// Provider defines the interface for synthesis engine backends
type Provider interface {
	// GetAudio converts text to speech and returns audio data
	GetAudio(ctx context.Context, text string, voice string) ([]byte, error)

	// GetAvailableVoices returns the engine's advertised voice catalog
	GetAvailableVoices() []voicebank.VoiceDescriptor

	// GetAudioFormat returns the format of audio returned by GetAudio
	GetAudioFormat() AudioFormat

	// GetProviderName returns the name of the provider
	GetProviderName() string
}

// AudioFormat represents supported audio formats
type AudioFormat string

const (
	FormatOpus AudioFormat = "opus"
	FormatMP3  AudioFormat = "mp3"
	FormatAAC  AudioFormat = "aac"
	FormatFLAC AudioFormat = "flac"
	FormatWAV  AudioFormat = "wav"
	FormatPCM  AudioFormat = "pcm"
)
