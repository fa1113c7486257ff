package types

import "github.com/sashabaranov/go-openai"

// VoiceBankConfig points at the on-disk voice resource set.
type VoiceBankConfig struct {
	Dir      string `yaml:"dir"`      // directory holding the voice files
	Stem     string `yaml:"stem"`     // candidate file-name prefix (e.g. "frf")
	Language string `yaml:"language"` // language code used for voice selection
}

// EngineConfig holds configuration for the synthesis engine
type EngineConfig struct {
	Provider string             `yaml:"provider"` // "openai", "edge"
	Voice    string             `yaml:"voice"`    // explicit voice ID, overrides language selection
	OpenAI   EngineOpenAIConfig `yaml:"openai"`
}

// EngineOpenAIConfig holds OpenAI TTS specific configuration
type EngineOpenAIConfig struct {
	APIKey string  `yaml:"api_key"`
	Model  string  `yaml:"model"`  // "tts-1" or "tts-1-hd"
	Speed  float64 `yaml:"speed"`  // 0.25-4.0, default 1.0
	Format string  `yaml:"format"` // "mp3", "opus", "aac", "flac", "wav", "pcm"
}

type Config struct {
	VoiceBank VoiceBankConfig `yaml:"voice_bank"`
	Engine    EngineConfig    `yaml:"engine"`
}

// GetVoiceBankConfig returns voice bank configuration with defaults
func (c *Config) GetVoiceBankConfig() VoiceBankConfig {
	config := c.VoiceBank

	if config.Dir == "" {
		config.Dir = "./voices"
	}
	if config.Stem == "" {
		config.Stem = "frf"
	}
	if config.Language == "" {
		config.Language = "fr"
	}

	return config
}

// GetEngineConfig returns engine configuration with defaults
func (c *Config) GetEngineConfig() EngineConfig {
	config := c.Engine

	if config.Provider == "" {
		config.Provider = "edge" // needs no API key
	}

	// OpenAI defaults
	if config.OpenAI.Model == "" {
		config.OpenAI.Model = "tts-1-hd"
	}
	if config.OpenAI.Speed == 0 {
		config.OpenAI.Speed = 1.0
	}
	if config.OpenAI.Format == "" {
		config.OpenAI.Format = "mp3"
	}

	return config
}

const (
	OpenAIModelTTS1   string = string(openai.TTSModel1)
	OpenAIModelTTS1HD string = string(openai.TTSModel1HD)
)
