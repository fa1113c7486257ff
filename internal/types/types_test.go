package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetVoiceBankConfig_Defaults(t *testing.T) {
	cfg := &Config{}
	bank := cfg.GetVoiceBankConfig()

	assert.Equal(t, "./voices", bank.Dir)
	assert.Equal(t, "frf", bank.Stem)
	assert.Equal(t, "fr", bank.Language)
}

func TestGetVoiceBankConfig_ExplicitValuesWin(t *testing.T) {
	cfg := &Config{VoiceBank: VoiceBankConfig{Dir: "/data/voices", Stem: "enu", Language: "en"}}
	bank := cfg.GetVoiceBankConfig()

	assert.Equal(t, "/data/voices", bank.Dir)
	assert.Equal(t, "enu", bank.Stem)
	assert.Equal(t, "en", bank.Language)
}

func TestGetEngineConfig_Defaults(t *testing.T) {
	cfg := &Config{}
	engine := cfg.GetEngineConfig()

	assert.Equal(t, "edge", engine.Provider)
	assert.Equal(t, OpenAIModelTTS1HD, engine.OpenAI.Model)
	assert.Equal(t, 1.0, engine.OpenAI.Speed)
	assert.Equal(t, "mp3", engine.OpenAI.Format)
}
