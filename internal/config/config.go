package config

import (
	"fmt"
	"os"

	"github.com/dooshek/vocalize/internal/fileops"
	"github.com/dooshek/vocalize/internal/logger"
	"github.com/dooshek/vocalize/internal/types"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	configFilename = "vocalize.yaml"
)

// LoadConfig reads ~/.config/vocalize/vocalize.yaml and applies
// environment overrides. A missing config file yields defaults, not an
// error.
func LoadConfig() (*types.Config, error) {
	fileOps, err := fileops.NewDefaultFileOps()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize file operations: %w", err)
	}

	if err := fileOps.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to create directories: %w", err)
	}

	var config types.Config

	data, err := fileOps.LoadConfig(configFilename)
	if err != nil && err != fileops.ErrConfigNotFound {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	applyEnvOverrides(&config)

	return &config, nil
}

// applyEnvOverrides lets the environment (or a .env file in the working
// directory) supply the OpenAI API key without persisting it to disk.
func applyEnvOverrides(config *types.Config) {
	if err := godotenv.Load(); err != nil {
		logger.Debugf("No .env file loaded: %v", err)
	}

	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		config.Engine.OpenAI.APIKey = key
	}
	if provider := os.Getenv("VOCALIZE_ENGINE"); provider != "" {
		config.Engine.Provider = provider
	}
}

// SaveConfig persists config, merging over any existing file so values
// not set by the caller survive.
func SaveConfig(config *types.Config) error {
	fileOps, err := fileops.NewDefaultFileOps()
	if err != nil {
		return fmt.Errorf("failed to initialize file operations: %w", err)
	}

	existingConfig, err := LoadConfig()
	if err != nil {
		logger.Warnf("Failed to load existing config: %v", err)
	} else if existingConfig != nil {
		mergeConfigs(existingConfig, config)
		config = existingConfig
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := fileOps.SaveConfig(configFilename, data); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	return nil
}

// mergeConfigs merges the sourceConfig into targetConfig, preserving existing values in targetConfig
// that are not explicitly set in sourceConfig
func mergeConfigs(targetConfig, sourceConfig *types.Config) {
	if sourceConfig.VoiceBank.Dir != "" {
		targetConfig.VoiceBank.Dir = sourceConfig.VoiceBank.Dir
	}
	if sourceConfig.VoiceBank.Stem != "" {
		targetConfig.VoiceBank.Stem = sourceConfig.VoiceBank.Stem
	}
	if sourceConfig.VoiceBank.Language != "" {
		targetConfig.VoiceBank.Language = sourceConfig.VoiceBank.Language
	}

	if sourceConfig.Engine.Provider != "" {
		targetConfig.Engine.Provider = sourceConfig.Engine.Provider
	}
	if sourceConfig.Engine.Voice != "" {
		targetConfig.Engine.Voice = sourceConfig.Engine.Voice
	}
	if sourceConfig.Engine.OpenAI.APIKey != "" {
		targetConfig.Engine.OpenAI.APIKey = sourceConfig.Engine.OpenAI.APIKey
	}
	if sourceConfig.Engine.OpenAI.Model != "" {
		targetConfig.Engine.OpenAI.Model = sourceConfig.Engine.OpenAI.Model
	}
	if sourceConfig.Engine.OpenAI.Speed != 0 {
		targetConfig.Engine.OpenAI.Speed = sourceConfig.Engine.OpenAI.Speed
	}
	if sourceConfig.Engine.OpenAI.Format != "" {
		targetConfig.Engine.OpenAI.Format = sourceConfig.Engine.OpenAI.Format
	}
}
