package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/dooshek/vocalize/internal/config"
	"github.com/dooshek/vocalize/internal/fileops"
	"github.com/dooshek/vocalize/internal/logger"
	"github.com/dooshek/vocalize/internal/output"
	"github.com/dooshek/vocalize/internal/tts"
	"github.com/dooshek/vocalize/internal/types"
	"github.com/dooshek/vocalize/internal/voicebank"
	"github.com/fatih/color"
)

func init() {
	// Set custom usage message to show -- prefix
	flag.Usage = func() {
		out := flag.CommandLine.Output()
		fmt.Fprintf(out, "Usage of %s:\n", os.Args[0])
		flag.VisitAll(func(f *flag.Flag) {
			fmt.Fprintf(out, "  --%s", f.Name)
			name, usage := flag.UnquoteUsage(f)
			if len(name) > 0 {
				fmt.Fprintf(out, " %s", name)
			}
			fmt.Fprintf(out, "\n    \t%s", usage)
			if f.DefValue != "" && f.DefValue != "false" {
				fmt.Fprintf(out, " (default %q)", f.DefValue)
			}
			fmt.Fprintf(out, "\n")
		})
	}
}

func main() {
	text := flag.String("text", "", "Text to convert to speech")
	textFile := flag.String("file", "", "Input text file to read from")
	outputPath := flag.String("output", "", "Output audio file path (e.g. output.wav); plays audio when omitted")
	voicesDir := flag.String("voices-dir", "", "Path to directory containing voice files")
	language := flag.String("language", "", "Language code for voice selection (e.g. fr, en, fr-be)")
	stem := flag.String("stem", "", "Voice file-name stem")
	listVoices := flag.Bool("list-voices", false, "List the engine's available voices and exit")
	saveConfig := flag.Bool("save-config", false, "Persist the given flags to the config file and exit")
	logLevel := flag.String("log-level", "info", "Set log level (debug|info|warn|error)")
	logFilename := flag.String("log-filename", "", "Log to file instead of stdout")

	flag.Parse()

	logger.SetLevel(*logLevel)
	if *logFilename != "" {
		if err := logger.SetOutputFile(*logFilename); err != nil {
			fmt.Printf("Error setting log file: %v\n", err)
			os.Exit(1)
		}
		defer logger.CloseLogFile()
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Error loading config", err)
		os.Exit(1)
	}

	// Flags win over the config file
	bankCfg := cfg.GetVoiceBankConfig()
	if *voicesDir != "" {
		bankCfg.Dir = *voicesDir
	}
	if *stem != "" {
		bankCfg.Stem = *stem
	}
	if *language != "" {
		bankCfg.Language = *language
	}

	if *saveConfig {
		toSave := &types.Config{}
		toSave.VoiceBank.Dir = *voicesDir
		toSave.VoiceBank.Stem = *stem
		toSave.VoiceBank.Language = *language
		if err := config.SaveConfig(toSave); err != nil {
			logger.Error("Failed to save config", err)
			os.Exit(1)
		}
		fileOps, err := fileops.NewDefaultFileOps()
		if err != nil {
			logger.Error("Failed to initialize file operations", err)
			os.Exit(1)
		}
		color.New(color.FgGreen).Printf("✅ Configuration saved to %s\n", fileOps.GetConfigDir())
		os.Exit(0)
	}

	manager, err := tts.NewManager(cfg.GetEngineConfig())
	if err != nil {
		logger.Error("Failed to initialize synthesis engine", err)
		os.Exit(1)
	}

	if *listVoices {
		printVoiceCatalog(manager)
		os.Exit(0)
	}

	if (*text == "") == (*textFile == "") {
		fmt.Fprintln(os.Stderr, "Either --text or --file must be specified (not both)")
		flag.Usage()
		os.Exit(2)
	}

	logger.Infof("Loading voice files from: %s", bankCfg.Dir)
	bank, err := voicebank.New(bankCfg.Dir, bankCfg.Stem)
	if err != nil {
		logger.Error("Cannot read voices directory", err)
		os.Exit(1)
	}

	reportBank(bank)

	// Voice explicitly pinned in config wins over language selection
	if cfg.Engine.Voice == "" {
		manager.SelectVoiceForLanguage(bankCfg.Language)
	}

	input := *text
	if *textFile != "" {
		data, err := os.ReadFile(*textFile)
		if err != nil {
			logger.Error("Error reading text file", err)
			os.Exit(1)
		}
		input = string(data)
	}

	preview := input
	if len(preview) > 50 {
		preview = preview[:50] + "..."
	}
	logger.Infof("Synthesizing text: %s", preview)

	audioData, err := manager.GetAudio(context.Background(), input)
	if err != nil {
		logger.Error("Synthesis failed", err)
		os.Exit(1)
	}

	format := string(manager.GetAudioFormat())
	if *outputPath != "" {
		if err := output.Save(*outputPath, audioData, format); err != nil {
			logger.Error("Failed to save audio", err)
			os.Exit(1)
		}
		color.New(color.FgGreen).Printf("✅ Audio saved to %s\n", *outputPath)
	} else {
		if err := output.Play(audioData, format); err != nil {
			logger.Error("Failed to play audio", err)
			os.Exit(1)
		}
	}
}

// reportBank prints what the resolution pass found, the way the voice
// sets have always been reported: found files with sizes, then one
// warning naming every absent candidate.
func reportBank(bank *voicebank.Bank) {
	bold := color.New(color.Bold)
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)

	bold.Println("Voice files available:")
	for _, e := range bank.Inventory {
		green.Printf("  - %s (%s, %d bytes)\n", e.Name, e.Role, e.Size)
	}

	if missing := voicebank.Missing(bank.Stem, bank.Inventory); len(missing) > 0 {
		yellow.Printf("Warning: Missing voice files: %s\n", strings.Join(missing, ", "))
		yellow.Printf("Please place voice files in: %s\n", bank.Dir)
	}

	if bank.NoVoiceData() {
		logger.Warn("No voice data found, synthesis will use the engine voice only")
	} else {
		logger.Infof("Voice data loaded: %d bytes", len(bank.Bundle.VoiceData))
	}
	if bank.Bundle.Dictionary != nil {
		logger.Infof("Dictionary loaded: %d bytes", len(bank.Bundle.Dictionary))
	}
	if bank.Bundle.Linguistic != nil {
		logger.Infof("Linguistic data loaded: %d bytes", len(bank.Bundle.Linguistic))
	}
	for _, w := range bank.Warnings {
		yellow.Printf("Warning: %s\n", w)
	}
}

func printVoiceCatalog(manager *tts.Manager) {
	bold := color.New(color.Bold)
	cyan := color.New(color.FgCyan)

	bold.Printf("Available voices (%s):\n", manager.GetProviderName())
	for _, v := range manager.GetAvailableVoices() {
		cyan.Printf("  %-24s %s\n", v.ID, v.Name)
	}
}
