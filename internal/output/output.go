package output

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/dooshek/vocalize/internal/logger"
	"github.com/dooshek/vocalize/pkg/wav"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

func init() {
	ffmpeg.LogCompiledCommand = false
}

// Save writes synthesized audio to path. When the requested extension
// differs from the engine's native format, the audio is transcoded with
// ffmpeg; raw PCM destined for a .wav file only needs a header.
func Save(path string, audioData []byte, format string) error {
	target := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if target == "" || target == format {
		return os.WriteFile(path, audioData, 0o644)
	}

	if format == "pcm" && target == "wav" {
		wavData, err := wav.FromPCM(audioData, 1, 24000)
		if err != nil {
			return fmt.Errorf("failed to build WAV container: %w", err)
		}
		return os.WriteFile(path, wavData, 0o644)
	}

	return transcode(path, audioData, format)
}

// transcode converts audio between container formats via ffmpeg
func transcode(path string, audioData []byte, format string) error {
	tmpFile, err := os.CreateTemp("", fmt.Sprintf("vocalize_*.%s", format))
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer os.Remove(tmpFile.Name())

	if _, err := tmpFile.Write(audioData); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to write audio data: %w", err)
	}
	tmpFile.Close()

	logger.Debugf("Transcoding %s audio to %s", format, path)

	err = ffmpeg.Input(tmpFile.Name()).
		Output(path, ffmpeg.KwArgs{
			"loglevel": "quiet",
			"threads":  "auto",
		}).
		OverWriteOutput().
		Run()
	if err != nil {
		return fmt.Errorf("ffmpeg transcode failed: %w", err)
	}

	return nil
}

// Play plays audio data through the system audio player
func Play(audioData []byte, format string) error {
	tmpFile, err := os.CreateTemp("", fmt.Sprintf("vocalize_*.%s", format))
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer os.Remove(tmpFile.Name())

	if _, err := tmpFile.Write(audioData); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to write audio data: %w", err)
	}
	tmpFile.Close()

	logger.Infof("🔊 Playing audio...")

	cmd := exec.Command("paplay", tmpFile.Name())
	if err := cmd.Run(); err != nil {
		logger.Debugf("paplay failed, trying fallback players: %v", err)
		return playFallback(tmpFile.Name())
	}

	logger.Debugf("Audio playback completed")
	return nil
}

// playFallback tries alternative audio players
func playFallback(filename string) error {
	players := [][]string{
		{"mpv", "--no-video", "--really-quiet", filename},
		{"ffplay", "-nodisp", "-autoexit", "-loglevel", "quiet", filename},
		{"aplay", filename},
		{"vlc", "--intf", "dummy", "--play-and-exit", filename},
	}

	for _, player := range players {
		cmd := exec.Command(player[0], player[1:]...)
		if err := cmd.Run(); err == nil {
			logger.Debugf("Audio played using %s", player[0])
			return nil
		}
	}

	return fmt.Errorf("no suitable audio player found (tried: paplay, mpv, ffplay, aplay, vlc)")
}
