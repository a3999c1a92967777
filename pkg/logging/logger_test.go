package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Level != LevelInfo {
		t.Errorf("default level = %s, want %s", cfg.Level, LevelInfo)
	}
	if cfg.Pretty {
		t.Error("default pretty = true, want false")
	}
}

func TestSetup(t *testing.T) {
	// One message per level, mirroring what the loading pipeline
	// actually emits at that level.
	tests := []struct {
		name  string
		level LogLevel
		emit  func(logger zerolog.Logger, msg string)
		msg   string
	}{
		{
			name:  "debug_cache_hit",
			level: LevelDebug,
			emit:  func(l zerolog.Logger, m string) { l.Debug().Msg(m) },
			msg:   "Cache hit",
		},
		{
			name:  "info_batch_complete",
			level: LevelInfo,
			emit:  func(l zerolog.Logger, m string) { l.Info().Msg(m) },
			msg:   "Batch load complete",
		},
		{
			name:  "warn_budget_degrading",
			level: LevelWarn,
			emit:  func(l zerolog.Logger, m string) { l.Warn().Msg(m) },
			msg:   "Failure budget degrading",
		},
		{
			name:  "error_budget_exhausted",
			level: LevelError,
			emit:  func(l zerolog.Logger, m string) { l.Error().Msg(m) },
			msg:   "Failure budget exhausted - loads will be blocked",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := Setup(Config{
				Level:  tt.level,
				Pretty: false,
				Output: buf,
			})

			tt.emit(logger, tt.msg)

			if got := buf.String(); !strings.Contains(got, tt.msg) {
				t.Errorf("output = %q, want it to contain %q", got, tt.msg)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input LogLevel
		want  zerolog.Level
	}{
		{LevelDebug, zerolog.DebugLevel},
		{LevelInfo, zerolog.InfoLevel},
		{LevelWarn, zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{LevelError, zerolog.ErrorLevel},
		{"verbose", zerolog.InfoLevel}, // unknown levels default to info
	}

	for _, tt := range tests {
		t.Run(string(tt.input), func(t *testing.T) {
			if got := parseLevel(tt.input); got != tt.want {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	Setup(Config{
		Level:  LevelInfo,
		Pretty: false,
		Output: buf,
	})

	logger := NewLogger("batch-loader")
	logger.Info().Int("batch_size", 3).Msg("Batch load complete")

	output := buf.String()
	if !strings.Contains(output, `"component":"batch-loader"`) {
		t.Errorf("output missing component field, got %q", output)
	}
	if !strings.Contains(output, "Batch load complete") {
		t.Errorf("output missing message, got %q", output)
	}
}

func TestLogLevelFiltering(t *testing.T) {
	buf := &bytes.Buffer{}
	Setup(Config{
		Level:  LevelWarn,
		Pretty: false,
		Output: buf,
	})

	logger := NewLogger("cached-loader")

	// Below warn: filtered out
	logger.Debug().Msg("Cache hit")
	logger.Info().Msg("Cached loaded value")

	// Warn and above: kept
	logger.Warn().Msg("Cache get error - falling back to direct load")
	logger.Error().Msg("Failure budget exhausted - loads will be blocked")

	output := buf.String()

	if strings.Contains(output, "Cache hit") {
		t.Error("debug message leaked through warn-level filter")
	}
	if strings.Contains(output, "Cached loaded value") {
		t.Error("info message leaked through warn-level filter")
	}
	if !strings.Contains(output, "falling back to direct load") {
		t.Error("warn message missing at warn level")
	}
	if !strings.Contains(output, "Failure budget exhausted") {
		t.Error("error message missing at warn level")
	}
}
