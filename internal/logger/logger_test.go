package logger

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf)

	log.Info().Str("source", "movies.csv").Msg("read finished")

	out := buf.String()
	if !strings.Contains(out, "| read finished |") {
		t.Errorf("expected formatted message, got %q", out)
	}
	if !strings.Contains(out, "movies.csv") {
		t.Errorf("expected field value in output, got %q", out)
	}
}

func TestSetDebug(t *testing.T) {
	defer SetDebug(false)

	SetDebug(true)
	if got := GetLogger().GetLevel(); got != zerolog.DebugLevel {
		t.Errorf("level = %v, want debug", got)
	}

	SetDebug(false)
	if got := GetLogger().GetLevel(); got != zerolog.InfoLevel {
		t.Errorf("level = %v, want info", got)
	}
}

func TestSetOutput(t *testing.T) {
	defer SetOutput(os.Stderr)
	defer SetDebug(false)

	var buf bytes.Buffer
	SetDebug(true)
	SetOutput(&buf)

	log := GetLogger()
	log.Debug().Msg("dataset loaded")

	if !strings.Contains(buf.String(), "dataset loaded") {
		t.Errorf("expected debug message in redirected output, got %q", buf.String())
	}
	if got := GetLogger().GetLevel(); got != zerolog.DebugLevel {
		t.Errorf("level = %v, want debug kept after SetOutput", got)
	}
}
