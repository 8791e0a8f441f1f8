package logger_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.trai.ch/zerr"

	"go.trai.ch/weft/internal/adapters/logger"
)

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New()
	log.SetOutput(&buf)

	log.Info("workspace resolved")
	log.Warn("something looks off")
	log.Error(zerr.New("boom"))

	out := buf.String()
	for _, want := range []string{
		"level=INFO", "workspace resolved",
		"level=WARN", "something looks off",
		"level=ERROR", "boom",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestLogger_SetOutputNilFallsBackToStderr(t *testing.T) {
	log := logger.New()
	log.SetOutput(nil)
	// Must not panic when logging afterwards.
	log.Info("still alive")
}

func TestLogger_EnableDebugFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	log := logger.New()
	log.EnableDebugFile(path)
	defer log.Close()

	log.Info("mirrored to file")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading debug log: %v", err)
	}
	if !strings.Contains(string(data), "mirrored to file") {
		t.Errorf("debug log missing message:\n%s", data)
	}
}

func TestLogger_CloseWithoutDebugFile(t *testing.T) {
	if err := logger.New().Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}
