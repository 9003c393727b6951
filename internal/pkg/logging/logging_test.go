package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/ferdiebergado/leavekit/internal/pkg/logging"
)

func TestSetupLogger_ProductionEmitsJSON(t *testing.T) {
	var buf bytes.Buffer
	logging.SetupLogger("production", "info", &buf)

	slog.Info("hello")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not JSON: %v, output: %q", err, buf.String())
	}

	if entry["msg"] != "hello" {
		t.Errorf(`entry["msg"] = %v, want: "hello"`, entry["msg"])
	}
}

func TestSetupLogger_LevelFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	logging.SetupLogger("development", "warn", &buf)

	slog.Debug("too quiet")
	slog.Warn("loud enough")

	out := buf.String()
	if strings.Contains(out, "too quiet") {
		t.Errorf("debug message was logged at warn level: %q", out)
	}
	if !strings.Contains(out, "loud enough") {
		t.Errorf("warn message was not logged: %q", out)
	}
}
