package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, Options{Level: "debug", JSON: true})
	logger.Debug().Str("step", "basic-info").Msg("navigate")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode log line %q: %v", buf.String(), err)
	}
	if entry["level"] != "debug" || entry["step"] != "basic-info" || entry["message"] != "navigate" {
		t.Fatalf("unexpected entry %v", entry)
	}
}

func TestNew_ConsoleWithoutColor(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, Options{Level: "info"})
	logger.Debug().Msg("hidden")
	logger.Warn().Msg("asset bundle unavailable")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug entry should be filtered at info level: %q", out)
	}
	if !strings.Contains(out, "asset bundle unavailable") {
		t.Fatalf("expected warning in output: %q", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("non-terminal output must not contain color codes: %q", out)
	}
}

func TestNew_InvalidLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, Options{Level: "verbose", JSON: true})
	logger.Debug().Msg("hidden")
	logger.Info().Msg("shown")

	if out := buf.String(); strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestIsTerminal_Buffer(t *testing.T) {
	if IsTerminal(&bytes.Buffer{}) {
		t.Fatalf("buffer is not a terminal")
	}
}
