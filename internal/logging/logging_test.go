package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{" warn ", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"", slog.LevelInfo, false},
		{"loud", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestNew_FileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "awp.log")

	logger, closer, err := New(Options{File: path, Level: "info"})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	logger.Info("tab created", "id", "tab-1")
	logger.Debug("hidden at info")

	if err := closer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "tab created") || !strings.Contains(content, "id=tab-1") {
		t.Errorf("Log missing record:\n%s", content)
	}
	if strings.Contains(content, "hidden at info") {
		t.Errorf("Debug record should be filtered:\n%s", content)
	}
}

func TestSetLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "awp.log")

	logger, closer, err := New(Options{File: path, Level: "warn"})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer closer.Close()
	t.Cleanup(func() { SetLevel(slog.LevelInfo) })

	if Level() != slog.LevelWarn {
		t.Errorf("Level() = %s, want WARN", Level())
	}

	SetLevel(slog.LevelDebug)
	logger.Debug("now visible")

	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "now visible") {
		t.Error("SetLevel should affect existing loggers")
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	if _, _, err := New(Options{Level: "chatty"}); err == nil {
		t.Error("Expected error for invalid level")
	}
}

func TestNew_NoSinks(t *testing.T) {
	logger, closer, err := New(Options{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := closer.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
	// Must not panic
	logger.Info("dropped")
}

func TestToJournalKey(t *testing.T) {
	tests := map[string]string{
		"tab_id":       "TAB_ID",
		"status.phase": "STATUS_PHASE",
		"msg":          "MSG",
		"x-1":          "X_1",
	}
	for in, want := range tests {
		if got := toJournalKey(in); got != want {
			t.Errorf("toJournalKey(%q) = %q, want %q", in, got, want)
		}
	}
}
