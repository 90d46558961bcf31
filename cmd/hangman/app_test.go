package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-hangman/internal/config"
)

func TestNewLogger(t *testing.T) {
	logger, closer, err := newLogger(config.Env{})
	if err != nil {
		t.Fatalf("newLogger() failed: %v", err)
	}
	if closer != nil {
		t.Error("no log file should mean no closer")
	}
	if logger.GetLevel() != log.WarnLevel {
		t.Errorf("default level = %v, expected warn", logger.GetLevel())
	}

	if _, _, err := newLogger(config.Env{LogLevel: "chatty"}); err == nil {
		t.Error("unknown log level should be an error")
	}
}

func TestNewLoggerFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hangman.log")

	logger, closer, err := newLogger(config.Env{LogLevel: "debug", LogFile: path})
	if err != nil {
		t.Fatalf("newLogger() failed: %v", err)
	}
	logger.Debug("round started", "category", "frutas")
	closeQuietly(closer)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if !strings.Contains(string(data), "round started") || !strings.Contains(string(data), "frutas") {
		t.Errorf("log file = %q, expected the debug entry", data)
	}
}
