// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewHandlerFormat(t *testing.T) {
	var text bytes.Buffer
	slog.New(newHandler(&text, true, slog.LevelInfo)).Info("loaded", "tasks", 2)
	if !strings.Contains(text.String(), "msg=loaded tasks=2") {
		t.Errorf("terminal output = %q, want text handler", text.String())
	}

	var structured bytes.Buffer
	slog.New(newHandler(&structured, false, slog.LevelInfo)).Info("loaded", "tasks", 2)
	var record map[string]any
	if err := json.Unmarshal(structured.Bytes(), &record); err != nil {
		t.Fatalf("redirected output is not JSON: %v", err)
	}
	if record["msg"] != "loaded" {
		t.Errorf("msg = %v", record["msg"])
	}
}

func TestNewHandlerLevel(t *testing.T) {
	var output bytes.Buffer
	logger := slog.New(newHandler(&output, true, slog.LevelWarn))
	logger.Info("hidden")
	logger.Warn("shown")
	if strings.Contains(output.String(), "hidden") || !strings.Contains(output.String(), "shown") {
		t.Errorf("output = %q", output.String())
	}
}

func TestFanoutHandler(t *testing.T) {
	var first, second bytes.Buffer
	fanout := FanoutHandler{
		slog.NewTextHandler(&first, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewTextHandler(&second, &slog.HandlerOptions{Level: slog.LevelError}),
	}
	logger := slog.New(fanout).With("command", "edit")
	logger.Debug("detail")
	logger.Error("broken")

	if !strings.Contains(first.String(), "detail") || !strings.Contains(first.String(), "broken") {
		t.Errorf("first = %q", first.String())
	}
	if strings.Contains(second.String(), "detail") || !strings.Contains(second.String(), "command=edit") {
		t.Errorf("second = %q", second.String())
	}
}

func TestOpenFileLogHandler(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasklist.jsonl")
	handler, closeFile, err := OpenFileLogHandler(path)
	if err != nil {
		t.Fatal(err)
	}
	slog.New(handler).Debug("written")
	closeFile()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"msg":"written"`) {
		t.Errorf("log file = %q", data)
	}
}
