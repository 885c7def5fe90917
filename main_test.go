package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/wricardo/fifteen-puzzle/game/config"
	"github.com/wricardo/fifteen-puzzle/game/console"
)

const arrowsYAML = `name: arrows
description: IJKL movement
keys:
  up: i
  down: k
  left: j
  right: l
  quit: x
messages:
  prompt: "move> "
  invalid_input: "Use IJKL or X."
  invalid_move: "Blocked."
  quit: "Bye."
  victory: "Solved after %d moves."
`

func runApp(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	a := &app{
		stdin:  strings.NewReader(input),
		stdout: &out,
		stderr: io.Discard,
	}

	err := a.command().Run(context.Background(), append([]string{"fifteen"}, args...))
	return out.String(), err
}

func TestConstants(t *testing.T) {
	if Version == "" {
		t.Error("Version should not be empty")
	}
	if AppName != "Fifteen Puzzle" {
		t.Errorf("Expected app name Fifteen Puzzle, got %s", AppName)
	}
}

func TestPlay_QuitWithBuiltinDefault(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")

	out, err := runApp(t, "q\n", "--config-dir", missing, "--seed", "1")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !strings.Contains(out, "Enter your move (WASD or Q to quit): ") {
		t.Errorf("Expected default prompt:\n%s", out)
	}
	if !strings.HasSuffix(out, "Quitting the game.\n") {
		t.Errorf("Expected quit message at the end:\n%s", out)
	}
}

func TestPlay_SeedIsDeterministic(t *testing.T) {
	dir := t.TempDir()

	first, err := runApp(t, "q\n", "--config-dir", dir, "--seed", "42")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	second, err := runApp(t, "q\n", "--config-dir", dir, "--seed", "42")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if first != second {
		t.Errorf("Expected identical games for the same seed\nfirst:\n%s\nsecond:\n%s", first, second)
	}
}

func TestPlay_CustomConfig(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "arrows.yaml"), []byte(arrowsYAML), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	out, err := runApp(t, "w\nx\n", "--config-dir", dir, "--config", "arrows", "--seed", "3")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	for _, want := range []string{"move> ", "Use IJKL or X.\n", "Bye.\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in output:\n%s", want, out)
		}
	}
}

func TestPlay_FallsBackToFirstConfig(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "arrows.yaml"), []byte(arrowsYAML), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	// classic is not in the directory and was not asked for explicitly
	out, err := runApp(t, "x\n", "--config-dir", dir, "--seed", "3")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !strings.HasSuffix(out, "Bye.\n") {
		t.Errorf("Expected arrows config to be used:\n%s", out)
	}
}

func TestPlay_MissingExplicitConfig(t *testing.T) {
	_, err := runApp(t, "q\n", "--config-dir", t.TempDir(), "--config", "nope")
	if !errors.Is(err, config.ErrConfigNotFound) {
		t.Errorf("Expected ErrConfigNotFound, got %v", err)
	}
}

func TestPlay_ExplicitConfigWithoutDirectory(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")

	_, err := runApp(t, "q\n", "--config-dir", missing, "--config", "vim")
	if err == nil {
		t.Error("Expected an error for a named config without a config directory")
	}
}

func TestPlay_InputClosed(t *testing.T) {
	_, err := runApp(t, "", "--config-dir", t.TempDir(), "--seed", "9")
	if !errors.Is(err, console.ErrInputClosed) {
		t.Errorf("Expected ErrInputClosed, got %v", err)
	}
}

func TestPlay_Color(t *testing.T) {
	out, err := runApp(t, "q\n", "--config-dir", t.TempDir(), "--seed", "5", "--color")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !strings.Contains(out, "\x1b[") {
		t.Errorf("Expected ANSI escapes with --color:\n%q", out)
	}
}

func TestNewLogger(t *testing.T) {
	if got := newLogger(io.Discard, false).GetLevel(); got != zerolog.WarnLevel {
		t.Errorf("Expected warn level by default, got %v", got)
	}
	if got := newLogger(io.Discard, true).GetLevel(); got != zerolog.DebugLevel {
		t.Errorf("Expected debug level with debug set, got %v", got)
	}
}
