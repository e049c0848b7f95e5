package prompt_test

import (
	"os"
	"path/filepath"
	"testing"

	"support-triage-bot/pkg/prompt"
)

func TestLoader(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "greeting.prompt"), []byte("  hello there\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	l := prompt.NewLoader(dir, ".prompt")

	t.Run("LoadExisting", func(t *testing.T) {
		text, ok := l.Load("greeting")
		if !ok {
			t.Fatal("expected asset to exist")
		}
		if text != "hello there" {
			t.Errorf("expected trimmed content, got %q", text)
		}
	})

	t.Run("LoadMissing", func(t *testing.T) {
		if _, ok := l.Load("absent"); ok {
			t.Error("expected missing asset to report not found")
		}
	})

	t.Run("CachedAfterFirstRead", func(t *testing.T) {
		if _, ok := l.Load("greeting"); !ok {
			t.Fatal("expected asset to exist")
		}
		// The file is gone but the cached copy still serves.
		if err := os.Remove(filepath.Join(dir, "greeting.prompt")); err != nil {
			t.Fatal(err)
		}
		text, ok := l.Load("greeting")
		if !ok || text != "hello there" {
			t.Errorf("expected cached content, got %q (ok=%v)", text, ok)
		}
	})

	t.Run("LoadOrFallback", func(t *testing.T) {
		if got := l.LoadOr("absent", "default text"); got != "default text" {
			t.Errorf("unexpected fallback: %q", got)
		}
	})
}
