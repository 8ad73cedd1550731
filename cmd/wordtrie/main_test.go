package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/npillmayer/patricia"
)

func TestPrintColumns(t *testing.T) {
	color.NoColor = true
	var m patricia.Map[string, int]
	for _, w := range []string{"delta", "alpha", "echo", "bravo", "charlie", "alpha"} {
		*m.Index(w)++
	}
	var sb strings.Builder
	if err := printColumns(&sb, &m, 33); err != nil {
		t.Fatal(err)
	}
	// cells are at most "charlie 1" wide, giving 3 columns of 11
	want := "alpha 2    charlie 1  echo 1\n" +
		"bravo 1    delta 1\n"
	if sb.String() != want {
		t.Errorf("unexpected layout:\n%q\nexpected\n%q", sb.String(), want)
	}
}

func TestRunApp(t *testing.T) {
	color.NoColor = true
	dir := t.TempDir()
	input := filepath.Join(dir, "in.txt")
	if err := os.WriteFile(input, []byte("b a c a"), 0o644); err != nil {
		t.Fatal(err)
	}
	dot := filepath.Join(dir, "trie.dot")
	app := newApp()
	var out strings.Builder
	app.Writer = &out
	if err := app.Run([]string{"wordtrie", "--check", "--dot", dot, input}); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out.String(), "a 2") {
		t.Errorf("unexpected output %q", out.String())
	}
	b, err := os.ReadFile(dot)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "digraph") {
		t.Errorf("expected DOT output, got %q", b)
	}
}

func TestRunRejectsUnknownTraceLevel(t *testing.T) {
	app := newApp()
	app.Writer = &strings.Builder{}
	if err := app.Run([]string{"wordtrie", "--trace", "loud", "x"}); err == nil {
		t.Errorf("expected error for unknown trace level")
	}
}
