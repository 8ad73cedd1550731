package textfile

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/patricia"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestWords(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	words := slices.Collect(Words(strings.NewReader("Hello, World! -- (quoted) 42 times.")))
	want := []string{"Hello", "World", "quoted", "42", "times"}
	if diff := cmp.Diff(want, words); diff != "" {
		t.Errorf("unexpected words (-want +got):\n%s", diff)
	}
}

func TestCountWords(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	var m patricia.Map[string, int]
	n := CountWords(strings.NewReader("the The THE cat the"), &m, true)
	if n != 5 {
		t.Errorf("expected 5 words, counted %d", n)
	}
	if c, _ := m.Get("the"); c != 4 {
		t.Errorf("expected 'the' to be counted 4 times, is %d", c)
	}
	if diff := cmp.Diff([]string{"cat", "the"}, slices.Collect(m.Keys())); diff != "" {
		t.Errorf("unexpected keys (-want +got):\n%s", diff)
	}
}

func TestLoad(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	m, err := Load("testdata/fox.txt", Options{})
	if err != nil {
		t.Fatal(err)
	}
	for w, c := range map[string]int{"The": 2, "the": 2, "fox": 2, "dog": 2, "sleeps": 1} {
		if got, _ := m.Get(w); got != c {
			t.Errorf("expected %q to be counted %d times, is %d", w, c, got)
		}
	}
	if err := m.Check(); err != nil {
		t.Error(err)
	}
	m, err = Load("testdata/fox.txt", Options{Fold: true, MinLength: 4})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"away", "brown", "jumps", "lazy", "over", "quick", "runs", "sleeps"}
	if diff := cmp.Diff(want, slices.Collect(m.Keys())); diff != "" {
		t.Errorf("unexpected keys (-want +got):\n%s", diff)
	}
}

func TestLoadHTML(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	m, err := Load("testdata/fox.html", Options{Fold: true})
	if err != nil {
		t.Fatal(err)
	}
	if m.Len() <= 8 {
		t.Errorf("expected markup of plain text input to add words, have %d distinct", m.Len())
	}
	m, err = Load("testdata/fox.html", Options{Fold: true, HTML: true})
	if err != nil {
		t.Fatal(err)
	}
	if m.Contains("p") || m.Contains("em") {
		t.Errorf("expected markup to be stripped")
	}
	if c, _ := m.Get("the"); c != 2 {
		t.Errorf("expected 'the' to be counted twice, is %d", c)
	}
	if m.Len() != 8 {
		t.Errorf("expected 8 distinct words, have %d", m.Len())
	}
}

func TestLoadRejectsDirectory(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	if _, err := Load("testdata", Options{}); !errors.Is(err, ErrNotRegular) {
		t.Errorf("expected ErrNotRegular, got %v", err)
	}
	if _, err := Load("testdata/missing.txt", Options{}); err == nil {
		t.Errorf("expected error for missing file")
	}
}
