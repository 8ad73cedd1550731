package html

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/net/html"
)

func TestTextFromHTML(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	input := `<p>Hello <b>World</b>!</p><script>var x = 1;</script><p>Second</p>`
	text, err := TextFromHTML(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if text != "Hello World!\nSecond\n" {
		t.Errorf("unexpected text %q", text)
	}
}

func TestInnerText(t *testing.T) {
	doc, err := html.Parse(strings.NewReader(`<html><body><ul id="l"><li>one</li><li>two</li></ul></body></html>`))
	if err != nil {
		t.Fatal(err)
	}
	var ul *html.Node
	var find func(*html.Node)
	find = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "ul" {
			ul = n
			return
		}
		for c := n.FirstChild; c != nil && ul == nil; c = c.NextSibling {
			find(c)
		}
	}
	find(doc)
	text, err := InnerText(ul)
	if err != nil {
		t.Fatal(err)
	}
	if text != "one\ntwo\n" {
		t.Errorf("unexpected inner text %q", text)
	}
	if _, err := InnerText(nil); !errors.Is(err, ErrNoNode) {
		t.Errorf("expected ErrNoNode, got %v", err)
	}
}
