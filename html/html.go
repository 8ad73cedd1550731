/*
Package html extracts the textual content of HTML input.

Text is collected from text nodes in document order. No interpretation of
layout or styling takes place, except that the content of script and style
elements is skipped.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package html

import (
	"errors"
	"io"
	"strings"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrNoNode is flagged if InnerText is called without a node.
var ErrNoNode = errors.New("html: no node")

// tracer traces to the global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// InnerText returns the textual content of an HTML element and all its
// descendents. It resembles the text produced by
//
//	document.getElementById("myNode").innerText
//
// in JavaScript (except that html.InnerText cannot respect CSS styling suppressing
// the visibility of the node's descendents).
func InnerText(n *html.Node) (string, error) {
	if n == nil {
		return "", ErrNoNode
	}
	var b strings.Builder
	collectText(n, &b)
	return b.String(), nil
}

func collectText(n *html.Node, b *strings.Builder) {
	switch n.Type {
	case html.ElementNode:
		if n.DataAtom == atom.Script || n.DataAtom == atom.Style {
			return
		}
	case html.TextNode:
		b.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
	if n.Type == html.ElementNode && isBlock(n.DataAtom) {
		b.WriteByte('\n')
	}
}

// isBlock reports elements after which text continues in a new line, so
// that words of adjacent blocks do not run together.
func isBlock(a atom.Atom) bool {
	switch a {
	case atom.P, atom.Div, atom.Br, atom.Li, atom.Tr, atom.Td, atom.Th,
		atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6, atom.Pre, atom.Blockquote:
		return true
	}
	return false
}

// TextFromHTML returns the textual content of an HTML fragment.
// It does no interpretation of layout and styling, but extracts the pure text.
func TextFromHTML(input io.Reader) (string, error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		tracer().Errorf("html: cannot parse input: %v", err)
		return "", err
	}
	var b strings.Builder
	for _, n := range nodes {
		collectText(n, &b)
	}
	return b.String(), nil
}
