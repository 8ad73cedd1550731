/*
Wordtrie lists the words of text files in lexicographic order, together with
their number of occurrences.

	wordtrie [--html] [--fold] [--min N] [--dot FILE] [--check] [--trace LEVEL] FILES…

Words are collected into a PATRICIA trie. With --dot the trie's structure is
written to FILE in Graphviz DOT format; with --check its invariants are
validated after loading.
*/
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/patricia"
	"github.com/npillmayer/patricia/textfile"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"github.com/urfave/cli"
	"golang.org/x/term"
)

var (
	htmlFlag = cli.BoolFlag{
		Name:  "html",
		Usage: "Treat input files as HTML and count the words of their text",
	}
	foldFlag = cli.BoolFlag{
		Name:  "fold",
		Usage: "Case-fold words, counting \"The\" and \"the\" as the same word",
	}
	minFlag = cli.IntFlag{
		Name:  "min",
		Usage: "Skip words with fewer than `N` characters",
	}
	dotFlag = cli.StringFlag{
		Name:  "dot",
		Usage: "Write the trie in Graphviz DOT format to `FILE`",
	}
	checkFlag = cli.BoolFlag{
		Name:  "check",
		Usage: "Validate the trie's invariants after loading",
	}
	traceFlag = cli.StringFlag{
		Name:  "trace",
		Value: "error",
		Usage: "Trace level: error, info or debug",
	}
)

var (
	wordColor  = color.New(color.FgBlue)
	countColor = color.New(color.FgHiBlack)
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "wordtrie: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "wordtrie"
	app.Usage = "list the words of text files in lexicographic order"
	app.ArgsUsage = "FILES…"
	app.Flags = []cli.Flag{htmlFlag, foldFlag, minFlag, dotFlag, checkFlag, traceFlag}
	app.Action = run
	return app
}

func run(c *cli.Context) error {
	gtrace.CoreTracer = gologadapter.New()
	level, err := traceLevel(c.String(traceFlag.Name))
	if err != nil {
		return err
	}
	gtrace.CoreTracer.SetTraceLevel(level)
	if c.NArg() == 0 {
		return errors.New("no input files")
	}
	opts := textfile.Options{
		HTML:      c.Bool(htmlFlag.Name),
		Fold:      c.Bool(foldFlag.Name),
		MinLength: c.Int(minFlag.Name),
	}
	words := &patricia.Map[string, int]{}
	for _, name := range c.Args() {
		if err := textfile.LoadInto(words, name, opts); err != nil {
			return err
		}
	}
	if c.Bool(checkFlag.Name) {
		if err := words.Check(); err != nil {
			return err
		}
		gtrace.CoreTracer.Infof("trie of %d words is consistent", words.Len())
	}
	if name := c.String(dotFlag.Name); name != "" {
		if err := writeDot(words, name); err != nil {
			return err
		}
	}
	return printColumns(c.App.Writer, words, lineWidth())
}

func traceLevel(s string) (tracing.TraceLevel, error) {
	switch strings.ToLower(s) {
	case "error":
		return tracing.LevelError, nil
	case "info":
		return tracing.LevelInfo, nil
	case "debug":
		return tracing.LevelDebug, nil
	}
	return tracing.LevelError, fmt.Errorf("unknown trace level %q", s)
}

func writeDot(words *patricia.Map[string, int], name string) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err = patricia.Map2Dot(words, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// lineWidth returns the width of the terminal, or 80 if stdout is not a
// terminal.
func lineWidth() int {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 10 {
			return w
		}
	}
	return 80
}

// printColumns writes "word count" cells in key order, column by column,
// fitting as many columns into width as possible.
func printColumns(w io.Writer, words *patricia.Map[string, int], width int) error {
	grapheme.SetupGraphemeClasses()
	ctx := uax11.ContextFromEnvironment()
	type cell struct {
		word   string
		count  string
		extent int
	}
	var cells []cell
	maxExtent := 0
	for word, n := range words.All() {
		c := cell{word: word, count: fmt.Sprint(n)}
		c.extent = uax11.StringWidth(grapheme.StringFromString(word), ctx) + 1 + len(c.count)
		maxExtent = max(maxExtent, c.extent)
		cells = append(cells, c)
	}
	if len(cells) == 0 {
		return nil
	}
	colWidth := maxExtent + 2
	cols := max(1, width/colWidth)
	rows := (len(cells) + cols - 1) / cols
	for r := range rows {
		var line strings.Builder
		for col := range cols {
			i := col*rows + r
			if i >= len(cells) {
				break
			}
			c := cells[i]
			line.WriteString(wordColor.Sprint(c.word))
			line.WriteByte(' ')
			line.WriteString(countColor.Sprint(c.count))
			if col < cols-1 && i+rows < len(cells) {
				line.WriteString(strings.Repeat(" ", colWidth-c.extent))
			}
		}
		line.WriteByte('\n')
		if _, err := io.WriteString(w, line.String()); err != nil {
			return err
		}
	}
	return nil
}
