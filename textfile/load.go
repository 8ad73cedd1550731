package textfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/patricia"
	"github.com/npillmayer/patricia/html"
)

// ErrNotRegular is flagged when Load is called for something other than a
// regular file.
var ErrNotRegular = errors.New("textfile: not a regular file")

// Options control how Load reads a file.
type Options struct {
	HTML      bool // extract the text of HTML input first
	Fold      bool // case-fold words
	MinLength int  // skip words with fewer runes
}

// Load reads a file, which must be a text file, and counts its words.
// The resulting map holds every distinct word with its number of
// occurrences.
func Load(name string, opts Options) (*patricia.Map[string, int], error) {
	m := &patricia.Map[string, int]{}
	if err := LoadInto(m, name, opts); err != nil {
		return nil, err
	}
	return m, nil
}

// LoadInto reads a file like Load, adding its words to m.
func LoadInto(m *patricia.Map[string, int], name string, opts Options) error {
	file, err := openFile(name)
	if err != nil {
		tracer().Errorf("textfile: %v", err)
		return err
	}
	defer file.Close()
	var r io.Reader = file
	if opts.HTML {
		text, err := html.TextFromHTML(file)
		if err != nil {
			return fmt.Errorf("textfile: reading %s: %w", name, err)
		}
		r = strings.NewReader(text)
	}
	n := count(r, m, opts)
	tracer().Infof("textfile: loaded %d words from %s", n, name)
	return nil
}

// openFile opens an OS file for reading, checking that it is a regular file.
func openFile(name string) (*os.File, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotRegular, name)
	}
	return os.Open(name)
}
