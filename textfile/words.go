package textfile

import (
	"bufio"
	"io"
	"iter"
	"strings"
	"unicode"

	"github.com/npillmayer/patricia"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax14"
	"golang.org/x/text/cases"
)

// Words returns an iterator over the words of r. Words are the segments
// between UAX #14 line-break opportunities, with leading and trailing runes
// which are neither letters nor digits removed. Segments consisting of
// punctuation or space only are skipped.
//
// A hyphenated compound yields its parts as separate words.
func Words(r io.Reader) iter.Seq[string] {
	return func(yield func(string) bool) {
		linewrap := uax14.NewLineWrap()
		segmenter := segment.NewSegmenter(linewrap)
		segmenter.Init(bufio.NewReader(r))
		for segmenter.Next() {
			w := strings.TrimFunc(string(segmenter.Bytes()), isNotWordRune)
			if w == "" {
				continue
			}
			if !yield(w) {
				return
			}
		}
	}
}

func isNotWordRune(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

// CountWords adds the words of r to m, counting their occurrences. If fold
// is set, words are case-folded first, making "The" and "the" the same word.
// It returns the number of words read.
func CountWords(r io.Reader, m *patricia.Map[string, int], fold bool) int {
	return count(r, m, Options{Fold: fold})
}

func count(r io.Reader, m *patricia.Map[string, int], opts Options) int {
	folder := cases.Fold()
	n := 0
	for w := range Words(r) {
		if opts.Fold {
			w = folder.String(w)
		}
		if len([]rune(w)) < opts.MinLength {
			continue
		}
		*m.Index(w)++
		n++
	}
	tracer().Debugf("textfile: counted %d words, %d distinct", n, m.Len())
	return n
}
