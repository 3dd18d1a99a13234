// Package corpus reads word list files into the dictionary automaton.
//
// Two line formats are supported. A probability corpus annotates every word
// with a prior, separated by a single tab:
//
//	WORD<TAB>NUMBER
//
// where WORD is one or more alphabetic bytes and NUMBER is a sign-optional
// decimal with a mandatory integer part, dot and fractional part. A simple
// corpus is one alphabetic word per line; every word gets the prior 1.0.
// Blank lines are skipped in both formats.
package corpus

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"

	"github.com/bastiangx/spellserve/pkg/trie"
)

// Mode selects the corpus line format.
type Mode int

const (
	// Probability expects WORD<TAB>NUMBER lines.
	Probability Mode = iota
	// Simple expects bare WORD lines, prior fixed at 1.0.
	Simple
)

// String returns the flag spelling of the mode.
func (m Mode) String() string {
	if m == Simple {
		return "simple"
	}
	return "probability"
}

// ParseError reports a malformed corpus line. Line numbers are 1-based.
type ParseError struct {
	File string
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s, line:%d: %s", e.File, e.Line, e.Msg)
}

// parser turns single corpus lines into (word, prior) pairs. The filename is
// carried only for diagnostics; the parser never touches the filesystem.
type parser struct {
	file string
	mode Mode
	line int
}

func (p *parser) errorf(format string, args ...any) error {
	return &ParseError{File: p.file, Line: p.line, Msg: fmt.Sprintf(format, args...)}
}

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// parseLine consumes one non-empty line and returns the word and its prior.
// The caller has already counted the line in p.line.
func (p *parser) parseLine(line string) (string, float64, error) {
	if p.mode == Simple {
		return p.parseSimple(line)
	}
	return p.parseProbability(line)
}

func (p *parser) parseSimple(line string) (string, float64, error) {
	for i := 0; i < len(line); i++ {
		if !isAlpha(line[i]) {
			return "", 0, p.errorf("unexpected %q while reading a word", line[i])
		}
	}
	return line, 1.0, nil
}

// Number grammar states, entered after the tab.
const (
	numStart   = iota // sign or first digit
	numInteger        // first digit after a sign
	numPreDot         // digits of the integer part, or the dot
	numFrac           // digits of the fractional part
)

func (p *parser) parseProbability(line string) (string, float64, error) {
	tab := -1
	for i := 0; i < len(line); i++ {
		b := line[i]
		if b == '\t' {
			tab = i
			break
		}
		if !isAlpha(b) {
			return "", 0, p.errorf("unexpected %q while reading a word", b)
		}
	}
	if tab < 0 {
		return "", 0, p.errorf("missing tab separated number annotation")
	}
	if tab == 0 {
		return "", 0, p.errorf("empty word before the annotation")
	}

	state := numStart
	sawDot := false
	for i := tab + 1; i < len(line); i++ {
		b := line[i]
		switch state {
		case numStart:
			if b == '-' {
				state = numInteger
				continue
			}
			fallthrough
		case numInteger:
			if !isDigit(b) {
				return "", 0, p.errorf("malformed number annotation")
			}
			state = numPreDot
		case numPreDot:
			if b == '.' {
				sawDot = true
				state = numFrac
				continue
			}
			if !isDigit(b) {
				return "", 0, p.errorf("malformed number annotation")
			}
		case numFrac:
			if !isDigit(b) {
				return "", 0, p.errorf("malformed number annotation")
			}
		}
	}
	// The fractional part needs at least one digit, so the walk must end
	// strictly inside numFrac with a digit seen after the dot.
	if !sawDot || line[len(line)-1] == '.' {
		return "", 0, p.errorf("malformed number annotation")
	}

	prior, err := strconv.ParseFloat(line[tab+1:], 64)
	if err != nil {
		return "", 0, p.errorf("malformed number annotation")
	}
	return line[:tab], prior, nil
}

// Read parses a whole corpus from r into a fresh trie. name is used in
// diagnostics only. Blank lines are skipped; any malformed line aborts the
// read with a ParseError.
func Read(r io.Reader, name string, mode Mode) (*trie.Trie[float64], error) {
	start := time.Now()
	p := &parser{file: name, mode: mode}
	words := trie.New[float64]()

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	count := 0
	for sc.Scan() {
		p.line++
		line := sc.Text()
		if len(line) == 0 {
			continue
		}
		word, prior, err := p.parseLine(line)
		if err != nil {
			return nil, err
		}
		if err := words.Insert(word, prior); err != nil {
			return nil, fmt.Errorf("corpus %s: %w", name, err)
		}
		count++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read corpus %s: %w", name, err)
	}

	log.Debug("Corpus loaded",
		"file", name,
		"mode", mode.String(),
		"words", count,
		"states", words.Len(),
		"elapsed", time.Since(start))
	return words, nil
}

// Open reads the corpus file at path. The file's own name appears in any
// ParseError it produces.
func Open(path string, mode Mode) (*trie.Trie[float64], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus: %w", err)
	}
	defer f.Close()
	return Read(f, path, mode)
}
