// Package cli implements the terminal front end: argument parsing and the
// interactive correction loop.
package cli

import (
	"errors"
	"fmt"

	"github.com/bastiangx/spellserve/pkg/corpus"
)

// ErrNoArgs means the program was started without any arguments. The caller
// prints usage to stdout and exits 0.
var ErrNoArgs = errors.New("no parameters given")

// ErrTooManyArgs means too many positional arguments were given. The caller
// prints usage to stderr and exits 1.
var ErrTooManyArgs = errors.New("incorrect number of parameters")

// ArgError reports a malformed flag token.
type ArgError struct {
	Msg string
}

func (e *ArgError) Error() string {
	return e.Msg
}

// Params holds the resolved invocation parameters.
type Params struct {
	BestOnly   bool
	Mode       corpus.Mode
	Cutoff     int
	CorpusPath string
}

// maxFlags bounds the flag letters in one token. Any legal combination fits
// in five; a sixth letter means something was repeated.
const maxFlags = 5

// ParseArgs resolves the argument vector (without the program name) into
// Params. Accepted shapes are CORPUSFILE and -FLAGS CORPUSFILE.
func ParseArgs(args []string) (Params, error) {
	flagToken := ""
	switch len(args) {
	case 0:
		return Params{}, ErrNoArgs
	case 1:
	case 2:
		flagToken = args[0]
	default:
		return Params{}, ErrTooManyArgs
	}

	params, err := parseFlagToken(flagToken)
	if err != nil {
		return Params{}, err
	}
	params.CorpusPath = args[len(args)-1]
	return params, nil
}

// parseFlagToken validates one concatenated flag token like "-apbe2". The
// empty token yields the defaults: all suggestions, probability corpus,
// cutoff 1. Best defeats all and simple defeats probability when both are
// given.
func parseFlagToken(token string) (Params, error) {
	params := Params{Mode: corpus.Probability, Cutoff: 1}
	if token == "" {
		return params, nil
	}
	if token[0] != '-' {
		return Params{}, &ArgError{Msg: "malformed parameter list"}
	}

	flagCount := 0
	for i := 1; i < len(token); i++ {
		if flagCount >= maxFlags {
			return Params{}, &ArgError{Msg: "too many flags"}
		}
		switch token[i] {
		case 'a':
			// all is the default; b still defeats a when both appear.
		case 'b':
			params.BestOnly = true
		case 'p':
			// probability is the default; s still defeats p.
		case 's':
			params.Mode = corpus.Simple
		case 'e':
			i++
			if i >= len(token) || token[i] < '0' || token[i] > '9' {
				return Params{}, &ArgError{Msg: "flag e needs a single digit edit distance"}
			}
			params.Cutoff = int(token[i] - '0')
		default:
			return Params{}, &ArgError{Msg: fmt.Sprintf("unrecognized flag %q", token[i])}
		}
		flagCount++
	}
	return params, nil
}

// Usage renders the help text. msg is printed on the first line to say why
// usage is being shown.
func Usage(progName, msg string) string {
	return fmt.Sprintf(`%[1]s: %[2]s
Usage: %[1]s [-abps] CORPUSFILE
Reads words from standard input and prints suggestions to standard output.
Examples
  Print all found suggestions, using probability based corpus and maximum edit distance 2:
%[1]s -ape2 corpus.txt
Options:
 -a, all - Return all found suggestions (default).
 -b, best - Return only the single best suggestion.
 -p, probability - Use tab separated word corpus with floating point numbers to indicate word probability (default).
 -s, simple - Use a simple, non-probability corpus.
 -eN edit distance 0 <= N <= 9, Find suggestions with a maximum of N unit edit operations (default 1).
`, progName, msg)
}
