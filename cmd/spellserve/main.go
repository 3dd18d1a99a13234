/*
Package main implements the spellserve command line corrector.

SpellServe reads misspelled words from standard input and prints ranked
correction suggestions built from a word corpus. Suggestions are found with a
bounded Damerau-Levenshtein search over a trie built from the corpus and
ranked by edit distance and corpus probability.

# Usage

Correct words against a probability corpus, one query per line:

	spellserve corpus.txt

Print only the single best suggestion with edit distance up to 2:

	spellserve -be2 corpus.txt

Flags are concatenated into one token: -a (all suggestions, default),
-b (best only), -p (probability corpus, default), -s (simple corpus) and
-eN for a maximum edit distance of N. An empty input line exits the loop.

For the MessagePack IPC server see the spellserved binary in this module.
*/
package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/bastiangx/spellserve/internal/cli"
	"github.com/bastiangx/spellserve/pkg/corpus"
	"github.com/bastiangx/spellserve/pkg/suggest"
)

const (
	Version = "0.9.0-beta"
	AppName = "spellserve"
	gh      = "https://github.com/bastiangx/spellserve"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main resolves the argument vector, loads the corpus and runs the
// interactive loop. The logic lives in internal/cli and pkg/suggest; main
// only manages the flow and the exit codes.
func main() {
	sigHandler()
	log.SetLevel(log.WarnLevel)

	progName := filepath.Base(os.Args[0])
	args := os.Args[1:]

	if len(args) == 1 && (args[0] == "-version" || args[0] == "--version") {
		showVersion()
		os.Exit(0)
	}

	params, err := cli.ParseArgs(args)
	if err != nil {
		exitUsage(progName, err)
	}

	suggester, err := suggest.Load(params.CorpusPath, params.Mode, params.Cutoff)
	if err != nil {
		var parseErr *corpus.ParseError
		if errors.As(err, &parseErr) {
			fmt.Fprintln(os.Stderr, parseErr.Error())
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "%s: %v\n", progName, err)
		os.Exit(1)
	}

	handler := cli.NewInputHandler(suggester, params.BestOnly)
	if err := handler.Run(os.Stdin, os.Stdout); err != nil {
		log.Fatalf("Input loop: %v", err)
	}
}

// exitUsage routes argument errors to the right stream and exit code. A bare
// invocation is a help request and exits clean; everything else is an error.
func exitUsage(progName string, err error) {
	switch {
	case errors.Is(err, cli.ErrNoArgs):
		fmt.Print(cli.Usage(progName, "No parameters given."))
		os.Exit(0)
	case errors.Is(err, cli.ErrTooManyArgs):
		fmt.Fprint(os.Stderr, cli.Usage(progName, "Incorrect number of parameters."))
		os.Exit(1)
	default:
		var argErr *cli.ArgError
		if errors.As(err, &argErr) {
			fmt.Fprint(os.Stderr, cli.Usage(progName, "Malformed parameter list."))
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "%s: %v\n", progName, err)
		os.Exit(1)
	}
}

func showVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()

	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["version"] = lipgloss.NewStyle().
		Background(lipgloss.AdaptiveColor{Light: "#f2e9e1", Dark: "#26233a"})

	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})

	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ SpellServe ] Spelling corrections, really fast!")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("run without arguments to see available options")
	logger.Print("Github Repo", "gh", gh)
}
