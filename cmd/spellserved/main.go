// Copyright 2025 The SpellServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the spellserved MessagePack IPC server.

SpellServed loads a word corpus once and answers correction, completion and
health requests over stdin/stdout in binary msgpack frames. The process model
matches editor integrations: the editor spawns spellserved, writes request
frames to its stdin and reads response frames from its stdout. Logging goes
to stderr so the protocol stream stays clean.

# Usage

Serve a probability corpus with the default config:

	spellserved corpus.txt

Use a custom config file and enable debug logging:

	spellserved -config /path/to/config.toml -d corpus.txt

# Configuration

Runtime settings come from a TOML file that is created with defaults on
first run:

	[suggest]
	cutoff = 1
	mode = "probability"

	[server]
	max_limit = 64
	enable_cache = true
	cache_size = 256

# IPC Protocol

Requests carry an id, a command and the command arguments:

	{"id": "req1", "cmd": "correct", "q": "catt", "l": 24}

and are answered with ranked suggestions including the witnessed edit
distance and corpus prior:

	{"id": "req1", "s": [{"w": "cat", "d": 1, "p": 1.0}], "c": 1, "t": 145}

The "complete" command serves prefix completions from the same corpus and
"health" reports the loaded dictionary, the session id and cache counters.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/bastiangx/spellserve/internal/logger"
	"github.com/bastiangx/spellserve/internal/utils"
	"github.com/bastiangx/spellserve/pkg/config"
	"github.com/bastiangx/spellserve/pkg/corpus"
	"github.com/bastiangx/spellserve/pkg/server"
	"github.com/bastiangx/spellserve/pkg/suggest"
)

const (
	Version = "0.9.0-beta"
	AppName = "spellserved"
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

// main wires config, corpus and server together. main() does not implement
// logic for them and only manages the flow.
func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	configPath := flag.String("config", "", "Path to a custom config.toml")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logger.SetDebug(*debugMode)
	if *debugMode {
		log.SetReportTimestamp(true)
	}

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [-config FILE] [-d] CORPUSFILE\n", AppName)
		os.Exit(1)
	}
	corpusPath := flag.Arg(0)
	if resolver, err := utils.NewPathResolver(); err == nil {
		corpusPath = resolver.ResolveCorpusPath(corpusPath)
	} else {
		log.Warnf("Path resolver unavailable, using corpus path as given: %v", err)
	}

	appConfig, loadedPath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(loadedPath))

	log.Debugf("Loading corpus: %s (mode %s, cutoff %d)",
		corpusPath, appConfig.Mode(), appConfig.Suggest.Cutoff)
	words, err := corpus.Open(corpusPath, appConfig.Mode())
	if err != nil {
		log.Fatalf("Failed to load corpus: %v", err)
	}

	suggester := suggest.New(words, appConfig.Suggest.Cutoff)
	completer := suggest.BuildCompleter(words)

	srv := server.NewServer(suggester, completer, appConfig.Server)
	showStartupInfo(corpusPath, completer.Len(), srv.Session())

	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(corpusPath string, words int, session string) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	fmt.Fprintln(os.Stderr, "============")
	fmt.Fprintln(os.Stderr, " SpellServe ")
	fmt.Fprintln(os.Stderr, "============")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Infof("corpus: ( %s )", corpusPath)
	log.Infof("words: [ %d ]", words)
	log.Infof("session: %s", session)
	log.Info("status: ready")
	fmt.Fprintln(os.Stderr, "============")
	fmt.Fprintln(os.Stderr, "Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}

func printVersion() {
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
	logger.Print("[ SpellServe ] Spelling corrections over msgpack IPC!")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}
