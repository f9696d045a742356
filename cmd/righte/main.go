// Copyright 2025 The righte Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the righte stroke translation server and CLI [DBG] application.

Note: This is a BETA release. APIs and functionality may rapidly change.

righte turns steno strokes written in the Right E theory into English
words without a dictionary of outlines. Each stroke compiles to a spelling
pattern, patterns of consecutive strokes are stitched together and the
first word of a frequency ordered word list that fits is chosen. It can
operate as a MessagePack IPC server for steno engines, as a CLI for
testing, or translate a file of stroke lines in batch.

# Usage

Start the server with default settings:

	righte

Use a custom word list and enable debug mode:

	righte -dict /path/to/words.txt -d

Run in CLI mode for interactive testing:

	righte -c -v

Translate every line of a file, one stroke sequence per line:

	righte -batch strokes.txt

# Configuration

Runtime configuration is managed through a TOML file:

	[dict]
	path = "/usr/share/dict/words"
	lowercase_only = true
	max_words = 0
	watch = false

	[theory]
	path = ""

	[engine]
	max_strokes = 10
	strategy = "trie"

	[server]
	max_strokes_per_request = 256

	[cli]
	separator = "/"

	[log]
	level = "info"

The config file is automatically created with defaults if it doesn't exist.
An empty theory path uses the built-in Right E tables; a .toml, .yaml or
.yml file replaces them. Relative paths are looked up next to the config
file and then next to the binary. With watch enabled the word list is reloaded
whenever the file changes.

# Command Line Flags

	-config string
	    Path to config.toml
	-dict string
	    Word list file, one word per line
	-theory string
	    Theory file (.toml, .yaml, .yml)
	-strategy string
	    Matcher: trie or scan
	-max-strokes int
	    Longest stroke run tried as one word (0 for no cap)
	-watch
	    Reload the word list when it changes
	-d  Enable debug mode with detailed logging
	-c  Run in CLI mode instead of server mode
	-v  Show segments in CLI and batch mode
	-batch string
	    Translate each line of a file ("-" for stdin)
	-rebuild-config
	    Overwrite the default config.toml with defaults and exit
	-version
	    Show current version
*/
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/bastiangx/righte/internal/cli"
	"github.com/bastiangx/righte/internal/logger"
	"github.com/bastiangx/righte/internal/utils"
	"github.com/bastiangx/righte/pkg/config"
	"github.com/bastiangx/righte/pkg/dictionary"
	"github.com/bastiangx/righte/pkg/lookup"
	"github.com/bastiangx/righte/pkg/match"
	"github.com/bastiangx/righte/pkg/server"
	"github.com/bastiangx/righte/pkg/theory"
)

const (
	Version = "0.1.0-beta"
	AppName = "righte"
	gh      = "https://github.com/bastiangx/righte"
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

// main only manages the flow between config, loaders and the chosen mode.
func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	configFlag := flag.String("config", "", "Path to config.toml")
	dictFlag := flag.String("dict", "", "Word list file, one word per line")
	theoryFlag := flag.String("theory", "", "Theory file (.toml, .yaml, .yml)")
	strategyFlag := flag.String("strategy", "", "Matcher: trie or scan")
	maxStrokes := flag.Int("max-strokes", -1, "Longest stroke run tried as one word (0 for no cap)")
	watch := flag.Bool("watch", false, "Reload the word list when it changes")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	verbose := flag.Bool("v", false, "Show segments in CLI and batch mode")
	batch := flag.String("batch", "", "Translate each line of a file (\"-\" for stdin)")
	rebuildConfig := flag.Bool("rebuild-config", false, "Overwrite the default config.toml with defaults and exit")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logger.Setup("warn", *debugMode)
	if *rebuildConfig {
		if err := config.RebuildConfigFile(); err != nil {
			log.Fatalf("Failed to rebuild config: %v", err)
		}
		os.Exit(0)
	}
	cfg, configPath, err := config.LoadConfigWithPriority(*configFlag)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger.Setup(cfg.Log.Level, *debugMode)
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(configPath))

	applyFlags(cfg, *dictFlag, *theoryFlag, *strategyFlag, *maxStrokes, *watch)

	theoryPath, err := utils.FindTheory(cfg.Theory.Path, filepath.Dir(configPath))
	if err != nil {
		log.Fatalf("No theory file found: %v", err)
	}
	th, err := theory.LoadFile(theoryPath)
	if err != nil {
		log.Fatalf("Failed to load theory: %v", err)
	}

	dictPath, err := utils.FindWordList(cfg.Dict.Path, filepath.Dir(configPath))
	if err != nil {
		log.Fatalf("No word list found: %v", err)
	}
	loadOpts := dictionary.LoadOptions{LowercaseOnly: cfg.Dict.LowercaseOnly, MaxWords: cfg.Dict.MaxWords}
	words, err := dictionary.LoadFile(dictPath, loadOpts)
	if err != nil {
		log.Fatalf("Failed to load word list: %v", err)
	}

	compiler := theory.NewCompiler(th)
	strategy := match.Strategy(cfg.Engine.Strategy)
	newEngine := func(wl *dictionary.WordList) *lookup.Engine {
		return lookup.New(compiler, match.New(strategy, wl), lookup.WithMaxStrokes(cfg.Engine.MaxStrokes))
	}
	engine := newEngine(words)
	log.Debugf("Theory %s v%d, %d words, strategy=%s", th.Name, th.Version, words.Len(), strategy)
	log.Debug("Theory tables", "chords", th.Stats())

	switch {
	case *batch != "":
		if err := runBatch(engine, *batch, cfg.CLI.Separator, *verbose); err != nil {
			log.Fatalf("Batch error: %v", err)
		}
	case *cliMode:
		log.SetReportTimestamp(false)
		inputHandler := cli.NewInputHandler(engine, cfg.CLI.Separator, *verbose)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
	default:
		watcher := dictionary.NewWatcher(dictPath, loadOpts, words)
		srv := server.NewServer(engine, server.Options{
			MaxStrokes: cfg.Server.MaxStrokesPerRequest,
			Reloader:   watcher,
			Theory:     th,
			WordCount:  func() int { return watcher.Current().Len() },
		})
		watcher.OnReload(func(wl *dictionary.WordList) {
			srv.SetEngine(newEngine(wl))
		})
		showStartupInfo(dictPath, th)
		if err := runServer(srv, watcher, cfg.Dict.Watch); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}
}

// applyFlags lets command line flags override config values.
func applyFlags(cfg *config.Config, dict, theoryPath, strategy string, maxStrokes int, watch bool) {
	if dict != "" {
		cfg.Dict.Path = dict
	}
	if theoryPath != "" {
		cfg.Theory.Path = theoryPath
	}
	if strategy != "" {
		cfg.Engine.Strategy = strategy
	}
	if maxStrokes >= 0 {
		cfg.Engine.MaxStrokes = maxStrokes
	}
	if watch {
		cfg.Dict.Watch = true
	}
}

// runServer serves IPC until stdin closes, watching the word list meanwhile.
func runServer(srv *server.Server, watcher *dictionary.Watcher, watch bool) error {
	ctx, cancel := context.WithCancel(context.Background())
	g, ctx := errgroup.WithContext(ctx)
	if watch {
		g.Go(func() error {
			return watcher.Run(ctx)
		})
	}
	g.Go(func() error {
		defer cancel()
		return srv.Start()
	})
	return g.Wait()
}

// runBatch translates every line of path concurrently and prints the
// results in input order.
func runBatch(engine *lookup.Engine, path, sep string, verbose bool) error {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	var inputs [][]string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		inputs = append(inputs, cli.SplitStrokes(scanner.Text(), sep))
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	results, err := engine.LookupAll(context.Background(), inputs, runtime.NumCPU())
	if err != nil {
		return err
	}
	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()
	residue := 0
	for _, res := range results {
		fmt.Fprintln(out, res.Text)
		if verbose {
			fmt.Fprint(out, cli.RenderSegments(res, sep))
		}
		residue += len(res.Residue)
	}
	if residue > 0 {
		log.Warnf("%d strokes left untranslated", residue)
	}
	return nil
}

func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"}).
		Background(lipgloss.AdaptiveColor{Light: "#f2e9e1", Dark: "#26233a"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ righte ] Right E steno strokes to words, no outline dictionary")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the init process on stderr.
func showStartupInfo(dictPath string, th *theory.Theory) {
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	log.Infof("%s %s", AppName, Version)
	log.Infof("Process ID: [ %d ]", os.Getpid())
	log.Infof("theory: %s v%d", th.Name, th.Version)
	log.Infof("word list: ( %s )", utils.AbsPath(dictPath))
	log.Info("status: ready")

	log.SetLevel(currentLevel)
}
