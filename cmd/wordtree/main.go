// Copyright 2025 The WordTree Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main runs the wordtree dictionary as a msgpack IPC server or an
interactive CLI.

A word list of "word frequency" lines is loaded into the configured backing
structure (tst by default; list, hashtable and patricia are also available),
which then answers search, add, delete and top-3 autocomplete requests.

# Usage

Start the server with default settings:

	wordtree

Load a different file into a hash table and enable debug logs:

	wordtree -data words.txt -approach hashtable -d

Run in CLI mode for interactive testing:

	wordtree -c

# Configuration

Runtime configuration lives in a TOML file, created with defaults on first run:

	[dict]
	approach = "tst"
	data_file = "data/words.txt"
	max_words = 0

	[server]
	min_prefix = 1
	max_prefix = 60
	enable_filter = true

Flags override the file.

# Command Line Flags

	-config string
	    Path to a config file (default [UserConfigDir]/wordtree/config.toml)
	-data string
	    Word list to load
	-approach string
	    Backing structure: list, hashtable, tst, patricia
	-words int
	    Maximum words to load (0 for all)
	-d  Enable debug mode with detailed logging
	-c  Run in CLI mode instead of server mode
	-version
	    Show current version
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/wordtree/internal/cli"
	"github.com/bastiangx/wordtree/internal/utils"
	"github.com/bastiangx/wordtree/pkg/config"
	"github.com/bastiangx/wordtree/pkg/server"
	"github.com/bastiangx/wordtree/pkg/suggest"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.1.0"
	AppName = "wordtree"
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

// main wires config, dictionary and frontend together; the packages hold
// the logic.
func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	configPath := flag.String("config", "", "Path to config file")
	dataFile := flag.String("data", "", "Word list with one 'word frequency' pair per line")
	approachFlag := flag.String("approach", "", "Backing structure: list, hashtable, tst, patricia")
	wordLimit := flag.Int("words", -1, "Maximum number of words to load (use 0 for all words)")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	appConfig, usedPath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config file: (%s)", utils.GetAbsolutePath(usedPath))

	if *dataFile != "" {
		appConfig.Dict.DataFile = *dataFile
	}
	if *approachFlag != "" {
		appConfig.Dict.Approach = *approachFlag
	}
	if *wordLimit >= 0 {
		appConfig.Dict.MaxWords = *wordLimit
	}
	if err := appConfig.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	approach, _ := suggest.ParseApproach(appConfig.Dict.Approach)
	completer, err := suggest.NewCompleter(approach)
	if err != nil {
		log.Fatalf("Failed to init completer: %v", err)
	}

	resolvedData, err := utils.ResolveDataFile(appConfig.Dict.DataFile)
	if err != nil {
		log.Warnf("No word list loaded, running with empty dict: %v", err)
	} else {
		added, err := completer.LoadTextFile(resolvedData, appConfig.Dict.MaxWords)
		if err != nil {
			log.Fatalf("Failed to load word list: %v", err)
		}
		log.Debugf("Loaded %d words from %s into %s", added, resolvedData, approach)
	}

	if *cliMode {
		log.SetReportTimestamp(false)
		inputHandler := cli.NewInputHandler(completer,
			appConfig.CLI.DefaultMinLen,
			appConfig.CLI.DefaultMaxLen,
			appConfig.CLI.DefaultNoFilter)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	showStartupInfo(resolvedData, approach)

	srv := server.NewServer(completer, appConfig)
	if err := srv.Start(); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ wordtree ] word frequencies and top-3 autocomplete")
	logger.Print("", "version", Version)
	logger.Print("use -h or --help to see available options")
}

// showStartupInfo logs basic info about the init process to stderr.
func showStartupInfo(dataFile string, approach suggest.Approach) {
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	log.Infof("%s %s", AppName, Version)
	log.Infof("Process ID: [ %d ]", os.Getpid())
	log.Infof("approach: %s", approach)
	if dataFile != "" {
		log.Infof("data file: ( %s )", dataFile)
	}
	log.Info("status: ready")

	log.SetLevel(currentLevel)
}
