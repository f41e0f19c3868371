// Package cli handles cmd line input for DBG and testing the dictionary by hand.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bastiangx/wordtree/internal/logger"
	"github.com/bastiangx/wordtree/internal/utils"
	"github.com/bastiangx/wordtree/pkg/suggest"
	"github.com/charmbracelet/log"
)

type commandKind int

const (
	cmdComplete commandKind = iota
	cmdSearch
	cmdAdd
	cmdDelete
	cmdStats
)

type command struct {
	kind      commandKind
	word      string
	frequency int
}

// parseCommand reads one input line:
//
//	cu          autocomplete "cu"
//	?cute       search "cute"
//	+cute 50    add "cute" with frequency 50
//	-cute       delete "cute"
//	#           print stats
func parseCommand(line string) (command, error) {
	switch {
	case line == "#":
		return command{kind: cmdStats}, nil
	case strings.HasPrefix(line, "?"):
		return command{kind: cmdSearch, word: strings.TrimSpace(line[1:])}, nil
	case strings.HasPrefix(line, "-"):
		return command{kind: cmdDelete, word: strings.TrimSpace(line[1:])}, nil
	case strings.HasPrefix(line, "+"):
		fields := strings.Fields(line[1:])
		if len(fields) != 2 {
			return command{}, fmt.Errorf("usage: +word frequency")
		}
		freq, err := strconv.Atoi(fields[1])
		if err != nil {
			return command{}, fmt.Errorf("invalid frequency %q", fields[1])
		}
		return command{kind: cmdAdd, word: fields[0], frequency: freq}, nil
	}
	return command{kind: cmdComplete, word: line}, nil
}

// InputHandler processes user input from stdin against a completer.
// Prefix length bounds and input filtering only apply to autocomplete.
type InputHandler struct {
	completer       suggest.ICompleter
	minPrefixLength int
	maxPrefixLength int
	noFilter        bool
	out             *log.Logger
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(completer suggest.ICompleter, minLength, maxLength int, noFilter bool) *InputHandler {
	return &InputHandler{
		completer:       completer,
		minPrefixLength: minLength,
		maxPrefixLength: maxLength,
		noFilter:        noFilter,
		out:             logger.New(""),
	}
}

// Start runs the interface loop on stdin.
func (h *InputHandler) Start() error {
	h.out.Print("wordtree CLI")
	h.out.Print("prefix to complete, ?word search, +word freq add, -word delete, # stats (Ctrl+C to exit):")
	return h.Run(os.Stdin)
}

// Run handles lines from r until it is exhausted.
func (h *InputHandler) Run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		h.handleInput(line)
	}
	return scanner.Err()
}

func (h *InputHandler) handleInput(line string) {
	cmd, err := parseCommand(line)
	if err != nil {
		h.out.Error(err)
		return
	}

	switch cmd.kind {
	case cmdComplete:
		h.complete(cmd.word)
	case cmdSearch:
		freq, err := h.completer.Search(cmd.word)
		if err != nil {
			h.out.Warnf("'%s': %v", cmd.word, err)
			return
		}
		h.out.Printf("'%s' (freq: %s)", cmd.word, utils.FormatWithCommas(freq))
	case cmdAdd:
		if err := h.completer.Add(cmd.word, cmd.frequency); err != nil {
			h.out.Warnf("'%s': %v", cmd.word, err)
			return
		}
		h.out.Printf("added '%s'", cmd.word)
	case cmdDelete:
		if err := h.completer.Delete(cmd.word); err != nil {
			h.out.Warnf("'%s': %v", cmd.word, err)
			return
		}
		h.out.Printf("deleted '%s'", cmd.word)
	case cmdStats:
		stats := h.completer.Stats()
		keys := make([]string, 0, len(stats))
		for k := range stats {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			h.out.Printf("%s: %d", k, stats[k])
		}
	}
}

func (h *InputHandler) complete(prefix string) {
	length := utf8.RuneCountInString(prefix)
	if length < h.minPrefixLength {
		h.out.Errorf("Prefix too short: %s", prefix)
		return
	}
	if length > h.maxPrefixLength {
		h.out.Errorf("Prefix too long: %s", prefix)
		return
	}

	if !h.noFilter && !utils.IsValidInput(prefix) {
		h.out.Warnf("No suggestions found for prefix: '%s' (filtered out)", prefix)
		return
	}

	start := time.Now()
	suggestions := h.completer.Complete(prefix)
	h.out.Debugf("Took [ %v ] for prefix '%s'", time.Since(start), prefix)

	if len(suggestions) == 0 {
		h.out.Warnf("No suggestions found for prefix: '%s'", prefix)
		return
	}

	h.out.Printf("Found %d suggestions for prefix '%s':", len(suggestions), prefix)
	for i, s := range suggestions {
		h.out.Printf("%2d. %-24s (freq: %8s)", i+1, s.Word, utils.FormatWithCommas(s.Frequency))
	}
}
