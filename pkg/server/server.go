package server

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"
	"unicode/utf8"

	"github.com/bastiangx/wordtree/internal/utils"
	"github.com/bastiangx/wordtree/pkg/config"
	"github.com/bastiangx/wordtree/pkg/dictionary"
	"github.com/bastiangx/wordtree/pkg/suggest"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles the IPC for dictionary requests
type Server struct {
	completer    suggest.ICompleter
	config       *config.Config
	decoder      *msgpack.Decoder
	encoder      *msgpack.Encoder
	requestCount int
}

// NewServer creates a server using stdin/stdout for IPC
func NewServer(completer suggest.ICompleter, cfg *config.Config) *Server {
	return NewServerWithIO(completer, cfg, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a server reading requests from r and writing
// responses to w.
func NewServerWithIO(completer suggest.ICompleter, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Server{
		completer: completer,
		config:    cfg,
		decoder:   msgpack.NewDecoder(r),
		encoder:   msgpack.NewEncoder(w),
	}
}

// Start processes requests until the input stream ends. A clean EOF returns
// nil; a truncated or unreadable stream returns the decode error.
func (s *Server) Start() error {
	log.Debug("Starting Server.")

	for {
		raw, err := s.decoder.DecodeRaw()
		if err != nil {
			if errors.Is(err, io.EOF) {
				log.Debugf("Input closed after %d requests", s.requestCount)
				return nil
			}
			log.Errorf("Reading request: %v", err)
			return err
		}
		s.requestCount++

		var request Request
		if err := msgpack.Unmarshal(raw, &request); err != nil {
			log.Errorf("Unmarshaling request: %v", err)
			s.sendError("", "invalid request", 400)
			continue
		}
		s.handleRequest(request)
	}
}

func (s *Server) handleRequest(request Request) {
	switch request.Op {
	case OpComplete:
		s.handleComplete(request)
	case OpSearch:
		s.handleSearch(request)
	case OpAdd:
		s.handleAdd(request)
	case OpDelete:
		s.handleDelete(request)
	case OpStats:
		s.handleStats(request)
	case OpHealth:
		s.sendResponse(ResultResponse{ID: request.ID, Status: "ok"})
	default:
		s.sendError(request.ID, fmt.Sprintf("unknown op: %q", request.Op), 400)
	}
}

func (s *Server) handleComplete(request Request) {
	prefix := request.Word
	if prefix == "" {
		s.sendError(request.ID, "missing prefix", 400)
		return
	}

	length := utf8.RuneCountInString(prefix)
	if length < s.config.Server.MinPrefix {
		s.sendError(request.ID, fmt.Sprintf("prefix must be at least %d characters", s.config.Server.MinPrefix), 400)
		return
	}
	if length > s.config.Server.MaxPrefix {
		s.sendError(request.ID, fmt.Sprintf("prefix exceeds maximum length of %d characters", s.config.Server.MaxPrefix), 400)
		return
	}

	start := time.Now()
	var results []dictionary.WordFrequency
	if !s.config.Server.EnableFilter || utils.IsValidInput(prefix) {
		results = s.completer.Complete(prefix)
	} else {
		log.Debugf("Filtered prefix '%s'", prefix)
	}
	elapsed := time.Since(start)

	suggestions := make([]Suggestion, len(results))
	for i, wf := range results {
		suggestions[i] = Suggestion{Word: wf.Word, Frequency: wf.Frequency}
	}

	s.sendResponse(CompletionResponse{
		ID:          request.ID,
		Suggestions: suggestions,
		Count:       len(suggestions),
		TimeTaken:   elapsed.Microseconds(),
	})
}

func (s *Server) handleSearch(request Request) {
	freq, err := s.completer.Search(request.Word)
	if err != nil {
		s.sendDictError(request, err)
		return
	}
	s.sendResponse(ResultResponse{ID: request.ID, Status: "found", Word: request.Word, Frequency: freq})
}

func (s *Server) handleAdd(request Request) {
	if err := s.completer.Add(request.Word, request.Frequency); err != nil {
		s.sendDictError(request, err)
		return
	}
	s.sendResponse(ResultResponse{ID: request.ID, Status: "added", Word: request.Word, Frequency: request.Frequency})
}

func (s *Server) handleDelete(request Request) {
	if err := s.completer.Delete(request.Word); err != nil {
		s.sendDictError(request, err)
		return
	}
	s.sendResponse(ResultResponse{ID: request.ID, Status: "deleted", Word: request.Word})
}

func (s *Server) handleStats(request Request) {
	response := StatsResponse{ID: request.ID, Stats: s.completer.Stats()}
	if c, ok := s.completer.(interface{ Approach() suggest.Approach }); ok {
		response.Approach = string(c.Approach())
	}
	s.sendResponse(response)
}

// sendDictError maps dictionary errors onto response codes.
func (s *Server) sendDictError(request Request, err error) {
	code := 500
	switch {
	case errors.Is(err, dictionary.ErrNotFound):
		code = 404
	case errors.Is(err, dictionary.ErrDuplicate):
		code = 409
	case errors.Is(err, dictionary.ErrEmptyInput), errors.Is(err, dictionary.ErrNegativeFrequency),
		errors.Is(err, dictionary.ErrInvalidUTF8):
		code = 400
	}
	s.sendError(request.ID, fmt.Sprintf("%s %q: %v", request.Op, request.Word, err), code)
}

func (s *Server) sendResponse(response any) {
	if err := s.encoder.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
	}
}

func (s *Server) sendError(id, message string, code int) {
	s.sendResponse(ErrorResponse{ID: id, Error: message, Code: code})
}
