package server

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/bastiangx/spellserve/internal/utils"
	"github.com/bastiangx/spellserve/pkg/config"
	"github.com/bastiangx/spellserve/pkg/suggest"
)

// maxQueryLen bounds the accepted query size. Anything longer is not a word.
const maxQueryLen = 60

// Server handles the IPC for correction and completion requests. One server
// owns one loaded dictionary; the session id ties log lines and health
// responses to a single run.
type Server struct {
	suggester *suggest.Suggester
	completer *suggest.Completer
	cache     *suggest.RankCache
	cfg       config.ServerConfig
	session   string
	dec       *msgpack.Decoder
	enc       *msgpack.Encoder
	out       io.Writer
	requests  int
}

// NewServer creates a server speaking msgpack over stdin/stdout.
func NewServer(suggester *suggest.Suggester, completer *suggest.Completer, cfg config.ServerConfig) *Server {
	return NewServerIO(suggester, completer, cfg, os.Stdin, os.Stdout)
}

// NewServerIO creates a server over explicit streams.
func NewServerIO(suggester *suggest.Suggester, completer *suggest.Completer, cfg config.ServerConfig, r io.Reader, w io.Writer) *Server {
	s := &Server{
		suggester: suggester,
		completer: completer,
		cfg:       cfg,
		session:   uuid.NewString(),
		dec:       msgpack.NewDecoder(r),
		enc:       msgpack.NewEncoder(w),
		out:       w,
	}
	if cfg.EnableCache && cfg.CacheSize > 0 {
		s.cache = suggest.NewRankCache(cfg.CacheSize)
	}
	return s
}

// Session returns the id identifying this server run.
func (s *Server) Session() string {
	return s.session
}

// Start announces readiness and serves requests until the input stream ends.
func (s *Server) Start() error {
	log.Debug("Starting server", "session", s.session)
	s.send(ReadyResponse{Status: "ready", Session: s.session})

	for {
		var request Request
		if err := s.dec.Decode(&request); err != nil {
			if errors.Is(err, io.EOF) {
				log.Debug("Input stream closed", "session", s.session, "requests", s.requests)
				return nil
			}
			log.Errorf("Decoding request: %v", err)
			return fmt.Errorf("decode request: %w", err)
		}
		s.requests++
		s.handleRequest(request)
	}
}

func (s *Server) handleRequest(request Request) {
	switch request.Command {
	case "correct":
		s.handleCorrect(request)
	case "complete":
		s.handleComplete(request)
	case "health":
		s.handleHealth(request)
	default:
		s.sendError(request.ID, fmt.Sprintf("Unknown command: %s", request.Command), 400)
	}
}

func (s *Server) handleCorrect(request Request) {
	if !s.validQuery(request) {
		return
	}

	start := time.Now()
	ranked := s.rank(request.Query)
	elapsed := time.Since(start)

	limit := s.limit(request.Limit)
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	suggestions := make([]Suggestion, len(ranked))
	for i, r := range ranked {
		suggestions[i] = Suggestion{Word: r.Word, Distance: r.Distance, Prior: r.Prior}
	}
	s.send(CorrectResponse{
		ID:          request.ID,
		Suggestions: suggestions,
		Count:       len(suggestions),
		TimeTaken:   elapsed.Microseconds(),
	})
}

// rank consults the cache before running the search. Cached rankings are
// stored untruncated so one entry serves every limit.
func (s *Server) rank(query string) []suggest.Ranked {
	if s.cache != nil {
		if ranked, ok := s.cache.Get(query); ok {
			return ranked
		}
	}
	ranked := s.suggester.Rank(query)
	if s.cache != nil {
		s.cache.Put(query, ranked)
	}
	return ranked
}

func (s *Server) handleComplete(request Request) {
	if !s.validQuery(request) {
		return
	}
	// Dictionary words are alphabetic; numeric or punctuated prefixes cannot
	// match and skip the trie walk entirely.
	if !utils.IsValidPrefix(request.Query) {
		log.Debug("Prefix filtered", "id", request.ID, "prefix", request.Query)
		s.send(CompleteResponse{ID: request.ID, Completions: []Completion{}})
		return
	}

	start := time.Now()
	found := s.completer.Complete(request.Query, s.limit(request.Limit))
	elapsed := time.Since(start)

	completions := make([]Completion, len(found))
	for i, c := range found {
		completions[i] = Completion{Word: c.Word, Prior: c.Prior}
	}
	s.send(CompleteResponse{
		ID:          request.ID,
		Completions: completions,
		Count:       len(completions),
		TimeTaken:   elapsed.Microseconds(),
	})
}

func (s *Server) handleHealth(request Request) {
	health := HealthResponse{
		ID:      request.ID,
		Status:  "ok",
		Session: s.session,
		Words:   s.completer.Len(),
		Cutoff:  s.suggester.Cutoff(),
	}
	if s.cache != nil {
		health.Cache = s.cache.Stats()
	}
	s.send(health)
}

func (s *Server) validQuery(request Request) bool {
	if request.Query == "" {
		s.sendError(request.ID, "Missing 'q' parameter", 400)
		log.Debug("Query is empty in request", "id", request.ID)
		return false
	}
	if len(request.Query) > maxQueryLen {
		s.sendError(request.ID, fmt.Sprintf("Query exceeds maximum length of %d bytes", maxQueryLen), 400)
		log.Debug("Query is too long in request", "id", request.ID)
		return false
	}
	return true
}

// limit clamps a requested result count to the configured ceiling. Zero and
// negative requests mean "server default".
func (s *Server) limit(requested int) int {
	if requested < 1 || requested > s.cfg.MaxLimit {
		return s.cfg.MaxLimit
	}
	return requested
}

func (s *Server) send(response interface{}) {
	if err := s.enc.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
	}
}

func (s *Server) sendError(id, message string, code int) {
	s.send(ErrorResponse{ID: id, Error: message, Code: code})
}
