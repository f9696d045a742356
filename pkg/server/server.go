package server

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/bastiangx/righte/internal/logger"
	"github.com/bastiangx/righte/pkg/lookup"
	"github.com/bastiangx/righte/pkg/theory"
)

// Reloader reloads the word list behind the engine.
type Reloader interface {
	Reload() error
}

// Options configures a Server. Nil streams default to stdin and stdout.
type Options struct {
	In         io.Reader
	Out        io.Writer
	MaxStrokes int
	Reloader   Reloader
	Theory     *theory.Theory
	// WordCount reports the size of the word list in use.
	WordCount func() int
}

// Server handles the IPC for stroke lookups
type Server struct {
	engine atomic.Pointer[lookup.Engine]
	opts   Options
	dec    *msgpack.Decoder
	enc    *msgpack.Encoder
	logger *log.Logger
}

// NewServer creates a new lookup server
func NewServer(engine *lookup.Engine, opts Options) *Server {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	s := &Server{
		opts:   opts,
		dec:    msgpack.NewDecoder(opts.In),
		enc:    msgpack.NewEncoder(opts.Out),
		logger: logger.New("server"),
	}
	s.engine.Store(engine)
	return s
}

// SetEngine swaps the engine used for new requests.
func (s *Server) SetEngine(engine *lookup.Engine) {
	s.engine.Store(engine)
}

// Start serves requests until the input stream ends
func (s *Server) Start() error {
	s.logger.Debug("Starting Server.")
	if err := s.send(StatusResponse{Status: "ready"}); err != nil {
		return err
	}

	for {
		var req Request
		if err := s.dec.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			s.logger.Errorf("Decoding request: %v", err)
			return fmt.Errorf("decode request: %w", err)
		}
		if err := s.handleRequest(req); err != nil {
			return err
		}
	}
}

func (s *Server) handleRequest(req Request) error {
	switch req.Action {
	case "", ActionLookup:
		return s.handleLookup(req)
	case ActionPattern:
		return s.handlePattern(req)
	case ActionHealth:
		return s.send(s.status(req.ID, "ok"))
	case ActionReload:
		return s.handleReload(req)
	default:
		return s.sendError(req.ID, fmt.Sprintf("Unknown action: %s", req.Action), CodeBadRequest)
	}
}

func (s *Server) validate(req Request) (string, int) {
	if len(req.Strokes) == 0 {
		return "Missing 's' strokes", CodeBadRequest
	}
	if s.opts.MaxStrokes > 0 && len(req.Strokes) > s.opts.MaxStrokes {
		return fmt.Sprintf("Request exceeds maximum of %d strokes", s.opts.MaxStrokes), CodeTooLarge
	}
	return "", 0
}

func (s *Server) handleLookup(req Request) error {
	if msg, code := s.validate(req); code != 0 {
		s.logger.Debugf("Rejecting request %s: %s", req.ID, msg)
		return s.sendError(req.ID, msg, code)
	}

	start := time.Now()
	res := s.engine.Load().Lookup(req.Strokes)
	elapsed := time.Since(start)

	segments := make([]Segment, 0, len(res.Segments))
	for _, seg := range res.Segments {
		segments = append(segments, Segment{
			Kind:    seg.Kind.String(),
			Strokes: seg.Strokes,
			Text:    seg.Text,
			Rank:    seg.Rank,
		})
	}
	residue := res.Residue
	if residue == nil {
		residue = []string{}
	}
	return s.send(LookupResponse{
		ID:        req.ID,
		Text:      res.Text,
		Segments:  segments,
		Residue:   residue,
		TimeTaken: elapsed.Microseconds(),
	})
}

func (s *Server) handlePattern(req Request) error {
	if msg, code := s.validate(req); code != 0 {
		return s.sendError(req.ID, msg, code)
	}
	st, err := s.engine.Load().Pattern(req.Strokes)
	if err != nil {
		return s.sendError(req.ID, err.Error(), CodeBadRequest)
	}
	return s.send(PatternResponse{ID: req.ID, Pattern: st.String()})
}

func (s *Server) handleReload(req Request) error {
	if s.opts.Reloader == nil {
		return s.sendError(req.ID, "Reloading is not enabled", CodeBadRequest)
	}
	if err := s.opts.Reloader.Reload(); err != nil {
		s.logger.Warnf("Reload failed: %v", err)
		return s.sendError(req.ID, err.Error(), CodeInternal)
	}
	return s.send(s.status(req.ID, "reloaded"))
}

func (s *Server) status(id, status string) StatusResponse {
	resp := StatusResponse{ID: id, Status: status}
	if t := s.opts.Theory; t != nil {
		resp.Theory = t.Name
		resp.Version = t.Version
	}
	if s.opts.WordCount != nil {
		resp.Words = s.opts.WordCount()
	}
	return resp
}

func (s *Server) send(response any) error {
	if err := s.enc.Encode(response); err != nil {
		s.logger.Errorf("Encoding response: %v", err)
		return fmt.Errorf("encode response: %w", err)
	}
	return nil
}

func (s *Server) sendError(id, message string, code int) error {
	return s.send(LookupError{ID: id, Error: message, Code: code})
}
