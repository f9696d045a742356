// Package cli handles cmd line input and translations for DBG and testing various features
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/bastiangx/righte/pkg/lookup"
)

// InputHandler reads stroke sequences from stdin, one per line, and
// prints their translation.
type InputHandler struct {
	engine       *lookup.Engine
	separator    string
	verbose      bool
	in           io.Reader
	out          io.Writer
	requestCount int
}

// NewInputHandler handles initialization of the InputHandler. separator
// splits a line into strokes; whitespace always does.
func NewInputHandler(engine *lookup.Engine, separator string, verbose bool) *InputHandler {
	if separator == "" {
		separator = DefaultSeparator
	}
	return &InputHandler{
		engine:    engine,
		separator: separator,
		verbose:   verbose,
		in:        os.Stdin,
		out:       os.Stdout,
	}
}

// SetIO replaces stdin and stdout.
func (h *InputHandler) SetIO(in io.Reader, out io.Writer) {
	h.in = in
	h.out = out
}

// Start begins the interface loop. It returns nil once input ends.
func (h *InputHandler) Start() error {
	log.Print("righte CLI [BETA]")
	log.Printf("type strokes separated by %q and press Enter (Ctrl+C to exit):", h.separator)

	scanner := bufio.NewScanner(h.in)
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
	h.requestCount++
	strokes := SplitStrokes(line, h.separator)
	if len(strokes) == 0 {
		log.Errorf("No strokes in %q", line)
		return
	}

	start := time.Now()
	res := h.engine.Lookup(strokes)
	log.Debugf("Took [ %v ] for %d strokes", time.Since(start), len(strokes))

	fmt.Fprintln(h.out, res.Text)
	if h.verbose {
		fmt.Fprint(h.out, RenderSegments(res, h.separator))
	}
	if len(res.Residue) > 0 {
		log.Warnf("Untranslated strokes: %s", strings.Join(res.Residue, h.separator))
	}
}

// DefaultSeparator divides strokes when none is configured.
const DefaultSeparator = "/"

// SplitStrokes splits line on sep and whitespace, dropping empty strokes.
// An empty sep means DefaultSeparator.
func SplitStrokes(line, sep string) []string {
	if sep == "" {
		sep = DefaultSeparator
	}
	var strokes []string
	for _, field := range strings.Fields(line) {
		for _, s := range strings.Split(field, sep) {
			if s != "" {
				strokes = append(strokes, s)
			}
		}
	}
	return strokes
}
