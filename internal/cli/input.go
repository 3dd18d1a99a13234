package cli

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/bastiangx/spellserve/pkg/suggest"
)

// InputHandler runs the read-eval loop: one query word per line on input,
// suggestions on output. Suggestion lines are the program's actual output,
// so they go straight to the writer; diagnostics go to the logger.
type InputHandler struct {
	suggester    *suggest.Suggester
	bestOnly     bool
	requestCount int
}

// NewInputHandler builds a handler around a loaded suggester. bestOnly
// selects single-best output instead of the full ranked list.
func NewInputHandler(suggester *suggest.Suggester, bestOnly bool) *InputHandler {
	return &InputHandler{suggester: suggester, bestOnly: bestOnly}
}

// Run reads query lines from r until an empty line or end of input. For each
// query it writes either the best suggestion or all ranked suggestions, one
// per line, followed by a blank separator line.
func (h *InputHandler) Run(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			break
		}
		if err := h.handleQuery(line, w); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

func (h *InputHandler) handleQuery(query string, w io.Writer) error {
	h.requestCount++
	start := time.Now()

	if h.bestOnly {
		if _, err := fmt.Fprintln(w, h.suggester.Best(query)); err != nil {
			return err
		}
	} else {
		for _, word := range h.suggester.All(query) {
			if _, err := fmt.Fprintln(w, word); err != nil {
				return err
			}
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	log.Debugf("Took [ %v ] for query '%s' (request %d)", time.Since(start), query, h.requestCount)
	return nil
}
