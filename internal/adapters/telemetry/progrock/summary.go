package progrock

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/vito/progrock"
)

var _ progrock.Writer = (*Summary)(nil)

const (
	iconDone    = "✓"
	iconFailed  = "✗"
	iconRunning = "•"
)

type vertexState struct {
	id        string
	name      string
	completed bool
	err       string
	stderr    bytes.Buffer
}

// Summary is a progrock.Writer that folds status updates into per-vertex
// state and renders one line per vertex when closed.
type Summary struct {
	mu       sync.Mutex
	out      io.Writer
	vertices []*vertexState
	byID     map[string]*vertexState
	closed   bool
}

// NewSummary creates a Summary rendering to out.
func NewSummary(out io.Writer) *Summary {
	return &Summary{
		out:  out,
		byID: make(map[string]*vertexState),
	}
}

// WriteStatus applies a status update.
func (s *Summary) WriteStatus(update *progrock.StatusUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, v := range update.Vertexes {
		state := s.vertex(v.Id)
		state.name = v.Name
		if v.Completed != nil {
			state.completed = true
			if v.Error != nil {
				state.err = *v.Error
			}
		}
	}

	for _, l := range update.Logs {
		if l.Stream == progrock.LogStream_STDERR {
			s.vertex(l.Vertex).stderr.Write(l.Data)
		}
	}
	return nil
}

// vertex returns the state for id, adding it in first-seen order.
func (s *Summary) vertex(id string) *vertexState {
	state, ok := s.byID[id]
	if !ok {
		state = &vertexState{id: id}
		s.byID[id] = state
		s.vertices = append(s.vertices, state)
	}
	return state
}

// Close renders the summary. Later calls are no-ops.
func (s *Summary) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	var b strings.Builder
	for _, v := range s.vertices {
		icon := iconRunning
		switch {
		case v.completed && v.err != "":
			icon = iconFailed
		case v.completed:
			icon = iconDone
		}

		fmt.Fprintf(&b, "%s %s", icon, v.name)
		if v.err != "" {
			fmt.Fprintf(&b, ": %s", v.err)
		}
		b.WriteString("\n")

		for _, line := range strings.Split(strings.TrimRight(v.stderr.String(), "\n"), "\n") {
			if line != "" {
				fmt.Fprintf(&b, "    %s\n", line)
			}
		}
	}

	_, err := io.WriteString(s.out, b.String())
	return err
}
