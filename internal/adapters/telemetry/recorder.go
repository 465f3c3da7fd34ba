// Package telemetry provides the progrock implementation of the telemetry
// adapter.
package telemetry

import (
	"context"
	"io"
	"os"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/trim/internal/core/ports"
)

// Recorder implements ports.Telemetry using progrock.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder
	out io.Writer
}

// New creates a Recorder with a default tape rendered to stderr on Close.
func New() *Recorder {
	return NewRecorder(progrock.NewTape())
}

// NewRecorder creates a Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
		out: os.Stderr,
	}
}

// WithOutput redirects the final render. Used by tests.
func (r *Recorder) WithOutput(out io.Writer) *Recorder {
	r.out = out
	return r
}

// Record starts recording a new vertex and stores it in the context so
// downstream collaborators can stream output into it.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	d := digest.FromString(name)
	vertex := &Vertex{vertex: r.rec.Vertex(d, name)}
	return ports.ContextWithVertex(ctx, vertex), vertex
}

// Close completes the session and writes the final render of the recorded
// vertexes, including their captured output, to the output writer. Closing
// the tape first makes it display all vertex output in that render.
func (r *Recorder) Close() error {
	r.rec.Complete()
	if err := r.rec.Close(); err != nil {
		return err
	}
	if tape, ok := r.w.(*progrock.Tape); ok {
		return tape.Render(r.out, progrock.DefaultUI())
	}
	return nil
}
