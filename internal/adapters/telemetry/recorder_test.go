package telemetry_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/trim/internal/adapters/telemetry"
	"go.trai.ch/trim/internal/core/ports"
)

func TestRecorder_RecordStoresVertexInContext(t *testing.T) {
	rec := telemetry.New()
	defer rec.Close() //nolint:errcheck // test teardown

	ctx, vtx := rec.Record(context.Background(), "analyze svc.unit.yaml")

	require.NotNil(t, vtx)
	assert.Same(t, vtx, ports.VertexFromContext(ctx))

	assert.NotNil(t, vtx.Stdout())
	assert.NotNil(t, vtx.Stderr())
	vtx.Cached()
	vtx.Complete(nil)
}

// TestRecorder_CloseRendersRecordedOutput verifies that the progress
// recorded during a run, including output streamed into a vertex, reaches
// the output writer when the session closes. Without the final render the
// tape would swallow everything written to it.
func TestRecorder_CloseRendersRecordedOutput(t *testing.T) {
	var out bytes.Buffer
	rec := telemetry.New().WithOutput(&out)

	_, vtx := rec.Record(context.Background(), "analyze svc.unit.yaml")
	fmt.Fprintln(vtx.Stdout(), "restored 3 packages")
	vtx.Complete(nil)

	require.NoError(t, rec.Close())

	assert.Contains(t, out.String(), "analyze svc.unit.yaml")
	assert.Contains(t, out.String(), "restored 3 packages")
}

func TestVertexFromContext_Empty(t *testing.T) {
	assert.Nil(t, ports.VertexFromContext(context.Background()))
}
