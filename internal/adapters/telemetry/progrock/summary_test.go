package progrock_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vito/progrock"
	"google.golang.org/protobuf/types/known/timestamppb"

	adapter "go.trai.ch/bundle/internal/adapters/telemetry/progrock"
)

func TestSummary_WriteStatus(t *testing.T) {
	var out bytes.Buffer
	summary := adapter.NewSummary(&out)
	failure := "Could not resolve \"./missing\""

	require.NoError(t, summary.WriteStatus(&progrock.StatusUpdate{
		Vertexes: []*progrock.Vertex{
			{Id: "v1", Name: "bundle nunjucks.js", Started: timestamppb.Now()},
			{Id: "v2", Name: "bundle nunjucks.min.js", Started: timestamppb.Now()},
			{Id: "v3", Name: "bundle nunjucks-slim.js", Started: timestamppb.Now()},
		},
	}))
	require.NoError(t, summary.WriteStatus(&progrock.StatusUpdate{
		Vertexes: []*progrock.Vertex{
			{Id: "v1", Name: "bundle nunjucks.js", Completed: timestamppb.Now()},
			{Id: "v2", Name: "bundle nunjucks.min.js", Completed: timestamppb.Now(), Error: &failure},
		},
		Logs: []*progrock.VertexLog{
			{Vertex: "v1", Stream: progrock.LogStream_STDOUT, Data: []byte("ignored\n")},
			{Vertex: "v2", Stream: progrock.LogStream_STDERR, Data: []byte("src/index.js:3:7\n")},
		},
	}))
	require.NoError(t, summary.Close())

	assert.Equal(t,
		"✓ bundle nunjucks.js\n"+
			"✗ bundle nunjucks.min.js: Could not resolve \"./missing\"\n"+
			"    src/index.js:3:7\n"+
			"• bundle nunjucks-slim.js\n",
		out.String())
}

func TestSummary_Empty(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, adapter.NewSummary(&out).Close())
	assert.Empty(t, out.String())
}
