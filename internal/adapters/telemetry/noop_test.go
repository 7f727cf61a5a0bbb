package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bundle/internal/adapters/telemetry"
	"go.trai.ch/bundle/internal/core/domain"
)

func TestNoOp(t *testing.T) {
	tel := telemetry.NewNoOp()
	ctx := context.Background()

	got, vertex := tel.Record(ctx, "bundle nunjucks.js")
	assert.Equal(t, ctx, got)
	require.NotNil(t, vertex)

	n, err := vertex.Stdout().Write([]byte("output"))
	require.NoError(t, err)
	assert.Equal(t, 6, n)
	_, err = vertex.Stderr().Write([]byte("errors"))
	require.NoError(t, err)

	vertex.Log(domain.LogLevelWarn, "ignored")
	vertex.Complete(errors.New("ignored"))

	assert.NoError(t, tel.Close())
}
