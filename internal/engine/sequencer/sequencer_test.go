package sequencer_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bundle/internal/engine/sequencer"
)

func recordingTask(name string, order *[]string, err error) sequencer.Task {
	return func(context.Context) error {
		*order = append(*order, name)
		return err
	}
}

func TestRun_AllSucceed(t *testing.T) {
	var order []string

	err := sequencer.Run(context.Background(),
		recordingTask("A", &order, nil),
		recordingTask("B", &order, nil),
		recordingTask("C", &order, nil),
	)

	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, order)
}

func TestRun_StopsAtFirstFailure(t *testing.T) {
	var order []string
	errB := errors.New("B failed")

	err := sequencer.Run(context.Background(),
		recordingTask("A", &order, nil),
		recordingTask("B", &order, errB),
		recordingTask("C", &order, nil),
	)

	require.ErrorIs(t, err, errB)
	assert.Same(t, errB, err)
	assert.Equal(t, []string{"A", "B"}, order)
}

func TestRun_FirstTaskFails(t *testing.T) {
	var order []string
	errA := errors.New("A failed")

	err := sequencer.Run(context.Background(),
		recordingTask("A", &order, errA),
		recordingTask("B", &order, nil),
	)

	assert.Equal(t, errA, err)
	assert.Equal(t, []string{"A"}, order)
}

func TestRun_Empty(t *testing.T) {
	assert.NoError(t, sequencer.Run(context.Background()))
}

func TestRun_NoOverlap(t *testing.T) {
	running := false
	task := func(context.Context) error {
		if running {
			return errors.New("overlapping task")
		}
		running = true
		defer func() { running = false }()
		return nil
	}

	assert.NoError(t, sequencer.Run(context.Background(), task, task, task))
}

func TestRun_PassesContext(t *testing.T) {
	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "value")

	err := sequencer.Run(ctx, func(got context.Context) error {
		assert.Equal(t, "value", got.Value(key{}))
		return nil
	})
	assert.NoError(t, err)
}
