package state

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/chargeslot/core/factory"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s, err := NewStore(factory.ModuleConfig{Type: "memory"})
	require.NoError(t, err)

	_, err = s.Load(ctx)
	assert.ErrorIs(t, err, ErrNoState)

	require.NoError(t, s.Save(ctx, sampleSnapshot()))
	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, sampleSnapshot(), got)
	assert.Contains(t, s.(*MemoryStore).Raw(), "availableTimeslots:1000,1430")
}

func TestNewStoreUnknown(t *testing.T) {
	_, err := NewStore(factory.ModuleConfig{Type: "tape"})
	assert.Error(t, err)
}
