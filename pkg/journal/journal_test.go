package journal

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJournal(t *testing.T) {
	ctx := context.Background()
	j, err := NewJournal(ctx, ":memory:")
	require.NoError(t, err)
	defer j.Close()

	require.NoError(t, j.Record(ctx, DirectionInbound, "update", []byte{0x01, 0x02}))
	require.NoError(t, j.Record(ctx, DirectionOutbound, "indianDemand", []byte{0x03}))
	require.NoError(t, j.Record(ctx, DirectionInbound, "newTurn", []byte{0x04}))

	entries, err := j.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Newest first.
	assert.Equal(t, "newTurn", entries[0].Tag)
	assert.Equal(t, DirectionInbound, entries[0].Direction)
	assert.Equal(t, "indianDemand", entries[1].Tag)
	assert.Equal(t, DirectionOutbound, entries[1].Direction)
	assert.Equal(t, []byte{0x03}, entries[1].Frame)
	assert.NotZero(t, entries[0].Timestamp)
}

func TestJournalRecentEmpty(t *testing.T) {
	ctx := context.Background()
	j, err := NewJournal(ctx, ":memory:")
	require.NoError(t, err)
	defer j.Close()

	entries, err := j.Recent(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
