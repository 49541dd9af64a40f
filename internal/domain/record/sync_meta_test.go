package record

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSyncMeta(t *testing.T) {
	meta := NewSyncMeta()

	assert.True(t, meta.IsPending())
	assert.False(t, meta.IsSynced())
	assert.Nil(t, meta.ServerID)
	assert.False(t, meta.CreatedAt.IsZero())
	assert.Nil(t, meta.UpdatedAt)
}

func TestNewSyncedMeta(t *testing.T) {
	serverID := uuid.New()
	meta := NewSyncedMeta(serverID)

	assert.True(t, meta.IsSynced())
	require.NotNil(t, meta.ServerID)
	assert.Equal(t, serverID, *meta.ServerID)
}

func TestSyncMeta_MarkSynced(t *testing.T) {
	t.Run("first push assigns the server ID", func(t *testing.T) {
		meta := NewSyncMeta()
		serverID := uuid.New()

		require.NoError(t, meta.MarkSynced(serverID))
		assert.True(t, meta.IsSynced())
		require.NotNil(t, meta.ServerID)
		assert.Equal(t, serverID, *meta.ServerID)
		assert.NotNil(t, meta.UpdatedAt)
	})

	t.Run("rejects the nil UUID", func(t *testing.T) {
		meta := NewSyncMeta()
		assert.Error(t, meta.MarkSynced(uuid.Nil))
	})

	t.Run("server ID is immutable once set", func(t *testing.T) {
		meta := NewSyncMeta()
		serverID := uuid.New()
		require.NoError(t, meta.MarkSynced(serverID))

		err := meta.MarkSynced(uuid.New())
		assert.Error(t, err)
		assert.Equal(t, serverID, *meta.ServerID)

		// Re-pushing with the same ID is fine
		assert.NoError(t, meta.MarkSynced(serverID))
	})
}

func TestSyncMeta_MarkPending(t *testing.T) {
	meta := NewSyncedMeta(uuid.New())
	serverID := *meta.ServerID

	meta.MarkPending()

	assert.True(t, meta.IsPending())
	require.NotNil(t, meta.ServerID, "local edits keep the server identity")
	assert.Equal(t, serverID, *meta.ServerID)
}

func TestPushOrder(t *testing.T) {
	order := PushOrder()

	require.Len(t, order, 3)
	assert.Equal(t, EntityTypeSalesOrder, order[0])
	assert.Equal(t, EntityTypeQuote, order[1])
	assert.Equal(t, EntityTypeWorkOrder, order[2])
}
