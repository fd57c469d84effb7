package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/gamesearch/internal/entity"
	"github.com/rocketscienceinc/gamesearch/testing/suite"
)

func newSnapshot() *entity.Snapshot {
	return entity.NewSnapshot("go", ". X\nO .", []string{"B(0,1)", "W(1,0)"}, errors.New("string claimed twice"))
}

func TestSnapshotRepository_SaveSnapshot(t *testing.T) {
	ctx, st := suite.New(t)

	snapshotRepo := NewSnapshotRepository(st.Storage, 0)

	// Given: a snapshot of a failed search
	snapshot := newSnapshot()

	// When: SaveSnapshot is called
	err := snapshotRepo.SaveSnapshot(ctx, snapshot)

	// Then: no error should be returned, and the snapshot is indexed
	require.NoError(t, err)

	ids, err := snapshotRepo.ListIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{snapshot.ID}, ids)
}

func TestSnapshotRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		snapshotRepo := NewSnapshotRepository(st.Storage, 0)

		// Given: a stored snapshot
		snapshot := newSnapshot()
		require.NoError(t, snapshotRepo.SaveSnapshot(ctx, snapshot))

		// When: GetByID is called with its ID
		retrieved, err := snapshotRepo.GetByID(ctx, snapshot.ID)

		// Then: the retrieved snapshot should match the saved one
		require.NoError(t, err)
		assert.Equal(t, snapshot.Game, retrieved.Game)
		assert.Equal(t, snapshot.Board, retrieved.Board)
		assert.Equal(t, snapshot.Moves, retrieved.Moves)
		assert.Equal(t, "string claimed twice", retrieved.Error)
		assert.True(t, snapshot.CreatedAt.Equal(retrieved.CreatedAt))
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		snapshotRepo := NewSnapshotRepository(st.Storage, 0)

		// When: GetByID is called with an unknown ID
		retrieved, err := snapshotRepo.GetByID(ctx, "9999999")

		// Then: ErrSnapshotNotFound should be returned
		require.ErrorIs(t, err, ErrSnapshotNotFound)
		assert.Nil(t, retrieved)
	})
}

func TestSnapshotRepository_ListIDs(t *testing.T) {
	ctx, st := suite.New(t)

	snapshotRepo := NewSnapshotRepository(st.Storage, time.Second)

	// Given: a snapshot whose key has expired
	snapshot := newSnapshot()
	require.NoError(t, snapshotRepo.SaveSnapshot(ctx, snapshot))
	require.NoError(t, st.Storage.Del(ctx, snapshotKey(snapshot.ID)).Err())

	// When: ListIDs is called
	ids, err := snapshotRepo.ListIDs(ctx)

	// Then: the stale id is dropped from the index
	require.NoError(t, err)
	assert.Empty(t, ids)

	members, err := st.Storage.SMembers(ctx, snapshotIndexKey).Result()
	require.NoError(t, err)
	assert.Empty(t, members)
}

func TestSnapshotRepository_DeleteByID(t *testing.T) {
	t.Run("DeleteByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		snapshotRepo := NewSnapshotRepository(st.Storage, 0)

		// Given: a stored snapshot
		snapshot := newSnapshot()
		require.NoError(t, snapshotRepo.SaveSnapshot(ctx, snapshot))

		// When: DeleteByID is called with its ID
		err := snapshotRepo.DeleteByID(ctx, snapshot.ID)

		// Then: no error should be returned, and the snapshot is gone
		require.NoError(t, err)

		_, err = snapshotRepo.GetByID(ctx, snapshot.ID)
		require.ErrorIs(t, err, ErrSnapshotNotFound)

		ids, err := snapshotRepo.ListIDs(ctx)
		require.NoError(t, err)
		assert.Empty(t, ids)
	})

	t.Run("DeleteByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		snapshotRepo := NewSnapshotRepository(st.Storage, 0)

		// When: DeleteByID is called with an unknown ID
		err := snapshotRepo.DeleteByID(ctx, "9999999")

		// Then: ErrSnapshotNotFound should be returned
		require.ErrorIs(t, err, ErrSnapshotNotFound)
	})
}
