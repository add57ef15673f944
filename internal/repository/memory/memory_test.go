package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ImperialKoi/Ultimate-TicTacToe/internal/apperror"
	"github.com/ImperialKoi/Ultimate-TicTacToe/internal/entity"
)

func TestRoomRegistry(t *testing.T) {
	t.Run("Stored rooms round-trip by code", func(t *testing.T) {
		ctx := context.Background()
		repo := NewRoomRepository()

		// Given: a stored room
		room := entity.NewRoom("ABC123", entity.RoomTypePVP)
		require.NoError(t, repo.CreateOrUpdate(ctx, room))

		// When: fetching it back
		retrieved, err := repo.GetByID(ctx, "ABC123")

		// Then: the snapshot matches
		require.NoError(t, err)
		assert.Equal(t, room.ID, retrieved.ID)
	})

	t.Run("Unknown codes return ErrRoomNotFound", func(t *testing.T) {
		repo := NewRoomRepository()

		_, err := repo.GetByID(context.Background(), "ZZZZZZ")

		assert.ErrorIs(t, err, apperror.ErrRoomNotFound)
	})

	t.Run("Snapshots do not alias the stored record", func(t *testing.T) {
		ctx := context.Background()
		repo := NewRoomRepository()

		room := entity.NewRoom("ABC123", entity.RoomTypePVP)
		room.Status = entity.StatusOngoing
		room.Players = []*entity.Player{{ID: "p1", Mark: entity.PlayerX}}
		require.NoError(t, repo.CreateOrUpdate(ctx, room))

		// When: mutating a fetched snapshot without writing it back
		snapshot, err := repo.GetByID(ctx, "ABC123")
		require.NoError(t, err)
		require.NoError(t, snapshot.MakeTurn(entity.PlayerX, 4, 4))
		snapshot.Players[0].Mark = entity.PlayerO

		// Then: the stored record is unchanged
		stored, err := repo.GetByID(ctx, "ABC123")
		require.NoError(t, err)
		assert.Equal(t, entity.EmptyCell, stored.Boards[4][4])
		assert.Equal(t, entity.PlayerX, stored.Players[0].Mark)
	})

	t.Run("Delete removes the entry", func(t *testing.T) {
		ctx := context.Background()
		repo := NewRoomRepository()

		room := entity.NewRoom("ABC123", entity.RoomTypePVP)
		require.NoError(t, repo.CreateOrUpdate(ctx, room))
		require.NoError(t, repo.DeleteByID(ctx, "ABC123"))

		_, err := repo.GetByID(ctx, "ABC123")
		assert.ErrorIs(t, err, apperror.ErrRoomNotFound)
	})
}

func TestPlayerRegistry(t *testing.T) {
	t.Run("Stored players round-trip by id", func(t *testing.T) {
		ctx := context.Background()
		repo := NewPlayerRepository()

		player := &entity.Player{ID: "p1", Mark: entity.PlayerX}
		require.NoError(t, repo.CreateOrUpdate(ctx, player))

		retrieved, err := repo.GetByID(ctx, "p1")
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerX, retrieved.Mark)
	})
}
