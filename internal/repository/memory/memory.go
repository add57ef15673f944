// Package memory holds the process-wide in-memory registry used when no
// Redis instance is configured. Entries are inserted on create and only
// removed by an explicit delete; there is no eviction, so long-lived
// processes leak abandoned rooms. Durable persistence is owned by the
// storage layer above this one.
package memory

import (
	"context"
	"sync"

	"github.com/ImperialKoi/Ultimate-TicTacToe/internal/apperror"
	"github.com/ImperialKoi/Ultimate-TicTacToe/internal/entity"
	"github.com/ImperialKoi/Ultimate-TicTacToe/internal/repository"
)

type roomRegistry struct {
	mu    sync.RWMutex
	rooms map[string]*entity.Room
}

func NewRoomRepository() repository.RoomRepository {
	return &roomRegistry{
		rooms: make(map[string]*entity.Room),
	}
}

func (that *roomRegistry) CreateOrUpdate(_ context.Context, room *entity.Room) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.rooms[room.ID] = cloneRoom(room)

	return nil
}

func (that *roomRegistry) GetByID(_ context.Context, id string) (*entity.Room, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	room, ok := that.rooms[id]
	if !ok {
		return &entity.Room{}, apperror.ErrRoomNotFound
	}

	return cloneRoom(room), nil
}

func (that *roomRegistry) DeleteByID(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	delete(that.rooms, id)

	return nil
}

type playerRegistry struct {
	mu      sync.RWMutex
	players map[string]*entity.Player
}

func NewPlayerRepository() repository.PlayerRepository {
	return &playerRegistry{
		players: make(map[string]*entity.Player),
	}
}

func (that *playerRegistry) CreateOrUpdate(_ context.Context, player *entity.Player) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	copied := *player
	that.players[player.ID] = &copied

	return nil
}

func (that *playerRegistry) GetByID(_ context.Context, id string) (*entity.Player, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	player, ok := that.players[id]
	if !ok {
		return &entity.Player{}, repository.ErrPlayerNotFound
	}

	copied := *player
	return &copied, nil
}

// cloneRoom deep-copies the stored record so concurrent readers never
// share mutable slices with a writer.
func cloneRoom(room *entity.Room) *entity.Room {
	copied := *room
	copied.Game = *room.Game.Clone()

	if room.Players != nil {
		copied.Players = make([]*entity.Player, len(room.Players))
		for i, player := range room.Players {
			p := *player
			copied.Players[i] = &p
		}
	}

	if room.Spectators != nil {
		copied.Spectators = append([]string(nil), room.Spectators...)
	}

	return &copied
}
