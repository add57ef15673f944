package entity

import "time"

const (
	// RoomTypePVP is a two-player room filled over the network.
	RoomTypePVP = "pvp"
	// RoomTypeBot is a single-player room where O is the computer.
	RoomTypeBot = "bot"
)

// Room is a shared game plus its membership. Players holds at most two
// entries and the first one is always the host. Participants joining a
// full room are appended to Spectators and stay there until they leave.
//
// Version is a per-room monotonic counter bumped on every accepted
// mutation. Polling clients apply a snapshot only when Version is
// strictly greater than the last one they rendered; a counter is used
// instead of wall-clock time so two mutations inside one clock tick
// still produce distinct values.
type Room struct {
	Game

	ID         string    `json:"id"`
	Type       string    `json:"type"`
	Players    []*Player `json:"players,omitempty"`
	Spectators []string  `json:"spectators,omitempty"`
	Difficulty string    `json:"difficulty,omitempty"`
	Version    uint64    `json:"version"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func NewRoom(id, roomType string) *Room {
	return &Room{
		Game: *NewGame(),
		ID:   id,
		Type: roomType,
	}
}

// Touch records a mutation for polling consumers.
func (that *Room) Touch() {
	that.Version++
	that.UpdatedAt = time.Now().UTC()
}

// Host returns the first joined player, or nil for an empty room.
func (that *Room) Host() *Player {
	if len(that.Players) == 0 {
		return nil
	}
	return that.Players[0]
}

func (that *Room) IsHost(participantID string) bool {
	host := that.Host()
	return host != nil && host.ID == participantID
}

// PlayerByID looks a participant up among the seated players.
func (that *Room) PlayerByID(participantID string) *Player {
	for _, player := range that.Players {
		if player.ID == participantID {
			return player
		}
	}
	return nil
}

func (that *Room) HasSpectator(participantID string) bool {
	for _, id := range that.Spectators {
		if id == participantID {
			return true
		}
	}
	return false
}

func (that *Room) IsFull() bool {
	return len(that.Players) >= 2
}

func (that *Room) IsWithBot() bool {
	return that.Type == RoomTypeBot
}

// BotPlayer returns the computer participant of a bot room, or nil.
func (that *Room) BotPlayer() *Player {
	for _, player := range that.Players {
		if player.IsBot() {
			return player
		}
	}
	return nil
}
