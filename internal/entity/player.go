package entity

const (
	// MarkSpectator is assigned to participants who join a full room.
	MarkSpectator = "spectator"

	// BotID identifies the computer opponent inside a bot room.
	BotID = "bot"
)

type Player struct {
	ID     string `json:"id"`
	Mark   string `json:"mark,omitempty"`
	RoomID string `json:"room_id,omitempty"`
}

func (that *Player) IsBot() bool {
	return that.ID == BotID
}

func (that *Player) IsSpectator() bool {
	return that.Mark == MarkSpectator
}
