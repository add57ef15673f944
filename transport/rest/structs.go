package rest

import "github.com/ImperialKoi/Ultimate-TicTacToe/internal/entity"

// Error reason tags surfaced to clients. Gameplay rejections are
// expected and frequent, so they travel as tagged values, never faults.
const (
	reasonNotYourTurn    = "not-your-turn"
	reasonGameOver       = "game-over"
	reasonGameNotStarted = "game-not-started"
	reasonInvalidBoard   = "invalid-board"
	reasonBoardWon       = "board-already-won"
	reasonCellFilled     = "cell-filled"
	reasonRoomNotFound   = "room-not-found"
	reasonSpectator      = "spectators-cannot-move"
	reasonNotHost        = "not-host"
	reasonBadRequest     = "bad-request"
	reasonInternal       = "internal-error"
)

type createRoomRequest struct {
	ParticipantID string `json:"participantId"`
}

type createBotRoomRequest struct {
	ParticipantID string `json:"participantId"`
	Difficulty    string `json:"difficulty,omitempty"`
}

type joinRoomRequest struct {
	ParticipantID string `json:"participantId"`
}

type moveRequest struct {
	ParticipantID string `json:"participantId"`
	BoardIndex    int    `json:"boardIndex"`
	CellIndex     int    `json:"cellIndex"`
}

type participantRequest struct {
	ParticipantID string `json:"participantId"`
}

type roomResponse struct {
	Success      bool         `json:"success"`
	RoomID       string       `json:"roomId,omitempty"`
	PlayerSymbol string       `json:"playerSymbol,omitempty"`
	IsHost       bool         `json:"isHost,omitempty"`
	Room         *entity.Room `json:"room,omitempty"`
	Error        string       `json:"error,omitempty"`
}
