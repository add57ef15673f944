package service

import (
	"errors"
	"fmt"

	"github.com/ImperialKoi/Ultimate-TicTacToe/internal/bot"
	"github.com/ImperialKoi/Ultimate-TicTacToe/internal/entity"
)

var (
	ErrBotNotFound      = errors.New("bot player not found")
	ErrNoAvailableMoves = errors.New("no available moves")
)

type BotService interface {
	MakeTurn(room *entity.Room) error
}

type botService struct{}

func NewBotService() BotService {
	return &botService{}
}

// MakeTurn picks the bot's move by minimax search at the depth implied
// by the room's difficulty and applies it through the shared rules.
func (that *botService) MakeTurn(room *entity.Room) error {
	botPlayer := room.BotPlayer()
	if botPlayer == nil {
		return ErrBotNotFound
	}

	depth := bot.DepthForDifficulty(room.Difficulty)

	move, _ := bot.BestMove(&room.Game, botPlayer.Mark, depth)
	if move.Board < 0 {
		return ErrNoAvailableMoves
	}

	if err := room.MakeTurn(botPlayer.Mark, move.Board, move.Cell); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	return nil
}
