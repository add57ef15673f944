package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ImperialKoi/Ultimate-TicTacToe/internal/apperror"
	"github.com/ImperialKoi/Ultimate-TicTacToe/internal/entity"
)

// JoinResult reports how a participant ended up attached to a room.
type JoinResult struct {
	Room   *entity.Room
	Mark   string
	IsHost bool
}

type GamePlayService interface {
	CreateRoom(ctx context.Context, participantID string) (*JoinResult, error)
	CreateBotRoom(ctx context.Context, participantID, difficulty string) (*JoinResult, error)
	JoinRoom(ctx context.Context, roomID, participantID string) (*JoinResult, error)
	GetRoomState(ctx context.Context, roomID string) (*entity.Room, error)

	MakeTurn(ctx context.Context, roomID, participantID string, board, cell int) (*entity.Room, error)
	ResetRoom(ctx context.Context, roomID, participantID string) (*entity.Room, error)
	LeaveRoom(ctx context.Context, roomID, participantID string) error
}

type gamePlayService struct {
	logger *slog.Logger

	playerService PlayerService
	roomService   RoomService
	botService    BotService

	locker            *roomLocker
	botDelay          time.Duration
	defaultDifficulty string
}

func NewGamePlayService(logger *slog.Logger, playerService PlayerService, roomService RoomService, botService BotService, botDelay time.Duration, defaultDifficulty string) GamePlayService {
	return &gamePlayService{
		logger:            logger,
		playerService:     playerService,
		roomService:       roomService,
		botService:        botService,
		locker:            newRoomLocker(),
		botDelay:          botDelay,
		defaultDifficulty: defaultDifficulty,
	}
}

func (that *gamePlayService) CreateRoom(ctx context.Context, participantID string) (*JoinResult, error) {
	host, err := that.playerService.GetOrCreatePlayer(ctx, participantID)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create player: %w", err)
	}

	room, err := that.roomService.CreateRoom(ctx, host, entity.RoomTypePVP)
	if err != nil {
		return nil, fmt.Errorf("failed to create room: %w", err)
	}

	if err = that.playerService.UpdatePlayer(ctx, host); err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}

	return &JoinResult{Room: room, Mark: host.Mark, IsHost: true}, nil
}

// CreateBotRoom opens a single-player room: the host plays X and the
// computer opponent is seated as O immediately, so the game starts
// without waiting for a join.
func (that *gamePlayService) CreateBotRoom(ctx context.Context, participantID, difficulty string) (*JoinResult, error) {
	host, err := that.playerService.GetOrCreatePlayer(ctx, participantID)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create player: %w", err)
	}

	room, err := that.roomService.CreateRoom(ctx, host, entity.RoomTypeBot)
	if err != nil {
		return nil, fmt.Errorf("failed to create room: %w", err)
	}

	if difficulty == "" {
		difficulty = that.defaultDifficulty
	}

	room.Difficulty = difficulty
	room.Players = append(room.Players, &entity.Player{
		ID:     entity.BotID,
		Mark:   entity.PlayerO,
		RoomID: room.ID,
	})
	room.Status = entity.StatusOngoing
	room.Touch()

	if err = that.roomService.UpdateRoom(ctx, room); err != nil {
		return nil, fmt.Errorf("failed to update room: %w", err)
	}

	if err = that.playerService.UpdatePlayer(ctx, host); err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}

	return &JoinResult{Room: room, Mark: host.Mark, IsHost: true}, nil
}

// JoinRoom attaches a participant to an existing room: a returning
// player keeps their original mark, the second distinct participant
// becomes O, and everyone after that is a spectator.
func (that *gamePlayService) JoinRoom(ctx context.Context, roomID, participantID string) (*JoinResult, error) {
	unlock := that.locker.Lock(roomID)
	defer unlock()

	room, err := that.roomService.GetRoomByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to get room by id: %w", err)
	}

	player, err := that.playerService.GetOrCreatePlayer(ctx, participantID)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create player: %w", err)
	}

	if seated := room.PlayerByID(player.ID); seated != nil {
		return &JoinResult{Room: room, Mark: seated.Mark, IsHost: room.IsHost(player.ID)}, nil
	}

	if room.HasSpectator(player.ID) {
		return &JoinResult{Room: room, Mark: entity.MarkSpectator}, nil
	}

	if room.IsFull() {
		room.Spectators = append(room.Spectators, player.ID)
		room.Touch()

		if err = that.roomService.UpdateRoom(ctx, room); err != nil {
			return nil, fmt.Errorf("failed to update room: %w", err)
		}

		return &JoinResult{Room: room, Mark: entity.MarkSpectator}, nil
	}

	player.RoomID = room.ID
	player.Mark = entity.PlayerO
	if err = that.playerService.UpdatePlayer(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}

	room.Players = append(room.Players, player)
	room.Status = entity.StatusOngoing
	room.Touch()

	if err = that.roomService.UpdateRoom(ctx, room); err != nil {
		return nil, fmt.Errorf("failed to update room: %w", err)
	}

	return &JoinResult{Room: room, Mark: player.Mark, IsHost: false}, nil
}

func (that *gamePlayService) GetRoomState(ctx context.Context, roomID string) (*entity.Room, error) {
	room, err := that.roomService.GetRoomByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to get room by id: %w", err)
	}

	return room, nil
}

func (that *gamePlayService) MakeTurn(ctx context.Context, roomID, participantID string, board, cell int) (*entity.Room, error) {
	unlock := that.locker.Lock(roomID)
	defer unlock()

	room, err := that.roomService.GetRoomByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to get room by id: %w", err)
	}

	player := room.PlayerByID(participantID)
	if player == nil {
		if room.HasSpectator(participantID) {
			return room, apperror.ErrSpectatorMove
		}

		return room, apperror.ErrNotParticipant
	}

	if room.IsWaiting() {
		return room, apperror.ErrGameIsNotStarted
	}

	if err = room.MakeTurn(player.Mark, board, cell); err != nil {
		return room, err
	}

	room.Touch()
	if err = that.roomService.UpdateRoom(ctx, room); err != nil {
		return nil, fmt.Errorf("failed to update room: %w", err)
	}

	if room.IsWithBot() && room.IsOngoing() {
		that.scheduleBotTurn(room.ID)
	}

	return room, nil
}

// scheduleBotTurn runs the search off the request path after a short
// delay, so pollers see the human move land before the reply appears.
// The search is not interruptible; the delay is a UX affordance only.
func (that *gamePlayService) scheduleBotTurn(roomID string) {
	go func() {
		time.Sleep(that.botDelay)

		if err := that.playBotTurn(context.Background(), roomID); err != nil {
			that.logger.Error("bot turn failed", "room", roomID, "error", err)
		}
	}()
}

func (that *gamePlayService) playBotTurn(ctx context.Context, roomID string) error {
	unlock := that.locker.Lock(roomID)
	defer unlock()

	room, err := that.roomService.GetRoomByID(ctx, roomID)
	if err != nil {
		return fmt.Errorf("failed to get room by id: %w", err)
	}

	botPlayer := room.BotPlayer()
	if botPlayer == nil || !room.IsOngoing() || room.Turn != botPlayer.Mark {
		return nil
	}

	if err = that.botService.MakeTurn(room); err != nil {
		return fmt.Errorf("failed to make bot turn: %w", err)
	}

	room.Touch()
	if err = that.roomService.UpdateRoom(ctx, room); err != nil {
		return fmt.Errorf("failed to update room: %w", err)
	}

	return nil
}

// ResetRoom starts a fresh game in place. Only the host may reset.
func (that *gamePlayService) ResetRoom(ctx context.Context, roomID, participantID string) (*entity.Room, error) {
	unlock := that.locker.Lock(roomID)
	defer unlock()

	room, err := that.roomService.GetRoomByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to get room by id: %w", err)
	}

	if !room.IsHost(participantID) {
		return room, apperror.ErrNotHost
	}

	room.Reset()
	room.Touch()

	if err = that.roomService.UpdateRoom(ctx, room); err != nil {
		return nil, fmt.Errorf("failed to update room: %w", err)
	}

	return room, nil
}

// LeaveRoom detaches a participant. The room is torn down once no human
// player remains; otherwise the remaining player inherits the host seat.
func (that *gamePlayService) LeaveRoom(ctx context.Context, roomID, participantID string) error {
	unlock := that.locker.Lock(roomID)
	defer unlock()

	room, err := that.roomService.GetRoomByID(ctx, roomID)
	if err != nil {
		return fmt.Errorf("failed to get room by id: %w", err)
	}

	if room.HasSpectator(participantID) {
		spectators := room.Spectators[:0]
		for _, id := range room.Spectators {
			if id != participantID {
				spectators = append(spectators, id)
			}
		}
		room.Spectators = spectators
		room.Touch()

		if err = that.roomService.UpdateRoom(ctx, room); err != nil {
			return fmt.Errorf("failed to update room: %w", err)
		}

		return nil
	}

	if room.PlayerByID(participantID) == nil {
		return apperror.ErrNotParticipant
	}

	players := make([]*entity.Player, 0, len(room.Players))
	humansLeft := 0
	for _, player := range room.Players {
		if player.ID == participantID {
			continue
		}
		if !player.IsBot() {
			humansLeft++
		}
		players = append(players, player)
	}

	if humansLeft == 0 {
		if err = that.roomService.DeleteRoom(ctx, room.ID); err != nil {
			return fmt.Errorf("failed to delete room: %w", err)
		}

		return nil
	}

	room.Players = players
	room.Touch()

	if err = that.roomService.UpdateRoom(ctx, room); err != nil {
		return fmt.Errorf("failed to update room: %w", err)
	}

	return nil
}
