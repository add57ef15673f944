package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ImperialKoi/Ultimate-TicTacToe/internal/apperror"
	"github.com/ImperialKoi/Ultimate-TicTacToe/internal/entity"
	"github.com/ImperialKoi/Ultimate-TicTacToe/internal/pkg"
)

// maxCodeAttempts bounds room code generation retries on collision.
const maxCodeAttempts = 5

var ErrCodeSpaceExhausted = errors.New("could not generate a unique room code")

type RoomService interface {
	CreateRoom(ctx context.Context, host *entity.Player, roomType string) (*entity.Room, error)
	GetRoomByID(ctx context.Context, id string) (*entity.Room, error)
	UpdateRoom(ctx context.Context, room *entity.Room) error
	DeleteRoom(ctx context.Context, roomID string) error
}

type roomRepo interface {
	CreateOrUpdate(ctx context.Context, room *entity.Room) error
	GetByID(ctx context.Context, id string) (*entity.Room, error)
	DeleteByID(ctx context.Context, id string) error
}

type roomService struct {
	roomRepo roomRepo
}

func NewRoomService(roomRepo roomRepo) RoomService {
	return &roomService{
		roomRepo: roomRepo,
	}
}

// CreateRoom allocates a unique room code, seats the host as X and
// stores the fresh room.
func (that *roomService) CreateRoom(ctx context.Context, host *entity.Player, roomType string) (*entity.Room, error) {
	code, err := that.uniqueRoomCode(ctx)
	if err != nil {
		return nil, err
	}

	room := entity.NewRoom(code, roomType)

	host.RoomID = code
	host.Mark = entity.PlayerX
	room.Players = []*entity.Player{host}
	room.Touch()

	if err = that.roomRepo.CreateOrUpdate(ctx, room); err != nil {
		return nil, fmt.Errorf("failed to create room in storage: %w", err)
	}

	return room, nil
}

func (that *roomService) uniqueRoomCode(ctx context.Context) (string, error) {
	for i := 0; i < maxCodeAttempts; i++ {
		code, err := pkg.GenerateRoomCode()
		if err != nil {
			return "", fmt.Errorf("failed to generate room code: %w", err)
		}

		_, err = that.roomRepo.GetByID(ctx, code)
		if errors.Is(err, apperror.ErrRoomNotFound) {
			return code, nil
		}

		if err != nil {
			return "", fmt.Errorf("failed to check room code: %w", err)
		}
	}

	return "", ErrCodeSpaceExhausted
}

func (that *roomService) GetRoomByID(ctx context.Context, id string) (*entity.Room, error) {
	room, err := that.roomRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve room from storage: %w", err)
	}

	return room, nil
}

func (that *roomService) UpdateRoom(ctx context.Context, room *entity.Room) error {
	if err := that.roomRepo.CreateOrUpdate(ctx, room); err != nil {
		return fmt.Errorf("failed to update room: %w", err)
	}

	return nil
}

func (that *roomService) DeleteRoom(ctx context.Context, roomID string) error {
	if err := that.roomRepo.DeleteByID(ctx, roomID); err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}

	return nil
}
