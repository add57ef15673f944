package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ImperialKoi/Ultimate-TicTacToe/internal/config"
	"github.com/ImperialKoi/Ultimate-TicTacToe/internal/repository"
	"github.com/ImperialKoi/Ultimate-TicTacToe/internal/repository/memory"
	"github.com/ImperialKoi/Ultimate-TicTacToe/internal/repository/storage"
	"github.com/ImperialKoi/Ultimate-TicTacToe/internal/service"
	"github.com/ImperialKoi/Ultimate-TicTacToe/transport/rest"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	var (
		roomRepo   repository.RoomRepository
		playerRepo repository.PlayerRepository
	)

	if conf.UseRedis() {
		redisStorage, err := storage.New(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err = redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		roomRepo = repository.NewRoomRepository(redisStorage.Connection)
		playerRepo = repository.NewPlayerRepository(redisStorage.Connection)
	} else {
		roomRepo = memory.NewRoomRepository()
		playerRepo = memory.NewPlayerRepository()
	}

	playerService := service.NewPlayerService(playerRepo)
	roomService := service.NewRoomService(roomRepo)
	botService := service.NewBotService()
	gamePlayService := service.NewGamePlayService(logger, playerService, roomService, botService, conf.Bot.Delay, conf.Bot.DefaultDifficulty)

	router := rest.NewRouter(logger, gamePlayService)

	log.Info("Starting HTTP server", "port", conf.HTTPPort, "storage", conf.Storage)
	if err := rest.Start(ctx, conf.HTTPPort, router); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	log.Info("Application context canceled, shutting down")

	return nil
}
