package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ImperialKoi/Ultimate-TicTacToe/internal/apperror"
	"github.com/ImperialKoi/Ultimate-TicTacToe/internal/service"
)

type handlers struct {
	logger   *slog.Logger
	gamePlay service.GamePlayService
}

func newHandlers(logger *slog.Logger, gamePlay service.GamePlayService) *handlers {
	return &handlers{
		logger:   logger.With("component", "rest"),
		gamePlay: gamePlay,
	}
}

func (that *handlers) ping(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func (that *handlers) createRoom(w http.ResponseWriter, r *http.Request) {
	var req createRoomRequest
	if !that.decode(w, r, &req) {
		return
	}

	result, err := that.gamePlay.CreateRoom(r.Context(), req.ParticipantID)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, roomResponse{
		Success:      true,
		RoomID:       result.Room.ID,
		PlayerSymbol: result.Mark,
		IsHost:       result.IsHost,
		Room:         result.Room,
	})
}

func (that *handlers) createBotRoom(w http.ResponseWriter, r *http.Request) {
	var req createBotRoomRequest
	if !that.decode(w, r, &req) {
		return
	}

	result, err := that.gamePlay.CreateBotRoom(r.Context(), req.ParticipantID, req.Difficulty)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, roomResponse{
		Success:      true,
		RoomID:       result.Room.ID,
		PlayerSymbol: result.Mark,
		IsHost:       result.IsHost,
		Room:         result.Room,
	})
}

func (that *handlers) roomState(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "roomID")

	room, err := that.gamePlay.GetRoomState(r.Context(), roomID)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, roomResponse{Success: true, RoomID: room.ID, Room: room})
}

func (that *handlers) joinRoom(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "roomID")

	var req joinRoomRequest
	if !that.decode(w, r, &req) {
		return
	}

	result, err := that.gamePlay.JoinRoom(r.Context(), roomID, req.ParticipantID)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, roomResponse{
		Success:      true,
		RoomID:       result.Room.ID,
		PlayerSymbol: result.Mark,
		IsHost:       result.IsHost,
		Room:         result.Room,
	})
}

func (that *handlers) makeMove(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "roomID")

	var req moveRequest
	if !that.decode(w, r, &req) {
		return
	}

	room, err := that.gamePlay.MakeTurn(r.Context(), roomID, req.ParticipantID, req.BoardIndex, req.CellIndex)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, roomResponse{Success: true, RoomID: room.ID, Room: room})
}

func (that *handlers) resetRoom(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "roomID")

	var req participantRequest
	if !that.decode(w, r, &req) {
		return
	}

	room, err := that.gamePlay.ResetRoom(r.Context(), roomID, req.ParticipantID)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, roomResponse{Success: true, RoomID: room.ID, Room: room})
}

func (that *handlers) leaveRoom(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "roomID")

	var req participantRequest
	if !that.decode(w, r, &req) {
		return
	}

	if err := that.gamePlay.LeaveRoom(r.Context(), roomID, req.ParticipantID); err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, roomResponse{Success: true})
}

func (that *handlers) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		that.writeJSON(w, http.StatusBadRequest, roomResponse{Success: false, Error: reasonBadRequest})
		return false
	}

	return true
}

// writeError maps expected gameplay rejections to tagged reasons with
// HTTP 200, room-not-found to 404, and everything else to 500.
func (that *handlers) writeError(w http.ResponseWriter, err error) {
	reason, status := errorReason(err)

	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "error", err)
	}

	that.writeJSON(w, status, roomResponse{Success: false, Error: reason})
}

func errorReason(err error) (string, int) {
	switch {
	case errors.Is(err, apperror.ErrRoomNotFound):
		return reasonRoomNotFound, http.StatusNotFound
	case errors.Is(err, apperror.ErrNotYourTurn):
		return reasonNotYourTurn, http.StatusOK
	case errors.Is(err, apperror.ErrGameFinished):
		return reasonGameOver, http.StatusOK
	case errors.Is(err, apperror.ErrGameIsNotStarted):
		return reasonGameNotStarted, http.StatusOK
	case errors.Is(err, apperror.ErrWrongBoard),
		errors.Is(err, apperror.ErrInvalidBoard),
		errors.Is(err, apperror.ErrInvalidCell):
		return reasonInvalidBoard, http.StatusOK
	case errors.Is(err, apperror.ErrBoardResolved):
		return reasonBoardWon, http.StatusOK
	case errors.Is(err, apperror.ErrCellOccupied):
		return reasonCellFilled, http.StatusOK
	case errors.Is(err, apperror.ErrSpectatorMove),
		errors.Is(err, apperror.ErrNotParticipant):
		return reasonSpectator, http.StatusOK
	case errors.Is(err, apperror.ErrNotHost):
		return reasonNotHost, http.StatusOK
	default:
		return reasonInternal, http.StatusInternalServerError
	}
}

func (that *handlers) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		that.logger.Error("failed to encode response", "error", err)
	}
}
