package apperror

import "errors"

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrGameIsNotStarted = errors.New("game is not started")
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrInvalidBoard     = errors.New("invalid board index")
	ErrInvalidCell      = errors.New("invalid cell index")
	ErrWrongBoard       = errors.New("move must be played on the active board")
	ErrBoardResolved    = errors.New("board is already won or drawn")
	ErrCellOccupied     = errors.New("cell is already occupied")

	ErrRoomNotFound   = errors.New("room not found")
	ErrRoomFull       = errors.New("room already has two players")
	ErrSpectatorMove  = errors.New("spectators cannot make moves")
	ErrNotHost        = errors.New("only the host can reset the game")
	ErrNotParticipant = errors.New("participant is not in this room")
)
