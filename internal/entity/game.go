package entity

import (
	"fmt"

	"github.com/ImperialKoi/Ultimate-TicTacToe/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
	StatusWaiting  = "waiting"

	PlayerX   = "X"
	PlayerO   = "O"
	PlayerTie = "-"

	EmptyCell = ""

	// AnyBoard means the side to move may play on any unresolved sub-board.
	AnyBoard = -1

	boardCount = 9
	cellCount  = 9
)

// WinCombos are the 8 winning lines of a 3x3 board in canonical order:
// rows, then columns, then diagonals. The same lines score both a
// sub-board of cells and the main board of sub-board results.
var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Move is a (board, cell) coordinate pair, both in row-major 0..8.
type Move struct {
	Board int `json:"board"`
	Cell  int `json:"cell"`
}

// Game is the full ultimate tic-tac-toe state. Boards holds the 9
// sub-boards; MainBoard holds each sub-board's resolved result (a mark,
// PlayerTie, or EmptyCell while the sub-board is still open).
type Game struct {
	Boards    [9][9]string `json:"boards"`
	MainBoard [9]string    `json:"main_board"`
	Turn      string       `json:"player_turn"`
	NextBoard int          `json:"next_board"`
	Winner    string       `json:"winner"`
	Status    string       `json:"status"`
	LastMove  *Move        `json:"last_move,omitempty"`
}

func NewGame() *Game {
	return &Game{
		Turn:      PlayerX,
		NextBoard: AnyBoard,
		Status:    StatusWaiting,
	}
}

// EvaluateLine scores a 9-slot line: the first winning combo's mark, or
// PlayerTie when the line is full with no winner, or EmptyCell while open.
// A PlayerTie slot is non-empty but can never complete a winning combo.
func EvaluateLine(line [9]string) string {
	for _, combo := range WinCombos {
		a, b, c := line[combo[0]], line[combo[1]], line[combo[2]]
		if a != EmptyCell && a != PlayerTie && a == b && b == c {
			return a
		}
	}

	for _, slot := range line {
		if slot == EmptyCell {
			return EmptyCell
		}
	}

	return PlayerTie
}

// IsLegalMove reports whether playing (board, cell) is allowed in the
// current state, ignoring whose turn it is.
func (that *Game) IsLegalMove(board, cell int) bool {
	if that.IsFinished() {
		return false
	}

	if board < 0 || board >= boardCount || cell < 0 || cell >= cellCount {
		return false
	}

	if that.NextBoard != AnyBoard && that.MainBoard[that.NextBoard] == EmptyCell && board != that.NextBoard {
		return false
	}

	if that.MainBoard[board] != EmptyCell {
		return false
	}

	return that.Boards[board][cell] == EmptyCell
}

// nextActiveBoard routes the opponent: the sub-board matching the cell
// just played, unless that sub-board is already resolved.
func (that *Game) nextActiveBoard(cell int) int {
	if that.MainBoard[cell] == EmptyCell {
		return cell
	}
	return AnyBoard
}

// MakeTurn applies one move for playerMark. On an illegal move it returns
// a sentinel error and leaves the state untouched.
func (that *Game) MakeTurn(playerMark string, board, cell int) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if err := that.validateMove(playerMark, board, cell); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	that.Boards[board][cell] = playerMark
	that.LastMove = &Move{Board: board, Cell: cell}

	if result := EvaluateLine(that.Boards[board]); result != EmptyCell {
		that.MainBoard[board] = result
	}

	that.updateGameState(playerMark, cell)

	return nil
}

func (that *Game) validateMove(playerMark string, board, cell int) error {
	if board < 0 || board >= boardCount {
		return fmt.Errorf("%w: board %d", apperror.ErrInvalidBoard, board)
	}

	if cell < 0 || cell >= cellCount {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if that.Turn != playerMark {
		return apperror.ErrNotYourTurn
	}

	if that.NextBoard != AnyBoard && that.MainBoard[that.NextBoard] == EmptyCell && board != that.NextBoard {
		return fmt.Errorf("%w: active board is %d", apperror.ErrWrongBoard, that.NextBoard)
	}

	if that.MainBoard[board] != EmptyCell {
		return fmt.Errorf("%w: board %d", apperror.ErrBoardResolved, board)
	}

	if that.Boards[board][cell] != EmptyCell {
		return apperror.ErrCellOccupied
	}

	return nil
}

// updateGameState resolves the main board after a move, or routes the
// next active board and flips the turn when the game continues.
func (that *Game) updateGameState(playerMark string, cell int) {
	switch winner := EvaluateLine(that.MainBoard); winner {
	case PlayerX, PlayerO:
		that.Winner = winner
		that.Status = StatusFinished
		that.NextBoard = AnyBoard
	case PlayerTie:
		that.Winner = PlayerTie
		that.Status = StatusFinished
		that.NextBoard = AnyBoard
	default:
		that.Status = StatusOngoing
		that.NextBoard = that.nextActiveBoard(cell)
		that.Turn = toggleMark(playerMark)
	}
}

// Reset returns the game to its initial position. Room identity and
// membership are the caller's concern.
func (that *Game) Reset() {
	that.Boards = [9][9]string{}
	that.MainBoard = [9]string{}
	that.Turn = PlayerX
	that.NextBoard = AnyBoard
	that.Winner = ""
	that.Status = StatusOngoing
	that.LastMove = nil
}

// Clone returns an independent copy safe to mutate during search.
func (that *Game) Clone() *Game {
	clone := *that
	if that.LastMove != nil {
		move := *that.LastMove
		clone.LastMove = &move
	}
	return &clone
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWaiting() bool {
	return that.Status == StatusWaiting
}

func toggleMark(currentMark string) string {
	if currentMark == PlayerX {
		return PlayerO
	}
	return PlayerX
}

// OpponentMark returns the other side's mark.
func OpponentMark(mark string) string {
	return toggleMark(mark)
}
