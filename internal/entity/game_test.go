package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ImperialKoi/Ultimate-TicTacToe/internal/apperror"
)

func ongoingGame() *Game {
	game := NewGame()
	game.Status = StatusOngoing
	return game
}

func TestEvaluateLine(t *testing.T) {
	t.Run("Returns PlayerX for a completed row", func(t *testing.T) {
		// Given: a line where X holds the top row
		line := [9]string{PlayerX, PlayerX, PlayerX, EmptyCell, PlayerO, EmptyCell, PlayerO, EmptyCell, EmptyCell}

		// When: evaluating the line
		result := EvaluateLine(line)

		// Then: X is the winner
		assert.Equal(t, PlayerX, result)
	})

	t.Run("Returns PlayerO for a completed column", func(t *testing.T) {
		// Given: a line where O holds the left column
		line := [9]string{PlayerO, PlayerX, EmptyCell, PlayerO, PlayerX, EmptyCell, PlayerO, EmptyCell, PlayerX}

		// When: evaluating the line
		result := EvaluateLine(line)

		// Then: O is the winner
		assert.Equal(t, PlayerO, result)
	})

	t.Run("Returns EmptyCell while the line is still open", func(t *testing.T) {
		// Given: a line with empty slots and no winner
		line := [9]string{PlayerX, PlayerO, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell}

		// When: evaluating the line
		result := EvaluateLine(line)

		// Then: the line is still undecided
		assert.Equal(t, EmptyCell, result)
	})

	t.Run("Returns PlayerTie for a full line with no winner", func(t *testing.T) {
		// Given: a full line with no three-in-a-row
		line := [9]string{PlayerX, PlayerO, PlayerX, PlayerX, PlayerO, PlayerO, PlayerO, PlayerX, PlayerX}

		// When: evaluating the line
		result := EvaluateLine(line)

		// Then: the line is a tie
		assert.Equal(t, PlayerTie, result)
	})

	t.Run("A line of ties is not a win", func(t *testing.T) {
		// Given: a main board whose top row is three tied sub-boards
		line := [9]string{PlayerTie, PlayerTie, PlayerTie, PlayerX, PlayerO, PlayerX, PlayerO, PlayerX, PlayerO}

		// When: evaluating the line
		result := EvaluateLine(line)

		// Then: the ties do not form a winning line
		assert.Equal(t, PlayerTie, result)
	})

	t.Run("First match in canonical order wins on speculative boards", func(t *testing.T) {
		// Given: an invalid speculative board where both a row and a column complete
		line := [9]string{PlayerX, PlayerX, PlayerX, PlayerO, EmptyCell, EmptyCell, PlayerO, EmptyCell, PlayerO}
		line[3] = PlayerO
		line[6] = PlayerO
		line[0] = PlayerX // row 0: X X X, col 0 would be X O O

		// When: evaluating the line
		result := EvaluateLine(line)

		// Then: the row, first in canonical order, decides
		assert.Equal(t, PlayerX, result)
	})
}

func TestGame_MakeTurn(t *testing.T) {
	t.Run("Opening move routes the opponent to the matching board", func(t *testing.T) {
		// Given: a fresh game
		game := ongoingGame()

		// When: X plays the center cell of the center board
		err := game.MakeTurn(PlayerX, 4, 4)

		// Then: board 4 stays unresolved, the next board is 4 and O is to move
		require.NoError(t, err)
		assert.Equal(t, EmptyCell, game.MainBoard[4])
		assert.Equal(t, 4, game.NextBoard)
		assert.Equal(t, PlayerO, game.Turn)
		require.NotNil(t, game.LastMove)
		assert.Equal(t, Move{Board: 4, Cell: 4}, *game.LastMove)
	})

	t.Run("Rejects a move outside the active board", func(t *testing.T) {
		// Given: a game where the active board is 4
		game := ongoingGame()
		require.NoError(t, game.MakeTurn(PlayerX, 4, 4))

		// When: O plays on board 0 instead
		err := game.MakeTurn(PlayerO, 0, 0)

		// Then: the move is rejected and the state is unchanged
		require.ErrorIs(t, err, apperror.ErrWrongBoard)
		assert.Equal(t, EmptyCell, game.Boards[0][0])
		assert.Equal(t, PlayerO, game.Turn)
	})

	t.Run("Rejects a move out of turn", func(t *testing.T) {
		// Given: a fresh game with X to move
		game := ongoingGame()

		// When: O tries to move first
		err := game.MakeTurn(PlayerO, 4, 4)

		// Then: the move is rejected
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
	})

	t.Run("Rejects an occupied cell", func(t *testing.T) {
		// Given: a game where (4,4) is taken
		game := ongoingGame()
		require.NoError(t, game.MakeTurn(PlayerX, 4, 4))

		// When: O plays the same cell
		err := game.MakeTurn(PlayerO, 4, 4)

		// Then: the move is rejected
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
	})

	t.Run("Rejects out-of-range coordinates", func(t *testing.T) {
		// Given: a fresh game
		game := ongoingGame()

		// When/Then: both coordinates are validated
		require.ErrorIs(t, game.MakeTurn(PlayerX, 9, 0), apperror.ErrInvalidBoard)
		require.ErrorIs(t, game.MakeTurn(PlayerX, -1, 0), apperror.ErrInvalidBoard)
		require.ErrorIs(t, game.MakeTurn(PlayerX, 0, 9), apperror.ErrInvalidCell)
		require.ErrorIs(t, game.MakeTurn(PlayerX, 0, -1), apperror.ErrInvalidCell)
	})

	t.Run("Winning a sub-board freezes its main-board entry", func(t *testing.T) {
		// Given: X about to complete the top row of board 0 while O plays elsewhere
		game := ongoingGame()
		require.NoError(t, game.MakeTurn(PlayerX, 0, 0)) // next board 0
		require.NoError(t, game.MakeTurn(PlayerO, 0, 3)) // next board 3
		require.NoError(t, game.MakeTurn(PlayerX, 3, 0)) // next board 0
		require.NoError(t, game.MakeTurn(PlayerO, 0, 4)) // next board 4
		require.NoError(t, game.MakeTurn(PlayerX, 4, 0)) // next board 0
		require.NoError(t, game.MakeTurn(PlayerO, 0, 5)) // O completes 3-4-5 and wins board 0

		// Then: board 0 resolves for O exactly at the completing move
		assert.Equal(t, PlayerO, game.MainBoard[0])

		// When: X routes to the resolved board, freeing O's choice, and O
		// still tries to play into board 0
		require.NoError(t, game.MakeTurn(PlayerX, 5, 0))
		require.Equal(t, AnyBoard, game.NextBoard)
		err := game.MakeTurn(PlayerO, 0, 8)

		// Then: moves into the resolved board are rejected and the entry never changes
		require.ErrorIs(t, err, apperror.ErrBoardResolved)
		assert.Equal(t, PlayerO, game.MainBoard[0])
	})

	t.Run("Routing to a resolved board frees the choice", func(t *testing.T) {
		// Given: board 0 already resolved for O
		game := ongoingGame()
		require.NoError(t, game.MakeTurn(PlayerX, 0, 0))
		require.NoError(t, game.MakeTurn(PlayerO, 0, 3))
		require.NoError(t, game.MakeTurn(PlayerX, 3, 0))
		require.NoError(t, game.MakeTurn(PlayerO, 0, 4))
		require.NoError(t, game.MakeTurn(PlayerX, 4, 0))
		require.NoError(t, game.MakeTurn(PlayerO, 0, 5))
		require.Equal(t, PlayerO, game.MainBoard[0])

		// When: X plays a cell that points back at the resolved board 0
		require.NoError(t, game.MakeTurn(PlayerX, 5, 0))

		// Then: the opponent may play anywhere
		assert.Equal(t, AnyBoard, game.NextBoard)
	})

	t.Run("Main-board three in a row finishes the game", func(t *testing.T) {
		// Given: X one sub-board away from a main-board diagonal
		game := ongoingGame()
		winBoard := [9]string{
			PlayerX, PlayerX, PlayerX,
			PlayerO, PlayerO, EmptyCell,
			EmptyCell, EmptyCell, EmptyCell,
		}
		game.Boards[0] = winBoard
		game.MainBoard[0] = PlayerX
		game.Boards[4] = winBoard
		game.MainBoard[4] = PlayerX
		game.Boards[8] = [9]string{
			PlayerX, PlayerX, EmptyCell,
			PlayerO, PlayerO, EmptyCell,
			EmptyCell, EmptyCell, EmptyCell,
		}
		game.NextBoard = 8

		// When: X completes the top row of board 8
		err := game.MakeTurn(PlayerX, 8, 2)

		// Then: the game is over with X as the winner
		require.NoError(t, err)
		assert.Equal(t, PlayerX, game.MainBoard[8])
		assert.True(t, game.IsFinished())
		assert.Equal(t, PlayerX, game.Winner)
	})

	t.Run("Nine tied sub-boards draw the game", func(t *testing.T) {
		// Given: eight boards already tied and the ninth one move from a tie
		game := ongoingGame()
		tiedBoard := [9]string{
			PlayerX, PlayerO, PlayerX,
			PlayerX, PlayerO, PlayerO,
			PlayerO, PlayerX, PlayerX,
		}
		for board := 0; board < 8; board++ {
			game.Boards[board] = tiedBoard
			game.MainBoard[board] = PlayerTie
		}
		game.Boards[8] = [9]string{
			PlayerX, PlayerO, PlayerX,
			PlayerX, PlayerO, PlayerO,
			PlayerO, PlayerX, EmptyCell,
		}
		game.NextBoard = 8

		// When: X fills the final cell without winning the sub-board
		err := game.MakeTurn(PlayerX, 8, 8)

		// Then: the whole game is a draw
		require.NoError(t, err)
		assert.Equal(t, PlayerTie, game.MainBoard[8])
		assert.True(t, game.IsFinished())
		assert.Equal(t, PlayerTie, game.Winner)
	})

	t.Run("Rejects any move after the game finished", func(t *testing.T) {
		// Given: a finished game
		game := ongoingGame()
		game.Status = StatusFinished
		game.Winner = PlayerX

		// When: someone keeps clicking
		err := game.MakeTurn(PlayerO, 0, 0)

		// Then: the move is rejected wholesale
		require.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("Winner is set exactly when the game is over", func(t *testing.T) {
		// Given: a sequence of legal moves
		game := ongoingGame()
		moves := []Move{{4, 4}, {4, 0}, {0, 4}, {4, 8}, {8, 4}}
		mark := PlayerX

		// When/Then: the gameOver/winner invariant holds after every move
		for _, move := range moves {
			require.NoError(t, game.MakeTurn(mark, move.Board, move.Cell))
			assert.Equal(t, game.IsFinished(), game.Winner != "")
			mark = OpponentMark(mark)
		}
	})
}

func TestGame_IsLegalMove(t *testing.T) {
	t.Run("All legal moves target the active board while it is open", func(t *testing.T) {
		// Given: a game constrained to board 4
		game := ongoingGame()
		require.NoError(t, game.MakeTurn(PlayerX, 4, 4))
		require.Equal(t, 4, game.NextBoard)

		// When/Then: every board other than 4 is illegal
		for board := 0; board < 9; board++ {
			for cell := 0; cell < 9; cell++ {
				if game.IsLegalMove(board, cell) {
					assert.Equal(t, 4, board)
				}
			}
		}
	})

	t.Run("Out-of-range moves are never legal", func(t *testing.T) {
		game := ongoingGame()

		assert.False(t, game.IsLegalMove(-1, 0))
		assert.False(t, game.IsLegalMove(9, 0))
		assert.False(t, game.IsLegalMove(0, -1))
		assert.False(t, game.IsLegalMove(0, 9))
	})
}

func TestGame_Reset(t *testing.T) {
	t.Run("Reset returns the initial position with X to move", func(t *testing.T) {
		// Given: a game in progress
		game := ongoingGame()
		require.NoError(t, game.MakeTurn(PlayerX, 4, 4))
		require.NoError(t, game.MakeTurn(PlayerO, 4, 0))

		// When: resetting
		game.Reset()

		// Then: the board is empty, X moves first with free choice
		assert.Equal(t, [9][9]string{}, game.Boards)
		assert.Equal(t, [9]string{}, game.MainBoard)
		assert.Equal(t, PlayerX, game.Turn)
		assert.Equal(t, AnyBoard, game.NextBoard)
		assert.Equal(t, "", game.Winner)
		assert.True(t, game.IsOngoing())
		assert.Nil(t, game.LastMove)
	})
}

func TestGame_Clone(t *testing.T) {
	t.Run("Clone is independent of the original", func(t *testing.T) {
		// Given: a game with one move played
		game := ongoingGame()
		require.NoError(t, game.MakeTurn(PlayerX, 4, 4))

		// When: mutating a clone
		clone := game.Clone()
		require.NoError(t, clone.MakeTurn(PlayerO, 4, 0))

		// Then: the original is untouched
		assert.Equal(t, EmptyCell, game.Boards[4][0])
		assert.Equal(t, PlayerO, game.Turn)
	})
}
