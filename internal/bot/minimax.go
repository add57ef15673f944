package bot

import (
	"math"

	"github.com/ImperialKoi/Ultimate-TicTacToe/internal/entity"
)

// Search depths per difficulty level.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"

	depthEasy   = 2
	depthMedium = 4
	depthHard   = 6

	terminalBase = 100
)

// DepthForDifficulty maps a difficulty label to a search depth,
// defaulting to medium for unknown labels.
func DepthForDifficulty(difficulty string) int {
	switch difficulty {
	case DifficultyEasy:
		return depthEasy
	case DifficultyHard:
		return depthHard
	default:
		return depthMedium
	}
}

// BestMove runs a depth-limited minimax with alpha-beta pruning for mark
// and returns the chosen move with its score. Among equally scored moves
// the first one in generation order (row-major board, row-major cell)
// wins. The caller's game is never mutated. A position with no candidate
// moves returns (-1,-1) and score 0.
func BestMove(game *entity.Game, mark string, maxDepth int) (entity.Move, int) {
	moves := candidateMoves(game)
	if len(moves) == 0 {
		return entity.Move{Board: -1, Cell: -1}, 0
	}

	bestMove := moves[0]
	bestScore := math.MinInt
	alpha, beta := math.MinInt, math.MaxInt

	for _, move := range moves {
		child := simulate(game, mark, move)
		score := minimax(child, mark, maxDepth-1, alpha, beta, false)

		if score > bestScore {
			bestScore = score
			bestMove = move
		}

		alpha = max(alpha, bestScore)
	}

	return bestMove, bestScore
}

// minimax scores a node for the root mover mark. maximizing tracks whose
// simulated ply it is; alpha and beta are the usual cutoff bounds.
func minimax(game *entity.Game, mark string, depth int, alpha, beta int, maximizing bool) int {
	if game.IsFinished() {
		switch game.Winner {
		case mark:
			return terminalBase + depth
		case entity.OpponentMark(mark):
			return -(terminalBase + depth)
		default:
			return 0
		}
	}

	if depth == 0 {
		return scorePosition(game, mark)
	}

	moves := candidateMoves(game)
	if len(moves) == 0 {
		return 0
	}

	if maximizing {
		best := math.MinInt
		for _, move := range moves {
			child := simulate(game, mark, move)
			best = max(best, minimax(child, mark, depth-1, alpha, beta, false))
			alpha = max(alpha, best)
			if beta <= alpha {
				break
			}
		}
		return best
	}

	best := math.MaxInt
	opponent := entity.OpponentMark(mark)
	for _, move := range moves {
		child := simulate(game, opponent, move)
		best = min(best, minimax(child, mark, depth-1, alpha, beta, true))
		beta = min(beta, best)
		if beta <= alpha {
			break
		}
	}
	return best
}

// candidateMoves lists legal placements from board availability alone:
// the inherited active board if it is still open, otherwise every empty
// cell of every unresolved sub-board. The stored turn is ignored because
// the simulated side to move alternates independently of it.
func candidateMoves(game *entity.Game) []entity.Move {
	if game.NextBoard != entity.AnyBoard && game.MainBoard[game.NextBoard] == entity.EmptyCell {
		return emptyCells(game, game.NextBoard, nil)
	}

	var moves []entity.Move
	for board := range game.Boards {
		if game.MainBoard[board] != entity.EmptyCell {
			continue
		}
		moves = emptyCells(game, board, moves)
	}
	return moves
}

func emptyCells(game *entity.Game, board int, moves []entity.Move) []entity.Move {
	for cell, value := range game.Boards[board] {
		if value == entity.EmptyCell {
			moves = append(moves, entity.Move{Board: board, Cell: cell})
		}
	}
	return moves
}

// simulate plays move for mark on an independent copy, reusing the real
// state machine so search and gameplay can never disagree on the rules.
func simulate(game *entity.Game, mark string, move entity.Move) *entity.Game {
	child := game.Clone()
	child.Turn = mark
	// Legality is guaranteed by candidateMoves.
	_ = child.MakeTurn(mark, move.Board, move.Cell)
	return child
}
