package bot

import "github.com/ImperialKoi/Ultimate-TicTacToe/internal/entity"

const (
	terminalWin  = 1000
	terminalLoss = -1000

	mainLineWeight = 10
	cellLineWeight = 1
)

// scorePosition is the static evaluation used at depth-limited leaves.
// It never searches: a resolved game scores +-1000/0, otherwise every
// open line contributes its mark count, weighted 10 at main-board
// granularity and 1 at cell granularity inside unresolved sub-boards.
func scorePosition(game *entity.Game, mark string) int {
	opponent := entity.OpponentMark(mark)

	if game.IsFinished() {
		switch game.Winner {
		case mark:
			return terminalWin
		case opponent:
			return terminalLoss
		default:
			return 0
		}
	}

	score := scoreLines(game.MainBoard, mark, opponent) * mainLineWeight

	for board := range game.Boards {
		if game.MainBoard[board] != entity.EmptyCell {
			continue
		}
		score += scoreLines(game.Boards[board], mark, opponent) * cellLineWeight
	}

	return score
}

// scoreLines sums the potential of all 8 lines of one 9-slot board: a
// line holding only own marks and empties counts its marks positively,
// one holding only opponent marks counts negatively, anything mixed or
// blocked by a tied sub-board counts nothing.
func scoreLines(line [9]string, mark, opponent string) int {
	total := 0

	for _, combo := range entity.WinCombos {
		mine, theirs, blocked := 0, 0, false

		for _, idx := range combo {
			switch line[idx] {
			case mark:
				mine++
			case opponent:
				theirs++
			case entity.PlayerTie:
				blocked = true
			}
		}

		if blocked {
			continue
		}

		switch {
		case mine > 0 && theirs == 0:
			total += mine
		case theirs > 0 && mine == 0:
			total -= theirs
		}
	}

	return total
}
