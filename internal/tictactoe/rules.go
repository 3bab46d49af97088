package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// WinCombos lists the 8 winning lines, scanned in fixed order:
// rows first, then columns, then diagonals.
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

// Result derives the outcome from the board alone: the winning mark,
// entity.PlayerTie on a full board with no line, or entity.EmptyCell while
// the game is still in progress.
func Result(board entity.Board) string {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != entity.EmptyCell && a == b && b == c {
			return a
		}
	}

	if board.IsFull() {
		return entity.PlayerTie
	}

	return entity.EmptyCell
}

func IsFinished(board entity.Board) bool {
	return Result(board) != entity.EmptyCell
}

// MakeTurn applies one move for the given mark. On success exactly one cell
// changes and the turn passes to the other mark; on any error the game is
// left untouched.
func MakeTurn(gameInstance *entity.Game, mark string, cell int) error {
	if IsFinished(gameInstance.Board) {
		return apperror.ErrGameFinished
	}

	if err := validateMove(gameInstance, mark, cell); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	gameInstance.Board[cell] = mark
	gameInstance.PlayerTurn = entity.ToggleMark(mark)

	return nil
}

// validateMove - checks if the move is valid.
func validateMove(gameInstance *entity.Game, mark string, cell int) error {
	if cell < 0 || cell >= len(gameInstance.Board) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if gameInstance.PlayerTurn != mark {
		return apperror.ErrNotYourTurn
	}

	if gameInstance.Board[cell] != entity.EmptyCell {
		return apperror.ErrCellOccupied
	}

	return nil
}
