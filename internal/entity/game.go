package entity

const (
	PlayerX   = "X"
	PlayerO   = "O"
	PlayerTie = "-"

	EmptyCell = ""
)

// Board is the 3x3 grid in row-major order, cell indexes 0-8.
type Board [9]string

// Cell returns the mark at the given index. The index must be in range;
// callers validate it before the lookup.
func (that Board) Cell(index int) string {
	return that[index]
}

// AvailableCells returns the indexes of all empty cells.
func (that Board) AvailableCells() []int {
	cells := make([]int, 0, len(that))
	for i, cell := range that {
		if cell == EmptyCell {
			cells = append(cells, i)
		}
	}

	return cells
}

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// Game holds the mutable state of one session. The outcome is never cached
// here: it is derived from the board on every query, see the tictactoe package.
type Game struct {
	ID         string
	Board      Board
	PlayerTurn string
	Players    []*Player
}

func NewGame(id string, players ...*Player) *Game {
	return &Game{
		ID:         id,
		Board:      Board{},
		PlayerTurn: PlayerX,
		Players:    players,
	}
}

// ActivePlayer returns the player owning the current turn, or nil when no
// configured player carries that mark.
func (that *Game) ActivePlayer() *Player {
	for _, player := range that.Players {
		if player.Mark == that.PlayerTurn {
			return player
		}
	}

	return nil
}

func ToggleMark(currentMark string) string {
	if currentMark == PlayerX {
		return PlayerO
	}
	return PlayerX
}
