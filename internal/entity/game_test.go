package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	// Given: a new game for a human X and a computer O
	game := NewGame("123", NewPlayer(PlayerX, KindHuman), NewPlayer(PlayerO, KindComputer))

	// Then: the game state should correspond to the expected initial state
	require.Equal(t, "123", game.ID)
	require.Equal(t, Board{}, game.Board)
	require.Equal(t, PlayerX, game.PlayerTurn)
	require.Len(t, game.Players, 2)
}

func TestBoard_AvailableCells(t *testing.T) {
	t.Run("Returns all 9 indexes for an empty board", func(t *testing.T) {
		// Given: an empty board
		board := Board{}

		// When: listing the available cells
		cells := board.AvailableCells()

		// Then: every index is available
		assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}, cells)
	})

	t.Run("Skips occupied cells", func(t *testing.T) {
		// Given: a board with three cells taken
		board := Board{PlayerX, EmptyCell, PlayerO, EmptyCell, PlayerX, EmptyCell, EmptyCell, EmptyCell, EmptyCell}

		// When: listing the available cells
		cells := board.AvailableCells()

		// Then: only the empty indexes remain
		assert.Equal(t, []int{1, 3, 5, 6, 7, 8}, cells)
	})

	t.Run("Returns an empty slice for a full board", func(t *testing.T) {
		// Given: a full board
		board := Board{PlayerX, PlayerO, PlayerX, PlayerO, PlayerX, PlayerO, PlayerO, PlayerX, PlayerO}

		// When: listing the available cells
		cells := board.AvailableCells()

		// Then: nothing is available
		assert.Empty(t, cells)
		assert.True(t, board.IsFull())
	})
}

func TestGame_ActivePlayer(t *testing.T) {
	t.Run("Resolves the player owning the current turn", func(t *testing.T) {
		// Given: a game with both players configured
		playerX := NewPlayer(PlayerX, KindHuman)
		playerO := NewPlayer(PlayerO, KindComputer)
		game := NewGame("123", playerX, playerO)

		// When: X is on turn
		active := game.ActivePlayer()

		// Then: the X player is active
		assert.Same(t, playerX, active)

		// When: the turn passes to O
		game.PlayerTurn = PlayerO

		// Then: the O player is active
		assert.Same(t, playerO, game.ActivePlayer())
	})

	t.Run("Returns nil when no player carries the mark", func(t *testing.T) {
		// Given: a game with no players
		game := NewGame("123")

		// When: resolving the active player
		active := game.ActivePlayer()

		// Then: there is none
		assert.Nil(t, active)
	})
}

func TestPlayer_IsBot(t *testing.T) {
	assert.True(t, NewPlayer(PlayerX, KindComputer).IsBot())
	assert.False(t, NewPlayer(PlayerO, KindHuman).IsBot())
}

func TestToggleMark(t *testing.T) {
	assert.Equal(t, PlayerO, ToggleMark(PlayerX))
	assert.Equal(t, PlayerX, ToggleMark(PlayerO))
}
