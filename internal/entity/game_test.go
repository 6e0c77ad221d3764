package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	// When: a new game is created
	game := NewGame()

	// Then: the board is empty and the human moves first
	expectedGame := &Game{
		Board: Board{EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell},
		Turn:  PlayerX,
	}

	require.Equal(t, expectedGame, game)
}

func TestGame_Reset(t *testing.T) {
	// Given: a game in the middle of a round with O to move
	game := &Game{
		Board: Board{PlayerX, PlayerO, PlayerX, EmptyCell, EmptyCell, PlayerO, EmptyCell, PlayerX, PlayerO},
		Turn:  PlayerO,
	}

	// When: the game is reset
	game.Reset()

	// Then: it matches a freshly created game
	require.Equal(t, NewGame(), game)
}

func TestPositionToIndex(t *testing.T) {
	t.Run("Maps positions 1..9 onto indexes 0..8", func(t *testing.T) {
		for position := MinPosition; position <= MaxPosition; position++ {
			// When: converting a valid position
			index, ok := PositionToIndex(position)

			// Then: the index is one less than the position
			require.True(t, ok)
			assert.Equal(t, position-1, index)
		}
	})

	t.Run("Rejects positions outside the board", func(t *testing.T) {
		for _, position := range []int{-1, 0, 10, 42} {
			// When: converting an out of range position
			_, ok := PositionToIndex(position)

			// Then: the conversion fails
			assert.False(t, ok, "position %d", position)
		}
	})
}

func TestBoard_Label(t *testing.T) {
	// Given: a board with two marks
	board := Board{PlayerX, EmptyCell, EmptyCell, EmptyCell, PlayerO, EmptyCell, EmptyCell, EmptyCell, EmptyCell}

	// Then: empty cells are labelled with their position, marked cells with the mark
	assert.Equal(t, PlayerX, board.Label(0))
	assert.Equal(t, "2", board.Label(1))
	assert.Equal(t, PlayerO, board.Label(4))
	assert.Equal(t, "9", board.Label(8))
}

func TestBoard_EmptyPositions(t *testing.T) {
	t.Run("Fresh board has every position", func(t *testing.T) {
		board := Board{}

		assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, board.EmptyPositions())
	})

	t.Run("Partially filled board", func(t *testing.T) {
		board := Board{PlayerX, EmptyCell, PlayerX, EmptyCell, PlayerO, EmptyCell, PlayerO, PlayerX, EmptyCell}

		assert.Equal(t, []int{2, 4, 6, 9}, board.EmptyPositions())
	})

	t.Run("Full board has none", func(t *testing.T) {
		board := Board{PlayerX, PlayerO, PlayerX, PlayerO, PlayerX, PlayerO, PlayerO, PlayerX, PlayerO}

		assert.Empty(t, board.EmptyPositions())
		assert.True(t, board.IsFull())
	})
}

func TestToggleMark(t *testing.T) {
	assert.Equal(t, PlayerO, ToggleMark(PlayerX))
	assert.Equal(t, PlayerX, ToggleMark(PlayerO))
}
