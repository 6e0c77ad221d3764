package entity

import "strconv"

const (
	PlayerX   = "X"
	PlayerO   = "O"
	PlayerTie = "-"

	EmptyCell = ""
)

const (
	// HumanMark is played by the operator and always opens a round.
	HumanMark = PlayerX
	// BotMark is played by the automated opponent.
	BotMark = PlayerO
)

const (
	BoardSize   = 9
	MinPosition = 1
	MaxPosition = BoardSize
)

var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board holds the 9 cells in row-major order, index 0 is position 1.
type Board [BoardSize]string

// Game is the state of one round: the board and whose move is next.
type Game struct {
	Board Board  `json:"board"`
	Turn  string `json:"player_turn"`
}

func NewGame() *Game {
	return &Game{
		Board: Board{},
		Turn:  HumanMark,
	}
}

// Reset - brings the game back to an empty board with the human to move.
func (that *Game) Reset() {
	that.Board = Board{}
	that.Turn = HumanMark
}

// PositionToIndex - converts a 1-based position into a board index.
func PositionToIndex(position int) (int, bool) {
	if position < MinPosition || position > MaxPosition {
		return 0, false
	}

	return position - 1, true
}

// IsEmpty - reports whether the cell at index is not marked yet.
func (that Board) IsEmpty(index int) bool {
	return that[index] == EmptyCell
}

// Label - returns what is displayed for a cell: its position number while empty, the mark otherwise.
func (that Board) Label(index int) string {
	if that.IsEmpty(index) {
		return strconv.Itoa(index + 1)
	}

	return that[index]
}

// EmptyPositions - returns the 1-based positions of all empty cells in ascending order.
func (that Board) EmptyPositions() []int {
	positions := make([]int, 0, len(that))
	for i := range that {
		if that.IsEmpty(i) {
			positions = append(positions, i+1)
		}
	}

	return positions
}

func (that Board) IsFull() bool {
	for i := range that {
		if that.IsEmpty(i) {
			return false
		}
	}

	return true
}

func ToggleMark(currentMark string) string {
	if currentMark == PlayerX {
		return PlayerO
	}
	return PlayerX
}
