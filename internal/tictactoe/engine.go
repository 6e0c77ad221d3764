package tictactoe

import (
	"fmt"
	"math/rand/v2"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// Engine owns the board and the turn marker of the current round and enforces the rules.
// It is not safe for concurrent use.
type Engine struct {
	game *entity.Game
	rng  *rand.Rand
}

type Option func(*Engine)

// WithRand - sets the source the automated opponent picks its moves from.
func WithRand(rng *rand.Rand) Option {
	return func(that *Engine) {
		that.rng = rng
	}
}

// WithSeed - makes automated moves reproducible. Zero keeps a randomly seeded source.
func WithSeed(seed uint64) Option {
	return func(that *Engine) {
		if seed != 0 {
			that.rng = rand.New(rand.NewPCG(seed, seed))
		}
	}
}

func NewEngine(opts ...Option) *Engine {
	engine := &Engine{
		game: entity.NewGame(),
		rng:  rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())), //nolint: gosec // it's ok
	}

	for _, opt := range opts {
		opt(engine)
	}

	return engine
}

// Board - returns a copy of the current board.
func (that *Engine) Board() entity.Board {
	return that.game.Board
}

func (that *Engine) Turn() string {
	return that.game.Turn
}

// CheckMove - explains why a move to position is not allowed, nil if it is.
func (that *Engine) CheckMove(position int) error {
	index, ok := entity.PositionToIndex(position)
	if !ok {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidCell, position)
	}

	if !that.game.Board.IsEmpty(index) {
		return fmt.Errorf("%w: %d", apperror.ErrCellOccupied, position)
	}

	return nil
}

// ValidateMove - reports whether position points to an empty cell.
func (that *Engine) ValidateMove(position int) bool {
	return that.CheckMove(position) == nil
}

// ApplyMove - marks position with the current turn marker. Turns are not switched here.
func (that *Engine) ApplyMove(position int) bool {
	if !that.ValidateMove(position) {
		return false
	}

	that.game.Board[position-1] = that.game.Turn

	return true
}

// EvaluateWinner - returns the mark of the first fully and uniformly marked line.
func (that *Engine) EvaluateWinner() (string, bool) {
	return checkWinner(that.game.Board)
}

// EvaluateDraw - reports whether no empty cells remain. It does not look for a winner.
func (that *Engine) EvaluateDraw() bool {
	return that.game.Board.IsFull()
}

// SelectAutomatedMove - marks a uniformly random empty cell with the bot mark and returns its position.
func (that *Engine) SelectAutomatedMove() (int, error) {
	availablePositions := that.game.Board.EmptyPositions()
	if len(availablePositions) == 0 {
		return 0, apperror.ErrNoAvailableMoves
	}

	chosenPosition := availablePositions[that.rng.IntN(len(availablePositions))]
	that.game.Board[chosenPosition-1] = entity.BotMark

	return chosenPosition, nil
}

// SwitchTurn - hands the move to the other mark and returns it.
func (that *Engine) SwitchTurn() string {
	that.game.Turn = entity.ToggleMark(that.game.Turn)

	return that.game.Turn
}

// ResetRound - starts a new round on the same engine.
func (that *Engine) ResetRound() {
	that.game.Reset()
}

func checkWinner(board entity.Board) (string, bool) {
	for _, combo := range entity.WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != entity.EmptyCell && a == b && b == c {
			return a, true
		}
	}

	return "", false
}
