package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/metrics"
)

const (
	promptMove      = "Enter your move (1-9): "
	promptPlayAgain = "Do you want to play again? (y/n): "

	msgInvalidInput   = "Invalid input. Please enter a number between 1 and 9."
	msgInvalidMove    = "Invalid move. Try again."
	msgInvalidConfirm = "Invalid input. Please enter 'y' or 'n'"
	msgBotMove        = "Computer chose %d"
	msgWinner         = "Player %s wins!"
	msgDraw           = "It's a draw!"
	msgScore          = "Final score: X %d, O %d, draws %d"
	msgFarewell       = "Thanks for playing!"
)

var ErrLogicFault = errors.New("internal logic fault")

type engine interface {
	Board() entity.Board
	Turn() string

	CheckMove(position int) error
	ApplyMove(position int) bool
	SelectAutomatedMove() (int, error)

	EvaluateWinner() (string, bool)
	EvaluateDraw() bool

	SwitchTurn() string
	ResetRound()
}

type console interface {
	RenderBoard(board entity.Board)
	Show(message string)

	ReadMove(prompt string) (int, error)
	Confirm(prompt, retry string) (bool, error)
}

type recorder interface {
	RecordRound(outcome string)
	RecordMove(mark string)
	RecordRejectedMove(reason string)
}

// Score - rounds won by each mark and rounds drawn during one session.
type Score struct {
	XWins int
	OWins int
	Draws int
}

func (that *Score) Record(outcome string) {
	switch outcome {
	case entity.PlayerX:
		that.XWins++
	case entity.PlayerO:
		that.OWins++
	case entity.PlayerTie:
		that.Draws++
	}
}

// RoundManager runs the round protocol between the engine and the console.
type RoundManager struct {
	logger   *slog.Logger
	engine   engine
	console  console
	recorder recorder

	score Score
}

func NewRoundManager(logger *slog.Logger, engine engine, console console, recorder recorder) *RoundManager {
	return &RoundManager{
		logger: logger.With("component", "round_manager"),

		engine:   engine,
		console:  console,
		recorder: recorder,
	}
}

func (that *RoundManager) Score() Score {
	return that.score
}

// PlaySession - plays rounds until the operator declines another one or input ends.
func (that *RoundManager) PlaySession(ctx context.Context) error {
	log := that.logger.With("method", "PlaySession")

	for {
		outcome, err := that.PlayRound(ctx)
		if errors.Is(err, apperror.ErrInputClosed) {
			log.Info("input closed, leaving session", "score", that.score)
			return nil
		}

		if errors.Is(err, ErrLogicFault) {
			log.Error("round aborted", "error", err)
		}

		if err != nil {
			return fmt.Errorf("failed play round: %w", err)
		}

		that.score.Record(outcome)

		again, err := that.console.Confirm(promptPlayAgain, msgInvalidConfirm)
		if errors.Is(err, apperror.ErrInputClosed) {
			log.Info("input closed, leaving session", "score", that.score)
			return nil
		}

		if err != nil {
			return fmt.Errorf("failed ask to play again: %w", err)
		}

		if !again {
			that.console.Show(fmt.Sprintf(msgScore, that.score.XWins, that.score.OWins, that.score.Draws))
			that.console.Show(msgFarewell)

			return nil
		}
	}
}

// PlayRound - resets the engine and plays one round, returning the winning mark or entity.PlayerTie.
func (that *RoundManager) PlayRound(ctx context.Context) (string, error) {
	log := that.logger.With("method", "PlayRound", "round_id", uuid.NewString())

	that.engine.ResetRound()
	log.Debug("round started")

	for {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("round interrupted: %w", err)
		}

		that.console.RenderBoard(that.engine.Board())

		mark := that.engine.Turn()
		if mark == entity.HumanMark {
			moved, err := that.humanTurn(log)
			if err != nil {
				return "", err
			}

			// invalid attempts are free, the same player is asked again
			if !moved {
				continue
			}
		} else if err := that.botTurn(log); err != nil {
			return "", err
		}

		that.recorder.RecordMove(mark)

		if winner, ok := that.engine.EvaluateWinner(); ok {
			that.console.RenderBoard(that.engine.Board())
			that.console.Show(fmt.Sprintf(msgWinner, winner))
			that.finish(log, winner)

			return winner, nil
		}

		if that.engine.EvaluateDraw() {
			that.console.RenderBoard(that.engine.Board())
			that.console.Show(msgDraw)
			that.finish(log, entity.PlayerTie)

			return entity.PlayerTie, nil
		}

		that.engine.SwitchTurn()
	}
}

func (that *RoundManager) humanTurn(log *slog.Logger) (bool, error) {
	position, err := that.console.ReadMove(promptMove)
	if errors.Is(err, apperror.ErrInvalidInput) {
		log.Debug("rejected human input", "error", err)
		that.recorder.RecordRejectedMove(metrics.RejectInvalidInput)
		that.console.Show(msgInvalidInput)

		return false, nil
	}

	if err != nil {
		return false, fmt.Errorf("failed read move: %w", err)
	}

	if err = that.engine.CheckMove(position); err != nil {
		log.Debug("rejected human move", "position", position, "error", err)
		that.recorder.RecordRejectedMove(rejectReason(err))
		that.console.Show(msgInvalidMove)

		return false, nil
	}

	if !that.engine.ApplyMove(position) {
		return false, fmt.Errorf("%w: checked move %d was not applied", ErrLogicFault, position)
	}

	log.Debug("human moved", "position", position)

	return true, nil
}

func (that *RoundManager) botTurn(log *slog.Logger) error {
	position, err := that.engine.SelectAutomatedMove()
	if err != nil {
		return fmt.Errorf("%w: bot asked to move in a live round: %w", ErrLogicFault, err)
	}

	log.Debug("bot moved", "position", position)
	that.console.Show(fmt.Sprintf(msgBotMove, position))

	return nil
}

func (that *RoundManager) finish(log *slog.Logger, outcome string) {
	that.recorder.RecordRound(outcome)
	log.Info("round finished", "outcome", outcome)
}

func rejectReason(err error) string {
	if errors.Is(err, apperror.ErrCellOccupied) {
		return metrics.RejectCellOccupied
	}

	return metrics.RejectInvalidCell
}
