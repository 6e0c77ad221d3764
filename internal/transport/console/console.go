package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const (
	rowDivider = "-+-+-"
	cellDivide = "|"

	colorX = "12"
	colorO = "9"

	// maxLineLength bounds a single answer, the rest of a longer line is discarded.
	maxLineLength = 1024
)

// Console is the text front end of the game: it draws the board and reads the operator's answers.
type Console struct {
	reader *bufio.Reader
	output *termenv.Output
}

// New - creates a console. With color disabled, or when out is not a terminal, output is plain text.
func New(in io.Reader, out io.Writer, color bool) *Console {
	opts := []termenv.OutputOption{}
	if !color {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}

	return &Console{
		reader: bufio.NewReaderSize(in, maxLineLength),
		output: termenv.NewOutput(out, opts...),
	}
}

// RenderBoard - prints the three rows of the board separated by dividers.
func (that *Console) RenderBoard(board entity.Board) {
	var builder strings.Builder

	for row := range 3 {
		if row > 0 {
			builder.WriteString(rowDivider + "\n")
		}

		cells := make([]string, 0, 3)
		for col := range 3 {
			cells = append(cells, that.styleCell(board, row*3+col))
		}

		builder.WriteString(strings.Join(cells, cellDivide) + "\n")
	}

	that.write(builder.String())
}

// Show - prints a single line of text.
func (that *Console) Show(message string) {
	that.write(message + "\n")
}

// ReadMove - prints prompt and reads a position. Text that is not a number yields apperror.ErrInvalidInput,
// a number too large for an int is returned as position 0 so it is refused as an illegal move.
func (that *Console) ReadMove(prompt string) (int, error) {
	line, err := that.readLine(prompt)
	if err != nil {
		return 0, err
	}

	position, err := strconv.Atoi(strings.TrimSpace(line))
	if errors.Is(err, strconv.ErrRange) {
		return 0, nil
	}

	if err != nil {
		return 0, fmt.Errorf("%w: %q", apperror.ErrInvalidInput, line)
	}

	return position, nil
}

// Confirm - asks a yes/no question until the answer is y or n, printing retry after every other answer.
func (that *Console) Confirm(prompt, retry string) (bool, error) {
	for {
		line, err := that.readLine(prompt)
		if errors.Is(err, apperror.ErrInvalidInput) {
			that.Show(retry)
			continue
		}

		if err != nil {
			return false, err
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y":
			return true, nil
		case "n":
			return false, nil
		default:
			that.Show(retry)
		}
	}
}

// readLine - prints prompt and reads one line. Lines longer than maxLineLength are consumed
// to their end and reported as apperror.ErrInvalidInput.
func (that *Console) readLine(prompt string) (string, error) {
	that.write(prompt)

	line, isPrefix, err := that.reader.ReadLine()
	if err != nil {
		return "", readError(err)
	}

	if !isPrefix {
		return string(line), nil
	}

	for isPrefix {
		_, isPrefix, err = that.reader.ReadLine()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return "", readError(err)
		}
	}

	return "", fmt.Errorf("%w: line longer than %d bytes", apperror.ErrInvalidInput, maxLineLength)
}

func readError(err error) error {
	if errors.Is(err, io.EOF) {
		return apperror.ErrInputClosed
	}

	return fmt.Errorf("failed read input: %w", err)
}

func (that *Console) styleCell(board entity.Board, index int) string {
	label := board.Label(index)
	if that.output.Profile == termenv.Ascii {
		return label
	}

	switch board[index] {
	case entity.PlayerX:
		return that.output.String(label).Foreground(that.output.Color(colorX)).Bold().String()
	case entity.PlayerO:
		return that.output.String(label).Foreground(that.output.Color(colorO)).Bold().String()
	default:
		return label
	}
}

// write - output errors are ignored, there is nowhere left to report them.
func (that *Console) write(text string) {
	_, _ = that.output.WriteString(text)
}
