package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// Game is a single human-versus-computer session. It owns its board; whose turn
// it is comes from the marks on the board, X always moving first.
type Game struct {
	ID       string `json:"id"`
	Board    Board  `json:"board"`
	Human    Cell   `json:"human"`
	Computer Cell   `json:"computer"`
}

func NewGame(id string, human Cell) (*Game, error) {
	if !human.IsMark() {
		return nil, fmt.Errorf("%w: human mark %d", apperror.ErrInvalidMark, human)
	}

	return &Game{
		ID:       id,
		Human:    human,
		Computer: human.Opponent(),
	}, nil
}

func (that *Game) NextMark() Cell {
	return that.Board.NextMark()
}

func (that *Game) Outcome() Outcome {
	return that.Board.Outcome()
}

func (that *Game) IsFinished() bool {
	return that.Outcome().IsTerminal()
}

func (that *Game) IsComputerTurn() bool {
	return !that.IsFinished() && that.NextMark() == that.Computer
}

func (that *Game) MakeTurn(mark Cell, cell int) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if that.NextMark() != mark {
		return fmt.Errorf("%w: expected %s, got %s", apperror.ErrNotYourTurn, that.NextMark(), mark)
	}

	if err := that.Board.SetCell(cell, mark); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	return nil
}

func (that *Game) Restart() {
	that.Board.Reset()
}
