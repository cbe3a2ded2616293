package tictactoe

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// AuditReport - how a depth-limited engine compares with the exhaustive search.
type AuditReport struct {
	Computer entity.Cell
	Horizon  int

	// Positions is the number of computer-to-move positions visited.
	Positions int
	// Games is the number of finished games reached.
	Games int
	// Losses counts finished games the human won.
	Losses int
	// Disagreements counts positions where the chosen move is worth less
	// than the best move under the exhaustive search.
	Disagreements int
	// MoveMismatches counts positions where the chosen cell differs from the
	// exhaustive engine's choice, whatever its value.
	MoveMismatches int
}

func (that AuditReport) Sound() bool {
	return that.Losses == 0 && that.Disagreements == 0
}

// Audit plays engine as computer against every possible human line starting
// from an empty board, X moving first.
func Audit(ctx context.Context, engine *Engine, computer entity.Cell) (AuditReport, error) {
	if !computer.IsMark() {
		return AuditReport{}, fmt.Errorf("%w: computer mark %d", apperror.ErrInvalidMark, computer)
	}

	a := &auditor{
		ctx:       ctx,
		engine:    engine,
		reference: New(WithHorizon(FullHorizon)),
		computer:  computer,
		human:     computer.Opponent(),
		report: AuditReport{
			Computer: computer,
			Horizon:  engine.Horizon(),
		},
	}

	var board entity.Board
	if err := a.walk(&board); err != nil {
		return a.report, fmt.Errorf("audit interrupted: %w", err)
	}

	return a.report, nil
}

type auditor struct {
	ctx       context.Context
	engine    *Engine
	reference *Engine
	computer  entity.Cell
	human     entity.Cell
	report    AuditReport
}

func (that *auditor) walk(board *entity.Board) error {
	if err := that.ctx.Err(); err != nil {
		return err
	}

	if outcome := board.Outcome(); outcome.IsTerminal() {
		that.report.Games++
		if outcome.Winner == that.human {
			that.report.Losses++
		}
		return nil
	}

	if board.NextMark() == that.computer {
		return that.computerTurn(board)
	}

	for _, cell := range board.EmptyIndices() {
		board[cell] = that.human
		err := that.walk(board)
		board[cell] = entity.Empty

		if err != nil {
			return err
		}
	}

	return nil
}

func (that *auditor) computerTurn(board *entity.Board) error {
	move, ok := that.engine.FindBestMove(board, that.computer, that.human)
	if !ok {
		return fmt.Errorf("%w: board %s", apperror.ErrNoAvailableMoves, board)
	}

	that.report.Positions++

	best, _ := that.reference.Score(board, that.computer, that.human)
	if that.valueOf(board, move) < best {
		that.report.Disagreements++
	}

	if referenceMove, _ := that.reference.FindBestMove(board, that.computer, that.human); referenceMove != move {
		that.report.MoveMismatches++
	}

	board[move] = that.computer
	err := that.walk(board)
	board[move] = entity.Empty

	return err
}

// valueOf is the exhaustive value of the computer playing move.
func (that *auditor) valueOf(board *entity.Board, move int) int {
	board[move] = that.computer
	defer func() { board[move] = entity.Empty }()

	if board.CheckWin(that.computer) {
		return scoreWin
	}

	if board.CheckDraw() {
		return scoreDraw
	}

	score, _ := that.reference.Score(board, that.human, that.computer)

	return -score
}

// SelfPlay lets two engines play a full game from an empty board.
func SelfPlay(engineX, engineO *Engine) (entity.Board, entity.Outcome) {
	var board entity.Board

	for !board.Outcome().IsTerminal() {
		mark := board.NextMark()

		engine := engineX
		if mark == entity.MarkO {
			engine = engineO
		}

		move, ok := engine.FindBestMove(&board, mark, mark.Opponent())
		if !ok {
			break
		}
		board[move] = mark
	}

	return board, board.Outcome()
}
