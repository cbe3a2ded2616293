package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// Cell is the content of a single board square.
type Cell uint8

const (
	Empty Cell = iota
	MarkX
	MarkO
)

const BoardSize = 9

// WinCombos - the 8 lines of a 3x3 board: rows, columns, diagonals.
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

func (that Cell) String() string {
	switch that {
	case MarkX:
		return "X"
	case MarkO:
		return "O"
	default:
		return ""
	}
}

// IsMark reports whether the cell holds X or O.
func (that Cell) IsMark() bool {
	return that == MarkX || that == MarkO
}

// Opponent returns the other mark. Empty has no opponent.
func (that Cell) Opponent() Cell {
	switch that {
	case MarkX:
		return MarkO
	case MarkO:
		return MarkX
	default:
		return Empty
	}
}

// ParseMark converts "X"/"O" (any case) into a mark.
func ParseMark(s string) (Cell, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "X":
		return MarkX, nil
	case "O":
		return MarkO, nil
	default:
		return Empty, fmt.Errorf("%w: %q", apperror.ErrInvalidMark, s)
	}
}

// Board - 9 cells in row-major order (row = index/3, col = index%3).
type Board [BoardSize]Cell

// ParseBoard reads a board from 9 symbols: X, O and '_' or '.' for empty.
// Slashes and spaces are ignored, so "XO_/_X_/__O" is accepted.
func ParseBoard(s string) (Board, error) {
	var board Board

	i := 0
	for _, r := range s {
		switch r {
		case '/', ' ':
			continue
		}

		if i >= BoardSize {
			return Board{}, fmt.Errorf("%w: board %q has more than %d cells", apperror.ErrOutOfRange, s, BoardSize)
		}

		switch r {
		case 'X', 'x':
			board[i] = MarkX
		case 'O', 'o':
			board[i] = MarkO
		case '_', '.':
			board[i] = Empty
		default:
			return Board{}, fmt.Errorf("%w: unexpected symbol %q", apperror.ErrInvalidMark, r)
		}
		i++
	}

	if i != BoardSize {
		return Board{}, fmt.Errorf("%w: board %q has %d cells", apperror.ErrOutOfRange, s, i)
	}

	return board, nil
}

func checkIndex(index int) error {
	if index < 0 || index >= BoardSize {
		return fmt.Errorf("%w: cell %d", apperror.ErrOutOfRange, index)
	}

	return nil
}

func (that *Board) IsCellEmpty(index int) (bool, error) {
	if err := checkIndex(index); err != nil {
		return false, err
	}

	return that[index] == Empty, nil
}

// SetCell - places mark on an empty cell.
func (that *Board) SetCell(index int, mark Cell) error {
	if err := checkIndex(index); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrIllegalMove, err)
	}

	if !mark.IsMark() {
		return fmt.Errorf("%w: %w: %d", apperror.ErrIllegalMove, apperror.ErrInvalidMark, mark)
	}

	if that[index] != Empty {
		return fmt.Errorf("%w: cell %d is occupied by %s", apperror.ErrIllegalMove, index, that[index])
	}

	that[index] = mark

	return nil
}

// ClearCell - empties a cell unconditionally. Only the search undoes moves this way.
func (that *Board) ClearCell(index int) error {
	if err := checkIndex(index); err != nil {
		return err
	}

	that[index] = Empty

	return nil
}

func (that *Board) CheckWin(mark Cell) bool {
	if !mark.IsMark() {
		return false
	}

	for _, combo := range WinCombos {
		if that[combo[0]] == mark && that[combo[1]] == mark && that[combo[2]] == mark {
			return true
		}
	}

	return false
}

// CheckDraw reports a full board. Callers check CheckWin for both marks first.
func (that *Board) CheckDraw() bool {
	for _, cell := range that {
		if cell == Empty {
			return false
		}
	}

	return true
}

func (that *Board) EmptyIndices() []int {
	indices := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell == Empty {
			indices = append(indices, i)
		}
	}

	return indices
}

func (that *Board) Count(mark Cell) int {
	count := 0
	for _, cell := range that {
		if cell == mark {
			count++
		}
	}

	return count
}

// NextMark - the mark to move under strict alternation, X first.
func (that *Board) NextMark() Cell {
	if that.Count(MarkX) == that.Count(MarkO) {
		return MarkX
	}
	return MarkO
}

func (that *Board) Reset() {
	*that = Board{}
}

// Outcome derives the game result; a win takes precedence over a full board.
func (that *Board) Outcome() Outcome {
	switch {
	case that.CheckWin(MarkX):
		return Win(MarkX)
	case that.CheckWin(MarkO):
		return Win(MarkO)
	case that.CheckDraw():
		return Draw()
	default:
		return InProgress()
	}
}

func (that Board) String() string {
	var sb strings.Builder

	for i, cell := range that {
		if i > 0 && i%3 == 0 {
			sb.WriteByte('/')
		}

		if cell == Empty {
			sb.WriteByte('_')
			continue
		}
		sb.WriteString(cell.String())
	}

	return sb.String()
}
