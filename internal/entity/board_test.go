package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) Board {
	t.Helper()

	board, err := ParseBoard(s)
	require.NoError(t, err)

	return board
}

func TestBoard_CheckWin(t *testing.T) {
	for _, mark := range []Cell{MarkX, MarkO} {
		for _, combo := range WinCombos {
			// Given: a board where only one line is filled with mark
			var board Board
			for _, i := range combo {
				board[i] = mark
			}

			// Then: mark wins, the other mark does not
			assert.True(t, board.CheckWin(mark), "line %v for %s", combo, mark)
			assert.False(t, board.CheckWin(mark.Opponent()), "line %v for %s", combo, mark.Opponent())
		}
	}

	t.Run("Empty is never a winner", func(t *testing.T) {
		// Given: an empty board
		var board Board

		// Then: an empty line does not count as a win
		assert.False(t, board.CheckWin(Empty))
	})

	t.Run("Two in a row is not a win", func(t *testing.T) {
		// Given: a board with an unfinished line
		board := mustParse(t, "XX_/OO_/___")

		// Then: nobody wins
		assert.False(t, board.CheckWin(MarkX))
		assert.False(t, board.CheckWin(MarkO))
	})
}

func TestBoard_CheckDraw(t *testing.T) {
	t.Run("Full board with no winner", func(t *testing.T) {
		// Given: a fully occupied board without a line
		board := mustParse(t, "XOX/XOO/OXX")

		// Then: it is a draw and nobody wins
		assert.True(t, board.CheckDraw())
		assert.False(t, board.CheckWin(MarkX))
		assert.False(t, board.CheckWin(MarkO))
		assert.Equal(t, Draw(), board.Outcome())
	})

	t.Run("Full board with a winner", func(t *testing.T) {
		// Given: a full board that also has a line of X
		board := mustParse(t, "XXX/OOX/XOO")

		// Then: the board is full but the win takes precedence in Outcome
		assert.True(t, board.CheckDraw())
		assert.Equal(t, Win(MarkX), board.Outcome())
	})

	t.Run("CheckDraw matches EmptyIndices", func(t *testing.T) {
		boards := []string{"___/___/___", "XOX/XOO/OXX", "XXX/OOX/XOO", "XO_/___/__O", "XOX/OXO/OX_"}

		for _, s := range boards {
			board := mustParse(t, s)

			// Then: a draw is reported exactly when no empty cells remain
			assert.Equal(t, len(board.EmptyIndices()) == 0, board.CheckDraw(), s)
		}
	})
}

func TestBoard_SetCell(t *testing.T) {
	t.Run("Sets an empty cell", func(t *testing.T) {
		// Given: an empty board
		var board Board

		// When: X is placed on the centre
		err := board.SetCell(4, MarkX)

		// Then: the cell holds X
		require.NoError(t, err)
		assert.Equal(t, MarkX, board[4])
	})

	t.Run("Error on occupied cell", func(t *testing.T) {
		// Given: a board with X on cell 0
		board := mustParse(t, "X__/___/___")

		// When: O tries the same cell
		err := board.SetCell(0, MarkO)

		// Then: ErrIllegalMove is returned and the cell is untouched
		require.ErrorIs(t, err, apperror.ErrIllegalMove)
		assert.Equal(t, MarkX, board[0])
	})

	t.Run("Error on out of range index", func(t *testing.T) {
		var board Board

		for _, index := range []int{-1, 9, 20} {
			// When: an index outside the board is used
			err := board.SetCell(index, MarkX)

			// Then: the move is illegal and out of range
			require.ErrorIs(t, err, apperror.ErrIllegalMove)
			require.ErrorIs(t, err, apperror.ErrOutOfRange)
		}

		assert.Equal(t, Board{}, board)
	})

	t.Run("Error on Empty mark", func(t *testing.T) {
		var board Board

		// When: Empty is written as a move
		err := board.SetCell(3, Empty)

		// Then: it is rejected
		require.ErrorIs(t, err, apperror.ErrIllegalMove)
		require.ErrorIs(t, err, apperror.ErrInvalidMark)
	})
}

func TestBoard_IsCellEmpty(t *testing.T) {
	board := mustParse(t, "X__/_O_/___")

	empty, err := board.IsCellEmpty(0)
	require.NoError(t, err)
	assert.False(t, empty)

	empty, err = board.IsCellEmpty(1)
	require.NoError(t, err)
	assert.True(t, empty)

	_, err = board.IsCellEmpty(9)
	require.ErrorIs(t, err, apperror.ErrOutOfRange)

	_, err = board.IsCellEmpty(-1)
	require.ErrorIs(t, err, apperror.ErrOutOfRange)
}

func TestBoard_ClearCell(t *testing.T) {
	// Given: a board with O in the centre
	board := mustParse(t, "___/_O_/___")

	// When: the centre is cleared
	require.NoError(t, board.ClearCell(4))

	// Then: the board is empty again
	assert.Equal(t, Board{}, board)

	// Then: clearing an empty cell is fine, out of range is not
	require.NoError(t, board.ClearCell(4))
	require.ErrorIs(t, board.ClearCell(9), apperror.ErrOutOfRange)
}

func TestBoard_EmptyIndices(t *testing.T) {
	// Given: a partially filled board
	board := mustParse(t, "X_O/_X_/O__")

	// Then: the empty cells come back ascending
	assert.Equal(t, []int{1, 3, 5, 7, 8}, board.EmptyIndices())

	// Then: a full board has none
	full := mustParse(t, "XOX/XOO/OXX")
	assert.Empty(t, full.EmptyIndices())
}

func TestBoard_QueriesAreIdempotent(t *testing.T) {
	board := mustParse(t, "XX_/OO_/___")
	before := board

	for i := 0; i < 3; i++ {
		assert.False(t, board.CheckWin(MarkX))
		assert.False(t, board.CheckWin(MarkO))
		assert.False(t, board.CheckDraw())
		assert.Equal(t, []int{2, 5, 6, 7, 8}, board.EmptyIndices())
	}

	assert.Equal(t, before, board)
}

func TestBoard_Reset(t *testing.T) {
	board := mustParse(t, "XOX/XOO/OXX")

	board.Reset()

	assert.Equal(t, Board{}, board)
	assert.Len(t, board.EmptyIndices(), BoardSize)
}

func TestParseBoard(t *testing.T) {
	t.Run("Round trip through String", func(t *testing.T) {
		board := mustParse(t, "x.o ... ..X")

		assert.Equal(t, "X_O/___/__X", board.String())
	})

	t.Run("Wrong number of cells", func(t *testing.T) {
		_, err := ParseBoard("XO_")
		require.ErrorIs(t, err, apperror.ErrOutOfRange)

		_, err = ParseBoard("XO_/___/___/_")
		require.ErrorIs(t, err, apperror.ErrOutOfRange)
	})

	t.Run("Unknown symbol", func(t *testing.T) {
		_, err := ParseBoard("XO?/___/___")
		require.ErrorIs(t, err, apperror.ErrInvalidMark)
	})
}

func TestParseMark(t *testing.T) {
	mark, err := ParseMark("x")
	require.NoError(t, err)
	assert.Equal(t, MarkX, mark)

	mark, err = ParseMark(" O ")
	require.NoError(t, err)
	assert.Equal(t, MarkO, mark)

	_, err = ParseMark("-")
	require.ErrorIs(t, err, apperror.ErrInvalidMark)
}
