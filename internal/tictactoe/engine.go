package tictactoe

import (
	"math"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	// DefaultHorizon - the search returns a neutral score once this depth is reached.
	// It does not cover the full 9-ply tree; see Audit.
	DefaultHorizon = 5

	// FullHorizon never cuts the search short on a 3x3 board.
	FullHorizon = entity.BoardSize

	scoreWin  = 1
	scoreLoss = -1
	scoreDraw = 0
)

// Engine picks moves with minimax and alpha-beta pruning. It keeps no state
// between calls, so one Engine can serve any number of boards.
type Engine struct {
	horizon int
}

type Option func(*Engine)

func WithHorizon(horizon int) Option {
	return func(that *Engine) {
		that.horizon = horizon
	}
}

func New(opts ...Option) *Engine {
	engine := &Engine{horizon: DefaultHorizon}
	for _, opt := range opts {
		opt(engine)
	}

	if engine.horizon < 1 {
		engine.horizon = 1
	}

	return engine
}

var defaultEngine = New()

// FindBestMove asks the default engine for a move.
func FindBestMove(board *entity.Board, computer, opponent entity.Cell) (int, bool) {
	return defaultEngine.FindBestMove(board, computer, opponent)
}

func (that *Engine) Horizon() int {
	return that.horizon
}

// FindBestMove returns the cell computer should play. It reports false when the
// board has no empty cell or the marks are not a distinct X/O pair.
//
// Candidates are tried in ascending index order and the first one with the
// strictly greatest score is kept. The board is used as scratch space and is
// restored before returning.
func (that *Engine) FindBestMove(board *entity.Board, computer, opponent entity.Cell) (int, bool) {
	move, _, ok := that.search(board, computer, opponent)
	return move, ok
}

// Score is the value FindBestMove assigns to its chosen move: +1 forced win,
// -1 forced loss, 0 otherwise (within the horizon).
func (that *Engine) Score(board *entity.Board, computer, opponent entity.Cell) (int, bool) {
	_, score, ok := that.search(board, computer, opponent)
	return score, ok
}

func (that *Engine) search(board *entity.Board, computer, opponent entity.Cell) (int, int, bool) {
	if !validMarks(computer, opponent) {
		return -1, 0, false
	}

	s := searcher{board: board, maxMark: computer, minMark: opponent, horizon: that.horizon}

	bestMove := -1
	bestScore := math.MinInt
	alpha, beta := math.MinInt, math.MaxInt

	for _, cell := range board.EmptyIndices() {
		board[cell] = computer
		score := s.minimax(0, false, alpha, beta)
		board[cell] = entity.Empty

		if score > bestScore {
			bestScore = score
			bestMove = cell
		}

		alpha = max(alpha, bestScore)
	}

	if bestMove < 0 {
		return -1, 0, false
	}

	return bestMove, bestScore, true
}

func validMarks(computer, opponent entity.Cell) bool {
	return computer.IsMark() && opponent == computer.Opponent()
}

// searcher holds what stays fixed during one search.
type searcher struct {
	board   *entity.Board
	maxMark entity.Cell
	minMark entity.Cell
	horizon int
}

func (that *searcher) minimax(depth int, maximizing bool, alpha, beta int) int {
	switch {
	case that.board.CheckWin(that.maxMark):
		return scoreWin
	case that.board.CheckWin(that.minMark):
		return scoreLoss
	case that.board.CheckDraw() || depth >= that.horizon:
		return scoreDraw
	}

	board := that.board

	if maximizing {
		best := math.MinInt
		for i := range board {
			if board[i] != entity.Empty {
				continue
			}

			board[i] = that.maxMark
			score := that.minimax(depth+1, false, alpha, beta)
			board[i] = entity.Empty

			best = max(best, score)
			alpha = max(alpha, best)
			if beta <= alpha {
				break
			}
		}
		return best
	}

	best := math.MaxInt
	for i := range board {
		if board[i] != entity.Empty {
			continue
		}

		board[i] = that.minMark
		score := that.minimax(depth+1, true, alpha, beta)
		board[i] = entity.Empty

		best = min(best, score)
		beta = min(beta, best)
		if beta <= alpha {
			break
		}
	}
	return best
}
