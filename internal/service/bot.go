package service

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type BotService interface {
	MakeTurn(game *entity.Game) (int, error)
}

type moveFinder interface {
	FindBestMove(board *entity.Board, computer, opponent entity.Cell) (int, bool)
}

type botService struct {
	moveFinder moveFinder
}

func NewBotService(moveFinder moveFinder) BotService {
	return &botService{
		moveFinder: moveFinder,
	}
}

// MakeTurn - asks the engine for the computer's cell and plays it.
func (that *botService) MakeTurn(game *entity.Game) (int, error) {
	if game.Board.CheckDraw() {
		return -1, apperror.ErrNoAvailableMoves
	}

	cell, ok := that.moveFinder.FindBestMove(&game.Board, game.Computer, game.Human)
	if !ok {
		return -1, fmt.Errorf("%w: board %s", apperror.ErrNoAvailableMoves, game.Board)
	}

	if err := game.MakeTurn(game.Computer, cell); err != nil {
		return -1, fmt.Errorf("bot failed to make turn: %w", err)
	}

	return cell, nil
}
