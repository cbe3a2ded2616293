package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const gameIDBytes = 8

type botService interface {
	MakeTurn(game *entity.Game) (int, error)
}

// GameManager drives human-versus-computer sessions. Each session owns its own
// board, so separate games never share state.
type GameManager struct {
	logger     *slog.Logger
	botService botService

	mu    sync.Mutex
	games map[string]*entity.Game
}

func NewGameManager(logger *slog.Logger, botService botService) *GameManager {
	return &GameManager{
		logger:     logger.With("component", "game_manager"),
		botService: botService,

		games: make(map[string]*entity.Game),
	}
}

// NewGame - starts a session for a human playing mark. When the computer holds X it moves first.
func (that *GameManager) NewGame(ctx context.Context, human entity.Cell) (*entity.Game, error) {
	gameID, err := generateGameID()
	if err != nil {
		return nil, fmt.Errorf("error generating game ID: %w", err)
	}

	game, err := entity.NewGame(gameID, human)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	if err = that.computerTurn(ctx, game); err != nil {
		return nil, fmt.Errorf("bot failed to make first turn: %w", err)
	}

	that.games[gameID] = game

	that.logger.InfoContext(ctx, "game created", "gameID", gameID, "human", human.String())

	return snapshot(game), nil
}

// HumanTurn - plays the human's cell and, if the game goes on, the computer's reply.
func (that *GameManager) HumanTurn(ctx context.Context, gameID string, cell int) (*entity.Game, error) {
	log := that.logger.With("method", "HumanTurn", "gameID", gameID)

	that.mu.Lock()
	defer that.mu.Unlock()

	game, err := that.getGameByID(gameID)
	if err != nil {
		return nil, err
	}

	if err = game.MakeTurn(game.Human, cell); err != nil {
		if errors.Is(err, apperror.ErrGameFinished) {
			return snapshot(game), apperror.ErrGameFinished
		}

		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	log.DebugContext(ctx, "human turn", "cell", cell, "board", game.Board.String())

	if err = that.computerTurn(ctx, game); err != nil {
		return nil, fmt.Errorf("bot failed to make turn: %w", err)
	}

	if game.IsFinished() {
		log.InfoContext(ctx, "game finished", "outcome", game.Outcome().String(), "board", game.Board.String())
	}

	return snapshot(game), nil
}

// Restart - clears the board of an existing session, keeping the marks.
func (that *GameManager) Restart(ctx context.Context, gameID string) (*entity.Game, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	game, err := that.getGameByID(gameID)
	if err != nil {
		return nil, err
	}

	game.Restart()

	if err = that.computerTurn(ctx, game); err != nil {
		return nil, fmt.Errorf("bot failed to make first turn: %w", err)
	}

	that.logger.InfoContext(ctx, "game restarted", "gameID", gameID)

	return snapshot(game), nil
}

func (that *GameManager) State(_ context.Context, gameID string) (*entity.Game, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	game, err := that.getGameByID(gameID)
	if err != nil {
		return nil, err
	}

	return snapshot(game), nil
}

func (that *GameManager) EndGame(ctx context.Context, gameID string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, err := that.getGameByID(gameID); err != nil {
		return err
	}

	delete(that.games, gameID)

	that.logger.InfoContext(ctx, "game deleted", "gameID", gameID)

	return nil
}

// computerTurn lets the bot move when the board says it is the computer's turn.
func (that *GameManager) computerTurn(ctx context.Context, game *entity.Game) error {
	if !game.IsComputerTurn() {
		return nil
	}

	cell, err := that.botService.MakeTurn(game)
	if err != nil {
		return fmt.Errorf("failed to make computer turn: %w", err)
	}

	that.logger.DebugContext(ctx, "computer turn", "gameID", game.ID, "cell", cell, "board", game.Board.String())

	return nil
}

func (that *GameManager) getGameByID(id string) (*entity.Game, error) {
	game, ok := that.games[id]
	if !ok {
		return nil, fmt.Errorf("%w: game id %s", apperror.ErrGameNotFound, id)
	}

	return game, nil
}

// snapshot copies the session so callers never hold the live board.
func snapshot(game *entity.Game) *entity.Game {
	gameCopy := *game
	return &gameCopy
}

func generateGameID() (string, error) {
	buf := make([]byte, gameIDBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	return hex.EncodeToString(buf), nil
}
