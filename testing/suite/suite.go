package suite

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/service"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

const maxWaitDuration = 120 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Engine      *tictactoe.Engine
	GameManager *usecase.GameManager
}

// New wires a GameManager to the default engine, the same way the application does.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	engine := tictactoe.New()
	gameManager := usecase.NewGameManager(logger, service.NewBotService(engine))

	return ctx, &Suite{
		T:      t,
		Logger: logger,

		Engine:      engine,
		GameManager: gameManager,
	}
}
