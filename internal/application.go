package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

var ErrEngineLoses = errors.New("engine lost a game")

// RunApp - audits the configured engine and lets it play the exhaustive one.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	computer, err := entity.ParseMark(conf.Engine.ComputerMark)
	if err != nil {
		return fmt.Errorf("invalid computer mark in config: %w", err)
	}

	engine := tictactoe.New(tictactoe.WithHorizon(conf.Engine.Horizon))
	log.Info("Engine ready", "horizon", engine.Horizon(), "computer", computer.String())

	if !conf.Audit.Skip {
		if err = runAudit(ctx, log, engine, computer); err != nil {
			return err
		}
	}

	if !conf.SelfPlay.Skip {
		runSelfPlay(log, engine)
	}

	return nil
}

func runAudit(ctx context.Context, log *slog.Logger, engine *tictactoe.Engine, computer entity.Cell) error {
	report, err := tictactoe.Audit(ctx, engine, computer)
	if err != nil {
		return fmt.Errorf("failed to audit engine: %w", err)
	}

	log.Info("Audit finished",
		"computer", report.Computer.String(),
		"horizon", report.Horizon,
		"positions", report.Positions,
		"games", report.Games,
		"losses", report.Losses,
		"disagreements", report.Disagreements,
		"moveMismatches", report.MoveMismatches,
	)

	if report.Losses > 0 {
		return fmt.Errorf("%w: %d of %d games", ErrEngineLoses, report.Losses, report.Games)
	}

	// missed wins are reported, not fatal
	if report.Disagreements > 0 {
		log.Warn("Horizon misses better moves", "disagreements", report.Disagreements, "positions", report.Positions)
	}

	return nil
}

func runSelfPlay(log *slog.Logger, engine *tictactoe.Engine) {
	reference := tictactoe.New(tictactoe.WithHorizon(tictactoe.FullHorizon))

	board, outcome := tictactoe.SelfPlay(engine, reference)
	log.Info("Self-play finished", "engine", entity.MarkX.String(), "board", board.String(), "outcome", outcome.String())

	board, outcome = tictactoe.SelfPlay(reference, engine)
	log.Info("Self-play finished", "engine", entity.MarkO.String(), "board", board.String(), "outcome", outcome.String())
}
