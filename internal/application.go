package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/mnk-tictactoe/internal/config"
	"github.com/rocketscienceinc/mnk-tictactoe/internal/transport/console"
	"github.com/rocketscienceinc/mnk-tictactoe/internal/usecase"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return Run(ctx, logger, conf, os.Stdin, os.Stdout)
}

// Run - plays one game on in/out until it is over or ctx is canceled.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	userIO := console.NewRef(console.NewStd(logger, in, out))
	defer userIO.Release()

	gameManager := usecase.NewGameManager(logger, conf.RuleSet(), userIO)

	// the game blocks on reads we cannot interrupt, so it gets its own goroutine.
	// On cancel it is abandoned and dies with the process; a read that returns
	// after Release finds the Ref empty and the turn prints nothing more.
	gameErrCh := make(chan error, 1)
	go func() {
		gameErrCh <- gameManager.ShallWePlayAGame()
	}()

	select {
	case err := <-gameErrCh:
		if err != nil {
			return fmt.Errorf("game error: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
