package usecase

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/mnk-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/mnk-tictactoe/internal/entity"
	"github.com/rocketscienceinc/mnk-tictactoe/internal/pkg"
	"github.com/rocketscienceinc/mnk-tictactoe/internal/tictactoe"
	"github.com/rocketscienceinc/mnk-tictactoe/internal/transport/console"
)

const (
	greeting         = "Shall we play a game?\n"
	promptFormat     = "Player %d enter your move or 'undo'. For example: 0,0 for the top-left corner; 1,2 for the bottom-middle square.\n"
	misunderstood    = "I don't understand that move.\n"
	winMessageFormat = "Player %d wins!\n"
	drawMessage      = "Nobody wins.\n"
)

type PlayStatus int

const (
	InProgress PlayStatus = iota
	GameOver
)

func (that PlayStatus) String() string {
	switch that {
	case InProgress:
		return "in progress"
	case GameOver:
		return "game over"
	default:
		return fmt.Sprintf("PlayStatus(%d)", int(that))
	}
}

type userIORef interface {
	Lock() (console.UserIO, bool)
}

// GameManager runs games turn by turn against a terminal it does not own.
type GameManager struct {
	logger  *slog.Logger
	ruleSet entity.RuleSet
	userIO  userIORef
}

func NewGameManager(logger *slog.Logger, ruleSet entity.RuleSet, userIO userIORef) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		ruleSet: ruleSet,
		userIO:  userIO,
	}
}

// ShallWePlayAGame - greets the players and plays one game to the end.
func (that *GameManager) ShallWePlayAGame() error {
	log := that.logger.With("method", "ShallWePlayAGame", "game_id", pkg.GenerateGameID())

	state, err := tictactoe.NewGameState(that.ruleSet)
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	userIO, ok := that.userIO.Lock()
	if !ok {
		return fmt.Errorf("failed to greet players: %w", apperror.ErrIOUnavailable)
	}

	userIO.Print(greeting)

	log.Info("game started", "width", that.ruleSet.Width, "height", that.ruleSet.Height, "run_length", that.ruleSet.RunLength)

	if err = that.TakeTurns(state); err != nil {
		log.Error("game aborted", "turn", state.Turn(), "error", err)
		return fmt.Errorf("failed to finish game: %w", err)
	}

	if player, won := state.OverallWin(); won {
		log.Info("game finished", "winner", player, "turns", state.Turn())
	} else {
		log.Info("game finished in a draw", "turns", state.Turn())
	}

	return nil
}

// TakeTurns - plays turns until the game is over. Bad input only costs another loop.
func (that *GameManager) TakeTurns(state *tictactoe.GameState) error {
	for status := InProgress; status != GameOver; {
		var err error
		if status, err = that.TakeTurn(state); err != nil {
			return err
		}
	}

	return nil
}

// TakeTurn - prompts the current player, reads one command and applies it.
func (that *GameManager) TakeTurn(state *tictactoe.GameState) (PlayStatus, error) {
	log := that.logger.With("method", "TakeTurn", "turn", state.Turn())

	userIO, ok := that.userIO.Lock()
	if !ok {
		return GameOver, fmt.Errorf("failed to take turn: %w", apperror.ErrIOUnavailable)
	}

	userIO.Print(fmt.Sprintf(promptFormat, state.WhoseTurn()))

	text, err := userIO.Read()
	if err != nil {
		return GameOver, fmt.Errorf("failed to read move: %w", errors.Join(apperror.ErrIOUnavailable, err))
	}

	// the owner may have let go of the terminal while we were blocked in Read
	if userIO, ok = that.userIO.Lock(); !ok {
		return GameOver, fmt.Errorf("failed to apply move: %w", apperror.ErrIOUnavailable)
	}

	command, ok := state.ValidInput(text)
	if !ok {
		log.Debug("input rejected", "input", text)
		userIO.Print(misunderstood)

		return InProgress, nil
	}

	if command.IsUndo() {
		state.Undo()
		log.Debug("move undone", "player", state.WhoseTurn())
		userIO.Print(tictactoe.Render(state))

		return InProgress, nil
	}

	if err = state.AddMove(command.Move); err != nil {
		return GameOver, fmt.Errorf("failed to add move: %w", err)
	}

	log.Debug("move added", "player", 1-state.WhoseTurn(), "move", command.Move.String())
	userIO.Print(tictactoe.Render(state))

	if player, won := state.OverallWin(); won {
		userIO.Print(fmt.Sprintf(winMessageFormat, player))
		return GameOver, nil
	}

	if state.IsBoardFull() {
		userIO.Print(drawMessage)
		return GameOver, nil
	}

	return InProgress, nil
}
