package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/mnk-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/mnk-tictactoe/internal/entity"
)

// EmptyCell is stored in a square nobody has played yet.
const EmptyCell = -1

// GameState keeps the board as the turn on which each square was taken, the way
// Go game records number their stones. Even turns belong to player 0 and odd turns
// to player 1, so one slice answers both "who is here" and "when was it played".
type GameState struct {
	ruleSet     entity.RuleSet
	turn        int
	turnForCell []int
}

func NewGameState(ruleSet entity.RuleSet) (*GameState, error) {
	if err := ruleSet.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create game state: %w", err)
	}

	turnForCell := make([]int, ruleSet.Cells())
	for i := range turnForCell {
		turnForCell[i] = EmptyCell
	}

	return &GameState{
		ruleSet:     ruleSet,
		turnForCell: turnForCell,
	}, nil
}

func (that *GameState) RuleSet() entity.RuleSet {
	return that.ruleSet
}

// Turn - returns how many moves are on the board.
func (that *GameState) Turn() int {
	return that.turn
}

func (that *GameState) WhoseTurn() int {
	return that.turn % 2
}

// IsEmptySquare - reports whether nobody has played at move. Squares off the board are never empty.
func (that *GameState) IsEmptySquare(move entity.Move) bool {
	if !that.ruleSet.IsInBounds(move) {
		return false
	}

	return that.cell(move) == EmptyCell
}

func (that *GameState) IsValid(move entity.Move) bool {
	return that.ruleSet.IsInBounds(move) && that.IsEmptySquare(move)
}

// AddMove - places the current player's mark at move.
// Callers are expected to check IsValid first; an invalid move is rejected and the state is left as it was.
func (that *GameState) AddMove(move entity.Move) error {
	if !that.ruleSet.IsInBounds(move) {
		return fmt.Errorf("%w: %s is off the %dx%d board", apperror.ErrInvalidMove, move, that.ruleSet.Width, that.ruleSet.Height)
	}

	if !that.IsEmptySquare(move) {
		return fmt.Errorf("%w: %s is already taken", apperror.ErrInvalidMove, move)
	}

	that.turnForCell[that.index(move)] = that.turn
	that.turn++

	return nil
}

// Undo - takes back the most recent move. Does nothing on an empty board.
func (that *GameState) Undo() {
	if that.turn == 0 {
		return
	}

	that.turn--

	// O(cells) rather than O(1), but there is no second record of the moves to keep in sync
	for i, turn := range that.turnForCell {
		if turn == that.turn {
			that.turnForCell[i] = EmptyCell
		}
	}
}

// XorO - returns entity.PlayerX, entity.PlayerO or entity.NoPlayer for the square at move.
func (that *GameState) XorO(move entity.Move) int {
	if !that.ruleSet.IsInBounds(move) {
		return entity.NoPlayer
	}

	return occupant(that.cell(move))
}

func (that *GameState) IsBoardFull() bool {
	return that.turn >= that.ruleSet.Cells()
}

// OverallWin - returns the player holding a complete run anywhere on the board.
// A false result does not tell a finished draw from a game in progress; see IsBoardFull.
func (that *GameState) OverallWin() (int, bool) {
	return winner(that.ruleSet, that.turnForCell)
}

// ValidInput - parses text and accepts it only if it is an undo or a move onto an empty square on the board.
func (that *GameState) ValidInput(text string) (entity.Command, bool) {
	command, ok := ParseCommand(text)
	if !ok {
		return entity.Command{}, false
	}

	if command.IsUndo() {
		return command, true
	}

	if !that.IsValid(command.Move) {
		return entity.Command{}, false
	}

	return command, true
}

// NthMove - returns the move played on turn n, counting from zero.
func (that *GameState) NthMove(n int) (entity.Move, bool) {
	if n < 0 || n >= that.turn {
		return entity.Move{}, false
	}

	for i, turn := range that.turnForCell {
		if turn == n {
			return that.moveAt(i), true
		}
	}

	return entity.Move{}, false
}

func (that *GameState) LastMove() (entity.Move, bool) {
	return that.NthMove(that.turn - 1)
}

func (that *GameState) cell(move entity.Move) int {
	return that.turnForCell[that.index(move)]
}

func (that *GameState) index(move entity.Move) int {
	return int(move.Y)*int(that.ruleSet.Width) + int(move.X)
}

func (that *GameState) moveAt(index int) entity.Move {
	width := int(that.ruleSet.Width)

	return entity.Move{X: uint32(index % width), Y: uint32(index / width)}
}

// occupant maps a stored turn to the player who made it.
func occupant(turn int) int {
	if turn == EmptyCell {
		return entity.NoPlayer
	}

	return turn % 2
}
