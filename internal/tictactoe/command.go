package tictactoe

import (
	"strconv"
	"strings"

	"github.com/rocketscienceinc/mnk-tictactoe/internal/entity"
)

const (
	undoPrefix     = "u"
	moveDelimiter  = ","
	coordinateBits = 32
)

// ParseCommand - reads "u..." as an undo and "<x>,<y>" as a move.
// It does not look at the board; GameState.ValidInput does that.
func ParseCommand(text string) (entity.Command, bool) {
	if strings.HasPrefix(text, undoPrefix) {
		return entity.UndoCommand(), true
	}

	rawX, rawY, found := strings.Cut(text, moveDelimiter)
	if !found {
		return entity.Command{}, false
	}

	x, err := parseCoordinate(rawX)
	if err != nil {
		return entity.Command{}, false
	}

	y, err := parseCoordinate(rawY)
	if err != nil {
		return entity.Command{}, false
	}

	return entity.MoveCommand(entity.Move{X: x, Y: y}), true
}

// parseCoordinate accepts a plain base-10 number; ParseUint already refuses a sign.
func parseCoordinate(raw string) (uint32, error) {
	value, err := strconv.ParseUint(strings.TrimSpace(raw), 10, coordinateBits)
	if err != nil {
		return 0, err //nolint: wrapcheck // the caller only needs to know it failed
	}

	return uint32(value), nil
}
