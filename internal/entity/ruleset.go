package entity

import (
	"fmt"

	"github.com/rocketscienceinc/mnk-tictactoe/internal/apperror"
)

const (
	DefaultBoardWidth  = 3
	DefaultBoardHeight = 3
	DefaultRunLength   = 3

	// MaxCells caps Width*Height so the board always fits in memory and in an int.
	MaxCells = 1 << 24
)

// RuleSet describes the board dimensions and how many marks in a row
// (row, column or diagonal) a player needs to win.
type RuleSet struct {
	Width     uint32 `json:"width"`
	Height    uint32 `json:"height"`
	RunLength int    `json:"run_length"`
}

func DefaultRuleSet() RuleSet {
	return RuleSet{
		Width:     DefaultBoardWidth,
		Height:    DefaultBoardHeight,
		RunLength: DefaultRunLength,
	}
}

// Validate - checks that the board has between one and MaxCells cells and that a run is at least one mark long.
func (that RuleSet) Validate() error {
	if that.Width < 1 || that.Height < 1 {
		return fmt.Errorf("%w: board %dx%d", apperror.ErrInvalidRuleSet, that.Width, that.Height)
	}

	if uint64(that.Width)*uint64(that.Height) > MaxCells {
		return fmt.Errorf("%w: board %dx%d has more than %d cells", apperror.ErrInvalidRuleSet, that.Width, that.Height, MaxCells)
	}

	if that.RunLength < 1 {
		return fmt.Errorf("%w: run length %d", apperror.ErrInvalidRuleSet, that.RunLength)
	}

	return nil
}

func (that RuleSet) IsInBounds(move Move) bool {
	return move.X < that.Width && move.Y < that.Height
}

// Cells returns the number of squares on the board. Only meaningful after Validate.
func (that RuleSet) Cells() int {
	return int(that.Width) * int(that.Height)
}
