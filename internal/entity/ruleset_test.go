package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/mnk-tictactoe/internal/apperror"
)

func TestRuleSet_Validate(t *testing.T) {
	t.Run("Default rules are valid", func(t *testing.T) {
		ruleSet := DefaultRuleSet()

		require.NoError(t, ruleSet.Validate())
		assert.Equal(t, RuleSet{Width: 3, Height: 3, RunLength: 3}, ruleSet)
	})

	t.Run("Single square board is valid", func(t *testing.T) {
		assert.NoError(t, RuleSet{Width: 1, Height: 1, RunLength: 1}.Validate())
	})

	t.Run("Largest board is valid", func(t *testing.T) {
		ruleSet := RuleSet{Width: 4096, Height: 4096, RunLength: 5}

		require.NoError(t, ruleSet.Validate())
		assert.Equal(t, MaxCells, ruleSet.Cells())
	})

	for name, ruleSet := range map[string]RuleSet{
		"Zero width":        {Width: 0, Height: 3, RunLength: 3},
		"Zero height":       {Width: 3, Height: 0, RunLength: 3},
		"Zero run":          {Width: 3, Height: 3, RunLength: 0},
		"Negative run":      {Width: 3, Height: 3, RunLength: -2},
		"One cell too many": {Width: 4096, Height: 4097, RunLength: 5},
		"Widest row":        {Width: math.MaxUint32, Height: 1, RunLength: 3},
		"Huge board":        {Width: math.MaxUint32, Height: math.MaxUint32, RunLength: 3},
	} {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, ruleSet.Validate(), apperror.ErrInvalidRuleSet)
		})
	}
}

func TestRuleSet_IsInBounds(t *testing.T) {
	ruleSet := RuleSet{Width: 4, Height: 2, RunLength: 2}

	assert.True(t, ruleSet.IsInBounds(Move{X: 0, Y: 0}))
	assert.True(t, ruleSet.IsInBounds(Move{X: 3, Y: 1}))
	assert.False(t, ruleSet.IsInBounds(Move{X: 4, Y: 0}))
	assert.False(t, ruleSet.IsInBounds(Move{X: 0, Y: 2}))
	assert.Equal(t, 8, ruleSet.Cells())
}

func TestCommand(t *testing.T) {
	move := MoveCommand(Move{X: 1, Y: 2})
	undo := UndoCommand()

	assert.False(t, move.IsUndo())
	assert.True(t, undo.IsUndo())
	assert.NotEqual(t, move, undo)
	assert.Equal(t, "1,2", move.Move.String())
}

func TestMark(t *testing.T) {
	assert.Equal(t, byte('X'), Mark(PlayerX))
	assert.Equal(t, byte('O'), Mark(PlayerO))
	assert.Equal(t, byte(' '), Mark(NoPlayer))
}
