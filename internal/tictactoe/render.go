package tictactoe

import (
	"strings"

	"github.com/rocketscienceinc/mnk-tictactoe/internal/entity"
)

// Render - draws the board one row per line, X for player 0, O for player 1 and a space for an empty square.
func Render(state *GameState) string {
	ruleSet := state.RuleSet()

	var board strings.Builder
	board.Grow((int(ruleSet.Width) + 1) * int(ruleSet.Height))

	for y := uint32(0); y < ruleSet.Height; y++ {
		for x := uint32(0); x < ruleSet.Width; x++ {
			board.WriteByte(entity.Mark(state.XorO(entity.Move{X: x, Y: y})))
		}
		board.WriteByte('\n')
	}

	return board.String()
}
