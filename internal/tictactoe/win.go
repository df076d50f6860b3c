package tictactoe

import "github.com/rocketscienceinc/mnk-tictactoe/internal/entity"

// line is where a scan starts and which way it walks.
type line struct {
	x, y   int
	dx, dy int
}

// winner searches rows, then columns, then down-left diagonals, then down-right
// diagonals for ruleSet.RunLength consecutive marks of one player. The first run
// found decides the result.
func winner(ruleSet entity.RuleSet, turnForCell []int) (int, bool) {
	width, height := int(ruleSet.Width), int(ruleSet.Height)

	families := [][]line{
		rows(height),
		columns(width),
		swDiagonals(width, height),
		seDiagonals(width, height),
	}

	for _, family := range families {
		for _, l := range family {
			if player, ok := scanLine(l, width, height, ruleSet.RunLength, turnForCell); ok {
				return player, true
			}
		}
	}

	return entity.NoPlayer, false
}

// scanLine walks l until it leaves the board, counting same-player squares.
// Empty squares reset the run, so runs never bridge a gap.
func scanLine(l line, width, height, runLength int, turnForCell []int) (int, bool) {
	last, count := entity.NoPlayer, 0

	for x, y := l.x, l.y; x >= 0 && x < width && y >= 0 && y < height; x, y = x+l.dx, y+l.dy {
		player := occupant(turnForCell[y*width+x])
		if player == last {
			count++
		} else {
			last, count = player, 1
		}

		if last != entity.NoPlayer && count >= runLength {
			return last, true
		}
	}

	return entity.NoPlayer, false
}

func rows(height int) []line {
	lines := make([]line, 0, height)
	for y := 0; y < height; y++ {
		lines = append(lines, line{x: 0, y: y, dx: 1, dy: 0})
	}

	return lines
}

func columns(width int) []line {
	lines := make([]line, 0, width)
	for x := 0; x < width; x++ {
		lines = append(lines, line{x: x, y: 0, dx: 0, dy: 1})
	}

	return lines
}

// swDiagonals covers every line of constant x+y: one starting on each square of
// the top row, then one on each remaining square of the right-hand column.
// The short ones in the corners are included on purpose; they can hold a win
// whenever the run length is below the board size.
func swDiagonals(width, height int) []line {
	lines := make([]line, 0, width+height-1)
	for x := 0; x < width; x++ {
		lines = append(lines, line{x: x, y: 0, dx: -1, dy: 1})
	}

	for y := 1; y < height; y++ {
		lines = append(lines, line{x: width - 1, y: y, dx: -1, dy: 1})
	}

	return lines
}

// seDiagonals covers every line of constant x-y, right to left along the top row
// and then down the left-hand column.
func seDiagonals(width, height int) []line {
	lines := make([]line, 0, width+height-1)
	for x := width - 1; x >= 0; x-- {
		lines = append(lines, line{x: x, y: 0, dx: 1, dy: 1})
	}

	for y := 1; y < height; y++ {
		lines = append(lines, line{x: 0, y: y, dx: 1, dy: 1})
	}

	return lines
}
