package entity

const (
	PlayerX = 0
	PlayerO = 1

	// NoPlayer marks an empty square.
	NoPlayer = -1
)

const (
	MarkX     = 'X'
	MarkO     = 'O'
	MarkEmpty = ' '
)

// Mark returns the character drawn for a player, or a blank for NoPlayer.
func Mark(player int) byte {
	switch player {
	case PlayerX:
		return MarkX
	case PlayerO:
		return MarkO
	default:
		return MarkEmpty
	}
}
