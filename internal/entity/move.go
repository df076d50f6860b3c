package entity

import "fmt"

// Move is a board coordinate, x counts columns from the left and y rows from the top.
type Move struct {
	X uint32 `json:"x"`
	Y uint32 `json:"y"`
}

func (that Move) String() string {
	return fmt.Sprintf("%d,%d", that.X, that.Y)
}

type CommandKind int

const (
	CommandMove CommandKind = iota
	CommandUndo
)

// Command is what a player asked for on their turn: either a mark at Move or an undo.
// Move is meaningful only for CommandMove.
type Command struct {
	Kind CommandKind
	Move Move
}

func MoveCommand(move Move) Command {
	return Command{Kind: CommandMove, Move: move}
}

func UndoCommand() Command {
	return Command{Kind: CommandUndo}
}

func (that Command) IsUndo() bool {
	return that.Kind == CommandUndo
}
