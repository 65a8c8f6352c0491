package paint

import "github.com/google/uuid"

// CommandType identifies a document command.
type CommandType uint8

const (
	CmdAppend    CommandType = iota // Append a shape to the active list
	CmdUpdateFar                    // Move a shape's far endpoint
	CmdUndo                         // Move the last active shape to removed
	CmdRedo                         // Move the last removed shape back
	CmdClear                        // Move every active shape to removed
	CmdReset                        // Discard both lists
)

var commandTypeNames = [...]string{
	CmdAppend:    "Append",
	CmdUpdateFar: "UpdateFar",
	CmdUndo:      "Undo",
	CmdRedo:      "Redo",
	CmdClear:     "Clear",
	CmdReset:     "Reset",
}

func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is a single mutation of a Document. Commands are plain values;
// Document.Apply is the only place that interprets them.
type Command interface {
	Type() CommandType
}

// Append adds Shape on top of the active list.
type Append struct {
	Shape Shape
}

// UpdateFar moves the far endpoint of the shape with the given ID.
// It never reorders either list.
type UpdateFar struct {
	ID  uuid.UUID
	Far Point
}

// Undo moves the most recent active shape to the removed list.
type Undo struct{}

// Redo moves the most recently removed shape back on top of the active list.
type Redo struct{}

// Clear moves all active shapes to the removed list, where Redo can get
// them back one at a time.
type Clear struct{}

// Reset discards every shape, active and removed alike.
type Reset struct{}

func (Append) Type() CommandType    { return CmdAppend }
func (UpdateFar) Type() CommandType { return CmdUpdateFar }
func (Undo) Type() CommandType      { return CmdUndo }
func (Redo) Type() CommandType      { return CmdRedo }
func (Clear) Type() CommandType     { return CmdClear }
func (Reset) Type() CommandType     { return CmdReset }
