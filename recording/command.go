package recording

import (
	"image/color"

	"github.com/pensool/pensool"
	"github.com/pensool/pensool/surface"
)

// CommandType identifies the type of a command.
type CommandType uint8

const (
	CmdClear      CommandType = iota // Clear the whole surface
	CmdFillPath                      // Fill a path
	CmdStrokePath                    // Stroke a path
	CmdDrawText                      // Draw text
)

var commandTypeNames = [...]string{
	CmdClear:      "Clear",
	CmdFillPath:   "FillPath",
	CmdStrokePath: "StrokePath",
	CmdDrawText:   "DrawText",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// PathRef is a reference to a path in the resource pool.
type PathRef uint32

// InvalidRef is the sentinel value for an invalid reference.
const InvalidRef = ^uint32(0)

// IsValid returns true if the reference points to a valid path.
func (r PathRef) IsValid() bool {
	return uint32(r) != InvalidRef
}

// ClearCommand fills the surface with a color.
type ClearCommand struct {
	Color color.Color
}

// Type implements Command.
func (ClearCommand) Type() CommandType { return CmdClear }

// FillPathCommand fills a device-space path.
type FillPathCommand struct {
	Path  PathRef
	Style surface.FillStyle
}

// Type implements Command.
func (FillPathCommand) Type() CommandType { return CmdFillPath }

// StrokePathCommand strokes a device-space path.
type StrokePathCommand struct {
	Path  PathRef
	Style surface.StrokeStyle
}

// Type implements Command.
func (StrokePathCommand) Type() CommandType { return CmdStrokePath }

// DrawTextCommand draws text with its baseline origin at At.
type DrawTextCommand struct {
	Text  string
	At    pensool.Vec2
	Style surface.TextStyle
}

// Type implements Command.
func (DrawTextCommand) Type() CommandType { return CmdDrawText }
