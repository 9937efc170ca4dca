package storyboard

import (
	"errors"
	"fmt"

	"sbx/common"
)

var (
	// ErrNotClippable is returned when a command which must stay atomic is
	// asked to be cut at a fragment boundary.
	ErrNotClippable = errors.New("command cannot be clipped")
	// ErrUnknownCommand is returned for command kinds outside of supported set.
	ErrUnknownCommand = errors.New("unknown command kind")
	// ErrTimeRange is returned for commands ending before they start.
	ErrTimeRange = errors.New("command ends before it starts")
)

// Command is a timed instruction changing one sprite property (or a group of
// such instructions). Commands are immutable once constructed.
type Command interface {
	Kind() common.CommandKind
	StartTime() int
	EndTime() int
	Easing() common.Easing
	// Clip returns new command restricted to [start, end], which must be
	// inside of command own bounds.
	Clip(start, end int) (Command, error)
	String() string
}

// CommandCount returns number of lines renderer sees for the list, group
// headers included.
func CommandCount(cmds []Command) int {
	n := 0
	for _, c := range cmds {
		n++
		if g, ok := c.(interface{ Commands() []Command }); ok {
			n += CommandCount(g.Commands())
		}
	}
	return n
}

func checkTimes(kind common.CommandKind, start, end int) error {
	if end < start {
		return fmt.Errorf("%w: %s [%d, %d]", ErrTimeRange, kind, start, end)
	}
	return nil
}

func checkClip(c Command, start, end int) error {
	if start > end || start < c.StartTime() || end > c.EndTime() {
		return fmt.Errorf("clip window [%d, %d] is outside of %s", start, end, c)
	}
	return nil
}
