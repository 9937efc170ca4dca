package storyboard

import (
	"errors"
	"fmt"

	"sbx/common"
)

// LoopCommand repeats nested commands count times. Nested times are relative
// to loop start.
type LoopCommand struct {
	start    int
	count    int
	commands []Command
}

func NewLoop(start, count int, commands ...Command) (*LoopCommand, error) {
	if count < 1 {
		return nil, fmt.Errorf("loop at %d: count must be positive, got %d", start, count)
	}
	if err := checkNested(common.CommandKindLoop, commands); err != nil {
		return nil, err
	}
	return &LoopCommand{start: start, count: count, commands: commands}, nil
}

func (l *LoopCommand) Kind() common.CommandKind { return common.CommandKindLoop }
func (l *LoopCommand) StartTime() int           { return l.start }
func (l *LoopCommand) EndTime() int             { return l.start + l.count*innerEnd(l.commands) }
func (l *LoopCommand) Easing() common.Easing    { return common.EasingNone }
func (l *LoopCommand) LoopCount() int           { return l.count }

// Commands returns nested commands, result must not be modified.
func (l *LoopCommand) Commands() []Command { return l.commands }

func (l *LoopCommand) Clip(start, end int) (Command, error) {
	return nil, fmt.Errorf("%w: %s to [%d, %d]", ErrNotClippable, l, start, end)
}

func (l *LoopCommand) String() string {
	return fmt.Sprintf("%s x%d [%d, %d] (%d nested)", common.CommandKindLoop, l.count, l.start, l.EndTime(), len(l.commands))
}

// TriggerCommand runs nested commands every time named game event fires inside
// of [start, end] window. Nested times are relative to the firing.
type TriggerCommand struct {
	name       string
	start, end int
	group      int
	commands   []Command
}

func NewTrigger(name string, start, end, group int, commands ...Command) (*TriggerCommand, error) {
	if len(name) == 0 {
		return nil, errors.New("trigger without name")
	}
	if err := checkTimes(common.CommandKindTrigger, start, end); err != nil {
		return nil, err
	}
	if err := checkNested(common.CommandKindTrigger, commands); err != nil {
		return nil, err
	}
	return &TriggerCommand{name: name, start: start, end: end, group: group, commands: commands}, nil
}

func (t *TriggerCommand) Kind() common.CommandKind { return common.CommandKindTrigger }
func (t *TriggerCommand) StartTime() int           { return t.start }
func (t *TriggerCommand) EndTime() int             { return t.end + innerEnd(t.commands) }
func (t *TriggerCommand) Easing() common.Easing    { return common.EasingNone }
func (t *TriggerCommand) Name() string             { return t.name }
func (t *TriggerCommand) Group() int               { return t.group }

// WindowEnd is the end of the period trigger listens for events.
func (t *TriggerCommand) WindowEnd() int { return t.end }

// Commands returns nested commands, result must not be modified.
func (t *TriggerCommand) Commands() []Command { return t.commands }

func (t *TriggerCommand) Clip(start, end int) (Command, error) {
	return nil, fmt.Errorf("%w: %s to [%d, %d]", ErrNotClippable, t, start, end)
}

func (t *TriggerCommand) String() string {
	return fmt.Sprintf("%s(%s, group %d) [%d, %d] (%d nested)", common.CommandKindTrigger, t.name, t.group, t.start, t.end, len(t.commands))
}

func innerEnd(cmds []Command) int {
	end := 0
	for _, c := range cmds {
		end = max(end, c.EndTime())
	}
	return end
}

// Renderer does not support groups inside of groups.
func checkNested(kind common.CommandKind, cmds []Command) error {
	for _, c := range cmds {
		if c == nil {
			return fmt.Errorf("%s: nil nested command", kind)
		}
		if c.Kind().IsGroup() {
			return fmt.Errorf("%s: nested %s is not allowed", kind, c.Kind())
		}
	}
	return nil
}
