package scene

import (
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"

	"sbx/common"
	"sbx/storyboard"
)

// values accepts either a single number or a sequence of numbers.
type values []float64

func (v *values) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var f float64
		if err := node.Decode(&f); err != nil {
			return err
		}
		*v = values{f}
	case yaml.SequenceNode:
		var fs []float64
		if err := node.Decode(&fs); err != nil {
			return err
		}
		*v = fs
	default:
		return fmt.Errorf("line %d: expected number or list of numbers", node.Line)
	}
	return nil
}

type commandNode struct {
	Type     common.CommandKind   `yaml:"type"`
	Easing   common.Easing        `yaml:"easing"`
	Start    int                  `yaml:"start"`
	End      *int                 `yaml:"end"`
	From     values               `yaml:"from"`
	To       values               `yaml:"to"`
	Flag     common.ParameterType `yaml:"flag"`
	Count    int                  `yaml:"count"`
	Name     string               `yaml:"name"`
	Group    int                  `yaml:"group"`
	Commands []commandNode        `yaml:"commands"`

	line int
}

var commandFields = []string{"type", "easing", "start", "end", "from", "to", "flag", "count", "name", "group", "commands"}

// UnmarshalYAML remembers source line and rejects unknown keys, custom
// unmarshalers do not inherit decoder strictness.
func (n *commandNode) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: command must be a mapping", node.Line)
	}
	typed := false
	for i := 0; i < len(node.Content); i += 2 {
		key := node.Content[i]
		if !slices.Contains(commandFields, key.Value) {
			return fmt.Errorf("line %d: field %s not found in command", key.Line, key.Value)
		}
		typed = typed || key.Value == "type"
	}
	if !typed {
		return fmt.Errorf("line %d: command type is required", node.Line)
	}
	type plain commandNode
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*n = commandNode(p)
	n.line = node.Line
	return nil
}

func (n *commandNode) build() (storyboard.Command, error) {
	c, err := n.command()
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", n.line, err)
	}
	return c, nil
}

func (n *commandNode) command() (storyboard.Command, error) {
	end := n.Start
	if n.End != nil {
		end = *n.End
	}
	last := n.To
	if len(last) == 0 {
		last = n.From
	}

	var (
		c   storyboard.Command
		err error
	)
	switch n.Type {
	case common.CommandKindMove, common.CommandKindScaleVec:
		var from, to storyboard.Vector2
		if from, to, err = pair(n.From, last, 2, func(v values) storyboard.Vector2 {
			return storyboard.Vector2{X: v[0], Y: v[1]}
		}); err != nil {
			return nil, err
		}
		var k *storyboard.Keyframe[storyboard.Vector2]
		if n.Type == common.CommandKindMove {
			k, err = storyboard.NewMove(n.Easing, n.Start, end, from, to)
		} else {
			k, err = storyboard.NewScaleVec(n.Easing, n.Start, end, from, to)
		}
		c = k
	case common.CommandKindMoveX, common.CommandKindMoveY, common.CommandKindRotate,
		common.CommandKindScale, common.CommandKindFade:
		var from, to storyboard.Scalar
		if from, to, err = pair(n.From, last, 1, func(v values) storyboard.Scalar {
			return storyboard.Scalar(v[0])
		}); err != nil {
			return nil, err
		}
		c, err = scalarCommand(n.Type, n.Easing, n.Start, end, from, to)
	case common.CommandKindColor:
		var from, to storyboard.Color
		if from, to, err = pair(n.From, last, 3, func(v values) storyboard.Color {
			return storyboard.ColorFromRGB(v[0], v[1], v[2])
		}); err != nil {
			return nil, err
		}
		c, err = storyboard.NewColor(n.Easing, n.Start, end, from, to)
	case common.CommandKindParameter:
		c, err = storyboard.NewParameter(n.Start, end, n.Flag)
	case common.CommandKindLoop:
		var nested []storyboard.Command
		if nested, err = buildAll(n.Commands); err != nil {
			return nil, err
		}
		c, err = storyboard.NewLoop(n.Start, n.Count, nested...)
	case common.CommandKindTrigger:
		var nested []storyboard.Command
		if nested, err = buildAll(n.Commands); err != nil {
			return nil, err
		}
		c, err = storyboard.NewTrigger(n.Name, n.Start, end, n.Group, nested...)
	default:
		return nil, fmt.Errorf("%w: %s", storyboard.ErrUnknownCommand, n.Type)
	}
	// constructors return typed nil on failure
	if err != nil {
		return nil, err
	}
	return c, nil
}

func scalarCommand(kind common.CommandKind, easing common.Easing, start, end int, from, to storyboard.Scalar) (storyboard.Command, error) {
	var (
		k   *storyboard.Keyframe[storyboard.Scalar]
		err error
	)
	switch kind {
	case common.CommandKindMoveX:
		k, err = storyboard.NewMoveX(easing, start, end, from, to)
	case common.CommandKindMoveY:
		k, err = storyboard.NewMoveY(easing, start, end, from, to)
	case common.CommandKindRotate:
		k, err = storyboard.NewRotate(easing, start, end, from, to)
	case common.CommandKindScale:
		k, err = storyboard.NewScale(easing, start, end, from, to)
	default:
		k, err = storyboard.NewFade(easing, start, end, from, to)
	}
	if err != nil {
		return nil, err
	}
	return k, nil
}

func pair[V any](from, to values, n int, conv func(values) V) (V, V, error) {
	var zero V
	if len(from) != n || len(to) != n {
		return zero, zero, fmt.Errorf("expected %d value(s) in from and to, got %d and %d", n, len(from), len(to))
	}
	return conv(from), conv(to), nil
}

func buildAll(nodes []commandNode) ([]storyboard.Command, error) {
	cmds := make([]storyboard.Command, 0, len(nodes))
	for _, n := range nodes {
		c, err := n.build()
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, c)
	}
	return cmds, nil
}
