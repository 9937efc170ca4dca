package storyboard

import (
	"fmt"
	"slices"

	"sbx/common"
)

// DefaultMaxCommandCount is renderer command ceiling per object.
const DefaultMaxCommandCount = 300

// Object is anything placed on a storyboard layer: Sprite or Animation.
type Object interface {
	Base() *Sprite
}

// Sprite is a textured storyboard object together with its full command
// list. Use NewSprite, zero value is not usable.
type Sprite struct {
	TexturePath     string
	Layer           common.Layer
	Origin          common.Origin
	InitialPosition Vector2
	// MaxCommandCount overrides configured ceiling when positive.
	MaxCommandCount int

	commands []Command

	move     *Timeline[Vector2]
	moveX    *Timeline[Scalar]
	moveY    *Timeline[Scalar]
	rotate   *Timeline[Scalar]
	scale    *Timeline[Scalar]
	scaleVec *Timeline[Vector2]
	fade     *Timeline[Scalar]
	color    *Timeline[Color]
}

func NewSprite(path string, layer common.Layer, origin common.Origin, pos Vector2) *Sprite {
	return &Sprite{
		TexturePath:     path,
		Layer:           layer,
		Origin:          origin,
		InitialPosition: pos,
		move:            newTimeline[Vector2](common.CommandKindMove),
		moveX:           newTimeline[Scalar](common.CommandKindMoveX),
		moveY:           newTimeline[Scalar](common.CommandKindMoveY),
		rotate:          newTimeline[Scalar](common.CommandKindRotate),
		scale:           newTimeline[Scalar](common.CommandKindScale),
		scaleVec:        newTimeline[Vector2](common.CommandKindScaleVec),
		fade:            newTimeline[Scalar](common.CommandKindFade),
		color:           newTimeline[Color](common.CommandKindColor),
	}
}

func (s *Sprite) Base() *Sprite { return s }

// AddCommand appends command to the sprite routing keyframed commands to their
// property timeline.
func (s *Sprite) AddCommand(c Command) error {
	if c == nil {
		return fmt.Errorf("%s: nil command", s.TexturePath)
	}
	ok := true
	switch c.Kind() {
	case common.CommandKindMove:
		ok = route(s.move, c)
	case common.CommandKindMoveX:
		ok = route(s.moveX, c)
	case common.CommandKindMoveY:
		ok = route(s.moveY, c)
	case common.CommandKindRotate:
		ok = route(s.rotate, c)
	case common.CommandKindScale:
		ok = route(s.scale, c)
	case common.CommandKindScaleVec:
		ok = route(s.scaleVec, c)
	case common.CommandKindFade:
		ok = route(s.fade, c)
	case common.CommandKindColor:
		ok = route(s.color, c)
	case common.CommandKindParameter:
		_, ok = c.(*ParameterCommand)
	case common.CommandKindLoop, common.CommandKindTrigger:
	default:
		return fmt.Errorf("%s: %w: %s", s.TexturePath, ErrUnknownCommand, c.Kind())
	}
	if !ok {
		return fmt.Errorf("%s: %s has unexpected type %T", s.TexturePath, c.Kind(), c)
	}
	s.commands = append(s.commands, c)
	return nil
}

func route[V Value[V]](tl *Timeline[V], c Command) bool {
	k, ok := c.(*Keyframe[V])
	if ok {
		tl.add(k)
	}
	return ok
}

// Commands returns top level commands in insertion order, result must not be
// modified.
func (s *Sprite) Commands() []Command { return s.commands }

// CommandCount counts all command lines including nested ones.
func (s *Sprite) CommandCount() int { return CommandCount(s.commands) }

func (s *Sprite) StartTime() int {
	start := 0
	for i, c := range s.commands {
		if i == 0 || c.StartTime() < start {
			start = c.StartTime()
		}
	}
	return start
}

func (s *Sprite) EndTime() int {
	end := 0
	for i, c := range s.commands {
		if i == 0 || c.EndTime() > end {
			end = c.EndTime()
		}
	}
	return end
}

// Timelines returns property timelines in property order.
func (s *Sprite) Timelines() []PropertyTimeline {
	return []PropertyTimeline{s.move, s.moveX, s.moveY, s.rotate, s.scale, s.scaleVec, s.fade, s.color}
}

// Timeline returns timeline for keyframed kind or nil.
func (s *Sprite) Timeline(kind common.CommandKind) PropertyTimeline {
	for _, tl := range s.Timelines() {
		if tl.Kind() == kind {
			return tl
		}
	}
	return nil
}

// InstantFlags lists parameters set for the whole sprite lifetime, in order
// of first appearance.
func (s *Sprite) InstantFlags() []common.ParameterType {
	var flags []common.ParameterType
	for _, c := range s.commands {
		if p, ok := c.(*ParameterCommand); ok && p.IsInstant() && !slices.Contains(flags, p.param) {
			flags = append(flags, p.param)
		}
	}
	return flags
}

// HasOverlap reports whether any property timeline has overlapping commands.
func (s *Sprite) HasOverlap() bool {
	for _, tl := range s.Timelines() {
		if tl.HasOverlap() {
			return true
		}
	}
	return false
}

// WithCommands returns new sprite with the same header carrying cmds.
func (s *Sprite) WithCommands(cmds []Command) (*Sprite, error) {
	n := NewSprite(s.TexturePath, s.Layer, s.Origin, s.InitialPosition)
	n.MaxCommandCount = s.MaxCommandCount
	for _, c := range cmds {
		if err := n.AddCommand(c); err != nil {
			return nil, err
		}
	}
	return n, nil
}
