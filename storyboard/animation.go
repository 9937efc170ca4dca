package storyboard

import (
	"path"
	"strconv"
	"strings"

	"sbx/common"
)

// Animation is a sprite cycling through numbered texture frames.
type Animation struct {
	Sprite
	FrameCount int
	// FrameDelay is time each frame is shown, ms.
	FrameDelay float64
	LoopType   common.LoopType
}

func NewAnimation(path string, layer common.Layer, origin common.Origin, pos Vector2, frames int, delay float64, loop common.LoopType) *Animation {
	return &Animation{
		Sprite:     *NewSprite(path, layer, origin, pos),
		FrameCount: frames,
		FrameDelay: delay,
		LoopType:   loop,
	}
}

// LoopDuration is time of one pass over all frames.
func (a *Animation) LoopDuration() float64 {
	return float64(a.FrameCount) * a.FrameDelay
}

// AnimationEndTime is when frames stop changing: after a single pass for
// LoopOnce animations, at sprite end otherwise.
func (a *Animation) AnimationEndTime() float64 {
	if a.LoopType == common.LoopTypeOnce {
		return float64(a.StartTime()) + a.LoopDuration()
	}
	return float64(a.EndTime())
}

// WithCommands returns new animation with the same header carrying cmds.
func (a *Animation) WithCommands(cmds []Command) (*Animation, error) {
	s, err := a.Sprite.WithCommands(cmds)
	if err != nil {
		return nil, err
	}
	return &Animation{Sprite: *s, FrameCount: a.FrameCount, FrameDelay: a.FrameDelay, LoopType: a.LoopType}, nil
}

// FramePath returns texture of frame i: frame index goes right before
// extension, "sb/frame.png" becomes "sb/frame3.png".
func (a *Animation) FramePath(i int) string {
	i = max(0, min(i, a.FrameCount-1))
	ext := path.Ext(a.TexturePath)
	return strings.TrimSuffix(a.TexturePath, ext) + strconv.Itoa(i) + ext
}
