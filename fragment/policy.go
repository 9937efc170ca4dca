package fragment

import (
	"math"

	"sbx/common"
	"sbx/storyboard"
)

// policy captures what differs between fragmenting plain sprites and frame
// animations.
type policy interface {
	// prune removes split times the object cannot be cut at.
	prune(times *timeSet)
	// materialize builds output object from fragment commands.
	materialize(cmds []storyboard.Command) (storyboard.Object, error)
}

func policyFor(obj storyboard.Object) policy {
	if a, ok := obj.(*storyboard.Animation); ok {
		return animationPolicy{anim: a}
	}
	return spritePolicy{sprite: obj.Base()}
}

type spritePolicy struct {
	sprite *storyboard.Sprite
}

func (spritePolicy) prune(*timeSet) {}

func (p spritePolicy) materialize(cmds []storyboard.Command) (storyboard.Object, error) {
	return p.sprite.WithCommands(cmds)
}

type animationPolicy struct {
	anim *storyboard.Animation
}

// prune keeps split times at frame cycle boundaries only, otherwise the next
// fragment would restart the frame sequence mid-cycle. Times after animation
// end are left alone and so is the last time.
func (p animationPolicy) prune(times *timeSet) {
	loop := p.anim.LoopDuration()
	if loop <= 0 {
		return
	}
	last, ok := times.max()
	if !ok {
		return
	}
	end := p.anim.AnimationEndTime()
	for d := float64(p.anim.StartTime()); d < end; d += loop {
		times.removeBetween(int(math.Floor(d)), min(int(math.Ceil(d+loop)), last))
	}
}

// materialize turns fragments starting after single pass animation is over
// into plain sprites showing the final frame.
func (p animationPolicy) materialize(cmds []storyboard.Command) (storyboard.Object, error) {
	if p.anim.LoopType == common.LoopTypeOnce && len(cmds) > 0 {
		first := cmds[0].StartTime()
		for _, c := range cmds[1:] {
			first = min(first, c.StartTime())
		}
		if float64(first) >= p.anim.AnimationEndTime() {
			s, err := p.anim.Sprite.WithCommands(cmds)
			if err != nil {
				return nil, err
			}
			s.TexturePath = p.anim.FramePath(p.anim.FrameCount - 1)
			return s, nil
		}
	}
	return p.anim.WithCommands(cmds)
}
