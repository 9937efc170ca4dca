package fragment

import (
	"fmt"
	"sort"

	"sbx/common"
	"sbx/storyboard"
)

// planner extracts fragments one by one from an immutable command snapshot.
type planner struct {
	sprite   *storyboard.Sprite
	policy   policy
	commands []storyboard.Command
	// indexes into commands not yet fully emitted, in original order
	remaining []int
	times     *timeSet
	limit     int
}

func (p *planner) next() (storyboard.Object, error) {
	start, ok := p.times.min()
	if !ok {
		return nil, errNoCandidates
	}
	end := p.segmentEnd(start)

	var selected []storyboard.Command
	for _, i := range p.remaining {
		c := p.commands[i]
		if c.StartTime() >= end {
			continue
		}
		clipped, err := clip(c, start, end)
		if err != nil {
			return nil, err
		}
		selected = append(selected, clipped)
	}
	cmds := append(p.continuity(start, selected), selected...)

	p.times.removeBelow(end)
	kept := p.remaining[:0]
	for _, i := range p.remaining {
		c := p.commands[i]
		// instants sitting exactly on the boundary were not emitted yet
		if c.StartTime() < end && c.EndTime() <= end {
			continue
		}
		kept = append(kept, i)
	}
	p.remaining = kept

	return p.policy.materialize(cmds)
}

// segmentEnd picks exclusive end of fragment starting at start.
func (p *planner) segmentEnd(start int) int {
	last, _ := p.times.max()
	remaining := len(p.remaining)

	target := p.limit
	if p.limit < remaining && remaining < 2*p.limit {
		// split evenly rather than leaving a small tail
		target = (remaining + 1) / 2
	}
	// leave room for continuity commands injected in front of the fragment
	target = max(1, target-p.reserve(start))
	if remaining <= target {
		return last + 1
	}

	starts := make([]int, 0, remaining)
	for _, i := range p.remaining {
		starts = append(starts, p.commands[i].StartTime())
	}
	sort.Ints(starts)
	// first command which does not fit
	cEnd := starts[target]

	end := start
	if p.times.contains(cEnd) {
		end = cEnd
	} else if t, ok := p.times.largestBelow(cEnd); ok {
		end = t
	}
	if end > start {
		return end
	}
	// nothing usable below, accept oversized fragment
	if t, ok := p.times.smallestAbove(start); ok {
		return t
	}
	return last + 1
}

// reserve returns upper bound of continuity commands fragment starting at
// start gets: timelines and lifetime flags no remaining command covers there.
func (p *planner) reserve(start int) int {
	kinds := make(map[common.CommandKind]bool)
	flags := make(map[common.ParameterType]bool)
	for _, i := range p.remaining {
		c := p.commands[i]
		if c.StartTime() > start {
			continue
		}
		kinds[c.Kind()] = true
		if pc, ok := c.(*storyboard.ParameterCommand); ok && pc.IsInstant() {
			flags[pc.Parameter()] = true
		}
	}

	n := 0
	for _, tl := range p.sprite.Timelines() {
		if tl.HasCommands() && !kinds[tl.Kind()] {
			n++
		}
	}
	for _, flag := range p.sprite.InstantFlags() {
		if !flags[flag] {
			n++
		}
	}
	return n
}

// clip restricts command to [start, end] window.
func clip(c storyboard.Command, start, end int) (storyboard.Command, error) {
	from, to := max(start, c.StartTime()), min(end, c.EndTime())
	if from == c.StartTime() && to == c.EndTime() {
		return c, nil
	}
	switch c.Kind() {
	case common.CommandKindMove, common.CommandKindMoveX, common.CommandKindMoveY,
		common.CommandKindRotate, common.CommandKindScale, common.CommandKindScaleVec,
		common.CommandKindFade, common.CommandKindColor:
		if !IsSplittable(c) {
			return nil, fmt.Errorf("%w: eased %s across [%d, %d)", storyboard.ErrNotClippable, c, start, end)
		}
		return c.Clip(from, to)
	case common.CommandKindParameter, common.CommandKindLoop, common.CommandKindTrigger:
		return nil, fmt.Errorf("%w: %s across [%d, %d)", storyboard.ErrNotClippable, c, start, end)
	default:
		return nil, fmt.Errorf("%w: %s", storyboard.ErrUnknownCommand, c)
	}
}

// continuity returns commands carrying property state into fragment starting
// at start: a snapshot for every property not set by a command starting there,
// and lifetime flags the fragment does not have.
func (p *planner) continuity(start int, selected []storyboard.Command) []storyboard.Command {
	startsHere := make(map[common.CommandKind]bool)
	flags := make(map[common.ParameterType]bool)
	for _, c := range selected {
		if c.StartTime() == start {
			startsHere[c.Kind()] = true
		}
		if pc, ok := c.(*storyboard.ParameterCommand); ok && pc.IsInstant() {
			flags[pc.Parameter()] = true
		}
	}

	var out []storyboard.Command
	for _, tl := range p.sprite.Timelines() {
		if !tl.HasCommands() || startsHere[tl.Kind()] {
			continue
		}
		out = append(out, tl.Snapshot(start))
	}
	for _, flag := range p.sprite.InstantFlags() {
		if flags[flag] {
			continue
		}
		// cannot fail, parameter and times are valid
		pc, _ := storyboard.NewParameter(start, start, flag)
		out = append(out, pc)
	}
	return out
}
