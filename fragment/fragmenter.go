package fragment

import (
	"errors"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"sbx/storyboard"
)

// Fragmenter splits objects whose command count reaches the ceiling. It holds
// no per-object state and may be used from several goroutines.
type Fragmenter struct {
	maxCommands int
	log         *zap.Logger
}

// New returns fragmenter using maxCommands as the ceiling for objects which
// do not specify their own.
func New(maxCommands int, log *zap.Logger) *Fragmenter {
	if maxCommands <= 0 {
		maxCommands = storyboard.DefaultMaxCommandCount
	}
	return &Fragmenter{maxCommands: maxCommands, log: log}
}

// Limit returns effective command ceiling for a sprite.
func (f *Fragmenter) Limit(s *storyboard.Sprite) int {
	if s.MaxCommandCount > 0 {
		return s.MaxCommandCount
	}
	return f.maxCommands
}

// Fragment returns objects reproducing obj animation, each under the command
// ceiling. When obj cannot or need not be split a single copy is returned.
// obj itself is never modified.
func (f *Fragmenter) Fragment(obj storyboard.Object) ([]storyboard.Object, error) {
	sprite := obj.Base()
	limit := f.Limit(sprite)
	policy := policyFor(obj)
	log := f.log.With(zap.String("texture", sprite.TexturePath), zap.Int("commands", sprite.CommandCount()))

	commands := slices.Clone(sprite.Commands())
	if len(commands) == 0 {
		log.Debug("Sprite has no commands, nothing to fragment")
		return whole(obj)
	}

	times := candidateTimes(commands)
	policy.prune(times)

	if times.len() < 2 {
		log.Debug("Sprite has no usable split times, keeping it whole", zap.Int("candidates", times.len()))
		return whole(obj)
	}
	if !IsFragmentable(sprite, limit) {
		log.Debug("Sprite is not fragmentable, keeping it whole", zap.Int("limit", limit), zap.Bool("overlap", sprite.HasOverlap()))
		return whole(obj)
	}
	if len(commands) <= limit {
		// single segment would hold everything, keep commands as they are
		log.Debug("Sprite fits into a single fragment, keeping it whole", zap.Int("limit", limit))
		return whole(obj)
	}

	p := &planner{
		sprite:    sprite,
		policy:    policy,
		commands:  commands,
		remaining: indexes(len(commands)),
		times:     times,
		limit:     limit,
	}
	var out []storyboard.Object
	for len(p.remaining) > 0 {
		frag, err := p.next()
		if err != nil {
			return nil, fmt.Errorf("unable to fragment %q: %w", sprite.TexturePath, err)
		}
		out = append(out, frag)
	}
	log.Debug("Sprite fragmented", zap.Int("limit", limit), zap.Int("fragments", len(out)))
	return out, nil
}

func whole(obj storyboard.Object) ([]storyboard.Object, error) {
	var (
		cp  storyboard.Object
		err error
	)
	switch o := obj.(type) {
	case *storyboard.Animation:
		cp, err = o.WithCommands(o.Commands())
	case *storyboard.Sprite:
		cp, err = o.WithCommands(o.Commands())
	default:
		return nil, fmt.Errorf("unsupported object type %T", obj)
	}
	if err != nil {
		return nil, err
	}
	return []storyboard.Object{cp}, nil
}

// candidateTimes returns every millisecond of the command span except those
// strictly inside of commands which must stay whole.
func candidateTimes(commands []storyboard.Command) *timeSet {
	from, to := commands[0].StartTime(), commands[0].EndTime()
	for _, c := range commands[1:] {
		from, to = min(from, c.StartTime()), max(to, c.EndTime())
	}
	ts := newTimeSet(from, to)
	for _, c := range commands {
		if protectsInterior(c) {
			ts.removeBetween(c.StartTime(), c.EndTime())
		}
	}
	return ts
}

func indexes(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}

var errNoCandidates = errors.New("split times exhausted before commands")
