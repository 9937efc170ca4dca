package storyboard

import (
	"cmp"
	"slices"
	"sort"

	"sbx/common"
)

// PropertyTimeline is value independent view of Timeline used by code which
// walks all sprite properties.
type PropertyTimeline interface {
	Kind() common.CommandKind
	HasCommands() bool
	HasOverlap() bool
	StartTime() int
	EndTime() int
	// Snapshot returns zero-length linear command holding timeline value at t.
	Snapshot(t int) Command
}

// Timeline keeps commands of a single keyframed property ordered by start time.
type Timeline[V Value[V]] struct {
	kind     common.CommandKind
	commands []*Keyframe[V]
}

func newTimeline[V Value[V]](kind common.CommandKind) *Timeline[V] {
	return &Timeline[V]{kind: kind}
}

// add inserts keeping ascending start order, ties keep insertion order.
func (tl *Timeline[V]) add(k *Keyframe[V]) {
	i := sort.Search(len(tl.commands), func(i int) bool {
		return tl.commands[i].start > k.start
	})
	tl.commands = append(tl.commands, nil)
	copy(tl.commands[i+1:], tl.commands[i:])
	tl.commands[i] = k
}

func (tl *Timeline[V]) Kind() common.CommandKind { return tl.kind }
func (tl *Timeline[V]) HasCommands() bool        { return len(tl.commands) > 0 }

// Commands returns ordered commands, result must not be modified.
func (tl *Timeline[V]) Commands() []*Keyframe[V] { return tl.commands }

func (tl *Timeline[V]) StartTime() int {
	if len(tl.commands) == 0 {
		return 0
	}
	return tl.commands[0].start
}

func (tl *Timeline[V]) EndTime() int {
	end := 0
	for i, k := range tl.commands {
		if i == 0 || k.end > end {
			end = k.end
		}
	}
	return end
}

// HasOverlap reports whether two commands of the timeline are active at the
// same time. Command starting exactly where previous one ends does not
// overlap it.
func (tl *Timeline[V]) HasOverlap() bool {
	if len(tl.commands) < 2 {
		return false
	}
	// instants sharing start with longer command touch it only at the boundary
	ordered := slices.Clone(tl.commands)
	slices.SortStableFunc(ordered, func(a, b *Keyframe[V]) int {
		return cmp.Or(cmp.Compare(a.start, b.start), cmp.Compare(a.end, b.end))
	})
	end := ordered[0].end
	for _, k := range ordered[1:] {
		if k.start < end {
			return true
		}
		end = max(end, k.end)
	}
	return false
}

// ValueAtTime returns property value at t: start value of the first command
// before it begins, otherwise value of the latest command started at or
// before t (its end value once it is over).
func (tl *Timeline[V]) ValueAtTime(t int) V {
	var zero V
	if len(tl.commands) == 0 {
		return zero
	}
	if t < tl.commands[0].start {
		return tl.commands[0].from
	}
	i := sort.Search(len(tl.commands), func(i int) bool {
		return tl.commands[i].start > t
	})
	return tl.commands[i-1].ValueAt(t)
}

func (tl *Timeline[V]) Snapshot(t int) Command {
	v := tl.ValueAtTime(t)
	return &Keyframe[V]{kind: tl.kind, easing: common.EasingNone, start: t, end: t, from: v, to: v}
}
