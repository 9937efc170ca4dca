package storyboard

import (
	"fmt"

	"sbx/common"
)

// Keyframe is an interpolated command: property goes from "from" to "to"
// over [start, end] following easing curve.
type Keyframe[V Value[V]] struct {
	kind       common.CommandKind
	easing     common.Easing
	start, end int
	from, to   V
}

func newKeyframe[V Value[V]](kind common.CommandKind, easing common.Easing, start, end int, from, to V) (*Keyframe[V], error) {
	if err := checkTimes(kind, start, end); err != nil {
		return nil, err
	}
	if !easing.IsValid() {
		return nil, fmt.Errorf("%s: %w", kind, common.ErrInvalidEasing)
	}
	return &Keyframe[V]{kind: kind, easing: easing, start: start, end: end, from: from, to: to}, nil
}

func NewMove(easing common.Easing, start, end int, from, to Vector2) (*Keyframe[Vector2], error) {
	return newKeyframe(common.CommandKindMove, easing, start, end, from, to)
}

func NewMoveX(easing common.Easing, start, end int, from, to Scalar) (*Keyframe[Scalar], error) {
	return newKeyframe(common.CommandKindMoveX, easing, start, end, from, to)
}

func NewMoveY(easing common.Easing, start, end int, from, to Scalar) (*Keyframe[Scalar], error) {
	return newKeyframe(common.CommandKindMoveY, easing, start, end, from, to)
}

func NewRotate(easing common.Easing, start, end int, from, to Scalar) (*Keyframe[Scalar], error) {
	return newKeyframe(common.CommandKindRotate, easing, start, end, from, to)
}

func NewScale(easing common.Easing, start, end int, from, to Scalar) (*Keyframe[Scalar], error) {
	return newKeyframe(common.CommandKindScale, easing, start, end, from, to)
}

func NewScaleVec(easing common.Easing, start, end int, from, to Vector2) (*Keyframe[Vector2], error) {
	return newKeyframe(common.CommandKindScaleVec, easing, start, end, from, to)
}

func NewFade(easing common.Easing, start, end int, from, to Scalar) (*Keyframe[Scalar], error) {
	return newKeyframe(common.CommandKindFade, easing, start, end, from, to)
}

func NewColor(easing common.Easing, start, end int, from, to Color) (*Keyframe[Color], error) {
	return newKeyframe(common.CommandKindColor, easing, start, end, from, to)
}

func (k *Keyframe[V]) Kind() common.CommandKind { return k.kind }
func (k *Keyframe[V]) StartTime() int           { return k.start }
func (k *Keyframe[V]) EndTime() int             { return k.end }
func (k *Keyframe[V]) Easing() common.Easing    { return k.easing }
func (k *Keyframe[V]) StartValue() V            { return k.from }
func (k *Keyframe[V]) EndValue() V              { return k.to }

// ValueAt evaluates command at time t. Outside of [start, end] value of the
// nearest end is returned.
func (k *Keyframe[V]) ValueAt(t int) V {
	switch {
	case t <= k.start:
		return k.from
	case t >= k.end:
		return k.to
	}
	p := float64(t-k.start) / float64(k.end-k.start)
	return k.from.Lerp(k.to, Ease(k.easing, p))
}

// Clip recomputes values at new bounds keeping the easing. Shape is preserved
// only for linear commands, callers are expected to check.
func (k *Keyframe[V]) Clip(start, end int) (Command, error) {
	if err := checkClip(k, start, end); err != nil {
		return nil, err
	}
	if start == k.start && end == k.end {
		return k, nil
	}
	return &Keyframe[V]{
		kind:   k.kind,
		easing: k.easing,
		start:  start,
		end:    end,
		from:   k.ValueAt(start),
		to:     k.ValueAt(end),
	}, nil
}

func (k *Keyframe[V]) String() string {
	return fmt.Sprintf("%s(%s) [%d, %d] %v -> %v", k.kind, k.easing, k.start, k.end, k.from, k.to)
}
