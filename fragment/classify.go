// Package fragment splits sprites carrying more commands than renderer
// accepts into several sprites reproducing the same animation.
package fragment

import (
	"sbx/common"
	"sbx/storyboard"
)

// IsSplittable reports whether command may be cut at a fragment boundary
// without changing its shape. Eased commands are not, since clipping an eased
// curve and re-applying the same easing to the piece gives a different curve.
func IsSplittable(c storyboard.Command) bool {
	switch c.Kind() {
	case common.CommandKindParameter:
		return true
	case common.CommandKindLoop, common.CommandKindTrigger:
		return false
	}
	return c.StartTime() == c.EndTime() || c.Easing().IsLinear()
}

// IsFragmentable reports whether sprite has to be and may be split: it has at
// least max commands and none of its properties has overlapping commands.
func IsFragmentable(s *storyboard.Sprite, max int) bool {
	return s.CommandCount() >= max && !s.HasOverlap()
}

// protectsInterior reports whether no fragment boundary may fall strictly
// inside of the command. Parameters are kept whole as well.
func protectsInterior(c storyboard.Command) bool {
	return !IsSplittable(c) || c.Kind() == common.CommandKindParameter
}
