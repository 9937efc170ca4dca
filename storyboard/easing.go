package storyboard

import (
	"math"

	"github.com/tanema/gween/ease"

	"sbx/common"
)

type curve func(t, b, c, d float32) float32

// Curves the renderer knows, see common.Easing for numbering. "out" and "in"
// are the renderer's legacy quadratic shortcuts.
var curves = map[common.Easing]curve{
	common.EasingOut:          ease.OutQuad,
	common.EasingIn:           ease.InQuad,
	common.EasingInQuad:       ease.InQuad,
	common.EasingOutQuad:      ease.OutQuad,
	common.EasingInOutQuad:    ease.InOutQuad,
	common.EasingInCubic:      ease.InCubic,
	common.EasingOutCubic:     ease.OutCubic,
	common.EasingInOutCubic:   ease.InOutCubic,
	common.EasingInQuart:      ease.InQuart,
	common.EasingOutQuart:     ease.OutQuart,
	common.EasingInOutQuart:   ease.InOutQuart,
	common.EasingInQuint:      ease.InQuint,
	common.EasingOutQuint:     ease.OutQuint,
	common.EasingInOutQuint:   ease.InOutQuint,
	common.EasingInSine:       ease.InSine,
	common.EasingOutSine:      ease.OutSine,
	common.EasingInOutSine:    ease.InOutSine,
	common.EasingInExpo:       ease.InExpo,
	common.EasingOutExpo:      ease.OutExpo,
	common.EasingInOutExpo:    ease.InOutExpo,
	common.EasingInCirc:       ease.InCirc,
	common.EasingOutCirc:      ease.OutCirc,
	common.EasingInOutCirc:    ease.InOutCirc,
	common.EasingInElastic:    ease.InElastic,
	common.EasingOutElastic:   ease.OutElastic,
	common.EasingInOutElastic: ease.InOutElastic,
	common.EasingInBack:       ease.InBack,
	common.EasingOutBack:      ease.OutBack,
	common.EasingInOutBack:    ease.InOutBack,
	common.EasingInBounce:     ease.InBounce,
	common.EasingOutBounce:    ease.OutBounce,
	common.EasingInOutBounce:  ease.InOutBounce,
}

// Ease maps normalized time p in [0, 1] through the curve. Linear progress is
// returned untouched so clipped linear commands stay exact.
func Ease(e common.Easing, p float64) float64 {
	switch {
	case p <= 0:
		return 0
	case p >= 1:
		return 1
	}
	switch e {
	case common.EasingNone:
		return p
	case common.EasingOutElasticHalf:
		return outElastic(p, 0.5)
	case common.EasingOutElasticQuarter:
		return outElastic(p, 0.25)
	}
	if fn, ok := curves[e]; ok {
		// curves run in float32, eased values carry about 7 significant
		// digits. Fragment boundaries never fall inside of eased commands, so
		// continuity snapshots only read exact endpoints.
		return float64(fn(float32(p), 0, 1, 1))
	}
	// unknown curves degrade to linear, scene decoding rejects them earlier
	return p
}

// outElastic covers the renderer's shortened elastic variants which generic
// tween libraries do not have.
func outElastic(p, phase float64) float64 {
	return math.Pow(2, -10*p)*math.Sin((phase*p-0.075)*(2*math.Pi)/0.3) + 1
}
