package storyboard

import (
	"math"
	"testing"

	"sbx/common"
)

func TestEase(t *testing.T) {
	tests := []struct {
		name   string
		easing common.Easing
		p      float64
		want   float64
	}{
		{"linear", common.EasingNone, 0.25, 0.25},
		{"linear keeps precision", common.EasingNone, 1.0 / 3, 1.0 / 3},
		{"in quad", common.EasingInQuad, 0.5, 0.25},
		{"legacy in", common.EasingIn, 0.5, 0.25},
		{"out quad", common.EasingOutQuad, 0.5, 0.75},
		{"legacy out", common.EasingOut, 0.5, 0.75},
		{"in cubic", common.EasingInCubic, 0.5, 0.125},
		{"in quad within float32", common.EasingInQuad, 1.0 / 3, 1.0 / 9},
		{"clamped below", common.EasingOutBounce, -1, 0},
		{"clamped above", common.EasingInBack, 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Ease(tt.easing, tt.p); math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("Ease(%s, %v) = %v, want %v", tt.easing, tt.p, got, tt.want)
			}
		})
	}
}

func TestEase_AllCurvesBounded(t *testing.T) {
	for _, name := range common.EasingNames() {
		e := common.MustParseEasing(name)
		t.Run(name, func(t *testing.T) {
			if got := Ease(e, 0); got != 0 {
				t.Errorf("Ease(0) = %v", got)
			}
			if got := Ease(e, 1); got != 1 {
				t.Errorf("Ease(1) = %v", got)
			}
			for p := 0.05; p < 1; p += 0.05 {
				got := Ease(e, p)
				if math.IsNaN(got) || got < -2 || got > 3 {
					t.Errorf("Ease(%v) = %v out of sane range", p, got)
				}
			}
		})
	}
}

func TestEase_ElasticVariantsSettle(t *testing.T) {
	for _, e := range []common.Easing{common.EasingOutElastic, common.EasingOutElasticHalf, common.EasingOutElasticQuarter} {
		if got := Ease(e, 0.999); math.Abs(got-1) > 0.01 {
			t.Errorf("%s: Ease(0.999) = %v, want close to 1", e, got)
		}
	}
}

func TestEase_EndpointsExact(t *testing.T) {
	for _, name := range common.EasingNames() {
		e := common.MustParseEasing(name)
		if got := Ease(e, 0); got != 0 {
			t.Errorf("Ease(%s, 0) = %v, want exactly 0", name, got)
		}
		if got := Ease(e, 1); got != 1 {
			t.Errorf("Ease(%s, 1) = %v, want exactly 1", name, got)
		}
	}
}
