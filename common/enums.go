// Package common holds closed enumerations shared by the storyboard model,
// scene decoding and the osb writer. Values are generated with go-enum, so
// every enum parses case-insensitively and marshals to text (YAML).
package common

//go:generate go tool go-enum --marshal --names --nocase --mustparse

// Interpolation curve applied to a command, numbered the way the renderer
// expects them in script lines. None is linear.
// ENUM(none, out, in, inQuad, outQuad, inOutQuad, inCubic, outCubic, inOutCubic, inQuart, outQuart, inOutQuart, inQuint, outQuint, inOutQuint, inSine, outSine, inOutSine, inExpo, outExpo, inOutExpo, inCirc, outCirc, inOutCirc, inElastic, outElastic, outElasticHalf, outElasticQuarter, inOutElastic, inBack, outBack, inOutBack, inBounce, outBounce, inOutBounce)
type Easing int

// IsLinear reports whether values progress proportionally to time.
func (e Easing) IsLinear() bool {
	return e == EasingNone
}

// Storyboard layer, in drawing order.
// ENUM(Background, Fail, Pass, Foreground, Overlay)
type Layer int

// Sprite anchor, numbered as in the renderer.
// ENUM(TopLeft, Centre, CentreLeft, TopRight, BottomCentre, TopCentre, Custom, CentreRight, BottomLeft, BottomRight)
type Origin int

// Frame animation looping.
// ENUM(forever, once)
type LoopType int

// Keyword returns loop type as it appears in animation headers.
func (l LoopType) Keyword() string {
	switch l {
	case LoopTypeForever:
		return "LoopForever"
	case LoopTypeOnce:
		return "LoopOnce"
	default:
		// this should never happen
		panic("unsupported loop type requested")
	}
}

// Flag toggled by a parameter command.
// ENUM(flipH, flipV, additive)
type ParameterType int

// Letter returns parameter code used in P command lines.
func (p ParameterType) Letter() string {
	switch p {
	case ParameterTypeFlipH:
		return "H"
	case ParameterTypeFlipV:
		return "V"
	case ParameterTypeAdditive:
		return "A"
	default:
		// this should never happen
		panic("unsupported parameter type requested")
	}
}

// Kind of storyboard command. Order is the property order used when
// synthesized commands are emitted.
// ENUM(move, moveX, moveY, rotate, scale, scaleVec, fade, color, parameter, loop, trigger)
type CommandKind int

// IsGroup reports whether commands of this kind carry nested commands.
func (k CommandKind) IsGroup() bool {
	return k == CommandKindLoop || k == CommandKindTrigger
}
