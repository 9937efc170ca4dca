package osb

import (
	"errors"
	"strings"
	"testing"

	"sbx/common"
	"sbx/storyboard"
)

type bogusCommand struct{ storyboard.ParameterCommand }

func (*bogusCommand) Kind() common.CommandKind { return common.CommandKind(77) }

func TestNumberFormat(t *testing.T) {
	tests := []struct {
		name     string
		decimals int
		value    float64
		want     string
	}{
		{"integer", 4, 320, "320"},
		{"trimmed", 4, 0.5, "0.5"},
		{"rounded", 2, 1.23456, "1.23"},
		{"rounded up", 2, 1.005001, "1.01"},
		{"no decimals", 0, 2.6, "3"},
		{"negative", 3, -12.25, "-12.25"},
		{"negative zero", 2, -0.0001, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := (NumberFormat{Decimals: tt.decimals}).Float(tt.value); got != tt.want {
				t.Errorf("Float(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}

	nf := DefaultNumberFormat
	for v, want := range map[float64]string{0: "0", 1: "255", 0.5: "128", 1.5: "255", -1: "0"} {
		if got := nf.Channel(v); got != want {
			t.Errorf("Channel(%v) = %q, want %q", v, got, want)
		}
	}
}

func writeObject(t *testing.T, obj storyboard.Object) string {
	t.Helper()
	var b strings.Builder
	w := NewWriter(&b, DefaultNumberFormat)
	if err := w.WriteObject(obj); err != nil {
		t.Fatalf("WriteObject() error = %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	return b.String()
}

func add(t *testing.T, s *storyboard.Sprite, c storyboard.Command, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("constructor error = %v", err)
	}
	if err := s.AddCommand(c); err != nil {
		t.Fatalf("AddCommand() error = %v", err)
	}
}

func TestWriteObject_Sprite(t *testing.T) {
	s := storyboard.NewSprite("sb/dot.png", common.LayerForeground, common.OriginCentre, storyboard.Vector2{X: 320, Y: 240})
	c1, err := storyboard.NewMove(common.EasingNone, 0, 1000, storyboard.Vector2{X: 0, Y: 0}, storyboard.Vector2{X: 100.5, Y: 0})
	add(t, s, c1, err)
	c2, err := storyboard.NewFade(common.EasingOutQuad, 500, 500, 1, 1)
	add(t, s, c2, err)
	c3, err := storyboard.NewColor(common.EasingNone, 0, 200, storyboard.Color{R: 1, G: 1, B: 1}, storyboard.ColorFromRGB(255, 0, 128))
	add(t, s, c3, err)
	c4, err := storyboard.NewParameter(0, 0, common.ParameterTypeAdditive)
	add(t, s, c4, err)
	c5, err := storyboard.NewScaleVec(common.EasingInOutSine, 100, 300, storyboard.Vector2{X: 1, Y: 1}, storyboard.Vector2{X: 2, Y: 0.25})
	add(t, s, c5, err)
	c6, err := storyboard.NewRotate(common.EasingOutElasticHalf, 0, 10, -1.5, 1.5)
	add(t, s, c6, err)

	want := strings.Join([]string{
		`Sprite,Foreground,Centre,"sb/dot.png",320,240`,
		` M,0,0,1000,0,0,100.5,0`,
		` F,4,500,,1`,
		` C,0,0,200,255,255,255,255,0,128`,
		` P,0,0,,A`,
		` V,17,100,300,1,1,2,0.25`,
		` R,26,0,10,-1.5,1.5`,
		``,
	}, "\n")
	if got := writeObject(t, s); got != want {
		t.Errorf("WriteObject() =\n%s\nwant\n%s", got, want)
	}
}

func TestWriteObject_AnimationAndGroups(t *testing.T) {
	a := storyboard.NewAnimation("sb/frame.png", common.LayerBackground, common.OriginTopLeft, storyboard.Vector2{X: 10, Y: 20.25}, 8, 33.3333, common.LoopTypeOnce)
	inner1, _ := storyboard.NewFade(common.EasingNone, 0, 100, 0, 1)
	inner2, _ := storyboard.NewMoveX(common.EasingNone, 100, 200, 5, 5)
	loop, err := storyboard.NewLoop(1000, 3, inner1, inner2)
	add(t, &a.Sprite, loop, err)
	trigger, err := storyboard.NewTrigger("HitSoundClap", 0, 5000, 2, inner1)
	add(t, &a.Sprite, trigger, err)
	passing, err := storyboard.NewTrigger("Passing", 0, 100, 0, inner2)
	add(t, &a.Sprite, passing, err)

	want := strings.Join([]string{
		`Animation,Background,TopLeft,"sb/frame.png",10,20.25,8,33.3333,LoopOnce`,
		` L,1000,3`,
		`  F,0,0,100,0,1`,
		`  MX,0,100,200,5`,
		` T,HitSoundClap,0,5000,2`,
		`  F,0,0,100,0,1`,
		` T,Passing,0,100`,
		`  MX,0,100,200,5`,
		``,
	}, "\n")
	if got := writeObject(t, a); got != want {
		t.Errorf("WriteObject() =\n%s\nwant\n%s", got, want)
	}
}

func TestWriteObject_UnknownCommand(t *testing.T) {
	s := storyboard.NewSprite("sb/bad.png", common.LayerForeground, common.OriginCentre, storyboard.Vector2{})
	trigger, err := storyboard.NewTrigger("Failing", 0, 10, 0, &bogusCommand{})
	add(t, s, trigger, err)

	var b strings.Builder
	w := NewWriter(&b, DefaultNumberFormat)
	err = w.WriteObject(s)
	if !errors.Is(err, ErrUnsupportedCommand) {
		t.Fatalf("WriteObject() error = %v, want ErrUnsupportedCommand", err)
	}
	if !strings.Contains(err.Error(), "sb/bad.png") {
		t.Errorf("error %q does not name the sprite", err)
	}
	_ = w.Flush()
	if b.Len() != 0 {
		t.Errorf("partial object was written: %q", b.String())
	}
}

func TestWriteStoryboard(t *testing.T) {
	sb := storyboard.New("id", "test")
	s := storyboard.NewSprite("sb/bg.jpg", common.LayerBackground, common.OriginCentre, storyboard.Vector2{X: 320, Y: 240})
	c, err := storyboard.NewFade(common.EasingNone, 0, 1000, 0, 1)
	add(t, s, c, err)
	sb.Add(common.LayerBackground, s)
	o := storyboard.NewSprite("sb/top.png", common.LayerOverlay, common.OriginBottomRight, storyboard.Vector2{X: 640, Y: 480})
	sb.Add(common.LayerOverlay, o)

	var b strings.Builder
	if err := NewWriter(&b, DefaultNumberFormat).WriteStoryboard(sb); err != nil {
		t.Fatalf("WriteStoryboard() error = %v", err)
	}
	want := strings.Join([]string{
		`[Events]`,
		`//Background and Video events`,
		`//Storyboard Layer 0 (Background)`,
		`Sprite,Background,Centre,"sb/bg.jpg",320,240`,
		` F,0,0,1000,0,1`,
		`//Storyboard Layer 1 (Fail)`,
		`//Storyboard Layer 2 (Pass)`,
		`//Storyboard Layer 3 (Foreground)`,
		`//Storyboard Layer 4 (Overlay)`,
		`Sprite,Overlay,BottomRight,"sb/top.png",640,480`,
		`//Storyboard Sound Samples`,
		``,
	}, "\n")
	if got := b.String(); got != want {
		t.Errorf("WriteStoryboard() =\n%s\nwant\n%s", got, want)
	}
}
