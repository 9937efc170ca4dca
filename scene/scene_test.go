package scene

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"sbx/common"
	"sbx/storyboard"
)

func setupLogger(t *testing.T) *zap.Logger {
	t.Helper()
	return zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))
}

const fullScene = `
id: 0190c7c2-7d1e-7c4a-9a51-3f1a2b3c4d5e
name: intro
layers:
  background:
    - sprite:
        path: sb/bg.jpg
        commands:
          - {type: fade, start: 0, end: 1000, from: 0, to: 1}
  foreground:
    - sprite:
        path: sb/dot.png
        origin: topLeft
        position: [100, 50.5]
        max_commands: 120
        commands:
          - {type: move, easing: outQuad, start: 0, end: 1000, from: [0, 0], to: [100, 0]}
          - {type: color, start: 0, end: 500, from: [255, 0, 0], to: [0, 0, 255]}
          - {type: scale, start: 200, from: 2}
          - {type: parameter, start: 0, flag: additive}
          - type: loop
            start: 1000
            count: 3
            commands:
              - {type: rotate, start: 0, end: 100, from: 0, to: 3.14}
          - type: trigger
            name: HitSoundClap
            start: 0
            end: 5000
            group: 1
            commands:
              - {type: fade, start: 0, end: 100, from: 1, to: 0}
    - animation:
        path: sb/frame.png
        frames: 10
        delay: 50
        loop: once
        commands:
          - {type: moveX, start: 0, end: 100, from: 1, to: 2}
`

func TestLoad(t *testing.T) {
	sb, err := Load(strings.NewReader(fullScene), "intro.yaml", setupLogger(t))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if sb.ID != "0190c7c2-7d1e-7c4a-9a51-3f1a2b3c4d5e" || sb.Name != "intro" {
		t.Errorf("id/name = %q/%q", sb.ID, sb.Name)
	}
	if sb.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", sb.Len())
	}

	bg := sb.Objects(common.LayerBackground)[0].Base()
	if bg.Origin != common.OriginCentre || bg.InitialPosition != (storyboard.Vector2{X: 320, Y: 240}) {
		t.Errorf("defaults not applied: origin %s position %v", bg.Origin, bg.InitialPosition)
	}

	fg := sb.Objects(common.LayerForeground)
	dot, ok := fg[0].(*storyboard.Sprite)
	if !ok {
		t.Fatalf("first foreground object is %T", fg[0])
	}
	if dot.Origin != common.OriginTopLeft || dot.InitialPosition != (storyboard.Vector2{X: 100, Y: 50.5}) || dot.MaxCommandCount != 120 {
		t.Errorf("unexpected header %+v", dot)
	}
	cmds := dot.Commands()
	if len(cmds) != 6 || dot.CommandCount() != 8 {
		t.Fatalf("commands = %d (%d lines), want 6 (8 lines)", len(cmds), dot.CommandCount())
	}
	if cmds[0].Easing() != common.EasingOutQuad {
		t.Errorf("easing = %s", cmds[0].Easing())
	}
	color := cmds[1].(*storyboard.Keyframe[storyboard.Color])
	if color.StartValue() != (storyboard.Color{R: 1}) || color.EndValue() != (storyboard.Color{B: 1}) {
		t.Errorf("color values %v -> %v", color.StartValue(), color.EndValue())
	}
	scale := cmds[2].(*storyboard.Keyframe[storyboard.Scalar])
	if scale.StartTime() != 200 || scale.EndTime() != 200 || scale.EndValue() != 2 {
		t.Errorf("scale defaults not applied: %s", scale)
	}
	if p := cmds[3].(*storyboard.ParameterCommand); p.Parameter() != common.ParameterTypeAdditive || !p.IsInstant() {
		t.Errorf("parameter = %s", p)
	}
	if l := cmds[4].(*storyboard.LoopCommand); l.LoopCount() != 3 || l.EndTime() != 1300 {
		t.Errorf("loop = %s", l)
	}
	if tr := cmds[5].(*storyboard.TriggerCommand); tr.Name() != "HitSoundClap" || tr.Group() != 1 || tr.WindowEnd() != 5000 {
		t.Errorf("trigger = %s", tr)
	}

	anim, ok := fg[1].(*storyboard.Animation)
	if !ok {
		t.Fatalf("second foreground object is %T", fg[1])
	}
	if anim.FrameCount != 10 || anim.FrameDelay != 50 || anim.LoopType != common.LoopTypeOnce || anim.CommandCount() != 1 {
		t.Errorf("unexpected animation %+v", anim)
	}
}

func TestLoad_GeneratesID(t *testing.T) {
	sb, err := Load(strings.NewReader("layers: {}\n"), "dir/outro.yml", setupLogger(t))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if _, err := uuid.Parse(sb.ID); err != nil {
		t.Errorf("generated id %q is not uuid: %v", sb.ID, err)
	}
	if sb.Name != "outro" {
		t.Errorf("Name = %q, want outro", sb.Name)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", "is empty"},
		{"unknown top field", "title: x\n", "field title not found"},
		{"unknown sprite field", "layers:\n  pass:\n    - sprite: {path: a.png, size: 3}\n", "field size not found"},
		{"unknown command field", "layers:\n  pass:\n    - sprite:\n        path: a.png\n        commands:\n          - {type: fade, speed: 1}\n", "line 6: field speed not found"},
		{"missing type", "layers:\n  pass:\n    - sprite:\n        path: a.png\n        commands:\n          - {start: 1}\n", "command type is required"},
		{"bad easing", "layers:\n  pass:\n    - sprite:\n        path: a.png\n        commands:\n          - {type: fade, easing: wobbly, from: 1}\n", "not a valid Easing"},
		{"reversed times", "layers:\n  pass:\n    - sprite:\n        path: a.png\n        commands:\n          - {type: fade, start: 10, end: 5, from: 1}\n", "line 6:"},
		{"wrong arity", "layers:\n  fail:\n    - sprite:\n        path: a.png\n        commands:\n          - {type: move, from: 1}\n", "expected 2 value(s)"},
		{"no path", "layers:\n  fail:\n    - sprite: {origin: centre}\n", "texture path is required"},
		{"empty object", "layers:\n  fail:\n    - {}\n", "either sprite or animation"},
		{"both kinds", "layers:\n  fail:\n    - sprite: {path: a.png}\n      animation: {path: b.png, frames: 1, delay: 1}\n", "both sprite and animation"},
		{"no frames", "layers:\n  overlay:\n    - animation: {path: a.png, delay: 10}\n", "at least one frame"},
		{"nested group", "layers:\n  overlay:\n    - sprite:\n        path: a.png\n        commands:\n          - {type: loop, count: 2, commands: [{type: loop, count: 1}]}\n", "nested loop is not allowed"},
		{"bad values", "layers:\n  overlay:\n    - sprite:\n        path: a.png\n        commands:\n          - {type: fade, from: {a: 1}}\n", "expected number or list"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.input), "test.yaml", setupLogger(t))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not contain %q", err, tt.want)
			}
		})
	}
}

func TestLoad_ReversedTimesIsTimeRange(t *testing.T) {
	input := "layers:\n  pass:\n    - sprite:\n        path: a.png\n        commands:\n          - {type: fade, start: 10, end: 5, from: 1}\n"
	_, err := Load(strings.NewReader(input), "test.yaml", setupLogger(t))
	if !errors.Is(err, storyboard.ErrTimeRange) {
		t.Errorf("error = %v, want ErrTimeRange", err)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yaml")
	if err := os.WriteFile(path, []byte(fullScene), 0644); err != nil {
		t.Fatal(err)
	}
	sb, err := LoadFile(path, setupLogger(t))
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if sb.Len() != 3 {
		t.Errorf("Len() = %d", sb.Len())
	}
	if _, err := LoadFile(filepath.Join(dir, "missing.yaml"), setupLogger(t)); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestCommandNode_FailedBuildReturnsNil(t *testing.T) {
	reversed := 5
	tests := []struct {
		name string
		node commandNode
	}{
		{"move", commandNode{Type: common.CommandKindMove, Start: 10, End: &reversed, From: values{1, 2}}},
		{"scale vector", commandNode{Type: common.CommandKindScaleVec, Start: 10, End: &reversed, From: values{1, 2}}},
		{"fade", commandNode{Type: common.CommandKindFade, Start: 10, End: &reversed, From: values{1}}},
		{"color", commandNode{Type: common.CommandKindColor, Start: 10, End: &reversed, From: values{255, 255, 255}}},
		{"parameter", commandNode{Type: common.CommandKindParameter, Start: 10, End: &reversed, Flag: common.ParameterTypeAdditive}},
		{"loop", commandNode{Type: common.CommandKindLoop, Start: 10}},
		{"trigger", commandNode{Type: common.CommandKindTrigger, Start: 10, End: &reversed}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := tt.node.build()
			if err == nil {
				t.Fatal("expected error")
			}
			if c != nil {
				t.Errorf("build() = %#v, want nil command", c)
			}
		})
	}
}
