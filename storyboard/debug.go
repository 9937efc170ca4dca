package storyboard

import (
	"fmt"
	"slices"
	"sort"

	"github.com/maruel/natural"

	"sbx/utils/debug"
)

// String dumps storyboard structure for debug reports.
func (sb *Storyboard) String() string {
	tw := debug.NewTreeWriter()
	tw.Line(0, "storyboard")
	tw.Field(1, "id", sb.ID)
	tw.Field(1, "name", sb.Name)
	for layer, objects := range sb.Layers() {
		if len(objects) == 0 {
			continue
		}
		tw.Line(1, "layer %s (%d)", layer, len(objects))
		for _, obj := range objects {
			dumpObject(tw, 2, obj)
		}
	}
	tw.List(1, "textures", sb.Textures())
	return tw.String()
}

// Textures returns distinct texture paths in natural order.
func (sb *Storyboard) Textures() []string {
	var paths []string
	for _, objects := range sb.Layers() {
		for _, obj := range objects {
			if p := obj.Base().TexturePath; !slices.Contains(paths, p) {
				paths = append(paths, p)
			}
		}
	}
	sort.Sort(natural.StringSlice(paths))
	return paths
}

// Describe returns short one line description of an object.
func Describe(obj Object) string {
	s := obj.Base()
	kind := "sprite"
	if a, ok := obj.(*Animation); ok {
		kind = fmt.Sprintf("animation %dx%gms %s", a.FrameCount, a.FrameDelay, a.LoopType)
	}
	return fmt.Sprintf("%s %q [%d, %d] commands=%d", kind, s.TexturePath, s.StartTime(), s.EndTime(), s.CommandCount())
}

func dumpObject(tw *debug.TreeWriter, depth int, obj Object) {
	s := obj.Base()
	tw.Line(depth, "%s", Describe(obj))
	tw.Field(depth+1, "origin", s.Origin)
	tw.Field(depth+1, "position", s.InitialPosition)
	for _, tl := range s.Timelines() {
		if !tl.HasCommands() {
			continue
		}
		tw.Line(depth+1, "%s [%d, %d] overlap=%t", tl.Kind(), tl.StartTime(), tl.EndTime(), tl.HasOverlap())
	}
	if flags := s.InstantFlags(); len(flags) > 0 {
		tw.Field(depth+1, "flags", fmt.Sprint(flags))
	}
}
