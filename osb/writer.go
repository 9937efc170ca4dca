package osb

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"sbx/common"
	"sbx/storyboard"
)

// ErrUnsupportedCommand is returned for commands writer does not know how to
// serialize.
var ErrUnsupportedCommand = errors.New("unsupported command")

// keywords maps command kinds to script line keys.
var keywords = map[common.CommandKind]string{
	common.CommandKindMove:      "M",
	common.CommandKindMoveX:     "MX",
	common.CommandKindMoveY:     "MY",
	common.CommandKindRotate:    "R",
	common.CommandKindScale:     "S",
	common.CommandKindScaleVec:  "V",
	common.CommandKindFade:      "F",
	common.CommandKindColor:     "C",
	common.CommandKindParameter: "P",
	common.CommandKindLoop:      "L",
	common.CommandKindTrigger:   "T",
}

// Writer emits storyboard script. Output is buffered, call Flush (WriteEvents
// does it) when done.
type Writer struct {
	w      *bufio.Writer
	format NumberFormat
}

func NewWriter(w io.Writer, format NumberFormat) *Writer {
	return &Writer{w: bufio.NewWriter(w), format: format}
}

func (wr *Writer) Flush() error {
	return wr.w.Flush()
}

// WriteEvents writes complete [Events] section. objects returns objects of a
// layer in output order.
func (wr *Writer) WriteEvents(objects func(common.Layer) []storyboard.Object) error {
	wr.line("[Events]")
	wr.line("//Background and Video events")
	for i, name := range common.LayerNames() {
		layer := common.Layer(i)
		wr.line("//Storyboard Layer " + strconv.Itoa(i) + " (" + name + ")")
		for _, obj := range objects(layer) {
			if err := wr.WriteObject(obj); err != nil {
				return err
			}
		}
	}
	wr.line("//Storyboard Sound Samples")
	return wr.Flush()
}

// WriteObject writes object header followed by all its commands.
func (wr *Writer) WriteObject(obj storyboard.Object) error {
	s := obj.Base()
	// render into memory first so failed object does not leave half a block
	var b strings.Builder
	if err := wr.header(&b, obj); err != nil {
		return fmt.Errorf("%q: %w", s.TexturePath, err)
	}
	for _, c := range s.Commands() {
		if err := wr.command(&b, 1, c); err != nil {
			return fmt.Errorf("%q: %w", s.TexturePath, err)
		}
	}
	_, err := wr.w.WriteString(b.String())
	return err
}

func (wr *Writer) line(s string) {
	wr.w.WriteString(s)
	wr.w.WriteByte('\n')
}

func (wr *Writer) header(b *strings.Builder, obj storyboard.Object) error {
	s := obj.Base()
	if !s.Layer.IsValid() || !s.Origin.IsValid() {
		return fmt.Errorf("invalid layer %s or origin %s", s.Layer, s.Origin)
	}
	fields := []string{
		"",
		s.Layer.String(),
		s.Origin.String(),
		strconv.Quote(s.TexturePath),
		wr.format.Float(s.InitialPosition.X),
		wr.format.Float(s.InitialPosition.Y),
	}
	switch o := obj.(type) {
	case *storyboard.Sprite:
		fields[0] = "Sprite"
	case *storyboard.Animation:
		if !o.LoopType.IsValid() {
			return fmt.Errorf("invalid loop type %s", o.LoopType)
		}
		fields[0] = "Animation"
		fields = append(fields, strconv.Itoa(o.FrameCount), wr.format.Float(o.FrameDelay), o.LoopType.Keyword())
	default:
		return fmt.Errorf("unsupported object type %T", obj)
	}
	b.WriteString(strings.Join(fields, ","))
	b.WriteByte('\n')
	return nil
}

func (wr *Writer) command(b *strings.Builder, depth int, c storyboard.Command) error {
	key, ok := keywords[c.Kind()]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnsupportedCommand, c)
	}

	var (
		fields []string
		nested []storyboard.Command
		err    error
	)
	switch c.Kind() {
	case common.CommandKindMove, common.CommandKindScaleVec:
		fields, err = keyframeFields(c, func(v storyboard.Vector2) []string {
			return []string{wr.format.Float(v.X), wr.format.Float(v.Y)}
		})
	case common.CommandKindMoveX, common.CommandKindMoveY, common.CommandKindRotate,
		common.CommandKindScale, common.CommandKindFade:
		fields, err = keyframeFields(c, func(v storyboard.Scalar) []string {
			return []string{wr.format.Float(float64(v))}
		})
	case common.CommandKindColor:
		fields, err = keyframeFields(c, func(v storyboard.Color) []string {
			return []string{wr.format.Channel(v.R), wr.format.Channel(v.G), wr.format.Channel(v.B)}
		})
	case common.CommandKindParameter:
		p, ok := c.(*storyboard.ParameterCommand)
		if !ok {
			return fmt.Errorf("%w: %s is %T", ErrUnsupportedCommand, c.Kind(), c)
		}
		fields = append(timeFields(c), p.Parameter().Letter())
	case common.CommandKindLoop:
		l, ok := c.(*storyboard.LoopCommand)
		if !ok {
			return fmt.Errorf("%w: %s is %T", ErrUnsupportedCommand, c.Kind(), c)
		}
		fields, nested = []string{strconv.Itoa(l.StartTime()), strconv.Itoa(l.LoopCount())}, l.Commands()
	case common.CommandKindTrigger:
		t, ok := c.(*storyboard.TriggerCommand)
		if !ok {
			return fmt.Errorf("%w: %s is %T", ErrUnsupportedCommand, c.Kind(), c)
		}
		fields = []string{t.Name(), strconv.Itoa(t.StartTime()), strconv.Itoa(t.WindowEnd())}
		if t.Group() != 0 {
			fields = append(fields, strconv.Itoa(t.Group()))
		}
		nested = t.Commands()
	}
	if err != nil {
		return err
	}

	b.WriteString(strings.Repeat(" ", depth))
	b.WriteString(key)
	b.WriteByte(',')
	b.WriteString(strings.Join(fields, ","))
	b.WriteByte('\n')
	for _, n := range nested {
		if err := wr.command(b, depth+1, n); err != nil {
			return err
		}
	}
	return nil
}

// timeFields returns easing, start and end, end is left empty for instants.
func timeFields(c storyboard.Command) []string {
	end := ""
	if c.EndTime() != c.StartTime() {
		end = strconv.Itoa(c.EndTime())
	}
	return []string{strconv.Itoa(int(c.Easing())), strconv.Itoa(c.StartTime()), end}
}

func keyframeFields[V storyboard.Value[V]](c storyboard.Command, values func(V) []string) ([]string, error) {
	k, ok := c.(*storyboard.Keyframe[V])
	if !ok {
		return nil, fmt.Errorf("%w: %s is %T", ErrUnsupportedCommand, c.Kind(), c)
	}
	fields := append(timeFields(c), values(k.StartValue())...)
	if k.EndValue() != k.StartValue() {
		fields = append(fields, values(k.EndValue())...)
	}
	return fields, nil
}

// WriteStoryboard writes storyboard objects as they are, without fragmenting.
func (wr *Writer) WriteStoryboard(sb *storyboard.Storyboard) error {
	return wr.WriteEvents(sb.Objects)
}
