// Package scene decodes storyboard scene documents (YAML).
package scene

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"sbx/common"
	"sbx/storyboard"
)

// Default sprite placement, center of the 640x480 playfield.
var defaultPosition = storyboard.Vector2{X: 320, Y: 240}

type document struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	Layers layers `yaml:"layers"`
}

type layers struct {
	Background []objectNode `yaml:"background"`
	Fail       []objectNode `yaml:"fail"`
	Pass       []objectNode `yaml:"pass"`
	Foreground []objectNode `yaml:"foreground"`
	Overlay    []objectNode `yaml:"overlay"`
}

func (l *layers) byLayer() [][]objectNode {
	return [][]objectNode{l.Background, l.Fail, l.Pass, l.Foreground, l.Overlay}
}

type objectNode struct {
	Sprite    *spriteNode    `yaml:"sprite"`
	Animation *animationNode `yaml:"animation"`
}

type spriteNode struct {
	Path        string         `yaml:"path"`
	Origin      *common.Origin `yaml:"origin"`
	Position    values         `yaml:"position"`
	MaxCommands int            `yaml:"max_commands"`
	Commands    []commandNode  `yaml:"commands"`
}

type animationNode struct {
	spriteNode `yaml:",inline"`
	Frames     int             `yaml:"frames"`
	Delay      float64         `yaml:"delay"`
	Loop       common.LoopType `yaml:"loop"`
}

// Load decodes scene from r. name is used for messages and as default scene
// name.
func Load(r io.Reader, name string, log *zap.Logger) (*storyboard.Storyboard, error) {
	var doc document

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("scene %q is empty", name)
		}
		return nil, fmt.Errorf("failed to decode scene %q: %w", name, err)
	}

	id := doc.ID
	if _, err := uuid.Parse(id); err != nil {
		u, err := uuid.NewV7()
		if err != nil {
			return nil, fmt.Errorf("unable to generate scene id: %w", err)
		}
		log.Debug("Scene id is missing or invalid, generated new one", zap.String("scene", name), zap.String("was", id), zap.Stringer("id", u))
		id = u.String()
	}
	if len(doc.Name) == 0 {
		base := filepath.Base(name)
		doc.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	sb := storyboard.New(id, doc.Name)
	for i, nodes := range doc.Layers.byLayer() {
		layer := common.Layer(i)
		for j, n := range nodes {
			obj, err := n.build(layer)
			if err != nil {
				return nil, fmt.Errorf("scene %q, %s object %d: %w", name, strings.ToLower(layer.String()), j, err)
			}
			sb.Add(layer, obj)
		}
	}
	return sb, nil
}

// LoadFile is Load for a file on disk.
func LoadFile(path string, log *zap.Logger) (*storyboard.Storyboard, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read scene: %w", err)
	}
	return Load(bytes.NewReader(data), path, log)
}

func (n *objectNode) build(layer common.Layer) (storyboard.Object, error) {
	switch {
	case n.Sprite != nil && n.Animation != nil:
		return nil, errors.New("object cannot be both sprite and animation")
	case n.Sprite != nil:
		s, err := n.Sprite.sprite(layer)
		if err != nil {
			return nil, err
		}
		if err := n.Sprite.addCommands(s); err != nil {
			return nil, err
		}
		return s, nil
	case n.Animation != nil:
		return n.Animation.animation(layer)
	}
	return nil, errors.New("object must be either sprite or animation")
}

func (n *spriteNode) sprite(layer common.Layer) (*storyboard.Sprite, error) {
	if len(n.Path) == 0 {
		return nil, errors.New("texture path is required")
	}
	origin := common.OriginCentre
	if n.Origin != nil {
		origin = *n.Origin
	}
	pos := defaultPosition
	switch len(n.Position) {
	case 0:
	case 2:
		pos = storyboard.Vector2{X: n.Position[0], Y: n.Position[1]}
	default:
		return nil, fmt.Errorf("%q: position needs 2 values, got %d", n.Path, len(n.Position))
	}
	if n.MaxCommands < 0 {
		return nil, fmt.Errorf("%q: max_commands cannot be negative", n.Path)
	}
	s := storyboard.NewSprite(n.Path, layer, origin, pos)
	s.MaxCommandCount = n.MaxCommands
	return s, nil
}

func (n *spriteNode) addCommands(s *storyboard.Sprite) error {
	for _, cn := range n.Commands {
		c, err := cn.build()
		if err != nil {
			return fmt.Errorf("%q: %w", n.Path, err)
		}
		if err := s.AddCommand(c); err != nil {
			return err
		}
	}
	return nil
}

func (n *animationNode) animation(layer common.Layer) (*storyboard.Animation, error) {
	s, err := n.sprite(layer)
	if err != nil {
		return nil, err
	}
	if n.Frames < 1 {
		return nil, fmt.Errorf("%q: animation needs at least one frame", n.Path)
	}
	if n.Delay <= 0 {
		return nil, fmt.Errorf("%q: frame delay must be positive", n.Path)
	}
	a := storyboard.NewAnimation(s.TexturePath, layer, s.Origin, s.InitialPosition, n.Frames, n.Delay, n.Loop)
	a.MaxCommandCount = s.MaxCommandCount
	if err := n.addCommands(&a.Sprite); err != nil {
		return nil, err
	}
	return a, nil
}
