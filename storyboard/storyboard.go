package storyboard

import (
	"iter"

	"sbx/common"
)

const layerCount = int(common.LayerOverlay) + 1

// Storyboard is an ordered set of objects spread over renderer layers.
type Storyboard struct {
	ID   string
	Name string

	layers [layerCount][]Object
}

func New(id, name string) *Storyboard {
	return &Storyboard{ID: id, Name: name}
}

// Add places object on top of the given layer.
func (sb *Storyboard) Add(layer common.Layer, obj Object) {
	sb.layers[layer] = append(sb.layers[layer], obj)
}

// Objects returns layer content in drawing order.
func (sb *Storyboard) Objects(layer common.Layer) []Object {
	if !layer.IsValid() {
		return nil
	}
	return sb.layers[layer]
}

// Layers iterates over all layers in drawing order, empty ones included.
func (sb *Storyboard) Layers() iter.Seq2[common.Layer, []Object] {
	return func(yield func(common.Layer, []Object) bool) {
		for i := range sb.layers {
			if !yield(common.Layer(i), sb.layers[i]) {
				return
			}
		}
	}
}

// Len returns total number of objects.
func (sb *Storyboard) Len() int {
	n := 0
	for i := range sb.layers {
		n += len(sb.layers[i])
	}
	return n
}
