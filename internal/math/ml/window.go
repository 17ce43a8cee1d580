package ml

import (
	"fmt"

	"github.com/drakos74/classifier/internal/data"
)

// WindowSize is the number of neighbours a Window retains.
const WindowSize = 3

type neighbour struct {
	distance float64
	label    float64
}

// Window keeps the closest neighbours seen so far and votes on their class.
type Window struct {
	neighbours []neighbour
}

// NewWindow creates a new empty window.
func NewWindow() *Window {
	return &Window{
		neighbours: make([]neighbour, 0, WindowSize),
	}
}

// Insert offers a neighbour to the window.
// Once the window is full, the neighbour replaces the farthest one in place,
// but only if it is strictly closer.
func (w *Window) Insert(distance, label float64) {
	if len(w.neighbours) < WindowSize {
		w.neighbours = append(w.neighbours, neighbour{distance: distance, label: label})
		return
	}
	farthest := 0
	for i, n := range w.neighbours {
		if n.distance > w.neighbours[farthest].distance {
			farthest = i
		}
	}
	if distance < w.neighbours[farthest].distance {
		w.neighbours[farthest] = neighbour{distance: distance, label: label}
	}
}

// Decide returns the label with two votes, checking the first and then the second position.
// Otherwise it falls back to the label of the closest neighbour.
func (w *Window) Decide() (float64, error) {
	if len(w.neighbours) < 2 {
		return 0, fmt.Errorf("window needs at least 2 neighbours to decide but has %d: %w",
			len(w.neighbours), data.PreconditionErr)
	}
	if w.count(w.neighbours[0].label) == 2 {
		return w.neighbours[0].label, nil
	}
	if w.count(w.neighbours[1].label) == 2 {
		return w.neighbours[1].label, nil
	}
	closest := 0
	for i, n := range w.neighbours {
		if n.distance < w.neighbours[closest].distance {
			closest = i
		}
	}
	return w.neighbours[closest].label, nil
}

func (w *Window) count(label float64) int {
	c := 0
	for _, n := range w.neighbours {
		if n.label == label {
			c++
		}
	}
	return c
}

// Len returns the number of neighbours held.
func (w *Window) Len() int {
	return len(w.neighbours)
}

// Distances returns the distances held, in window order.
func (w *Window) Distances() []float64 {
	dd := make([]float64, len(w.neighbours))
	for i, n := range w.neighbours {
		dd[i] = n.distance
	}
	return dd
}

// Labels returns the labels held, in window order.
func (w *Window) Labels() []float64 {
	ll := make([]float64, len(w.neighbours))
	for i, n := range w.neighbours {
		ll[i] = n.label
	}
	return ll
}
