// Package preset builds ready-made structures through the public World API,
// so every preset obeys the same invariants as hand-drawn scenes.
package preset

import (
	"errors"
	"fmt"
	"sort"

	"springbox/internal/geom"
	"springbox/internal/physics"
)

var ErrUnknown = errors.New("unknown preset")

// Builder adds a structure to w with its top-left corner at origin.
type Builder func(w *physics.World, origin geom.Vec2) error

var builders = map[string]Builder{
	"rope":   Rope(12, 40),
	"cloth":  Cloth(14, 10, 40),
	"bridge": Bridge(10, 60),
}

// Names returns the registered preset names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builders))
	for n := range builders {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Build adds the named preset to w.
func Build(name string, w *physics.World, origin geom.Vec2) error {
	b, ok := builders[name]
	if !ok {
		return fmt.Errorf("%w %q (have %v)", ErrUnknown, name, Names())
	}
	if err := b(w, origin); err != nil {
		return fmt.Errorf("building %s: %w", name, err)
	}
	return nil
}

// Rope is a horizontal chain of n nodes spaced gap apart, anchored at the
// first node.
func Rope(n int, gap float64) Builder {
	return func(w *physics.World, origin geom.Vec2) error {
		var prev *physics.Node
		for i := 0; i < n; i++ {
			node, err := w.AddNode(origin.Add(geom.V(float64(i)*gap, 0)), i == 0, 0)
			if err != nil {
				return err
			}
			if prev != nil {
				w.AddStick(prev.ID, node.ID)
			}
			prev = node
		}
		return nil
	}
}

// Cloth is a cols x rows grid linked to its right and lower neighbours. Every
// third node of the top row is an anchor, plus the top-right corner.
func Cloth(cols, rows int, gap float64) Builder {
	return func(w *physics.World, origin geom.Vec2) error {
		grid := make([][]*physics.Node, rows)
		for r := 0; r < rows; r++ {
			grid[r] = make([]*physics.Node, cols)
			for c := 0; c < cols; c++ {
				locked := r == 0 && (c%3 == 0 || c == cols-1)
				pos := origin.Add(geom.V(float64(c)*gap, float64(r)*gap))
				node, err := w.AddNode(pos, locked, 0)
				if err != nil {
					return err
				}
				grid[r][c] = node
				if c > 0 {
					w.AddStick(grid[r][c-1].ID, node.ID)
				}
				if r > 0 {
					w.AddStick(grid[r-1][c].ID, node.ID)
				}
			}
		}
		return nil
	}
}

// Bridge is a deck of span segments between two anchors, stiffened by a
// triangulated truss above it.
func Bridge(span int, gap float64) Builder {
	return func(w *physics.World, origin geom.Vec2) error {
		deck := make([]*physics.Node, span+1)
		for i := range deck {
			node, err := w.AddNode(origin.Add(geom.V(float64(i)*gap, gap)), i == 0 || i == span, 0)
			if err != nil {
				return err
			}
			deck[i] = node
			if i > 0 {
				w.AddStick(deck[i-1].ID, node.ID)
			}
		}
		var prevTop *physics.Node
		for i := 0; i < span; i++ {
			pos := origin.Add(geom.V((float64(i)+0.5)*gap, 0))
			top, err := w.AddNode(pos, false, 0)
			if err != nil {
				return err
			}
			w.AddStick(deck[i].ID, top.ID)
			w.AddStick(top.ID, deck[i+1].ID)
			if prevTop != nil {
				w.AddStick(prevTop.ID, top.ID)
			}
			prevTop = top
		}
		return nil
	}
}
