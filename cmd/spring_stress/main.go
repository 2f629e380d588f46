// Stress test for spring stepping and cut sampling on large cloth grids
package main

import (
	"fmt"
	"math/rand"
	"time"

	"springbox/internal/geom"
	"springbox/internal/physics"
	"springbox/internal/preset"
)

func main() {
	sizes := []int{10, 25, 50, 100, 200}

	for _, n := range sizes {
		testCloth(n)
	}
}

func testCloth(n int) {
	w := physics.NewWorld(physics.DefaultParams())
	if err := preset.Cloth(n, n, 20)(w, geom.V(0, 0)); err != nil {
		fmt.Printf("%4dx%-4d cloth: ERROR: %v\n", n, n, err)
		return
	}
	w.SetSimulating(true)

	// Warm up
	w.Step()

	const stepIterations = 50
	stepStart := time.Now()
	for i := 0; i < stepIterations; i++ {
		w.Step()
	}
	stepTime := time.Since(stepStart) / stepIterations

	// Cut samples over the cloth's original extent, consistent across runs.
	rng := rand.New(rand.NewSource(42))
	extent := float64(n) * 20
	points := make([]geom.Vec2, 100)
	for i := range points {
		points[i] = geom.V(rng.Float64()*extent, rng.Float64()*extent)
	}

	nearestStart := time.Now()
	for _, p := range points {
		w.StickAt(p)
	}
	nearestTime := time.Since(nearestStart) / time.Duration(len(points))

	sticks := len(w.Sticks())
	sweepStart := time.Now()
	var cut int
	for _, p := range points {
		cut += len(w.Cut(p, physics.CutSweep))
	}
	sweepTime := time.Since(sweepStart) / time.Duration(len(points))

	fmt.Printf("%4dx%-4d cloth: %6d nodes %6d sticks | step %10v | nearest query %9v | sweep %9v (%d cut)\n",
		n, n, len(w.Nodes()), sticks,
		stepTime.Round(time.Microsecond), nearestTime.Round(time.Microsecond),
		sweepTime.Round(time.Microsecond), cut)
}
