package physics

import "math"

// DivergenceStrain is the stick strain above which a scene counts as blown up.
const DivergenceStrain = 10

// Stats summarises the world for HUDs and reports.
type Stats struct {
	Tick          int
	Nodes         int
	Locked        int
	Sticks        int
	KineticEnergy float64 // sum of |v|^2/2 over free nodes, unit mass
	MeanStrain    float64 // mean |d-L0|/L0 over sticks with non-zero rest length
	MaxStrain     float64
}

func (w *World) Stats() Stats {
	st := Stats{
		Tick:   w.Tick,
		Nodes:  len(w.nodes),
		Sticks: len(w.sticks),
	}
	for _, n := range w.nodes {
		if n.Locked {
			st.Locked++
			continue
		}
		v := n.Velocity.Len()
		st.KineticEnergy += 0.5 * v * v
	}

	measured := 0
	for _, s := range w.sticks {
		if s.RestLength == 0 {
			continue
		}
		a, b := w.Endpoints(s)
		strain := a.Dist(b) - s.RestLength
		if strain < 0 {
			strain = -strain
		}
		strain /= s.RestLength
		st.MeanStrain += strain
		if strain > st.MaxStrain {
			st.MaxStrain = strain
		}
		measured++
	}
	if measured > 0 {
		st.MeanStrain /= float64(measured)
	}
	return st
}

// Diverged reports whether the integration has blown up: energy or strain is
// no longer finite, or some stick is stretched past DivergenceStrain.
func (s Stats) Diverged() bool {
	if math.IsNaN(s.KineticEnergy) || math.IsInf(s.KineticEnergy, 0) {
		return true
	}
	if math.IsNaN(s.MaxStrain) || math.IsInf(s.MaxStrain, 0) {
		return true
	}
	return s.MaxStrain > DivergenceStrain
}
