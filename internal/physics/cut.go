package physics

import "springbox/internal/geom"

type cutHit struct {
	stick *Stick
	dist  float64
}

// cutHits returns every stick under p: within CutThreshold of the line
// through its endpoints and inside their bounds grown by CutMargin.
func (w *World) cutHits(p geom.Vec2) []cutHit {
	var hits []cutHit
	for _, s := range w.sticks {
		a, b := w.Endpoints(s)
		if d, ok := geom.NearSegment(a, b, p, w.Params.CutThreshold, w.Params.CutMargin); ok {
			hits = append(hits, cutHit{stick: s, dist: d})
		}
	}
	return hits
}

// StickAt returns the stick nearest to p among those a cut at p would hit.
func (w *World) StickAt(p geom.Vec2) *Stick {
	var best *Stick
	bestDist := 0.0
	for _, h := range w.cutHits(p) {
		if best == nil || h.dist < bestDist {
			best, bestDist = h.stick, h.dist
		}
	}
	return best
}

// Cut removes sticks under p according to policy and returns them in the
// order they were removed. Hits are collected before anything is removed, so
// removal cannot cause a neighbouring stick to be skipped.
func (w *World) Cut(p geom.Vec2, policy CutPolicy) []*Stick {
	var victims []*Stick
	switch policy {
	case CutNearest:
		if s := w.StickAt(p); s != nil {
			victims = append(victims, s)
		}
	default:
		for _, h := range w.cutHits(p) {
			victims = append(victims, h.stick)
		}
	}

	removed := victims[:0]
	for _, s := range victims {
		if w.RemoveStick(s) {
			removed = append(removed, s)
			w.Events.StickCut.Invoke(s)
		}
	}
	return removed
}
