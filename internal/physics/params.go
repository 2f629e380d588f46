package physics

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownPolicy = errors.New("unknown cut policy")

// Params are the tunables shared by every node and stick in a World.
type Params struct {
	Gravity        float64 `json:"gravity"`        // per-frame downward impulse
	SpringConstant float64 `json:"springConstant"` // k for newly created sticks
	Damping        float64 `json:"damping"`        // c, scale of the second spring impulse
	NodeRadius     float64 `json:"nodeRadius"`     // radius for nodes created without one
	CutThreshold   float64 `json:"cutThreshold"`   // max perpendicular pointer distance for a cut
	CutMargin      float64 `json:"cutMargin"`      // bounding-box growth on each axis for a cut
}

func DefaultParams() Params {
	return Params{
		Gravity:        0.7,
		SpringConstant: 0.05,
		Damping:        0.75,
		NodeRadius:     17,
		CutThreshold:   10,
		CutMargin:      10,
	}
}

// CutPolicy selects how many sticks a single cut sample removes.
type CutPolicy int

const (
	CutSweep   CutPolicy = iota // every stick under the pointer
	CutNearest                  // only the closest stick under the pointer
)

func (p CutPolicy) String() string {
	switch p {
	case CutSweep:
		return "sweep"
	case CutNearest:
		return "nearest"
	default:
		return "unknown"
	}
}

// ParseCutPolicy accepts the names produced by String, case-insensitively.
func ParseCutPolicy(s string) (CutPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sweep", "":
		return CutSweep, nil
	case "nearest":
		return CutNearest, nil
	}
	return CutSweep, fmt.Errorf("%w %q (want sweep or nearest)", ErrUnknownPolicy, s)
}
