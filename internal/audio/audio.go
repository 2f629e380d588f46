package audio

import (
	"log"
	"sync"

	rl "github.com/gen2brain/raylib-go/raylib"

	"springbox/internal/config"
	"springbox/internal/physics"
)

// Cue identifies one of the feedback sounds.
type Cue int

const (
	CuePop Cue = iota
	CueFixedPop
	CueRope
	CueCut
)

func (c Cue) String() string {
	switch c {
	case CuePop:
		return "pop"
	case CueFixedPop:
		return "fixedPop"
	case CueRope:
		return "rope"
	case CueCut:
		return "cut"
	default:
		return "unknown"
	}
}

// Manager plays short cues in response to world events. Sounds are panned by
// the horizontal position of whatever triggered them.
type Manager struct {
	mu      sync.Mutex
	sounds  map[Cue]rl.Sound
	gate    *throttle
	volume  float32
	width   float64
	enabled bool
	device  bool
}

// NewManager opens the audio device and loads every configured cue. A cue
// whose file is missing or unreadable is disabled on its own; the others still
// play. When cfg.Enabled is false no device is opened.
func NewManager(cfg config.AudioConfig, width float64) *Manager {
	m := &Manager{
		sounds:  make(map[Cue]rl.Sound),
		gate:    newThrottle(cfg.CutCooldown),
		volume:  cfg.Volume,
		width:   width,
		enabled: cfg.Enabled,
	}
	if !cfg.Enabled {
		return m
	}

	rl.InitAudioDevice()
	m.device = true

	paths := map[Cue]string{
		CuePop:      cfg.Pop,
		CueFixedPop: cfg.FixedPop,
		CueRope:     cfg.Rope,
		CueCut:      cfg.Cut,
	}
	for cue, path := range paths {
		if path == "" {
			continue
		}
		sound := rl.LoadSound(path)
		if !rl.IsSoundValid(sound) {
			log.Printf("Audio: %s disabled, could not load %s", cue, path)
			continue
		}
		m.sounds[cue] = sound
		log.Printf("Audio: loaded %s from %s", cue, path)
	}
	return m
}

// Bind subscribes the manager to w's events and returns a function that
// removes every subscription.
func (m *Manager) Bind(w *physics.World) (unbind func()) {
	removers := []func(){
		w.Events.NodeAdded.AddListener(func(n *physics.Node) {
			cue := CuePop
			if n.Locked {
				cue = CueFixedPop
			}
			m.Play(cue, n.Position.X)
		}),
		w.Events.StickAdded.AddListener(func(s *physics.Stick) {
			a, b := w.Endpoints(s)
			m.Play(CueRope, (a.X+b.X)/2)
		}),
		w.Events.StickCut.AddListener(func(s *physics.Stick) {
			a, b := w.Endpoints(s)
			m.Play(CueCut, (a.X+b.X)/2)
		}),
	}
	return func() {
		for _, remove := range removers {
			remove()
		}
	}
}

// SetWidth updates the width used for panning, e.g. after a window resize.
func (m *Manager) SetWidth(width float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.width = width
}

// Play plays cue panned to x. Missing cues are silently skipped.
func (m *Manager) Play(cue Cue, x float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.enabled {
		return
	}
	sound, ok := m.sounds[cue]
	if !ok {
		return
	}
	if !m.gate.allow(cue, rl.GetTime()) {
		return
	}

	rl.SetSoundVolume(sound, m.volume)
	rl.SetSoundPan(sound, Pan(x, m.width))
	rl.PlaySound(sound)
}

// Close unloads every sound and shuts the device down.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for cue, sound := range m.sounds {
		rl.UnloadSound(sound)
		delete(m.sounds, cue)
	}
	if m.device {
		rl.CloseAudioDevice()
		m.device = false
	}
}

// Pan maps x across [0, width] to raylib's pan range where 0 is full left,
// 0.5 centre, and 1 full right.
func Pan(x, width float64) float32 {
	if width <= 0 {
		return 0.5
	}
	pan := x / width
	if pan < 0 {
		pan = 0
	} else if pan > 1 {
		pan = 1
	}
	return float32(pan)
}

// throttle limits how often the cut cue can repeat. A sweep through a cloth
// removes many sticks in one frame and should sound like one cut.
type throttle struct {
	cooldown float64
	last     map[Cue]float64
}

func newThrottle(cooldown float64) *throttle {
	return &throttle{cooldown: cooldown, last: make(map[Cue]float64)}
}

func (t *throttle) allow(cue Cue, now float64) bool {
	if cue != CueCut || t.cooldown <= 0 {
		return true
	}
	if last, ok := t.last[cue]; ok && now-last < t.cooldown {
		return false
	}
	t.last[cue] = now
	return true
}
