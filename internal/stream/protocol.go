package stream

import (
	"encoding/json"
	"fmt"

	"springbox/internal/physics"
)

// Message types. Clients send hello, pointer, and command; the server sends
// welcome, state, and error.
const (
	MsgHello   = "hello"
	MsgPointer = "pointer"
	MsgCommand = "command"
	MsgWelcome = "welcome"
	MsgState   = "state"
	MsgError   = "error"
)

type Envelope struct {
	T string          `json:"t"`
	P json.RawMessage `json:"p"` // raw payload bytes
}

// Pointer kinds.
const (
	PointerDown = "down"
	PointerMove = "move"
	PointerUp   = "up"
)

type Hello struct {
	Name string `json:"name,omitempty"`
}

type PointerMsg struct {
	Kind     string  `json:"kind"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Modifier bool    `json:"mod,omitempty"` // locked node on placement
}

type CommandMsg struct {
	Name string `json:"name"` // an interact.Command name, e.g. "toggle-simulation"
}

type Welcome struct {
	ClientID string         `json:"clientId"`
	TickHz   int            `json:"tickHz"`
	Params   physics.Params `json:"params"`
}

type State struct {
	physics.Snapshot
	Mode   string `json:"mode"`
	Policy string `json:"policy"`
}

type ErrorMsg struct {
	Message string `json:"message"`
}

func Encode(t string, payload any) ([]byte, error) {
	if t == "" {
		return nil, fmt.Errorf("encoding envelope with empty type")
	}
	if payload == nil {
		return nil, fmt.Errorf("encoding %q with nil payload", t)
	}
	pb, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Envelope{T: t, P: pb})
}

func DecodeEnvelope(b []byte) (Envelope, error) {
	if len(b) == 0 {
		return Envelope{}, fmt.Errorf("decoding empty envelope")
	}
	var e Envelope
	if err := json.Unmarshal(b, &e); err != nil {
		return Envelope{}, err
	}
	return e, nil
}

func DecodePayload[T any](env Envelope) (T, error) {
	var out T
	if len(env.P) == 0 {
		return out, fmt.Errorf("empty payload for type %q", env.T)
	}
	err := json.Unmarshal(env.P, &out)
	return out, err
}
