package stream

import (
	"testing"

	"springbox/internal/geom"
	"springbox/internal/physics"
)

func TestEncodeDecode(t *testing.T) {
	b, err := Encode(MsgPointer, PointerMsg{Kind: PointerDown, X: 10, Y: 20, Modifier: true})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	env, err := DecodeEnvelope(b)
	if err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if env.T != MsgPointer {
		t.Errorf("Expected type %q, got %q", MsgPointer, env.T)
	}
	p, err := DecodePayload[PointerMsg](env)
	if err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if p.Kind != PointerDown || p.X != 10 || p.Y != 20 || !p.Modifier {
		t.Errorf("Expected pointer down at (10,20) with modifier, got %+v", p)
	}
}

func TestEncodeRejectsEmpty(t *testing.T) {
	if _, err := Encode("", Hello{}); err == nil {
		t.Error("Expected error for empty type")
	}
	if _, err := Encode(MsgHello, nil); err == nil {
		t.Error("Expected error for nil payload")
	}
}

func TestDecodeErrors(t *testing.T) {
	if _, err := DecodeEnvelope(nil); err == nil {
		t.Error("Expected error for empty bytes")
	}
	if _, err := DecodeEnvelope([]byte("{not json")); err == nil {
		t.Error("Expected error for malformed json")
	}
	if _, err := DecodePayload[Hello](Envelope{T: MsgHello}); err == nil {
		t.Error("Expected error for missing payload")
	}
}

func TestStateFlattensSnapshot(t *testing.T) {
	w := physics.NewWorld(physics.DefaultParams())
	w.AddNode(geom.V(1, 2), true, 0)

	b, err := Encode(MsgState, State{Snapshot: w.Snapshot(), Mode: "DRAW", Policy: "sweep"})
	if err != nil {
		t.Fatal(err)
	}
	env, _ := DecodeEnvelope(b)
	st, err := DecodePayload[State](env)
	if err != nil {
		t.Fatal(err)
	}
	if len(st.Nodes) != 1 || !st.Nodes[0].Locked || st.Mode != "DRAW" {
		t.Errorf("Expected one locked node in DRAW mode, got %+v", st)
	}
}
