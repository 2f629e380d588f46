package stream

import (
	"errors"
	"net"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func dial(t *testing.T, srvURL string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srvURL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	return conn
}

func send(t *testing.T, conn *websocket.Conn, typ string, payload any) {
	t.Helper()
	b, err := Encode(typ, payload)
	if err != nil {
		t.Fatal(err)
	}
	if err := conn.WriteMessage(websocket.TextMessage, b); err != nil {
		t.Fatalf("write: %v", err)
	}
}

// readUntil reads envelopes until one has type typ.
func readUntil(t *testing.T, conn *websocket.Conn, typ string, ok func(Envelope) bool) Envelope {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			t.Fatalf("read waiting for %s: %v", typ, err)
		}
		env, err := DecodeEnvelope(msg)
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if env.T == typ && ok(env) {
			return env
		}
	}
}

func TestHandlerDrawOverWebsocket(t *testing.T) {
	r, _ := newTestRoom()
	go r.Run()
	defer r.Stop()

	srv := httptest.NewServer(Handler(r))
	defer srv.Close()

	conn := dial(t, srv.URL)
	defer conn.Close()

	send(t, conn, MsgHello, Hello{Name: "tester"})
	env := readUntil(t, conn, MsgWelcome, func(Envelope) bool { return true })
	welcome, err := DecodePayload[Welcome](env)
	if err != nil || welcome.ClientID == "" {
		t.Fatalf("Expected welcome with client id, got %+v (%v)", welcome, err)
	}

	send(t, conn, MsgPointer, PointerMsg{Kind: PointerDown, X: 100, Y: 100})
	send(t, conn, MsgPointer, PointerMsg{Kind: PointerUp, X: 100, Y: 100})
	send(t, conn, MsgPointer, PointerMsg{Kind: PointerDown, X: 200, Y: 100})
	send(t, conn, MsgPointer, PointerMsg{Kind: PointerUp, X: 200, Y: 100})
	// Chain from the first node to the second.
	send(t, conn, MsgPointer, PointerMsg{Kind: PointerDown, X: 100, Y: 100})
	send(t, conn, MsgPointer, PointerMsg{Kind: PointerDown, X: 200, Y: 100})

	readUntil(t, conn, MsgState, func(env Envelope) bool {
		st, err := DecodePayload[State](env)
		return err == nil && len(st.Nodes) == 2 && len(st.Sticks) == 1
	})
}

func TestHandlerRequiresHello(t *testing.T) {
	r, _ := newTestRoom()
	go r.Run()
	defer r.Stop()

	srv := httptest.NewServer(Handler(r))
	defer srv.Close()

	conn := dial(t, srv.URL)
	defer conn.Close()

	send(t, conn, MsgCommand, CommandMsg{Name: "clear"})
	env := readUntil(t, conn, MsgError, func(Envelope) bool { return true })
	e, _ := DecodePayload[ErrorMsg](env)
	if e.Message != "expected hello" {
		t.Errorf("Expected hello error, got %q", e.Message)
	}
}

func TestHandlerRejectsUnknownType(t *testing.T) {
	r, _ := newTestRoom()
	go r.Run()
	defer r.Stop()

	srv := httptest.NewServer(Handler(r))
	defer srv.Close()

	conn := dial(t, srv.URL)
	defer conn.Close()

	send(t, conn, MsgHello, Hello{})
	send(t, conn, "dance", Hello{})
	env := readUntil(t, conn, MsgError, func(Envelope) bool { return true })
	e, _ := DecodePayload[ErrorMsg](env)
	if !strings.Contains(e.Message, "dance") {
		t.Errorf("Expected error naming the type, got %q", e.Message)
	}
}

func TestHandlerClosesWhenRoomStopped(t *testing.T) {
	r, _ := newTestRoom()
	go r.Run()
	r.Stop()

	srv := httptest.NewServer(Handler(r))
	defer srv.Close()

	conn := dial(t, srv.URL)
	defer conn.Close()

	send(t, conn, MsgHello, Hello{Name: "late"})
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err := conn.ReadMessage()
	if err == nil {
		t.Fatal("Expected the server to close the connection")
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		t.Fatalf("Expected a close, got a timeout: %v", err)
	}
}
