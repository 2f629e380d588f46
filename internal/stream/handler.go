package stream

import (
	"context"
	"errors"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	readTimeout  = 60 * time.Second
	writeTimeout = 10 * time.Second
	pingPeriod   = 25 * time.Second
	maxMessage   = 1 << 16
)

var upgrader = websocket.Upgrader{
	// Local sandbox; any origin may connect.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsConn serialises writes to a websocket connection. gorilla allows one
// concurrent writer, and both the room and the ping loop write.
type wsConn struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *wsConn) Send(b []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return c.conn.WriteMessage(websocket.TextMessage, b)
}

func (c *wsConn) ping() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return c.conn.WriteMessage(websocket.PingMessage, nil)
}

func (c *wsConn) Close() error {
	return c.conn.Close()
}

// Handler upgrades requests to websockets and feeds them into room. The first
// message from a client must be a hello.
func Handler(room *Room) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("Stream: upgrade:", err)
			return
		}
		serveConn(room, &wsConn{conn: conn})
	})
}

func serveConn(room *Room, c *wsConn) {
	defer c.Close()

	c.conn.SetReadLimit(maxMessage)
	_ = c.conn.SetReadDeadline(time.Now().Add(readTimeout))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(readTimeout))
	})

	_, msg, err := c.conn.ReadMessage()
	if err != nil {
		return
	}
	env, err := DecodeEnvelope(msg)
	if err != nil || env.T != MsgHello {
		sendError(c, "expected hello")
		return
	}
	hello, _ := DecodePayload[Hello](env)

	id, ok := room.join(c, hello.Name)
	if !ok {
		return
	}
	defer room.send(Leave{ClientID: id})

	done := make(chan struct{})
	defer close(done)
	go func() {
		ticker := time.NewTicker(pingPeriod)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := c.ping(); err != nil {
					return
				}
			case <-done:
				return
			}
		}
	}()

	for {
		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Println("Stream: read:", err)
			}
			return
		}
		env, err := DecodeEnvelope(msg)
		if err != nil {
			sendError(c, err.Error())
			continue
		}
		switch env.T {
		case MsgPointer:
			p, err := DecodePayload[PointerMsg](env)
			if err != nil {
				sendError(c, err.Error())
				continue
			}
			if !room.send(Pointer{ClientID: id, Msg: p}) {
				return
			}
		case MsgCommand:
			cmd, err := DecodePayload[CommandMsg](env)
			if err != nil {
				sendError(c, err.Error())
				continue
			}
			if !room.send(Command{ClientID: id, Name: cmd.Name}) {
				return
			}
		default:
			sendError(c, "unexpected message type "+env.T)
		}
	}
}

func sendError(c Conn, msg string) {
	if b, err := Encode(MsgError, ErrorMsg{Message: msg}); err == nil {
		_ = c.Send(b)
	}
}

// Serve runs the room and an HTTP server exposing it at /ws until ctx is
// cancelled.
func Serve(ctx context.Context, addr string, room *Room) error {
	mux := http.NewServeMux()
	mux.Handle("/ws", Handler(room))

	srv := &http.Server{Addr: addr, Handler: mux}

	go room.Run()
	defer room.Stop()

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Stream: listening on %s (ws endpoint: /ws)", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
