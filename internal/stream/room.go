package stream

import (
	"fmt"
	"log"
	"time"

	"springbox/internal/geom"
	"springbox/internal/interact"
	"springbox/internal/physics"
)

// Room owns one World and its Controller. Every mutation happens on the
// goroutine running Run; connections only talk to it through Inbox.
type Room struct {
	Inbox chan any

	world          *physics.World
	controller     *interact.Controller
	clients        map[string]Conn
	tickHz         int
	broadcastEvery int
	ticks          int
	nextID         int
	quit           chan struct{}
	done           chan struct{}
}

func NewRoom(c *interact.Controller, tickHz, broadcastHz int) *Room {
	if tickHz <= 0 {
		tickHz = 60
	}
	broadcastEvery := 1
	if broadcastHz > 0 {
		broadcastEvery = tickHz / broadcastHz
	}
	if broadcastEvery <= 0 {
		broadcastEvery = 1
	}
	return &Room{
		Inbox:          make(chan any, 256),
		world:          c.World,
		controller:     c,
		clients:        make(map[string]Conn),
		tickHz:         tickHz,
		broadcastEvery: broadcastEvery,
		nextID:         1,
		quit:           make(chan struct{}),
		done:           make(chan struct{}),
	}
}

// send delivers msg to the room's inbox. It reports false once Run has
// returned, so connections never block on a stopped room.
func (r *Room) send(msg any) bool {
	select {
	case r.Inbox <- msg:
		return true
	case <-r.done:
		return false
	}
}

// join registers c and waits for its client id.
func (r *Room) join(c Conn, name string) (string, bool) {
	reply := make(chan JoinResult, 1)
	if !r.send(Join{Conn: c, Name: name, Reply: reply}) {
		return "", false
	}
	select {
	case res := <-reply:
		return res.ClientID, true
	case <-r.done:
		return "", false
	}
}

// Stop ends Run and waits for it to return.
func (r *Room) Stop() {
	close(r.quit)
	<-r.done
}

func (r *Room) Run() {
	defer close(r.done)

	ticker := time.NewTicker(time.Second / time.Duration(r.tickHz))
	defer ticker.Stop()

	for {
		select {
		case <-r.quit:
			for id := range r.clients {
				r.removeClient(id)
			}
			return
		case cmd := <-r.Inbox:
			r.handleCommand(cmd)
		case <-ticker.C:
			r.controller.Frame(r.controller.Pointer())
			r.ticks++
			if r.ticks%r.broadcastEvery == 0 {
				r.broadcastState()
			}
		}
	}
}

func (r *Room) handleCommand(cmd any) {
	switch c := cmd.(type) {
	case Join:
		id := fmt.Sprintf("c%d", r.nextID)
		r.nextID++
		r.clients[id] = c.Conn
		log.Printf("Stream: %s joined as %s", nameOr(c.Name, "anonymous"), id)

		if b, err := Encode(MsgWelcome, Welcome{ClientID: id, TickHz: r.tickHz, Params: r.world.Params}); err == nil {
			_ = c.Conn.Send(b)
		}
		r.sendStateTo(c.Conn)
		c.Reply <- JoinResult{ClientID: id}
	case Pointer:
		if _, ok := r.clients[c.ClientID]; !ok {
			return
		}
		r.applyPointer(c.ClientID, c.Msg)
	case Command:
		conn, ok := r.clients[c.ClientID]
		if !ok {
			return
		}
		parsed, ok := interact.ParseCommand(c.Name)
		if !ok {
			r.sendError(conn, fmt.Sprintf("unknown command %q", c.Name))
			return
		}
		r.controller.Exec(parsed)
	case Leave:
		if _, ok := r.clients[c.ClientID]; ok {
			log.Printf("Stream: %s left", c.ClientID)
			r.removeClient(c.ClientID)
		}
	}
}

func (r *Room) applyPointer(id string, m PointerMsg) {
	p := geom.V(m.X, m.Y)
	if !p.IsFinite() {
		return
	}
	switch m.Kind {
	case PointerDown:
		r.controller.PointerDown(p, m.Modifier)
	case PointerMove:
		r.controller.PointerMove(p)
	case PointerUp:
		r.controller.PointerUp(p)
	default:
		r.sendError(r.clients[id], fmt.Sprintf("unknown pointer kind %q", m.Kind))
	}
}

func (r *Room) removeClient(id string) {
	if c, ok := r.clients[id]; ok {
		_ = c.Close()
	}
	delete(r.clients, id)
}

func (r *Room) buildState() State {
	return State{
		Snapshot: r.world.Snapshot(),
		Mode:     r.controller.Mode().String(),
		Policy:   r.controller.Policy.String(),
	}
}

func (r *Room) broadcastState() {
	if len(r.clients) == 0 {
		return
	}
	b, err := Encode(MsgState, r.buildState())
	if err != nil {
		log.Printf("Stream: encoding state: %v", err)
		return
	}

	var failed []string
	for id, c := range r.clients {
		if err := c.Send(b); err != nil {
			failed = append(failed, id)
		}
	}
	for _, id := range failed {
		r.removeClient(id)
	}
}

func (r *Room) sendStateTo(c Conn) {
	b, err := Encode(MsgState, r.buildState())
	if err != nil {
		return
	}
	_ = c.Send(b)
}

func (r *Room) sendError(c Conn, msg string) {
	if c != nil {
		sendError(c, msg)
	}
}

func nameOr(name, fallback string) string {
	if name == "" {
		return fallback
	}
	return name
}
