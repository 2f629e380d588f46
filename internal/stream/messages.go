package stream

// Conn is the room's view of a connected client.
type Conn interface {
	Send([]byte) error
	Close() error
}

// Join is issued once after a client's hello is parsed.
type Join struct {
	Conn  Conn
	Name  string
	Reply chan<- JoinResult
}

type JoinResult struct {
	ClientID string
}

// Pointer is a pointer sample from a client.
type Pointer struct {
	ClientID string
	Msg      PointerMsg
}

// Command is a discrete command from a client.
type Command struct {
	ClientID string
	Name     string
}

// Leave is issued on disconnect.
type Leave struct {
	ClientID string
}
