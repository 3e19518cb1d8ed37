package websocket

import (
	"golang.org/x/net/websocket"

	"github.com/robotalks/uartsim/pkg/events"
)

// Conn reads events from a Server.
type Conn websocket.Conn

// Dial connects to the events endpoint, e.g. ws://localhost:8080/events.
func Dial(url string) (*Conn, error) {
	conn, err := websocket.Dial(url, "", "http://localhost/")
	if err != nil {
		return nil, err
	}
	return (*Conn)(conn), nil
}

// ReadEvent receives the next event.
func (c *Conn) ReadEvent() (events.Event, error) {
	var data []byte
	if err := websocket.Message.Receive((*websocket.Conn)(c), &data); err != nil {
		return nil, err
	}
	return events.Unmarshal(data)
}

// Close implements io.Closer.
func (c *Conn) Close() error {
	return (*websocket.Conn)(c).Close()
}
