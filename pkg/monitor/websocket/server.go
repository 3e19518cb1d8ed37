// Package websocket streams simulation events to websocket clients.
package websocket

import (
	"context"
	"net"
	"net/http"
	"sync"

	"github.com/golang/glog"
	"golang.org/x/net/websocket"

	"github.com/robotalks/uartsim/pkg/events"
	fx "github.com/robotalks/uartsim/pkg/framework"
)

// EventsPath is where clients connect.
const EventsPath = "/events"

// ClientQueueSize is the number of payloads buffered per client. Payloads
// to a client with a full queue are dropped.
const ClientQueueSize = 256

type client struct {
	conn   *websocket.Conn
	sendCh chan []byte
}

// Server is a monitor.Sink broadcasting events to every connected client.
type Server struct {
	Addr string

	lock    sync.RWMutex
	clients map[*client]struct{}
}

// NewServer creates a Server listening on addr when run.
func NewServer(addr string) *Server {
	return &Server{Addr: addr, clients: make(map[*client]struct{})}
}

// Handler serves the websocket endpoint.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle(EventsPath, websocket.Handler(s.serve))
	return mux
}

// Clients is the number of connected clients.
func (s *Server) Clients() int {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return len(s.clients)
}

// Publish implements monitor.Sink.
func (s *Server) Publish(ev events.Event) error {
	data, err := events.Marshal(ev)
	if err != nil {
		return err
	}
	s.lock.RLock()
	defer s.lock.RUnlock()
	for c := range s.clients {
		select {
		case c.sendCh <- data:
		default:
			glog.Warningf("client %s too slow, event dropped", c.conn.Request().RemoteAddr)
		}
	}
	return nil
}

// Run implements Runnable.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	glog.Infof("websocket listening on %s%s", ln.Addr(), EventsPath)
	server := &http.Server{Handler: s.Handler()}
	return fx.RunWithContextCloser(ctx, server, func() error {
		if err := server.Serve(ln); err != http.ErrServerClosed {
			return err
		}
		return nil
	})
}

func (s *Server) serve(conn *websocket.Conn) {
	conn.PayloadType = websocket.BinaryFrame
	c := &client{conn: conn, sendCh: make(chan []byte, ClientQueueSize)}
	s.lock.Lock()
	s.clients[c] = struct{}{}
	s.lock.Unlock()
	glog.V(2).Infof("client %s connected", conn.Request().RemoteAddr)

	closeCh := make(chan struct{})
	go func() {
		// clients aren't expected to send, reading detects disconnection.
		var discard []byte
		for websocket.Message.Receive(conn, &discard) == nil {
		}
		close(closeCh)
	}()

	func() {
		for {
			select {
			case data := <-c.sendCh:
				if err := websocket.Message.Send(conn, data); err != nil {
					glog.V(2).Infof("client %s send error: %v", conn.Request().RemoteAddr, err)
					return
				}
			case <-closeCh:
				return
			}
		}
	}()

	s.lock.Lock()
	delete(s.clients, c)
	s.lock.Unlock()
	glog.V(2).Infof("client %s disconnected", conn.Request().RemoteAddr)
}
