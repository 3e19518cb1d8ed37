package mqtt

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/robotalks/uartsim/pkg/events"
)

// WatchHandler receives what a Watcher sees: an event, a meta update or a
// decoding error. All three are nil when a simulator goes away.
type WatchHandler func(id string, ev events.Event, meta *Meta, err error)

// Watcher subscribes to the events and meta of every simulator.
type Watcher struct {
	Queue   *Queue
	Handler WatchHandler
}

// NewWatcher creates a Watcher.
func NewWatcher(brokerURL string, handler WatchHandler) (*Watcher, error) {
	q, err := NewQueueFromURL(brokerURL)
	if err != nil {
		return nil, err
	}
	return &Watcher{Queue: q, Handler: handler}, nil
}

// Run implements Runnable.
func (w *Watcher) Run(ctx context.Context) error {
	sub := w.Queue.Sub("#", w.handle)
	defer sub.Close()
	token := w.Queue.Connect()
	token.Wait()
	if err := token.Error(); err != nil {
		return err
	}
	<-ctx.Done()
	w.Queue.Close()
	return nil
}

func (w *Watcher) handle(topic string, payload []byte) {
	w.Dispatch(topic, payload)
}

// Dispatch decodes a message received on topic, relative to the prefix.
// Topics not following the simulator conventions are ignored.
func (w *Watcher) Dispatch(topic string, payload []byte) {
	pos := strings.LastIndex(topic, "/")
	if pos <= 0 {
		return
	}
	id := topic[:pos]
	switch topic[pos+1:] {
	case MetaTopic:
		if len(payload) == 0 {
			w.Handler(id, nil, nil, nil)
			return
		}
		var meta Meta
		if err := json.Unmarshal(payload, &meta); err != nil {
			w.Handler(id, nil, nil, err)
			return
		}
		w.Handler(id, nil, &meta, nil)
	case EventsTopic:
		ev, err := events.Unmarshal(payload)
		w.Handler(id, ev, nil, err)
	}
}
