package mqtt

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/uartsim/pkg/events"
)

// Topic suffixes under the simulator id.
const (
	EventsTopic = "events"
	MetaTopic   = "meta"
)

// PublishTimeout bounds waiting for a publish to be handed to the broker.
const PublishTimeout = time.Second

// Meta describes a running simulator.
type Meta struct {
	Platform string  `json:"platform"`
	Baud     float64 `json:"baud"`
	Message  string  `json:"message"`
	Divisor  uint64  `json:"divisor"`
}

// EventsTopicOf is the topic of simulator events.
func EventsTopicOf(id string) string {
	return id + "/" + EventsTopic
}

// MetaTopicOf is the topic of the retained simulator meta.
func MetaTopicOf(id string) string {
	return id + "/" + MetaTopic
}

// Publisher is a monitor.Sink publishing events of one simulator.
type Publisher struct {
	Queue *Queue
	ID    string

	metaJSON []byte
}

// NewPublisher creates a Publisher. The retained meta is cleared by the
// will if the connection drops.
func NewPublisher(brokerURL, id string, meta Meta) (*Publisher, error) {
	metaJSON, err := json.Marshal(&meta)
	if err != nil {
		return nil, err
	}
	opts, topicPrefix, err := ClientOptionsFromURL(brokerURL)
	if err != nil {
		return nil, err
	}
	opts.SetBinaryWill(topicPrefix+MetaTopicOf(id), nil, 1, true)
	if opts.ClientID == "" {
		opts.SetClientID("uartsim:" + id)
	}
	p := &Publisher{
		Queue:    NewQueue(opts, topicPrefix),
		ID:       id,
		metaJSON: metaJSON,
	}
	p.Queue.OnConnect = func(*Queue) { p.onConnected() }
	return p, nil
}

// Publish implements monitor.Sink.
func (p *Publisher) Publish(ev events.Event) error {
	data, err := events.Marshal(ev)
	if err != nil {
		return err
	}
	if !p.Queue.Client.IsConnected() {
		glog.V(2).Infof("not connected, dropped event %x", ev.TypeID())
		return nil
	}
	token := p.Queue.Pub(EventsTopicOf(p.ID), data)
	if !token.WaitTimeout(PublishTimeout) {
		return fmt.Errorf("publish %s: timeout", EventsTopicOf(p.ID))
	}
	return token.Error()
}

// Run implements Runnable.
func (p *Publisher) Run(ctx context.Context) error {
	glog.Infof("publishing to %q", p.Queue.TopicPrefix+p.ID)
	p.Queue.Connect()
	<-ctx.Done()
	p.Queue.PubWith(MetaTopicOf(p.ID), nil, 1, true).WaitTimeout(PublishTimeout)
	p.Queue.Close()
	return nil
}

func (p *Publisher) onConnected() {
	p.Queue.PubWith(MetaTopicOf(p.ID), p.metaJSON, 1, true)
}
