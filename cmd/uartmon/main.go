package main

import (
	"context"
	"flag"
	"log"
	"reflect"

	"github.com/robotalks/uartsim/pkg/events"
	fx "github.com/robotalks/uartsim/pkg/framework"
	"github.com/robotalks/uartsim/pkg/monitor/mqtt"
	"github.com/robotalks/uartsim/pkg/monitor/websocket"
)

var wsURL string

func init() {
	mqtt.SetupFlags()
	flag.StringVar(&wsURL, "ws", wsURL, "Read events from a websocket URL instead, e.g. ws://localhost:8080/events.")
}

func printEvent(id string, ev events.Event) {
	if d, ok := ev.(events.Describer); ok {
		log.Printf("%s: %s", id, d.Describe())
		return
	}
	log.Printf("%s: [%s] %s", id,
		reflect.Indirect(reflect.ValueOf(ev)).Type().Name(),
		ev.Serializable().String())
}

func watchWebsocket(ctx context.Context) error {
	conn, err := websocket.Dial(wsURL)
	if err != nil {
		return err
	}
	return fx.RunWithContextCloser(ctx, conn, func() error {
		for {
			ev, err := conn.ReadEvent()
			if err != nil {
				return err
			}
			printEvent(wsURL, ev)
		}
	})
}

func main() {
	flag.Parse()
	log.SetFlags(log.Lmicroseconds)

	runner := fx.NewRunner().HandleSignals()
	if wsURL != "" {
		runner.Go(fx.RunFunc(watchWebsocket))
	} else {
		conf := mqtt.NewConfig()
		if !conf.Enabled() {
			conf.URL = "mqtt://localhost:1883/uartsim/"
		}
		w, err := mqtt.NewWatcher(conf.URL, func(id string, ev events.Event, meta *mqtt.Meta, err error) {
			switch {
			case err != nil:
				log.Printf("%s: bad message: %v", id, err)
			case ev != nil:
				printEvent(id, ev)
			case meta != nil:
				log.Printf("%s: %s at %v baud sending %q", id, meta.Platform, meta.Baud, meta.Message)
			default:
				log.Printf("%s: gone", id)
			}
		})
		if err != nil {
			log.Fatalln(err)
		}
		runner.Go(w)
	}
	if err := runner.Wait(); err != nil {
		log.Fatalln(err)
	}
}
