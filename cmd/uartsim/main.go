package main

//go-build: CGO_ENABLED=0

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/golang/glog"

	fx "github.com/robotalks/uartsim/pkg/framework"
	"github.com/robotalks/uartsim/pkg/monitor"
	"github.com/robotalks/uartsim/pkg/monitor/mqtt"
	"github.com/robotalks/uartsim/pkg/monitor/serial"
	"github.com/robotalks/uartsim/pkg/monitor/websocket"
	"github.com/robotalks/uartsim/pkg/sim"
	"github.com/robotalks/uartsim/pkg/top"
	"github.com/robotalks/uartsim/pkg/vcd"
)

var (
	vcdFile  string
	realtime bool
	speed    = 1e-3
	wsAddr   string
)

func init() {
	top.SetupFlags()
	sim.SetupFlags()
	mqtt.SetupFlags()
	serial.SetupFlags()
	flag.StringVar(&vcdFile, "vcd", vcdFile, "Write waveforms to a VCD file.")
	flag.BoolVar(&realtime, "realtime", realtime, "Pace the simulation in wall-clock time.")
	flag.Float64Var(&speed, "speed", speed, "Simulated seconds per wall second with -realtime.")
	flag.StringVar(&wsAddr, "ws", wsAddr, "Serve events over websocket on this address.")
}

func main() {
	flag.Parse()
	defer glog.Flush()

	topConf, simConf := top.NewConfig(), sim.NewConfig()
	design, err := topConf.NewTop()
	if err != nil {
		log.Fatalln(err)
	}
	s, err := simConf.NewSim(design)
	if err != nil {
		log.Fatalln(err)
	}
	var rec monitor.Recorder
	mon := monitor.ForTop(design, &rec)
	s.Subscribe(mon)

	var outlets []fx.Runnable

	var waves *vcd.Writer
	if vcdFile != "" {
		f, err := os.Create(vcdFile)
		if err != nil {
			log.Fatalln(err)
		}
		defer f.Close()
		waves = vcd.NewWriter(f, design.Clock(), design.Probes())
		s.Subscribe(sim.DumpTo(waves))
	}

	if conf := mqtt.NewConfig(); conf.Enabled() {
		pub, err := conf.NewPublisher(mqtt.Meta{
			Platform: topConf.Platform,
			Baud:     topConf.Baud,
			Message:  string(design.Message()),
			Divisor:  design.Divisor(),
		})
		if err != nil {
			log.Fatalln(err)
		}
		mon.AddSink(pub)
		outlets = append(outlets, fx.NamedRun("mqtt", pub))
	}

	if wsAddr != "" {
		server := websocket.NewServer(wsAddr)
		mon.AddSink(server)
		outlets = append(outlets, fx.NamedRun("websocket", server))
	}

	if conf := serial.NewConfig(); conf.Enabled() {
		bridge, err := conf.Open()
		if err != nil {
			log.Fatalln(err)
		}
		mon.AddSink(bridge)
		s.Stimulus = bridge.Stimulus(design.Divisor())
		outlets = append(outlets, fx.NamedRun("serial", bridge))
	}

	runner := fx.NewRunner().HandleSignals()
	if realtime {
		ctl := sim.NewController(s)
		ctl.Speed, ctl.MaxCycles, ctl.StopWhenDone = speed, simConf.Cycles, simConf.UntilDone
		loop := fx.NewLoop().Add(ctl).AddRunnable(outlets...)
		runner.Go(fx.NamedRun("loop", loop))
	} else {
		batch := fx.NewRunnerWith(runner.Context).Go(outlets...)
		runner.Go(fx.NamedRun("batch", fx.RunFunc(func(ctx context.Context) error {
			var n uint64
			var err error
			if simConf.UntilDone {
				n, err = s.RunUntilDone(ctx, simConf.Cycles)
			} else {
				n, err = s.Run(ctx, simConf.Cycles)
			}
			glog.Infof("simulated %d cycles", n)
			if werr := batch.Shutdown(); err == nil {
				err = werr
			}
			return err
		})))
	}
	err = runner.Wait()

	if waves != nil {
		if ferr := waves.Flush(); ferr != nil && err == nil {
			err = ferr
		}
	}
	fmt.Printf("cycle %d: decoded %q\n", s.Cycle(), rec.Bytes())
	if err != nil && err != context.Canceled {
		log.Fatalln(err)
	}
}
