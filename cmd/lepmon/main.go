// lepmon is the camera monitor daemon. It samples the camera's health
// over the control interface on an interval, publishes the snapshots
// to an MQTT broker and mirrors them to WebSocket subscribers.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/golang/glog"
	"periph.io/x/periph/conn/i2c/i2creg"
	"periph.io/x/periph/conn/physic"
	"periph.io/x/periph/host"

	"github.com/thermalview/lepton.go/pkg/bus/i2cdev"
	"github.com/thermalview/lepton.go/pkg/cci"
	"github.com/thermalview/lepton.go/pkg/clock"
	"github.com/thermalview/lepton.go/pkg/config"
	"github.com/thermalview/lepton.go/pkg/run"
	"github.com/thermalview/lepton.go/pkg/stream"
	"github.com/thermalview/lepton.go/pkg/telemetry"
)

func mainImpl() error {
	cfgPath := flag.String("config", "lepmon.yml", "configuration file")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}

	if _, err := host.Init(); err != nil {
		return err
	}
	conn, err := i2creg.Open(cfg.Camera.Bus)
	if err != nil {
		return err
	}
	defer conn.Close()
	if cfg.Camera.SpeedHz != 0 {
		if err := conn.SetSpeed(physic.Frequency(cfg.Camera.SpeedHz) * physic.Hertz); err != nil {
			return err
		}
	}

	clk := &clock.Clock{}
	dev := cci.New(i2cdev.New(conn), clk)
	dev.Addr = cfg.Camera.Address

	opts, topicPrefix, err := telemetry.ClientOptionsFromURL(cfg.Telemetry.BrokerURL)
	if err != nil {
		return err
	}
	client := paho.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return fmt.Errorf("connect broker: %w", token.Error())
	}
	defer client.Disconnect(250)

	topic := cfg.Telemetry.Topic
	if topicPrefix != "" {
		topic = topicPrefix + "/" + topic
	}

	hub := &stream.Hub{}
	pub := &telemetry.Publisher{
		Client:   client,
		Topic:    topic,
		Interval: time.Duration(cfg.Telemetry.IntervalMs) * time.Millisecond,
		Sampler: &telemetry.DeviceSampler{
			Device:    dev,
			MachineID: telemetry.MachineID(),
		},
		Mirror: hub,
	}

	glog.Infof("publishing to %s every %dms", topic, cfg.Telemetry.IntervalMs)
	return run.NewRunner().
		HandleSignals().
		Go(
			run.NamedRun("clock", &clock.Ticker{Clock: clk}),
			run.NamedRun("telemetry", pub),
			run.NamedRun("stream", &stream.Server{Addr: cfg.Stream.Listen, Hub: hub}),
		).
		Wait()
}

func main() {
	if err := mainImpl(); err != nil {
		fmt.Fprintf(os.Stderr, "lepmon: %s\n", err)
		os.Exit(1)
	}
}
