package main

//go-build: CGO_ENABLED=0

import (
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"os/signal"

	"github.com/golang/glog"

	"github.com/robotalks/dbgout/pkg/env"
	"github.com/robotalks/dbgout/pkg/trace"
	"github.com/robotalks/dbgout/pkg/trace/mqtt"
)

func init() {
	env.SetupFlags()
}

func main() {
	flag.Parse()
	defer glog.Flush()

	conf := env.MustLoad()
	link := conf.MustOpenTransport()
	defer link.Close()

	handlers := trace.Handlers{trace.LogHandler{}}
	if conf.MQTTBrokerURL != "" {
		pub, err := mqtt.NewPublisher(conf.MQTTBrokerURL, trace.NewOrigin(conf.Source))
		if err != nil {
			glog.Exitf("mqtt: %v", err)
		}
		if err = pub.Connect(); err != nil {
			glog.Exitf("mqtt connect %s: %v", conf.MQTTBrokerURL, err)
		}
		defer pub.Close()
		handlers = append(handlers, pub)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	mon := trace.NewMonitor(link, handlers)
	mon.Timeout = conf.Timeout
	err := mon.Run(ctx)
	stats := mon.Stats()
	glog.Infof("monitor stopped: %d bytes, %d halts", stats.Bytes, stats.Count(trace.KindHalt))
	if err != nil && !errors.Is(err, context.Canceled) && err != io.EOF {
		glog.Errorf("monitor: %v", err)
	}
}
