package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/viper"
	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/iotaledger/migration-address/packages/converter"
	"github.com/iotaledger/migration-address/packages/metrics"
	"github.com/iotaledger/migration-address/plugins"
	"github.com/iotaledger/migration-address/plugins/banner"
	"github.com/iotaledger/migration-address/plugins/cli"
	"github.com/iotaledger/migration-address/plugins/config"
	"github.com/iotaledger/migration-address/plugins/dependencyinjection"
	"github.com/iotaledger/migration-address/plugins/prometheus"
	"github.com/iotaledger/migration-address/plugins/webapi"
	"github.com/iotaledger/migration-address/plugins/webapi/healthz"
	"github.com/iotaledger/migration-address/plugins/webapi/info"
	webapimigration "github.com/iotaledger/migration-address/plugins/webapi/migration"
)

type dependencies struct {
	dig.In

	Log                  *zap.SugaredLogger
	Converter            *converter.Converter
	Metrics              *metrics.ConversionMetrics
	Server               *webapi.Server
	Healthz              *healthz.Healthz
	Endpoint             *webapimigration.Endpoint
	Exporter             *prometheus.Exporter
	PrometheusParameters *prometheus.Parameters
}

func main() {
	nodeConfig, err := config.Load()
	if err != nil {
		// the logger is not initialized at this stage
		fmt.Println(err.Error())
		fmt.Println("no config file present, terminating. please use the provided config.default.json to create a config.json or start with --skip-config.")
		os.Exit(1)
	}
	if cli.PrintVersion() {
		return
	}

	container := dependencyinjection.Container
	if err := container.Provide(func() *viper.Viper { return nodeConfig }); err != nil {
		panic(err)
	}
	if err := dependencyinjection.Provide(container, plugins.Core...); err != nil {
		panic(err)
	}
	if err := dependencyinjection.Provide(container, plugins.WebAPI...); err != nil {
		panic(err)
	}

	if err := container.Invoke(run); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func run(deps dependencies) {
	log := deps.Log.Named("Node")
	defer func() {
		_ = deps.Log.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps.Healthz.Register(deps.Server.Echo())
	info.Register(deps.Server.Echo(), deps.Converter, deps.Metrics, deps.Endpoint)
	deps.Endpoint.Register(deps.Server.Echo())

	// the node shuts down as soon as one of its servers stops
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer stop()
		deps.Server.Run(ctx)
	}()
	if deps.PrometheusParameters.Enabled {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer stop()
			deps.Exporter.Run(ctx)
		}()
	}

	deps.Healthz.SetHealthy(true)
	log.Infof("%s %s started", banner.AppName, banner.AppVersion)

	<-ctx.Done()
	deps.Healthz.SetHealthy(false)
	log.Info("Shutting down ...")

	wg.Wait()
	deps.Endpoint.Shutdown()
	log.Info("Shutting down ... done")
}
