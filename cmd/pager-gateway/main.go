package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	gatewayapp "github.com/10Narratives/pager/internal/app/gateway"
	configutils "github.com/10Narratives/pager/pkg/config"
	errorutils "github.com/10Narratives/pager/pkg/errors"
	logutils "github.com/10Narratives/pager/pkg/logging"
)

func main() {
	path := flag.String("config", "", "path to configuration file")
	env := flag.String("env", "", "launch environment")
	level := flag.String("log-level", "", "log level override")
	envHelp := flag.Bool("env-help", false, "print supported environment variables and exit")

	flag.Parse()

	if *envHelp {
		fmt.Fprintln(os.Stdout, errorutils.Must(configutils.Usage[gatewayapp.Config]("pager-gateway environment:")))
		return
	}

	cfg := errorutils.Must(configutils.Read[gatewayapp.Config](*path))
	log := errorutils.Must(logutils.NewLogger(*env, *level))
	defer func() { _ = log.Sync() }()

	app := errorutils.Must(gatewayapp.NewApp(cfg, log))

	log.Info("starting pager-gateway application")
	startupContext, startupCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	errorutils.Try(app.Startup(startupContext))

	<-startupContext.Done()
	startupCancel()

	log.Info("stopping pager-gateway application")
	shutdownContext, shutdownCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	errorutils.Try(app.Shutdown(shutdownContext))

	shutdownCancel()
}
