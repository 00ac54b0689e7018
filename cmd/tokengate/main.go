package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/The127/ioc"
	"github.com/avast/retry-go"
	"github.com/tokengate-project/tokengate/internal/args"
	"github.com/tokengate-project/tokengate/internal/config"
	"github.com/tokengate-project/tokengate/internal/logging"
	"github.com/tokengate-project/tokengate/internal/server"
	"github.com/tokengate-project/tokengate/internal/services/clock"
	"github.com/tokengate-project/tokengate/internal/setup"
)

func main() {
	args.Init()
	logging.Init()
	config.Init()

	dc := ioc.NewDependencyCollection()

	ioc.RegisterSingleton(dc, func(_ *ioc.DependencyProvider) clock.Service {
		return clock.NewClockService()
	})

	database := setup.Database(dc, config.C.Database)

	err := retry.Do(
		func() error {
			return database.Migrate()
		},
		retry.Attempts(5),
		retry.Delay(time.Second*5),
		retry.DelayType(retry.FixedDelay),
		retry.OnRetry(func(n uint, err error) {
			logging.Logger.Warnf("failed to migrate database: %s, retrying in 5 seconds", err)
		}),
	)
	if err != nil {
		logging.Logger.Panicf("failed to migrate database: %s", err)
	}

	setup.Kv(dc, config.C.Kv)
	setup.Revocation(dc, config.C.Revocation)
	setup.Verifier(dc, config.C.Verifier)
	setup.Mediator(dc)

	dp := dc.BuildProvider()

	server.Serve(dp, config.C.Server, config.C.Bearer)
	waitForExit()
}

func waitForExit() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c
}
