// Package server runs the development record-keeping service: an in-memory
// store behind the HTTP API the client talks to.
package server

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/artlog/internal/logging"
	"github.com/dmitrijs2005/artlog/internal/server/config"
	"github.com/dmitrijs2005/artlog/internal/server/httpapi"
	"github.com/dmitrijs2005/artlog/internal/server/store"
)

type App struct {
	config *config.Config
	logger logging.Logger
	store  *store.Store
}

func NewApp(c *config.Config) *App {
	logger := logging.New(c.LogLevel, c.LogFormat, os.Stdout)
	return &App{config: c, logger: logger, store: store.New()}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := httpapi.NewServer(app.config.EndpointAddr, app.store, app.logger)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run blocks until ctx is cancelled or a termination signal arrives.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()
}
