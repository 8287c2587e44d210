package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/castlegate/frontier/client/control"
	"github.com/castlegate/frontier/client/network"
	"github.com/castlegate/frontier/client/ui"
	"github.com/castlegate/frontier/pkg/api"
	"github.com/castlegate/frontier/pkg/config"
	"github.com/castlegate/frontier/pkg/game/store"
	"github.com/castlegate/frontier/pkg/journal"
	"github.com/castlegate/frontier/pkg/log"
	"github.com/castlegate/frontier/pkg/session"
	"github.com/castlegate/frontier/pkg/uithread"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to the config file")
	logLevel := flag.String("log-level", "", "Log level (overrides the config file)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	level := cfg.LogLevel
	if *logLevel != "" {
		level = *logLevel
	}
	parsedLogLevel, err := log.ParseLogLevel(level)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	jrnl, err := journal.NewJournal(ctx, cfg.JournalPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to open journal: %v", err))
	}
	defer jrnl.Close()

	game := store.NewStore()
	sess := session.NewSession(cfg.PlayerID)
	runner := uithread.NewRunner()

	frontend := ui.NewAutoFrontend(ui.Policy{
		AnimationSpeed: cfg.AnimationSpeed,
	})

	handler := control.NewInGameHandler(control.NewInGameHandlerOptions{
		Store:      game,
		Session:    sess,
		UI:         runner,
		GUI:        frontend,
		Controller: frontend,
	})

	conn := network.NewConnection(network.NewConnectionOptions{
		ServerURL: cfg.ServerURL,
		Handler:   handler,
		Journal:   jrnl,
	})
	if err := conn.Connect(); err != nil {
		panic(fmt.Sprintf("Failed to connect: %v", err))
	}

	if cfg.DebugAddr != "" {
		debugServer := api.NewDebugServer(api.NewDebugServerOptions{
			Addr:    cfg.DebugAddr,
			Session: sess,
			Journal: jrnl,
			Objects: func() []string {
				var ids []string
				runner.PostAndWait(func() {
					ids = game.IDs()
				})
				return ids
			},
			Object: func(id string) (interface{}, bool) {
				var obj interface{}
				var ok bool
				runner.PostAndWait(func() {
					if o := game.Get(id); o != nil {
						obj, ok = o, true
					}
				})
				return obj, ok
			},
		})
		go debugServer.Start()
		defer debugServer.Stop(ctx)
	}

	// The connection owns the delivery goroutine; the main goroutine
	// becomes the interactive context.
	go func() {
		defer cancel()
		if err := conn.Run(ctx); err != nil {
			log.Error("Connection closed: %v", err)
		}
	}()
	runner.Run(ctx)
}
