package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/kenpath/agribpp/config"
	"github.com/kenpath/agribpp/internal/app"
	"github.com/kenpath/agribpp/internal/beckn"
	"github.com/kenpath/agribpp/internal/bppapi"
	"github.com/kenpath/agribpp/internal/catalog"
	"github.com/kenpath/agribpp/internal/relay"
	"github.com/kenpath/agribpp/internal/webserver"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	h        bool
	initDb   bool
	seedDemo bool
	conffile string
)

func init() {
	flag.StringVar(&conffile, "c", "agribpp.yml", "config yaml file")
	flag.BoolVar(&h, "h", false, "help usage")
	flag.BoolVar(&initDb, "initdb", false, "drop and recreate all tables, exit")
	flag.BoolVar(&seedDemo, "seed", false, "load the demo catalog data, exit")
}

func main() {
	flag.Parse()
	if h {
		flag.Usage()
		os.Exit(0)
	}

	cfg := config.LoadConfig(conffile)
	cfg.InitDirs()

	application := app.NewApplication(cfg)
	application.Init(cfg)
	defer application.Release()

	if initDb {
		application.InitDb()
		fmt.Println("database initialized")
		return
	}
	if seedDemo {
		application.SeedDemoData()
		fmt.Println("demo catalog loaded")
		return
	}

	dispatcher, err := relay.NewDispatcher(cfg.Relay)
	if err != nil {
		zap.S().Fatalf("relay init failed: %v", err)
	}
	defer dispatcher.Release()

	builder := beckn.NewBuilder()
	builder.Normalizer.BppID = cfg.Bpp.ID
	builder.Normalizer.BppURI = cfg.Bpp.URI
	builder.Normalizer.Domain = cfg.Bpp.Domain

	webserver.Init(application)
	bppapi.InitRouter(application, catalog.NewService(application.DB()), dispatcher, builder)

	g := new(errgroup.Group)
	g.Go(webserver.Listen)
	g.Go(func() error {
		sigc := make(chan os.Signal, 1)
		signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigc
		return fmt.Errorf("received signal %s", sig)
	})

	if err := g.Wait(); err != nil {
		zap.S().Errorf("server stopped: %v", err)
	}
}
