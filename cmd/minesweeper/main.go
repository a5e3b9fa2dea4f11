package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper/internal/app"
	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/logging"
	"github.com/vancomm/minesweeper/internal/mines"
)

var (
	configPath string
	textMode   bool
	paramsFlag string
)

func init() {
	const usage = "config file path"
	flag.StringVar(&configPath, "config", "", usage)
	flag.StringVar(&configPath, "c", "", usage+" (shorthand)")
	flag.BoolVar(&textMode, "text", false, "play in the terminal instead of serving")
	flag.StringVar(&paramsFlag, "params", "", "game params as rows:cols:mines (text mode)")
}

func main() {
	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		logrus.Fatal(err)
	}

	log, err := logging.New(cfg)
	if err != nil {
		logrus.Fatal(err)
	}
	mines.Log = log

	log.Info("starting up, mode = ", cfg.Mode)
	log.WithFields(cfg.Fields()).Debug("config")

	if textMode {
		params, err := cfg.Params()
		if paramsFlag != "" {
			params, err = mines.ParseParams(paramsFlag)
		}
		if err != nil {
			log.Fatal(err)
		}
		// The board is drawn on stdout, keep the log quiet.
		log.SetLevel(logrus.WarnLevel)
		if err := playText(os.Stdin, os.Stdout, params, mines.NewRand()); err != nil {
			log.Fatal(err)
		}
		return
	}

	a, err := app.New(log, cfg)
	if err != nil {
		log.Fatal(err)
	}
	if err := a.Start(mainCtx); err != nil {
		log.Printf("exit reason: %s\n", err)
	}
}
