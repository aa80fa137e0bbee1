package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"git.lost.host/meutraa/handbeat/internal/config"
	"git.lost.host/meutraa/handbeat/internal/logging"
	"git.lost.host/meutraa/handbeat/internal/render"
	"go.uber.org/zap"
)

func main() {
	if err := run(os.Args[1:]); nil != err {
		log.Fatalln(err)
	}
}

func run(args []string) error {
	cfg, err := config.Parse(args)
	if nil != err {
		return err
	}

	logger, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if nil != err {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	p := &Program{}
	if err := p.Init(ctx, cfg, logger); nil != err {
		if derr := p.Deinit(); nil != derr {
			logger.Error("unable to release resources", zap.Error(derr))
		}
		return fmt.Errorf("unable to start: %w", err)
	}

	render.Loop(ctx, cfg.FramePeriod(), p.Frame)

	if err := p.Deinit(); nil != err {
		logger.Error("unable to release resources", zap.Error(err))
	}
	if nil != p.err {
		return fmt.Errorf("unable to render: %w", p.err)
	}
	return nil
}
