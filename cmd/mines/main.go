package main

import (
	"context"
	"errors"
	"hash/maphash"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/lmittmann/tint"
	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper-engine/internal/config"
	"github.com/vancomm/minesweeper-engine/internal/console"
	"github.com/vancomm/minesweeper-engine/internal/mines"
)

func createRand() (*rand.Rand, error) {
	seed, ok, err := config.Seed()
	if err != nil {
		return nil, err
	}
	if ok {
		return rand.New(rand.NewPCG(seed, seed)), nil
	}
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	)), nil
}

func newLogger() *slog.Logger {
	if config.Development() {
		return slog.New(
			tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelDebug}),
		)
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, nil))
}

func setupEngineLogging() error {
	logLevel := logrus.InfoLevel
	if config.Development() {
		logLevel = logrus.DebugLevel
	}
	mines.Log.SetLevel(logLevel)
	mines.Log.SetFormatter(&logrus.TextFormatter{ForceColors: true})

	logFile := config.LogFile()
	if logFile == "" {
		return nil
	}
	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   logFile,
		MaxSize:    5,
		MaxBackups: 3,
		MaxAge:     28,
		Level:      logLevel,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		return err
	}
	mines.Log.AddHook(hook)
	return nil
}

func main() {
	logger := newLogger()

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	if err := setupEngineLogging(); err != nil {
		logger.Error("unable to set up log file", "error", err)
		os.Exit(1)
	}

	rnd, err := createRand()
	if err != nil {
		logger.Error("unable to create random source", "error", err)
		os.Exit(1)
	}

	params, err := config.DefaultParams()
	if err != nil {
		logger.Error("unable to read game params", "error", err)
		os.Exit(1)
	}

	session, err := mines.NewSession(params, rnd)
	if err != nil {
		logger.Error("unable to start a game", "error", err)
		os.Exit(1)
	}

	logger.Info("game started", slog.String("params", params.String()))

	c := console.New(session, rnd, os.Stdout, logger)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := c.Run(gCtx, os.Stdin)
		stop()
		return err
	})
	g.Go(func() error {
		<-gCtx.Done()
		logger.Debug("console closed")
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("console stopped", "error", err)
		os.Exit(1)
	}
}
