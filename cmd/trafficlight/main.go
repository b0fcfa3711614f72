package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/tebeka/atexit"
)

var Version = "dev"

func main() {
	// a missing .env is fine
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cli CLI
	kong.Parse(&cli,
		kong.Name("trafficlight"),
		kong.Description("Simulate traffic lights and the vehicles waiting on them."),
		kong.Vars{"version": Version},
	)
	if err := run(ctx, &cli); err != nil {
		slog.Error(err.Error())
		atexit.Exit(1)
	}
	atexit.Exit(0)
}
