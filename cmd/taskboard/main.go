package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"taskboard/cmd/taskboard/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	commands.Execute(ctx)
}
