package app

import (
	"context"
	"os"
	"os/signal"

	nadia "github.com/nadia-api/nadia-cli"
	"github.com/nadia-api/nadia-cli/internal/cli/root"
)

// Run the app. This is the main app entry point
func Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	root.Context = ctx
	root.Cmd.Version(nadia.Version)
	_, err := root.Cmd.Parse(os.Args[1:])
	return err
}
