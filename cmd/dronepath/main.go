// Command dronepath finds the closest pair of drone waypoints and plans a
// greedy flight route through them.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/katalvlaran/dronepath/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.Root.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
