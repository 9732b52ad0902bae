package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/Eden1029/SQL-SupplyChainLogistics/pkg/interfaces/cli/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := commands.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
