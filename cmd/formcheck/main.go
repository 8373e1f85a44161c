// Command formcheck validates sign-up forms, either one at a time from flags
// or in batches from a YAML file.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "formcheck:", err)
		stop()
		os.Exit(1)
	}
}
