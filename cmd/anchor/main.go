// Command anchor computes and previews floating element placement.
//
// Usage:
//
//	anchor place --scene page.html --float menu --target button --location below
//	anchor script --scene page.html placement.js
//	anchor track                  Print the pointer position as the mouse moves
//	anchor demo                   Interactive tooltip and menu preview
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

const version = "0.1.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
