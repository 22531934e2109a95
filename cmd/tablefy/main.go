// Command tablefy generates Headers and Row methods for struct types so
// they satisfy tablefy.Tabular. It is meant to be run by go generate:
//
//	//go:generate go run github.com/bjaus/tablefy/cmd/tablefy --type Basic
//
// Field headers default to the field name and can be overridden with a
// struct tag:
//
//	Name string `tablefy:"header(name = \"Full Name\")"`
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := newRootCommand(os.Stderr)
	if err := cmd.ExecuteContext(ctx); err != nil {
		// Generation failures were already logged.
		if !errors.Is(err, errGenerateFailed) {
			fmt.Fprintln(os.Stderr, "tablefy:", err)
		}
		stop()
		os.Exit(1)
	}
}
