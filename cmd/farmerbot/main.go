package main

import (
	"context"
	"fmt"
	"os"

	"farmerbot/internal/cli"
)

func main() {
	if err := cli.New().Execute(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "farmerbot:", err)
		os.Exit(1)
	}
}
