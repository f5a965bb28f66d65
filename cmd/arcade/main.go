package main

import (
	"fmt"
	"os"

	"github.com/zephyrix/advent2019/pkg/app"
)

func main() {
	application := app.New()
	if err := application.RunArcade(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
