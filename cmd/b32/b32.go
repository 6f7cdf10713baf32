package main

import (
	"log/slog"
	"os"

	"github.com/kitimark/b32"
)

func main() {
	cmd := b32.NewMainCmd()
	err := cmd.Execute()
	if err != nil {
		slog.Info(err.Error())
		os.Exit(2)
	}
}
