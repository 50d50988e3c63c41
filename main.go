package main

import (
	"log/slog"
	"os"

	"github.com/go-kid/ioc"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	if err := ioc.Run(); err != nil {
		slog.Error("apilearn: exit", "error", err)
		os.Exit(1)
	}
}
