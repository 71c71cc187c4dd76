package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"simwall/internal/app"
	"simwall/internal/config"
	_ "simwall/internal/render/imgexport"
	_ "simwall/internal/render/term"
	_ "simwall/internal/render/window"
)

func main() {
	log.SetPrefix("simwall: ")
	log.SetFlags(0)

	cfg, err := config.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = app.Run(ctx, cfg)
	stop()
	if err != nil {
		log.Fatal(err)
	}
}
