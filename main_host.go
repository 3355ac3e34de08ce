//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"m5boot/app"
	"m5boot/hal"
)

func main() {
	var (
		headless hal.HeadlessConfig
		window   hal.WindowConfig
		entryCmd string
		maxBoots int
	)
	flag.BoolVar(&headless.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&headless.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&headless.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run until restart).")
	flag.IntVar(&window.Scale, "scale", 2, "Window scale factor.")
	flag.StringVar(&entryCmd, "entry", "", "Entry command line, e.g. \"linedemo -lines 500\" (default: native if linked, else linedemo).")
	flag.IntVar(&maxBoots, "max-boots", 0, "Exit instead of restarting after N boots (0 = restart forever).")
	flag.Parse()

	headless.MaxBoots = maxBoots
	window.MaxBoots = maxBoots

	newApp := func(h hal.HAL) func() error {
		return app.NewWithConfig(h, app.Config{Entry: entryCmd})
	}

	if headless.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, headless); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(newApp, window); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
