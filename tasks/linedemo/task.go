// Package linedemo is the stand-in application used when no native entry is
// linked: it greets on the LCD and then streams random lines from a
// generator task to a draw task through a fixed-size queue.
package linedemo

import (
	"flag"
	"fmt"
	"io"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"m5boot/hal"
	"m5boot/kernel"
)

const (
	defaultLines = 100000
	defaultSeed  = 7
	queueSlots   = 32
)

// Line is one draw request.
type Line struct {
	X0, Y0, X1, Y1 int32
	Color          uint32
}

// Drawer is the display surface the demo draws on.
type Drawer interface {
	Print(text []byte)
	DrawLine(x0, y0, x1, y1 int32, color uint32)
}

// Config is the parsed demo command line.
type Config struct {
	Lines int
	Seed  int64
}

// ParseArgs reads -lines and -seed.
func ParseArgs(args []string) (Config, error) {
	cfg := Config{Lines: defaultLines, Seed: defaultSeed}
	fs := flag.NewFlagSet("linedemo", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.IntVar(&cfg.Lines, "lines", cfg.Lines, "Number of lines to draw.")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Generator seed.")
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("linedemo: %w", err)
	}
	if cfg.Lines < 0 {
		return Config{}, fmt.Errorf("linedemo: negative line count %d", cfg.Lines)
	}
	return cfg, nil
}

// New returns an entry function running the demo with args.
func New(d Drawer, log hal.Logger, args []string) (func(), error) {
	cfg, err := ParseArgs(args)
	if err != nil {
		return nil, err
	}
	return func() {
		n, err := Run(d, log, cfg)
		if log == nil {
			return
		}
		if err != nil {
			log.WriteLineString(fmt.Sprintf("linedemo: %v", err))
		}
		log.WriteLineString(fmt.Sprintf("linedemo: drew %d lines", n))
	}, nil
}

// Run draws cfg.Lines random lines and returns how many were drawn.
func Run(d Drawer, log hal.Logger, cfg Config) (int, error) {
	if log != nil {
		log.WriteLineString("Hello from Go!")
	}
	d.Print([]byte("Hello World!\n"))

	q := kernel.NewQueue[Line](queueSlots)
	var drawn int

	var g errgroup.Group
	g.Go(guard("rand task", func() error {
		defer q.Close()
		rng := rand.New(rand.NewSource(cfg.Seed))
		for i := 0; i < cfg.Lines; i++ {
			if !q.Send(randomLine(rng)) {
				return fmt.Errorf("queue closed after %d lines", i)
			}
		}
		return nil
	}))
	g.Go(guard("draw task", func() error {
		// Unblock the producer if drawing stops early.
		defer q.Close()
		for {
			l, ok := q.Recv()
			if !ok {
				return nil
			}
			d.DrawLine(l.X0, l.Y0, l.X1, l.Y1, l.Color)
			drawn++
		}
	}))
	err := g.Wait()
	return drawn, err
}

// guard turns a panic in fn into an error, so one failing task ends the
// demo through g.Wait instead of taking the process down unannounced.
func guard(name string, fn func() error) func() error {
	return func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("%s: panic: %v", name, r)
			}
		}()
		return fn()
	}
}

// randomLine picks a line in the right-hand 80x240 strip of the panel.
func randomLine(rng *rand.Rand) Line {
	return Line{
		X0:    240 + rng.Int31n(80),
		Y0:    rng.Int31n(240),
		X1:    240 + rng.Int31n(80),
		Y1:    rng.Int31n(240),
		Color: uint32(rng.Int31n(0x10000)),
	}
}
