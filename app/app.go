// Package app wires the HAL, the display bridge and the selected entry into
// the loop task and starts it.
package app

import (
	"fmt"
	"strings"

	"m5boot/bridge"
	"m5boot/entry"
	"m5boot/hal"
	"m5boot/internal/buildinfo"
	"m5boot/kernel"
)

// Config selects what the loop task runs.
type Config struct {
	// Entry is the entry command line; empty selects entry.DefaultCommand.
	Entry string
}

// New boots the device with default config.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, Config{})
}

// Run boots the device and blocks forever (TinyGo/native entrypoint).
func Run(h hal.HAL) {
	_ = New(h)
	select {}
}

// NewWithConfig boots the device. The returned step function reports a boot
// error to the host runner.
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	if err := boot(h, cfg); err != nil {
		return func() error { return err }
	}
	return func() error { return nil }
}

func boot(h hal.HAL, cfg Config) error {
	log := h.Logger()

	b := bridge.New(h.LCD())
	bridge.Install(b)

	cmd := strings.TrimSpace(cfg.Entry)
	if cmd == "" {
		cmd = entry.DefaultCommand()
	}
	run, err := entry.Builtin().Resolve(cmd, b, log)
	if err != nil {
		log.WriteLineString(err.Error())
		_ = log.Flush()
		return err
	}
	log.WriteLineString(buildinfo.Banner(cmd))

	task := kernel.NewLoopTask(log, h.Power(), run, kernel.WithFaultHandler(faultScreen(b)))
	if err := kernel.Bootstrap(h.Scheduler(), task); err != nil {
		// Without the task the device would sit inert: report, then reset.
		log.WriteLineString(fmt.Sprintf("bootstrap: %v", err))
		_ = log.Flush()
		h.Power().Restart()
		return err
	}
	return nil
}
