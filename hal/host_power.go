//go:build !tinygo

package hal

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
)

// envBootCount carries the boot number across re-exec.
const envBootCount = "M5BOOT_BOOT"

type hostPower struct {
	mu       sync.Mutex
	logger   Logger
	boot     int
	maxBoots int

	unpin func() error
	exec  func(argv0 string, argv []string, env []string) error
	exit  func(code int)
}

func newHostPower(logger Logger, maxBoots int) *hostPower {
	return &hostPower{
		logger:   logger,
		boot:     bootFromEnv(os.Getenv(envBootCount)),
		maxBoots: maxBoots,
		unpin:    unpinThread,
		exec:     reexec,
		exit:     os.Exit,
	}
}

// Restart replaces the process image with a fresh copy of itself, which is
// as close as the host gets to a device reset: all process state is gone.
func (p *hostPower) Restart() {
	p.mu.Lock()
	defer p.mu.Unlock()

	next := p.boot + 1
	if p.maxBoots > 0 && next >= p.maxBoots {
		p.logLine(fmt.Sprintf("restart: boot limit %d reached", p.maxBoots))
		p.exit(0)
		return
	}

	// Restart runs on the pinned loop task thread, whose mask the new
	// image would inherit.
	if p.unpin != nil {
		if err := p.unpin(); err != nil {
			p.logLine(fmt.Sprintf("restart: unpin: %v", err))
		}
	}

	exe, err := os.Executable()
	if err == nil {
		err = p.exec(exe, os.Args, withBootCount(os.Environ(), next))
	}
	// exec only returns on failure.
	p.logLine(fmt.Sprintf("restart: %v", err))
	p.exit(1)
}

func (p *hostPower) logLine(s string) {
	if p.logger == nil {
		return
	}
	p.logger.WriteLineString(s)
	_ = p.logger.Flush()
}

func bootFromEnv(v string) int {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func withBootCount(env []string, boot int) []string {
	out := make([]string, 0, len(env)+1)
	prefix := envBootCount + "="
	for _, kv := range env {
		if strings.HasPrefix(kv, prefix) {
			continue
		}
		out = append(out, kv)
	}
	return append(out, prefix+strconv.Itoa(boot))
}
