// Package entry resolves the application the loop task hands its thread to.
package entry

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/shlex"

	"m5boot/bridge"
	"m5boot/hal"
)

// ErrUnknownEntry is returned by Resolve for a name nobody registered.
var ErrUnknownEntry = errors.New("unknown entry")

// Factory builds an entry function from its command-line arguments.
type Factory func(b *bridge.Bridge, log hal.Logger, args []string) (func(), error)

// Entry is a named application.
type Entry struct {
	Name  string
	Usage string
	New   Factory
}

// Registry maps names to entries.
type Registry struct {
	entries map[string]Entry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Entry)}
}

// Register adds e. Names are trimmed and must be unique.
func (r *Registry) Register(e Entry) error {
	e.Name = strings.TrimSpace(e.Name)
	if e.Name == "" {
		return fmt.Errorf("entry registry: empty name")
	}
	if e.New == nil {
		return fmt.Errorf("entry registry: %q has no factory", e.Name)
	}
	if _, ok := r.entries[e.Name]; ok {
		return fmt.Errorf("entry registry: duplicate entry %q", e.Name)
	}
	r.entries[e.Name] = e
	return nil
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.entries))
	for name := range r.entries {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Resolve splits cmdline shell-style and builds the named entry with the
// remaining words as its arguments.
func (r *Registry) Resolve(cmdline string, b *bridge.Bridge, log hal.Logger) (func(), error) {
	words, err := shlex.Split(cmdline)
	if err != nil {
		return nil, fmt.Errorf("entry %q: %w", cmdline, err)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("entry: empty command: %w", ErrUnknownEntry)
	}
	e, ok := r.entries[words[0]]
	if !ok {
		return nil, fmt.Errorf("entry %q (have %s): %w", words[0], strings.Join(r.Names(), ", "), ErrUnknownEntry)
	}
	run, err := e.New(b, log, words[1:])
	if err != nil {
		return nil, fmt.Errorf("entry %q: %w", words[0], err)
	}
	return run, nil
}
