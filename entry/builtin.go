package entry

import (
	"m5boot/bridge"
	"m5boot/hal"
	"m5boot/tasks/linedemo"
)

const (
	nameNative   = "native"
	nameLineDemo = "linedemo"
)

// Builtin returns a registry holding the built-in entries. "native" is only
// present when the build links an external entry symbol.
func Builtin() *Registry {
	r := NewRegistry()
	mustRegister(r, Entry{
		Name:  nameLineDemo,
		Usage: "linedemo [-lines N] [-seed S]",
		New: func(b *bridge.Bridge, log hal.Logger, args []string) (func(), error) {
			return linedemo.New(b, log, args)
		},
	})
	mustRegister(r, Entry{Name: "hello", Usage: "hello [text]", New: newHello})
	mustRegister(r, Entry{Name: "fault", Usage: "fault [message]", New: newFault})
	if run, ok := bridge.NativeEntry(); ok {
		mustRegister(r, Entry{
			Name:  nameNative,
			Usage: "native",
			New: func(*bridge.Bridge, hal.Logger, []string) (func(), error) {
				return run, nil
			},
		})
	}
	return r
}

// DefaultCommand names the entry a boot without explicit configuration runs.
func DefaultCommand() string {
	if _, ok := bridge.NativeEntry(); ok {
		return nameNative
	}
	return nameLineDemo
}

func mustRegister(r *Registry, e Entry) {
	if err := r.Register(e); err != nil {
		panic(err)
	}
}

// newHello prints one line on the LCD and returns at once.
func newHello(b *bridge.Bridge, log hal.Logger, args []string) (func(), error) {
	text := "Hello World!"
	if len(args) > 0 {
		text = args[0]
	}
	return func() {
		if log != nil {
			log.WriteLineString(text)
		}
		b.Print([]byte(text + "\n"))
	}, nil
}

// newFault panics, to exercise the crash path.
func newFault(_ *bridge.Bridge, _ hal.Logger, args []string) (func(), error) {
	msg := "fault entry"
	if len(args) > 0 {
		msg = args[0]
	}
	return func() { panic(msg) }, nil
}
