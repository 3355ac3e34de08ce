package entry

import (
	"errors"
	"testing"

	"m5boot/bridge"
	"m5boot/hal"
)

type recLCD struct{ printed []byte }

func (l *recLCD) PrintByte(b byte)                            { l.printed = append(l.printed, b) }
func (l *recLCD) DrawLine(x0, y0, x1, y1 int32, color uint32) {}

func TestRegisterRejectsBadEntries(t *testing.T) {
	r := NewRegistry()
	noop := func(*bridge.Bridge, hal.Logger, []string) (func(), error) { return func() {}, nil }

	if err := r.Register(Entry{Name: " ", New: noop}); err == nil {
		t.Fatalf("Register(empty name) err = nil, want error")
	}
	if err := r.Register(Entry{Name: "x"}); err == nil {
		t.Fatalf("Register(no factory) err = nil, want error")
	}
	if err := r.Register(Entry{Name: "x", New: noop}); err != nil {
		t.Fatalf("Register(x) err = %v, want nil", err)
	}
	if err := r.Register(Entry{Name: "x", New: noop}); err == nil {
		t.Fatalf("Register(duplicate) err = nil, want error")
	}
}

func TestResolvePassesQuotedArgs(t *testing.T) {
	r := NewRegistry()
	var got []string
	_ = r.Register(Entry{Name: "echo", New: func(_ *bridge.Bridge, _ hal.Logger, args []string) (func(), error) {
		got = args
		return func() {}, nil
	}})

	if _, err := r.Resolve(`echo -x "two words"`, nil, nil); err != nil {
		t.Fatalf("Resolve() err = %v, want nil", err)
	}
	if len(got) != 2 || got[0] != "-x" || got[1] != "two words" {
		t.Fatalf("args = %q, want [-x, two words]", got)
	}
}

func TestResolveUnknown(t *testing.T) {
	r := Builtin()
	if _, err := r.Resolve("nope", nil, nil); !errors.Is(err, ErrUnknownEntry) {
		t.Fatalf("Resolve(nope) err = %v, want %v", err, ErrUnknownEntry)
	}
	if _, err := r.Resolve("   ", nil, nil); !errors.Is(err, ErrUnknownEntry) {
		t.Fatalf("Resolve(blank) err = %v, want %v", err, ErrUnknownEntry)
	}
}

func TestResolveFactoryError(t *testing.T) {
	if _, err := Builtin().Resolve("linedemo -lines nope", nil, nil); err == nil {
		t.Fatalf("Resolve(bad args) err = nil, want error")
	}
}

func TestBuiltinHello(t *testing.T) {
	lcd := &recLCD{}
	run, err := Builtin().Resolve("hello 'hi there'", bridge.New(lcd), nil)
	if err != nil {
		t.Fatalf("Resolve(hello) err = %v, want nil", err)
	}

	run()

	if string(lcd.printed) != "hi there\n" {
		t.Fatalf("printed %q, want %q", lcd.printed, "hi there\n")
	}
}

func TestBuiltinFaultPanics(t *testing.T) {
	run, err := Builtin().Resolve("fault oops", nil, nil)
	if err != nil {
		t.Fatalf("Resolve(fault) err = %v, want nil", err)
	}
	defer func() {
		if r := recover(); r != "oops" {
			t.Fatalf("recover() = %v, want oops", r)
		}
	}()
	run()
}

func TestDefaultCommandIsRegistered(t *testing.T) {
	name := DefaultCommand()
	for _, n := range Builtin().Names() {
		if n == name {
			return
		}
	}
	t.Fatalf("DefaultCommand() = %q not in %v", name, Builtin().Names())
}
