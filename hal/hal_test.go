package hal

import (
	"errors"
	"testing"
)

func TestTaskSpecValidate(t *testing.T) {
	ok := TaskSpec{Entry: func() {}, Name: "t", StackSize: 8192, Priority: 1, Core: CoreApp}
	if err := ok.Validate(2); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}

	noEntry := ok
	noEntry.Entry = nil
	if err := noEntry.Validate(2); !errors.Is(err, ErrNoEntry) {
		t.Fatalf("Validate() without entry = %v, want %v", err, ErrNoEntry)
	}

	noStack := ok
	noStack.StackSize = 0
	if err := noStack.Validate(2); !errors.Is(err, ErrStackSize) {
		t.Fatalf("Validate() without stack = %v, want %v", err, ErrStackSize)
	}

	if err := ok.Validate(1); !errors.Is(err, ErrCoreUnavailable) {
		t.Fatalf("Validate() on single core = %v, want %v", err, ErrCoreUnavailable)
	}
}

func TestLCDColorUsesLow565Half(t *testing.T) {
	c := lcdColor(0xFFFF)
	if c.R != 0xFF || c.G != 0xFF || c.B != 0xFF || c.A != 0xFF {
		t.Fatalf("lcdColor(0xFFFF) = %+v, want opaque white", c)
	}
	if got := lcdColor(0xABCD0000); got.R != 0 || got.G != 0 || got.B != 0 {
		t.Fatalf("lcdColor(0xABCD0000) = %+v, want black", got)
	}
	if got := rgb565(lcdColor(0xF800).R, 0, 0); got != 0xF800 {
		t.Fatalf("red round trip = %#04x, want 0xf800", got)
	}
}
