package app

import (
	"unicode/utf8"

	"m5boot/bridge"
	"m5boot/kernel"
)

const (
	// Columns and rows of the terminal on the 320x240 panel.
	faultCols  = 53
	faultLines = 20
)

// faultScreen returns a fault handler that paints the fault on the LCD so
// it stays readable until the reset clears the panel.
func faultScreen(b *bridge.Bridge) func(kernel.Fault) {
	return func(f kernel.Fault) {
		lines := append([]string{"", "Loop task panic:"}, f.Lines()...)
		if len(lines) > faultLines {
			lines = lines[:faultLines]
		}
		for _, line := range lines {
			chunk, _ := takeRunes(line, faultCols)
			b.Print([]byte(chunk + "\n"))
		}
	}
}

func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if len(s) <= n {
		return s, ""
	}
	var i, count int
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
