//go:build !tinygo && !linux

package hal

func pinToCore(core Core) error {
	_ = core
	return ErrNotImplemented
}

// unpinThread is a no-op where pinToCore never pins.
func unpinThread() error { return nil }
