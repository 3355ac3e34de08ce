//go:build tinygo

package kernel

// TinyGo keeps no unwind tables on the device.
func captureStack() []byte {
	return nil
}
