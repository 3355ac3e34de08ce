//go:build cgo && extlogic

package bridge

/*
extern void rust_main(void);
*/
import "C"

// NativeEntry returns the linked rust_main symbol.
func NativeEntry() (func(), bool) {
	return func() { C.rust_main() }, true
}
