//go:build !(cgo && extlogic)

package bridge

// NativeEntry reports that no native entry symbol is linked into this build.
func NativeEntry() (func(), bool) {
	return nil, false
}
