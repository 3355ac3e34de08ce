//go:build !tinygo && !unix

package hal

func reexec(argv0 string, argv []string, env []string) error {
	_, _, _ = argv0, argv, env
	return ErrNotImplemented
}
