//go:build !tinygo && unix

package hal

import "golang.org/x/sys/unix"

func reexec(argv0 string, argv []string, env []string) error {
	return unix.Exec(argv0, argv, env)
}
