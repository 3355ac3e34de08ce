// Package buildinfo carries version metadata stamped in at link time.
package buildinfo

import "fmt"

// Set at build time via -ldflags "-X m5boot/internal/buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns a compact build identifier for the window title and the
// boot banner.
func Short() string {
	switch {
	case Version != "" && Version != "dev":
		return Version
	case Commit != "" && Commit != "unknown":
		return Commit
	}
	return "dev"
}

// Banner is the one-line boot announcement written before the loop task
// starts.
func Banner(entry string) string {
	return fmt.Sprintf("m5boot %s (%s, %s): entry %q", Short(), Commit, Date, entry)
}
