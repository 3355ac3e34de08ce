package buildinfo

import "testing"

func TestShort(t *testing.T) {
	defer func(v, c string) { Version, Commit = v, c }(Version, Commit)

	Version, Commit = "dev", "unknown"
	if got := Short(); got != "dev" {
		t.Fatalf("Short() = %q, want %q", got, "dev")
	}
	Commit = "abc123"
	if got := Short(); got != "abc123" {
		t.Fatalf("Short() = %q, want %q", got, "abc123")
	}
	Version = "v0.2.0"
	if got := Short(); got != "v0.2.0" {
		t.Fatalf("Short() = %q, want %q", got, "v0.2.0")
	}
}

func TestBanner(t *testing.T) {
	defer func(v, c, d string) { Version, Commit, Date = v, c, d }(Version, Commit, Date)

	Version, Commit, Date = "v1", "c0ffee", "2026-10-18"
	want := `m5boot v1 (c0ffee, 2026-10-18): entry "linedemo -seed 7"`
	if got := Banner("linedemo -seed 7"); got != want {
		t.Fatalf("Banner() = %q, want %q", got, want)
	}
}
