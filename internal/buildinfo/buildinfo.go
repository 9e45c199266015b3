// Package buildinfo carries the firmware build identity stamped by the linker.
package buildinfo

// Set at build time via -ldflags "-X calcsat/internal/buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns the identifier shown on the boot banner: the version when
// released, else the commit, else "dev". It never exceeds the LCD width left
// by the "  build " prefix.
func Short() string {
	id := "dev"
	switch {
	case Version != "" && Version != "dev":
		id = Version
	case Commit != "" && Commit != "unknown":
		id = Commit
	}
	if len(id) > maxShortLen {
		id = id[:maxShortLen]
	}
	return id
}

// String returns the full identity for --version output.
func String() string {
	return Short() + " (commit " + Commit + ", built " + Date + ")"
}

const maxShortLen = 8
