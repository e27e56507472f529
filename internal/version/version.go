package version

// Set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "none"
)

// String returns the version with the commit appended when known.
func String() string {
	if Commit == "" || Commit == "none" {
		return Version
	}
	return Version + " (" + Commit + ")"
}
