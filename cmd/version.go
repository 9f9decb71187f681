package cmd

// Version and GitCommit are set at build time with -ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
)
