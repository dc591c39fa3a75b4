package version

// Version is overridden at build time via -ldflags.
var Version = "0.2.0"
