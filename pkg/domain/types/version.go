package types

// Version is the application version. Overwritten by -ldflags at build time.
var Version = "dev"
