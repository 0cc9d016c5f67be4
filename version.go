package gamebase

// Version is the library version. It is overridden at build time with
// -ldflags "-X github.com/ianw11/gamebase.Version=...".
var Version = "0.1.0-dev"
