package main

// Overridden at build time through -ldflags.
var (
	buildTime    = "unknown"
	buildVersion = "dev"
)
