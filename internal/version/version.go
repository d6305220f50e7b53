// Package version carries the build version; override with
// -ldflags "-X almanac/internal/version.Version=v1.2.3".
package version

var Version = "dev"
