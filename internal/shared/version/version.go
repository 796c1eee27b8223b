// Package version reports the build version of the cassa binary.
package version

import (
	"strings"

	"golang.org/x/mod/semver"
)

// Set at link time:
//
//	go build -ldflags "-X github.com/lorenzobigazzi0/cassa/internal/shared/version.Version=1.4.0"
var (
	Version = "dev"
	Commit  = ""
)

// Normalize ensures version string has "v" prefix for semver compatibility.
// Examples: "1.2.3" -> "v1.2.3", "v1.2.3" -> "v1.2.3"
func Normalize(version string) string {
	version = strings.TrimSpace(version)
	if version == "" {
		return ""
	}
	if !strings.HasPrefix(version, "v") {
		return "v" + version
	}
	return version
}

// Current returns the normalized build version, or "dev" for builds that
// were not stamped with a valid semantic version.
func Current() string {
	v := Normalize(Version)
	if !semver.IsValid(v) {
		return "dev"
	}
	return semver.Canonical(v)
}

// String renders the version with the commit, when known.
func String() string {
	if Commit == "" {
		return Current()
	}
	short := Commit
	if len(short) > 7 {
		short = short[:7]
	}
	return Current() + " (" + short + ")"
}
