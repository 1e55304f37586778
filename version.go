// Package ghostwrite is a terminal journal with inline AI continuations.
//
// The interesting parts live in the editor (ghost text rendering), suggest
// (debounced completion requests) and internal/journal (the application
// shell). This package only carries the release version.
package ghostwrite

import (
	_ "embed"
	"strings"

	goversion "github.com/hashicorp/go-version"
)

//go:embed VERSION
var embeddedVersion string

// Version returns the release version string in SemVer format (without `v`).
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag returns the git tag form of Version (with leading `v`).
func VersionTag() string {
	return "v" + Version()
}

// IsSemver reports whether v is a strict SemVer 2.0.0 version without a
// leading `v`.
func IsSemver(v string) bool {
	v = strings.TrimSpace(v)
	parsed, err := goversion.NewSemver(v)
	if err != nil {
		return false
	}
	// NewSemver tolerates a `v` prefix, short forms and leading zeros.
	return parsed.Original() == v && parsed.String() == v
}

// VersionIsSemver reports whether the embedded Version is valid SemVer.
func VersionIsSemver() bool {
	return IsSemver(Version())
}

// AtLeast reports whether the embedded Version is at or above floor.
func AtLeast(floor string) (bool, error) {
	cur, err := goversion.NewSemver(Version())
	if err != nil {
		return false, err
	}
	want, err := goversion.NewSemver(floor)
	if err != nil {
		return false, err
	}
	return cur.GreaterThanOrEqual(want), nil
}
