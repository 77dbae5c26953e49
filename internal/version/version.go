// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - Site catalogs, planet rise/set, almanac TUI
// 0.2.0 - Relative longitude, max elongation, peak magnitude, lunar apsides
// 0.1.0 - Initial release: seasons, moon quarters, sun/moon rise and set
