// Package version parses and compares the three-part version numbers the
// Lean CLI reports (e.g. "Lean CLI v1.0.207").
package version

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Version is a three-part version number.
type Version struct {
	Major int
	Minor int
	Patch int
}

// String returns the version as a string.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// versionRegex matches patterns like 1.0.207, v1.2, 18.
var versionRegex = regexp.MustCompile(`v?(\d+)(?:\.(\d+))?(?:\.(\d+))?`)

func fromMatches(matches []string) Version {
	major, _ := strconv.Atoi(matches[1])
	var minor, patch int
	if matches[2] != "" {
		minor, _ = strconv.Atoi(matches[2])
	}
	if matches[3] != "" {
		patch, _ = strconv.Atoi(matches[3])
	}
	return Version{Major: major, Minor: minor, Patch: patch}
}

// Parse parses a bare version string. The whole string must be a version.
func Parse(s string) (Version, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Version{}, fmt.Errorf("empty version string")
	}

	matches := versionRegex.FindStringSubmatch(s)
	if matches == nil || matches[0] != s {
		return Version{}, fmt.Errorf("invalid version format: %q", s)
	}

	return fromMatches(matches), nil
}

// ParseOptional parses s if non-empty, returning nil otherwise.
func ParseOptional(s string) (*Version, error) {
	if s == "" {
		return nil, nil
	}
	v, err := Parse(s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// Extract finds and parses the version number in command output. A
// v-prefixed token wins over bare numbers, so a banner naming other tools
// ("Python 3.11 / Lean CLI v1.0.207") yields the CLI's own version.
func Extract(s string) (Version, error) {
	matches := versionRegex.FindAllStringSubmatch(s, -1)
	if matches == nil {
		return Version{}, fmt.Errorf("no version found in: %q", s)
	}
	for _, m := range matches {
		if strings.HasPrefix(m[0], "v") {
			return fromMatches(m), nil
		}
	}
	return fromMatches(matches[0]), nil
}

// Compare returns -1 if v < other, 0 if v == other, 1 if v > other.
func (v Version) Compare(other Version) int {
	pairs := [3][2]int{
		{v.Major, other.Major},
		{v.Minor, other.Minor},
		{v.Patch, other.Patch},
	}
	for _, p := range pairs {
		if p[0] < p[1] {
			return -1
		}
		if p[0] > p[1] {
			return 1
		}
	}
	return 0
}

// AtLeast returns true if v >= other.
func (v Version) AtLeast(other Version) bool {
	return v.Compare(other) >= 0
}
