// Package pyenv locates a Python interpreter and checks its version.
package pyenv

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

// MinVersion is the oldest interpreter the backend supports.
var MinVersion = MustParseVersion("3.9.0")

// Version is a CPython release triple. Raw keeps the text it was parsed from.
type Version struct {
	Major int
	Minor int
	Micro int
	Raw   string
}

var versionRE = regexp.MustCompile(`(\d+)\.(\d+)(?:\.(\d+))?`)

// ParseVersion accepts "Python 3.11.4", "3.9.0rc1" or "3.10".
// Pre-release suffixes are ignored; a missing micro is 0.
func ParseVersion(s string) (Version, error) {
	raw := strings.TrimSpace(s)
	m := versionRE.FindStringSubmatch(raw)
	if m == nil {
		return Version{}, fmt.Errorf("no version number in %q", raw)
	}
	v := Version{Raw: raw}
	v.Major, _ = strconv.Atoi(m[1])
	v.Minor, _ = strconv.Atoi(m[2])
	if m[3] != "" {
		v.Micro, _ = strconv.Atoi(m[3])
	}
	return v, nil
}

// MustParseVersion is ParseVersion for constants; it panics on bad input.
func MustParseVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(err)
	}
	return v
}

func (v Version) String() string { return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Micro) }

// MajorMinor renders "3.9" for messages.
func (v Version) MajorMinor() string { return fmt.Sprintf("%d.%d", v.Major, v.Minor) }

func (v Version) semver() string { return "v" + v.String() }

// AtLeast reports whether v >= floor.
func (v Version) AtLeast(floor Version) bool {
	return semver.Compare(v.semver(), floor.semver()) >= 0
}
