// Package dialect describes the OpenCL C language context a translation
// unit is compiled under: the selected version tier plus the C++ mode flag.
package dialect

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Version identifies one recognized OpenCL C version tier, encoded in
// hundredths form (1.2 is 120, 3.0 is 300).
type Version uint16

const (
	V100 Version = 100
	V110 Version = 110
	V120 Version = 120
	V200 Version = 200
	V300 Version = 300
)

// Versions returns every recognized tier in ascending order.
func Versions() []Version {
	return []Version{V100, V110, V120, V200, V300}
}

// Recognized reports whether v is one of the fixed version tiers.
func (v Version) Recognized() bool {
	switch v {
	case V100, V110, V120, V200, V300:
		return true
	}
	return false
}

// Major returns the major component (1 for 1.2).
func (v Version) Major() int {
	return int(v) / 100
}

// Minor returns the minor component (2 for 1.2).
func (v Version) Minor() int {
	return (int(v) % 100) / 10
}

// String returns the "major.minor" form.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major(), v.Minor())
}

// Parse maps a textual version to a recognized tier.
// Accepted forms: "1.2", "1.2.0", and the prefixed "CL1.2" / "clc++2.0"
// spellings used by driver version strings. Anything that does not resolve
// to one of the five tiers is an error; upstream callers must reject such
// input before it reaches capability computations.
func Parse(s string) (Version, error) {
	raw := strings.TrimSpace(s)
	trimmed := strings.ToLower(raw)
	trimmed = strings.TrimPrefix(trimmed, "clc++")
	trimmed = strings.TrimPrefix(trimmed, "cl")
	trimmed = strings.TrimSpace(trimmed)
	if trimmed == "" {
		return 0, fmt.Errorf("empty dialect version")
	}

	ver, err := semver.NewVersion(trimmed)
	if err != nil {
		return 0, fmt.Errorf("invalid dialect version %q: %w", raw, err)
	}
	if ver.Patch() != 0 || ver.Prerelease() != "" || ver.Metadata() != "" {
		return 0, fmt.Errorf("dialect version %q is not a recognized tier", raw)
	}

	// Bound the components before narrowing to Version: a huge major
	// must not wrap into the recognized range.
	if ver.Major() > 9 || ver.Minor() > 9 {
		return 0, fmt.Errorf("dialect version %q is not a recognized tier", raw)
	}
	v := Version(ver.Major()*100 + ver.Minor()*10)
	if !v.Recognized() {
		return 0, fmt.Errorf("dialect version %q is not a recognized tier", raw)
	}
	return v, nil
}

// MustParse is Parse or panic.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// Config is the dialect context every version-sensitive capability query
// is evaluated against. It is supplied by the front end's language
// configuration and treated as read-only here.
type Config struct {
	// Version is the selected OpenCL C version tier.
	Version Version

	// CPlusPlus selects C++ for OpenCL mode. Capability computations
	// treat this mode as OpenCL C 2.0 regardless of Version.
	CPlusPlus bool
}

// Effective returns the tier capability computations see: V200 in C++
// mode, Version otherwise.
func (c Config) Effective() Version {
	if c.CPlusPlus {
		return V200
	}
	return c.Version
}

// String returns a human-readable form for logs and diagnostics.
func (c Config) String() string {
	if c.CPlusPlus {
		return "C++ for OpenCL (capabilities as " + V200.String() + ")"
	}
	return "OpenCL C " + c.Version.String()
}
