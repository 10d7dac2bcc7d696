package capability

import (
	"fmt"
	"strings"

	"github.com/openclc-dev/openclc-front-sdk/dialect"
)

// Mask is a bitset over the five recognized OpenCL C version tiers. A
// capability record carries one mask for the tiers where it is a core
// feature and one for the tiers where it is an optional core feature.
type Mask uint8

const (
	MaskV100 Mask = 1 << iota
	MaskV110
	MaskV120
	MaskV200
	MaskV300
)

const (
	// MaskNone marks a capability that is never core (or never optional
	// core) in any tier.
	MaskNone Mask = 0

	// MaskAll covers every recognized tier.
	MaskAll = MaskV100 | MaskV110 | MaskV120 | MaskV200 | MaskV300

	// MaskV110Plus covers 1.1 and every later tier.
	MaskV110Plus = MaskAll &^ MaskV100

	// MaskV120Plus covers 1.2 and every later tier.
	MaskV120Plus = MaskAll &^ (MaskV100 | MaskV110)
)

// encodeVersion maps a recognized tier to its single mask bit. Reaching
// the panic means an upstream caller skipped dialect validation; carrying
// on would misclassify every later capability query, so fail hard.
func encodeVersion(v dialect.Version) Mask {
	switch v {
	case dialect.V100:
		return MaskV100
	case dialect.V110:
		return MaskV110
	case dialect.V120:
		return MaskV120
	case dialect.V200:
		return MaskV200
	case dialect.V300:
		return MaskV300
	}
	panic(fmt.Sprintf("capability: unrecognized dialect version %d", uint16(v)))
}

// Contains reports whether the tier's bit is set in m. The tier must be
// recognized, see encodeVersion.
func (m Mask) Contains(v dialect.Version) bool {
	return m&encodeVersion(v) != 0
}

// Versions returns the tiers whose bits are set, in ascending order.
func (m Mask) Versions() []dialect.Version {
	var out []dialect.Version
	for _, v := range dialect.Versions() {
		if m.Contains(v) {
			out = append(out, v)
		}
	}
	return out
}

// String renders the mask as "1.0|1.1" for logs and test failures.
func (m Mask) String() string {
	if m == MaskNone {
		return "none"
	}
	parts := make([]string, 0, 5)
	for _, v := range m.Versions() {
		parts = append(parts, v.String())
	}
	return strings.Join(parts, "|")
}
