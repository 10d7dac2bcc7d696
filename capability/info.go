package capability

import "github.com/openclc-dev/openclc-front-sdk/dialect"

// Info is one capability record: the static availability data seeded at
// construction plus the two per-compilation flags.
//
// Availability and core status are independent axes. A capability can be
// nameable in source long before any tier makes it core, and the masks
// allow discontinuous ranges (core in 1.1 and 3.0 but not in between)
// without special cases.
type Info struct {
	// Available is the lowest tier at which the capability exists at all.
	Available dialect.Version

	// Core marks the tiers where the capability is a mandatory core
	// feature, always present regardless of target support.
	Core Mask

	// OptionalCore marks the tiers where the dialect offers the
	// capability but the target may still omit it.
	OptionalCore Mask

	// Supported records whether the active compilation target implements
	// the capability. Meaningful for extensions and optional core
	// features; mandatory core features are present either way.
	Supported bool

	// Enabled records whether the capability is currently turned on for
	// this compilation.
	Enabled bool
}

// IsCore reports whether the capability is core in at least one tier.
func (i Info) IsCore() bool {
	return i.Core != MaskNone
}

// IsOptionalCore reports whether the capability is optional core in at
// least one tier.
func (i Info) IsOptionalCore() bool {
	return i.OptionalCore != MaskNone
}

// IsAvailableIn reports whether the capability exists at all under cfg.
func (i Info) IsAvailableIn(cfg dialect.Config) bool {
	return cfg.Effective() >= i.Available
}

// IsCoreIn reports whether cfg's tier mandates the capability.
func (i Info) IsCoreIn(cfg dialect.Config) bool {
	return i.IsAvailableIn(cfg) && i.Core.Contains(cfg.Effective())
}

// IsOptionalCoreIn reports whether cfg's tier offers the capability as an
// optional core feature.
func (i Info) IsOptionalCoreIn(cfg dialect.Config) bool {
	return i.IsAvailableIn(cfg) && i.OptionalCore.Contains(cfg.Effective())
}
