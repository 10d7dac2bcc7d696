// Package capability implements the versioned capability registry the
// front end consults when deciding whether gated syntax, builtins or
// semantics are known, supported by the compilation target, and enabled.
package capability

import (
	"sort"

	"github.com/openclc-dev/openclc-front-sdk/dialect"
)

// Registry maps capability names to their records for one compilation.
// The name universe is fixed at construction; only the Supported and
// Enabled flags change afterwards, and no entry is ever removed.
//
// A Registry is owned by a single compilation's front-end state and is not
// safe for concurrent mutation. Callers must serialize mutations against
// all other access; Clone is the supported isolation mechanism between
// independently evolving contexts.
type Registry struct {
	entries map[string]*Info
}

// Option configures a Registry at construction.
type Option func(*Registry)

// WithCapability adds or overrides one record in the new registry. Meant
// for vendor extensions the builtin table does not carry.
func WithCapability(name string, info Info) Option {
	return func(r *Registry) {
		rec := info
		r.entries[name] = &rec
	}
}

// New builds a registry seeded with a copy of the builtin capability
// table, so compilations never share mutable state.
func New(opts ...Option) *Registry {
	r := &Registry{entries: make(map[string]*Info, len(builtinTable))}
	for name, info := range builtinTable {
		rec := info
		r.entries[name] = &rec
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Clone returns a deep copy of the registry. The copy and the original
// evolve independently.
func (r *Registry) Clone() *Registry {
	out := &Registry{entries: make(map[string]*Info, len(r.entries))}
	for name, info := range r.entries {
		rec := *info
		out.entries[name] = &rec
	}
	return out
}

// Len returns the number of known capabilities.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Names returns every known capability name in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns a copy of the record for name.
func (r *Registry) Lookup(name string) (Info, bool) {
	info, ok := r.entries[name]
	if !ok {
		return Info{}, false
	}
	return *info, true
}

// IsKnown reports whether name is in the registry. Unknown names are not
// an error anywhere in this package: front-end callers routinely probe
// candidate names taken from source text.
func (r *Registry) IsKnown(name string) bool {
	_, ok := r.entries[name]
	return ok
}

// IsEnabled reports whether the capability is currently turned on. This
// is purely the user/compiler toggle; it ignores version and support
// state entirely. Unknown names answer false.
func (r *Registry) IsEnabled(name string) bool {
	info, ok := r.entries[name]
	return ok && info.Enabled
}

// IsSupported reports whether the capability is usable at all under cfg:
// it must be available there, and either the target explicitly supports
// it or the dialect itself mandates or offers it at that tier. Mandatory
// core features count as supported independent of the target flag.
func (r *Registry) IsSupported(name string, cfg dialect.Config) bool {
	info, ok := r.entries[name]
	if !ok {
		return false
	}
	return info.IsAvailableIn(cfg) &&
		(info.Supported || info.IsCoreIn(cfg) || info.IsOptionalCoreIn(cfg))
}

// IsSupportedCore reports whether the capability is supported under cfg
// and cfg's tier mandates it. A merely supported extension answers false.
func (r *Registry) IsSupportedCore(name string, cfg dialect.Config) bool {
	info, ok := r.entries[name]
	return ok && r.IsSupported(name, cfg) && info.IsCoreIn(cfg)
}

// IsSupportedOptionalCore reports whether the capability is supported
// under cfg and cfg's tier offers it as optional core.
func (r *Registry) IsSupportedOptionalCore(name string, cfg dialect.Config) bool {
	info, ok := r.entries[name]
	return ok && r.IsSupported(name, cfg) && info.IsOptionalCoreIn(cfg)
}

// IsSupportedCoreOrOptionalCore reports whether either of the two
// dialect-mandated flavors holds.
func (r *Registry) IsSupportedCoreOrOptionalCore(name string, cfg dialect.Config) bool {
	return r.IsSupportedCore(name, cfg) || r.IsSupportedOptionalCore(name, cfg)
}

// IsSupportedExtension reports whether the capability is supported under
// cfg purely as an opt-in extension, not by dialect mandate. Together
// with the two queries above this partitions every supported (name, cfg)
// pair into exactly one of core, optional core, or extension.
func (r *Registry) IsSupportedExtension(name string, cfg dialect.Config) bool {
	info, ok := r.entries[name]
	return ok && r.IsSupported(name, cfg) &&
		!info.IsCoreIn(cfg) && !info.IsOptionalCoreIn(cfg)
}

// Enable sets the enabled flag for a known name. Unknown names are a
// no-op; strict callers check IsKnown first.
func (r *Registry) Enable(name string, on bool) {
	if info, ok := r.entries[name]; ok {
		info.Enabled = on
	}
}

// Support marks whether the active compilation target claims to implement
// the capability. Unknown names are a no-op.
func (r *Registry) Support(name string, on bool) {
	if info, ok := r.entries[name]; ok {
		info.Supported = on
	}
}

// AddSupport folds the target's feature map into the support flags: every
// capability the map reports present that is known here and available
// under cfg becomes supported. Names the target does not mention, names
// unknown to the registry, and capabilities not available at cfg are left
// untouched; no entry is ever created.
func (r *Registry) AddSupport(features map[string]bool, cfg dialect.Config) {
	for name, present := range features {
		if !present {
			continue
		}
		if info, ok := r.entries[name]; ok && info.IsAvailableIn(cfg) {
			info.Supported = true
		}
	}
}

// DisableAll turns every capability off, resetting enablement to a known
// baseline before directives are replayed.
func (r *Registry) DisableAll() {
	for _, info := range r.entries {
		info.Enabled = false
	}
}

// EnableSupportedCore turns on every capability cfg's tier mandates or
// offers as optional core. Selecting a dialect version enables these
// automatically; true extensions keep their prior state and still require
// an explicit enable request.
func (r *Registry) EnableSupportedCore(cfg dialect.Config) {
	for name, info := range r.entries {
		if r.IsSupportedCore(name, cfg) || r.IsSupportedOptionalCore(name, cfg) {
			info.Enabled = true
		}
	}
}
