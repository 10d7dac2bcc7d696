// Package frontsdk ties the dialect configuration, the capability
// registry, target probing and directive replay into one compilation's
// front-end state.
package frontsdk

import (
	"fmt"
	"log/slog"

	"github.com/openclc-dev/openclc-front-sdk/capability"
	"github.com/openclc-dev/openclc-front-sdk/dialect"
	"github.com/openclc-dev/openclc-front-sdk/directive"
	"github.com/openclc-dev/openclc-front-sdk/target"
)

// Session owns the capability state of one compilation. It is created at
// the start of processing a translation unit and discarded with it; Fork
// is the supported way to branch state for a nested processing context.
type Session struct {
	cfg    dialect.Config
	caps   *capability.Registry
	logger *slog.Logger
}

// NewSession validates the dialect configuration, seeds a fresh registry
// and applies the configured target features and directives in that
// order. Rejecting unrecognized versions here is what lets the capability
// computations below treat them as internal-consistency failures.
func NewSession(cfg dialect.Config, opts ...SessionOption) (*Session, error) {
	if !cfg.CPlusPlus && !cfg.Version.Recognized() {
		return nil, fmt.Errorf("unrecognized dialect version %d", uint16(cfg.Version))
	}

	sc := sessionConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(&sc)
	}

	s := &Session{
		cfg:    cfg,
		caps:   capability.New(sc.capabilities...),
		logger: sc.logger,
	}

	if sc.description != nil {
		s.ApplyTargetDescription(sc.description)
	}
	if sc.features != nil {
		s.ApplyTarget(sc.features)
	}
	if err := s.ApplyDirectives(sc.directives...); err != nil {
		return nil, err
	}
	return s, nil
}

// Config returns the dialect context of this compilation.
func (s *Session) Config() dialect.Config {
	return s.cfg
}

// Capabilities returns the session's registry. The registry is owned by
// this session; callers must not share it across concurrently mutating
// contexts.
func (s *Session) Capabilities() *capability.Registry {
	return s.caps
}

// ApplyTarget folds the target's feature map into the registry and then
// auto-enables everything the selected dialect mandates or offers as
// optional core. Extensions stay off until explicitly enabled.
func (s *Session) ApplyTarget(features target.FeatureSet) {
	s.applyFeatures("", features)
}

// ApplyTargetDescription applies a parsed target description; the feature
// map is folded in exactly as ApplyTarget does, and the target name is
// kept for reporting.
func (s *Session) ApplyTargetDescription(desc *target.Description) {
	s.applyFeatures(desc.Name, desc.Features)
}

func (s *Session) applyFeatures(name string, features target.FeatureSet) {
	s.caps.AddSupport(features, s.cfg)
	s.caps.EnableSupportedCore(s.cfg)
	s.logger.Debug("target features applied",
		"target", name, "dialect", s.cfg.String(), "claimed", len(features))
}

// ApplyDirectives replays tokenized enable/support requests against the
// registry.
func (s *Session) ApplyDirectives(reqs ...directive.Request) error {
	return directive.Apply(s.caps, reqs...)
}

// Fork returns a session sharing the dialect context but owning a deep
// copy of the capability table, so the two evolve independently.
func (s *Session) Fork() *Session {
	return &Session{
		cfg:    s.cfg,
		caps:   s.caps.Clone(),
		logger: s.logger,
	}
}
