package frontsdk

import (
	"log/slog"

	"github.com/openclc-dev/openclc-front-sdk/capability"
	"github.com/openclc-dev/openclc-front-sdk/directive"
	"github.com/openclc-dev/openclc-front-sdk/target"
)

// SessionOption configures a Session at construction.
type SessionOption func(*sessionConfig)

type sessionConfig struct {
	logger       *slog.Logger
	description  *target.Description
	features     target.FeatureSet
	directives   []directive.Request
	capabilities []capability.Option
}

// WithLogger sets the logger the session reports through.
func WithLogger(logger *slog.Logger) SessionOption {
	return func(c *sessionConfig) {
		c.logger = logger
	}
}

// WithTargetDescription applies a parsed target description during
// construction, before any directives run.
func WithTargetDescription(desc *target.Description) SessionOption {
	return func(c *sessionConfig) {
		c.description = desc
	}
}

// WithTargetFeatures applies the target's feature map during construction,
// before any directives run.
func WithTargetFeatures(features target.FeatureSet) SessionOption {
	return func(c *sessionConfig) {
		c.features = features
	}
}

// WithDirectives replays enable/support requests during construction,
// after target features are applied.
func WithDirectives(reqs ...directive.Request) SessionOption {
	return func(c *sessionConfig) {
		c.directives = append(c.directives, reqs...)
	}
}

// WithVendorCapability seeds one extra record the builtin table does not
// carry, e.g. a vendor extension.
func WithVendorCapability(name string, info capability.Info) SessionOption {
	return func(c *sessionConfig) {
		c.capabilities = append(c.capabilities, capability.WithCapability(name, info))
	}
}
