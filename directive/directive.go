// Package directive applies already-tokenized enable and support requests
// to a capability registry. Flag and pragma syntax is parsed upstream;
// requests arrive here as (pattern, action, on) triples.
package directive

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/openclc-dev/openclc-front-sdk/capability"
)

// Action selects which per-capability flag a request toggles.
type Action uint8

const (
	// ActionEnable toggles the enabled flag (pragma-style requests).
	ActionEnable Action = iota

	// ActionSupport toggles the target-support flag (driver extension
	// override requests).
	ActionSupport
)

// All is the pattern that addresses every known capability. It is only
// honored for switching capabilities off.
const All = "all"

// Request is one tokenized toggle: an exact capability name, a glob
// pattern such as "cl_khr_*", or All.
type Request struct {
	Pattern string
	Action  Action
	On      bool
}

// Apply replays requests against reg in order. Exact names must be known
// in the registry; glob patterns may match any subset, including none.
// The first failing request stops the replay.
func Apply(reg *capability.Registry, reqs ...Request) error {
	for _, req := range reqs {
		if err := applyOne(reg, req); err != nil {
			return err
		}
	}
	return nil
}

func applyOne(reg *capability.Registry, req Request) error {
	switch {
	case req.Pattern == "":
		return fmt.Errorf("empty capability pattern")

	case req.Pattern == All:
		if req.On {
			return fmt.Errorf("capability group %q can only be switched off", All)
		}
		if req.Action == ActionSupport {
			for _, name := range reg.Names() {
				reg.Support(name, false)
			}
			return nil
		}
		reg.DisableAll()
		return nil

	case isGlob(req.Pattern):
		for _, name := range reg.Names() {
			ok, err := doublestar.Match(req.Pattern, name)
			if err != nil {
				return fmt.Errorf("invalid capability pattern %q: %w", req.Pattern, err)
			}
			if ok {
				set(reg, name, req)
			}
		}
		return nil

	default:
		if !reg.IsKnown(req.Pattern) {
			return &capability.UnknownCapabilityError{Name: req.Pattern}
		}
		set(reg, req.Pattern, req)
		return nil
	}
}

func isGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}

func set(reg *capability.Registry, name string, req Request) {
	if req.Action == ActionSupport {
		reg.Support(name, req.On)
		return
	}
	reg.Enable(name, req.On)
}
