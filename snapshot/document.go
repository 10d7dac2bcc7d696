// Package snapshot persists capability registry state verbatim across
// compilation boundaries. The reader and writer here are the two
// privileged collaborators granted bulk table access through
// capability.TableAccessor; everything else goes through the registry's
// own queries and mutations.
package snapshot

import (
	"fmt"
	"time"

	"github.com/openclc-dev/openclc-front-sdk/capability"
	"github.com/openclc-dev/openclc-front-sdk/dialect"
)

// FormatVersion is the current snapshot document format.
const FormatVersion = 1

// Document is the serialized form of one registry table.
type Document struct {
	FormatVersion int               `yaml:"snapshot_version" json:"snapshot_version"`
	SavedAt       time.Time         `yaml:"saved_at" json:"saved_at"`
	Capabilities  map[string]Record `yaml:"capabilities" json:"capabilities"`
}

// Record mirrors capability.Info field for field. Every field round-trips
// exactly; none are elided when false or zero.
type Record struct {
	Available    uint16 `yaml:"available" json:"available"`
	Core         uint8  `yaml:"core" json:"core"`
	OptionalCore uint8  `yaml:"optional_core" json:"optional_core"`
	Supported    bool   `yaml:"supported" json:"supported"`
	Enabled      bool   `yaml:"enabled" json:"enabled"`
}

// FromRecords converts an exported registry table to a document.
func FromRecords(records map[string]capability.Info) *Document {
	doc := &Document{
		FormatVersion: FormatVersion,
		SavedAt:       time.Now().UTC(),
		Capabilities:  make(map[string]Record, len(records)),
	}
	for name, info := range records {
		doc.Capabilities[name] = Record{
			Available:    uint16(info.Available),
			Core:         uint8(info.Core),
			OptionalCore: uint8(info.OptionalCore),
			Supported:    info.Supported,
			Enabled:      info.Enabled,
		}
	}
	return doc
}

// ToRecords converts the document back to a registry table.
func (d *Document) ToRecords() map[string]capability.Info {
	records := make(map[string]capability.Info, len(d.Capabilities))
	for name, rec := range d.Capabilities {
		records[name] = capability.Info{
			Available:    dialect.Version(rec.Available),
			Core:         capability.Mask(rec.Core),
			OptionalCore: capability.Mask(rec.OptionalCore),
			Supported:    rec.Supported,
			Enabled:      rec.Enabled,
		}
	}
	return records
}

// Validate checks document invariants before import.
func (d *Document) Validate() error {
	if d.FormatVersion != FormatVersion {
		return fmt.Errorf("unsupported snapshot format version %d", d.FormatVersion)
	}
	if len(d.Capabilities) == 0 {
		return fmt.Errorf("snapshot carries no capability records")
	}
	for name := range d.Capabilities {
		if name == "" {
			return fmt.Errorf("snapshot carries a record with an empty name")
		}
	}
	return nil
}
