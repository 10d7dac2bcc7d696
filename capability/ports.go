package capability

import "fmt"

// TableAccessor grants the snapshot reader and writer bulk access to the
// raw name -> record table. Persistence must round-trip every field of
// every record exactly, which the query and mutation methods cannot
// express; ordinary callers have no business here and should use those
// methods instead.
type TableAccessor interface {
	// ExportRecords returns a deep copy of every record keyed by name.
	ExportRecords() map[string]Info

	// ImportRecords replaces the table contents with the given records.
	ImportRecords(records map[string]Info) error
}

// ExportRecords implements TableAccessor.
func (r *Registry) ExportRecords() map[string]Info {
	out := make(map[string]Info, len(r.entries))
	for name, info := range r.entries {
		out[name] = *info
	}
	return out
}

// ImportRecords implements TableAccessor. The incoming table becomes the
// full capability universe; it is not merged with the current one.
func (r *Registry) ImportRecords(records map[string]Info) error {
	if len(records) == 0 {
		return ErrEmptyTable
	}
	entries := make(map[string]*Info, len(records))
	for name, info := range records {
		if name == "" {
			return fmt.Errorf("capability record with empty name")
		}
		rec := info
		entries[name] = &rec
	}
	r.entries = entries
	return nil
}
