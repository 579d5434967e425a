package entities

import "time"

// CreatedBy records the identity that created an entity.
type CreatedBy struct {
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// FieldChange holds the before/after pair of a single tracked field.
type FieldChange struct {
	Before any `json:"before"`
	After  any `json:"after"`
}

// ModificationEntry is one append-only audit record. Entries are never
// rewritten once appended.
type ModificationEntry struct {
	UpdatedAt time.Time              `json:"updated_at"`
	UpdatedBy string                 `json:"updated_by"`
	Changes   map[string]FieldChange `json:"changes"`
}

// Diff compares two tracked-field snapshots and returns the fields whose
// values differ.
func Diff(before, after map[string]any) map[string]FieldChange {
	changes := make(map[string]FieldChange)
	for field, b := range before {
		if a, ok := after[field]; ok && a != b {
			changes[field] = FieldChange{Before: b, After: a}
		}
	}
	for field, a := range after {
		if _, ok := before[field]; !ok {
			changes[field] = FieldChange{Before: nil, After: a}
		}
	}
	if len(changes) == 0 {
		return nil
	}
	return changes
}

// Record appends one audit entry to history. Nothing is appended when no
// acting user is attached (system-initiated defaulting) or when no tracked
// field changed.
func Record(history *[]ModificationEntry, updatedBy string, before, after map[string]any, at time.Time) {
	if updatedBy == "" {
		return
	}
	changes := Diff(before, after)
	if changes == nil {
		return
	}
	*history = append(*history, ModificationEntry{
		UpdatedAt: at,
		UpdatedBy: updatedBy,
		Changes:   changes,
	})
}
