package entities

import "time"

// AuditEvent describes one mutating operation with enough data to reconstruct
// the change. The core emits events; a collaborator persists them.

type AuditEvent struct {
	EntityType string            `json:"entity_type"`
	EntityID   string            `json:"entity_id"`
	Action     string            `json:"action"`
	FieldName  string            `json:"field_name,omitempty"`
	OldValue   string            `json:"old_value,omitempty"`
	NewValue   string            `json:"new_value,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty"`
	OccurredAt time.Time         `json:"occurred_at"`
}
