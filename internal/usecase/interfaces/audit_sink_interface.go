package interfaces

import (
	"context"
	"vda_service/internal/domain/entities"
)

//go:generate mockgen -source=audit_sink_interface.go -destination=mocks/audit_sink_mock.go -package=mock_interfaces

// IAuditSink receives one event per mutating operation. A failing sink never
// rolls back the business mutation; callers log and surface the failure
// separately.

type IAuditSink interface {
	Record(ctx context.Context, event entities.AuditEvent) error
}
