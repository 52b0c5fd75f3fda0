package interfaces

import "context"

//go:generate mockgen -source=workflow_bridge_interface.go -destination=mocks/workflow_bridge_mock.go -package=mock_interfaces

// IWorkflowBridge signals assessment-level status changes to the external
// workflow component when a reconciliation completes or reopens.

type IWorkflowBridge interface {
	ReconciliationCompleted(ctx context.Context, assessmentID, estimateID string) error
	ReconciliationReopened(ctx context.Context, assessmentID, estimateID string) error
}
