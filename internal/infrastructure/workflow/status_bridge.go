package workflow

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"vda_service/internal/usecase/interfaces"
)

var ErrMissingWorkflowServiceURL = errors.New("missing WORKFLOW_SERVICE_URL")
var ErrWorkflowBridgeNotConfigured = errors.New("workflow bridge not configured")

// StatusBridge notifies the assessment workflow service when a reconciliation
// completes or reopens. Completion moves the assessment towards archiving;
// reopening pulls it back.
//
// The bridge supports a mock mode for local runs without a workflow service
// (WORKFLOW_BRIDGE_MOCK=1).

type StatusBridge struct {
	baseURL  string
	client   *http.Client
	mockMode bool
}

var _ interfaces.IWorkflowBridge = (*StatusBridge)(nil)

func NewStatusBridge(baseURL string) (*StatusBridge, error) {
	if isWorkflowBridgeMockEnabled() {
		log.Printf("[workflow][bridge] mock mode enabled")
		return &StatusBridge{mockMode: true}, nil
	}

	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		log.Printf("[workflow][bridge] missing WORKFLOW_SERVICE_URL")
		return nil, ErrMissingWorkflowServiceURL
	}

	log.Printf("[workflow][bridge] client initialized base_url=%s", baseURL)
	return &StatusBridge{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}, nil
}

func (b *StatusBridge) ReconciliationCompleted(ctx context.Context, assessmentID, estimateID string) error {
	return b.signal(ctx, "reconciliation_completed", assessmentID, estimateID)
}

func (b *StatusBridge) ReconciliationReopened(ctx context.Context, assessmentID, estimateID string) error {
	return b.signal(ctx, "reconciliation_reopened", assessmentID, estimateID)
}

func (b *StatusBridge) signal(ctx context.Context, event, assessmentID, estimateID string) error {
	if b != nil && b.mockMode {
		log.Printf("[workflow][bridge] mock signal event=%s assessment_id=%s estimate_id=%s", event, assessmentID, estimateID)
		return nil
	}
	if b == nil || b.client == nil {
		log.Printf("[workflow][bridge] bridge not configured")
		return ErrWorkflowBridgeNotConfigured
	}

	payload, err := json.Marshal(map[string]string{
		"event":         event,
		"assessment_id": assessmentID,
		"estimate_id":   estimateID,
	})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/internal/assessments/%s/signals", b.baseURL, assessmentID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.client.Do(req)
	if err != nil {
		log.Printf("[workflow][bridge] signal failed event=%s err=%v", event, err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[workflow][bridge] signal rejected event=%s status=%d", event, resp.StatusCode)
		return fmt.Errorf("workflow service returned status %d", resp.StatusCode)
	}
	log.Printf("[workflow][bridge] signal delivered event=%s assessment_id=%s", event, assessmentID)
	return nil
}

func isWorkflowBridgeMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("WORKFLOW_BRIDGE_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
