package entities

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// AdditionalsAction identifies what a ledger entry does.

type AdditionalsAction string

const (
	AdditionalsActionAdded    AdditionalsAction = "added"
	AdditionalsActionRemoved  AdditionalsAction = "removed"
	AdditionalsActionReversal AdditionalsAction = "reversal"
)

// AdditionalsStatus is the approval state of a ledger entry. The only allowed
// transition is pending to approved or declined; everything after that is a
// new entry.

type AdditionalsStatus string

const (
	AdditionalsStatusPending  AdditionalsStatus = "pending"
	AdditionalsStatusApproved AdditionalsStatus = "approved"
	AdditionalsStatusDeclined AdditionalsStatus = "declined"
)

// AdditionalsEntry is one immutable row of the ledger.
//
// Domain notes:
//   - A "removed" entry carries the original estimate line's monetary values
//     negated and is auto-approved.
//   - A "reversal" entry carries the sign-inverse (or, for reinstatements, the
//     sign-restoring values) of its target and is auto-approved.
//   - Only pending entries may have their quantities edited or be deleted.

type AdditionalsEntry struct {
	ID              string            `json:"id"`
	Action          AdditionalsAction `json:"action"`
	Status          AdditionalsStatus `json:"status"`
	LineItem        LineItem          `json:"line_item"`
	OriginalLineID  string            `json:"original_line_id,omitempty"`
	ReversesEntryID string            `json:"reverses_entry_id,omitempty"`
	Reason          string            `json:"reason,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	DecidedAt       *time.Time        `json:"decided_at,omitempty"`
}

// AdditionalsLedger is the append-only log of post-finalization adjustments
// for one finalized estimate.
//
// Storage model (DynamoDB):
//   - PK: estimate_id (exactly one ledger per estimate)

type AdditionalsLedger struct {
	ID              string             `json:"id"`
	EstimateID      string             `json:"estimate_id"`
	RateSetSnapshot RateSet            `json:"rate_set_snapshot"`
	Entries         []AdditionalsEntry `json:"entries"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

// NewAdditionalsLedger snapshots the estimate's rate set by value. The
// estimate must already be finalized.
func NewAdditionalsLedger(id string, est *Estimate, now time.Time) (*AdditionalsLedger, error) {
	if !est.IsFinalized() {
		return nil, ErrEstimateNotFinalized
	}
	return &AdditionalsLedger{
		ID:              id,
		EstimateID:      est.ID,
		RateSetSnapshot: est.RateSet,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

func (l *AdditionalsLedger) Entry(id string) (AdditionalsEntry, bool) {
	for _, e := range l.Entries {
		if e.ID == id {
			return e, true
		}
	}
	return AdditionalsEntry{}, false
}

// AddEntry costs the payload against the snapshotted rate set and appends a
// pending "added" entry.
func (l *AdditionalsLedger) AddEntry(entryID string, li LineItem, now time.Time) (AdditionalsEntry, error) {
	computed, err := CostLineItem(li, l.RateSetSnapshot)
	if err != nil {
		return AdditionalsEntry{}, err
	}
	li.Computed = computed

	entry := AdditionalsEntry{
		ID:        entryID,
		Action:    AdditionalsActionAdded,
		Status:    AdditionalsStatusPending,
		LineItem:  li,
		CreatedAt: now,
	}
	l.Entries = append(l.Entries, entry)
	l.UpdatedAt = now
	return entry, nil
}

// RemoveOriginalLine appends an auto-approved "removed" entry carrying the
// negated monetary values of an original estimate line. A line may be removed
// at most once while the removal stands.
func (l *AdditionalsLedger) RemoveOriginalLine(entryID string, est *Estimate, lineID string, now time.Time) (AdditionalsEntry, error) {
	if est.ID != l.EstimateID {
		return AdditionalsEntry{}, fmt.Errorf("%w: ledger belongs to estimate %s", ErrInvalidTransition, l.EstimateID)
	}
	original, ok := est.Line(lineID)
	if !ok {
		return AdditionalsEntry{}, fmt.Errorf("%w: %s", ErrLineNotFound, lineID)
	}
	if l.IsOriginalLineRemoved(lineID) {
		return AdditionalsEntry{}, fmt.Errorf("%w: %s", ErrAlreadyRemoved, lineID)
	}

	payload := original
	payload.Computed = original.Computed.Negated()

	decidedAt := now
	entry := AdditionalsEntry{
		ID:             entryID,
		Action:         AdditionalsActionRemoved,
		Status:         AdditionalsStatusApproved,
		LineItem:       payload,
		OriginalLineID: lineID,
		CreatedAt:      now,
		DecidedAt:      &decidedAt,
	}
	l.Entries = append(l.Entries, entry)
	l.UpdatedAt = now
	return entry, nil
}

// Approve moves a pending entry to approved.
func (l *AdditionalsLedger) Approve(entryID string, now time.Time) error {
	return l.decide(entryID, AdditionalsStatusApproved, "", now)
}

// Decline moves a pending entry to declined. A non-empty reason is required.
func (l *AdditionalsLedger) Decline(entryID, reason string, now time.Time) error {
	if strings.TrimSpace(reason) == "" {
		return ErrMissingReason
	}
	return l.decide(entryID, AdditionalsStatusDeclined, reason, now)
}

func (l *AdditionalsLedger) decide(entryID string, status AdditionalsStatus, reason string, now time.Time) error {
	for i := range l.Entries {
		if l.Entries[i].ID != entryID {
			continue
		}
		if l.Entries[i].Status != AdditionalsStatusPending {
			return fmt.Errorf("%w: entry %s is %s", ErrInvalidTransition, entryID, l.Entries[i].Status)
		}
		decidedAt := now
		l.Entries[i].Status = status
		l.Entries[i].Reason = reason
		l.Entries[i].DecidedAt = &decidedAt
		l.UpdatedAt = now
		return nil
	}
	return fmt.Errorf("%w: %s", ErrEntryNotFound, entryID)
}

// DeleteEntry removes a still-pending entry. Approved and declined entries are
// financial history and can never be deleted.
func (l *AdditionalsLedger) DeleteEntry(entryID string, now time.Time) error {
	for i := range l.Entries {
		if l.Entries[i].ID != entryID {
			continue
		}
		if l.Entries[i].Status != AdditionalsStatusPending {
			return fmt.Errorf("%w: entry %s is %s", ErrInvalidTransition, entryID, l.Entries[i].Status)
		}
		l.Entries = append(l.Entries[:i], l.Entries[i+1:]...)
		l.UpdatedAt = now
		return nil
	}
	return fmt.Errorf("%w: %s", ErrEntryNotFound, entryID)
}

// UpdatePendingLine edits the quantities of a pending entry and re-derives its
// costs against the snapshotted rate set.
func (l *AdditionalsLedger) UpdatePendingLine(entryID string, patch LineItemPatch, now time.Time) error {
	for i := range l.Entries {
		if l.Entries[i].ID != entryID {
			continue
		}
		if l.Entries[i].Status != AdditionalsStatusPending {
			return fmt.Errorf("%w: entry %s is %s", ErrInvalidTransition, entryID, l.Entries[i].Status)
		}
		candidate := l.Entries[i].LineItem
		candidate.applyPatch(patch)
		computed, err := CostLineItem(candidate, l.RateSetSnapshot)
		if err != nil {
			return err
		}
		candidate.Computed = computed
		l.Entries[i].LineItem = candidate
		l.UpdatedAt = now
		return nil
	}
	return fmt.Errorf("%w: %s", ErrEntryNotFound, entryID)
}

// Reverse appends an auto-approved reversal entry whose values are the
// sign-inverse of an approved "added" entry. The target keeps its approved
// status; the reversal nets its effect out of the approved total.
func (l *AdditionalsLedger) Reverse(entryID, reason, newEntryID string, now time.Time) (AdditionalsEntry, error) {
	if strings.TrimSpace(reason) == "" {
		return AdditionalsEntry{}, ErrMissingReason
	}
	target, ok := l.Entry(entryID)
	if !ok {
		return AdditionalsEntry{}, fmt.Errorf("%w: %s", ErrEntryNotFound, entryID)
	}
	if target.Status != AdditionalsStatusApproved {
		return AdditionalsEntry{}, fmt.Errorf("%w: entry %s is %s", ErrInvalidTransition, entryID, target.Status)
	}
	if target.Action != AdditionalsActionAdded {
		return AdditionalsEntry{}, fmt.Errorf("%w: cannot reverse a %s entry", ErrInvalidTransition, target.Action)
	}
	if l.IsReversed(entryID) {
		return AdditionalsEntry{}, fmt.Errorf("%w: %s", ErrAlreadyReversed, entryID)
	}

	payload := target.LineItem
	payload.Computed = target.LineItem.Computed.Negated()
	return l.appendReversal(newEntryID, payload, entryID, reason, now), nil
}

// Reinstate cancels the effect of a declined or removed entry with an
// auto-approved reversal entry carrying sign-restoring values. For a declined
// entry that is its original values; for a removed entry it is the negation of
// the (already negative) removal.
func (l *AdditionalsLedger) Reinstate(entryID, reason, newEntryID string, now time.Time) (AdditionalsEntry, error) {
	if strings.TrimSpace(reason) == "" {
		return AdditionalsEntry{}, ErrMissingReason
	}
	target, ok := l.Entry(entryID)
	if !ok {
		return AdditionalsEntry{}, fmt.Errorf("%w: %s", ErrEntryNotFound, entryID)
	}
	if l.IsReversed(entryID) {
		return AdditionalsEntry{}, fmt.Errorf("%w: %s", ErrAlreadyReversed, entryID)
	}

	payload := target.LineItem
	switch {
	case target.Action == AdditionalsActionRemoved && target.Status == AdditionalsStatusApproved:
		payload.Computed = target.LineItem.Computed.Negated()
	case target.Status == AdditionalsStatusDeclined:
		// Declined entries never counted; reinstating makes them count.
	default:
		return AdditionalsEntry{}, fmt.Errorf("%w: entry %s (%s/%s) cannot be reinstated",
			ErrInvalidTransition, entryID, target.Action, target.Status)
	}
	return l.appendReversal(newEntryID, payload, entryID, reason, now), nil
}

func (l *AdditionalsLedger) appendReversal(newEntryID string, payload LineItem, targetID, reason string, now time.Time) AdditionalsEntry {
	decidedAt := now
	entry := AdditionalsEntry{
		ID:              newEntryID,
		Action:          AdditionalsActionReversal,
		Status:          AdditionalsStatusApproved,
		LineItem:        payload,
		ReversesEntryID: targetID,
		Reason:          reason,
		CreatedAt:       now,
		DecidedAt:       &decidedAt,
	}
	l.Entries = append(l.Entries, entry)
	l.UpdatedAt = now
	return entry
}

// IsReversed reports whether a reversal entry already targets the given entry.
// At most one reversal may target an entry.
func (l *AdditionalsLedger) IsReversed(entryID string) bool {
	for _, e := range l.Entries {
		if e.Action == AdditionalsActionReversal && e.ReversesEntryID == entryID {
			return true
		}
	}
	return false
}

// IsOriginalLineRemoved reports whether an approved removal currently stands
// against the given estimate line (a reinstated removal no longer counts).
func (l *AdditionalsLedger) IsOriginalLineRemoved(lineID string) bool {
	for _, e := range l.Entries {
		if e.Action != AdditionalsActionRemoved || e.OriginalLineID != lineID {
			continue
		}
		if e.Status == AdditionalsStatusApproved && !l.IsReversed(e.ID) {
			return true
		}
	}
	return false
}

// ApprovedTotal sums the totals of every approved entry. The sign discipline
// on removals and reversals makes this single rule net additions, removals,
// reversals and reinstatements correctly.
func (l *AdditionalsLedger) ApprovedTotal() decimal.Decimal {
	total := decimal.Decimal{}
	for _, e := range l.Entries {
		if e.Status == AdditionalsStatusApproved {
			total = total.Add(e.LineItem.Computed.Total)
		}
	}
	return total
}

// CombinedTotal is the finalized estimate total plus the approved additionals.
func (l *AdditionalsLedger) CombinedTotal(est *Estimate) decimal.Decimal {
	return est.Total.Add(l.ApprovedTotal())
}
