package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	request "vda_service/internal/adapter/http/dto/request"
	response "vda_service/internal/adapter/http/dto/response"
	"vda_service/internal/domain/entities"
	"vda_service/internal/usecase"
	"vda_service/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidAdditionalsPayload = pkg.NewDomainErrorSimple("INVALID_ADDITIONALS_INPUT", "Invalid additionals payload", http.StatusBadRequest)
)

// AdditionalsHandler handles HTTP requests for the post-finalization
// adjustment ledger.

type AdditionalsHandler struct {
	usecase usecase.IAdditionalsUseCase
}

func NewAdditionalsHandler(uc usecase.IAdditionalsUseCase) *AdditionalsHandler {
	return &AdditionalsHandler{usecase: uc}
}

// GetLedger returns the estimate's ledger, creating it on first access.
func (h *AdditionalsHandler) GetLedger(c *gin.Context) {
	ledger, est, err := h.usecase.GetOrCreate(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapAdditionalsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAdditionalsLedgerWithEstimate(ledger, est))
}

func (h *AdditionalsHandler) AddEntry(c *gin.Context) {
	estimateID := c.Param("id")
	var payload request.LineItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAdditionalsPayload.HTTPStatus, errInvalidAdditionalsPayload.ToHTTPError())
		return
	}
	log.Printf("[additionals][handler] add entry start estimate_id=%s", estimateID)

	ledger, err := h.usecase.AddEntry(c.Request.Context(), estimateID, payload.ToEntity())
	if err != nil {
		log.Printf("[additionals][handler] add entry failed estimate_id=%s err=%v", estimateID, err)
		appErr := mapAdditionalsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromAdditionalsLedger(ledger))
}

// RemoveOriginalLine appends an auto-approved negation of a frozen estimate
// line.
func (h *AdditionalsHandler) RemoveOriginalLine(c *gin.Context) {
	estimateID := c.Param("id")
	lineID := c.Param("line_id")
	log.Printf("[additionals][handler] remove original line start estimate_id=%s line_id=%s", estimateID, lineID)

	ledger, err := h.usecase.RemoveOriginalLine(c.Request.Context(), estimateID, lineID)
	if err != nil {
		log.Printf("[additionals][handler] remove original line failed estimate_id=%s line_id=%s err=%v", estimateID, lineID, err)
		appErr := mapAdditionalsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromAdditionalsLedger(ledger))
}

func (h *AdditionalsHandler) UpdateEntry(c *gin.Context) {
	var payload request.LineItemPatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAdditionalsPayload.HTTPStatus, errInvalidAdditionalsPayload.ToHTTPError())
		return
	}

	ledger, err := h.usecase.UpdatePendingLine(c.Request.Context(), c.Param("id"), c.Param("entry_id"), payload.ToPatch())
	if err != nil {
		appErr := mapAdditionalsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAdditionalsLedger(ledger))
}

func (h *AdditionalsHandler) ApproveEntry(c *gin.Context) {
	h.decideEntry(c, "approve", func(ctx context.Context, estimateID, entryID string) (*entities.AdditionalsLedger, error) {
		return h.usecase.Approve(ctx, estimateID, entryID)
	})
}

func (h *AdditionalsHandler) DeclineEntry(c *gin.Context) {
	var payload request.ReasonRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAdditionalsPayload.HTTPStatus, errInvalidAdditionalsPayload.ToHTTPError())
		return
	}
	h.decideEntry(c, "decline", func(ctx context.Context, estimateID, entryID string) (*entities.AdditionalsLedger, error) {
		return h.usecase.Decline(ctx, estimateID, entryID, payload.Reason)
	})
}

func (h *AdditionalsHandler) DeleteEntry(c *gin.Context) {
	h.decideEntry(c, "delete", func(ctx context.Context, estimateID, entryID string) (*entities.AdditionalsLedger, error) {
		return h.usecase.DeleteEntry(ctx, estimateID, entryID)
	})
}

func (h *AdditionalsHandler) ReverseEntry(c *gin.Context) {
	var payload request.ReasonRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAdditionalsPayload.HTTPStatus, errInvalidAdditionalsPayload.ToHTTPError())
		return
	}
	h.decideEntry(c, "reverse", func(ctx context.Context, estimateID, entryID string) (*entities.AdditionalsLedger, error) {
		return h.usecase.Reverse(ctx, estimateID, entryID, payload.Reason)
	})
}

func (h *AdditionalsHandler) ReinstateEntry(c *gin.Context) {
	var payload request.ReasonRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAdditionalsPayload.HTTPStatus, errInvalidAdditionalsPayload.ToHTTPError())
		return
	}
	h.decideEntry(c, "reinstate", func(ctx context.Context, estimateID, entryID string) (*entities.AdditionalsLedger, error) {
		return h.usecase.Reinstate(ctx, estimateID, entryID, payload.Reason)
	})
}

func (h *AdditionalsHandler) decideEntry(
	c *gin.Context,
	action string,
	decide func(ctx context.Context, estimateID, entryID string) (*entities.AdditionalsLedger, error),
) {
	estimateID := c.Param("id")
	entryID := c.Param("entry_id")
	log.Printf("[additionals][handler] %s start estimate_id=%s entry_id=%s", action, estimateID, entryID)

	ledger, err := decide(c.Request.Context(), estimateID, entryID)
	if err != nil {
		log.Printf("[additionals][handler] %s failed estimate_id=%s entry_id=%s err=%v", action, estimateID, entryID, err)
		appErr := mapAdditionalsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAdditionalsLedger(ledger))
}

func mapAdditionalsError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEstimateID), errors.Is(err, usecase.ErrInvalidEntryID), errors.Is(err, usecase.ErrInvalidLineID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidLineItem):
		return pkg.NewDomainErrorSimple("INVALID_LINE_ITEM", "Invalid line item", http.StatusBadRequest)
	case errors.Is(err, entities.ErrMissingReason):
		return pkg.NewDomainErrorSimple("MISSING_REASON", "A reason is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLedgerNotFound):
		return pkg.NewDomainErrorSimple("LEDGER_NOT_FOUND", "Additionals ledger not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrEntryNotFound):
		return pkg.NewDomainErrorSimple("ENTRY_NOT_FOUND", "Ledger entry not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrLineNotFound):
		return pkg.NewDomainErrorSimple("LINE_NOT_FOUND", "Line item not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrEstimateNotFinalized):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FINALIZED", "Estimate is not finalized", http.StatusConflict)
	case errors.Is(err, entities.ErrAlreadyRemoved):
		return pkg.NewDomainErrorSimple("LINE_ALREADY_REMOVED", "Line already removed", http.StatusConflict)
	case errors.Is(err, entities.ErrAlreadyReversed):
		return pkg.NewDomainErrorSimple("ENTRY_ALREADY_REVERSED", "Entry already reversed", http.StatusConflict)
	case errors.Is(err, entities.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Operation not allowed in current state", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
