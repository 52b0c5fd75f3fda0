package handlers

import (
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
	errInvalidFRCPayload = pkg.NewDomainErrorSimple("INVALID_FRC_INPUT", "Invalid reconciliation payload", http.StatusBadRequest)
)

// FRCHandler handles HTTP requests for the final repair costing
// reconciliation.

type FRCHandler struct {
	usecase usecase.IFRCUseCase
}

func NewFRCHandler(uc usecase.IFRCUseCase) *FRCHandler {
	return &FRCHandler{usecase: uc}
}

// ComposeFRC snapshots the approved state of a finalized estimate and its
// additionals ledger into a new reconciliation.
func (h *FRCHandler) ComposeFRC(c *gin.Context) {
	estimateID := c.Param("id")
	log.Printf("[frc][handler] compose start estimate_id=%s", estimateID)

	frc, err := h.usecase.Compose(c.Request.Context(), estimateID)
	if err != nil {
		log.Printf("[frc][handler] compose failed estimate_id=%s err=%v", estimateID, err)
		appErr := mapFRCError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromFinalRepairCosting(frc))
}

func (h *FRCHandler) GetFRC(c *gin.Context) {
	frc, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapFRCError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFinalRepairCosting(frc))
}

func (h *FRCHandler) DecideLine(c *gin.Context) {
	frcID := c.Param("id")
	lineID := c.Param("line_id")
	var payload request.DecideFRCLineRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFRCPayload.HTTPStatus, errInvalidFRCPayload.ToHTTPError())
		return
	}
	log.Printf("[frc][handler] decide start frc_id=%s line_id=%s decision=%s", frcID, lineID, payload.Decision)

	frc, err := h.usecase.Decide(c.Request.Context(), frcID, lineID,
		entities.FRCDecision(payload.Decision), payload.ActualComponents(), payload.AdjustReason)
	if err != nil {
		log.Printf("[frc][handler] decide failed frc_id=%s line_id=%s err=%v", frcID, lineID, err)
		appErr := mapFRCError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFinalRepairCosting(frc))
}

func (h *FRCHandler) CompleteFRC(c *gin.Context) {
	frcID := c.Param("id")
	var payload request.CompleteFRCRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFRCPayload.HTTPStatus, errInvalidFRCPayload.ToHTTPError())
		return
	}
	log.Printf("[frc][handler] complete start frc_id=%s signed_by=%s", frcID, payload.Name)

	frc, err := h.usecase.Complete(c.Request.Context(), frcID, payload.Name, payload.Role)
	if err != nil {
		log.Printf("[frc][handler] complete failed frc_id=%s err=%v", frcID, err)
		appErr := mapFRCError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFinalRepairCosting(frc))
}

func (h *FRCHandler) ReopenFRC(c *gin.Context) {
	frcID := c.Param("id")
	log.Printf("[frc][handler] reopen start frc_id=%s", frcID)

	frc, err := h.usecase.Reopen(c.Request.Context(), frcID)
	if err != nil {
		log.Printf("[frc][handler] reopen failed frc_id=%s err=%v", frcID, err)
		appErr := mapFRCError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFinalRepairCosting(frc))
}

func mapFRCError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidFRCID), errors.Is(err, usecase.ErrInvalidEstimateID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidDecision):
		return pkg.NewDomainErrorSimple("INVALID_DECISION", "Invalid decision", http.StatusBadRequest)
	case errors.Is(err, entities.ErrMissingReason):
		return pkg.NewDomainErrorSimple("MISSING_REASON", "A reason is required", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidLineItem):
		return pkg.NewDomainErrorSimple("INVALID_LINE_ITEM", "Invalid line item", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrFRCNotFound):
		return pkg.NewDomainErrorSimple("FRC_NOT_FOUND", "Reconciliation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrLineNotFound):
		return pkg.NewDomainErrorSimple("LINE_NOT_FOUND", "Reconciliation line not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrFRCAlreadyExists):
		return pkg.NewDomainErrorSimple("FRC_ALREADY_EXISTS", "Reconciliation already exists for this estimate", http.StatusConflict)
	case errors.Is(err, entities.ErrEstimateNotFinalized):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FINALIZED", "Estimate is not finalized", http.StatusConflict)
	case errors.Is(err, entities.ErrIncompleteReconciliation):
		return pkg.NewDomainErrorSimple("INCOMPLETE_RECONCILIATION", "All lines must be decided", http.StatusConflict)
	case errors.Is(err, entities.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Operation not allowed in current state", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
