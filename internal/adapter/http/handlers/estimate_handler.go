package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "vda_service/internal/adapter/http/dto/request"
	response "vda_service/internal/adapter/http/dto/response"
	"vda_service/internal/domain/entities"
	"vda_service/internal/usecase"
	"vda_service/pkg"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

var (
	errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)
)

// EstimateHandler handles HTTP requests for damage estimates: creation, line
// edits, the rate cascade, finalization and the write-off threshold check.

type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	var payload request.CreateEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	est, err := h.usecase.Create(c.Request.Context(), payload.AssessmentID, payload.RateSet.ToEntity(), payload.Lines())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromEstimate(est))
}

func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	est, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimate(est))
}

func (h *EstimateHandler) AddLine(c *gin.Context) {
	var payload request.LineItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	est, err := h.usecase.AddLine(c.Request.Context(), c.Param("id"), payload.ToEntity())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromEstimate(est))
}

func (h *EstimateHandler) UpdateLine(c *gin.Context) {
	var payload request.LineItemPatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	est, err := h.usecase.UpdateLine(c.Request.Context(), c.Param("id"), c.Param("line_id"), payload.ToPatch())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimate(est))
}

func (h *EstimateHandler) RemoveLine(c *gin.Context) {
	est, err := h.usecase.RemoveLine(c.Request.Context(), c.Param("id"), c.Param("line_id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimate(est))
}

// UpdateRates applies a new rate set to a draft estimate, cascading through
// every line item and the VAT total.
func (h *EstimateHandler) UpdateRates(c *gin.Context) {
	var payload request.RateSetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	est, err := h.usecase.UpdateRateSet(c.Request.Context(), c.Param("id"), payload.ToEntity())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimate(est))
}

func (h *EstimateHandler) FinalizeEstimate(c *gin.Context) {
	est, err := h.usecase.Finalize(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimate(est))
}

// EvaluateThreshold compares the estimate total against a reference value
// (insured value or trade value) passed as the "reference" query parameter.
func (h *EstimateHandler) EvaluateThreshold(c *gin.Context) {
	reference, err := decimal.NewFromString(strings.TrimSpace(c.Query("reference")))
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REFERENCE", "Invalid reference value", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	result, err := h.usecase.EvaluateThreshold(c.Request.Context(), c.Param("id"), reference)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromThreshold(result))
}

func mapEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAssessmentID), errors.Is(err, usecase.ErrInvalidEstimateID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidRateSet):
		return pkg.NewDomainErrorSimple("INVALID_RATE_SET", "Invalid rate set", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidLineItem):
		return pkg.NewDomainErrorSimple("INVALID_LINE_ITEM", "Invalid line item", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidReference):
		return pkg.NewDomainErrorSimple("INVALID_REFERENCE", "Invalid reference value", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrLineNotFound):
		return pkg.NewDomainErrorSimple("LINE_NOT_FOUND", "Line item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEstimateAlreadyExists):
		return pkg.NewDomainErrorSimple("ESTIMATE_ALREADY_EXISTS", "Estimate already exists", http.StatusConflict)
	case errors.Is(err, entities.ErrEstimateFinalized):
		return pkg.NewDomainErrorSimple("ESTIMATE_FINALIZED", "Estimate is finalized", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
