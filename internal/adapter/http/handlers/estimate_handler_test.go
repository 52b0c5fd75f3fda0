package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vda_service/internal/adapter/http/handlers/mocks"
	"vda_service/internal/domain/entities"
	"vda_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func hdec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return d
}

func hdecPtr(t *testing.T, s string) *decimal.Decimal {
	d := hdec(t, s)
	return &d
}

func handlerRates(t *testing.T) entities.RateSet {
	return entities.RateSet{
		LabourRate:           hdec(t, "500"),
		PaintRate:            hdec(t, "2000"),
		VATPercentage:        hdec(t, "15"),
		OEMMarkupPct:         hdec(t, "25"),
		AftermarketMarkupPct: hdec(t, "18"),
		SecondHandMarkupPct:  hdec(t, "10"),
	}
}

// handlerEstimate builds a draft with a single repair line totalling 3500
// (strip 500 + labour 1000 + paint 2000), grand total 4025 with 15% VAT.
func handlerEstimate(t *testing.T) *entities.Estimate {
	t.Helper()
	now := time.Now().UTC()
	est, err := entities.NewEstimate("est-1", "assessment-1", handlerRates(t), now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	li := entities.LineItem{
		ID:          "line-1",
		ProcessType: entities.ProcessTypeRepair,
		Description: "Repair front wing",
		Quantities: entities.Quantities{
			StripAssembleHours: hdecPtr(t, "1"),
			LabourHours:        hdecPtr(t, "2"),
			PaintPanels:        hdecPtr(t, "1"),
		},
	}
	if err := est.AddLine(li, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return est
}

func finalizedHandlerEstimate(t *testing.T) *entities.Estimate {
	t.Helper()
	est := handlerEstimate(t)
	if err := est.Finalize(time.Now().UTC()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return est
}

const createEstimateBody = `{
	"assessment_id": "assessment-1",
	"rate_set": {"labour_rate": 500, "paint_rate": 2000, "vat_percentage": 15, "oem_markup_pct": 25, "aftermarket_markup_pct": 18, "second_hand_markup_pct": 10},
	"line_items": [{"description": "Repair front wing", "process_type": "R", "quantities": {"strip_assemble_hours": 1, "labour_hours": 2, "paint_panels": 1}}]
}`

func TestEstimateHandler_CreateEstimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates", h.CreateEstimate)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing assessment id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates", h.CreateEstimate)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString(`{"rate_set":{"labour_rate":500}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase returns mapped error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates", h.CreateEstimate)

		uc.EXPECT().Create(gomock.Any(), "assessment-1", gomock.Any(), gomock.Any()).Return(nil, usecase.ErrEstimateAlreadyExists)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString(createEstimateBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates", h.CreateEstimate)

		uc.EXPECT().Create(gomock.Any(), "assessment-1", gomock.Any(), gomock.Any()).Return(handlerEstimate(t), nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString(createEstimateBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "est-1" || body["total"] != "4025" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestEstimateHandler_GetEstimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.GET("/v1/estimates/:id", h.GetEstimate)

		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, usecase.ErrEstimateNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/estimates/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.GET("/v1/estimates/:id", h.GetEstimate)

		uc.EXPECT().GetByID(gomock.Any(), "est-1").Return(handlerEstimate(t), nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/estimates/est-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["assessment_id"] != "assessment-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestEstimateHandler_Lines(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("add line success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates/:id/lines", h.AddLine)

		uc.EXPECT().AddLine(gomock.Any(), "est-1", gomock.Any()).Return(handlerEstimate(t), nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates/est-1/lines", bytes.NewBufferString(`{"description":"Align chassis","process_type":"A","quantities":{"labour_hours":3}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("add line invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates/:id/lines", h.AddLine)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates/est-1/lines", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("update line on finalized estimate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.PATCH("/v1/estimates/:id/lines/:line_id", h.UpdateLine)

		uc.EXPECT().UpdateLine(gomock.Any(), "est-1", "line-1", gomock.Any()).Return(nil, entities.ErrEstimateFinalized)

		req := httptest.NewRequest(http.MethodPatch, "/v1/estimates/est-1/lines/line-1", bytes.NewBufferString(`{"quantities":{"labour_hours":4,"strip_assemble_hours":1,"paint_panels":1}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("remove line not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.DELETE("/v1/estimates/:id/lines/:line_id", h.RemoveLine)

		uc.EXPECT().RemoveLine(gomock.Any(), "est-1", "missing").Return(nil, entities.ErrLineNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/v1/estimates/est-1/lines/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestEstimateHandler_UpdateRates(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.PATCH("/v1/estimates/:id/rates", h.UpdateRates)

		uc.EXPECT().UpdateRateSet(gomock.Any(), "est-1", gomock.Any()).Return(handlerEstimate(t), nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/estimates/est-1/rates", bytes.NewBufferString(`{"labour_rate":600,"paint_rate":2000,"vat_percentage":15,"oem_markup_pct":25,"aftermarket_markup_pct":18,"second_hand_markup_pct":10}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid rate set", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.PATCH("/v1/estimates/:id/rates", h.UpdateRates)

		uc.EXPECT().UpdateRateSet(gomock.Any(), "est-1", gomock.Any()).Return(nil, entities.ErrInvalidRateSet)

		req := httptest.NewRequest(http.MethodPatch, "/v1/estimates/est-1/rates", bytes.NewBufferString(`{"labour_rate":-1}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestEstimateHandler_FinalizeEstimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates/:id/finalize", h.FinalizeEstimate)

		uc.EXPECT().Finalize(gomock.Any(), "est-1").Return(finalizedHandlerEstimate(t), nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates/est-1/finalize", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["finalized"] != true {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("already finalized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates/:id/finalize", h.FinalizeEstimate)

		uc.EXPECT().Finalize(gomock.Any(), "est-1").Return(nil, entities.ErrEstimateFinalized)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates/est-1/finalize", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestEstimateHandler_EvaluateThreshold(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing reference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.GET("/v1/estimates/:id/threshold", h.EvaluateThreshold)

		req := httptest.NewRequest(http.MethodGet, "/v1/estimates/est-1/threshold", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.GET("/v1/estimates/:id/threshold", h.EvaluateThreshold)

		uc.EXPECT().EvaluateThreshold(gomock.Any(), "est-1", gomock.Any()).Return(entities.ThresholdResult{Tier: entities.ThresholdTierYellow, Percentage: hdec(t, "40.25")}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/estimates/est-1/threshold?reference=10000", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["tier"] != "yellow" || body["percentage"] != "40.25" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestMapEstimateError(t *testing.T) {
	if got := mapEstimateError(usecase.ErrInvalidAssessmentID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapEstimateError(usecase.ErrInvalidEstimateID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapEstimateError(entities.ErrInvalidRateSet); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapEstimateError(entities.ErrInvalidReference); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapEstimateError(usecase.ErrEstimateAlreadyExists); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapEstimateError(usecase.ErrEstimateNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapEstimateError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
