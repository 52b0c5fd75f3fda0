package routes

import (
	"vda_service/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEstimates = "/estimates"
	PathFRC       = "/frc"
)

func addAssessmentCostingRoutes(
	rg *gin.RouterGroup,
	estimateHandler *handlers.EstimateHandler,
	additionalsHandler *handlers.AdditionalsHandler,
	frcHandler *handlers.FRCHandler,
) {
	estimates := rg.Group(PathEstimates)
	{
		estimates.POST("", estimateHandler.CreateEstimate)
		estimates.GET("/:id", estimateHandler.GetEstimate)
		estimates.POST("/:id/lines", estimateHandler.AddLine)
		estimates.PATCH("/:id/lines/:line_id", estimateHandler.UpdateLine)
		estimates.DELETE("/:id/lines/:line_id", estimateHandler.RemoveLine)
		estimates.PATCH("/:id/rates", estimateHandler.UpdateRates)
		estimates.POST("/:id/finalize", estimateHandler.FinalizeEstimate)
		estimates.GET("/:id/threshold", estimateHandler.EvaluateThreshold)

		estimates.GET("/:id/additionals", additionalsHandler.GetLedger)
		estimates.POST("/:id/additionals/entries", additionalsHandler.AddEntry)
		estimates.POST("/:id/additionals/remove-original/:line_id", additionalsHandler.RemoveOriginalLine)
		estimates.PATCH("/:id/additionals/entries/:entry_id", additionalsHandler.UpdateEntry)
		estimates.PATCH("/:id/additionals/entries/:entry_id/approve", additionalsHandler.ApproveEntry)
		estimates.PATCH("/:id/additionals/entries/:entry_id/decline", additionalsHandler.DeclineEntry)
		estimates.DELETE("/:id/additionals/entries/:entry_id", additionalsHandler.DeleteEntry)
		estimates.POST("/:id/additionals/entries/:entry_id/reverse", additionalsHandler.ReverseEntry)
		estimates.POST("/:id/additionals/entries/:entry_id/reinstate", additionalsHandler.ReinstateEntry)

		estimates.POST("/:id/frc", frcHandler.ComposeFRC)
	}

	frc := rg.Group(PathFRC)
	{
		frc.GET("/:id", frcHandler.GetFRC)
		frc.PATCH("/:id/lines/:line_id", frcHandler.DecideLine)
		frc.POST("/:id/complete", frcHandler.CompleteFRC)
		frc.POST("/:id/reopen", frcHandler.ReopenFRC)
	}
}
