package routes

import (
	"log"
	"os"
	"strconv"
	_ "vda_service/docs" // This will be auto-generated
	"vda_service/internal/adapter/http/handlers"
	repository2 "vda_service/internal/adapter/persistence/repository"
	"vda_service/internal/infrastructure/audit"
	"vda_service/internal/infrastructure/database"
	"vda_service/internal/infrastructure/workflow"
	"vda_service/internal/usecase"
	"vda_service/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	estimateRepo := repository2.NewEstimateDynamoRepository(ddb)
	additionalsRepo := repository2.NewAdditionalsDynamoRepository(ddb)
	frcRepo := repository2.NewFRCDynamoRepository(ddb)

	auditSink := audit.NewDynamoSink(ddb)

	var workflowBridge interfaces.IWorkflowBridge
	bridge, err := workflow.NewStatusBridge(os.Getenv("WORKFLOW_SERVICE_URL"))
	if err != nil {
		log.Printf("Workflow status bridge not configured: %v", err)
	} else {
		workflowBridge = bridge
	}

	estimateUseCase := usecase.NewEstimateUseCase(estimateRepo, auditSink)
	additionalsUseCase := usecase.NewAdditionalsUseCase(additionalsRepo, estimateRepo, auditSink)
	frcUseCase := usecase.NewFRCUseCase(frcRepo, estimateRepo, additionalsRepo, workflowBridge, auditSink)

	estimateHandler := handlers.NewEstimateHandler(estimateUseCase)
	additionalsHandler := handlers.NewAdditionalsHandler(additionalsUseCase)
	frcHandler := handlers.NewFRCHandler(frcUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAssessmentCostingRoutes(v1, estimateHandler, additionalsHandler, frcHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
