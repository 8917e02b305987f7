package api

import (
	"database/sql"
	"fmt"
	"time"
	"wealthplan/internal/app"
	"wealthplan/internal/logger"
	"wealthplan/internal/repository"
	l1_service "wealthplan/internal/service/l1"
	l3_service "wealthplan/internal/service/l3"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ApiHandler struct {
	Db        *sql.DB
	JwtSecret string

	BatchOrchestrator     app.BatchOrchestrator
	MarketDataService     l1_service.MarketDataService
	AuditTrailService     l1_service.AuditTrailService
	RecommendationService l3_service.RecommendationService

	UserAccountRepository      repository.UserAccountRepository
	PortfolioRepository        repository.PortfolioRepository
	AllocationTargetRepository repository.AllocationTargetRepository
	AssetScoreRepository       repository.AssetScoreRepository
	CriteriaRepository         repository.CriteriaRepository
	GptRepository              repository.GptRepository
}

func (h ApiHandler) StartApi(port int) error {
	router := h.InitializeRouterEngine()
	return router.Run(fmt.Sprintf(":%d", port))
}

func (h ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(logRequestMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to wealthplan"})
	})
	router.POST("/generateRecommendations", h.generateRecommendations)
	router.GET("/recommendations", h.getRecommendations)
	router.GET("/allocationStatus", h.getAllocationStatus)
	router.GET("/calculationEvents", h.getCalculationEvents)
	router.GET("/calculationEvents/export", h.exportCalculationEvents)
	router.POST("/constructCriteria", h.constructCriteria)
	router.POST("/publishCriteria", h.publishCriteria)

	return router
}

func returnErrorJson(err error, c *gin.Context) {
	zap.S().Error(err.Error())
	c.AbortWithStatusJSON(500, gin.H{
		"error": err.Error(),
	})
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	zap.S().Error(err.Error())
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

func logRequestMiddleware(ctx *gin.Context) {
	start := time.Now().UTC()
	ctx.Set(logger.ContextKey, zap.S())

	ctx.Next()

	zap.S().Infow("request",
		"method", ctx.Request.Method,
		"route", ctx.Request.URL.Path,
		"statusCode", ctx.Writer.Status(),
		"durationMs", time.Since(start).Milliseconds(),
		"ip", ctx.ClientIP(),
	)
}
