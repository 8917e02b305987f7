package cmd

import (
	"database/sql"
	"fmt"
	"log"
	"wealthplan/api"
	"wealthplan/internal/app"
	"wealthplan/internal/repository"
	l1_service "wealthplan/internal/service/l1"
	l2_service "wealthplan/internal/service/l2"
	l3_service "wealthplan/internal/service/l3"
	"wealthplan/internal/util"

	_ "github.com/lib/pq"
)

func CloseDependencies(handler *api.ApiHandler) {
	err := handler.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

func InitializeDependencies() (*api.ApiHandler, error) {
	secrets, err := util.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	gptRepository, err := repository.NewGptRepository(secrets.ChatGPTApiKey)
	if err != nil {
		return nil, err
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	userAccountRepository := repository.NewUserAccountRepository(dbConn)
	portfolioRepository := repository.NewPortfolioRepository(dbConn)
	allocationTargetRepository := repository.NewAllocationTargetRepository(dbConn)
	criteriaRepository := repository.NewCriteriaRepository(dbConn)
	assetFundamentalsRepository := repository.NewAssetFundamentalsRepository(dbConn)
	priceRepository := repository.NewPriceRepository(dbConn)
	exchangeRateRepository := repository.NewExchangeRateRepository(dbConn)
	assetScoreRepository := repository.NewAssetScoreRepository(dbConn)
	recommendationRepository := repository.NewRecommendationRepository(dbConn)
	calculationEventRepository := repository.NewCalculationEventRepository(dbConn)

	marketDataService := l1_service.NewMarketDataService(priceRepository, exchangeRateRepository)
	auditTrailService := l1_service.NewAuditTrailService(calculationEventRepository)
	scoringService := l2_service.NewScoringService()
	recommendationService := l3_service.NewRecommendationService(dbConn, recommendationRepository)

	batchOrchestrator := app.NewBatchOrchestrator(
		dbConn,
		userAccountRepository,
		portfolioRepository,
		allocationTargetRepository,
		criteriaRepository,
		assetFundamentalsRepository,
		assetScoreRepository,
		marketDataService,
		auditTrailService,
		scoringService,
		recommendationService,
	)

	apiHandler := &api.ApiHandler{
		Db:                         dbConn,
		JwtSecret:                  secrets.Jwt,
		BatchOrchestrator:          batchOrchestrator,
		MarketDataService:          marketDataService,
		AuditTrailService:          auditTrailService,
		RecommendationService:      recommendationService,
		UserAccountRepository:      userAccountRepository,
		PortfolioRepository:        portfolioRepository,
		AllocationTargetRepository: allocationTargetRepository,
		AssetScoreRepository:       assetScoreRepository,
		CriteriaRepository:         criteriaRepository,
		GptRepository:              gptRepository,
	}

	return apiHandler, nil
}
