package app

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"wealthplan/internal/db/models/postgres/public/model"
	"wealthplan/internal/domain"
	mock_repository "wealthplan/internal/repository/mocks"
	l1_service "wealthplan/internal/service/l1"
	l2_service "wealthplan/internal/service/l2"
	l3_service "wealthplan/internal/service/l3"
	"wealthplan/internal/util"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type orchestratorFixture struct {
	handler     batchOrchestratorHandler
	userRepo    *mock_repository.MockUserAccountRepository
	portfolio   *mock_repository.MockPortfolioRepository
	targets     *mock_repository.MockAllocationTargetRepository
	criteria    *mock_repository.MockCriteriaRepository
	fundamental *mock_repository.MockAssetFundamentalsRepository
	scores      *mock_repository.MockAssetScoreRepository
	rec         *mock_repository.MockRecommendationRepository
	dbMock      sqlmock.Sqlmock

	mu     sync.Mutex
	events []model.CalculationEvent
}

func newOrchestratorFixture(t *testing.T, prices []model.LatestPrice) *orchestratorFixture {
	ctrl := gomock.NewController(t)

	f := &orchestratorFixture{
		userRepo:    mock_repository.NewMockUserAccountRepository(ctrl),
		portfolio:   mock_repository.NewMockPortfolioRepository(ctrl),
		targets:     mock_repository.NewMockAllocationTargetRepository(ctrl),
		criteria:    mock_repository.NewMockCriteriaRepository(ctrl),
		fundamental: mock_repository.NewMockAssetFundamentalsRepository(ctrl),
		scores:      mock_repository.NewMockAssetScoreRepository(ctrl),
		rec:         mock_repository.NewMockRecommendationRepository(ctrl),
	}

	eventRepo := mock_repository.NewMockCalculationEventRepository(ctrl)
	eventRepo.EXPECT().
		Append(nil, gomock.Any()).
		DoAndReturn(func(tx *sql.Tx, event model.CalculationEvent) (*model.CalculationEvent, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			f.events = append(f.events, event)
			return &event, nil
		}).
		AnyTimes()

	priceRepo := mock_repository.NewMockPriceRepository(ctrl)
	priceRepo.EXPECT().ListLatest().Return(prices, nil).AnyTimes()
	rateRepo := mock_repository.NewMockExchangeRateRepository(ctrl)
	rateRepo.EXPECT().List().Return([]model.ExchangeRate{}, nil).AnyTimes()

	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	f.dbMock = dbMock

	f.handler = batchOrchestratorHandler{
		Db:                          db,
		UserAccountRepository:       f.userRepo,
		PortfolioRepository:         f.portfolio,
		AllocationTargetRepository:  f.targets,
		CriteriaRepository:          f.criteria,
		AssetFundamentalsRepository: f.fundamental,
		AssetScoreRepository:        f.scores,
		MarketDataService:           l1_service.NewMarketDataService(priceRepo, rateRepo),
		AuditTrailService:           l1_service.NewAuditTrailService(eventRepo),
		ScoringService:              l2_service.NewScoringService(),
		RecommendationService:       l3_service.NewRecommendationService(db, f.rec),
	}

	return f
}

func (f *orchestratorFixture) eventTypesForUser(userID uuid.UUID) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []string{}
	for _, e := range f.events {
		if e.UserAccountID == userID {
			out = append(out, e.EventType)
		}
	}
	return out
}

func yieldRule(versionID uuid.UUID) model.CriterionRule {
	return model.CriterionRule{
		CriterionRuleID:   uuid.New(),
		CriteriaVersionID: versionID,
		Name:              "high dividend yield",
		Metric:            "dividend_yield",
		Operator:          "gte",
		Threshold:         decimal.RequireFromString("4.0"),
		Points:            20,
		SortOrder:         0,
	}
}

func Test_ProcessBatch(t *testing.T) {
	t.Run("isolates failures and closes every audit trail", func(t *testing.T) {
		successUserID := uuid.New()
		skippedUserID := uuid.New()
		failedUserID := uuid.New()
		classID := uuid.New()
		versionID := uuid.New()
		failedVersionID := uuid.New()

		f := newOrchestratorFixture(t, []model.LatestPrice{
			{Symbol: "VTI", Price: decimal.RequireFromString("200"), Currency: "USD"},
		})

		account := func(id uuid.UUID) *model.UserAccount {
			return &model.UserAccount{
				UserAccountID:       id,
				BaseCurrency:        "USD",
				DefaultContribution: decimal.RequireFromString("1000.00"),
			}
		}
		f.userRepo.EXPECT().Get(successUserID).Return(account(successUserID), nil)
		f.userRepo.EXPECT().Get(skippedUserID).Return(account(skippedUserID), nil)
		f.userRepo.EXPECT().Get(failedUserID).Return(account(failedUserID), nil)

		// success user: one priced asset, one matching rule
		f.criteria.EXPECT().GetActiveVersion(successUserID).Return(&model.CriteriaVersion{
			CriteriaVersionID: versionID,
			UserAccountID:     successUserID,
			Version:           1,
			IsActive:          true,
		}, nil)
		f.criteria.EXPECT().ListRules(versionID).Return([]model.CriterionRule{yieldRule(versionID)}, nil)
		f.portfolio.EXPECT().ListAssets(successUserID).Return([]model.PortfolioAsset{
			{AssetID: uuid.New(), UserAccountID: successUserID, Symbol: "VTI", AssetClassID: classID, Quantity: decimal.NewFromInt(10), Currency: "USD"},
		}, nil)
		f.fundamental.EXPECT().GetManyBySymbols([]string{"VTI"}).Return(map[string]map[string]decimal.Decimal{
			"VTI": {"dividend_yield": decimal.RequireFromString("5.2")},
		}, nil)
		f.targets.EXPECT().ListForUser(successUserID).Return([]model.AllocationTarget{}, nil)
		f.dbMock.ExpectBegin()
		f.dbMock.ExpectCommit()
		f.rec.EXPECT().
			AddSession(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(tx *sql.Tx, session model.RecommendationSession, items []*model.RecommendationItem) (*model.RecommendationSession, error) {
				if tx == nil {
					return nil, fmt.Errorf("session write outside a transaction")
				}
				return &session, nil
			})

		// skipped user: no active criteria version
		f.criteria.EXPECT().GetActiveVersion(skippedUserID).Return(nil, nil)

		// failed user: asset with no stored price
		f.criteria.EXPECT().GetActiveVersion(failedUserID).Return(&model.CriteriaVersion{
			CriteriaVersionID: failedVersionID,
			UserAccountID:     failedUserID,
			Version:           1,
			IsActive:          true,
		}, nil)
		f.criteria.EXPECT().ListRules(failedVersionID).Return([]model.CriterionRule{yieldRule(failedVersionID)}, nil)
		f.portfolio.EXPECT().ListAssets(failedUserID).Return([]model.PortfolioAsset{
			{AssetID: uuid.New(), UserAccountID: failedUserID, Symbol: "UNPRICED", AssetClassID: classID, Quantity: decimal.NewFromInt(1), Currency: "USD"},
		}, nil)
		f.fundamental.EXPECT().GetManyBySymbols([]string{"UNPRICED"}).Return(map[string]map[string]decimal.Decimal{}, nil)

		f.scores.EXPECT().UpsertMany(nil, gomock.Any()).Return(nil).AnyTimes()
		f.scores.EXPECT().AddHistoryMany(nil, gomock.Any()).Return(nil).AnyTimes()

		out, err := f.handler.ProcessBatch(context.Background(), []uuid.UUID{successUserID, skippedUserID, failedUserID})
		require.NoError(t, err)

		require.Equal(t, 3, out.UsersProcessed)
		require.Equal(t, 1, out.UsersSuccess)
		require.Equal(t, 1, out.UsersSkipped)
		require.Equal(t, 1, out.UsersFailed)
		require.Equal(t, 2, out.TotalScored)
		require.Equal(t, 1, out.TotalGenerated)
		// scores are 20 (matched rule) and 0 (missing fundamentals)
		require.InDelta(t, 10.0, out.MeanScore, 0.001)
		require.InDelta(t, 14.142, out.ScoreStdev, 0.001)

		require.Equal(t, []string{
			"CALC_STARTED", "INPUTS_CAPTURED", "SCORES_COMPUTED", "CALC_COMPLETED",
		}, f.eventTypesForUser(successUserID))
		require.Equal(t, []string{
			"CALC_STARTED", "CALC_COMPLETED",
		}, f.eventTypesForUser(skippedUserID))
		require.Equal(t, []string{
			"CALC_STARTED", "INPUTS_CAPTURED", "SCORES_COMPUTED", "CALC_COMPLETED",
		}, f.eventTypesForUser(failedUserID))

		for _, u := range out.PerUser {
			switch u.UserAccountID {
			case successUserID:
				require.Equal(t, domain.UserRunState_Completed, u.State)
				require.Equal(t, 1, u.AssetsScored)
				require.Equal(t, 1, u.ItemsGenerated)
			case skippedUserID:
				require.Equal(t, domain.UserRunState_Skipped, u.State)
				require.Equal(t, "no active criteria version", u.SkipReason)
			case failedUserID:
				require.Equal(t, domain.UserRunState_Failed, u.State)
				require.Error(t, u.Err)
				require.Contains(t, u.Err.Error(), "UNPRICED")
			}
		}
	})

	t.Run("empty portfolio and non-positive contribution are skips", func(t *testing.T) {
		emptyUserID := uuid.New()
		brokeUserID := uuid.New()
		versionID := uuid.New()
		brokeVersionID := uuid.New()

		f := newOrchestratorFixture(t, []model.LatestPrice{})

		f.userRepo.EXPECT().Get(emptyUserID).Return(&model.UserAccount{
			UserAccountID:       emptyUserID,
			BaseCurrency:        "USD",
			DefaultContribution: decimal.RequireFromString("1000.00"),
		}, nil)
		f.criteria.EXPECT().GetActiveVersion(emptyUserID).Return(&model.CriteriaVersion{CriteriaVersionID: versionID}, nil)
		f.portfolio.EXPECT().ListAssets(emptyUserID).Return([]model.PortfolioAsset{}, nil)

		f.userRepo.EXPECT().Get(brokeUserID).Return(&model.UserAccount{
			UserAccountID:       brokeUserID,
			BaseCurrency:        "USD",
			DefaultContribution: decimal.Zero,
		}, nil)
		f.criteria.EXPECT().GetActiveVersion(brokeUserID).Return(&model.CriteriaVersion{CriteriaVersionID: brokeVersionID}, nil)
		f.portfolio.EXPECT().ListAssets(brokeUserID).Return([]model.PortfolioAsset{
			{AssetID: uuid.New(), Symbol: "VTI", AssetClassID: uuid.New(), Quantity: decimal.NewFromInt(1), Currency: "USD"},
		}, nil)

		out, err := f.handler.ProcessBatch(context.Background(), []uuid.UUID{emptyUserID, brokeUserID})
		require.NoError(t, err)
		require.Equal(t, 2, out.UsersSkipped)

		reasons := map[uuid.UUID]string{}
		for _, u := range out.PerUser {
			require.Equal(t, domain.UserRunState_Skipped, u.State)
			reasons[u.UserAccountID] = u.SkipReason
		}
		require.Equal(t, "empty portfolio", reasons[emptyUserID])
		require.Equal(t, "non-positive investable amount", reasons[brokeUserID])

		// skipped runs still close their trails
		require.Equal(t, []string{"CALC_STARTED", "CALC_COMPLETED"}, f.eventTypesForUser(emptyUserID))
		require.Equal(t, []string{"CALC_STARTED", "CALC_COMPLETED"}, f.eventTypesForUser(brokeUserID))
	})

	t.Run("empty user list falls back to every account", func(t *testing.T) {
		f := newOrchestratorFixture(t, []model.LatestPrice{})
		f.userRepo.EXPECT().List().Return([]model.UserAccount{}, nil)

		out, err := f.handler.ProcessBatch(context.Background(), nil)
		require.NoError(t, err)
		require.Equal(t, 0, out.UsersProcessed)
	})

	t.Run("cancellation drains the pool instead of hanging", func(t *testing.T) {
		f := newOrchestratorFixture(t, []model.LatestPrice{})
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// more users than workers, so jobs are still queued when the
		// first user cancels the batch mid-flight
		userIDs := []uuid.UUID{}
		for i := 0; i < 12; i++ {
			userIDs = append(userIDs, uuid.New())
		}

		f.userRepo.EXPECT().
			Get(gomock.Any()).
			DoAndReturn(func(id uuid.UUID) (*model.UserAccount, error) {
				cancel()
				return nil, fmt.Errorf("connection reset")
			}).
			AnyTimes()

		out, err := f.handler.ProcessBatch(ctx, userIDs)
		require.Nil(t, out)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func Test_RuleFromModel(t *testing.T) {
	t.Run("maps fields and splits required metrics", func(t *testing.T) {
		m := yieldRule(uuid.New())
		m.ThresholdUpper = util.DecimalPointer(decimal.RequireFromString("8.0"))
		m.RequiredMetrics = util.StringPointer("payout_ratio, eps")

		rule := RuleFromModel(m)
		require.Equal(t, m.CriterionRuleID, rule.CriterionRuleID)
		require.Equal(t, domain.RuleOperator_GreaterThanEqual, rule.Operator)
		require.Equal(t, "4", rule.Threshold.String())
		require.Equal(t, "8", rule.ThresholdUpper.String())
		require.Equal(t, []string{"payout_ratio", "eps"}, rule.RequiredMetrics)
	})

	t.Run("nil required metrics stays empty", func(t *testing.T) {
		rule := RuleFromModel(yieldRule(uuid.New()))
		require.Empty(t, rule.RequiredMetrics)
	})
}
