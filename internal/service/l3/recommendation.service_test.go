package l3_service

import (
	"database/sql"
	"fmt"
	"testing"
	"time"
	"wealthplan/internal/db/models/postgres/public/model"
	"wealthplan/internal/domain"
	mock_repository "wealthplan/internal/repository/mocks"
	"wealthplan/internal/util"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func candidate(symbol string, gap string, score int32, target domain.AllocationTarget, overAllocated bool) domain.AssetWithContext {
	return domain.AssetWithContext{
		Asset: domain.PortfolioAsset{
			AssetID:      uuid.New(),
			Symbol:       symbol,
			AssetClassID: target.AssetClassID,
		},
		ClassStatus: domain.AllocationStatus{
			AssetClassID:    target.AssetClassID,
			AllocationGap:   decimal.RequireFromString(gap),
			IsOverAllocated: overAllocated,
		},
		ClassTarget: target,
		Score:       score,
	}
}

func openTarget() domain.AllocationTarget {
	return domain.DefaultAllocationTarget(uuid.New())
}

func amountsBySymbol(items []domain.RecommendationItem) map[string]string {
	out := map[string]string{}
	for _, item := range items {
		out[item.Symbol] = item.RecommendedAmount.StringFixed(2)
	}
	return out
}

func Test_DistributeCapital(t *testing.T) {
	t.Run("splits proportionally to priority", func(t *testing.T) {
		// priorities 6 and 2, so a 3:1 split of 1000.00
		out, err := DistributeCapital(DistributeCapitalInput{
			Assets: []domain.AssetWithContext{
				candidate("VTI", "15", 40, openTarget(), false),
				candidate("BND", "10", 20, openTarget(), false),
			},
			TotalInvestable: decimal.RequireFromString("1000.00"),
		})
		require.NoError(t, err)

		amounts := amountsBySymbol(out.Items)
		require.Equal(t, "750.00", amounts["VTI"])
		require.Equal(t, "250.00", amounts["BND"])
		require.True(t, out.Unallocated.IsZero())
	})

	t.Run("over-allocated asset gets exactly zero and is excluded from the ratio", func(t *testing.T) {
		out, err := DistributeCapital(DistributeCapitalInput{
			Assets: []domain.AssetWithContext{
				candidate("VTI", "15", 40, openTarget(), false),
				candidate("QQQ", "-5", 90, openTarget(), true),
			},
			TotalInvestable: decimal.RequireFromString("1000.00"),
		})
		require.NoError(t, err)

		amounts := amountsBySymbol(out.Items)
		require.Equal(t, "0.00", amounts["QQQ"])
		require.Equal(t, "1000.00", amounts["VTI"])

		for _, item := range out.Items {
			if item.Symbol == "QQQ" {
				require.True(t, item.IsOverAllocated)
			}
		}
	})

	t.Run("amounts always sum to the investable total", func(t *testing.T) {
		// three equal priorities cannot split 100.00 evenly; the rounding
		// remainder lands on exactly one asset
		out, err := DistributeCapital(DistributeCapitalInput{
			Assets: []domain.AssetWithContext{
				candidate("AAA", "10", 50, openTarget(), false),
				candidate("BBB", "10", 50, openTarget(), false),
				candidate("CCC", "10", 50, openTarget(), false),
			},
			TotalInvestable: decimal.RequireFromString("100.00"),
		})
		require.NoError(t, err)

		sum := decimal.Zero
		for _, item := range out.Items {
			sum = sum.Add(item.RecommendedAmount)
		}
		require.Equal(t, "100.00", sum.StringFixed(2))

		amounts := amountsBySymbol(out.Items)
		require.Equal(t, "33.34", amounts["AAA"])
		require.Equal(t, "33.33", amounts["BBB"])
		require.Equal(t, "33.33", amounts["CCC"])
	})

	t.Run("equal-weight fallback when no priority is positive", func(t *testing.T) {
		out, err := DistributeCapital(DistributeCapitalInput{
			Assets: []domain.AssetWithContext{
				candidate("VTI", "0", 50, openTarget(), false),
				candidate("BND", "-2", 30, openTarget(), false),
			},
			TotalInvestable: decimal.RequireFromString("500.00"),
		})
		require.NoError(t, err)

		amounts := amountsBySymbol(out.Items)
		require.Equal(t, "250.00", amounts["VTI"])
		require.Equal(t, "250.00", amounts["BND"])
	})

	t.Run("amount below the class floor is redistributed", func(t *testing.T) {
		floored := domain.AllocationTarget{
			AssetClassID:       uuid.New(),
			TargetMinPct:       decimal.Zero,
			TargetMaxPct:       decimal.RequireFromString("100"),
			MinAllocationValue: decimal.RequireFromString("300.00"),
		}

		out, err := DistributeCapital(DistributeCapitalInput{
			Assets: []domain.AssetWithContext{
				candidate("VTI", "10", 90, openTarget(), false),
				candidate("BND", "10", 10, floored, false),
			},
			TotalInvestable: decimal.RequireFromString("1000.00"),
		})
		require.NoError(t, err)

		// BND's proportional share (100.00) is under the 300.00 floor, so
		// everything flows to VTI
		amounts := amountsBySymbol(out.Items)
		require.Equal(t, "0.00", amounts["BND"])
		require.Equal(t, "1000.00", amounts["VTI"])
		require.True(t, out.Unallocated.IsZero())
	})

	t.Run("unsatisfiable floors leave capital unallocated", func(t *testing.T) {
		floored := domain.AllocationTarget{
			AssetClassID:       uuid.New(),
			TargetMinPct:       decimal.Zero,
			TargetMaxPct:       decimal.RequireFromString("100"),
			MinAllocationValue: decimal.RequireFromString("500.00"),
		}

		out, err := DistributeCapital(DistributeCapitalInput{
			Assets: []domain.AssetWithContext{
				candidate("BND", "10", 50, floored, false),
			},
			TotalInvestable: decimal.RequireFromString("100.00"),
		})
		require.NoError(t, err)
		require.Equal(t, "100.00", out.Unallocated.StringFixed(2))
		require.Equal(t, "0.00", amountsBySymbol(out.Items)["BND"])
	})

	t.Run("max asset count keeps only the top priorities per class", func(t *testing.T) {
		capped := domain.AllocationTarget{
			AssetClassID:  uuid.New(),
			TargetMinPct:  decimal.Zero,
			TargetMaxPct:  decimal.RequireFromString("100"),
			MaxAssetCount: util.Int32Pointer(2),
		}

		out, err := DistributeCapital(DistributeCapitalInput{
			Assets: []domain.AssetWithContext{
				candidate("AAA", "10", 90, capped, false),
				candidate("BBB", "10", 60, capped, false),
				candidate("CCC", "10", 30, capped, false),
			},
			TotalInvestable: decimal.RequireFromString("1000.00"),
		})
		require.NoError(t, err)

		amounts := amountsBySymbol(out.Items)
		require.Equal(t, "0.00", amounts["CCC"])
		require.Equal(t, "600.00", amounts["AAA"])
		require.Equal(t, "400.00", amounts["BBB"])
	})

	t.Run("negative priority gets nothing while others are positive", func(t *testing.T) {
		out, err := DistributeCapital(DistributeCapitalInput{
			Assets: []domain.AssetWithContext{
				candidate("VTI", "10", 50, openTarget(), false),
				candidate("BND", "-10", 50, openTarget(), false),
			},
			TotalInvestable: decimal.RequireFromString("800.00"),
		})
		require.NoError(t, err)

		amounts := amountsBySymbol(out.Items)
		require.Equal(t, "800.00", amounts["VTI"])
		require.Equal(t, "0.00", amounts["BND"])
	})

	t.Run("non-positive investable total yields no items", func(t *testing.T) {
		for _, total := range []string{"0", "-50.00"} {
			out, err := DistributeCapital(DistributeCapitalInput{
				Assets: []domain.AssetWithContext{
					candidate("VTI", "10", 50, openTarget(), false),
				},
				TotalInvestable: decimal.RequireFromString(total),
			})
			require.NoError(t, err)
			require.Empty(t, out.Items)
			require.True(t, out.Unallocated.IsZero())
		}
	})

	t.Run("every asset over-allocated leaves the total unallocated", func(t *testing.T) {
		out, err := DistributeCapital(DistributeCapitalInput{
			Assets: []domain.AssetWithContext{
				candidate("VTI", "-5", 50, openTarget(), true),
				candidate("QQQ", "-8", 70, openTarget(), true),
			},
			TotalInvestable: decimal.RequireFromString("1000.00"),
		})
		require.NoError(t, err)
		require.Equal(t, "1000.00", out.Unallocated.StringFixed(2))
		for _, item := range out.Items {
			require.Equal(t, "0.00", item.RecommendedAmount.StringFixed(2))
		}
	})
}

func Test_GenerateSession(t *testing.T) {
	t.Run("persists the session keyed by correlation id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		recommendationRepository := mock_repository.NewMockRecommendationRepository(ctrl)

		db, dbMock, err := sqlmock.New()
		require.NoError(t, err)
		dbMock.ExpectBegin()
		dbMock.ExpectCommit()

		handler := recommendationServiceHandler{
			Db:                       db,
			RecommendationRepository: recommendationRepository,
		}

		correlationID := uuid.New()
		userID := uuid.New()
		versionID := uuid.New()
		asset := candidate("VTI", "10", 50, openTarget(), false)

		var persistedSession model.RecommendationSession
		var persistedItems []*model.RecommendationItem
		recommendationRepository.EXPECT().
			AddSession(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(tx *sql.Tx, session model.RecommendationSession, items []*model.RecommendationItem) (*model.RecommendationSession, error) {
				require.NotNil(t, tx)
				persistedSession = session
				persistedItems = items
				return &session, nil
			})

		session, err := handler.GenerateSession(GenerateSessionInput{
			CorrelationID:     correlationID,
			UserAccountID:     userID,
			CriteriaVersionID: versionID,
			Assets:            []domain.AssetWithContext{asset},
			Breakdowns: map[uuid.UUID][]domain.CriterionResult{
				asset.Asset.AssetID: {{CriterionRuleID: uuid.New(), Matched: true, PointsAwarded: 50}},
			},
			TotalInvestable: decimal.RequireFromString("1000.00"),
			BaseCurrency:    "USD",
		})
		require.NoError(t, err)
		require.NoError(t, dbMock.ExpectationsWereMet())

		require.Equal(t, correlationID, session.SessionID)
		require.Equal(t, correlationID, persistedSession.RecommendationSessionID)
		require.Equal(t, userID, persistedSession.UserAccountID)
		require.Equal(t, versionID, persistedSession.CriteriaVersionID)
		require.Equal(t, session.GeneratedAt.Add(domain.SessionValidityWindow), session.ExpiresAt)

		require.Len(t, persistedItems, 1)
		require.Equal(t, "1000.00", persistedItems[0].RecommendedAmount.StringFixed(2))
		require.Contains(t, persistedItems[0].Breakdown, "pointsAwarded")
		require.Len(t, session.Items[0].Breakdown, 1)
	})

	t.Run("failed item insert rolls the whole session back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		recommendationRepository := mock_repository.NewMockRecommendationRepository(ctrl)

		db, dbMock, err := sqlmock.New()
		require.NoError(t, err)
		dbMock.ExpectBegin()
		dbMock.ExpectRollback()

		handler := recommendationServiceHandler{
			Db:                       db,
			RecommendationRepository: recommendationRepository,
		}

		recommendationRepository.EXPECT().
			AddSession(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("failed to insert recommendation items"))

		asset := candidate("VTI", "10", 50, openTarget(), false)
		session, err := handler.GenerateSession(GenerateSessionInput{
			CorrelationID:   uuid.New(),
			UserAccountID:   uuid.New(),
			Assets:          []domain.AssetWithContext{asset},
			TotalInvestable: decimal.RequireFromString("1000.00"),
			BaseCurrency:    "USD",
		})
		require.Error(t, err)
		require.Nil(t, session)
		// no commit ran, so a retry under the same correlation id starts
		// from a clean slate
		require.NoError(t, dbMock.ExpectationsWereMet())
	})
}

func Test_GetCurrentSession(t *testing.T) {
	t.Run("expired session is treated as absent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		recommendationRepository := mock_repository.NewMockRecommendationRepository(ctrl)

		handler := recommendationServiceHandler{
			RecommendationRepository: recommendationRepository,
		}

		userID := uuid.New()
		recommendationRepository.EXPECT().
			GetLatestSession(userID).
			Return(&model.RecommendationSession{
				RecommendationSessionID: uuid.New(),
				UserAccountID:           userID,
				GeneratedAt:             time.Now().UTC().Add(-48 * time.Hour),
				ExpiresAt:               time.Now().UTC().Add(-24 * time.Hour),
			}, nil)

		session, err := handler.GetCurrentSession(userID)
		require.NoError(t, err)
		require.Nil(t, session)
	})

	t.Run("valid session comes back with its items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		recommendationRepository := mock_repository.NewMockRecommendationRepository(ctrl)

		handler := recommendationServiceHandler{
			RecommendationRepository: recommendationRepository,
		}

		userID := uuid.New()
		sessionID := uuid.New()
		recommendationRepository.EXPECT().
			GetLatestSession(userID).
			Return(&model.RecommendationSession{
				RecommendationSessionID: sessionID,
				UserAccountID:           userID,
				TotalInvestable:         decimal.RequireFromString("1000.00"),
				GeneratedAt:             time.Now().UTC().Add(-time.Hour),
				ExpiresAt:               time.Now().UTC().Add(23 * time.Hour),
			}, nil)
		recommendationRepository.EXPECT().
			ListItems(sessionID).
			Return([]model.RecommendationItem{
				{
					AssetID:           uuid.New(),
					Symbol:            "VTI",
					RecommendedAmount: decimal.RequireFromString("750.00"),
					Breakdown:         `[{"criterionRuleID":"` + uuid.New().String() + `","matched":true,"pointsAwarded":20}]`,
				},
			}, nil)

		session, err := handler.GetCurrentSession(userID)
		require.NoError(t, err)
		require.NotNil(t, session)
		require.Equal(t, sessionID, session.SessionID)
		require.Len(t, session.Items, 1)
		require.Equal(t, "VTI", session.Items[0].Symbol)
		require.Len(t, session.Items[0].Breakdown, 1)
		require.Equal(t, int32(20), session.Items[0].Breakdown[0].PointsAwarded)
	})
}
