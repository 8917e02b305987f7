package l3_service

import (
	"testing"
	"wealthplan/internal/domain"
	"wealthplan/internal/util"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func Test_BuildAssetContexts(t *testing.T) {
	t.Run("computes class percentages and gaps", func(t *testing.T) {
		equityClassID := uuid.New()
		bondClassID := uuid.New()
		equityAsset := domain.PortfolioAsset{AssetID: uuid.New(), Symbol: "VTI", AssetClassID: equityClassID}
		bondAsset := domain.PortfolioAsset{AssetID: uuid.New(), Symbol: "BND", AssetClassID: bondClassID}

		out, err := BuildAssetContexts(BuildAssetContextsInput{
			Assets: []domain.PortfolioAsset{equityAsset, bondAsset},
			MarketValues: map[uuid.UUID]decimal.Decimal{
				equityAsset.AssetID: decimal.RequireFromString("7500"),
				bondAsset.AssetID:   decimal.RequireFromString("2500"),
			},
			Targets: map[uuid.UUID]domain.AllocationTarget{
				equityClassID: {
					AssetClassID: equityClassID,
					TargetMinPct: decimal.RequireFromString("50"),
					TargetMaxPct: decimal.RequireFromString("70"),
				},
				bondClassID: {
					AssetClassID: bondClassID,
					TargetMinPct: decimal.RequireFromString("30"),
					TargetMaxPct: decimal.RequireFromString("50"),
				},
			},
			Scores: map[uuid.UUID]int32{
				equityAsset.AssetID: 80,
				bondAsset.AssetID:   40,
			},
		})
		require.NoError(t, err)
		require.Len(t, out, 2)

		equity := out[0]
		require.Equal(t, "VTI", equity.Asset.Symbol)
		require.Equal(t, int32(80), equity.Score)
		require.Equal(t, "75", equity.ClassStatus.CurrentAllocationPct.String())
		require.Equal(t, "60", equity.ClassStatus.TargetMidpointPct.String())
		require.Equal(t, "-15", equity.ClassStatus.AllocationGap.String())
		require.True(t, equity.ClassStatus.IsOverAllocated)

		bond := out[1]
		require.Equal(t, "25", bond.ClassStatus.CurrentAllocationPct.String())
		require.Equal(t, "40", bond.ClassStatus.TargetMidpointPct.String())
		require.Equal(t, "15", bond.ClassStatus.AllocationGap.String())
		require.False(t, bond.ClassStatus.IsOverAllocated)
	})

	t.Run("class without a target gets open defaults", func(t *testing.T) {
		classID := uuid.New()
		asset := domain.PortfolioAsset{AssetID: uuid.New(), Symbol: "GLD", AssetClassID: classID}

		out, err := BuildAssetContexts(BuildAssetContextsInput{
			Assets: []domain.PortfolioAsset{asset},
			MarketValues: map[uuid.UUID]decimal.Decimal{
				asset.AssetID: decimal.RequireFromString("1000"),
			},
			Targets: map[uuid.UUID]domain.AllocationTarget{},
			Scores:  map[uuid.UUID]int32{},
		})
		require.NoError(t, err)
		require.Len(t, out, 1)
		// 100% of portfolio, but max is 100 so never over-allocated
		require.Equal(t, "100", out[0].ClassStatus.CurrentAllocationPct.String())
		require.False(t, out[0].ClassStatus.IsOverAllocated)
		require.Equal(t, "100", out[0].ClassTarget.TargetMaxPct.String())
	})

	t.Run("boundary is not over-allocated", func(t *testing.T) {
		classID := uuid.New()
		otherClassID := uuid.New()
		a := domain.PortfolioAsset{AssetID: uuid.New(), Symbol: "VTI", AssetClassID: classID}
		b := domain.PortfolioAsset{AssetID: uuid.New(), Symbol: "BND", AssetClassID: otherClassID}

		out, err := BuildAssetContexts(BuildAssetContextsInput{
			Assets: []domain.PortfolioAsset{a, b},
			MarketValues: map[uuid.UUID]decimal.Decimal{
				a.AssetID: decimal.RequireFromString("600"),
				b.AssetID: decimal.RequireFromString("400"),
			},
			Targets: map[uuid.UUID]domain.AllocationTarget{
				classID: {
					AssetClassID: classID,
					TargetMinPct: decimal.RequireFromString("40"),
					TargetMaxPct: decimal.RequireFromString("60"),
				},
			},
			Scores: map[uuid.UUID]int32{},
		})
		require.NoError(t, err)
		// exactly at the max bound
		require.Equal(t, "60", out[0].ClassStatus.CurrentAllocationPct.String())
		require.False(t, out[0].ClassStatus.IsOverAllocated)
	})

	t.Run("zero total portfolio value", func(t *testing.T) {
		classID := uuid.New()
		asset := domain.PortfolioAsset{AssetID: uuid.New(), Symbol: "VTI", AssetClassID: classID}

		out, err := BuildAssetContexts(BuildAssetContextsInput{
			Assets: []domain.PortfolioAsset{asset},
			MarketValues: map[uuid.UUID]decimal.Decimal{
				asset.AssetID: decimal.Zero,
			},
			Targets: map[uuid.UUID]domain.AllocationTarget{},
			Scores:  map[uuid.UUID]int32{},
		})
		require.NoError(t, err)
		require.True(t, out[0].ClassStatus.CurrentAllocationPct.IsZero())
	})

	t.Run("missing market value is an error", func(t *testing.T) {
		asset := domain.PortfolioAsset{AssetID: uuid.New(), Symbol: "VTI", AssetClassID: uuid.New()}

		_, err := BuildAssetContexts(BuildAssetContextsInput{
			Assets:       []domain.PortfolioAsset{asset},
			MarketValues: map[uuid.UUID]decimal.Decimal{},
		})
		require.Error(t, err)
		require.Contains(t, err.Error(), "VTI")
	})

	t.Run("max asset count flows through to the context", func(t *testing.T) {
		classID := uuid.New()
		asset := domain.PortfolioAsset{AssetID: uuid.New(), Symbol: "VTI", AssetClassID: classID}

		out, err := BuildAssetContexts(BuildAssetContextsInput{
			Assets: []domain.PortfolioAsset{asset},
			MarketValues: map[uuid.UUID]decimal.Decimal{
				asset.AssetID: decimal.RequireFromString("100"),
			},
			Targets: map[uuid.UUID]domain.AllocationTarget{
				classID: {
					AssetClassID:  classID,
					TargetMinPct:  decimal.Zero,
					TargetMaxPct:  decimal.RequireFromString("100"),
					MaxAssetCount: util.Int32Pointer(2),
				},
			},
			Scores: map[uuid.UUID]int32{},
		})
		require.NoError(t, err)
		require.NotNil(t, out[0].ClassTarget.MaxAssetCount)
		require.Equal(t, int32(2), *out[0].ClassTarget.MaxAssetCount)
	})
}
