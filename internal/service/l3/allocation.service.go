package l3_service

import (
	"fmt"
	"wealthplan/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// BuildAssetContextsInput carries everything already resolved for one
// user: holdings with market values in the base currency, per-class
// targets and per-asset scores. Ids are opaque at this point - nothing
// here touches the database.
type BuildAssetContextsInput struct {
	Assets       []domain.PortfolioAsset
	MarketValues map[uuid.UUID]decimal.Decimal
	Targets      map[uuid.UUID]domain.AllocationTarget
	Scores       map[uuid.UUID]int32
}

// BuildAssetContexts computes each class's allocation status and attaches
// it, with the asset's score, to every holding. A class without a target
// gets the open defaults (0-100%, no floors), meaning it can never be
// over-allocated.
func BuildAssetContexts(in BuildAssetContextsInput) ([]domain.AssetWithContext, error) {
	totalValue := decimal.Zero
	classValues := map[uuid.UUID]decimal.Decimal{}
	for _, asset := range in.Assets {
		value, ok := in.MarketValues[asset.AssetID]
		if !ok {
			return nil, fmt.Errorf("no market value for asset %s", asset.Symbol)
		}
		totalValue = totalValue.Add(value)
		classValues[asset.AssetClassID] = classValues[asset.AssetClassID].Add(value)
	}

	statuses := map[uuid.UUID]domain.AllocationStatus{}
	for classID, classValue := range classValues {
		target, ok := in.Targets[classID]
		if !ok {
			target = domain.DefaultAllocationTarget(classID)
		}

		currentPct := decimal.Zero
		if !totalValue.IsZero() {
			pct, err := domain.Divide(classValue.Mul(oneHundred), totalValue)
			if err != nil {
				return nil, err
			}
			currentPct = pct
		}

		midpoint := target.TargetMidpointPct()
		statuses[classID] = domain.AllocationStatus{
			AssetClassID:         classID,
			CurrentAllocationPct: currentPct,
			TargetMidpointPct:    midpoint,
			AllocationGap:        midpoint.Sub(currentPct),
			IsOverAllocated:      currentPct.GreaterThan(target.TargetMaxPct),
			CurrentValue:         classValue,
		}
	}

	out := []domain.AssetWithContext{}
	for _, asset := range in.Assets {
		target, ok := in.Targets[asset.AssetClassID]
		if !ok {
			target = domain.DefaultAllocationTarget(asset.AssetClassID)
		}
		out = append(out, domain.AssetWithContext{
			Asset:       asset,
			ClassStatus: statuses[asset.AssetClassID],
			ClassTarget: target,
			Score:       in.Scores[asset.AssetID],
			MarketValue: in.MarketValues[asset.AssetID],
		})
	}

	return out, nil
}
