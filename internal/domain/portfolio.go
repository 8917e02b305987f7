package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PortfolioAsset is a non-ignored holding loaded from the persistence
// collaborator. Class and asset ids are opaque - resolved once per batch
// run, never live ORM references.
type PortfolioAsset struct {
	AssetID       uuid.UUID
	UserAccountID uuid.UUID
	Symbol        string
	AssetClassID  uuid.UUID
	Quantity      decimal.Decimal
	Currency      string
}

// AllocationTarget is the user's per-class constraint. Absence of a target
// means no constraint; DefaultAllocationTarget supplies the open bounds.
type AllocationTarget struct {
	AssetClassID       uuid.UUID
	TargetMinPct       decimal.Decimal
	TargetMaxPct       decimal.Decimal
	MinAllocationValue decimal.Decimal
	MaxAssetCount      *int32
}

func DefaultAllocationTarget(classID uuid.UUID) AllocationTarget {
	return AllocationTarget{
		AssetClassID:       classID,
		TargetMinPct:       decimal.Zero,
		TargetMaxPct:       decimal.NewFromInt(100),
		MinAllocationValue: decimal.Zero,
	}
}

func (t AllocationTarget) TargetMidpointPct() decimal.Decimal {
	return t.TargetMinPct.Add(t.TargetMaxPct).Div(decimal.NewFromInt(2))
}

// AllocationStatus is the computed position of one asset class against its
// target.
type AllocationStatus struct {
	AssetClassID         uuid.UUID
	CurrentAllocationPct decimal.Decimal
	TargetMidpointPct    decimal.Decimal
	// AllocationGap = target midpoint - current, in percentage points.
	AllocationGap   decimal.Decimal
	IsOverAllocated bool
	CurrentValue    decimal.Decimal
}

// AssetWithContext is the unit of work the recommendation engine ranks:
// an asset enriched with its class allocation status, score and market
// value in the user's base currency.
type AssetWithContext struct {
	Asset       PortfolioAsset
	ClassStatus AllocationStatus
	ClassTarget AllocationTarget
	Score       int32
	MarketValue decimal.Decimal
}
