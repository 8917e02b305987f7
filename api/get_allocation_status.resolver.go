package api

import (
	"fmt"
	"sort"
	"wealthplan/internal/domain"
	l3_service "wealthplan/internal/service/l3"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type allocationStatusResponse struct {
	AssetClassID         string `json:"assetClassID"`
	CurrentValue         string `json:"currentValue"`
	CurrentAllocationPct string `json:"currentAllocationPct"`
	TargetMidpointPct    string `json:"targetMidpointPct"`
	AllocationGap        string `json:"allocationGap"`
	IsOverAllocated      bool   `json:"isOverAllocated"`
}

// getAllocationStatus values the user's holdings at the latest stored
// prices and reports each class's position against its target band.
func (h ApiHandler) getAllocationStatus(c *gin.Context) {
	userID, err := h.resolveUserID(c, queryStrPtr(c, "userID"))
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	user, err := h.UserAccountRepository.Get(userID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	assetModels, err := h.PortfolioRepository.ListAssets(userID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	if len(assetModels) == 0 {
		c.JSON(200, []allocationStatusResponse{})
		return
	}

	shared, err := h.MarketDataService.LoadSharedContext()
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	assets := []domain.PortfolioAsset{}
	marketValues := map[uuid.UUID]decimal.Decimal{}
	for _, m := range assetModels {
		asset := domain.PortfolioAsset{
			AssetID:       m.AssetID,
			UserAccountID: m.UserAccountID,
			Symbol:        m.Symbol,
			AssetClassID:  m.AssetClassID,
			Quantity:      m.Quantity,
			Currency:      m.Currency,
		}
		value, err := h.MarketDataService.MarketValue(asset, shared, user.BaseCurrency)
		if err != nil {
			returnErrorJson(fmt.Errorf("failed to value %s: %w", asset.Symbol, err), c)
			return
		}
		assets = append(assets, asset)
		marketValues[asset.AssetID] = value
	}

	targetModels, err := h.AllocationTargetRepository.ListForUser(userID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	targets := map[uuid.UUID]domain.AllocationTarget{}
	for _, m := range targetModels {
		targets[m.AssetClassID] = domain.AllocationTarget{
			AssetClassID:       m.AssetClassID,
			TargetMinPct:       m.TargetMinPct,
			TargetMaxPct:       m.TargetMaxPct,
			MinAllocationValue: m.MinAllocationValue,
			MaxAssetCount:      m.MaxAssetCount,
		}
	}

	contexts, err := l3_service.BuildAssetContexts(l3_service.BuildAssetContextsInput{
		Assets:       assets,
		MarketValues: marketValues,
		Targets:      targets,
		Scores:       map[uuid.UUID]int32{},
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	seen := map[uuid.UUID]bool{}
	out := []allocationStatusResponse{}
	for _, ctx := range contexts {
		status := ctx.ClassStatus
		if seen[status.AssetClassID] {
			continue
		}
		seen[status.AssetClassID] = true
		out = append(out, allocationStatusResponse{
			AssetClassID:         status.AssetClassID.String(),
			CurrentValue:         domain.ToFixedString(status.CurrentValue, domain.MoneyScale),
			CurrentAllocationPct: domain.ToFixedString(domain.RoundPercent(status.CurrentAllocationPct), domain.PercentScale),
			TargetMidpointPct:    domain.ToFixedString(domain.RoundPercent(status.TargetMidpointPct), domain.PercentScale),
			AllocationGap:        domain.ToFixedString(domain.RoundPercent(status.AllocationGap), domain.PercentScale),
			IsOverAllocated:      status.IsOverAllocated,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].AssetClassID < out[j].AssetClassID
	})

	c.JSON(200, out)
}
