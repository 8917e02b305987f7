package api

import (
	"fmt"
	"time"
	"wealthplan/internal/domain"
	"wealthplan/internal/logger"

	"github.com/gin-gonic/gin"
)

type generateRecommendationsRequest struct {
	UserID *string `json:"userID"`
}

type recommendationItemResponse struct {
	AssetID           string                   `json:"assetID"`
	Symbol            string                   `json:"symbol"`
	Priority          string                   `json:"priority"`
	RecommendedAmount string                   `json:"recommendedAmount"`
	IsOverAllocated   bool                     `json:"isOverAllocated"`
	Breakdown         []domain.CriterionResult `json:"breakdown"`
}

type recommendationSessionResponse struct {
	SessionID       string                       `json:"sessionID"`
	TotalInvestable string                       `json:"totalInvestable"`
	Unallocated     string                       `json:"unallocated"`
	BaseCurrency    string                       `json:"baseCurrency"`
	GeneratedAt     string                       `json:"generatedAt"`
	ExpiresAt       string                       `json:"expiresAt"`
	Items           []recommendationItemResponse `json:"items"`
}

type generateRecommendationsResponse struct {
	State      string                         `json:"state"`
	SkipReason *string                        `json:"skipReason,omitempty"`
	Session    *recommendationSessionResponse `json:"session,omitempty"`
}

func (h ApiHandler) generateRecommendations(c *gin.Context) {
	var requestBody generateRecommendationsRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	userID, err := h.resolveUserID(c, requestBody.UserID)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	shared, err := h.MarketDataService.LoadSharedContext()
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	ctx := c.Request.Context()
	result := h.BatchOrchestrator.ProcessUser(ctx, userID, shared)
	switch result.State {
	case domain.UserRunState_Skipped:
		c.JSON(200, generateRecommendationsResponse{
			State:      string(result.State),
			SkipReason: &result.SkipReason,
		})
		return
	case domain.UserRunState_Completed:
	default:
		logger.FromContext(ctx).Errorf("recommendation run %s failed: %v", result.CorrelationID.String(), result.Err)
		returnErrorJson(fmt.Errorf("recommendation run failed: %w", result.Err), c)
		return
	}

	session, err := h.RecommendationService.GetCurrentSession(userID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	if session == nil {
		returnErrorJson(fmt.Errorf("run completed but no session found for user %s", userID.String()), c)
		return
	}

	c.JSON(200, generateRecommendationsResponse{
		State:   string(result.State),
		Session: sessionResponse(session),
	})
}

func sessionResponse(session *domain.RecommendationSession) *recommendationSessionResponse {
	out := &recommendationSessionResponse{
		SessionID:       session.SessionID.String(),
		TotalInvestable: domain.ToFixedString(session.TotalInvestable, domain.MoneyScale),
		Unallocated:     domain.ToFixedString(session.Unallocated, domain.MoneyScale),
		BaseCurrency:    session.BaseCurrency,
		GeneratedAt:     session.GeneratedAt.UTC().Format(time.RFC3339),
		ExpiresAt:       session.ExpiresAt.UTC().Format(time.RFC3339),
		Items:           []recommendationItemResponse{},
	}
	for _, item := range session.Items {
		out.Items = append(out.Items, recommendationItemResponse{
			AssetID:           item.AssetID.String(),
			Symbol:            item.Symbol,
			Priority:          item.Priority.String(),
			RecommendedAmount: domain.ToFixedString(item.RecommendedAmount, domain.MoneyScale),
			IsOverAllocated:   item.IsOverAllocated,
			Breakdown:         item.Breakdown,
		})
	}
	return out
}
