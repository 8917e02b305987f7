package api

import (
	"fmt"
	"strings"
	"wealthplan/internal/db/models/postgres/public/model"
	"wealthplan/internal/domain"
	"wealthplan/internal/util"

	"github.com/gin-gonic/gin"
)

type publishCriteriaRequest struct {
	UserID *string              `json:"userID"`
	Rules  []criterionRuleDraft `json:"rules"`
}

type publishCriteriaResponse struct {
	CriteriaVersionID string `json:"criteriaVersionID"`
	Version           int32  `json:"version"`
}

// publishCriteria persists a reviewed rule set as the user's new active
// criteria version. The previous version stays on record, deactivated, so
// historical scores keep a valid reference.
func (h ApiHandler) publishCriteria(c *gin.Context) {
	var requestBody publishCriteriaRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	userID, err := h.resolveUserID(c, requestBody.UserID)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}
	if len(requestBody.Rules) == 0 {
		returnErrorJsonCode(fmt.Errorf("at least one rule is required"), c, 400)
		return
	}

	ruleModels := []model.CriterionRule{}
	for i, draft := range requestBody.Rules {
		if err := validateDraft(draft); err != nil {
			returnErrorJsonCode(fmt.Errorf("rule %d is invalid: %w", i, err), c, 400)
			return
		}

		rule := model.CriterionRule{
			Name:      draft.Name,
			Metric:    draft.Metric,
			Operator:  draft.Operator,
			Points:    draft.Points,
			SortOrder: int32(i),
		}
		if draft.Operator != string(domain.RuleOperator_Exists) {
			rule.Threshold, err = domain.ParseDecimal(draft.Threshold)
			if err != nil {
				returnErrorJsonCode(err, c, 400)
				return
			}
		}
		if draft.ThresholdUpper != nil {
			upper, err := domain.ParseDecimal(*draft.ThresholdUpper)
			if err != nil {
				returnErrorJsonCode(err, c, 400)
				return
			}
			rule.ThresholdUpper = &upper
		}
		if len(draft.RequiredMetrics) > 0 {
			rule.RequiredMetrics = util.StringPointer(strings.Join(draft.RequiredMetrics, ","))
		}
		ruleModels = append(ruleModels, rule)
	}

	nextVersion := int32(1)
	activeVersion, err := h.CriteriaRepository.GetActiveVersion(userID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	if activeVersion != nil {
		nextVersion = activeVersion.Version + 1
	}

	tx, err := h.Db.Begin()
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	defer tx.Rollback()

	published, err := h.CriteriaRepository.PublishVersion(tx, model.CriteriaVersion{
		UserAccountID: userID,
		Version:       nextVersion,
	}, ruleModels)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	if err := tx.Commit(); err != nil {
		returnErrorJson(fmt.Errorf("failed to commit transaction: %w", err), c)
		return
	}

	c.JSON(200, publishCriteriaResponse{
		CriteriaVersionID: published.CriteriaVersionID.String(),
		Version:           published.Version,
	})
}
