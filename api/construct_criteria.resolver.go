package api

import (
	"encoding/json"
	"fmt"
	"strings"
	"wealthplan/internal/domain"

	"github.com/gin-gonic/gin"
)

type constructCriteriaRequest struct {
	Description string `json:"description"`
}

type criterionRuleDraft struct {
	Name            string   `json:"name"`
	Metric          string   `json:"metric"`
	Operator        string   `json:"operator"`
	Threshold       string   `json:"threshold"`
	ThresholdUpper  *string  `json:"thresholdUpper,omitempty"`
	Points          int32    `json:"points"`
	RequiredMetrics []string `json:"requiredMetrics,omitempty"`
}

type constructCriteriaResponse struct {
	Rules []criterionRuleDraft `json:"rules"`
}

// constructCriteria turns a natural-language description into draft scoring
// rules. Drafts are returned for review, never persisted here - publishing
// is a separate, explicit call.
func (h ApiHandler) constructCriteria(c *gin.Context) {
	var requestBody constructCriteriaRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	if len(requestBody.Description) < 5 {
		returnErrorJsonCode(fmt.Errorf("description too short - must be > 5 characters"), c, 400)
		return
	}
	if len(requestBody.Description) > 2000 {
		returnErrorJsonCode(fmt.Errorf("description too long - must be < 2000 characters"), c, 400)
		return
	}

	raw, err := h.GptRepository.ConstructCriteriaRules(c.Request.Context(), requestBody.Description)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	drafts := []criterionRuleDraft{}
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &drafts); err != nil {
		returnErrorJson(fmt.Errorf("failed to parse generated rules: %w", err), c)
		return
	}

	for i, draft := range drafts {
		if err := validateDraft(draft); err != nil {
			returnErrorJson(fmt.Errorf("generated rule %d is invalid: %w", i, err), c)
			return
		}
	}

	c.JSON(200, constructCriteriaResponse{Rules: drafts})
}

var validOperators = map[string]bool{
	string(domain.RuleOperator_GreaterThan):      true,
	string(domain.RuleOperator_LessThan):         true,
	string(domain.RuleOperator_GreaterThanEqual): true,
	string(domain.RuleOperator_LessThanEqual):    true,
	string(domain.RuleOperator_Between):          true,
	string(domain.RuleOperator_Equals):           true,
	string(domain.RuleOperator_Exists):           true,
}

func validateDraft(draft criterionRuleDraft) error {
	if draft.Metric == "" {
		return fmt.Errorf("metric is required")
	}
	if !validOperators[draft.Operator] {
		return fmt.Errorf("unknown operator %q", draft.Operator)
	}
	if draft.Points < -100 || draft.Points > 100 {
		return fmt.Errorf("points %d out of range -100..100", draft.Points)
	}
	if draft.Operator != string(domain.RuleOperator_Exists) {
		if _, err := domain.ParseDecimal(draft.Threshold); err != nil {
			return err
		}
	}
	if draft.Operator == string(domain.RuleOperator_Between) {
		if draft.ThresholdUpper == nil {
			return fmt.Errorf("between requires thresholdUpper")
		}
		if _, err := domain.ParseDecimal(*draft.ThresholdUpper); err != nil {
			return err
		}
	}
	return nil
}

// stripCodeFences tolerates models that wrap the JSON in a markdown block
// despite the prompt.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}
