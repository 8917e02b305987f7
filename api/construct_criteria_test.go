package api

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_validateDraft(t *testing.T) {
	valid := criterionRuleDraft{
		Name:      "high dividend yield",
		Metric:    "dividend_yield",
		Operator:  "gte",
		Threshold: "4.0",
		Points:    20,
	}

	t.Run("accepts a well-formed draft", func(t *testing.T) {
		require.NoError(t, validateDraft(valid))
	})

	t.Run("rejects unknown operators", func(t *testing.T) {
		draft := valid
		draft.Operator = "approximately"
		require.Error(t, validateDraft(draft))
	})

	t.Run("rejects points outside -100..100", func(t *testing.T) {
		draft := valid
		draft.Points = 101
		require.Error(t, validateDraft(draft))
		draft.Points = -101
		require.Error(t, validateDraft(draft))
	})

	t.Run("rejects unparseable thresholds", func(t *testing.T) {
		draft := valid
		draft.Threshold = "four"
		require.Error(t, validateDraft(draft))
	})

	t.Run("between requires an upper threshold", func(t *testing.T) {
		draft := valid
		draft.Operator = "between"
		require.Error(t, validateDraft(draft))

		upper := "8.0"
		draft.ThresholdUpper = &upper
		require.NoError(t, validateDraft(draft))
	})

	t.Run("exists needs no threshold", func(t *testing.T) {
		draft := criterionRuleDraft{
			Name:     "has esg rating",
			Metric:   "esg_rating",
			Operator: "exists",
			Points:   5,
		}
		require.NoError(t, validateDraft(draft))
	})
}

func Test_stripCodeFences(t *testing.T) {
	t.Run("plain json passes through", func(t *testing.T) {
		require.Equal(t, `[{"a":1}]`, stripCodeFences(`[{"a":1}]`))
	})

	t.Run("fenced json is unwrapped", func(t *testing.T) {
		in := "```json\n[{\"a\":1}]\n```"
		require.Equal(t, `[{"a":1}]`, stripCodeFences(in))

		in = "```\n[{\"a\":1}]\n```"
		require.Equal(t, `[{"a":1}]`, stripCodeFences(in))
	})
}
