package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func Test_TargetMidpointPct(t *testing.T) {
	target := AllocationTarget{
		TargetMinPct: decimal.RequireFromString("20"),
		TargetMaxPct: decimal.RequireFromString("40"),
	}
	require.Equal(t, "30", target.TargetMidpointPct().String())
}

func Test_DefaultAllocationTarget(t *testing.T) {
	classID := uuid.New()
	target := DefaultAllocationTarget(classID)

	require.Equal(t, classID, target.AssetClassID)
	require.Equal(t, "0", target.TargetMinPct.String())
	require.Equal(t, "100", target.TargetMaxPct.String())
	require.True(t, target.MinAllocationValue.IsZero())
	require.Nil(t, target.MaxAssetCount)
	// midpoint 50 means an unconstrained class still competes for capital
	require.Equal(t, "50", target.TargetMidpointPct().String())
}

func Test_SessionIsExpired(t *testing.T) {
	generatedAt := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	session := RecommendationSession{
		GeneratedAt: generatedAt,
		ExpiresAt:   generatedAt.Add(SessionValidityWindow),
	}

	require.False(t, session.IsExpired(generatedAt))
	require.False(t, session.IsExpired(session.ExpiresAt))
	require.True(t, session.IsExpired(session.ExpiresAt.Add(time.Second)))
}
