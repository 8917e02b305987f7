package l1_service

import (
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"wealthplan/internal/db/models/postgres/public/model"
	"wealthplan/internal/domain"
	mock_repository "wealthplan/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTrailRecorder(t *testing.T) (*auditTrailServiceHandler, *[]model.CalculationEvent) {
	ctrl := gomock.NewController(t)
	eventRepository := mock_repository.NewMockCalculationEventRepository(ctrl)

	appended := &[]model.CalculationEvent{}
	eventRepository.EXPECT().
		Append(nil, gomock.Any()).
		DoAndReturn(func(tx *sql.Tx, event model.CalculationEvent) (*model.CalculationEvent, error) {
			*appended = append(*appended, event)
			return &event, nil
		}).
		AnyTimes()

	return &auditTrailServiceHandler{EventRepository: eventRepository}, appended
}

func eventTypes(events []model.CalculationEvent) []string {
	out := []string{}
	for _, e := range events {
		out = append(out, e.EventType)
	}
	return out
}

func Test_RunTrail(t *testing.T) {
	t.Run("full lifecycle emits events in order", func(t *testing.T) {
		handler, appended := newTrailRecorder(t)
		userID := uuid.New()
		correlationID := uuid.New()

		trail, err := handler.Begin(userID, correlationID)
		require.NoError(t, err)

		err = trail.CaptureInputs(domain.InputsCapturedPayload{
			CriteriaVersionID: uuid.New(),
		})
		require.NoError(t, err)

		err = trail.RecordScores([]domain.AssetScoreResult{
			{Symbol: "VTI", Score: 35},
		})
		require.NoError(t, err)

		err = trail.Complete(1, nil)
		require.NoError(t, err)

		require.Equal(t, []string{
			"CALC_STARTED",
			"INPUTS_CAPTURED",
			"SCORES_COMPUTED",
			"CALC_COMPLETED",
		}, eventTypes(*appended))

		for _, e := range *appended {
			require.Equal(t, correlationID, e.CorrelationID)
			require.Equal(t, userID, e.UserAccountID)
		}

		completed := domain.CalcCompletedPayload{}
		require.NoError(t, json.Unmarshal([]byte((*appended)[3].Payload), &completed))
		require.Equal(t, domain.CalcStatus_Success, completed.Status)
		require.Equal(t, 1, completed.AssetCount)
		require.Nil(t, completed.ErrorMessage)
	})

	t.Run("out-of-order emission is rejected", func(t *testing.T) {
		handler, _ := newTrailRecorder(t)

		trail, err := handler.Begin(uuid.New(), uuid.New())
		require.NoError(t, err)

		err = trail.RecordScores(nil)
		require.Error(t, err)

		// capturing inputs twice is also out of order
		require.NoError(t, trail.CaptureInputs(domain.InputsCapturedPayload{}))
		err = trail.CaptureInputs(domain.InputsCapturedPayload{})
		require.Error(t, err)
	})

	t.Run("failed run still gets its terminal event", func(t *testing.T) {
		handler, appended := newTrailRecorder(t)

		trail, err := handler.Begin(uuid.New(), uuid.New())
		require.NoError(t, err)

		err = trail.Complete(0, errors.New("no price available for VTI"))
		require.NoError(t, err)

		require.Equal(t, []string{"CALC_STARTED", "CALC_COMPLETED"}, eventTypes(*appended))

		completed := domain.CalcCompletedPayload{}
		require.NoError(t, json.Unmarshal([]byte((*appended)[1].Payload), &completed))
		require.Equal(t, domain.CalcStatus_Failed, completed.Status)
		require.NotNil(t, completed.ErrorMessage)
		require.Equal(t, "no price available for VTI", *completed.ErrorMessage)
	})

	t.Run("complete is terminal and single-shot", func(t *testing.T) {
		handler, appended := newTrailRecorder(t)

		trail, err := handler.Begin(uuid.New(), uuid.New())
		require.NoError(t, err)
		require.NoError(t, trail.Complete(0, nil))

		err = trail.Complete(0, nil)
		require.Error(t, err)
		require.Len(t, *appended, 2)
	})
}
